package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Sibghat34/shippo-api/internal/client"
	"github.com/Sibghat34/shippo-api/internal/form"

	"github.com/AlecAivazis/survey/v2/terminal"
)

const _retryMessage = "Edit the values and try again?"

func main() {
	server := flag.String("server", "http://localhost:8000", "Label service base URL")
	timeout := flag.Duration("timeout", 60*time.Second, "Request timeout")
	flag.Parse()

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	sub := client.New(*server, client.WithTimeout(*timeout))
	if err := run(ctx, surveyPrompter{}, sub, os.Stdout); err != nil {
		if errors.Is(err, terminal.InterruptErr) {
			os.Exit(130)
		}
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, p prompter, submitter form.Submitter, out io.Writer) error {
	session := form.NewSession()

	for {
		if err := fill(p, session); err != nil {
			return err
		}

		err := session.Submit(ctx, submitter)
		printNotification(out, session)
		if err == nil {
			fmt.Fprintf(out, "View Shipping Label: %s\n", session.LabelURL)
			return nil
		}

		retry, askErr := p.Confirm(_retryMessage, true)
		if askErr != nil {
			return askErr
		}
		if !retry {
			return err
		}
	}
}

// fill prompts every field, offering the current value as the default so a
// failed submission can be corrected without retyping.
func fill(p prompter, session *form.Session) error {
	for _, f := range form.Fields {
		answer, err := p.Field(f, session.Value(f))
		if err != nil {
			return err
		}
		session.Set(f, answer)
	}
	return nil
}

func printNotification(out io.Writer, session *form.Session) {
	n := session.Notification
	if n == nil {
		return
	}
	if n.Description == "" {
		fmt.Fprintln(out, n.Title)
		return
	}
	fmt.Fprintf(out, "%s: %s\n", n.Title, n.Description)
}
