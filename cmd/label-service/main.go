package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/Sibghat34/shippo-api/internal/app"
	"github.com/Sibghat34/shippo-api/internal/config"
	"github.com/Sibghat34/shippo-api/pkg/logger"
)

func main() {
	os.Exit(run())
}

// run starts the service and returns the process exit code.
func run() int {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load configuration: %v\n", err)
		return 1
	}

	log, err := logger.NewAdapter(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize logger: %v\n", err)
		return 1
	}
	defer func() { _ = log.Sync() }()

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	log.Infow("application starting",
		"env", cfg.Env,
		"name", cfg.App.Name,
		"version", cfg.App.Version,
		"port", cfg.HTTP.Port,
	)

	if err = app.Run(ctx, cfg, log); err != nil {
		log.Errorw("application failed", "error", err)
		return 1
	}

	log.Infow("application exited normally")
	return 0
}
