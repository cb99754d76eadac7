package main

import (
	"errors"

	"github.com/Sibghat34/shippo-api/internal/form"

	"github.com/AlecAivazis/survey/v2"
)

// prompter asks the user for input, so the submit loop can run without a
// terminal.
type prompter interface {
	Field(f form.Field, current string) (string, error)
	Confirm(message string, def bool) (bool, error)
}

type surveyPrompter struct{}

func (surveyPrompter) Field(f form.Field, current string) (string, error) {
	var answer string
	prompt := &survey.Input{
		Message: f.Label(),
		Help:    f.Placeholder(),
		Default: current,
	}

	if err := survey.AskOne(prompt, &answer, survey.WithValidator(fieldValidator(f))); err != nil {
		return "", err
	}
	return answer, nil
}

func (surveyPrompter) Confirm(message string, def bool) (bool, error) {
	answer := false
	if err := survey.AskOne(&survey.Confirm{Message: message, Default: def}, &answer); err != nil {
		return false, err
	}
	return answer, nil
}

func fieldValidator(f form.Field) survey.Validator {
	return func(ans interface{}) error {
		value, _ := ans.(string)
		if msg := form.ValidateField(f, value); msg != "" {
			return errors.New(msg)
		}
		return nil
	}
}
