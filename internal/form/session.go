package form

import (
	"context"
	"errors"
	"fmt"
)

const (
	unknownErrorMessage = "Unknown error occurred"
	successTitle        = "Shipping Label Created"
	errorTitle          = "Error"
)

// Submitter sends validated values to the label endpoint and returns the
// label URL.
type Submitter interface {
	CreateLabel(ctx context.Context, values Values) (string, error)
}

// ResponseMessenger is implemented by errors that carry the server's error
// text.
type ResponseMessenger interface {
	ResponseMessage() string
}

type Notification struct {
	Title       string
	Description string
}

// Session holds the state of one form: values, inline errors, the last
// notification and the most recent label URL.
type Session struct {
	Values       Values
	Errors       FieldErrors
	Notification *Notification
	LabelURL     string
}

func NewSession() *Session {
	return &Session{Errors: FieldErrors{}}
}

// Set stores a field value and validates it, as on blur.
func (s *Session) Set(f Field, value string) string {
	SetValue(&s.Values, f, value)

	msg := ValidateField(f, value)
	if msg == "" {
		delete(s.Errors, f)
	} else {
		s.Errors[f] = msg
	}
	return msg
}

// Submit validates all fields and, when they pass, hands the values to sub.
// On success the label URL is kept and the values are cleared; on failure the
// values are preserved and the error text is shown.
func (s *Session) Submit(ctx context.Context, sub Submitter) error {
	if err := Validate(s.Values); err != nil {
		var fieldErrs FieldErrors
		if errors.As(err, &fieldErrs) {
			s.Errors = fieldErrs
		}
		return err
	}
	s.Errors = FieldErrors{}

	labelURL, err := sub.CreateLabel(ctx, s.Values)
	if err != nil {
		s.Notification = &Notification{
			Title:       errorTitle,
			Description: ErrorMessage(err),
		}
		return fmt.Errorf("form.Submit: %w", err)
	}

	s.LabelURL = labelURL
	s.Notification = &Notification{Title: successTitle}
	s.Reset()
	return nil
}

func (s *Session) Reset() {
	s.Values = Values{}
	s.Errors = FieldErrors{}
}

func (s *Session) Error(f Field) string {
	return s.Errors[f]
}

func (s *Session) Value(f Field) string {
	return Value(s.Values, f)
}

// ErrorMessage picks the text shown for a failed submission: the server's
// error field, then the transport error, then a generic fallback.
func ErrorMessage(err error) string {
	if err == nil {
		return unknownErrorMessage
	}

	var messenger ResponseMessenger
	if errors.As(err, &messenger) {
		if msg := messenger.ResponseMessage(); msg != "" {
			return msg
		}
	}

	if msg := err.Error(); msg != "" {
		return msg
	}
	return unknownErrorMessage
}
