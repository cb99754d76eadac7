package entity

import (
	"errors"
	"fmt"
)

const shipmentErrorPrefix = "Error creating shipment: "

var (
	ErrNoRates          = errors.New("no rates available for shipment")
	ErrEmptyLabelURL    = errors.New("transaction succeeded without a label url")
	ErrInvalidData      = errors.New("invalid data")
	ErrConfigPathNotSet = errors.New("CONFIG_PATH not set and -config flag not provided")
)

// PurchaseError reports a label transaction that did not reach SUCCESS.
type PurchaseError struct {
	Status   TransactionStatus
	Messages []Message
}

func (e *PurchaseError) Error() string {
	if len(e.Messages) > 0 && e.Messages[0].Text != "" {
		return e.Messages[0].Text
	}
	return fmt.Sprintf("transaction finished with status %s", e.Status)
}

// UpstreamError is a non-2xx answer from the shipping provider.
type UpstreamError struct {
	Operation  string
	StatusCode int
	Detail     string
}

func (e *UpstreamError) Error() string {
	if e.Detail != "" {
		return e.Detail
	}
	return fmt.Sprintf("%s: unexpected status code %d", e.Operation, e.StatusCode)
}

// ShipmentError is the single error surfaced by the label pipeline. Message is
// safe to hand to callers.
type ShipmentError struct {
	Message string
	Err     error
}

func NewShipmentError(err error) *ShipmentError {
	return &ShipmentError{
		Message: shipmentErrorPrefix + "Error: " + causeText(err),
		Err:     err,
	}
}

func (e *ShipmentError) Error() string {
	return e.Message
}

func (e *ShipmentError) Unwrap() error {
	return e.Err
}

func causeText(err error) string {
	var purchaseErr *PurchaseError
	if errors.As(err, &purchaseErr) {
		return purchaseErr.Error()
	}

	var upstreamErr *UpstreamError
	if errors.As(err, &upstreamErr) {
		return upstreamErr.Error()
	}

	for _, sentinel := range []error{ErrNoRates, ErrEmptyLabelURL} {
		if errors.Is(err, sentinel) {
			return sentinel.Error()
		}
	}

	return err.Error()
}
