package entity

import "github.com/shopspring/decimal"

type TransactionStatus string

const (
	TransactionStatusSuccess  TransactionStatus = "SUCCESS"
	TransactionStatusError    TransactionStatus = "ERROR"
	TransactionStatusQueued   TransactionStatus = "QUEUED"
	TransactionStatusWaiting  TransactionStatus = "WAITING"
	TransactionStatusRefunded TransactionStatus = "REFUNDED"
)

type ShipmentParams struct {
	AddressFrom Address  `json:"address_from"`
	AddressTo   Address  `json:"address_to"`
	Parcels     []Parcel `json:"parcels"`
	Async       bool     `json:"async"`
}

type Shipment struct {
	ObjectID string    `json:"object_id"`
	Status   string    `json:"status"`
	Rates    []Rate    `json:"rates"`
	Messages []Message `json:"messages"`
}

type Rate struct {
	ObjectID      string          `json:"object_id"`
	Amount        decimal.Decimal `json:"amount"`
	Currency      string          `json:"currency"`
	Provider      string          `json:"provider"`
	ServiceLevel  ServiceLevel    `json:"servicelevel"`
	EstimatedDays int             `json:"estimated_days"`
}

type ServiceLevel struct {
	Name  string `json:"name"`
	Token string `json:"token"`
}

type TransactionParams struct {
	Rate          string `json:"rate"`
	LabelFileType string `json:"label_file_type"`
	Async         bool   `json:"async"`
}

type Transaction struct {
	ObjectID       string            `json:"object_id"`
	Status         TransactionStatus `json:"status"`
	LabelURL       string            `json:"label_url"`
	TrackingNumber string            `json:"tracking_number"`
	Messages       []Message         `json:"messages"`
}

type Message struct {
	Source string `json:"source,omitempty"`
	Code   string `json:"code,omitempty"`
	Text   string `json:"text"`
}

// Label is the public result of a successful purchase.
type Label struct {
	LabelURL string `json:"labelUrl"`
}
