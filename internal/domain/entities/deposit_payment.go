package entities

import (
	"encoding/json"
	"time"
)

// PaymentStatus represents the reservation-deposit processing outcome.

type PaymentStatus string

const (
	PaymentStatusPendente PaymentStatus = "pendente"
	PaymentStatusAprovado PaymentStatus = "aprovado"
	PaymentStatusNegado   PaymentStatus = "negado"
)

// DepositPayment is the reservation deposit charged when a customer approves an
// estimate.
//
// Storage model (DynamoDB):
//   - payments table, PK: id
//   - GSI (estimate_id-index): estimate_id
//
// Provider payload:
//   - ProviderPayloadRaw keeps the original gateway response (JSON) for audit.
//   - ProviderPayload is an optional parsed representation for querying/debugging.
type DepositPayment struct {
	ID         string        `json:"id"`
	EstimateID string        `json:"estimate_id"`
	Amount     int           `json:"amount"`
	Date       time.Time     `json:"date"`
	Status     PaymentStatus `json:"status"`

	ProviderPayloadRaw json.RawMessage        `json:"provider_payload_raw,omitempty"`
	ProviderPayload    map[string]interface{} `json:"provider_payload,omitempty"`
}
