package entities

import (
	"encoding/json"
	"time"
)

// PaymentStatus represents the payment processing outcome.
type PaymentStatus string

const (
	PaymentStatusPending  PaymentStatus = "pending"
	PaymentStatusApproved PaymentStatus = "approved"
	PaymentStatusDenied   PaymentStatus = "denied"
)

// InvoicePayment records a charge made against an invoice through the
// payment gateway.
//
// Storage model:
//   - PK: id (provider payment id)
//   - GSI1 (document_id-index): document_id
//
// ProviderPayloadRaw keeps the original provider response (JSON) for
// traceability; ProviderPayload is an optional parsed copy for querying.
type InvoicePayment struct {
	ID         string        `json:"id"`
	DocumentID string        `json:"document_id"`
	Amount     float64       `json:"amount"`
	Date       time.Time     `json:"date"`
	Status     PaymentStatus `json:"status"`

	ProviderPayloadRaw json.RawMessage        `json:"provider_payload_raw,omitempty"`
	ProviderPayload    map[string]interface{} `json:"provider_payload,omitempty"`
}
