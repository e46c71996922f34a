package entities

import (
	"fmt"
	"math"
	"time"
)

// DocumentKind discriminates the two billing documents sharing one lifecycle.
type DocumentKind string

const (
	DocumentKindEstimate DocumentKind = "estimate"
	DocumentKindInvoice  DocumentKind = "invoice"
)

// DocumentStatus is the lifecycle status of an estimate or invoice.
//
// Estimates use: draft, sent_for_approval, approved, rejected, expired.
// Invoices use: draft, payment_requested, approved, rejected, expired,
// paid, canceled.
type DocumentStatus string

const (
	DocumentStatusDraft            DocumentStatus = "draft"
	DocumentStatusSentForApproval  DocumentStatus = "sent_for_approval"
	DocumentStatusPaymentRequested DocumentStatus = "payment_requested"
	DocumentStatusApproved         DocumentStatus = "approved"
	DocumentStatusRejected         DocumentStatus = "rejected"
	DocumentStatusExpired          DocumentStatus = "expired"
	DocumentStatusPaid             DocumentStatus = "paid"
	DocumentStatusCanceled         DocumentStatus = "canceled"
)

// Document is an estimate or invoice persisted in DynamoDB.
//
// Storage model:
//   - PK: id
//   - GSI1 (number-index): number
//
// Line items live in their own table keyed by document id.
type Document struct {
	ID             string         `json:"id"`
	Kind           DocumentKind   `json:"kind"`
	Number         string         `json:"number"`
	Status         DocumentStatus `json:"status"`
	ContactID      string         `json:"contact_id,omitempty"`
	OrganizationID string         `json:"organization_id,omitempty"`
	EventDate      string         `json:"event_date,omitempty"`
	EventVenue     string         `json:"event_venue,omitempty"`
	Notes          string         `json:"notes,omitempty"`
	Total          float64        `json:"total"`
	SourceID       string         `json:"source_id,omitempty"` // estimate an invoice was converted from
	CreatedAt      time.Time      `json:"created_at"`
	UpdatedAt      time.Time      `json:"updated_at"`
}

// PendingStatus is the status a document enters when an approval is issued.
func (k DocumentKind) PendingStatus() DocumentStatus {
	if k == DocumentKindInvoice {
		return DocumentStatusPaymentRequested
	}
	return DocumentStatusSentForApproval
}

// NumberPrefix is the prefix of generated sequential document numbers.
func (k DocumentKind) NumberPrefix() string {
	if k == DocumentKindInvoice {
		return "INV"
	}
	return "EST"
}

// FormatNumber renders the sequential counter value as a document number.
func (k DocumentKind) FormatNumber(seq int64) string {
	return fmt.Sprintf("%s-%06d", k.NumberPrefix(), seq)
}

func (k DocumentKind) Valid() bool {
	return k == DocumentKindEstimate || k == DocumentKindInvoice
}

// ValidStatus reports whether s belongs to kind k's status set.
func (k DocumentKind) ValidStatus(s DocumentStatus) bool {
	switch s {
	case DocumentStatusDraft, DocumentStatusApproved, DocumentStatusRejected, DocumentStatusExpired:
		return true
	case DocumentStatusSentForApproval:
		return k == DocumentKindEstimate
	case DocumentStatusPaymentRequested, DocumentStatusPaid, DocumentStatusCanceled:
		return k == DocumentKindInvoice
	}
	return false
}

// IsPending reports whether the document is awaiting a client response.
func (d Document) IsPending() bool {
	return d.Status == DocumentStatusSentForApproval || d.Status == DocumentStatusPaymentRequested
}

// IsTerminal reports whether the status ends the approval flow. Terminal
// statuses are only left again through a manual status edit.
func (d Document) IsTerminal() bool {
	switch d.Status {
	case DocumentStatusApproved, DocumentStatusRejected, DocumentStatusExpired, DocumentStatusPaid, DocumentStatusCanceled:
		return true
	}
	return false
}

// RoundCents rounds a monetary amount to two decimals.
func RoundCents(v float64) float64 {
	return math.Round(v*100) / 100
}
