package entities

import "time"

// ApprovalStatus is the lifecycle of an approval record. A record is
// created as "sent" and transitions exactly once to "approved" or
// "rejected"; once it leaves "sent" it is immutable.
type ApprovalStatus string

const (
	ApprovalStatusSent     ApprovalStatus = "sent"
	ApprovalStatusApproved ApprovalStatus = "approved"
	ApprovalStatusRejected ApprovalStatus = "rejected"
)

// SignaturePayload is captured at approval time and persisted only as part
// of its approval record.
type SignaturePayload struct {
	TypedName   string    `json:"typed_name"`
	Consent     bool      `json:"consent"`
	ImageData   string    `json:"image_data,omitempty"` // rendered signature, data URL
	IPAddress   string    `json:"ip_address,omitempty"`
	UserAgent   string    `json:"user_agent,omitempty"`
	Geolocation string    `json:"geolocation,omitempty"`
	SignedAt    time.Time `json:"signed_at"`
}

// DisclosureSnapshot is the title+content copy taken when a disclosure is
// attached to a document. Later edits to the template never change what
// the client agreed to. Each snapshot tracks its own acknowledgment.
type DisclosureSnapshot struct {
	DisclosureID string    `json:"disclosure_id"`
	Title        string    `json:"title"`
	Content      string    `json:"content"`
	SortOrder    int       `json:"sort_order"`
	Acknowledged bool      `json:"acknowledged"`
	AttachedAt   time.Time `json:"attached_at"`
}

// ApprovalRecord is a single-use, token-addressed approval request.
//
// Storage model:
//   - PK: token
//   - GSI1 (document_id-index): document_id
//
// The record carries a denormalized snapshot of the document and contact
// so the public approval page renders without touching other tables.
type ApprovalRecord struct {
	Token      string         `json:"token"`
	DocumentID string         `json:"document_id"`
	ContactID  string         `json:"contact_id"`
	Status     ApprovalStatus `json:"status"`

	// Snapshot for the public page.
	DocumentKind   DocumentKind         `json:"document_kind"`
	DocumentNumber string               `json:"document_number"`
	DocumentTotal  float64              `json:"document_total"`
	ContactName    string               `json:"contact_name"`
	ContactEmail   string               `json:"contact_email"`
	EventDate      string               `json:"event_date,omitempty"`
	EventVenue     string               `json:"event_venue,omitempty"`
	Disclosures    []DisclosureSnapshot `json:"disclosures,omitempty"`

	// Response, populated exactly once.
	ContactResponse string            `json:"contact_response,omitempty"` // rejection reason
	Signature       *SignaturePayload `json:"signature,omitempty"`
	RespondedAt     *time.Time        `json:"responded_at,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Responded reports whether the record already left the "sent" state.
func (a ApprovalRecord) Responded() bool {
	return a.Status != ApprovalStatusSent
}

// ApprovalDecision is the terminal state written by the public endpoint.
type ApprovalDecision struct {
	Status          ApprovalStatus
	ContactResponse string
	Signature       *SignaturePayload
	AcknowledgedIDs []string
	RespondedAt     time.Time
}
