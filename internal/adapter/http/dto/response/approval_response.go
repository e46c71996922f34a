package response

import (
	"time"

	"eventpilot/internal/domain/entities"
)

type DisclosureSnapshotResponse struct {
	DisclosureID string `json:"disclosure_id"`
	Title        string `json:"title"`
	Content      string `json:"content"`
	SortOrder    int    `json:"sort_order"`
	Acknowledged bool   `json:"acknowledged"`
}

// ApprovalResponse is the operator-facing view of an approval record,
// token included.
type ApprovalResponse struct {
	Token           string                       `json:"token"`
	DocumentID      string                       `json:"document_id"`
	ContactID       string                       `json:"contact_id"`
	Status          string                       `json:"status"`
	ContactResponse string                       `json:"contact_response,omitempty"`
	Disclosures     []DisclosureSnapshotResponse `json:"disclosures,omitempty"`
	RespondedAt     *time.Time                   `json:"responded_at,omitempty"`
	CreatedAt       time.Time                    `json:"created_at"`
}

// PublicApprovalResponse is the client-facing snapshot served on the
// token URL. It never exposes internal IDs.
type PublicApprovalResponse struct {
	DocumentKind    string                       `json:"document_kind"`
	DocumentNumber  string                       `json:"document_number"`
	DocumentTotal   float64                      `json:"document_total"`
	ContactName     string                       `json:"contact_name"`
	EventDate       string                       `json:"event_date,omitempty"`
	EventVenue      string                       `json:"event_venue,omitempty"`
	Status          string                       `json:"status"`
	ContactResponse string                       `json:"contact_response,omitempty"`
	Disclosures     []DisclosureSnapshotResponse `json:"disclosures,omitempty"`
	RespondedAt     *time.Time                   `json:"responded_at,omitempty"`
}

func fromSnapshots(snaps []entities.DisclosureSnapshot) []DisclosureSnapshotResponse {
	out := make([]DisclosureSnapshotResponse, 0, len(snaps))
	for _, s := range snaps {
		out = append(out, DisclosureSnapshotResponse{
			DisclosureID: s.DisclosureID,
			Title:        s.Title,
			Content:      s.Content,
			SortOrder:    s.SortOrder,
			Acknowledged: s.Acknowledged,
		})
	}
	return out
}

func FromApproval(rec entities.ApprovalRecord) ApprovalResponse {
	return ApprovalResponse{
		Token:           rec.Token,
		DocumentID:      rec.DocumentID,
		ContactID:       rec.ContactID,
		Status:          string(rec.Status),
		ContactResponse: rec.ContactResponse,
		Disclosures:     fromSnapshots(rec.Disclosures),
		RespondedAt:     rec.RespondedAt,
		CreatedAt:       rec.CreatedAt,
	}
}

func FromApprovalPublic(rec entities.ApprovalRecord) PublicApprovalResponse {
	return PublicApprovalResponse{
		DocumentKind:    string(rec.DocumentKind),
		DocumentNumber:  rec.DocumentNumber,
		DocumentTotal:   rec.DocumentTotal,
		ContactName:     rec.ContactName,
		EventDate:       rec.EventDate,
		EventVenue:      rec.EventVenue,
		Status:          string(rec.Status),
		ContactResponse: rec.ContactResponse,
		Disclosures:     fromSnapshots(rec.Disclosures),
		RespondedAt:     rec.RespondedAt,
	}
}
