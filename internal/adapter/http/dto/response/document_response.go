package response

import (
	"time"

	"eventpilot/internal/domain/entities"
)

type DocumentResponse struct {
	ID             string    `json:"id"`
	Kind           string    `json:"kind"`
	Number         string    `json:"number"`
	Status         string    `json:"status"`
	ContactID      string    `json:"contact_id,omitempty"`
	OrganizationID string    `json:"organization_id,omitempty"`
	EventDate      string    `json:"event_date,omitempty"`
	EventVenue     string    `json:"event_venue,omitempty"`
	Notes          string    `json:"notes,omitempty"`
	Total          float64   `json:"total"`
	SourceID       string    `json:"source_id,omitempty"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

func FromDocument(d entities.Document) DocumentResponse {
	return DocumentResponse{
		ID:             d.ID,
		Kind:           string(d.Kind),
		Number:         d.Number,
		Status:         string(d.Status),
		ContactID:      d.ContactID,
		OrganizationID: d.OrganizationID,
		EventDate:      d.EventDate,
		EventVenue:     d.EventVenue,
		Notes:          d.Notes,
		Total:          d.Total,
		SourceID:       d.SourceID,
		CreatedAt:      d.CreatedAt,
		UpdatedAt:      d.UpdatedAt,
	}
}

func FromDocuments(docs []entities.Document) []DocumentResponse {
	out := make([]DocumentResponse, 0, len(docs))
	for _, d := range docs {
		out = append(out, FromDocument(d))
	}
	return out
}
