package request

import "strings"

// CreateDocumentRequest is the payload for estimate and invoice creation.
// The kind comes from the route, not the body.
type CreateDocumentRequest struct {
	ContactID      string `json:"contact_id"`
	OrganizationID string `json:"organization_id"`
	EventDate      string `json:"event_date"`
	EventVenue     string `json:"event_venue"`
	Notes          string `json:"notes"`
}

type UpdateDocumentStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

func (r UpdateDocumentStatusRequest) ResolveStatus() string {
	return strings.ToLower(strings.TrimSpace(r.Status))
}
