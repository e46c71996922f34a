package request

import "strings"

// IssueApprovalRequest starts (or re-starts) the approval flow for a
// document. Resend must be true to re-issue after a document is already
// approved.
type IssueApprovalRequest struct {
	ContactID     string   `json:"contact_id"`
	DisclosureIDs []string `json:"disclosure_ids"`
	Resend        bool     `json:"resend"`
}

// SignatureRequest is the client-side signature block captured on approval.
type SignatureRequest struct {
	TypedName   string `json:"typed_name"`
	Consent     bool   `json:"consent"`
	ImageData   string `json:"image_data"`
	Geolocation string `json:"geolocation"`
}

// RespondApprovalRequest is the public decision payload.
type RespondApprovalRequest struct {
	Status          string            `json:"status" binding:"required"`
	ContactResponse string            `json:"contact_response"`
	Signature       *SignatureRequest `json:"signature"`
	AcknowledgedIDs []string          `json:"acknowledged_disclosure_ids"`
}

func (r RespondApprovalRequest) ResolveStatus() string {
	return strings.ToLower(strings.TrimSpace(r.Status))
}
