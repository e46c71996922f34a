package interfaces

import (
	"context"
	"time"

	"eventpilot/internal/domain/entities"
)

// EmailMessage is a rendered notification ready for the provider API.
type EmailMessage struct {
	To       string
	Subject  string
	HTMLBody string
	TextBody string
}

// IEmailSender dispatches transactional email. Callers treat failures as
// non-critical: log and continue, never roll back.
type IEmailSender interface {
	Send(ctx context.Context, msg EmailMessage) error
}

// IActivityRecorder appends audit events. Same non-critical contract as
// email dispatch.
type IActivityRecorder interface {
	Record(ctx context.Context, ev entities.ActivityEvent) error
}

// IActivityReader lists recorded audit events for a document.
type IActivityReader interface {
	ListByDocument(ctx context.Context, documentID string) ([]entities.ActivityEvent, error)
}

// IDocumentRenderer renders a document PDF.
type IDocumentRenderer interface {
	Render(doc entities.Document, items []entities.LineItem, contact entities.Contact) ([]byte, error)
}

// IBlobStore uploads rendered documents to blob storage.
type IBlobStore interface {
	Upload(ctx context.Context, filename string, body []byte, contentType string) (location string, err error)
}

// ISnapshotCache caches public approval snapshots by token.
type ISnapshotCache interface {
	GetApproval(ctx context.Context, token string) (entities.ApprovalRecord, bool, error)
	SetApproval(ctx context.Context, token string, rec entities.ApprovalRecord, ttl time.Duration) error
	InvalidateApproval(ctx context.Context, token string) error
}
