package interfaces

import (
	"context"

	"eventpilot/internal/domain/entities"
)

// IDocumentRepository abstracts DynamoDB persistence for documents.
//
// Not-found is reported as a zero-value entity; use cases translate that
// to their own sentinel errors.
type IDocumentRepository interface {
	Create(ctx context.Context, d entities.Document) (entities.Document, error)
	GetByID(ctx context.Context, id string) (entities.Document, error)
	ListByKind(ctx context.Context, kind entities.DocumentKind) ([]entities.Document, error)
	// UpdateStatus writes the new status unconditionally (manual edits).
	UpdateStatus(ctx context.Context, id string, status entities.DocumentStatus) (entities.Document, error)
	UpdateTotal(ctx context.Context, id string, total float64) (entities.Document, error)
	// NextNumber atomically increments the per-kind counter and returns
	// the new sequence value.
	NextNumber(ctx context.Context, kind entities.DocumentKind) (int64, error)
}
