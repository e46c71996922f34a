package interfaces

import (
	"context"

	"eventpilot/internal/domain/entities"
)

// IDisclosureRepository abstracts DynamoDB persistence for disclosure
// templates and the per-document snapshots copied from them.
type IDisclosureRepository interface {
	Create(ctx context.Context, d entities.Disclosure) (entities.Disclosure, error)
	GetByID(ctx context.Context, id string) (entities.Disclosure, error)
	ListActive(ctx context.Context) ([]entities.Disclosure, error)
	Update(ctx context.Context, d entities.Disclosure) (entities.Disclosure, error)

	// ReplaceForDocument deletes the document's previously attached
	// snapshot set and writes the new one. Attaching never accumulates
	// duplicates.
	ReplaceForDocument(ctx context.Context, documentID string, snapshots []entities.DisclosureSnapshot) error
	ListForDocument(ctx context.Context, documentID string) ([]entities.DisclosureSnapshot, error)
	// MarkAcknowledged flips the acknowledged flag on the given snapshots.
	MarkAcknowledged(ctx context.Context, documentID string, disclosureIDs []string) error
}
