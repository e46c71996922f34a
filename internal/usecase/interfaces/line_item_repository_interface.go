package interfaces

import (
	"context"

	"eventpilot/internal/domain/entities"
)

// ILineItemRepository abstracts DynamoDB persistence for line items.
type ILineItemRepository interface {
	Create(ctx context.Context, li entities.LineItem) (entities.LineItem, error)
	GetByID(ctx context.Context, documentID, itemID string) (entities.LineItem, error)
	// ListByDocument returns items ordered by ascending sort order.
	ListByDocument(ctx context.Context, documentID string) ([]entities.LineItem, error)
	Update(ctx context.Context, li entities.LineItem) (entities.LineItem, error)
	Delete(ctx context.Context, documentID, itemID string) error
	// SetSortOrders persists one sort position per item id. The writes are
	// independent; partial failure does not roll back completed ones.
	SetSortOrders(ctx context.Context, documentID string, orders map[string]int) error
}
