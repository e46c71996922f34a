package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"eventpilot/internal/domain/entities"
	"eventpilot/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var (
	ErrLineItemNotFound    = errors.New("line item not found")
	ErrInvalidLineItem     = errors.New("invalid line item")
	ErrDuplicateServiceFee = errors.New("document already has a service fee item")
	ErrInvalidReorder      = errors.New("reorder must permute the document's item ids")
	ErrProductNotFound     = errors.New("product not found")
)

// ILineItemUseCase manages a document's ordered line items.
//
// Every mutation re-derives the service-fee line (3.5% of the non-fee
// subtotal, at most one per document) and the persisted document total.
type ILineItemUseCase interface {
	Add(ctx context.Context, input AddLineItemInput) (entities.LineItem, error)
	AddFromProduct(ctx context.Context, documentID, productID string, quantity int, atHead bool) (entities.LineItem, error)
	AddServiceFee(ctx context.Context, documentID string) (entities.LineItem, error)
	Update(ctx context.Context, input UpdateLineItemInput) (entities.LineItem, error)
	Delete(ctx context.Context, documentID, itemID string) error
	// Reorder persists a dense zero-based sort order matching orderedIDs.
	Reorder(ctx context.Context, documentID string, orderedIDs []string) ([]entities.LineItem, error)
	ListByDocument(ctx context.Context, documentID string) ([]entities.LineItem, error)
}

type AddLineItemInput struct {
	DocumentID  string
	Name        string
	Description string
	Quantity    int
	UnitPrice   float64
	ProductID   string
	IsCustom    bool
	AtHead      bool
}

type UpdateLineItemInput struct {
	DocumentID  string
	ItemID      string
	Name        string
	Description string
	Quantity    int
	UnitPrice   float64
}

type LineItemUseCase struct {
	repo        interfaces.ILineItemRepository
	docRepo     interfaces.IDocumentRepository
	productRepo interfaces.IProductRepository
}

var _ ILineItemUseCase = (*LineItemUseCase)(nil)

func NewLineItemUseCase(repo interfaces.ILineItemRepository, docRepo interfaces.IDocumentRepository, productRepo interfaces.IProductRepository) *LineItemUseCase {
	return &LineItemUseCase{repo: repo, docRepo: docRepo, productRepo: productRepo}
}

func (u *LineItemUseCase) Add(ctx context.Context, input AddLineItemInput) (entities.LineItem, error) {
	documentID := strings.TrimSpace(input.DocumentID)
	name := strings.TrimSpace(input.Name)
	if documentID == "" || name == "" || input.Quantity <= 0 || input.UnitPrice < 0 {
		return entities.LineItem{}, ErrInvalidLineItem
	}
	if _, err := u.mustDocument(ctx, documentID); err != nil {
		return entities.LineItem{}, err
	}

	items, err := u.repo.ListByDocument(ctx, documentID)
	if err != nil {
		return entities.LineItem{}, err
	}

	position := len(items)
	if input.AtHead {
		// Shift every existing item up one before taking position zero.
		orders := make(map[string]int, len(items))
		for _, li := range items {
			orders[li.ID] = li.SortOrder + 1
		}
		if len(orders) > 0 {
			if err := u.repo.SetSortOrders(ctx, documentID, orders); err != nil {
				return entities.LineItem{}, err
			}
		}
		position = 0
	}

	now := time.Now().UTC()
	li := entities.LineItem{
		ID:          uuid.NewString(),
		DocumentID:  documentID,
		Name:        name,
		Description: strings.TrimSpace(input.Description),
		Quantity:    input.Quantity,
		UnitPrice:   entities.RoundCents(input.UnitPrice),
		ProductID:   strings.TrimSpace(input.ProductID),
		IsCustom:    input.IsCustom,
		SortOrder:   position,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	created, err := u.repo.Create(ctx, li)
	if err != nil {
		return entities.LineItem{}, err
	}

	if err := u.reconcile(ctx, documentID); err != nil {
		return entities.LineItem{}, err
	}
	return created, nil
}

func (u *LineItemUseCase) AddFromProduct(ctx context.Context, documentID, productID string, quantity int, atHead bool) (entities.LineItem, error) {
	productID = strings.TrimSpace(productID)
	if productID == "" {
		return entities.LineItem{}, ErrProductNotFound
	}
	p, err := u.productRepo.GetByID(ctx, productID)
	if err != nil {
		return entities.LineItem{}, err
	}
	if p.ID == "" {
		return entities.LineItem{}, ErrProductNotFound
	}

	seed := p.CopyToLineItem(documentID, quantity)
	return u.Add(ctx, AddLineItemInput{
		DocumentID:  documentID,
		Name:        seed.Name,
		Description: seed.Description,
		Quantity:    seed.Quantity,
		UnitPrice:   seed.UnitPrice,
		ProductID:   seed.ProductID,
		AtHead:      atHead,
	})
}

func (u *LineItemUseCase) AddServiceFee(ctx context.Context, documentID string) (entities.LineItem, error) {
	documentID = strings.TrimSpace(documentID)
	if documentID == "" {
		return entities.LineItem{}, ErrInvalidLineItem
	}
	if _, err := u.mustDocument(ctx, documentID); err != nil {
		return entities.LineItem{}, err
	}

	items, err := u.repo.ListByDocument(ctx, documentID)
	if err != nil {
		return entities.LineItem{}, err
	}
	if _, exists := entities.FindServiceFee(items); exists {
		return entities.LineItem{}, ErrDuplicateServiceFee
	}

	now := time.Now().UTC()
	fee := entities.LineItem{
		ID:           uuid.NewString(),
		DocumentID:   documentID,
		Name:         "Service Fee",
		Quantity:     1,
		UnitPrice:    entities.ServiceFeeAmount(items),
		IsServiceFee: true,
		SortOrder:    len(items),
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	created, err := u.repo.Create(ctx, fee)
	if err != nil {
		return entities.LineItem{}, err
	}
	if err := u.updateDocumentTotal(ctx, documentID); err != nil {
		return entities.LineItem{}, err
	}
	return created, nil
}

func (u *LineItemUseCase) Update(ctx context.Context, input UpdateLineItemInput) (entities.LineItem, error) {
	documentID := strings.TrimSpace(input.DocumentID)
	itemID := strings.TrimSpace(input.ItemID)
	if documentID == "" || itemID == "" || input.Quantity <= 0 || input.UnitPrice < 0 {
		return entities.LineItem{}, ErrInvalidLineItem
	}

	li, err := u.repo.GetByID(ctx, documentID, itemID)
	if err != nil {
		return entities.LineItem{}, err
	}
	if li.ID == "" {
		return entities.LineItem{}, ErrLineItemNotFound
	}

	if name := strings.TrimSpace(input.Name); name != "" {
		li.Name = name
	}
	li.Description = strings.TrimSpace(input.Description)
	if !li.IsServiceFee {
		// The fee line's qty/price are derived, never edited directly.
		li.Quantity = input.Quantity
		li.UnitPrice = entities.RoundCents(input.UnitPrice)
	}
	li.UpdatedAt = time.Now().UTC()

	updated, err := u.repo.Update(ctx, li)
	if err != nil {
		return entities.LineItem{}, err
	}
	if err := u.reconcile(ctx, documentID); err != nil {
		return entities.LineItem{}, err
	}
	return updated, nil
}

func (u *LineItemUseCase) Delete(ctx context.Context, documentID, itemID string) error {
	documentID = strings.TrimSpace(documentID)
	itemID = strings.TrimSpace(itemID)
	if documentID == "" || itemID == "" {
		return ErrInvalidLineItem
	}

	li, err := u.repo.GetByID(ctx, documentID, itemID)
	if err != nil {
		return err
	}
	if li.ID == "" {
		return ErrLineItemNotFound
	}
	if err := u.repo.Delete(ctx, documentID, itemID); err != nil {
		return err
	}

	// Close the gap left by the removed position.
	items, err := u.repo.ListByDocument(ctx, documentID)
	if err != nil {
		return err
	}
	orders := make(map[string]int, len(items))
	for i, it := range items {
		orders[it.ID] = i
	}
	if len(orders) > 0 {
		if err := u.repo.SetSortOrders(ctx, documentID, orders); err != nil {
			return err
		}
	}

	return u.reconcile(ctx, documentID)
}

func (u *LineItemUseCase) Reorder(ctx context.Context, documentID string, orderedIDs []string) ([]entities.LineItem, error) {
	documentID = strings.TrimSpace(documentID)
	if documentID == "" {
		return nil, ErrInvalidLineItem
	}

	items, err := u.repo.ListByDocument(ctx, documentID)
	if err != nil {
		return nil, err
	}
	if len(orderedIDs) != len(items) {
		return nil, ErrInvalidReorder
	}
	existing := make(map[string]bool, len(items))
	for _, li := range items {
		existing[li.ID] = true
	}
	orders := make(map[string]int, len(orderedIDs))
	for i, id := range orderedIDs {
		if !existing[id] {
			return nil, ErrInvalidReorder
		}
		if _, dup := orders[id]; dup {
			return nil, ErrInvalidReorder
		}
		orders[id] = i
	}

	if err := u.repo.SetSortOrders(ctx, documentID, orders); err != nil {
		return nil, err
	}
	return u.repo.ListByDocument(ctx, documentID)
}

func (u *LineItemUseCase) ListByDocument(ctx context.Context, documentID string) ([]entities.LineItem, error) {
	documentID = strings.TrimSpace(documentID)
	if documentID == "" {
		return nil, ErrInvalidLineItem
	}
	return u.repo.ListByDocument(ctx, documentID)
}

// reconcile re-derives the service-fee line from the current non-fee
// subtotal and refreshes the persisted document total.
func (u *LineItemUseCase) reconcile(ctx context.Context, documentID string) error {
	items, err := u.repo.ListByDocument(ctx, documentID)
	if err != nil {
		return err
	}

	if fee, ok := entities.FindServiceFee(items); ok {
		amount := entities.ServiceFeeAmount(items)
		if fee.UnitPrice != amount || fee.Quantity != 1 {
			fee.Quantity = 1
			fee.UnitPrice = amount
			fee.UpdatedAt = time.Now().UTC()
			if _, err := u.repo.Update(ctx, fee); err != nil {
				return err
			}
			for i := range items {
				if items[i].ID == fee.ID {
					items[i] = fee
				}
			}
		}
	}

	_, err = u.docRepo.UpdateTotal(ctx, documentID, entities.GrandTotal(items))
	return err
}

func (u *LineItemUseCase) updateDocumentTotal(ctx context.Context, documentID string) error {
	items, err := u.repo.ListByDocument(ctx, documentID)
	if err != nil {
		return err
	}
	_, err = u.docRepo.UpdateTotal(ctx, documentID, entities.GrandTotal(items))
	return err
}

func (u *LineItemUseCase) mustDocument(ctx context.Context, documentID string) (entities.Document, error) {
	d, err := u.docRepo.GetByID(ctx, documentID)
	if err != nil {
		return entities.Document{}, err
	}
	if d.ID == "" {
		return entities.Document{}, ErrDocumentNotFound
	}
	return d, nil
}
