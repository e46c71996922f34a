package usecase

import (
	"context"
	"errors"
	"testing"

	"eventpilot/internal/domain/entities"
	mock_interfaces "eventpilot/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func TestLineItemUseCase_Add(t *testing.T) {
	t.Run("invalid input", func(t *testing.T) {
		uc := NewLineItemUseCase(nil, nil, nil)
		cases := []AddLineItemInput{
			{DocumentID: "", Name: "Stage", Quantity: 1, UnitPrice: 10},
			{DocumentID: "doc-1", Name: "  ", Quantity: 1, UnitPrice: 10},
			{DocumentID: "doc-1", Name: "Stage", Quantity: 0, UnitPrice: 10},
			{DocumentID: "doc-1", Name: "Stage", Quantity: 1, UnitPrice: -1},
		}
		for _, input := range cases {
			if _, err := uc.Add(context.Background(), input); !errors.Is(err, ErrInvalidLineItem) {
				t.Fatalf("expected ErrInvalidLineItem for %+v, got %v", input, err)
			}
		}
	})

	t.Run("document not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockILineItemRepository(ctrl)
		docRepo := mock_interfaces.NewMockIDocumentRepository(ctrl)
		uc := NewLineItemUseCase(repo, docRepo, nil)

		docRepo.EXPECT().GetByID(gomock.Any(), "doc-1").Return(entities.Document{}, nil)

		_, err := uc.Add(context.Background(), AddLineItemInput{DocumentID: "doc-1", Name: "Stage", Quantity: 1, UnitPrice: 10})
		if !errors.Is(err, ErrDocumentNotFound) {
			t.Fatalf("expected ErrDocumentNotFound, got %v", err)
		}
	})

	t.Run("append takes next position and refreshes total", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockILineItemRepository(ctrl)
		docRepo := mock_interfaces.NewMockIDocumentRepository(ctrl)
		uc := NewLineItemUseCase(repo, docRepo, nil)

		existing := []entities.LineItem{
			{ID: "li-1", DocumentID: "doc-1", Name: "Stage", Quantity: 2, UnitPrice: 10, SortOrder: 0},
		}
		docRepo.EXPECT().GetByID(gomock.Any(), "doc-1").Return(entities.Document{ID: "doc-1"}, nil)
		repo.EXPECT().ListByDocument(gomock.Any(), "doc-1").Return(existing, nil)
		repo.EXPECT().Create(gomock.Any(), gomock.AssignableToTypeOf(entities.LineItem{})).DoAndReturn(
			func(_ context.Context, li entities.LineItem) (entities.LineItem, error) {
				if li.ID == "" || li.SortOrder != 1 || li.UnitPrice != 5.5 {
					t.Fatalf("unexpected line item: %+v", li)
				}
				return li, nil
			},
		)
		repo.EXPECT().ListByDocument(gomock.Any(), "doc-1").Return([]entities.LineItem{
			existing[0],
			{ID: "li-2", DocumentID: "doc-1", Name: "Lighting", Quantity: 1, UnitPrice: 5.5, SortOrder: 1},
		}, nil)
		docRepo.EXPECT().UpdateTotal(gomock.Any(), "doc-1", 25.5).Return(entities.Document{ID: "doc-1"}, nil)

		created, err := uc.Add(context.Background(), AddLineItemInput{
			DocumentID: "doc-1", Name: " Lighting ", Quantity: 1, UnitPrice: 5.499,
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if created.Name != "Lighting" || created.UnitPrice != 5.5 {
			t.Fatalf("unexpected line item: %+v", created)
		}
	})

	t.Run("at head shifts existing items", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockILineItemRepository(ctrl)
		docRepo := mock_interfaces.NewMockIDocumentRepository(ctrl)
		uc := NewLineItemUseCase(repo, docRepo, nil)

		existing := []entities.LineItem{
			{ID: "li-1", DocumentID: "doc-1", Quantity: 1, UnitPrice: 10, SortOrder: 0},
			{ID: "li-2", DocumentID: "doc-1", Quantity: 1, UnitPrice: 20, SortOrder: 1},
		}
		docRepo.EXPECT().GetByID(gomock.Any(), "doc-1").Return(entities.Document{ID: "doc-1"}, nil)
		repo.EXPECT().ListByDocument(gomock.Any(), "doc-1").Return(existing, nil)
		repo.EXPECT().SetSortOrders(gomock.Any(), "doc-1", map[string]int{"li-1": 1, "li-2": 2}).Return(nil)
		repo.EXPECT().Create(gomock.Any(), gomock.AssignableToTypeOf(entities.LineItem{})).DoAndReturn(
			func(_ context.Context, li entities.LineItem) (entities.LineItem, error) {
				if li.SortOrder != 0 {
					t.Fatalf("expected head position, got %d", li.SortOrder)
				}
				return li, nil
			},
		)
		repo.EXPECT().ListByDocument(gomock.Any(), "doc-1").Return(existing, nil)
		docRepo.EXPECT().UpdateTotal(gomock.Any(), "doc-1", 30.0).Return(entities.Document{ID: "doc-1"}, nil)

		if _, err := uc.Add(context.Background(), AddLineItemInput{
			DocumentID: "doc-1", Name: "Rush setup", Quantity: 1, UnitPrice: 50, AtHead: true,
		}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}

func TestLineItemUseCase_AddFromProduct(t *testing.T) {
	t.Run("empty product id", func(t *testing.T) {
		uc := NewLineItemUseCase(nil, nil, nil)
		_, err := uc.AddFromProduct(context.Background(), "doc-1", "  ", 1, false)
		if !errors.Is(err, ErrProductNotFound) {
			t.Fatalf("expected ErrProductNotFound, got %v", err)
		}
	})

	t.Run("product not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		productRepo := mock_interfaces.NewMockIProductRepository(ctrl)
		uc := NewLineItemUseCase(nil, nil, productRepo)

		productRepo.EXPECT().GetByID(gomock.Any(), "p-1").Return(entities.Product{}, nil)

		_, err := uc.AddFromProduct(context.Background(), "doc-1", "p-1", 1, false)
		if !errors.Is(err, ErrProductNotFound) {
			t.Fatalf("expected ErrProductNotFound, got %v", err)
		}
	})

	t.Run("copies catalog fields", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockILineItemRepository(ctrl)
		docRepo := mock_interfaces.NewMockIDocumentRepository(ctrl)
		productRepo := mock_interfaces.NewMockIProductRepository(ctrl)
		uc := NewLineItemUseCase(repo, docRepo, productRepo)

		productRepo.EXPECT().GetByID(gomock.Any(), "p-1").Return(entities.Product{
			ID: "p-1", Name: "LED Wall", Description: "4x3m panel", UnitPrice: 800, Active: true,
		}, nil)
		docRepo.EXPECT().GetByID(gomock.Any(), "doc-1").Return(entities.Document{ID: "doc-1"}, nil)
		repo.EXPECT().ListByDocument(gomock.Any(), "doc-1").Return(nil, nil)
		repo.EXPECT().Create(gomock.Any(), gomock.AssignableToTypeOf(entities.LineItem{})).DoAndReturn(
			func(_ context.Context, li entities.LineItem) (entities.LineItem, error) {
				if li.Name != "LED Wall" || li.ProductID != "p-1" || li.UnitPrice != 800.0 || li.Quantity != 2 {
					t.Fatalf("unexpected line item: %+v", li)
				}
				if li.IsCustom {
					t.Fatalf("catalog copy must not be custom")
				}
				return li, nil
			},
		)
		repo.EXPECT().ListByDocument(gomock.Any(), "doc-1").Return([]entities.LineItem{
			{ID: "li-1", Quantity: 2, UnitPrice: 800},
		}, nil)
		docRepo.EXPECT().UpdateTotal(gomock.Any(), "doc-1", 1600.0).Return(entities.Document{ID: "doc-1"}, nil)

		if _, err := uc.AddFromProduct(context.Background(), "doc-1", "p-1", 2, false); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}

func TestLineItemUseCase_AddServiceFee(t *testing.T) {
	t.Run("duplicate fee", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockILineItemRepository(ctrl)
		docRepo := mock_interfaces.NewMockIDocumentRepository(ctrl)
		uc := NewLineItemUseCase(repo, docRepo, nil)

		docRepo.EXPECT().GetByID(gomock.Any(), "doc-1").Return(entities.Document{ID: "doc-1"}, nil)
		repo.EXPECT().ListByDocument(gomock.Any(), "doc-1").Return([]entities.LineItem{
			{ID: "li-fee", IsServiceFee: true},
		}, nil)

		_, err := uc.AddServiceFee(context.Background(), "doc-1")
		if !errors.Is(err, ErrDuplicateServiceFee) {
			t.Fatalf("expected ErrDuplicateServiceFee, got %v", err)
		}
	})

	t.Run("derives fee from subtotal", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockILineItemRepository(ctrl)
		docRepo := mock_interfaces.NewMockIDocumentRepository(ctrl)
		uc := NewLineItemUseCase(repo, docRepo, nil)

		items := []entities.LineItem{
			{ID: "li-1", Quantity: 2, UnitPrice: 10, SortOrder: 0},
			{ID: "li-2", Quantity: 1, UnitPrice: 5, SortOrder: 1},
		}
		docRepo.EXPECT().GetByID(gomock.Any(), "doc-1").Return(entities.Document{ID: "doc-1"}, nil)
		repo.EXPECT().ListByDocument(gomock.Any(), "doc-1").Return(items, nil)
		repo.EXPECT().Create(gomock.Any(), gomock.AssignableToTypeOf(entities.LineItem{})).DoAndReturn(
			func(_ context.Context, li entities.LineItem) (entities.LineItem, error) {
				// 3.5% of 25.00 rounds to 0.88.
				if !li.IsServiceFee || li.Quantity != 1 || li.UnitPrice != 0.88 {
					t.Fatalf("unexpected fee line: %+v", li)
				}
				if li.Name != "Service Fee" || li.SortOrder != 2 {
					t.Fatalf("unexpected fee line: %+v", li)
				}
				return li, nil
			},
		)
		repo.EXPECT().ListByDocument(gomock.Any(), "doc-1").Return(append(items, entities.LineItem{
			ID: "li-fee", Quantity: 1, UnitPrice: 0.88, IsServiceFee: true, SortOrder: 2,
		}), nil)
		docRepo.EXPECT().UpdateTotal(gomock.Any(), "doc-1", 25.88).Return(entities.Document{ID: "doc-1"}, nil)

		fee, err := uc.AddServiceFee(context.Background(), "doc-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if fee.UnitPrice != 0.88 {
			t.Fatalf("unexpected fee amount: %v", fee.UnitPrice)
		}
	})
}

func TestLineItemUseCase_Update(t *testing.T) {
	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockILineItemRepository(ctrl)
		uc := NewLineItemUseCase(repo, nil, nil)

		repo.EXPECT().GetByID(gomock.Any(), "doc-1", "li-1").Return(entities.LineItem{}, nil)

		_, err := uc.Update(context.Background(), UpdateLineItemInput{DocumentID: "doc-1", ItemID: "li-1", Quantity: 1, UnitPrice: 1})
		if !errors.Is(err, ErrLineItemNotFound) {
			t.Fatalf("expected ErrLineItemNotFound, got %v", err)
		}
	})

	t.Run("edit re-derives fee and total", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockILineItemRepository(ctrl)
		docRepo := mock_interfaces.NewMockIDocumentRepository(ctrl)
		uc := NewLineItemUseCase(repo, docRepo, nil)

		repo.EXPECT().GetByID(gomock.Any(), "doc-1", "li-1").Return(entities.LineItem{
			ID: "li-1", DocumentID: "doc-1", Name: "Stage", Quantity: 2, UnitPrice: 10,
		}, nil)
		repo.EXPECT().Update(gomock.Any(), gomock.AssignableToTypeOf(entities.LineItem{})).DoAndReturn(
			func(_ context.Context, li entities.LineItem) (entities.LineItem, error) {
				if li.Quantity != 10 || li.UnitPrice != 10.0 {
					t.Fatalf("unexpected update: %+v", li)
				}
				return li, nil
			},
		)
		repo.EXPECT().ListByDocument(gomock.Any(), "doc-1").Return([]entities.LineItem{
			{ID: "li-1", DocumentID: "doc-1", Quantity: 10, UnitPrice: 10, SortOrder: 0},
			{ID: "li-fee", DocumentID: "doc-1", Quantity: 1, UnitPrice: 0.7, IsServiceFee: true, SortOrder: 1},
		}, nil)
		// Stale fee (0.70 for the old subtotal) is rewritten to 3.50.
		repo.EXPECT().Update(gomock.Any(), gomock.AssignableToTypeOf(entities.LineItem{})).DoAndReturn(
			func(_ context.Context, li entities.LineItem) (entities.LineItem, error) {
				if li.ID != "li-fee" || li.UnitPrice != 3.5 || li.Quantity != 1 {
					t.Fatalf("unexpected fee rewrite: %+v", li)
				}
				return li, nil
			},
		)
		docRepo.EXPECT().UpdateTotal(gomock.Any(), "doc-1", 103.5).Return(entities.Document{ID: "doc-1"}, nil)

		updated, err := uc.Update(context.Background(), UpdateLineItemInput{
			DocumentID: "doc-1", ItemID: "li-1", Quantity: 10, UnitPrice: 10,
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if updated.Quantity != 10 {
			t.Fatalf("unexpected item: %+v", updated)
		}
	})

	t.Run("fee line qty and price are not editable", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockILineItemRepository(ctrl)
		docRepo := mock_interfaces.NewMockIDocumentRepository(ctrl)
		uc := NewLineItemUseCase(repo, docRepo, nil)

		repo.EXPECT().GetByID(gomock.Any(), "doc-1", "li-fee").Return(entities.LineItem{
			ID: "li-fee", DocumentID: "doc-1", Name: "Service Fee", Quantity: 1, UnitPrice: 3.5, IsServiceFee: true,
		}, nil)
		repo.EXPECT().Update(gomock.Any(), gomock.AssignableToTypeOf(entities.LineItem{})).DoAndReturn(
			func(_ context.Context, li entities.LineItem) (entities.LineItem, error) {
				if li.Quantity != 1 || li.UnitPrice != 3.5 {
					t.Fatalf("fee line must keep derived values, got %+v", li)
				}
				return li, nil
			},
		)
		repo.EXPECT().ListByDocument(gomock.Any(), "doc-1").Return([]entities.LineItem{
			{ID: "li-1", Quantity: 10, UnitPrice: 10, SortOrder: 0},
			{ID: "li-fee", Quantity: 1, UnitPrice: 3.5, IsServiceFee: true, SortOrder: 1},
		}, nil)
		docRepo.EXPECT().UpdateTotal(gomock.Any(), "doc-1", 103.5).Return(entities.Document{ID: "doc-1"}, nil)

		if _, err := uc.Update(context.Background(), UpdateLineItemInput{
			DocumentID: "doc-1", ItemID: "li-fee", Quantity: 99, UnitPrice: 1000,
		}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}

func TestLineItemUseCase_Delete(t *testing.T) {
	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockILineItemRepository(ctrl)
		uc := NewLineItemUseCase(repo, nil, nil)

		repo.EXPECT().GetByID(gomock.Any(), "doc-1", "li-1").Return(entities.LineItem{}, nil)

		if err := uc.Delete(context.Background(), "doc-1", "li-1"); !errors.Is(err, ErrLineItemNotFound) {
			t.Fatalf("expected ErrLineItemNotFound, got %v", err)
		}
	})

	t.Run("re-densifies sort order", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockILineItemRepository(ctrl)
		docRepo := mock_interfaces.NewMockIDocumentRepository(ctrl)
		uc := NewLineItemUseCase(repo, docRepo, nil)

		repo.EXPECT().GetByID(gomock.Any(), "doc-1", "li-2").Return(entities.LineItem{ID: "li-2", DocumentID: "doc-1"}, nil)
		repo.EXPECT().Delete(gomock.Any(), "doc-1", "li-2").Return(nil)
		remaining := []entities.LineItem{
			{ID: "li-1", Quantity: 1, UnitPrice: 10, SortOrder: 0},
			{ID: "li-3", Quantity: 1, UnitPrice: 20, SortOrder: 2},
		}
		repo.EXPECT().ListByDocument(gomock.Any(), "doc-1").Return(remaining, nil)
		repo.EXPECT().SetSortOrders(gomock.Any(), "doc-1", map[string]int{"li-1": 0, "li-3": 1}).Return(nil)
		repo.EXPECT().ListByDocument(gomock.Any(), "doc-1").Return(remaining, nil)
		docRepo.EXPECT().UpdateTotal(gomock.Any(), "doc-1", 30.0).Return(entities.Document{ID: "doc-1"}, nil)

		if err := uc.Delete(context.Background(), "doc-1", "li-2"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}

func TestLineItemUseCase_Reorder(t *testing.T) {
	items := []entities.LineItem{
		{ID: "li-1", SortOrder: 0},
		{ID: "li-2", SortOrder: 1},
		{ID: "li-3", SortOrder: 2},
	}

	t.Run("length mismatch", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockILineItemRepository(ctrl)
		uc := NewLineItemUseCase(repo, nil, nil)

		repo.EXPECT().ListByDocument(gomock.Any(), "doc-1").Return(items, nil)

		_, err := uc.Reorder(context.Background(), "doc-1", []string{"li-1", "li-2"})
		if !errors.Is(err, ErrInvalidReorder) {
			t.Fatalf("expected ErrInvalidReorder, got %v", err)
		}
	})

	t.Run("unknown id", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockILineItemRepository(ctrl)
		uc := NewLineItemUseCase(repo, nil, nil)

		repo.EXPECT().ListByDocument(gomock.Any(), "doc-1").Return(items, nil)

		_, err := uc.Reorder(context.Background(), "doc-1", []string{"li-1", "li-2", "li-9"})
		if !errors.Is(err, ErrInvalidReorder) {
			t.Fatalf("expected ErrInvalidReorder, got %v", err)
		}
	})

	t.Run("duplicate id", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockILineItemRepository(ctrl)
		uc := NewLineItemUseCase(repo, nil, nil)

		repo.EXPECT().ListByDocument(gomock.Any(), "doc-1").Return(items, nil)

		_, err := uc.Reorder(context.Background(), "doc-1", []string{"li-1", "li-2", "li-2"})
		if !errors.Is(err, ErrInvalidReorder) {
			t.Fatalf("expected ErrInvalidReorder, got %v", err)
		}
	})

	t.Run("valid permutation", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockILineItemRepository(ctrl)
		uc := NewLineItemUseCase(repo, nil, nil)

		repo.EXPECT().ListByDocument(gomock.Any(), "doc-1").Return(items, nil)
		repo.EXPECT().SetSortOrders(gomock.Any(), "doc-1", map[string]int{"li-3": 0, "li-1": 1, "li-2": 2}).Return(nil)
		repo.EXPECT().ListByDocument(gomock.Any(), "doc-1").Return([]entities.LineItem{
			{ID: "li-3", SortOrder: 0},
			{ID: "li-1", SortOrder: 1},
			{ID: "li-2", SortOrder: 2},
		}, nil)

		reordered, err := uc.Reorder(context.Background(), "doc-1", []string{"li-3", "li-1", "li-2"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(reordered) != 3 || reordered[0].ID != "li-3" {
			t.Fatalf("unexpected order: %+v", reordered)
		}
	})
}
