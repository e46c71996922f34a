package usecase

import (
	"context"
	"errors"
	"testing"

	"eventpilot/internal/domain/entities"
	mock_interfaces "eventpilot/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
	"go.uber.org/zap"
)

func TestDocumentUseCase_Create(t *testing.T) {
	t.Run("invalid kind", func(t *testing.T) {
		uc := NewDocumentUseCase(nil, nil, nil, zap.NewNop())
		_, err := uc.Create(context.Background(), CreateDocumentInput{Kind: "quote"})
		if !errors.Is(err, ErrInvalidKind) {
			t.Fatalf("expected ErrInvalidKind, got %v", err)
		}
	})

	t.Run("next number error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIDocumentRepository(ctrl)
		uc := NewDocumentUseCase(repo, nil, nil, zap.NewNop())

		repo.EXPECT().NextNumber(gomock.Any(), entities.DocumentKindEstimate).Return(int64(0), errors.New("db"))

		_, err := uc.Create(context.Background(), CreateDocumentInput{Kind: entities.DocumentKindEstimate})
		if err == nil || err.Error() != "db" {
			t.Fatalf("expected db error, got %v", err)
		}
	})

	t.Run("create estimate success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIDocumentRepository(ctrl)
		uc := NewDocumentUseCase(repo, nil, nil, zap.NewNop())

		repo.EXPECT().NextNumber(gomock.Any(), entities.DocumentKindEstimate).Return(int64(7), nil)
		repo.EXPECT().Create(gomock.Any(), gomock.AssignableToTypeOf(entities.Document{})).DoAndReturn(
			func(_ context.Context, d entities.Document) (entities.Document, error) {
				if d.ID == "" || d.Number != "EST-000007" || d.Status != entities.DocumentStatusDraft {
					t.Fatalf("unexpected document: %+v", d)
				}
				if d.ContactID != "c-1" || d.EventVenue != "Pier 9" {
					t.Fatalf("expected trimmed input fields, got %+v", d)
				}
				if d.CreatedAt.IsZero() || d.UpdatedAt.IsZero() {
					t.Fatalf("expected timestamps")
				}
				return d, nil
			},
		)

		res, err := uc.Create(context.Background(), CreateDocumentInput{
			Kind:       entities.DocumentKindEstimate,
			ContactID:  " c-1 ",
			EventVenue: " Pier 9 ",
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.ID == "" {
			t.Fatalf("expected generated id")
		}
	})

	t.Run("create invoice numbering", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIDocumentRepository(ctrl)
		uc := NewDocumentUseCase(repo, nil, nil, zap.NewNop())

		repo.EXPECT().NextNumber(gomock.Any(), entities.DocumentKindInvoice).Return(int64(42), nil)
		repo.EXPECT().Create(gomock.Any(), gomock.AssignableToTypeOf(entities.Document{})).DoAndReturn(
			func(_ context.Context, d entities.Document) (entities.Document, error) {
				if d.Number != "INV-000042" {
					t.Fatalf("unexpected number: %s", d.Number)
				}
				return d, nil
			},
		)

		if _, err := uc.Create(context.Background(), CreateDocumentInput{Kind: entities.DocumentKindInvoice}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}

func TestDocumentUseCase_GetByID(t *testing.T) {
	t.Run("invalid id", func(t *testing.T) {
		uc := NewDocumentUseCase(nil, nil, nil, zap.NewNop())
		_, err := uc.GetByID(context.Background(), "   ")
		if !errors.Is(err, ErrInvalidDocumentID) {
			t.Fatalf("expected ErrInvalidDocumentID, got %v", err)
		}
	})

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIDocumentRepository(ctrl)
		uc := NewDocumentUseCase(repo, nil, nil, zap.NewNop())

		repo.EXPECT().GetByID(gomock.Any(), "doc-1").Return(entities.Document{}, nil)

		_, err := uc.GetByID(context.Background(), "doc-1")
		if !errors.Is(err, ErrDocumentNotFound) {
			t.Fatalf("expected ErrDocumentNotFound, got %v", err)
		}
	})

	t.Run("found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIDocumentRepository(ctrl)
		uc := NewDocumentUseCase(repo, nil, nil, zap.NewNop())

		repo.EXPECT().GetByID(gomock.Any(), "doc-1").Return(entities.Document{ID: "doc-1"}, nil)

		d, err := uc.GetByID(context.Background(), " doc-1 ")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if d.ID != "doc-1" {
			t.Fatalf("unexpected document: %+v", d)
		}
	})
}

func TestDocumentUseCase_ListByKind(t *testing.T) {
	t.Run("invalid kind", func(t *testing.T) {
		uc := NewDocumentUseCase(nil, nil, nil, zap.NewNop())
		_, err := uc.ListByKind(context.Background(), "receipt")
		if !errors.Is(err, ErrInvalidKind) {
			t.Fatalf("expected ErrInvalidKind, got %v", err)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIDocumentRepository(ctrl)
		uc := NewDocumentUseCase(repo, nil, nil, zap.NewNop())

		repo.EXPECT().ListByKind(gomock.Any(), entities.DocumentKindEstimate).Return([]entities.Document{{ID: "doc-1"}}, nil)

		docs, err := uc.ListByKind(context.Background(), entities.DocumentKindEstimate)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(docs) != 1 || docs[0].ID != "doc-1" {
			t.Fatalf("unexpected documents: %+v", docs)
		}
	})
}

func TestDocumentUseCase_UpdateStatus(t *testing.T) {
	t.Run("status invalid for kind", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIDocumentRepository(ctrl)
		uc := NewDocumentUseCase(repo, nil, nil, zap.NewNop())

		repo.EXPECT().GetByID(gomock.Any(), "doc-1").Return(entities.Document{ID: "doc-1", Kind: entities.DocumentKindEstimate}, nil)

		_, err := uc.UpdateStatus(context.Background(), "doc-1", entities.DocumentStatusPaid)
		if !errors.Is(err, ErrInvalidStatus) {
			t.Fatalf("expected ErrInvalidStatus, got %v", err)
		}
	})

	t.Run("vanished between read and write", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIDocumentRepository(ctrl)
		uc := NewDocumentUseCase(repo, nil, nil, zap.NewNop())

		repo.EXPECT().GetByID(gomock.Any(), "doc-1").Return(entities.Document{ID: "doc-1", Kind: entities.DocumentKindEstimate}, nil)
		repo.EXPECT().UpdateStatus(gomock.Any(), "doc-1", entities.DocumentStatusApproved).Return(entities.Document{}, nil)

		_, err := uc.UpdateStatus(context.Background(), "doc-1", entities.DocumentStatusApproved)
		if !errors.Is(err, ErrDocumentNotFound) {
			t.Fatalf("expected ErrDocumentNotFound, got %v", err)
		}
	})

	t.Run("manual edit recorded", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIDocumentRepository(ctrl)
		activity := mock_interfaces.NewMockIActivityRecorder(ctrl)
		uc := NewDocumentUseCase(repo, nil, activity, zap.NewNop())

		repo.EXPECT().GetByID(gomock.Any(), "doc-1").Return(entities.Document{ID: "doc-1", Kind: entities.DocumentKindInvoice, Status: entities.DocumentStatusPaid}, nil)
		repo.EXPECT().UpdateStatus(gomock.Any(), "doc-1", entities.DocumentStatusDraft).Return(entities.Document{ID: "doc-1", Status: entities.DocumentStatusDraft}, nil)
		activity.EXPECT().Record(gomock.Any(), gomock.AssignableToTypeOf(entities.ActivityEvent{})).DoAndReturn(
			func(_ context.Context, ev entities.ActivityEvent) error {
				if ev.Action != "document.status_edited" || ev.Detail != "paid -> draft" {
					t.Fatalf("unexpected activity event: %+v", ev)
				}
				return nil
			},
		)

		updated, err := uc.UpdateStatus(context.Background(), "doc-1", entities.DocumentStatusDraft)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if updated.Status != entities.DocumentStatusDraft {
			t.Fatalf("unexpected status: %s", updated.Status)
		}
	})
}

func TestDocumentUseCase_ConvertToInvoice(t *testing.T) {
	approvedEstimate := entities.Document{
		ID:         "est-1",
		Kind:       entities.DocumentKindEstimate,
		Number:     "EST-000001",
		Status:     entities.DocumentStatusApproved,
		ContactID:  "c-1",
		EventDate:  "2026-09-12",
		EventVenue: "Grand Hall",
		Total:      1035.0,
	}

	t.Run("not an estimate", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIDocumentRepository(ctrl)
		uc := NewDocumentUseCase(repo, nil, nil, zap.NewNop())

		repo.EXPECT().GetByID(gomock.Any(), "inv-1").Return(entities.Document{ID: "inv-1", Kind: entities.DocumentKindInvoice}, nil)

		_, err := uc.ConvertToInvoice(context.Background(), "inv-1")
		if !errors.Is(err, ErrNotAnEstimate) {
			t.Fatalf("expected ErrNotAnEstimate, got %v", err)
		}
	})

	t.Run("estimate not approved", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIDocumentRepository(ctrl)
		uc := NewDocumentUseCase(repo, nil, nil, zap.NewNop())

		repo.EXPECT().GetByID(gomock.Any(), "est-1").Return(entities.Document{ID: "est-1", Kind: entities.DocumentKindEstimate, Status: entities.DocumentStatusSentForApproval}, nil)

		_, err := uc.ConvertToInvoice(context.Background(), "est-1")
		if !errors.Is(err, ErrEstimateNotTerminal) {
			t.Fatalf("expected ErrEstimateNotTerminal, got %v", err)
		}
	})

	t.Run("supersedes prior non-terminal invoice", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIDocumentRepository(ctrl)
		itemRepo := mock_interfaces.NewMockILineItemRepository(ctrl)
		uc := NewDocumentUseCase(repo, itemRepo, nil, zap.NewNop())

		repo.EXPECT().GetByID(gomock.Any(), "est-1").Return(approvedEstimate, nil)
		repo.EXPECT().ListByKind(gomock.Any(), entities.DocumentKindInvoice).Return([]entities.Document{
			{ID: "inv-old", SourceID: "est-1", Status: entities.DocumentStatusDraft},
			{ID: "inv-paid", SourceID: "est-1", Status: entities.DocumentStatusPaid},
			{ID: "inv-other", SourceID: "est-9", Status: entities.DocumentStatusDraft},
		}, nil)
		// Only the draft invoice from the same estimate is canceled.
		repo.EXPECT().UpdateStatus(gomock.Any(), "inv-old", entities.DocumentStatusCanceled).Return(entities.Document{ID: "inv-old"}, nil)
		repo.EXPECT().NextNumber(gomock.Any(), entities.DocumentKindInvoice).Return(int64(3), nil)
		repo.EXPECT().Create(gomock.Any(), gomock.AssignableToTypeOf(entities.Document{})).DoAndReturn(
			func(_ context.Context, d entities.Document) (entities.Document, error) {
				if d.Number != "INV-000003" || d.Status != entities.DocumentStatusDraft {
					t.Fatalf("unexpected invoice: %+v", d)
				}
				if d.SourceID != "est-1" || d.ContactID != "c-1" || d.Total != 1035.0 {
					t.Fatalf("expected estimate metadata carried over, got %+v", d)
				}
				return d, nil
			},
		)
		itemRepo.EXPECT().ListByDocument(gomock.Any(), "est-1").Return([]entities.LineItem{
			{ID: "li-1", DocumentID: "est-1", Name: "Stage", Quantity: 1, UnitPrice: 1000, SortOrder: 0},
			{ID: "li-2", DocumentID: "est-1", Name: "Service Fee", Quantity: 1, UnitPrice: 35, IsServiceFee: true, SortOrder: 1},
		}, nil)
		itemRepo.EXPECT().Create(gomock.Any(), gomock.AssignableToTypeOf(entities.LineItem{})).Times(2).DoAndReturn(
			func(_ context.Context, li entities.LineItem) (entities.LineItem, error) {
				if li.ID == "li-1" || li.ID == "li-2" {
					t.Fatalf("expected fresh item id, got %s", li.ID)
				}
				if li.DocumentID == "est-1" {
					t.Fatalf("expected item repointed at the new invoice")
				}
				return li, nil
			},
		)

		inv, err := uc.ConvertToInvoice(context.Background(), "est-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if inv.Kind != entities.DocumentKindInvoice || inv.SourceID != "est-1" {
			t.Fatalf("unexpected invoice: %+v", inv)
		}
	})
}
