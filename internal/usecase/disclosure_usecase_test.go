package usecase

import (
	"context"
	"errors"
	"testing"

	"eventpilot/internal/domain/entities"
	mock_interfaces "eventpilot/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func TestDisclosureUseCase_Create(t *testing.T) {
	t.Run("requires title and content", func(t *testing.T) {
		uc := NewDisclosureUseCase(nil)
		if _, err := uc.Create(context.Background(), "  ", "body", 0); !errors.Is(err, ErrInvalidDisclosure) {
			t.Fatalf("expected ErrInvalidDisclosure, got %v", err)
		}
		if _, err := uc.Create(context.Background(), "Damage policy", "", 0); !errors.Is(err, ErrInvalidDisclosure) {
			t.Fatalf("expected ErrInvalidDisclosure, got %v", err)
		}
	})

	t.Run("created active", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIDisclosureRepository(ctrl)
		uc := NewDisclosureUseCase(repo)

		repo.EXPECT().Create(gomock.Any(), gomock.AssignableToTypeOf(entities.Disclosure{})).DoAndReturn(
			func(_ context.Context, d entities.Disclosure) (entities.Disclosure, error) {
				if d.ID == "" || !d.Active || d.SortOrder != 2 {
					t.Fatalf("unexpected disclosure: %+v", d)
				}
				return d, nil
			},
		)

		d, err := uc.Create(context.Background(), " Damage policy ", " Renter is liable. ", 2)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if d.Title != "Damage policy" || d.Content != "Renter is liable." {
			t.Fatalf("unexpected disclosure: %+v", d)
		}
	})
}

func TestDisclosureUseCase_Update(t *testing.T) {
	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIDisclosureRepository(ctrl)
		uc := NewDisclosureUseCase(repo)

		repo.EXPECT().GetByID(gomock.Any(), "d-1").Return(entities.Disclosure{}, nil)

		_, err := uc.Update(context.Background(), entities.Disclosure{ID: "d-1"})
		if !errors.Is(err, ErrDisclosureNotFound) {
			t.Fatalf("expected ErrDisclosureNotFound, got %v", err)
		}
	})

	t.Run("template edit keeps blank fields", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIDisclosureRepository(ctrl)
		uc := NewDisclosureUseCase(repo)

		repo.EXPECT().GetByID(gomock.Any(), "d-1").Return(entities.Disclosure{
			ID: "d-1", Title: "Damage policy", Content: "Renter is liable.", Active: true,
		}, nil)
		repo.EXPECT().Update(gomock.Any(), gomock.AssignableToTypeOf(entities.Disclosure{})).DoAndReturn(
			func(_ context.Context, d entities.Disclosure) (entities.Disclosure, error) {
				if d.Title != "Damage policy" || d.Content != "Updated terms." || d.Active {
					t.Fatalf("unexpected update: %+v", d)
				}
				return d, nil
			},
		)

		if _, err := uc.Update(context.Background(), entities.Disclosure{
			ID: "d-1", Content: "Updated terms.", Active: false,
		}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}

func TestDisclosureUseCase_ListForDocument(t *testing.T) {
	t.Run("invalid document id", func(t *testing.T) {
		uc := NewDisclosureUseCase(nil)
		if _, err := uc.ListForDocument(context.Background(), "  "); !errors.Is(err, ErrInvalidDocumentID) {
			t.Fatalf("expected ErrInvalidDocumentID, got %v", err)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIDisclosureRepository(ctrl)
		uc := NewDisclosureUseCase(repo)

		repo.EXPECT().ListForDocument(gomock.Any(), "doc-1").Return([]entities.DisclosureSnapshot{
			{DisclosureID: "d-1", Acknowledged: true},
		}, nil)

		snaps, err := uc.ListForDocument(context.Background(), "doc-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(snaps) != 1 || !snaps[0].Acknowledged {
			t.Fatalf("unexpected snapshots: %+v", snaps)
		}
	})
}
