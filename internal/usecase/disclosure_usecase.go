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
	ErrDisclosureNotFound = errors.New("disclosure not found")
	ErrInvalidDisclosure  = errors.New("disclosure requires a title and content")
)

// IDisclosureUseCase manages reusable disclosure templates.
type IDisclosureUseCase interface {
	Create(ctx context.Context, title, content string, sortOrder int) (entities.Disclosure, error)
	GetByID(ctx context.Context, id string) (entities.Disclosure, error)
	ListActive(ctx context.Context) ([]entities.Disclosure, error)
	Update(ctx context.Context, d entities.Disclosure) (entities.Disclosure, error)
	ListForDocument(ctx context.Context, documentID string) ([]entities.DisclosureSnapshot, error)
}

type DisclosureUseCase struct {
	repo interfaces.IDisclosureRepository
}

var _ IDisclosureUseCase = (*DisclosureUseCase)(nil)

func NewDisclosureUseCase(repo interfaces.IDisclosureRepository) *DisclosureUseCase {
	return &DisclosureUseCase{repo: repo}
}

func (u *DisclosureUseCase) Create(ctx context.Context, title, content string, sortOrder int) (entities.Disclosure, error) {
	title = strings.TrimSpace(title)
	content = strings.TrimSpace(content)
	if title == "" || content == "" {
		return entities.Disclosure{}, ErrInvalidDisclosure
	}

	now := time.Now().UTC()
	d := entities.Disclosure{
		ID:        uuid.NewString(),
		Title:     title,
		Content:   content,
		Active:    true,
		SortOrder: sortOrder,
		CreatedAt: now,
		UpdatedAt: now,
	}
	return u.repo.Create(ctx, d)
}

func (u *DisclosureUseCase) GetByID(ctx context.Context, id string) (entities.Disclosure, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Disclosure{}, ErrDisclosureNotFound
	}
	d, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Disclosure{}, err
	}
	if d.ID == "" {
		return entities.Disclosure{}, ErrDisclosureNotFound
	}
	return d, nil
}

func (u *DisclosureUseCase) ListActive(ctx context.Context) ([]entities.Disclosure, error) {
	return u.repo.ListActive(ctx)
}

func (u *DisclosureUseCase) Update(ctx context.Context, d entities.Disclosure) (entities.Disclosure, error) {
	existing, err := u.GetByID(ctx, d.ID)
	if err != nil {
		return entities.Disclosure{}, err
	}
	if title := strings.TrimSpace(d.Title); title != "" {
		existing.Title = title
	}
	if content := strings.TrimSpace(d.Content); content != "" {
		existing.Content = content
	}
	existing.Active = d.Active
	existing.SortOrder = d.SortOrder
	existing.UpdatedAt = time.Now().UTC()
	return u.repo.Update(ctx, existing)
}

func (u *DisclosureUseCase) ListForDocument(ctx context.Context, documentID string) ([]entities.DisclosureSnapshot, error) {
	documentID = strings.TrimSpace(documentID)
	if documentID == "" {
		return nil, ErrInvalidDocumentID
	}
	return u.repo.ListForDocument(ctx, documentID)
}
