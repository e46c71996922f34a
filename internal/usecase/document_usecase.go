package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"eventpilot/internal/domain/entities"
	"eventpilot/internal/usecase/interfaces"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

var (
	ErrDocumentNotFound    = errors.New("document not found")
	ErrInvalidDocumentID   = errors.New("invalid document id")
	ErrInvalidKind         = errors.New("invalid document kind")
	ErrInvalidStatus       = errors.New("invalid status for document kind")
	ErrNotAnEstimate       = errors.New("document is not an estimate")
	ErrEstimateNotTerminal = errors.New("estimate must be approved before conversion")
)

// IDocumentUseCase exposes estimate/invoice lifecycle operations.
type IDocumentUseCase interface {
	Create(ctx context.Context, input CreateDocumentInput) (entities.Document, error)
	GetByID(ctx context.Context, id string) (entities.Document, error)
	ListByKind(ctx context.Context, kind entities.DocumentKind) ([]entities.Document, error)
	// UpdateStatus is the manual status edit: any status valid for the
	// document's kind may be written, reversing automatic transitions.
	UpdateStatus(ctx context.Context, id string, status entities.DocumentStatus) (entities.Document, error)
	// ConvertToInvoice copies an approved estimate's metadata and items
	// into a new draft invoice. A prior non-terminal invoice converted
	// from the same estimate is superseded and set to canceled.
	ConvertToInvoice(ctx context.Context, estimateID string) (entities.Document, error)
}

type CreateDocumentInput struct {
	Kind           entities.DocumentKind
	ContactID      string
	OrganizationID string
	EventDate      string
	EventVenue     string
	Notes          string
}

type DocumentUseCase struct {
	repo     interfaces.IDocumentRepository
	itemRepo interfaces.ILineItemRepository
	activity interfaces.IActivityRecorder
	logger   *zap.Logger
}

var _ IDocumentUseCase = (*DocumentUseCase)(nil)

func NewDocumentUseCase(repo interfaces.IDocumentRepository, itemRepo interfaces.ILineItemRepository, activity interfaces.IActivityRecorder, logger *zap.Logger) *DocumentUseCase {
	return &DocumentUseCase{repo: repo, itemRepo: itemRepo, activity: activity, logger: logger}
}

func (u *DocumentUseCase) Create(ctx context.Context, input CreateDocumentInput) (entities.Document, error) {
	if !input.Kind.Valid() {
		return entities.Document{}, ErrInvalidKind
	}

	seq, err := u.repo.NextNumber(ctx, input.Kind)
	if err != nil {
		return entities.Document{}, err
	}

	now := time.Now().UTC()
	d := entities.Document{
		ID:             uuid.NewString(),
		Kind:           input.Kind,
		Number:         input.Kind.FormatNumber(seq),
		Status:         entities.DocumentStatusDraft,
		ContactID:      strings.TrimSpace(input.ContactID),
		OrganizationID: strings.TrimSpace(input.OrganizationID),
		EventDate:      strings.TrimSpace(input.EventDate),
		EventVenue:     strings.TrimSpace(input.EventVenue),
		Notes:          input.Notes,
		CreatedAt:      now,
		UpdatedAt:      now,
	}

	created, err := u.repo.Create(ctx, d)
	if err != nil {
		return entities.Document{}, err
	}
	u.record(ctx, created.ID, "document.created", string(created.Kind)+" "+created.Number)
	return created, nil
}

func (u *DocumentUseCase) GetByID(ctx context.Context, id string) (entities.Document, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Document{}, ErrInvalidDocumentID
	}

	d, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Document{}, err
	}
	if d.ID == "" {
		return entities.Document{}, ErrDocumentNotFound
	}
	return d, nil
}

func (u *DocumentUseCase) ListByKind(ctx context.Context, kind entities.DocumentKind) ([]entities.Document, error) {
	if !kind.Valid() {
		return nil, ErrInvalidKind
	}
	return u.repo.ListByKind(ctx, kind)
}

func (u *DocumentUseCase) UpdateStatus(ctx context.Context, id string, status entities.DocumentStatus) (entities.Document, error) {
	d, err := u.GetByID(ctx, id)
	if err != nil {
		return entities.Document{}, err
	}
	if !d.Kind.ValidStatus(status) {
		return entities.Document{}, ErrInvalidStatus
	}

	updated, err := u.repo.UpdateStatus(ctx, d.ID, status)
	if err != nil {
		return entities.Document{}, err
	}
	if updated.ID == "" {
		return entities.Document{}, ErrDocumentNotFound
	}
	u.record(ctx, d.ID, "document.status_edited", string(d.Status)+" -> "+string(status))
	return updated, nil
}

func (u *DocumentUseCase) ConvertToInvoice(ctx context.Context, estimateID string) (entities.Document, error) {
	est, err := u.GetByID(ctx, estimateID)
	if err != nil {
		return entities.Document{}, err
	}
	if est.Kind != entities.DocumentKindEstimate {
		return entities.Document{}, ErrNotAnEstimate
	}
	if est.Status != entities.DocumentStatusApproved {
		return entities.Document{}, ErrEstimateNotTerminal
	}

	// A newer invoice supersedes any prior non-terminal one from the
	// same estimate.
	invoices, err := u.repo.ListByKind(ctx, entities.DocumentKindInvoice)
	if err != nil {
		return entities.Document{}, err
	}
	for _, inv := range invoices {
		if inv.SourceID != est.ID || inv.IsTerminal() {
			continue
		}
		if _, err := u.repo.UpdateStatus(ctx, inv.ID, entities.DocumentStatusCanceled); err != nil {
			return entities.Document{}, err
		}
		u.record(ctx, inv.ID, "invoice.superseded", "replaced by new invoice for "+est.Number)
	}

	seq, err := u.repo.NextNumber(ctx, entities.DocumentKindInvoice)
	if err != nil {
		return entities.Document{}, err
	}

	now := time.Now().UTC()
	inv := entities.Document{
		ID:             uuid.NewString(),
		Kind:           entities.DocumentKindInvoice,
		Number:         entities.DocumentKindInvoice.FormatNumber(seq),
		Status:         entities.DocumentStatusDraft,
		ContactID:      est.ContactID,
		OrganizationID: est.OrganizationID,
		EventDate:      est.EventDate,
		EventVenue:     est.EventVenue,
		Notes:          est.Notes,
		Total:          est.Total,
		SourceID:       est.ID,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	created, err := u.repo.Create(ctx, inv)
	if err != nil {
		return entities.Document{}, err
	}

	items, err := u.itemRepo.ListByDocument(ctx, est.ID)
	if err != nil {
		return entities.Document{}, err
	}
	for _, li := range items {
		copy := li
		copy.ID = uuid.NewString()
		copy.DocumentID = created.ID
		copy.CreatedAt = now
		copy.UpdatedAt = now
		if _, err := u.itemRepo.Create(ctx, copy); err != nil {
			return entities.Document{}, err
		}
	}

	u.record(ctx, created.ID, "invoice.converted", "from estimate "+est.Number)
	return created, nil
}

func (u *DocumentUseCase) record(ctx context.Context, documentID, action, detail string) {
	if u.activity == nil {
		return
	}
	ev := entities.ActivityEvent{
		ID:         uuid.NewString(),
		DocumentID: documentID,
		Actor:      actorFromContext(ctx),
		Action:     action,
		Detail:     detail,
		CreatedAt:  time.Now().UTC(),
	}
	if err := u.activity.Record(ctx, ev); err != nil && u.logger != nil {
		u.logger.Warn("activity record failed", zap.String("action", action), zap.Error(err))
	}
}
