package usecase

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"errors"
	"strings"
	"time"

	"eventpilot/internal/domain/entities"
	"eventpilot/internal/usecase/interfaces"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

var (
	ErrApprovalNotFound    = errors.New("approval not found")
	ErrInvalidToken        = errors.New("invalid approval token")
	ErrMissingContact      = errors.New("document has no contact to approve")
	ErrContactNotFound     = errors.New("contact not found")
	ErrAlreadyResponded    = errors.New("approval already responded")
	ErrResendNotConfirmed  = errors.New("document already approved; resend must be confirmed")
	ErrInvalidDecision     = errors.New("decision must be approved or rejected")
	ErrMissingReason       = errors.New("rejection requires a reason")
	ErrInvalidSignature    = errors.New("approval requires a typed name and consent")
	ErrDisclosuresNotAcked = errors.New("all disclosures must be acknowledged")
)

const snapshotCacheTTL = 5 * time.Minute

// IApprovalUseCase implements the document approval workflow: issuing a
// token-addressed single-use approval request, serving the public
// snapshot, and applying the client's one-time decision.
type IApprovalUseCase interface {
	Issue(ctx context.Context, input IssueApprovalInput) (entities.ApprovalRecord, error)
	// GetByToken serves the public approval page. Terminal records are
	// read through the snapshot cache.
	GetByToken(ctx context.Context, token string) (entities.ApprovalRecord, error)
	// Respond applies an approve/reject decision exactly once. The first
	// write wins; later attempts fail closed with ErrAlreadyResponded.
	Respond(ctx context.Context, input RespondInput) (entities.ApprovalRecord, error)
}

type IssueApprovalInput struct {
	DocumentID    string
	ContactID     string
	DisclosureIDs []string
	// Resend must be set to re-issue after the document is already
	// approved; it is the explicit confirmation step.
	Resend bool
}

type RespondInput struct {
	Token           string
	Status          entities.ApprovalStatus
	ContactResponse string
	Signature       *entities.SignaturePayload
	AcknowledgedIDs []string
	IPAddress       string
	UserAgent       string
}

type ApprovalUseCase struct {
	repo           interfaces.IApprovalRepository
	docRepo        interfaces.IDocumentRepository
	itemRepo       interfaces.ILineItemRepository
	contactRepo    interfaces.IContactRepository
	disclosureRepo interfaces.IDisclosureRepository
	email          interfaces.IEmailSender
	renderer       interfaces.IDocumentRenderer
	blobStore      interfaces.IBlobStore
	cache          interfaces.ISnapshotCache
	activity       interfaces.IActivityRecorder
	baseURL        string
	logger         *zap.Logger
}

var _ IApprovalUseCase = (*ApprovalUseCase)(nil)

type ApprovalDeps struct {
	Approvals   interfaces.IApprovalRepository
	Documents   interfaces.IDocumentRepository
	LineItems   interfaces.ILineItemRepository
	Contacts    interfaces.IContactRepository
	Disclosures interfaces.IDisclosureRepository
	Email       interfaces.IEmailSender
	Renderer    interfaces.IDocumentRenderer
	BlobStore   interfaces.IBlobStore
	Cache       interfaces.ISnapshotCache
	Activity    interfaces.IActivityRecorder
	BaseURL     string
	Logger      *zap.Logger
}

func NewApprovalUseCase(deps ApprovalDeps) *ApprovalUseCase {
	return &ApprovalUseCase{
		repo:           deps.Approvals,
		docRepo:        deps.Documents,
		itemRepo:       deps.LineItems,
		contactRepo:    deps.Contacts,
		disclosureRepo: deps.Disclosures,
		email:          deps.Email,
		renderer:       deps.Renderer,
		blobStore:      deps.BlobStore,
		cache:          deps.Cache,
		activity:       deps.Activity,
		baseURL:        deps.BaseURL,
		logger:         deps.Logger,
	}
}

func (u *ApprovalUseCase) Issue(ctx context.Context, input IssueApprovalInput) (entities.ApprovalRecord, error) {
	documentID := strings.TrimSpace(input.DocumentID)
	if documentID == "" {
		return entities.ApprovalRecord{}, ErrInvalidDocumentID
	}

	doc, err := u.docRepo.GetByID(ctx, documentID)
	if err != nil {
		return entities.ApprovalRecord{}, err
	}
	if doc.ID == "" {
		return entities.ApprovalRecord{}, ErrDocumentNotFound
	}

	contactID := strings.TrimSpace(input.ContactID)
	if contactID == "" {
		contactID = doc.ContactID
	}
	// Validation surfaces before any record is created.
	if contactID == "" {
		return entities.ApprovalRecord{}, ErrMissingContact
	}
	contact, err := u.contactRepo.GetByID(ctx, contactID)
	if err != nil {
		return entities.ApprovalRecord{}, err
	}
	if contact.ID == "" {
		return entities.ApprovalRecord{}, ErrContactNotFound
	}

	if doc.Status == entities.DocumentStatusApproved && !input.Resend {
		return entities.ApprovalRecord{}, ErrResendNotConfirmed
	}

	snapshots, err := u.snapshotDisclosures(ctx, doc.ID, input.DisclosureIDs)
	if err != nil {
		return entities.ApprovalRecord{}, err
	}

	token, err := newApprovalToken()
	if err != nil {
		return entities.ApprovalRecord{}, err
	}

	now := time.Now().UTC()
	rec := entities.ApprovalRecord{
		Token:          token,
		DocumentID:     doc.ID,
		ContactID:      contact.ID,
		Status:         entities.ApprovalStatusSent,
		DocumentKind:   doc.Kind,
		DocumentNumber: doc.Number,
		DocumentTotal:  doc.Total,
		ContactName:    contact.Name,
		ContactEmail:   contact.Email,
		EventDate:      doc.EventDate,
		EventVenue:     doc.EventVenue,
		Disclosures:    snapshots,
		CreatedAt:      now,
		UpdatedAt:      now,
	}

	created, err := u.repo.Create(ctx, rec)
	if err != nil {
		return entities.ApprovalRecord{}, err
	}

	if doc.Status == entities.DocumentStatusDraft {
		if _, err := u.docRepo.UpdateStatus(ctx, doc.ID, doc.Kind.PendingStatus()); err != nil {
			return entities.ApprovalRecord{}, err
		}
	}

	// Email failure never rolls back the record: it stays authoritative
	// and the send is retriable by issuing again.
	if u.email != nil {
		msg := buildApprovalEmail(created, u.baseURL)
		if err := u.email.Send(ctx, msg); err != nil {
			u.logger.Warn("approval email dispatch failed",
				zap.String("document_id", doc.ID),
				zap.String("to", contact.Email),
				zap.Error(err))
		}
	}

	u.record(ctx, doc.ID, "approval.issued", "to "+contact.Email)
	return created, nil
}

func (u *ApprovalUseCase) GetByToken(ctx context.Context, token string) (entities.ApprovalRecord, error) {
	token = strings.TrimSpace(token)
	if token == "" {
		return entities.ApprovalRecord{}, ErrInvalidToken
	}

	if u.cache != nil {
		if rec, ok, err := u.cache.GetApproval(ctx, token); err == nil && ok {
			return rec, nil
		} else if err != nil {
			u.logger.Warn("approval cache read failed", zap.Error(err))
		}
	}

	rec, err := u.repo.GetByToken(ctx, token)
	if err != nil {
		return entities.ApprovalRecord{}, err
	}
	if rec.Token == "" {
		return entities.ApprovalRecord{}, ErrApprovalNotFound
	}

	// Only terminal records are cacheable; a "sent" record may change.
	if u.cache != nil && rec.Responded() {
		if err := u.cache.SetApproval(ctx, token, rec, snapshotCacheTTL); err != nil {
			u.logger.Warn("approval cache write failed", zap.Error(err))
		}
	}
	return rec, nil
}

func (u *ApprovalUseCase) Respond(ctx context.Context, input RespondInput) (entities.ApprovalRecord, error) {
	token := strings.TrimSpace(input.Token)
	if token == "" {
		return entities.ApprovalRecord{}, ErrInvalidToken
	}

	rec, err := u.repo.GetByToken(ctx, token)
	if err != nil {
		return entities.ApprovalRecord{}, err
	}
	if rec.Token == "" {
		return entities.ApprovalRecord{}, ErrApprovalNotFound
	}
	if rec.Responded() {
		return entities.ApprovalRecord{}, ErrAlreadyResponded
	}

	decision, err := buildDecision(rec, input)
	if err != nil {
		return entities.ApprovalRecord{}, err
	}

	// Conditional update on status = sent; the first writer wins and a
	// concurrent loser lands here with a zero record.
	updated, err := u.repo.Respond(ctx, token, decision)
	if err != nil {
		return entities.ApprovalRecord{}, err
	}
	if updated.Token == "" {
		return entities.ApprovalRecord{}, ErrAlreadyResponded
	}

	newStatus := entities.DocumentStatusApproved
	if decision.Status == entities.ApprovalStatusRejected {
		newStatus = entities.DocumentStatusRejected
	}
	if _, err := u.docRepo.UpdateStatus(ctx, rec.DocumentID, newStatus); err != nil {
		return entities.ApprovalRecord{}, err
	}

	if decision.Status == entities.ApprovalStatusApproved && len(decision.AcknowledgedIDs) > 0 {
		if err := u.disclosureRepo.MarkAcknowledged(ctx, rec.DocumentID, decision.AcknowledgedIDs); err != nil {
			u.logger.Warn("disclosure acknowledgment write failed",
				zap.String("document_id", rec.DocumentID), zap.Error(err))
		}
	}

	if u.cache != nil {
		if err := u.cache.InvalidateApproval(ctx, token); err != nil {
			u.logger.Warn("approval cache invalidation failed", zap.Error(err))
		}
	}

	u.archivePDF(ctx, rec.DocumentID)
	u.record(ctx, rec.DocumentID, "approval.responded", string(decision.Status))
	return updated, nil
}

func buildDecision(rec entities.ApprovalRecord, input RespondInput) (entities.ApprovalDecision, error) {
	now := time.Now().UTC()

	switch input.Status {
	case entities.ApprovalStatusRejected:
		if strings.TrimSpace(input.ContactResponse) == "" {
			return entities.ApprovalDecision{}, ErrMissingReason
		}
		return entities.ApprovalDecision{
			Status:          entities.ApprovalStatusRejected,
			ContactResponse: strings.TrimSpace(input.ContactResponse),
			RespondedAt:     now,
		}, nil

	case entities.ApprovalStatusApproved:
		sig := input.Signature
		if sig == nil || strings.TrimSpace(sig.TypedName) == "" || !sig.Consent {
			return entities.ApprovalDecision{}, ErrInvalidSignature
		}
		acked := make(map[string]bool, len(input.AcknowledgedIDs))
		for _, id := range input.AcknowledgedIDs {
			acked[id] = true
		}
		for _, d := range rec.Disclosures {
			if !acked[d.DisclosureID] {
				return entities.ApprovalDecision{}, ErrDisclosuresNotAcked
			}
		}
		signed := *sig
		signed.TypedName = strings.TrimSpace(sig.TypedName)
		signed.IPAddress = input.IPAddress
		signed.UserAgent = input.UserAgent
		signed.SignedAt = now
		return entities.ApprovalDecision{
			Status:          entities.ApprovalStatusApproved,
			Signature:       &signed,
			AcknowledgedIDs: input.AcknowledgedIDs,
			RespondedAt:     now,
		}, nil
	}

	return entities.ApprovalDecision{}, ErrInvalidDecision
}

// snapshotDisclosures copies the selected templates' current text onto the
// document, replacing any previously attached set.
func (u *ApprovalUseCase) snapshotDisclosures(ctx context.Context, documentID string, disclosureIDs []string) ([]entities.DisclosureSnapshot, error) {
	now := time.Now().UTC()
	snapshots := make([]entities.DisclosureSnapshot, 0, len(disclosureIDs))
	for _, id := range disclosureIDs {
		d, err := u.disclosureRepo.GetByID(ctx, strings.TrimSpace(id))
		if err != nil {
			return nil, err
		}
		if d.ID == "" || !d.Active {
			continue
		}
		snapshots = append(snapshots, d.Snapshot(now))
	}

	if err := u.disclosureRepo.ReplaceForDocument(ctx, documentID, snapshots); err != nil {
		return nil, err
	}
	return snapshots, nil
}

// archivePDF regenerates and uploads the document PDF. Failures are
// non-critical: the approval outcome is already durable.
func (u *ApprovalUseCase) archivePDF(ctx context.Context, documentID string) {
	if u.renderer == nil || u.blobStore == nil {
		return
	}

	doc, err := u.docRepo.GetByID(ctx, documentID)
	if err != nil || doc.ID == "" {
		u.logger.Warn("pdf archive: document load failed", zap.String("document_id", documentID), zap.Error(err))
		return
	}
	items, err := u.itemRepo.ListByDocument(ctx, documentID)
	if err != nil {
		u.logger.Warn("pdf archive: items load failed", zap.String("document_id", documentID), zap.Error(err))
		return
	}
	var contact entities.Contact
	if doc.ContactID != "" {
		if c, err := u.contactRepo.GetByID(ctx, doc.ContactID); err == nil {
			contact = c
		}
	}

	body, err := u.renderer.Render(doc, items, contact)
	if err != nil {
		u.logger.Warn("pdf archive: render failed", zap.String("document_id", documentID), zap.Error(err))
		return
	}
	filename := doc.Number + "_" + strings.ToUpper(string(doc.Status)) + ".pdf"
	location, err := u.blobStore.Upload(ctx, filename, body, "application/pdf")
	if err != nil {
		u.logger.Warn("pdf archive: upload failed", zap.String("filename", filename), zap.Error(err))
		return
	}
	u.logger.Info("document pdf archived", zap.String("filename", filename), zap.String("location", location))
}

func (u *ApprovalUseCase) record(ctx context.Context, documentID, action, detail string) {
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
	if err := u.activity.Record(ctx, ev); err != nil {
		u.logger.Warn("activity record failed", zap.String("action", action), zap.Error(err))
	}
}

// newApprovalToken returns a 32-hex-char single-use token.
func newApprovalToken() (string, error) {
	var b [16]byte
	if _, err := rand.Read(b[:]); err != nil {
		return "", err
	}
	return hex.EncodeToString(b[:]), nil
}
