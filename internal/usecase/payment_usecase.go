package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"eventpilot/internal/domain/entities"
	"eventpilot/internal/usecase/interfaces"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

var (
	ErrPaymentNotFound            = errors.New("payment not found")
	ErrInvalidPaymentPayload      = errors.New("invalid payment payload")
	ErrNotAnInvoice               = errors.New("document is not an invoice")
	ErrInvoiceNotPayable          = errors.New("invoice is not approved for payment")
	ErrPaymentGatewayBadRequest   = errors.New("payment gateway bad request")
	ErrPaymentGatewayUnauthorized = errors.New("payment gateway unauthorized")
	ErrPaymentDenied              = errors.New("payment denied by provider")
)

// IPaymentUseCase charges an approved invoice through the payment gateway
// and flips it to paid.
type IPaymentUseCase interface {
	// PayByToken is the public payment flow: the token resolves the
	// approval record, which must point at an approved invoice.
	PayByToken(ctx context.Context, token string, instrumentPayload json.RawMessage) (entities.InvoicePayment, error)
	GetByID(ctx context.Context, id string) (entities.InvoicePayment, error)
	ListByDocument(ctx context.Context, documentID string) ([]entities.InvoicePayment, error)
}

type PaymentUseCase struct {
	repo         interfaces.IPaymentRepository
	approvalRepo interfaces.IApprovalRepository
	docRepo      interfaces.IDocumentRepository
	gateway      interfaces.IPaymentGateway
	activity     interfaces.IActivityRecorder
	logger       *zap.Logger
}

var _ IPaymentUseCase = (*PaymentUseCase)(nil)

func NewPaymentUseCase(repo interfaces.IPaymentRepository, approvalRepo interfaces.IApprovalRepository, docRepo interfaces.IDocumentRepository, gateway interfaces.IPaymentGateway, activity interfaces.IActivityRecorder, logger *zap.Logger) *PaymentUseCase {
	return &PaymentUseCase{repo: repo, approvalRepo: approvalRepo, docRepo: docRepo, gateway: gateway, activity: activity, logger: logger}
}

func (u *PaymentUseCase) PayByToken(ctx context.Context, token string, instrumentPayload json.RawMessage) (entities.InvoicePayment, error) {
	token = strings.TrimSpace(token)
	if token == "" {
		return entities.InvoicePayment{}, ErrInvalidToken
	}
	if len(instrumentPayload) == 0 || !json.Valid(instrumentPayload) {
		return entities.InvoicePayment{}, ErrInvalidPaymentPayload
	}
	if u.gateway == nil {
		return entities.InvoicePayment{}, errors.New("payment gateway not configured")
	}

	rec, err := u.approvalRepo.GetByToken(ctx, token)
	if err != nil {
		return entities.InvoicePayment{}, err
	}
	if rec.Token == "" {
		return entities.InvoicePayment{}, ErrApprovalNotFound
	}
	if rec.DocumentKind != entities.DocumentKindInvoice {
		return entities.InvoicePayment{}, ErrNotAnInvoice
	}

	inv, err := u.docRepo.GetByID(ctx, rec.DocumentID)
	if err != nil {
		return entities.InvoicePayment{}, err
	}
	if inv.ID == "" {
		return entities.InvoicePayment{}, ErrDocumentNotFound
	}
	if inv.Status != entities.DocumentStatusApproved {
		return entities.InvoicePayment{}, ErrInvoiceNotPayable
	}

	// The payload is enriched server-side; the amount always comes from
	// the stored invoice, never from the client.
	var reqMap map[string]any
	if err := json.Unmarshal(instrumentPayload, &reqMap); err != nil {
		return entities.InvoicePayment{}, ErrInvalidPaymentPayload
	}
	if _, ok := reqMap["external_reference"]; !ok {
		reqMap["external_reference"] = inv.ID
	}
	if _, ok := reqMap["description"]; !ok {
		reqMap["description"] = fmt.Sprintf("Invoice %s", inv.Number)
	}
	reqMap["transaction_amount"] = inv.Total
	enriched, err := json.Marshal(reqMap)
	if err != nil {
		return entities.InvoicePayment{}, err
	}

	providerPaymentID, providerStatus, providerResp, err := u.gateway.CreatePayment(ctx, enriched)
	if err != nil {
		u.logger.Error("payment gateway failed",
			zap.String("document_id", inv.ID), zap.Error(err))
		switch {
		case isGatewayUnauthorized(err):
			return entities.InvoicePayment{}, ErrPaymentGatewayUnauthorized
		case isGatewayBadRequest(err):
			return entities.InvoicePayment{}, ErrPaymentGatewayBadRequest
		}
		return entities.InvoicePayment{}, err
	}

	status := entities.PaymentStatusApproved
	if providerStatus != "approved" {
		status = entities.PaymentStatusDenied
	}

	var parsed map[string]interface{}
	if err := json.Unmarshal(providerResp, &parsed); err != nil {
		u.logger.Warn("provider response unmarshal failed",
			zap.String("document_id", inv.ID), zap.Error(err))
	}

	p := entities.InvoicePayment{
		ID:                 providerPaymentID,
		DocumentID:         inv.ID,
		Amount:             inv.Total,
		Date:               time.Now().UTC(),
		Status:             status,
		ProviderPayloadRaw: providerResp,
		ProviderPayload:    parsed,
	}
	created, err := u.repo.Create(ctx, p)
	if err != nil {
		return entities.InvoicePayment{}, err
	}

	if status != entities.PaymentStatusApproved {
		u.record(ctx, inv.ID, "payment.denied", providerStatus)
		return created, ErrPaymentDenied
	}

	if _, err := u.docRepo.UpdateStatus(ctx, inv.ID, entities.DocumentStatusPaid); err != nil {
		return entities.InvoicePayment{}, err
	}
	u.record(ctx, inv.ID, "payment.approved", "provider payment "+created.ID)
	return created, nil
}

func (u *PaymentUseCase) GetByID(ctx context.Context, id string) (entities.InvoicePayment, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.InvoicePayment{}, errors.New("invalid payment id")
	}

	p, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.InvoicePayment{}, err
	}
	if p.ID == "" {
		return entities.InvoicePayment{}, ErrPaymentNotFound
	}
	return p, nil
}

func (u *PaymentUseCase) ListByDocument(ctx context.Context, documentID string) ([]entities.InvoicePayment, error) {
	documentID = strings.TrimSpace(documentID)
	if documentID == "" {
		return nil, ErrInvalidDocumentID
	}
	return u.repo.ListByDocument(ctx, documentID)
}

func (u *PaymentUseCase) record(ctx context.Context, documentID, action, detail string) {
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

func isGatewayBadRequest(err error) bool {
	if err == nil {
		return false
	}
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "\"error\":\"bad_request\"") || strings.Contains(msg, "\"status\":400")
}

func isGatewayUnauthorized(err error) bool {
	if err == nil {
		return false
	}
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "\"error\":\"unauthorized\"") || strings.Contains(msg, "\"status\":401")
}
