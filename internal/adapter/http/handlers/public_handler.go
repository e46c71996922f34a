package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"os"
	"strings"

	request "eventpilot/internal/adapter/http/dto/request"
	response "eventpilot/internal/adapter/http/dto/response"
	"eventpilot/internal/domain/entities"
	"eventpilot/internal/usecase"
	"eventpilot/pkg"

	"github.com/gin-gonic/gin"
)

// PublicHandler serves the unauthenticated token URLs sent to clients:
// the approval page, the decision endpoint and invoice payment.
type PublicHandler struct {
	approvals usecase.IApprovalUseCase
	payments  usecase.IPaymentUseCase
}

func NewPublicHandler(approvals usecase.IApprovalUseCase, payments usecase.IPaymentUseCase) *PublicHandler {
	return &PublicHandler{approvals: approvals, payments: payments}
}

// GetApproval renders the snapshot behind a token link. Responded
// records keep serving their terminal state.
func (h *PublicHandler) GetApproval(c *gin.Context) {
	rec, err := h.approvals.GetByToken(c.Request.Context(), c.Param("token"))
	if err != nil {
		appErr := mapApprovalError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromApprovalPublic(rec))
}

// RespondApproval applies the client's one-time decision. The first
// write wins; replays get a conflict.
func (h *PublicHandler) RespondApproval(c *gin.Context) {
	var payload request.RespondApprovalRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidApprovalPayload.HTTPStatus, errInvalidApprovalPayload.ToHTTPError())
		return
	}

	input := usecase.RespondInput{
		Token:           c.Param("token"),
		Status:          entities.ApprovalStatus(payload.ResolveStatus()),
		ContactResponse: payload.ContactResponse,
		AcknowledgedIDs: payload.AcknowledgedIDs,
		IPAddress:       c.ClientIP(),
		UserAgent:       c.Request.UserAgent(),
	}
	if payload.Signature != nil {
		input.Signature = &entities.SignaturePayload{
			TypedName:   payload.Signature.TypedName,
			Consent:     payload.Signature.Consent,
			ImageData:   payload.Signature.ImageData,
			Geolocation: payload.Signature.Geolocation,
		}
	}

	rec, err := h.approvals.Respond(c.Request.Context(), input)
	if err != nil {
		appErr := mapApprovalError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromApprovalPublic(rec))
}

// PayInvoice charges an approved invoice through the payment provider.
// The raw instrument payload is forwarded as-is; the charged amount is
// always the stored invoice total.
func (h *PublicHandler) PayInvoice(c *gin.Context) {
	token := c.Param("token")
	mockMode := isPaymentGatewayMockEnabled()
	payload, err := readProviderPayload(c)
	if err != nil {
		if mockMode {
			payload = json.RawMessage("{}")
		} else {
			appErr := pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
			c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
			return
		}
	}

	payment, err := h.payments.PayByToken(c.Request.Context(), token, payload)
	if err != nil {
		appErr := mapPaymentError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromPayment(payment))
}

// readProviderPayload accepts either a bare provider payload or one
// wrapped in {"provider_payload": ...} and returns the raw JSON.
func readProviderPayload(c *gin.Context) (json.RawMessage, error) {
	raw, err := c.GetRawData()
	if err != nil {
		return nil, err
	}
	if len(strings.TrimSpace(string(raw))) == 0 {
		return json.RawMessage("{}"), nil
	}
	if !json.Valid(raw) {
		return nil, errors.New("request body is not valid json")
	}

	var envelope map[string]json.RawMessage
	if err := json.Unmarshal(raw, &envelope); err == nil {
		if wrapped, ok := envelope["provider_payload"]; ok {
			if len(strings.TrimSpace(string(wrapped))) == 0 || strings.TrimSpace(string(wrapped)) == "null" {
				return nil, errors.New("provider_payload cannot be empty")
			}
			return wrapped, nil
		}
	}

	return json.RawMessage(raw), nil
}

func mapPaymentError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidToken), errors.Is(err, usecase.ErrInvalidPaymentPayload), errors.Is(err, usecase.ErrPaymentGatewayBadRequest):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrPaymentGatewayUnauthorized):
		return pkg.NewDomainErrorSimple("PAYMENT_PROVIDER_UNAUTHORIZED", "Payment provider unauthorized", http.StatusUnauthorized)
	case errors.Is(err, usecase.ErrNotAnInvoice):
		return pkg.NewDomainErrorSimple("NOT_AN_INVOICE", "Approval does not point at an invoice", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrInvoiceNotPayable):
		return pkg.NewDomainErrorSimple("INVOICE_NOT_PAYABLE", "Invoice is not approved for payment", http.StatusConflict)
	case errors.Is(err, usecase.ErrPaymentDenied):
		return pkg.NewDomainErrorSimple("PAYMENT_DENIED", "Payment was denied by the provider", http.StatusConflict)
	case errors.Is(err, usecase.ErrApprovalNotFound):
		return pkg.NewDomainErrorSimple("APPROVAL_NOT_FOUND", "Approval not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrPaymentNotFound):
		return pkg.NewDomainErrorSimple("PAYMENT_NOT_FOUND", "Payment not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrDocumentNotFound):
		return pkg.NewDomainErrorSimple("DOCUMENT_NOT_FOUND", "Document not found", http.StatusNotFound)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}

func isPaymentGatewayMockEnabled() bool {
	v := strings.ToLower(strings.TrimSpace(os.Getenv("PAYMENT_GATEWAY_MOCK")))
	switch v {
	case "1", "true", "yes", "on", "mock":
		return true
	}
	return false
}
