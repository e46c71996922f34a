package handlers

import (
	"errors"
	"net/http"

	request "eventpilot/internal/adapter/http/dto/request"
	response "eventpilot/internal/adapter/http/dto/response"
	"eventpilot/internal/usecase"
	"eventpilot/pkg"

	"github.com/gin-gonic/gin"
)

var (
	errInvalidApprovalPayload = pkg.NewDomainErrorSimple("INVALID_APPROVAL_INPUT", "Invalid approval payload", http.StatusBadRequest)
)

// ApprovalHandler is the operator side of the approval flow: issuing
// tokens and inspecting records. The client side lives in PublicHandler.
type ApprovalHandler struct {
	usecase usecase.IApprovalUseCase
}

func NewApprovalHandler(uc usecase.IApprovalUseCase) *ApprovalHandler {
	return &ApprovalHandler{usecase: uc}
}

// Issue creates a single-use approval request for a document, snapshots
// the selected disclosures and emails the contact a token link.
func (h *ApprovalHandler) Issue(c *gin.Context) {
	var payload request.IssueApprovalRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidApprovalPayload.HTTPStatus, errInvalidApprovalPayload.ToHTTPError())
		return
	}

	rec, err := h.usecase.Issue(c.Request.Context(), usecase.IssueApprovalInput{
		DocumentID:    c.Param("id"),
		ContactID:     payload.ContactID,
		DisclosureIDs: payload.DisclosureIDs,
		Resend:        payload.Resend,
	})
	if err != nil {
		appErr := mapApprovalError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromApproval(rec))
}

func mapApprovalError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidDocumentID), errors.Is(err, usecase.ErrInvalidToken),
		errors.Is(err, usecase.ErrInvalidDecision), errors.Is(err, usecase.ErrMissingReason),
		errors.Is(err, usecase.ErrInvalidSignature), errors.Is(err, usecase.ErrDisclosuresNotAcked):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrMissingContact):
		return pkg.NewDomainErrorSimple("MISSING_CONTACT", "Document has no contact to approve", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrResendNotConfirmed):
		return pkg.NewDomainErrorSimple("RESEND_NOT_CONFIRMED", "Document already approved; set resend to re-issue", http.StatusConflict)
	case errors.Is(err, usecase.ErrAlreadyResponded):
		return pkg.NewDomainErrorSimple("ALREADY_RESPONDED", "Approval already responded", http.StatusConflict)
	case errors.Is(err, usecase.ErrApprovalNotFound):
		return pkg.NewDomainErrorSimple("APPROVAL_NOT_FOUND", "Approval not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrContactNotFound):
		return pkg.NewDomainErrorSimple("CONTACT_NOT_FOUND", "Contact not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrDocumentNotFound):
		return pkg.NewDomainErrorSimple("DOCUMENT_NOT_FOUND", "Document not found", http.StatusNotFound)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
