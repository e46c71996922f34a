package handlers

import (
	"errors"
	"net/http"

	request "eventpilot/internal/adapter/http/dto/request"
	response "eventpilot/internal/adapter/http/dto/response"
	"eventpilot/internal/domain/entities"
	"eventpilot/internal/usecase"
	"eventpilot/internal/usecase/interfaces"
	"eventpilot/pkg"

	"github.com/gin-gonic/gin"
)

var (
	errInvalidDocumentPayload = pkg.NewDomainErrorSimple("INVALID_DOCUMENT_INPUT", "Invalid document payload", http.StatusBadRequest)
)

// DocumentHandler handles HTTP requests for estimates and invoices. The
// kind is fixed per route group so /estimates and /invoices share one
// handler.
type DocumentHandler struct {
	usecase  usecase.IDocumentUseCase
	activity interfaces.IActivityReader
}

func NewDocumentHandler(uc usecase.IDocumentUseCase, activity interfaces.IActivityReader) *DocumentHandler {
	return &DocumentHandler{usecase: uc, activity: activity}
}

func (h *DocumentHandler) CreateEstimate(c *gin.Context) {
	h.create(c, entities.DocumentKindEstimate)
}

func (h *DocumentHandler) CreateInvoice(c *gin.Context) {
	h.create(c, entities.DocumentKindInvoice)
}

func (h *DocumentHandler) create(c *gin.Context, kind entities.DocumentKind) {
	var payload request.CreateDocumentRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidDocumentPayload.HTTPStatus, errInvalidDocumentPayload.ToHTTPError())
		return
	}

	doc, err := h.usecase.Create(c.Request.Context(), usecase.CreateDocumentInput{
		Kind:           kind,
		ContactID:      payload.ContactID,
		OrganizationID: payload.OrganizationID,
		EventDate:      payload.EventDate,
		EventVenue:     payload.EventVenue,
		Notes:          payload.Notes,
	})
	if err != nil {
		appErr := mapDocumentError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromDocument(doc))
}

func (h *DocumentHandler) ListEstimates(c *gin.Context) {
	h.list(c, entities.DocumentKindEstimate)
}

func (h *DocumentHandler) ListInvoices(c *gin.Context) {
	h.list(c, entities.DocumentKindInvoice)
}

func (h *DocumentHandler) list(c *gin.Context, kind entities.DocumentKind) {
	docs, err := h.usecase.ListByKind(c.Request.Context(), kind)
	if err != nil {
		appErr := mapDocumentError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromDocuments(docs))
}

func (h *DocumentHandler) GetByID(c *gin.Context) {
	doc, err := h.usecase.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapDocumentError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromDocument(doc))
}

// UpdateStatus is the manual override: it accepts any status valid for
// the document's kind, including walking automatic transitions back.
func (h *DocumentHandler) UpdateStatus(c *gin.Context) {
	var payload request.UpdateDocumentStatusRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidDocumentPayload.HTTPStatus, errInvalidDocumentPayload.ToHTTPError())
		return
	}

	doc, err := h.usecase.UpdateStatus(c.Request.Context(), c.Param("id"), entities.DocumentStatus(payload.ResolveStatus()))
	if err != nil {
		appErr := mapDocumentError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromDocument(doc))
}

// ConvertToInvoice turns an approved estimate into a draft invoice,
// superseding any earlier non-terminal invoice from the same estimate.
func (h *DocumentHandler) ConvertToInvoice(c *gin.Context) {
	doc, err := h.usecase.ConvertToInvoice(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapDocumentError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromDocument(doc))
}

// ListActivity returns the audit trail for a document.
func (h *DocumentHandler) ListActivity(c *gin.Context) {
	events, err := h.activity.ListByDocument(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, events)
}

func mapDocumentError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidDocumentID), errors.Is(err, usecase.ErrInvalidKind), errors.Is(err, usecase.ErrInvalidStatus):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrNotAnEstimate):
		return pkg.NewDomainErrorSimple("NOT_AN_ESTIMATE", "Document is not an estimate", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrEstimateNotTerminal):
		return pkg.NewDomainErrorSimple("ESTIMATE_NOT_APPROVED", "Estimate must be approved before conversion", http.StatusConflict)
	case errors.Is(err, usecase.ErrDocumentNotFound):
		return pkg.NewDomainErrorSimple("DOCUMENT_NOT_FOUND", "Document not found", http.StatusNotFound)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
