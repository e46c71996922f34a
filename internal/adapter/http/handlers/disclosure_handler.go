package handlers

import (
	"errors"
	"net/http"

	request "eventpilot/internal/adapter/http/dto/request"
	response "eventpilot/internal/adapter/http/dto/response"
	"eventpilot/internal/domain/entities"
	"eventpilot/internal/usecase"
	"eventpilot/pkg"

	"github.com/gin-gonic/gin"
)

// DisclosureHandler manages reusable disclosure templates. Attachment to
// documents happens through the approval flow, which snapshots the text.
type DisclosureHandler struct {
	usecase usecase.IDisclosureUseCase
}

func NewDisclosureHandler(uc usecase.IDisclosureUseCase) *DisclosureHandler {
	return &DisclosureHandler{usecase: uc}
}

func (h *DisclosureHandler) Create(c *gin.Context) {
	var payload request.DisclosureRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		appErr := pkg.NewDomainErrorSimple("INVALID_DISCLOSURE_INPUT", "Invalid disclosure payload", http.StatusBadRequest)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	d, err := h.usecase.Create(c.Request.Context(), payload.Title, payload.Content, payload.SortOrder)
	if err != nil {
		appErr := mapDisclosureError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromDisclosure(d))
}

func (h *DisclosureHandler) GetByID(c *gin.Context) {
	d, err := h.usecase.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapDisclosureError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromDisclosure(d))
}

func (h *DisclosureHandler) ListActive(c *gin.Context) {
	disclosures, err := h.usecase.ListActive(c.Request.Context())
	if err != nil {
		appErr := mapDisclosureError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromDisclosures(disclosures))
}

func (h *DisclosureHandler) Update(c *gin.Context) {
	var payload request.DisclosureRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		appErr := pkg.NewDomainErrorSimple("INVALID_DISCLOSURE_INPUT", "Invalid disclosure payload", http.StatusBadRequest)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	d, err := h.usecase.Update(c.Request.Context(), entities.Disclosure{
		ID:        c.Param("id"),
		Title:     payload.Title,
		Content:   payload.Content,
		SortOrder: payload.SortOrder,
		Active:    payload.ResolveActive(),
	})
	if err != nil {
		appErr := mapDisclosureError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromDisclosure(d))
}

func mapDisclosureError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidDisclosure), errors.Is(err, usecase.ErrInvalidDocumentID):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrDisclosureNotFound):
		return pkg.NewDomainErrorSimple("DISCLOSURE_NOT_FOUND", "Disclosure not found", http.StatusNotFound)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
