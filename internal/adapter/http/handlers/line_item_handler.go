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

var (
	errInvalidLineItemPayload = pkg.NewDomainErrorSimple("INVALID_LINE_ITEM_INPUT", "Invalid line item payload", http.StatusBadRequest)
)

// LineItemHandler handles the line items nested under a document.
type LineItemHandler struct {
	usecase usecase.ILineItemUseCase
}

func NewLineItemHandler(uc usecase.ILineItemUseCase) *LineItemHandler {
	return &LineItemHandler{usecase: uc}
}

func (h *LineItemHandler) List(c *gin.Context) {
	items, err := h.usecase.ListByDocument(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapLineItemError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromLineItemList(items))
}

func (h *LineItemHandler) Add(c *gin.Context) {
	var payload request.AddLineItemRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidLineItemPayload.HTTPStatus, errInvalidLineItemPayload.ToHTTPError())
		return
	}

	documentID := c.Param("id")
	var (
		item entities.LineItem
		err  error
	)
	if payload.IsCatalogCopy() {
		item, err = h.usecase.AddFromProduct(c.Request.Context(), documentID, payload.ProductID, payload.Quantity, payload.AtHead)
	} else {
		item, err = h.usecase.Add(c.Request.Context(), usecase.AddLineItemInput{
			DocumentID:  documentID,
			Name:        payload.Name,
			Description: payload.Description,
			Quantity:    payload.Quantity,
			UnitPrice:   payload.UnitPrice,
			IsCustom:    true,
			AtHead:      payload.AtHead,
		})
	}
	if err != nil {
		appErr := mapLineItemError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromLineItem(item))
}

func (h *LineItemHandler) AddServiceFee(c *gin.Context) {
	item, err := h.usecase.AddServiceFee(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapLineItemError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromLineItem(item))
}

func (h *LineItemHandler) Update(c *gin.Context) {
	var payload request.UpdateLineItemRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidLineItemPayload.HTTPStatus, errInvalidLineItemPayload.ToHTTPError())
		return
	}

	item, err := h.usecase.Update(c.Request.Context(), usecase.UpdateLineItemInput{
		DocumentID:  c.Param("id"),
		ItemID:      c.Param("item_id"),
		Name:        payload.Name,
		Description: payload.Description,
		Quantity:    payload.Quantity,
		UnitPrice:   payload.UnitPrice,
	})
	if err != nil {
		appErr := mapLineItemError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromLineItem(item))
}

func (h *LineItemHandler) Delete(c *gin.Context) {
	if err := h.usecase.Delete(c.Request.Context(), c.Param("id"), c.Param("item_id")); err != nil {
		appErr := mapLineItemError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.Status(http.StatusNoContent)
}

// Reorder persists the full new display order in one call.
func (h *LineItemHandler) Reorder(c *gin.Context) {
	var payload request.ReorderLineItemsRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidLineItemPayload.HTTPStatus, errInvalidLineItemPayload.ToHTTPError())
		return
	}

	items, err := h.usecase.Reorder(c.Request.Context(), c.Param("id"), payload.ItemIDs)
	if err != nil {
		appErr := mapLineItemError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromLineItemList(items))
}

func mapLineItemError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidLineItem), errors.Is(err, usecase.ErrInvalidReorder), errors.Is(err, usecase.ErrInvalidDocumentID):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrDuplicateServiceFee):
		return pkg.NewDomainErrorSimple("SERVICE_FEE_EXISTS", "Document already has a service fee line", http.StatusConflict)
	case errors.Is(err, usecase.ErrLineItemNotFound):
		return pkg.NewDomainErrorSimple("LINE_ITEM_NOT_FOUND", "Line item not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrProductNotFound):
		return pkg.NewDomainErrorSimple("PRODUCT_NOT_FOUND", "Product not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrDocumentNotFound):
		return pkg.NewDomainErrorSimple("DOCUMENT_NOT_FOUND", "Document not found", http.StatusNotFound)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
