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
	errInvalidCatalogPayload = pkg.NewDomainErrorSimple("INVALID_CATALOG_INPUT", "Invalid catalog payload", http.StatusBadRequest)
)

// CatalogHandler exposes CRUD for contacts, organizations and products.
type CatalogHandler struct {
	usecase usecase.ICatalogUseCase
}

func NewCatalogHandler(uc usecase.ICatalogUseCase) *CatalogHandler {
	return &CatalogHandler{usecase: uc}
}

func (h *CatalogHandler) CreateContact(c *gin.Context) {
	var payload request.ContactRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidCatalogPayload.HTTPStatus, errInvalidCatalogPayload.ToHTTPError())
		return
	}

	contact, err := h.usecase.CreateContact(c.Request.Context(), entities.Contact{
		Name:           payload.Name,
		Email:          payload.Email,
		Phone:          payload.Phone,
		OrganizationID: payload.OrganizationID,
	})
	if err != nil {
		appErr := mapCatalogError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromContact(contact))
}

func (h *CatalogHandler) GetContact(c *gin.Context) {
	contact, err := h.usecase.GetContact(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapCatalogError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromContact(contact))
}

func (h *CatalogHandler) ListContacts(c *gin.Context) {
	contacts, err := h.usecase.ListContacts(c.Request.Context())
	if err != nil {
		appErr := mapCatalogError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromContacts(contacts))
}

func (h *CatalogHandler) UpdateContact(c *gin.Context) {
	var payload request.ContactRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidCatalogPayload.HTTPStatus, errInvalidCatalogPayload.ToHTTPError())
		return
	}

	contact, err := h.usecase.UpdateContact(c.Request.Context(), entities.Contact{
		ID:             c.Param("id"),
		Name:           payload.Name,
		Email:          payload.Email,
		Phone:          payload.Phone,
		OrganizationID: payload.OrganizationID,
	})
	if err != nil {
		appErr := mapCatalogError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromContact(contact))
}

func (h *CatalogHandler) DeleteContact(c *gin.Context) {
	if err := h.usecase.DeleteContact(c.Request.Context(), c.Param("id")); err != nil {
		appErr := mapCatalogError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *CatalogHandler) CreateOrganization(c *gin.Context) {
	var payload request.OrganizationRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidCatalogPayload.HTTPStatus, errInvalidCatalogPayload.ToHTTPError())
		return
	}

	org, err := h.usecase.CreateOrganization(c.Request.Context(), entities.Organization{
		Name:           payload.Name,
		BillingAddress: payload.BillingAddress,
		Email:          payload.Email,
	})
	if err != nil {
		appErr := mapCatalogError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusCreated, response.FromOrganization(org))
}

func (h *CatalogHandler) GetOrganization(c *gin.Context) {
	org, err := h.usecase.GetOrganization(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapCatalogError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromOrganization(org))
}

func (h *CatalogHandler) ListOrganizations(c *gin.Context) {
	orgs, err := h.usecase.ListOrganizations(c.Request.Context())
	if err != nil {
		appErr := mapCatalogError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromOrganizations(orgs))
}

func (h *CatalogHandler) UpdateOrganization(c *gin.Context) {
	var payload request.OrganizationRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidCatalogPayload.HTTPStatus, errInvalidCatalogPayload.ToHTTPError())
		return
	}

	org, err := h.usecase.UpdateOrganization(c.Request.Context(), entities.Organization{
		ID:             c.Param("id"),
		Name:           payload.Name,
		BillingAddress: payload.BillingAddress,
		Email:          payload.Email,
	})
	if err != nil {
		appErr := mapCatalogError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromOrganization(org))
}

func (h *CatalogHandler) DeleteOrganization(c *gin.Context) {
	if err := h.usecase.DeleteOrganization(c.Request.Context(), c.Param("id")); err != nil {
		appErr := mapCatalogError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *CatalogHandler) CreateProduct(c *gin.Context) {
	var payload request.ProductRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidCatalogPayload.HTTPStatus, errInvalidCatalogPayload.ToHTTPError())
		return
	}

	product, err := h.usecase.CreateProduct(c.Request.Context(), entities.Product{
		Name:        payload.Name,
		Description: payload.Description,
		UnitPrice:   payload.UnitPrice,
		Active:      payload.ResolveActive(),
	})
	if err != nil {
		appErr := mapCatalogError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusCreated, response.FromProduct(product))
}

func (h *CatalogHandler) GetProduct(c *gin.Context) {
	product, err := h.usecase.GetProduct(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapCatalogError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromProduct(product))
}

func (h *CatalogHandler) ListProducts(c *gin.Context) {
	products, err := h.usecase.ListProducts(c.Request.Context())
	if err != nil {
		appErr := mapCatalogError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromProducts(products))
}

func (h *CatalogHandler) UpdateProduct(c *gin.Context) {
	var payload request.ProductRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidCatalogPayload.HTTPStatus, errInvalidCatalogPayload.ToHTTPError())
		return
	}

	product, err := h.usecase.UpdateProduct(c.Request.Context(), entities.Product{
		ID:          c.Param("id"),
		Name:        payload.Name,
		Description: payload.Description,
		UnitPrice:   payload.UnitPrice,
		Active:      payload.ResolveActive(),
	})
	if err != nil {
		appErr := mapCatalogError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromProduct(product))
}

func (h *CatalogHandler) DeleteProduct(c *gin.Context) {
	if err := h.usecase.DeleteProduct(c.Request.Context(), c.Param("id")); err != nil {
		appErr := mapCatalogError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.Status(http.StatusNoContent)
}

func mapCatalogError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrContactInvalid), errors.Is(err, usecase.ErrOrganizationInvalid), errors.Is(err, usecase.ErrProductInvalid):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrContactNotFound):
		return pkg.NewDomainErrorSimple("CONTACT_NOT_FOUND", "Contact not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrOrgNotFound):
		return pkg.NewDomainErrorSimple("ORGANIZATION_NOT_FOUND", "Organization not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrProductNotFound):
		return pkg.NewDomainErrorSimple("PRODUCT_NOT_FOUND", "Product not found", http.StatusNotFound)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
