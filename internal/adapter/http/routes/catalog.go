package routes

import (
	"eventpilot/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

func addCatalogRoutes(rg *gin.RouterGroup, catalogHandler *handlers.CatalogHandler, disclosureHandler *handlers.DisclosureHandler) {
	contacts := rg.Group("/contacts")
	{
		contacts.POST("", catalogHandler.CreateContact)
		contacts.GET("", catalogHandler.ListContacts)
		contacts.GET("/:id", catalogHandler.GetContact)
		contacts.PUT("/:id", catalogHandler.UpdateContact)
		contacts.DELETE("/:id", catalogHandler.DeleteContact)
	}

	organizations := rg.Group("/organizations")
	{
		organizations.POST("", catalogHandler.CreateOrganization)
		organizations.GET("", catalogHandler.ListOrganizations)
		organizations.GET("/:id", catalogHandler.GetOrganization)
		organizations.PUT("/:id", catalogHandler.UpdateOrganization)
		organizations.DELETE("/:id", catalogHandler.DeleteOrganization)
	}

	products := rg.Group("/products")
	{
		products.POST("", catalogHandler.CreateProduct)
		products.GET("", catalogHandler.ListProducts)
		products.GET("/:id", catalogHandler.GetProduct)
		products.PUT("/:id", catalogHandler.UpdateProduct)
		products.DELETE("/:id", catalogHandler.DeleteProduct)
	}

	disclosures := rg.Group("/disclosures")
	{
		disclosures.POST("", disclosureHandler.Create)
		disclosures.GET("", disclosureHandler.ListActive)
		disclosures.GET("/:id", disclosureHandler.GetByID)
		disclosures.PUT("/:id", disclosureHandler.Update)
	}
}
