package routes

import (
	"eventpilot/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

// addPublicRoutes registers the unauthenticated surface: operator login
// and the token URLs sent to clients.
func addPublicRoutes(rg *gin.RouterGroup, authHandler *handlers.AuthHandler, publicHandler *handlers.PublicHandler) {
	rg.POST("/auth/login", authHandler.Login)

	public := rg.Group("/public")
	{
		public.GET("/approvals/:token", publicHandler.GetApproval)
		public.POST("/approvals/:token", publicHandler.RespondApproval)
		public.POST("/invoices/:token/payment", publicHandler.PayInvoice)
	}
}
