package routes

import (
	"eventpilot/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathEstimates = "/estimates"
	PathInvoices  = "/invoices"
	PathDocuments = "/documents"
)

func addDocumentRoutes(
	rg *gin.RouterGroup,
	documentHandler *handlers.DocumentHandler,
	lineItemHandler *handlers.LineItemHandler,
	approvalHandler *handlers.ApprovalHandler,
	paymentHandler *handlers.PaymentHandler,
	exportHandler *handlers.ExportHandler,
) {
	estimates := rg.Group(PathEstimates)
	{
		estimates.POST("", documentHandler.CreateEstimate)
		estimates.GET("", documentHandler.ListEstimates)
		estimates.GET("/export", exportHandler.ExportEstimates)
	}

	invoices := rg.Group(PathInvoices)
	{
		invoices.POST("", documentHandler.CreateInvoice)
		invoices.GET("", documentHandler.ListInvoices)
		invoices.GET("/export", exportHandler.ExportInvoices)
	}

	// Operations shared by both kinds are addressed by document id.
	documents := rg.Group(PathDocuments)
	{
		documents.GET("/:id", documentHandler.GetByID)
		documents.PATCH("/:id/status", documentHandler.UpdateStatus)
		documents.POST("/:id/convert", documentHandler.ConvertToInvoice)
		documents.GET("/:id/activity", documentHandler.ListActivity)

		documents.GET("/:id/items", lineItemHandler.List)
		documents.POST("/:id/items", lineItemHandler.Add)
		documents.POST("/:id/items/service-fee", lineItemHandler.AddServiceFee)
		documents.PUT("/:id/items/:item_id", lineItemHandler.Update)
		documents.DELETE("/:id/items/:item_id", lineItemHandler.Delete)
		documents.PUT("/:id/items", lineItemHandler.Reorder)

		documents.POST("/:id/approvals", approvalHandler.Issue)
		documents.GET("/:id/payments", paymentHandler.ListByDocument)
	}

	rg.GET("/payments/:payment_id", paymentHandler.GetByID)
}
