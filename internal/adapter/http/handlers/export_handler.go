package handlers

import (
	"fmt"
	"net/http"
	"time"

	"eventpilot/internal/domain/entities"
	"eventpilot/internal/usecase"
	"eventpilot/pkg"

	"github.com/gin-gonic/gin"
	"github.com/xuri/excelize/v2"
)

// ExportHandler streams spreadsheet exports of the document lists.
type ExportHandler struct {
	usecase usecase.IDocumentUseCase
}

func NewExportHandler(uc usecase.IDocumentUseCase) *ExportHandler {
	return &ExportHandler{usecase: uc}
}

func (h *ExportHandler) ExportEstimates(c *gin.Context) {
	h.export(c, entities.DocumentKindEstimate, "Estimates")
}

func (h *ExportHandler) ExportInvoices(c *gin.Context) {
	h.export(c, entities.DocumentKindInvoice, "Invoices")
}

func (h *ExportHandler) export(c *gin.Context, kind entities.DocumentKind, sheetName string) {
	docs, err := h.usecase.ListByKind(c.Request.Context(), kind)
	if err != nil {
		appErr := mapDocumentError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	f := excelize.NewFile()
	index, _ := f.NewSheet(sheetName)
	f.SetActiveSheet(index)
	f.DeleteSheet("Sheet1")

	headers := []string{"Number", "Status", "Contact", "Event Date", "Event Venue", "Total", "Created"}
	for i, header := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		f.SetCellValue(sheetName, cell, header)
	}

	for i, d := range docs {
		row := i + 2
		f.SetCellValue(sheetName, fmt.Sprintf("A%d", row), d.Number)
		f.SetCellValue(sheetName, fmt.Sprintf("B%d", row), string(d.Status))
		f.SetCellValue(sheetName, fmt.Sprintf("C%d", row), d.ContactID)
		f.SetCellValue(sheetName, fmt.Sprintf("D%d", row), d.EventDate)
		f.SetCellValue(sheetName, fmt.Sprintf("E%d", row), d.EventVenue)
		f.SetCellValue(sheetName, fmt.Sprintf("F%d", row), d.Total)
		f.SetCellValue(sheetName, fmt.Sprintf("G%d", row), d.CreatedAt.Format("2006-01-02 15:04"))
	}

	fileName := fmt.Sprintf("%s_%s.xlsx", kind, time.Now().Format("20060102_150405"))
	c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Header("Content-Disposition", "attachment; filename="+fileName)
	if err := f.Write(c.Writer); err != nil {
		appErr := pkg.NewDomainError("INTERNAL_ERROR", "Failed to write export", err, http.StatusInternalServerError)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
	}
}
