package pdf

import (
	"bytes"
	"fmt"
	"math"
	"sort"
	"strings"

	"eventpilot/internal/domain/entities"
	"eventpilot/internal/usecase/interfaces"

	"github.com/divan/num2words"
	"github.com/jung-kurt/gofpdf"
)

// Renderer draws the fixed document layout: header, bill-to, event
// details, line-item table, total.
type Renderer struct {
	companyName string
}

var _ interfaces.IDocumentRenderer = (*Renderer)(nil)

func NewRenderer(companyName string) *Renderer {
	if companyName == "" {
		companyName = "EventPilot"
	}
	return &Renderer{companyName: companyName}
}

func (r *Renderer) Render(doc entities.Document, items []entities.LineItem, contact entities.Contact) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(15, 15, 15)
	pdf.AddPage()

	// Header
	pdf.SetFont("Helvetica", "B", 18)
	pdf.Cell(120, 10, r.companyName)
	pdf.SetFont("Helvetica", "B", 14)
	pdf.CellFormat(0, 10, titleFor(doc), "", 1, "R", false, 0, "")

	pdf.SetFont("Helvetica", "", 10)
	pdf.CellFormat(0, 6, fmt.Sprintf("Status: %s", strings.ToUpper(string(doc.Status))), "", 1, "R", false, 0, "")
	pdf.Ln(4)

	// Bill-to
	pdf.SetFont("Helvetica", "B", 11)
	pdf.Cell(0, 6, "Bill To")
	pdf.Ln(6)
	pdf.SetFont("Helvetica", "", 10)
	if contact.Name != "" {
		pdf.Cell(0, 5, contact.Name)
		pdf.Ln(5)
	}
	if contact.Email != "" {
		pdf.Cell(0, 5, contact.Email)
		pdf.Ln(5)
	}
	pdf.Ln(3)

	// Event details
	if doc.EventDate != "" || doc.EventVenue != "" {
		pdf.SetFont("Helvetica", "B", 11)
		pdf.Cell(0, 6, "Event")
		pdf.Ln(6)
		pdf.SetFont("Helvetica", "", 10)
		if doc.EventDate != "" {
			pdf.Cell(0, 5, "Date: "+doc.EventDate)
			pdf.Ln(5)
		}
		if doc.EventVenue != "" {
			pdf.Cell(0, 5, "Venue: "+doc.EventVenue)
			pdf.Ln(5)
		}
		pdf.Ln(3)
	}

	// Line-item table, display order.
	ordered := make([]entities.LineItem, len(items))
	copy(ordered, items)
	sort.SliceStable(ordered, func(i, j int) bool { return ordered[i].SortOrder < ordered[j].SortOrder })

	pdf.SetFont("Helvetica", "B", 10)
	pdf.SetFillColor(235, 235, 235)
	pdf.CellFormat(90, 7, "Item", "1", 0, "L", true, 0, "")
	pdf.CellFormat(20, 7, "Qty", "1", 0, "C", true, 0, "")
	pdf.CellFormat(35, 7, "Unit Price", "1", 0, "R", true, 0, "")
	pdf.CellFormat(35, 7, "Amount", "1", 1, "R", true, 0, "")

	pdf.SetFont("Helvetica", "", 10)
	for _, li := range ordered {
		pdf.CellFormat(90, 7, li.Name, "1", 0, "L", false, 0, "")
		pdf.CellFormat(20, 7, fmt.Sprintf("%d", li.Quantity), "1", 0, "C", false, 0, "")
		pdf.CellFormat(35, 7, fmt.Sprintf("$%.2f", li.UnitPrice), "1", 0, "R", false, 0, "")
		pdf.CellFormat(35, 7, fmt.Sprintf("$%.2f", li.Amount()), "1", 1, "R", false, 0, "")
	}

	total := entities.GrandTotal(ordered)
	pdf.SetFont("Helvetica", "B", 11)
	pdf.CellFormat(145, 8, "Total", "1", 0, "R", false, 0, "")
	pdf.CellFormat(35, 8, fmt.Sprintf("$%.2f", total), "1", 1, "R", false, 0, "")

	pdf.SetFont("Helvetica", "I", 9)
	pdf.Cell(0, 6, amountInWords(total))
	pdf.Ln(8)

	if doc.Notes != "" {
		pdf.SetFont("Helvetica", "", 9)
		pdf.MultiCell(0, 5, "Notes: "+doc.Notes, "", "L", false)
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Filename is the deterministic blob name for a rendered document.
func Filename(doc entities.Document) string {
	return fmt.Sprintf("%s_%s.pdf", doc.Number, strings.ToUpper(string(doc.Status)))
}

func titleFor(doc entities.Document) string {
	if doc.Kind == entities.DocumentKindInvoice {
		return "Invoice " + doc.Number
	}
	return "Estimate " + doc.Number
}

func amountInWords(total float64) string {
	dollars := int(total)
	cents := int(math.Round((total - float64(dollars)) * 100))
	words := strings.Title(num2words.Convert(dollars))
	if cents > 0 {
		return fmt.Sprintf("%s Dollars and %d/100", words, cents)
	}
	return words + " Dollars"
}
