package pdf

import (
	"bytes"
	"testing"

	"eventpilot/internal/domain/entities"
)

func TestRenderer_Render(t *testing.T) {
	r := NewRenderer("Test Rentals")

	doc := entities.Document{
		ID:         "doc-1",
		Kind:       entities.DocumentKindInvoice,
		Number:     "INV-000001",
		Status:     entities.DocumentStatusApproved,
		EventDate:  "2026-09-12",
		EventVenue: "Grand Hall",
		Notes:      "Load-in starts at 8am.",
	}
	items := []entities.LineItem{
		{ID: "li-2", Name: "Lighting", Quantity: 1, UnitPrice: 5, SortOrder: 1},
		{ID: "li-1", Name: "Stage", Quantity: 2, UnitPrice: 10, SortOrder: 0},
	}
	contact := entities.Contact{Name: "Dana", Email: "dana@example.com"}

	body, err := r.Render(doc, items, contact)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(body) == 0 || !bytes.HasPrefix(body, []byte("%PDF")) {
		t.Fatalf("expected a pdf document, got %d bytes", len(body))
	}
}

func TestFilename(t *testing.T) {
	doc := entities.Document{Number: "EST-000003", Status: entities.DocumentStatusApproved}
	if got := Filename(doc); got != "EST-000003_APPROVED.pdf" {
		t.Fatalf("unexpected filename: %q", got)
	}
}

func TestAmountInWords(t *testing.T) {
	cases := []struct {
		total    float64
		expected string
	}{
		{total: 25, expected: "Twenty-Five Dollars"},
		{total: 25.88, expected: "Twenty-Five Dollars and 88/100"},
		{total: 10.29, expected: "Ten Dollars and 29/100"},
		{total: 1035.07, expected: "One Thousand Thirty-Five Dollars and 7/100"},
	}
	for _, tc := range cases {
		if got := amountInWords(tc.total); got != tc.expected {
			t.Fatalf("amountInWords(%v) = %q, expected %q", tc.total, got, tc.expected)
		}
	}
}
