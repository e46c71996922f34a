package entities

import "time"

// ServiceFeeRate is applied to the subtotal of non-fee items to derive the
// single service-fee line of a document.
const ServiceFeeRate = 0.035

// LineItem belongs to exactly one document.
//
// Storage model:
//   - PK: document_id, SK: id
//
// SortOrder is dense and zero-based across the document's items; display
// order is exactly ascending SortOrder.
type LineItem struct {
	ID           string    `json:"id"`
	DocumentID   string    `json:"document_id"`
	Name         string    `json:"name"`
	Description  string    `json:"description,omitempty"`
	Quantity     int       `json:"quantity"`
	UnitPrice    float64   `json:"unit_price"`
	ProductID    string    `json:"product_id,omitempty"`
	IsCustom     bool      `json:"is_custom"`
	IsServiceFee bool      `json:"is_service_fee"`
	SortOrder    int       `json:"sort_order"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// Amount is the extended line amount.
func (li LineItem) Amount() float64 {
	return RoundCents(float64(li.Quantity) * li.UnitPrice)
}

// Subtotal sums the extended amounts of all non-fee items.
func Subtotal(items []LineItem) float64 {
	var sum float64
	for _, li := range items {
		if li.IsServiceFee {
			continue
		}
		sum += li.Amount()
	}
	return RoundCents(sum)
}

// ServiceFeeAmount derives the fee line amount from the non-fee subtotal.
func ServiceFeeAmount(items []LineItem) float64 {
	return RoundCents(ServiceFeeRate * Subtotal(items))
}

// GrandTotal sums all item amounts, fee line included.
func GrandTotal(items []LineItem) float64 {
	var sum float64
	for _, li := range items {
		sum += li.Amount()
	}
	return RoundCents(sum)
}

// FindServiceFee returns the fee item, if the document has one.
func FindServiceFee(items []LineItem) (LineItem, bool) {
	for _, li := range items {
		if li.IsServiceFee {
			return li, true
		}
	}
	return LineItem{}, false
}
