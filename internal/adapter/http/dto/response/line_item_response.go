package response

import (
	"time"

	"eventpilot/internal/domain/entities"
)

type LineItemResponse struct {
	ID           string    `json:"id"`
	DocumentID   string    `json:"document_id"`
	Name         string    `json:"name"`
	Description  string    `json:"description,omitempty"`
	Quantity     int       `json:"quantity"`
	UnitPrice    float64   `json:"unit_price"`
	Amount       float64   `json:"amount"`
	ProductID    string    `json:"product_id,omitempty"`
	IsCustom     bool      `json:"is_custom"`
	IsServiceFee bool      `json:"is_service_fee"`
	SortOrder    int       `json:"sort_order"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

func FromLineItem(li entities.LineItem) LineItemResponse {
	return LineItemResponse{
		ID:           li.ID,
		DocumentID:   li.DocumentID,
		Name:         li.Name,
		Description:  li.Description,
		Quantity:     li.Quantity,
		UnitPrice:    li.UnitPrice,
		Amount:       li.Amount(),
		ProductID:    li.ProductID,
		IsCustom:     li.IsCustom,
		IsServiceFee: li.IsServiceFee,
		SortOrder:    li.SortOrder,
		CreatedAt:    li.CreatedAt,
		UpdatedAt:    li.UpdatedAt,
	}
}

func FromLineItems(items []entities.LineItem) []LineItemResponse {
	out := make([]LineItemResponse, 0, len(items))
	for _, li := range items {
		out = append(out, FromLineItem(li))
	}
	return out
}

// LineItemListResponse bundles the ordered items with the derived totals
// so detail pages render without recomputing money client-side.
type LineItemListResponse struct {
	Items      []LineItemResponse `json:"items"`
	Subtotal   float64            `json:"subtotal"`
	ServiceFee float64            `json:"service_fee"`
	Total      float64            `json:"total"`
}

func FromLineItemList(items []entities.LineItem) LineItemListResponse {
	var fee float64
	if li, ok := entities.FindServiceFee(items); ok {
		fee = li.Amount()
	}
	return LineItemListResponse{
		Items:      FromLineItems(items),
		Subtotal:   entities.Subtotal(items),
		ServiceFee: fee,
		Total:      entities.GrandTotal(items),
	}
}
