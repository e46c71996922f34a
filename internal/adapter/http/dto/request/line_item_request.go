package request

// AddLineItemRequest covers both custom items and catalog copies. When
// ProductID is set, name/description/unit price come from the product.
type AddLineItemRequest struct {
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Quantity    int     `json:"quantity"`
	UnitPrice   float64 `json:"unit_price"`
	ProductID   string  `json:"product_id"`
	AtHead      bool    `json:"at_head"`
}

func (r AddLineItemRequest) IsCatalogCopy() bool {
	return r.ProductID != ""
}

type UpdateLineItemRequest struct {
	Name        string  `json:"name" binding:"required"`
	Description string  `json:"description"`
	Quantity    int     `json:"quantity" binding:"required"`
	UnitPrice   float64 `json:"unit_price"`
}

// ReorderLineItemsRequest carries the full item ID list in its new
// display order.
type ReorderLineItemsRequest struct {
	ItemIDs []string `json:"item_ids" binding:"required"`
}
