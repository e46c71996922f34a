package entities

import "time"

// Contact is a billable person, optionally linked to an organization.
type Contact struct {
	ID             string    `json:"id"`
	Name           string    `json:"name"`
	Email          string    `json:"email"`
	Phone          string    `json:"phone,omitempty"`
	OrganizationID string    `json:"organization_id,omitempty"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

// Organization is a billable company.
type Organization struct {
	ID             string    `json:"id"`
	Name           string    `json:"name"`
	BillingAddress string    `json:"billing_address,omitempty"`
	Email          string    `json:"email,omitempty"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

// Product is a rentable catalog entry line items may be copied from.
type Product struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description,omitempty"`
	UnitPrice   float64   `json:"unit_price"`
	Active      bool      `json:"active"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// CopyToLineItem seeds a new line item from the product. The copy keeps a
// back-reference so later product edits do not change issued documents.
func (p Product) CopyToLineItem(documentID string, quantity int) LineItem {
	return LineItem{
		DocumentID:  documentID,
		Name:        p.Name,
		Description: p.Description,
		Quantity:    quantity,
		UnitPrice:   p.UnitPrice,
		ProductID:   p.ID,
	}
}
