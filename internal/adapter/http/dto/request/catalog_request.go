package request

type ContactRequest struct {
	Name           string `json:"name" binding:"required"`
	Email          string `json:"email" binding:"required,email"`
	Phone          string `json:"phone"`
	OrganizationID string `json:"organization_id"`
}

type OrganizationRequest struct {
	Name           string `json:"name" binding:"required"`
	BillingAddress string `json:"billing_address"`
	Email          string `json:"email"`
}

type ProductRequest struct {
	Name        string  `json:"name" binding:"required"`
	Description string  `json:"description"`
	UnitPrice   float64 `json:"unit_price"`
	Active      *bool   `json:"active"`
}

// ResolveActive defaults new products to active.
func (r ProductRequest) ResolveActive() bool {
	if r.Active == nil {
		return true
	}
	return *r.Active
}

type DisclosureRequest struct {
	Title     string `json:"title" binding:"required"`
	Content   string `json:"content" binding:"required"`
	SortOrder int    `json:"sort_order"`
	Active    *bool  `json:"active"`
}

func (r DisclosureRequest) ResolveActive() bool {
	if r.Active == nil {
		return true
	}
	return *r.Active
}
