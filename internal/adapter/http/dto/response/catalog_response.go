package response

import (
	"time"

	"eventpilot/internal/domain/entities"
)

type ContactResponse struct {
	ID             string    `json:"id"`
	Name           string    `json:"name"`
	Email          string    `json:"email"`
	Phone          string    `json:"phone,omitempty"`
	OrganizationID string    `json:"organization_id,omitempty"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

func FromContact(c entities.Contact) ContactResponse {
	return ContactResponse{
		ID:             c.ID,
		Name:           c.Name,
		Email:          c.Email,
		Phone:          c.Phone,
		OrganizationID: c.OrganizationID,
		CreatedAt:      c.CreatedAt,
		UpdatedAt:      c.UpdatedAt,
	}
}

func FromContacts(contacts []entities.Contact) []ContactResponse {
	out := make([]ContactResponse, 0, len(contacts))
	for _, c := range contacts {
		out = append(out, FromContact(c))
	}
	return out
}

type OrganizationResponse struct {
	ID             string    `json:"id"`
	Name           string    `json:"name"`
	BillingAddress string    `json:"billing_address,omitempty"`
	Email          string    `json:"email,omitempty"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

func FromOrganization(o entities.Organization) OrganizationResponse {
	return OrganizationResponse{
		ID:             o.ID,
		Name:           o.Name,
		BillingAddress: o.BillingAddress,
		Email:          o.Email,
		CreatedAt:      o.CreatedAt,
		UpdatedAt:      o.UpdatedAt,
	}
}

func FromOrganizations(orgs []entities.Organization) []OrganizationResponse {
	out := make([]OrganizationResponse, 0, len(orgs))
	for _, o := range orgs {
		out = append(out, FromOrganization(o))
	}
	return out
}

type ProductResponse struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description,omitempty"`
	UnitPrice   float64   `json:"unit_price"`
	Active      bool      `json:"active"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func FromProduct(p entities.Product) ProductResponse {
	return ProductResponse{
		ID:          p.ID,
		Name:        p.Name,
		Description: p.Description,
		UnitPrice:   p.UnitPrice,
		Active:      p.Active,
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}
}

func FromProducts(products []entities.Product) []ProductResponse {
	out := make([]ProductResponse, 0, len(products))
	for _, p := range products {
		out = append(out, FromProduct(p))
	}
	return out
}

type DisclosureResponse struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	Active    bool      `json:"active"`
	SortOrder int       `json:"sort_order"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func FromDisclosure(d entities.Disclosure) DisclosureResponse {
	return DisclosureResponse{
		ID:        d.ID,
		Title:     d.Title,
		Content:   d.Content,
		Active:    d.Active,
		SortOrder: d.SortOrder,
		CreatedAt: d.CreatedAt,
		UpdatedAt: d.UpdatedAt,
	}
}

func FromDisclosures(disclosures []entities.Disclosure) []DisclosureResponse {
	out := make([]DisclosureResponse, 0, len(disclosures))
	for _, d := range disclosures {
		out = append(out, FromDisclosure(d))
	}
	return out
}
