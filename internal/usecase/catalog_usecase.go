package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"eventpilot/internal/domain/entities"
	"eventpilot/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var (
	ErrContactInvalid      = errors.New("contact requires a name and email")
	ErrOrganizationInvalid = errors.New("organization requires a name")
	ErrOrgNotFound         = errors.New("organization not found")
	ErrProductInvalid      = errors.New("product requires a name and non-negative price")
)

// ICatalogUseCase is thin CRUD over contacts, organizations and products.
type ICatalogUseCase interface {
	CreateContact(ctx context.Context, c entities.Contact) (entities.Contact, error)
	GetContact(ctx context.Context, id string) (entities.Contact, error)
	ListContacts(ctx context.Context) ([]entities.Contact, error)
	UpdateContact(ctx context.Context, c entities.Contact) (entities.Contact, error)
	DeleteContact(ctx context.Context, id string) error

	CreateOrganization(ctx context.Context, o entities.Organization) (entities.Organization, error)
	GetOrganization(ctx context.Context, id string) (entities.Organization, error)
	ListOrganizations(ctx context.Context) ([]entities.Organization, error)
	UpdateOrganization(ctx context.Context, o entities.Organization) (entities.Organization, error)
	DeleteOrganization(ctx context.Context, id string) error

	CreateProduct(ctx context.Context, p entities.Product) (entities.Product, error)
	GetProduct(ctx context.Context, id string) (entities.Product, error)
	ListProducts(ctx context.Context) ([]entities.Product, error)
	UpdateProduct(ctx context.Context, p entities.Product) (entities.Product, error)
	DeleteProduct(ctx context.Context, id string) error
}

type CatalogUseCase struct {
	contacts interfaces.IContactRepository
	orgs     interfaces.IOrganizationRepository
	products interfaces.IProductRepository
}

var _ ICatalogUseCase = (*CatalogUseCase)(nil)

func NewCatalogUseCase(contacts interfaces.IContactRepository, orgs interfaces.IOrganizationRepository, products interfaces.IProductRepository) *CatalogUseCase {
	return &CatalogUseCase{contacts: contacts, orgs: orgs, products: products}
}

func (u *CatalogUseCase) CreateContact(ctx context.Context, c entities.Contact) (entities.Contact, error) {
	c.Name = strings.TrimSpace(c.Name)
	c.Email = strings.TrimSpace(c.Email)
	if c.Name == "" || c.Email == "" {
		return entities.Contact{}, ErrContactInvalid
	}
	if orgID := strings.TrimSpace(c.OrganizationID); orgID != "" {
		o, err := u.orgs.GetByID(ctx, orgID)
		if err != nil {
			return entities.Contact{}, err
		}
		if o.ID == "" {
			return entities.Contact{}, ErrOrgNotFound
		}
	}

	now := time.Now().UTC()
	c.ID = uuid.NewString()
	c.CreatedAt = now
	c.UpdatedAt = now
	return u.contacts.Create(ctx, c)
}

func (u *CatalogUseCase) GetContact(ctx context.Context, id string) (entities.Contact, error) {
	c, err := u.contacts.GetByID(ctx, strings.TrimSpace(id))
	if err != nil {
		return entities.Contact{}, err
	}
	if c.ID == "" {
		return entities.Contact{}, ErrContactNotFound
	}
	return c, nil
}

func (u *CatalogUseCase) ListContacts(ctx context.Context) ([]entities.Contact, error) {
	return u.contacts.List(ctx)
}

func (u *CatalogUseCase) UpdateContact(ctx context.Context, c entities.Contact) (entities.Contact, error) {
	existing, err := u.GetContact(ctx, c.ID)
	if err != nil {
		return entities.Contact{}, err
	}
	if name := strings.TrimSpace(c.Name); name != "" {
		existing.Name = name
	}
	if email := strings.TrimSpace(c.Email); email != "" {
		existing.Email = email
	}
	existing.Phone = strings.TrimSpace(c.Phone)
	existing.OrganizationID = strings.TrimSpace(c.OrganizationID)
	existing.UpdatedAt = time.Now().UTC()
	return u.contacts.Update(ctx, existing)
}

func (u *CatalogUseCase) DeleteContact(ctx context.Context, id string) error {
	if _, err := u.GetContact(ctx, id); err != nil {
		return err
	}
	return u.contacts.Delete(ctx, strings.TrimSpace(id))
}

func (u *CatalogUseCase) CreateOrganization(ctx context.Context, o entities.Organization) (entities.Organization, error) {
	o.Name = strings.TrimSpace(o.Name)
	if o.Name == "" {
		return entities.Organization{}, ErrOrganizationInvalid
	}

	now := time.Now().UTC()
	o.ID = uuid.NewString()
	o.CreatedAt = now
	o.UpdatedAt = now
	return u.orgs.Create(ctx, o)
}

func (u *CatalogUseCase) GetOrganization(ctx context.Context, id string) (entities.Organization, error) {
	o, err := u.orgs.GetByID(ctx, strings.TrimSpace(id))
	if err != nil {
		return entities.Organization{}, err
	}
	if o.ID == "" {
		return entities.Organization{}, ErrOrgNotFound
	}
	return o, nil
}

func (u *CatalogUseCase) ListOrganizations(ctx context.Context) ([]entities.Organization, error) {
	return u.orgs.List(ctx)
}

func (u *CatalogUseCase) UpdateOrganization(ctx context.Context, o entities.Organization) (entities.Organization, error) {
	existing, err := u.GetOrganization(ctx, o.ID)
	if err != nil {
		return entities.Organization{}, err
	}
	if name := strings.TrimSpace(o.Name); name != "" {
		existing.Name = name
	}
	existing.BillingAddress = strings.TrimSpace(o.BillingAddress)
	existing.Email = strings.TrimSpace(o.Email)
	existing.UpdatedAt = time.Now().UTC()
	return u.orgs.Update(ctx, existing)
}

func (u *CatalogUseCase) DeleteOrganization(ctx context.Context, id string) error {
	if _, err := u.GetOrganization(ctx, id); err != nil {
		return err
	}
	return u.orgs.Delete(ctx, strings.TrimSpace(id))
}

func (u *CatalogUseCase) CreateProduct(ctx context.Context, p entities.Product) (entities.Product, error) {
	p.Name = strings.TrimSpace(p.Name)
	if p.Name == "" || p.UnitPrice < 0 {
		return entities.Product{}, ErrProductInvalid
	}

	now := time.Now().UTC()
	p.ID = uuid.NewString()
	p.UnitPrice = entities.RoundCents(p.UnitPrice)
	p.Active = true
	p.CreatedAt = now
	p.UpdatedAt = now
	return u.products.Create(ctx, p)
}

func (u *CatalogUseCase) GetProduct(ctx context.Context, id string) (entities.Product, error) {
	p, err := u.products.GetByID(ctx, strings.TrimSpace(id))
	if err != nil {
		return entities.Product{}, err
	}
	if p.ID == "" {
		return entities.Product{}, ErrProductNotFound
	}
	return p, nil
}

func (u *CatalogUseCase) ListProducts(ctx context.Context) ([]entities.Product, error) {
	return u.products.List(ctx)
}

func (u *CatalogUseCase) UpdateProduct(ctx context.Context, p entities.Product) (entities.Product, error) {
	existing, err := u.GetProduct(ctx, p.ID)
	if err != nil {
		return entities.Product{}, err
	}
	if name := strings.TrimSpace(p.Name); name != "" {
		existing.Name = name
	}
	if p.UnitPrice < 0 {
		return entities.Product{}, ErrProductInvalid
	}
	existing.Description = strings.TrimSpace(p.Description)
	existing.UnitPrice = entities.RoundCents(p.UnitPrice)
	existing.Active = p.Active
	existing.UpdatedAt = time.Now().UTC()
	return u.products.Update(ctx, existing)
}

func (u *CatalogUseCase) DeleteProduct(ctx context.Context, id string) error {
	if _, err := u.GetProduct(ctx, id); err != nil {
		return err
	}
	return u.products.Delete(ctx, strings.TrimSpace(id))
}
