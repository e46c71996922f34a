package interfaces

import (
	"context"

	"eventpilot/internal/domain/entities"
)

// IContactRepository abstracts DynamoDB persistence for contacts.
type IContactRepository interface {
	Create(ctx context.Context, c entities.Contact) (entities.Contact, error)
	GetByID(ctx context.Context, id string) (entities.Contact, error)
	List(ctx context.Context) ([]entities.Contact, error)
	Update(ctx context.Context, c entities.Contact) (entities.Contact, error)
	Delete(ctx context.Context, id string) error
}

// IOrganizationRepository abstracts DynamoDB persistence for organizations.
type IOrganizationRepository interface {
	Create(ctx context.Context, o entities.Organization) (entities.Organization, error)
	GetByID(ctx context.Context, id string) (entities.Organization, error)
	List(ctx context.Context) ([]entities.Organization, error)
	Update(ctx context.Context, o entities.Organization) (entities.Organization, error)
	Delete(ctx context.Context, id string) error
}

// IProductRepository abstracts DynamoDB persistence for catalog products.
type IProductRepository interface {
	Create(ctx context.Context, p entities.Product) (entities.Product, error)
	GetByID(ctx context.Context, id string) (entities.Product, error)
	List(ctx context.Context) ([]entities.Product, error)
	Update(ctx context.Context, p entities.Product) (entities.Product, error)
	Delete(ctx context.Context, id string) error
}
