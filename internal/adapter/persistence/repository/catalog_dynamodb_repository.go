package repository

import (
	"context"
	"strconv"
	"time"

	"eventpilot/internal/domain/entities"
	"eventpilot/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultContactsTableName      = "contacts"
	defaultOrganizationsTableName = "organizations"
	defaultProductsTableName      = "products"
)

// The three catalog tables share a layout: PK id (string), full scans
// for listing. Catalog volumes stay small so Scan is acceptable here.

type contactItem struct {
	ID             string `dynamodbav:"id"`
	Name           string `dynamodbav:"name"`
	Email          string `dynamodbav:"email"`
	Phone          string `dynamodbav:"phone,omitempty"`
	OrganizationID string `dynamodbav:"organization_id,omitempty"`
	CreatedAt      string `dynamodbav:"created_at"`
	UpdatedAt      string `dynamodbav:"updated_at"`
}

type organizationItem struct {
	ID             string `dynamodbav:"id"`
	Name           string `dynamodbav:"name"`
	BillingAddress string `dynamodbav:"billing_address,omitempty"`
	Email          string `dynamodbav:"email,omitempty"`
	CreatedAt      string `dynamodbav:"created_at"`
	UpdatedAt      string `dynamodbav:"updated_at"`
}

type productItem struct {
	ID          string `dynamodbav:"id"`
	Name        string `dynamodbav:"name"`
	Description string `dynamodbav:"description,omitempty"`
	UnitPrice   string `dynamodbav:"unit_price"`
	Active      bool   `dynamodbav:"active"`
	CreatedAt   string `dynamodbav:"created_at"`
	UpdatedAt   string `dynamodbav:"updated_at"`
}

type ContactDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IContactRepository = (*ContactDynamoRepository)(nil)

func NewContactDynamoRepository(ddb *dynamodb.Client) *ContactDynamoRepository {
	return &ContactDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("CONTACTS_TABLE", defaultContactsTableName),
	}
}

func (r *ContactDynamoRepository) Create(ctx context.Context, c entities.Contact) (entities.Contact, error) {
	if err := putCatalogItem(ctx, r.ddb, r.tableName, toContactItem(c)); err != nil {
		return entities.Contact{}, err
	}
	return c, nil
}

func (r *ContactDynamoRepository) GetByID(ctx context.Context, id string) (entities.Contact, error) {
	var it contactItem
	found, err := getCatalogItem(ctx, r.ddb, r.tableName, id, &it)
	if err != nil || !found {
		return entities.Contact{}, err
	}
	return fromContactItem(it), nil
}

func (r *ContactDynamoRepository) List(ctx context.Context) ([]entities.Contact, error) {
	raws, err := scanCatalogTable(ctx, r.ddb, r.tableName)
	if err != nil {
		return nil, err
	}
	contacts := make([]entities.Contact, 0, len(raws))
	for _, raw := range raws {
		var it contactItem
		if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
			return nil, err
		}
		contacts = append(contacts, fromContactItem(it))
	}
	return contacts, nil
}

func (r *ContactDynamoRepository) Update(ctx context.Context, c entities.Contact) (entities.Contact, error) {
	replaced, err := replaceCatalogItem(ctx, r.ddb, r.tableName, toContactItem(c))
	if err != nil {
		return entities.Contact{}, err
	}
	if !replaced {
		return entities.Contact{}, nil
	}
	return c, nil
}

func (r *ContactDynamoRepository) Delete(ctx context.Context, id string) error {
	return deleteCatalogItem(ctx, r.ddb, r.tableName, id)
}

type OrganizationDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IOrganizationRepository = (*OrganizationDynamoRepository)(nil)

func NewOrganizationDynamoRepository(ddb *dynamodb.Client) *OrganizationDynamoRepository {
	return &OrganizationDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("ORGANIZATIONS_TABLE", defaultOrganizationsTableName),
	}
}

func (r *OrganizationDynamoRepository) Create(ctx context.Context, o entities.Organization) (entities.Organization, error) {
	if err := putCatalogItem(ctx, r.ddb, r.tableName, toOrganizationItem(o)); err != nil {
		return entities.Organization{}, err
	}
	return o, nil
}

func (r *OrganizationDynamoRepository) GetByID(ctx context.Context, id string) (entities.Organization, error) {
	var it organizationItem
	found, err := getCatalogItem(ctx, r.ddb, r.tableName, id, &it)
	if err != nil || !found {
		return entities.Organization{}, err
	}
	return fromOrganizationItem(it), nil
}

func (r *OrganizationDynamoRepository) List(ctx context.Context) ([]entities.Organization, error) {
	raws, err := scanCatalogTable(ctx, r.ddb, r.tableName)
	if err != nil {
		return nil, err
	}
	orgs := make([]entities.Organization, 0, len(raws))
	for _, raw := range raws {
		var it organizationItem
		if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
			return nil, err
		}
		orgs = append(orgs, fromOrganizationItem(it))
	}
	return orgs, nil
}

func (r *OrganizationDynamoRepository) Update(ctx context.Context, o entities.Organization) (entities.Organization, error) {
	replaced, err := replaceCatalogItem(ctx, r.ddb, r.tableName, toOrganizationItem(o))
	if err != nil {
		return entities.Organization{}, err
	}
	if !replaced {
		return entities.Organization{}, nil
	}
	return o, nil
}

func (r *OrganizationDynamoRepository) Delete(ctx context.Context, id string) error {
	return deleteCatalogItem(ctx, r.ddb, r.tableName, id)
}

type ProductDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IProductRepository = (*ProductDynamoRepository)(nil)

func NewProductDynamoRepository(ddb *dynamodb.Client) *ProductDynamoRepository {
	return &ProductDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("PRODUCTS_TABLE", defaultProductsTableName),
	}
}

func (r *ProductDynamoRepository) Create(ctx context.Context, p entities.Product) (entities.Product, error) {
	if err := putCatalogItem(ctx, r.ddb, r.tableName, toProductItem(p)); err != nil {
		return entities.Product{}, err
	}
	return p, nil
}

func (r *ProductDynamoRepository) GetByID(ctx context.Context, id string) (entities.Product, error) {
	var it productItem
	found, err := getCatalogItem(ctx, r.ddb, r.tableName, id, &it)
	if err != nil || !found {
		return entities.Product{}, err
	}
	return fromProductItem(it), nil
}

func (r *ProductDynamoRepository) List(ctx context.Context) ([]entities.Product, error) {
	raws, err := scanCatalogTable(ctx, r.ddb, r.tableName)
	if err != nil {
		return nil, err
	}
	products := make([]entities.Product, 0, len(raws))
	for _, raw := range raws {
		var it productItem
		if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
			return nil, err
		}
		products = append(products, fromProductItem(it))
	}
	return products, nil
}

func (r *ProductDynamoRepository) Update(ctx context.Context, p entities.Product) (entities.Product, error) {
	replaced, err := replaceCatalogItem(ctx, r.ddb, r.tableName, toProductItem(p))
	if err != nil {
		return entities.Product{}, err
	}
	if !replaced {
		return entities.Product{}, nil
	}
	return p, nil
}

func (r *ProductDynamoRepository) Delete(ctx context.Context, id string) error {
	return deleteCatalogItem(ctx, r.ddb, r.tableName, id)
}

func putCatalogItem(ctx context.Context, ddb *dynamodb.Client, table string, item interface{}) error {
	av, err := attributevalue.MarshalMap(item)
	if err != nil {
		return err
	}
	_, err = ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(table),
		Item:                av,
		ConditionExpression: aws.String("attribute_not_exists(#id)"),
		ExpressionAttributeNames: map[string]string{
			"#id": "id",
		},
	})
	return err
}

func getCatalogItem(ctx context.Context, ddb *dynamodb.Client, table, id string, out interface{}) (bool, error) {
	res, err := ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(table),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return false, err
	}
	if len(res.Item) == 0 {
		return false, nil
	}
	if err := attributevalue.UnmarshalMap(res.Item, out); err != nil {
		return false, err
	}
	return true, nil
}

func replaceCatalogItem(ctx context.Context, ddb *dynamodb.Client, table string, item interface{}) (bool, error) {
	av, err := attributevalue.MarshalMap(item)
	if err != nil {
		return false, err
	}
	_, err = ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(table),
		Item:                av,
		ConditionExpression: aws.String("attribute_exists(#id)"),
		ExpressionAttributeNames: map[string]string{
			"#id": "id",
		},
	})
	if err != nil {
		if isConditionalCheckFailed(err) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

func deleteCatalogItem(ctx context.Context, ddb *dynamodb.Client, table, id string) error {
	_, err := ddb.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName: aws.String(table),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
	})
	return err
}

func scanCatalogTable(ctx context.Context, ddb *dynamodb.Client, table string) ([]map[string]types.AttributeValue, error) {
	var raws []map[string]types.AttributeValue
	var lastKey map[string]types.AttributeValue
	for {
		out, err := ddb.Scan(ctx, &dynamodb.ScanInput{
			TableName:         aws.String(table),
			ExclusiveStartKey: lastKey,
		})
		if err != nil {
			return nil, err
		}
		raws = append(raws, out.Items...)
		if out.LastEvaluatedKey == nil {
			break
		}
		lastKey = out.LastEvaluatedKey
	}
	return raws, nil
}

func toContactItem(c entities.Contact) contactItem {
	return contactItem{
		ID:             c.ID,
		Name:           c.Name,
		Email:          c.Email,
		Phone:          c.Phone,
		OrganizationID: c.OrganizationID,
		CreatedAt:      c.CreatedAt.UTC().Format(time.RFC3339Nano),
		UpdatedAt:      c.UpdatedAt.UTC().Format(time.RFC3339Nano),
	}
}

func fromContactItem(it contactItem) entities.Contact {
	created, _ := time.Parse(time.RFC3339Nano, it.CreatedAt)
	updated, _ := time.Parse(time.RFC3339Nano, it.UpdatedAt)
	return entities.Contact{
		ID:             it.ID,
		Name:           it.Name,
		Email:          it.Email,
		Phone:          it.Phone,
		OrganizationID: it.OrganizationID,
		CreatedAt:      created,
		UpdatedAt:      updated,
	}
}

func toOrganizationItem(o entities.Organization) organizationItem {
	return organizationItem{
		ID:             o.ID,
		Name:           o.Name,
		BillingAddress: o.BillingAddress,
		Email:          o.Email,
		CreatedAt:      o.CreatedAt.UTC().Format(time.RFC3339Nano),
		UpdatedAt:      o.UpdatedAt.UTC().Format(time.RFC3339Nano),
	}
}

func fromOrganizationItem(it organizationItem) entities.Organization {
	created, _ := time.Parse(time.RFC3339Nano, it.CreatedAt)
	updated, _ := time.Parse(time.RFC3339Nano, it.UpdatedAt)
	return entities.Organization{
		ID:             it.ID,
		Name:           it.Name,
		BillingAddress: it.BillingAddress,
		Email:          it.Email,
		CreatedAt:      created,
		UpdatedAt:      updated,
	}
}

func toProductItem(p entities.Product) productItem {
	return productItem{
		ID:          p.ID,
		Name:        p.Name,
		Description: p.Description,
		UnitPrice:   floatToString(p.UnitPrice),
		Active:      p.Active,
		CreatedAt:   p.CreatedAt.UTC().Format(time.RFC3339Nano),
		UpdatedAt:   p.UpdatedAt.UTC().Format(time.RFC3339Nano),
	}
}

func fromProductItem(it productItem) entities.Product {
	created, _ := time.Parse(time.RFC3339Nano, it.CreatedAt)
	updated, _ := time.Parse(time.RFC3339Nano, it.UpdatedAt)
	price, _ := strconv.ParseFloat(it.UnitPrice, 64)
	return entities.Product{
		ID:          it.ID,
		Name:        it.Name,
		Description: it.Description,
		UnitPrice:   price,
		Active:      it.Active,
		CreatedAt:   created,
		UpdatedAt:   updated,
	}
}
