package repository

import (
	"context"
	"sort"
	"strconv"
	"time"

	"eventpilot/internal/domain/entities"
	"eventpilot/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const defaultLineItemsTableName = "line_items"

type lineItemItem struct {
	DocumentID   string `dynamodbav:"document_id"`
	ID           string `dynamodbav:"id"`
	Name         string `dynamodbav:"name"`
	Description  string `dynamodbav:"description,omitempty"`
	Quantity     int    `dynamodbav:"quantity"`
	UnitPrice    string `dynamodbav:"unit_price"`
	ProductID    string `dynamodbav:"product_id,omitempty"`
	IsCustom     bool   `dynamodbav:"is_custom"`
	IsServiceFee bool   `dynamodbav:"is_service_fee"`
	SortOrder    int    `dynamodbav:"sort_order"`
	CreatedAt    string `dynamodbav:"created_at"`
	UpdatedAt    string `dynamodbav:"updated_at"`
}

// LineItemDynamoRepository persists LineItem entities in DynamoDB.
//
// Table requirements:
//   - PK: document_id (string), SK: id (string)

type LineItemDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.ILineItemRepository = (*LineItemDynamoRepository)(nil)

func NewLineItemDynamoRepository(ddb *dynamodb.Client) *LineItemDynamoRepository {
	return &LineItemDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("LINE_ITEMS_TABLE", defaultLineItemsTableName),
	}
}

func (r *LineItemDynamoRepository) Create(ctx context.Context, li entities.LineItem) (entities.LineItem, error) {
	av, err := attributevalue.MarshalMap(toLineItemItem(li))
	if err != nil {
		return entities.LineItem{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_not_exists(#id)"),
		ExpressionAttributeNames: map[string]string{
			"#id": "id",
		},
	})
	if err != nil {
		return entities.LineItem{}, err
	}
	return li, nil
}

func (r *LineItemDynamoRepository) GetByID(ctx context.Context, documentID, itemID string) (entities.LineItem, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"document_id": &types.AttributeValueMemberS{Value: documentID},
			"id":          &types.AttributeValueMemberS{Value: itemID},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.LineItem{}, err
	}
	if len(out.Item) == 0 {
		return entities.LineItem{}, nil
	}

	var it lineItemItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.LineItem{}, err
	}
	return fromLineItemItem(it), nil
}

func (r *LineItemDynamoRepository) ListByDocument(ctx context.Context, documentID string) ([]entities.LineItem, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		KeyConditionExpression: aws.String("document_id = :did"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":did": &types.AttributeValueMemberS{Value: documentID},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return nil, err
	}

	items := make([]entities.LineItem, 0, len(out.Items))
	for _, raw := range out.Items {
		var it lineItemItem
		if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
			return nil, err
		}
		items = append(items, fromLineItemItem(it))
	}
	sort.SliceStable(items, func(i, j int) bool { return items[i].SortOrder < items[j].SortOrder })
	return items, nil
}

func (r *LineItemDynamoRepository) Update(ctx context.Context, li entities.LineItem) (entities.LineItem, error) {
	av, err := attributevalue.MarshalMap(toLineItemItem(li))
	if err != nil {
		return entities.LineItem{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_exists(#id)"),
		ExpressionAttributeNames: map[string]string{
			"#id": "id",
		},
	})
	if err != nil {
		return entities.LineItem{}, err
	}
	return li, nil
}

func (r *LineItemDynamoRepository) Delete(ctx context.Context, documentID, itemID string) error {
	_, err := r.ddb.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"document_id": &types.AttributeValueMemberS{Value: documentID},
			"id":          &types.AttributeValueMemberS{Value: itemID},
		},
	})
	return err
}

// SetSortOrders issues one UpdateItem per entry. The writes are
// independent; a failure surfaces immediately and completed writes stay.
func (r *LineItemDynamoRepository) SetSortOrders(ctx context.Context, documentID string, orders map[string]int) error {
	now := time.Now().UTC().Format(time.RFC3339Nano)
	for itemID, position := range orders {
		_, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
			TableName: aws.String(r.tableName),
			Key: map[string]types.AttributeValue{
				"document_id": &types.AttributeValueMemberS{Value: documentID},
				"id":          &types.AttributeValueMemberS{Value: itemID},
			},
			ConditionExpression: aws.String("attribute_exists(#id)"),
			UpdateExpression:    aws.String("SET #sort_order = :pos, #updated_at = :updated_at"),
			ExpressionAttributeNames: map[string]string{
				"#id":         "id",
				"#sort_order": "sort_order",
				"#updated_at": "updated_at",
			},
			ExpressionAttributeValues: map[string]types.AttributeValue{
				":pos":        &types.AttributeValueMemberN{Value: strconv.Itoa(position)},
				":updated_at": &types.AttributeValueMemberS{Value: now},
			},
		})
		if err != nil {
			return err
		}
	}
	return nil
}

func toLineItemItem(li entities.LineItem) lineItemItem {
	return lineItemItem{
		DocumentID:   li.DocumentID,
		ID:           li.ID,
		Name:         li.Name,
		Description:  li.Description,
		Quantity:     li.Quantity,
		UnitPrice:    floatToString(li.UnitPrice),
		ProductID:    li.ProductID,
		IsCustom:     li.IsCustom,
		IsServiceFee: li.IsServiceFee,
		SortOrder:    li.SortOrder,
		CreatedAt:    li.CreatedAt.UTC().Format(time.RFC3339Nano),
		UpdatedAt:    li.UpdatedAt.UTC().Format(time.RFC3339Nano),
	}
}

func fromLineItemItem(it lineItemItem) entities.LineItem {
	createdAt, _ := time.Parse(time.RFC3339Nano, it.CreatedAt)
	updatedAt, _ := time.Parse(time.RFC3339Nano, it.UpdatedAt)
	unitPrice, _ := strconv.ParseFloat(it.UnitPrice, 64)
	return entities.LineItem{
		DocumentID:   it.DocumentID,
		ID:           it.ID,
		Name:         it.Name,
		Description:  it.Description,
		Quantity:     it.Quantity,
		UnitPrice:    unitPrice,
		ProductID:    it.ProductID,
		IsCustom:     it.IsCustom,
		IsServiceFee: it.IsServiceFee,
		SortOrder:    it.SortOrder,
		CreatedAt:    createdAt,
		UpdatedAt:    updatedAt,
	}
}
