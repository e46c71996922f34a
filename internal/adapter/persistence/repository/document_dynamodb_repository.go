package repository

import (
	"context"
	"errors"
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
	defaultDocumentsTableName = "documents"
	defaultCountersTableName  = "counters"
)

type documentItem struct {
	ID             string `dynamodbav:"id"`
	Kind           string `dynamodbav:"kind"`
	Number         string `dynamodbav:"number"`
	Status         string `dynamodbav:"status"`
	ContactID      string `dynamodbav:"contact_id,omitempty"`
	OrganizationID string `dynamodbav:"organization_id,omitempty"`
	EventDate      string `dynamodbav:"event_date,omitempty"`
	EventVenue     string `dynamodbav:"event_venue,omitempty"`
	Notes          string `dynamodbav:"notes,omitempty"`
	Total          string `dynamodbav:"total"`
	SourceID       string `dynamodbav:"source_id,omitempty"`
	CreatedAt      string `dynamodbav:"created_at"`
	UpdatedAt      string `dynamodbav:"updated_at"`
}

// DocumentDynamoRepository persists Document entities in DynamoDB.
//
// Table requirements:
//   - documents: PK id (string)
//   - counters: PK name (string), attribute seq (number)
//
// Sequential document numbers come from an atomic ADD on the per-kind
// counter item.

type DocumentDynamoRepository struct {
	ddb           *dynamodb.Client
	tableName     string
	countersTable string
}

var _ interfaces.IDocumentRepository = (*DocumentDynamoRepository)(nil)

func NewDocumentDynamoRepository(ddb *dynamodb.Client) *DocumentDynamoRepository {
	return &DocumentDynamoRepository{
		ddb:           ddb,
		tableName:     getenvDefault("DOCUMENTS_TABLE", defaultDocumentsTableName),
		countersTable: getenvDefault("COUNTERS_TABLE", defaultCountersTableName),
	}
}

func (r *DocumentDynamoRepository) Create(ctx context.Context, d entities.Document) (entities.Document, error) {
	av, err := attributevalue.MarshalMap(toDocumentItem(d))
	if err != nil {
		return entities.Document{}, err
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
		return entities.Document{}, err
	}
	return d, nil
}

func (r *DocumentDynamoRepository) GetByID(ctx context.Context, id string) (entities.Document, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Document{}, err
	}
	if len(out.Item) == 0 {
		return entities.Document{}, nil
	}

	var it documentItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Document{}, err
	}
	return fromDocumentItem(it), nil
}

func (r *DocumentDynamoRepository) ListByKind(ctx context.Context, kind entities.DocumentKind) ([]entities.Document, error) {
	var (
		docs    []entities.Document
		lastKey map[string]types.AttributeValue
	)
	for {
		out, err := r.ddb.Scan(ctx, &dynamodb.ScanInput{
			TableName:        aws.String(r.tableName),
			FilterExpression: aws.String("#kind = :kind"),
			ExpressionAttributeNames: map[string]string{
				"#kind": "kind",
			},
			ExpressionAttributeValues: map[string]types.AttributeValue{
				":kind": &types.AttributeValueMemberS{Value: string(kind)},
			},
			ExclusiveStartKey: lastKey,
		})
		if err != nil {
			return nil, err
		}
		for _, raw := range out.Items {
			var it documentItem
			if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
				return nil, err
			}
			docs = append(docs, fromDocumentItem(it))
		}
		if len(out.LastEvaluatedKey) == 0 {
			break
		}
		lastKey = out.LastEvaluatedKey
	}
	return docs, nil
}

func (r *DocumentDynamoRepository) UpdateStatus(ctx context.Context, id string, status entities.DocumentStatus) (entities.Document, error) {
	return r.update(ctx, id, func(now string) (string, map[string]types.AttributeValue, map[string]string) {
		expr := "SET #status = :status, #updated_at = :updated_at"
		vals := map[string]types.AttributeValue{
			":status":     &types.AttributeValueMemberS{Value: string(status)},
			":updated_at": &types.AttributeValueMemberS{Value: now},
		}
		names := map[string]string{
			"#status":     "status",
			"#updated_at": "updated_at",
		}
		return expr, vals, names
	})
}

func (r *DocumentDynamoRepository) UpdateTotal(ctx context.Context, id string, total float64) (entities.Document, error) {
	return r.update(ctx, id, func(now string) (string, map[string]types.AttributeValue, map[string]string) {
		expr := "SET #total = :total, #updated_at = :updated_at"
		vals := map[string]types.AttributeValue{
			":total":      &types.AttributeValueMemberS{Value: floatToString(total)},
			":updated_at": &types.AttributeValueMemberS{Value: now},
		}
		names := map[string]string{
			"#total":      "total",
			"#updated_at": "updated_at",
		}
		return expr, vals, names
	})
}

func (r *DocumentDynamoRepository) NextNumber(ctx context.Context, kind entities.DocumentKind) (int64, error) {
	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.countersTable),
		Key: map[string]types.AttributeValue{
			"name": &types.AttributeValueMemberS{Value: "document_number:" + string(kind)},
		},
		UpdateExpression: aws.String("ADD seq :one"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":one": &types.AttributeValueMemberN{Value: "1"},
		},
		ReturnValues: types.ReturnValueUpdatedNew,
	})
	if err != nil {
		return 0, err
	}

	n, ok := out.Attributes["seq"].(*types.AttributeValueMemberN)
	if !ok {
		return 0, errors.New("counter attribute missing")
	}
	return strconv.ParseInt(n.Value, 10, 64)
}

func (r *DocumentDynamoRepository) update(
	ctx context.Context,
	id string,
	build func(now string) (updateExpr string, values map[string]types.AttributeValue, names map[string]string),
) (entities.Document, error) {
	now := time.Now().UTC().Format(time.RFC3339Nano)
	updateExpr, values, names := build(now)

	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConditionExpression:       aws.String("attribute_exists(#id)"),
		UpdateExpression:          aws.String(updateExpr),
		ExpressionAttributeValues: values,
		ExpressionAttributeNames:  mergeNames(names, map[string]string{"#id": "id"}),
		ReturnValues:              types.ReturnValueAllNew,
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return entities.Document{}, nil
		}
		return entities.Document{}, err
	}
	if len(out.Attributes) == 0 {
		return entities.Document{}, nil
	}
	var it documentItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.Document{}, err
	}
	return fromDocumentItem(it), nil
}

func toDocumentItem(d entities.Document) documentItem {
	return documentItem{
		ID:             d.ID,
		Kind:           string(d.Kind),
		Number:         d.Number,
		Status:         string(d.Status),
		ContactID:      d.ContactID,
		OrganizationID: d.OrganizationID,
		EventDate:      d.EventDate,
		EventVenue:     d.EventVenue,
		Notes:          d.Notes,
		Total:          floatToString(d.Total),
		SourceID:       d.SourceID,
		CreatedAt:      d.CreatedAt.UTC().Format(time.RFC3339Nano),
		UpdatedAt:      d.UpdatedAt.UTC().Format(time.RFC3339Nano),
	}
}

func fromDocumentItem(it documentItem) entities.Document {
	createdAt, _ := time.Parse(time.RFC3339Nano, it.CreatedAt)
	updatedAt, _ := time.Parse(time.RFC3339Nano, it.UpdatedAt)
	total, _ := strconv.ParseFloat(it.Total, 64)
	return entities.Document{
		ID:             it.ID,
		Kind:           entities.DocumentKind(it.Kind),
		Number:         it.Number,
		Status:         entities.DocumentStatus(it.Status),
		ContactID:      it.ContactID,
		OrganizationID: it.OrganizationID,
		EventDate:      it.EventDate,
		EventVenue:     it.EventVenue,
		Notes:          it.Notes,
		Total:          total,
		SourceID:       it.SourceID,
		CreatedAt:      createdAt,
		UpdatedAt:      updatedAt,
	}
}
