package repository

import (
	"context"
	"time"

	"eventpilot/internal/domain/entities"
	"eventpilot/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/google/uuid"
)

const (
	defaultActivityTableName = "activity_events"
	activityDocumentIDIndex  = "document_id-index"
)

type activityItem struct {
	ID         string `dynamodbav:"id"`
	DocumentID string `dynamodbav:"document_id,omitempty"`
	Actor      string `dynamodbav:"actor"`
	Action     string `dynamodbav:"action"`
	Detail     string `dynamodbav:"detail,omitempty"`
	CreatedAt  string `dynamodbav:"created_at"`
}

// ActivityDynamoRepository is an append-only audit log.
type ActivityDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IActivityRecorder = (*ActivityDynamoRepository)(nil)

func NewActivityDynamoRepository(ddb *dynamodb.Client) *ActivityDynamoRepository {
	return &ActivityDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("ACTIVITY_TABLE", defaultActivityTableName),
	}
}

func (r *ActivityDynamoRepository) Record(ctx context.Context, ev entities.ActivityEvent) error {
	if ev.ID == "" {
		ev.ID = uuid.NewString()
	}
	if ev.CreatedAt.IsZero() {
		ev.CreatedAt = time.Now().UTC()
	}

	av, err := attributevalue.MarshalMap(activityItem{
		ID:         ev.ID,
		DocumentID: ev.DocumentID,
		Actor:      ev.Actor,
		Action:     ev.Action,
		Detail:     ev.Detail,
		CreatedAt:  ev.CreatedAt.UTC().Format(time.RFC3339Nano),
	})
	if err != nil {
		return err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(r.tableName),
		Item:      av,
	})
	return err
}

// ListByDocument returns the audit trail for a document, oldest first.
func (r *ActivityDynamoRepository) ListByDocument(ctx context.Context, documentID string) ([]entities.ActivityEvent, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(activityDocumentIDIndex),
		KeyConditionExpression: aws.String("document_id = :did"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":did": &types.AttributeValueMemberS{Value: documentID},
		},
	})
	if err != nil {
		return nil, err
	}

	events := make([]entities.ActivityEvent, 0, len(out.Items))
	for _, raw := range out.Items {
		var it activityItem
		if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
			return nil, err
		}
		created, _ := time.Parse(time.RFC3339Nano, it.CreatedAt)
		events = append(events, entities.ActivityEvent{
			ID:         it.ID,
			DocumentID: it.DocumentID,
			Actor:      it.Actor,
			Action:     it.Action,
			Detail:     it.Detail,
			CreatedAt:  created,
		})
	}
	return events, nil
}
