package repository

import (
	"context"
	"sort"
	"time"

	"eventpilot/internal/domain/entities"
	"eventpilot/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultDisclosuresTableName         = "disclosures"
	defaultDocumentDisclosuresTableName = "document_disclosures"
)

type disclosureItem struct {
	ID        string `dynamodbav:"id"`
	Title     string `dynamodbav:"title"`
	Content   string `dynamodbav:"content"`
	Active    bool   `dynamodbav:"active"`
	SortOrder int    `dynamodbav:"sort_order"`
	CreatedAt string `dynamodbav:"created_at"`
	UpdatedAt string `dynamodbav:"updated_at"`
}

type disclosureSnapshotItem struct {
	DocumentID   string `dynamodbav:"document_id"`
	DisclosureID string `dynamodbav:"disclosure_id"`
	Title        string `dynamodbav:"title"`
	Content      string `dynamodbav:"content"`
	SortOrder    int    `dynamodbav:"sort_order"`
	Acknowledged bool   `dynamodbav:"acknowledged"`
	AttachedAt   string `dynamodbav:"attached_at"`
}

// DisclosureDynamoRepository persists disclosure templates and the
// per-document snapshots copied from them.
//
// Table requirements:
//   - disclosures: PK id (string)
//   - document_disclosures: PK document_id (string), SK disclosure_id (string)

type DisclosureDynamoRepository struct {
	ddb            *dynamodb.Client
	tableName      string
	snapshotsTable string
}

var _ interfaces.IDisclosureRepository = (*DisclosureDynamoRepository)(nil)

func NewDisclosureDynamoRepository(ddb *dynamodb.Client) *DisclosureDynamoRepository {
	return &DisclosureDynamoRepository{
		ddb:            ddb,
		tableName:      getenvDefault("DISCLOSURES_TABLE", defaultDisclosuresTableName),
		snapshotsTable: getenvDefault("DOCUMENT_DISCLOSURES_TABLE", defaultDocumentDisclosuresTableName),
	}
}

func (r *DisclosureDynamoRepository) Create(ctx context.Context, d entities.Disclosure) (entities.Disclosure, error) {
	av, err := attributevalue.MarshalMap(toDisclosureItem(d))
	if err != nil {
		return entities.Disclosure{}, err
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
		return entities.Disclosure{}, err
	}
	return d, nil
}

func (r *DisclosureDynamoRepository) GetByID(ctx context.Context, id string) (entities.Disclosure, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Disclosure{}, err
	}
	if len(out.Item) == 0 {
		return entities.Disclosure{}, nil
	}

	var it disclosureItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Disclosure{}, err
	}
	return fromDisclosureItem(it), nil
}

func (r *DisclosureDynamoRepository) ListActive(ctx context.Context) ([]entities.Disclosure, error) {
	out, err := r.ddb.Scan(ctx, &dynamodb.ScanInput{
		TableName:        aws.String(r.tableName),
		FilterExpression: aws.String("active = :true"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":true": &types.AttributeValueMemberBOOL{Value: true},
		},
	})
	if err != nil {
		return nil, err
	}

	disclosures := make([]entities.Disclosure, 0, len(out.Items))
	for _, raw := range out.Items {
		var it disclosureItem
		if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
			return nil, err
		}
		disclosures = append(disclosures, fromDisclosureItem(it))
	}
	sort.SliceStable(disclosures, func(i, j int) bool { return disclosures[i].SortOrder < disclosures[j].SortOrder })
	return disclosures, nil
}

func (r *DisclosureDynamoRepository) Update(ctx context.Context, d entities.Disclosure) (entities.Disclosure, error) {
	av, err := attributevalue.MarshalMap(toDisclosureItem(d))
	if err != nil {
		return entities.Disclosure{}, err
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
		return entities.Disclosure{}, err
	}
	return d, nil
}

// ReplaceForDocument deletes the document's existing snapshot rows and
// writes the new set, so attachments never accumulate.
func (r *DisclosureDynamoRepository) ReplaceForDocument(ctx context.Context, documentID string, snapshots []entities.DisclosureSnapshot) error {
	existing, err := r.ListForDocument(ctx, documentID)
	if err != nil {
		return err
	}
	for _, s := range existing {
		_, err := r.ddb.DeleteItem(ctx, &dynamodb.DeleteItemInput{
			TableName: aws.String(r.snapshotsTable),
			Key: map[string]types.AttributeValue{
				"document_id":   &types.AttributeValueMemberS{Value: documentID},
				"disclosure_id": &types.AttributeValueMemberS{Value: s.DisclosureID},
			},
		})
		if err != nil {
			return err
		}
	}

	for _, s := range snapshots {
		av, err := attributevalue.MarshalMap(disclosureSnapshotItem{
			DocumentID:   documentID,
			DisclosureID: s.DisclosureID,
			Title:        s.Title,
			Content:      s.Content,
			SortOrder:    s.SortOrder,
			Acknowledged: s.Acknowledged,
			AttachedAt:   s.AttachedAt.UTC().Format(time.RFC3339Nano),
		})
		if err != nil {
			return err
		}
		_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
			TableName: aws.String(r.snapshotsTable),
			Item:      av,
		})
		if err != nil {
			return err
		}
	}
	return nil
}

func (r *DisclosureDynamoRepository) ListForDocument(ctx context.Context, documentID string) ([]entities.DisclosureSnapshot, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.snapshotsTable),
		KeyConditionExpression: aws.String("document_id = :did"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":did": &types.AttributeValueMemberS{Value: documentID},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return nil, err
	}

	snapshots := make([]entities.DisclosureSnapshot, 0, len(out.Items))
	for _, raw := range out.Items {
		var it disclosureSnapshotItem
		if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
			return nil, err
		}
		attachedAt, _ := time.Parse(time.RFC3339Nano, it.AttachedAt)
		snapshots = append(snapshots, entities.DisclosureSnapshot{
			DisclosureID: it.DisclosureID,
			Title:        it.Title,
			Content:      it.Content,
			SortOrder:    it.SortOrder,
			Acknowledged: it.Acknowledged,
			AttachedAt:   attachedAt,
		})
	}
	sort.SliceStable(snapshots, func(i, j int) bool { return snapshots[i].SortOrder < snapshots[j].SortOrder })
	return snapshots, nil
}

func (r *DisclosureDynamoRepository) MarkAcknowledged(ctx context.Context, documentID string, disclosureIDs []string) error {
	for _, id := range disclosureIDs {
		_, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
			TableName: aws.String(r.snapshotsTable),
			Key: map[string]types.AttributeValue{
				"document_id":   &types.AttributeValueMemberS{Value: documentID},
				"disclosure_id": &types.AttributeValueMemberS{Value: id},
			},
			ConditionExpression: aws.String("attribute_exists(#did)"),
			UpdateExpression:    aws.String("SET acknowledged = :true"),
			ExpressionAttributeNames: map[string]string{
				"#did": "document_id",
			},
			ExpressionAttributeValues: map[string]types.AttributeValue{
				":true": &types.AttributeValueMemberBOOL{Value: true},
			},
		})
		if err != nil {
			return err
		}
	}
	return nil
}

func toDisclosureItem(d entities.Disclosure) disclosureItem {
	return disclosureItem{
		ID:        d.ID,
		Title:     d.Title,
		Content:   d.Content,
		Active:    d.Active,
		SortOrder: d.SortOrder,
		CreatedAt: d.CreatedAt.UTC().Format(time.RFC3339Nano),
		UpdatedAt: d.UpdatedAt.UTC().Format(time.RFC3339Nano),
	}
}

func fromDisclosureItem(it disclosureItem) entities.Disclosure {
	createdAt, _ := time.Parse(time.RFC3339Nano, it.CreatedAt)
	updatedAt, _ := time.Parse(time.RFC3339Nano, it.UpdatedAt)
	return entities.Disclosure{
		ID:        it.ID,
		Title:     it.Title,
		Content:   it.Content,
		Active:    it.Active,
		SortOrder: it.SortOrder,
		CreatedAt: createdAt,
		UpdatedAt: updatedAt,
	}
}
