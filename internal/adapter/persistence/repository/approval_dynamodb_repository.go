package repository

import (
	"context"
	"encoding/json"
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
	defaultApprovalsTableName = "approvals"
	approvalsDocumentIDIndex  = "document_id-index"
)

type approvalItem struct {
	Token      string `dynamodbav:"token"`
	DocumentID string `dynamodbav:"document_id"`
	ContactID  string `dynamodbav:"contact_id"`
	Status     string `dynamodbav:"status"`

	DocumentKind   string `dynamodbav:"document_kind"`
	DocumentNumber string `dynamodbav:"document_number"`
	DocumentTotal  string `dynamodbav:"document_total"`
	ContactName    string `dynamodbav:"contact_name"`
	ContactEmail   string `dynamodbav:"contact_email"`
	EventDate      string `dynamodbav:"event_date,omitempty"`
	EventVenue     string `dynamodbav:"event_venue,omitempty"`
	Disclosures    string `dynamodbav:"disclosures,omitempty"` // JSON snapshot list

	ContactResponse string `dynamodbav:"contact_response,omitempty"`
	Signature       string `dynamodbav:"signature,omitempty"` // JSON payload
	RespondedAt     string `dynamodbav:"responded_at,omitempty"`

	CreatedAt string `dynamodbav:"created_at"`
	UpdatedAt string `dynamodbav:"updated_at"`
}

// ApprovalDynamoRepository persists ApprovalRecord entities in DynamoDB.
//
// Table requirements:
//   - PK: token (string)
//   - GSI: document_id-index (PK: document_id)
//
// Respond relies on a ConditionExpression requiring status "sent", so the
// first decision to arrive wins and every later one fails closed.

type ApprovalDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IApprovalRepository = (*ApprovalDynamoRepository)(nil)

func NewApprovalDynamoRepository(ddb *dynamodb.Client) *ApprovalDynamoRepository {
	return &ApprovalDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("APPROVALS_TABLE", defaultApprovalsTableName),
	}
}

func (r *ApprovalDynamoRepository) Create(ctx context.Context, a entities.ApprovalRecord) (entities.ApprovalRecord, error) {
	it, err := toApprovalItem(a)
	if err != nil {
		return entities.ApprovalRecord{}, err
	}
	av, err := attributevalue.MarshalMap(it)
	if err != nil {
		return entities.ApprovalRecord{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_not_exists(#token)"),
		ExpressionAttributeNames: map[string]string{
			"#token": "token",
		},
	})
	if err != nil {
		return entities.ApprovalRecord{}, err
	}
	return a, nil
}

func (r *ApprovalDynamoRepository) GetByToken(ctx context.Context, token string) (entities.ApprovalRecord, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"token": &types.AttributeValueMemberS{Value: token},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.ApprovalRecord{}, err
	}
	if len(out.Item) == 0 {
		return entities.ApprovalRecord{}, nil
	}

	var it approvalItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.ApprovalRecord{}, err
	}
	return fromApprovalItem(it)
}

func (r *ApprovalDynamoRepository) ListByDocument(ctx context.Context, documentID string) ([]entities.ApprovalRecord, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(approvalsDocumentIDIndex),
		KeyConditionExpression: aws.String("document_id = :did"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":did": &types.AttributeValueMemberS{Value: documentID},
		},
	})
	if err != nil {
		return nil, err
	}

	records := make([]entities.ApprovalRecord, 0, len(out.Items))
	for _, raw := range out.Items {
		var it approvalItem
		if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
			return nil, err
		}
		rec, err := fromApprovalItem(it)
		if err != nil {
			return nil, err
		}
		records = append(records, rec)
	}
	return records, nil
}

func (r *ApprovalDynamoRepository) Respond(ctx context.Context, token string, decision entities.ApprovalDecision) (entities.ApprovalRecord, error) {
	now := decision.RespondedAt.UTC().Format(time.RFC3339Nano)

	expr := "SET #status = :status, #responded_at = :responded_at, #updated_at = :updated_at"
	names := map[string]string{
		"#token":        "token",
		"#status":       "status",
		"#responded_at": "responded_at",
		"#updated_at":   "updated_at",
	}
	vals := map[string]types.AttributeValue{
		":status":       &types.AttributeValueMemberS{Value: string(decision.Status)},
		":responded_at": &types.AttributeValueMemberS{Value: now},
		":updated_at":   &types.AttributeValueMemberS{Value: now},
		":sent":         &types.AttributeValueMemberS{Value: string(entities.ApprovalStatusSent)},
	}

	if decision.ContactResponse != "" {
		expr += ", #contact_response = :contact_response"
		names["#contact_response"] = "contact_response"
		vals[":contact_response"] = &types.AttributeValueMemberS{Value: decision.ContactResponse}
	}
	if decision.Signature != nil {
		raw, err := json.Marshal(decision.Signature)
		if err != nil {
			return entities.ApprovalRecord{}, err
		}
		expr += ", #signature = :signature"
		names["#signature"] = "signature"
		vals[":signature"] = &types.AttributeValueMemberS{Value: string(raw)}
	}

	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"token": &types.AttributeValueMemberS{Value: token},
		},
		ConditionExpression:       aws.String("attribute_exists(#token) AND #status = :sent"),
		UpdateExpression:          aws.String(expr),
		ExpressionAttributeNames:  names,
		ExpressionAttributeValues: vals,
		ReturnValues:              types.ReturnValueAllNew,
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			// Lost the first-write race or already responded.
			return entities.ApprovalRecord{}, nil
		}
		return entities.ApprovalRecord{}, err
	}
	if len(out.Attributes) == 0 {
		return entities.ApprovalRecord{}, nil
	}

	var it approvalItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.ApprovalRecord{}, err
	}
	return fromApprovalItem(it)
}

func toApprovalItem(a entities.ApprovalRecord) (approvalItem, error) {
	it := approvalItem{
		Token:           a.Token,
		DocumentID:      a.DocumentID,
		ContactID:       a.ContactID,
		Status:          string(a.Status),
		DocumentKind:    string(a.DocumentKind),
		DocumentNumber:  a.DocumentNumber,
		DocumentTotal:   floatToString(a.DocumentTotal),
		ContactName:     a.ContactName,
		ContactEmail:    a.ContactEmail,
		EventDate:       a.EventDate,
		EventVenue:      a.EventVenue,
		ContactResponse: a.ContactResponse,
		CreatedAt:       a.CreatedAt.UTC().Format(time.RFC3339Nano),
		UpdatedAt:       a.UpdatedAt.UTC().Format(time.RFC3339Nano),
	}

	if len(a.Disclosures) > 0 {
		raw, err := json.Marshal(a.Disclosures)
		if err != nil {
			return approvalItem{}, err
		}
		it.Disclosures = string(raw)
	}
	if a.Signature != nil {
		raw, err := json.Marshal(a.Signature)
		if err != nil {
			return approvalItem{}, err
		}
		it.Signature = string(raw)
	}
	if a.RespondedAt != nil {
		it.RespondedAt = a.RespondedAt.UTC().Format(time.RFC3339Nano)
	}
	return it, nil
}

func fromApprovalItem(it approvalItem) (entities.ApprovalRecord, error) {
	createdAt, _ := time.Parse(time.RFC3339Nano, it.CreatedAt)
	updatedAt, _ := time.Parse(time.RFC3339Nano, it.UpdatedAt)
	total, _ := strconv.ParseFloat(it.DocumentTotal, 64)

	rec := entities.ApprovalRecord{
		Token:           it.Token,
		DocumentID:      it.DocumentID,
		ContactID:       it.ContactID,
		Status:          entities.ApprovalStatus(it.Status),
		DocumentKind:    entities.DocumentKind(it.DocumentKind),
		DocumentNumber:  it.DocumentNumber,
		DocumentTotal:   total,
		ContactName:     it.ContactName,
		ContactEmail:    it.ContactEmail,
		EventDate:       it.EventDate,
		EventVenue:      it.EventVenue,
		ContactResponse: it.ContactResponse,
		CreatedAt:       createdAt,
		UpdatedAt:       updatedAt,
	}

	if it.Disclosures != "" {
		if err := json.Unmarshal([]byte(it.Disclosures), &rec.Disclosures); err != nil {
			return entities.ApprovalRecord{}, err
		}
	}
	if it.Signature != "" {
		var sig entities.SignaturePayload
		if err := json.Unmarshal([]byte(it.Signature), &sig); err != nil {
			return entities.ApprovalRecord{}, err
		}
		rec.Signature = &sig
	}
	if it.RespondedAt != "" {
		ts, err := time.Parse(time.RFC3339Nano, it.RespondedAt)
		if err == nil {
			rec.RespondedAt = &ts
		}
	}
	return rec, nil
}
