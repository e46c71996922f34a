package interfaces

import (
	"context"

	"eventpilot/internal/domain/entities"
)

// IApprovalRepository abstracts DynamoDB persistence for approval records.
type IApprovalRepository interface {
	Create(ctx context.Context, a entities.ApprovalRecord) (entities.ApprovalRecord, error)
	GetByToken(ctx context.Context, token string) (entities.ApprovalRecord, error)
	ListByDocument(ctx context.Context, documentID string) ([]entities.ApprovalRecord, error)
	// Respond writes the terminal decision with a conditional update
	// requiring status "sent". A concurrent or repeated submission loses
	// the condition and is reported as a zero-value record with nil error;
	// the stored record never changes again.
	Respond(ctx context.Context, token string, decision entities.ApprovalDecision) (entities.ApprovalRecord, error)
}
