package interfaces

import (
	"context"

	"eventpilot/internal/domain/entities"
)

// IPaymentRepository abstracts DynamoDB persistence for invoice payments.
type IPaymentRepository interface {
	Create(ctx context.Context, p entities.InvoicePayment) (entities.InvoicePayment, error)
	GetByID(ctx context.Context, id string) (entities.InvoicePayment, error)
	ListByDocument(ctx context.Context, documentID string) ([]entities.InvoicePayment, error)
}
