package interfaces

import (
	"context"

	"inspect_billing/internal/domain/entities"
)

// IPaymentRecordRepository abstracts DynamoDB persistence for the payment
// ledger. Mutability rules (gateway records are immutable) live in the
// usecase layer; the repository is a dumb log.

type IPaymentRecordRepository interface {
	Create(ctx context.Context, p entities.PaymentRecord) (entities.PaymentRecord, error)
	GetByID(ctx context.Context, id string) (entities.PaymentRecord, error)
	ListByJobID(ctx context.Context, jobID string) ([]entities.PaymentRecord, error)
	Update(ctx context.Context, p entities.PaymentRecord) (entities.PaymentRecord, error)
	Delete(ctx context.Context, id string) error
}
