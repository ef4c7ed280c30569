package interfaces

import (
	"context"

	"inspect_billing/internal/domain/entities"
)

// IDiscountCodeRepository abstracts DynamoDB persistence for company-scoped
// discount codes.

type IDiscountCodeRepository interface {
	Create(ctx context.Context, d entities.DiscountCode) (entities.DiscountCode, error)
	GetByID(ctx context.Context, id string) (entities.DiscountCode, error)
	ListByCompanyID(ctx context.Context, companyID string) ([]entities.DiscountCode, error)
	Update(ctx context.Context, d entities.DiscountCode) (entities.DiscountCode, error)
}
