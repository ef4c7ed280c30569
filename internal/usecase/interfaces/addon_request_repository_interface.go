package interfaces

import (
	"context"

	"inspect_billing/internal/domain/entities"
)

// IAddonRequestRepository abstracts DynamoDB persistence for customer
// addon requests.

type IAddonRequestRepository interface {
	Create(ctx context.Context, r entities.RequestedAddon) (entities.RequestedAddon, error)
	GetByID(ctx context.Context, id string) (entities.RequestedAddon, error)
	ListByJobID(ctx context.Context, jobID string) ([]entities.RequestedAddon, error)
	Update(ctx context.Context, r entities.RequestedAddon) (entities.RequestedAddon, error)
}
