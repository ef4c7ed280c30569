package interfaces

import (
	"context"
	"errors"

	"inspect_billing/internal/domain/entities"
)

// ErrVersionConflict is returned by Update when the job's stored version no
// longer matches the version the caller read (a concurrent edit won).
var ErrVersionConflict = errors.New("job version conflict")

// IJobRepository abstracts DynamoDB persistence for Job aggregates.
//
// Update performs an optimistic write: the stored version must equal the
// version on the passed job, and the write bumps it by one. This is the
// storage-boundary concurrency check for every pricing/discount mutation.

type IJobRepository interface {
	Create(ctx context.Context, j entities.Job) (entities.Job, error)
	GetByID(ctx context.Context, id string) (entities.Job, error)
	Update(ctx context.Context, j entities.Job) (entities.Job, error)
}
