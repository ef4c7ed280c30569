package usecase

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"inspect_billing/internal/domain/entities"
	"inspect_billing/internal/domain/pricing"
	"inspect_billing/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var (
	ErrJobNotFound          = errors.New("job not found")
	ErrInvalidJobID         = errors.New("invalid job id")
	ErrInvalidCompanyID     = errors.New("invalid company id")
	ErrInvalidPricingItems  = errors.New("invalid pricing items")
	ErrJobConflict          = errors.New("job was modified concurrently")
	ErrDiscountCodeNotFound = errors.New("discount code not found")
)

// IJobUseCase exposes the pricing side of a job's financial state.
//
// Every mutation is a single read-modify-write: load the current job, run the
// pure pricing transformation, write back under the optimistic version check,
// and re-derive the snapshot from the new state. No derived state is ever
// trusted across a mutation.

type IJobUseCase interface {
	CreateJob(ctx context.Context, companyID string, items []entities.PricingItem) (entities.Job, entities.FinancialSnapshot, error)
	GetJob(ctx context.Context, jobID string) (entities.Job, entities.FinancialSnapshot, error)
	UpdatePricing(ctx context.Context, jobID string, items []entities.PricingItem) (entities.Job, entities.FinancialSnapshot, error)
	SelectDiscount(ctx context.Context, jobID, discountCodeID string) (entities.Job, entities.FinancialSnapshot, error)
}

type JobUseCase struct {
	jobRepo      interfaces.IJobRepository
	paymentRepo  interfaces.IPaymentRecordRepository
	discountRepo interfaces.IDiscountCodeRepository
}

var _ IJobUseCase = (*JobUseCase)(nil)

func NewJobUseCase(jobRepo interfaces.IJobRepository, paymentRepo interfaces.IPaymentRecordRepository, discountRepo interfaces.IDiscountCodeRepository) *JobUseCase {
	return &JobUseCase{jobRepo: jobRepo, paymentRepo: paymentRepo, discountRepo: discountRepo}
}

func (u *JobUseCase) CreateJob(ctx context.Context, companyID string, items []entities.PricingItem) (entities.Job, entities.FinancialSnapshot, error) {
	companyID = strings.TrimSpace(companyID)
	if companyID == "" {
		return entities.Job{}, entities.FinancialSnapshot{}, ErrInvalidCompanyID
	}

	items = pricing.NormalizeItems(items)
	if err := pricing.ValidateItems(items); err != nil {
		log.Printf("[job][usecase] create rejected company_id=%s err=%v", companyID, err)
		return entities.Job{}, entities.FinancialSnapshot{}, fmt.Errorf("%w: %w", ErrInvalidPricingItems, err)
	}

	now := time.Now().UTC()
	j := entities.Job{
		ID:        uuid.NewString(),
		CompanyID: companyID,
		Items:     pricing.ApplyDiscount(items, nil),
		Version:   1,
		CreatedAt: now,
		UpdatedAt: now,
	}

	created, err := u.jobRepo.Create(ctx, j)
	if err != nil {
		log.Printf("[job][usecase] create failed company_id=%s err=%v", companyID, err)
		return entities.Job{}, entities.FinancialSnapshot{}, err
	}
	log.Printf("[job][usecase] create success job_id=%s company_id=%s items=%d", created.ID, companyID, len(created.Items))

	snap := pricing.Reconcile(created.Items, nil, nil, now)
	return created, snap, nil
}

func (u *JobUseCase) GetJob(ctx context.Context, jobID string) (entities.Job, entities.FinancialSnapshot, error) {
	j, err := u.loadJob(ctx, jobID)
	if err != nil {
		return entities.Job{}, entities.FinancialSnapshot{}, err
	}
	snap, err := u.snapshot(ctx, j)
	if err != nil {
		return entities.Job{}, entities.FinancialSnapshot{}, err
	}
	return j, snap, nil
}

func (u *JobUseCase) UpdatePricing(ctx context.Context, jobID string, items []entities.PricingItem) (entities.Job, entities.FinancialSnapshot, error) {
	j, err := u.loadJob(ctx, jobID)
	if err != nil {
		return entities.Job{}, entities.FinancialSnapshot{}, err
	}

	items = pricing.NormalizeItems(items)
	if err := pricing.ValidateItems(items); err != nil {
		log.Printf("[job][usecase] pricing update rejected job_id=%s err=%v", jobID, err)
		return entities.Job{}, entities.FinancialSnapshot{}, fmt.Errorf("%w: %w", ErrInvalidPricingItems, err)
	}

	code, err := u.attachedCode(ctx, j)
	if err != nil {
		return entities.Job{}, entities.FinancialSnapshot{}, err
	}

	now := time.Now().UTC()
	j.Items = pricing.ApplyDiscount(items, pricing.MatchDiscount(items, code, now))
	j.UpdatedAt = now

	updated, err := u.jobRepo.Update(ctx, j)
	if err != nil {
		if errors.Is(err, interfaces.ErrVersionConflict) {
			return entities.Job{}, entities.FinancialSnapshot{}, ErrJobConflict
		}
		log.Printf("[job][usecase] pricing update failed job_id=%s err=%v", jobID, err)
		return entities.Job{}, entities.FinancialSnapshot{}, err
	}
	log.Printf("[job][usecase] pricing update success job_id=%s items=%d version=%d", jobID, len(updated.Items), updated.Version)

	snap, err := u.snapshot(ctx, updated)
	if err != nil {
		return entities.Job{}, entities.FinancialSnapshot{}, err
	}
	return updated, snap, nil
}

func (u *JobUseCase) SelectDiscount(ctx context.Context, jobID, discountCodeID string) (entities.Job, entities.FinancialSnapshot, error) {
	j, err := u.loadJob(ctx, jobID)
	if err != nil {
		return entities.Job{}, entities.FinancialSnapshot{}, err
	}

	discountCodeID = strings.TrimSpace(discountCodeID)
	now := time.Now().UTC()

	var code *entities.DiscountCode
	if discountCodeID != "" {
		c, err := u.discountRepo.GetByID(ctx, discountCodeID)
		if err != nil {
			return entities.Job{}, entities.FinancialSnapshot{}, err
		}
		if c.ID == "" {
			return entities.Job{}, entities.FinancialSnapshot{}, ErrDiscountCodeNotFound
		}
		if j.DiscountCodeID == c.ID {
			// Re-selecting the held code: its stored counter already
			// includes this job's use.
			c = c.ExcludingHolderUse()
		} else {
			// Attaching a code consumes one use. Matching below runs
			// against the pre-consumption counter so the job spending the
			// use still gets the discount.
			spent := c
			spent.TimesUsed++
			spent.UpdatedAt = now
			if _, err := u.discountRepo.Update(ctx, spent); err != nil {
				return entities.Job{}, entities.FinancialSnapshot{}, err
			}
		}
		code = &c
	}

	j.DiscountCodeID = discountCodeID
	j.Items = pricing.ApplyDiscount(j.Items, pricing.MatchDiscount(j.Items, code, now))
	j.UpdatedAt = now

	updated, err := u.jobRepo.Update(ctx, j)
	if err != nil {
		if errors.Is(err, interfaces.ErrVersionConflict) {
			return entities.Job{}, entities.FinancialSnapshot{}, ErrJobConflict
		}
		log.Printf("[job][usecase] discount select failed job_id=%s code_id=%s err=%v", jobID, discountCodeID, err)
		return entities.Job{}, entities.FinancialSnapshot{}, err
	}
	log.Printf("[job][usecase] discount select success job_id=%s code_id=%q", jobID, discountCodeID)

	snap, err := u.snapshot(ctx, updated)
	if err != nil {
		return entities.Job{}, entities.FinancialSnapshot{}, err
	}
	return updated, snap, nil
}

func (u *JobUseCase) loadJob(ctx context.Context, jobID string) (entities.Job, error) {
	jobID = strings.TrimSpace(jobID)
	if jobID == "" {
		return entities.Job{}, ErrInvalidJobID
	}
	j, err := u.jobRepo.GetByID(ctx, jobID)
	if err != nil {
		return entities.Job{}, err
	}
	if j.ID == "" {
		return entities.Job{}, ErrJobNotFound
	}
	return j, nil
}

func (u *JobUseCase) attachedCode(ctx context.Context, j entities.Job) (*entities.DiscountCode, error) {
	if j.DiscountCodeID == "" {
		return nil, nil
	}
	c, err := u.discountRepo.GetByID(ctx, j.DiscountCodeID)
	if err != nil {
		return nil, err
	}
	if c.ID == "" {
		// A deleted code behaves like no code rather than failing the job.
		return nil, nil
	}
	c = c.ExcludingHolderUse()
	return &c, nil
}

func (u *JobUseCase) snapshot(ctx context.Context, j entities.Job) (entities.FinancialSnapshot, error) {
	code, err := u.attachedCode(ctx, j)
	if err != nil {
		return entities.FinancialSnapshot{}, err
	}
	records, err := u.paymentRepo.ListByJobID(ctx, j.ID)
	if err != nil {
		return entities.FinancialSnapshot{}, err
	}
	return pricing.Reconcile(j.Items, code, records, time.Now().UTC()), nil
}
