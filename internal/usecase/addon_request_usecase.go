package usecase

import (
	"context"
	"errors"
	"log"
	"strings"
	"time"

	"inspect_billing/internal/domain/entities"
	"inspect_billing/internal/domain/pricing"
	"inspect_billing/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var (
	ErrAddonRequestNotFound = errors.New("addon request not found")
	ErrInvalidAddonRequest  = errors.New("invalid addon request")
)

// IAddonRequestUseCase handles customer-submitted addon requests.
//
// Approval mutates pricing and the request together from the caller's
// perspective: the new pricing items are written first (under the optimistic
// job version check), then the request status; a failed job write leaves the
// request pending and untouched.

type IAddonRequestUseCase interface {
	Submit(ctx context.Context, jobID, serviceRef, addonName string, addFee, addHours float64) (entities.RequestedAddon, error)
	ListByJobID(ctx context.Context, jobID string) ([]entities.RequestedAddon, error)
	Approve(ctx context.Context, jobID, requestID string) (entities.RequestedAddon, entities.Job, error)
	Reject(ctx context.Context, jobID, requestID string) (entities.RequestedAddon, error)
}

type AddonRequestUseCase struct {
	requestRepo  interfaces.IAddonRequestRepository
	jobRepo      interfaces.IJobRepository
	discountRepo interfaces.IDiscountCodeRepository
}

var _ IAddonRequestUseCase = (*AddonRequestUseCase)(nil)

func NewAddonRequestUseCase(requestRepo interfaces.IAddonRequestRepository, jobRepo interfaces.IJobRepository, discountRepo interfaces.IDiscountCodeRepository) *AddonRequestUseCase {
	return &AddonRequestUseCase{requestRepo: requestRepo, jobRepo: jobRepo, discountRepo: discountRepo}
}

func (u *AddonRequestUseCase) Submit(ctx context.Context, jobID, serviceRef, addonName string, addFee, addHours float64) (entities.RequestedAddon, error) {
	jobID = strings.TrimSpace(jobID)
	if jobID == "" {
		return entities.RequestedAddon{}, ErrInvalidJobID
	}
	serviceRef = entities.NormalizeRef(serviceRef)
	addonName = strings.TrimSpace(addonName)
	if serviceRef == "" || addonName == "" || addFee < 0 {
		return entities.RequestedAddon{}, ErrInvalidAddonRequest
	}

	j, err := u.jobRepo.GetByID(ctx, jobID)
	if err != nil {
		return entities.RequestedAddon{}, err
	}
	if j.ID == "" {
		return entities.RequestedAddon{}, ErrJobNotFound
	}

	r := entities.RequestedAddon{
		ID:          uuid.NewString(),
		JobID:       jobID,
		ServiceRef:  serviceRef,
		AddonName:   addonName,
		AddFee:      addFee,
		AddHours:    addHours,
		Status:      entities.AddonRequestStatusPending,
		RequestedAt: time.Now().UTC(),
	}

	created, err := u.requestRepo.Create(ctx, r)
	if err != nil {
		log.Printf("[addon][usecase] submit failed job_id=%s err=%v", jobID, err)
		return entities.RequestedAddon{}, err
	}
	log.Printf("[addon][usecase] submit success job_id=%s request_id=%s addon=%q fee=%.2f", jobID, created.ID, addonName, addFee)
	return created, nil
}

func (u *AddonRequestUseCase) ListByJobID(ctx context.Context, jobID string) ([]entities.RequestedAddon, error) {
	jobID = strings.TrimSpace(jobID)
	if jobID == "" {
		return nil, ErrInvalidJobID
	}
	return u.requestRepo.ListByJobID(ctx, jobID)
}

func (u *AddonRequestUseCase) Approve(ctx context.Context, jobID, requestID string) (entities.RequestedAddon, entities.Job, error) {
	req, j, err := u.loadRequest(ctx, jobID, requestID)
	if err != nil {
		return entities.RequestedAddon{}, entities.Job{}, err
	}

	now := time.Now().UTC()
	approved, items, err := pricing.ApproveAddonRequest(req, j.Items, now)
	if err != nil {
		log.Printf("[addon][usecase] approve rejected job_id=%s request_id=%s err=%v", jobID, requestID, err)
		return entities.RequestedAddon{}, entities.Job{}, err
	}

	var code *entities.DiscountCode
	if j.DiscountCodeID != "" {
		c, err := u.discountRepo.GetByID(ctx, j.DiscountCodeID)
		if err != nil {
			return entities.RequestedAddon{}, entities.Job{}, err
		}
		if c.ID != "" {
			c = c.ExcludingHolderUse()
			code = &c
		}
	}

	j.Items = pricing.ApplyDiscount(items, pricing.MatchDiscount(items, code, now))
	j.UpdatedAt = now

	updatedJob, err := u.jobRepo.Update(ctx, j)
	if err != nil {
		if errors.Is(err, interfaces.ErrVersionConflict) {
			return entities.RequestedAddon{}, entities.Job{}, ErrJobConflict
		}
		log.Printf("[addon][usecase] approve job write failed job_id=%s request_id=%s err=%v", jobID, requestID, err)
		return entities.RequestedAddon{}, entities.Job{}, err
	}

	updatedReq, err := u.requestRepo.Update(ctx, approved)
	if err != nil {
		log.Printf("[addon][usecase] approve request write failed job_id=%s request_id=%s err=%v", jobID, requestID, err)
		return entities.RequestedAddon{}, entities.Job{}, err
	}
	log.Printf("[addon][usecase] approve success job_id=%s request_id=%s items=%d", jobID, requestID, len(updatedJob.Items))
	return updatedReq, updatedJob, nil
}

func (u *AddonRequestUseCase) Reject(ctx context.Context, jobID, requestID string) (entities.RequestedAddon, error) {
	req, _, err := u.loadRequest(ctx, jobID, requestID)
	if err != nil {
		return entities.RequestedAddon{}, err
	}

	rejected, err := pricing.RejectAddonRequest(req, time.Now().UTC())
	if err != nil {
		log.Printf("[addon][usecase] reject rejected job_id=%s request_id=%s err=%v", jobID, requestID, err)
		return entities.RequestedAddon{}, err
	}

	updated, err := u.requestRepo.Update(ctx, rejected)
	if err != nil {
		log.Printf("[addon][usecase] reject write failed job_id=%s request_id=%s err=%v", jobID, requestID, err)
		return entities.RequestedAddon{}, err
	}
	log.Printf("[addon][usecase] reject success job_id=%s request_id=%s", jobID, requestID)
	return updated, nil
}

func (u *AddonRequestUseCase) loadRequest(ctx context.Context, jobID, requestID string) (entities.RequestedAddon, entities.Job, error) {
	jobID = strings.TrimSpace(jobID)
	requestID = strings.TrimSpace(requestID)
	if jobID == "" {
		return entities.RequestedAddon{}, entities.Job{}, ErrInvalidJobID
	}
	if requestID == "" {
		return entities.RequestedAddon{}, entities.Job{}, ErrAddonRequestNotFound
	}

	req, err := u.requestRepo.GetByID(ctx, requestID)
	if err != nil {
		return entities.RequestedAddon{}, entities.Job{}, err
	}
	if req.ID == "" || req.JobID != jobID {
		return entities.RequestedAddon{}, entities.Job{}, ErrAddonRequestNotFound
	}

	j, err := u.jobRepo.GetByID(ctx, jobID)
	if err != nil {
		return entities.RequestedAddon{}, entities.Job{}, err
	}
	if j.ID == "" {
		return entities.RequestedAddon{}, entities.Job{}, ErrJobNotFound
	}
	return req, j, nil
}
