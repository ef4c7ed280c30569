package usecase

import (
	"context"
	"errors"
	"testing"

	"inspect_billing/internal/domain/entities"
	"inspect_billing/internal/domain/pricing"
	"inspect_billing/internal/usecase/interfaces"
	mock_interfaces "inspect_billing/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

type jobMocks struct {
	jobRepo      *mock_interfaces.MockIJobRepository
	paymentRepo  *mock_interfaces.MockIPaymentRecordRepository
	discountRepo *mock_interfaces.MockIDiscountCodeRepository
}

func newJobUseCaseForTest(t *testing.T) (*JobUseCase, jobMocks) {
	ctrl := gomock.NewController(t)
	m := jobMocks{
		jobRepo:      mock_interfaces.NewMockIJobRepository(ctrl),
		paymentRepo:  mock_interfaces.NewMockIPaymentRecordRepository(ctrl),
		discountRepo: mock_interfaces.NewMockIDiscountCodeRepository(ctrl),
	}
	return NewJobUseCase(m.jobRepo, m.paymentRepo, m.discountRepo), m
}

func serviceItems() []entities.PricingItem {
	return []entities.PricingItem{
		{Kind: entities.ItemKindService, ServiceRef: "svc-a", Label: "Home Inspection", Price: 300},
	}
}

func TestJobUseCase_CreateJob(t *testing.T) {
	ctx := context.Background()

	t.Run("invalid company id", func(t *testing.T) {
		uc, _ := newJobUseCaseForTest(t)
		if _, _, err := uc.CreateJob(ctx, "  ", serviceItems()); !errors.Is(err, ErrInvalidCompanyID) {
			t.Fatalf("expected ErrInvalidCompanyID, got %v", err)
		}
	})

	t.Run("rejects items without a service", func(t *testing.T) {
		uc, _ := newJobUseCaseForTest(t)
		items := []entities.PricingItem{
			{Kind: entities.ItemKindAdditional, Label: "Travel Fee", Price: 40},
		}
		_, _, err := uc.CreateJob(ctx, "co-1", items)
		if !errors.Is(err, pricing.ErrNoServiceItem) {
			t.Fatalf("expected ErrNoServiceItem, got %v", err)
		}
		if !errors.Is(err, ErrInvalidPricingItems) {
			t.Fatalf("expected ErrInvalidPricingItems, got %v", err)
		}
	})

	t.Run("create success backfills original price", func(t *testing.T) {
		uc, m := newJobUseCaseForTest(t)
		m.jobRepo.EXPECT().Create(gomock.Any(), gomock.AssignableToTypeOf(entities.Job{})).DoAndReturn(
			func(_ context.Context, j entities.Job) (entities.Job, error) {
				if j.ID == "" || j.CompanyID != "co-1" || j.Version != 1 {
					t.Fatalf("unexpected job: %+v", j)
				}
				if j.Items[0].OriginalPrice != 300 || j.Items[0].Price != 300 {
					t.Fatalf("unexpected item amounts: %+v", j.Items[0])
				}
				return j, nil
			},
		)

		_, snap, err := uc.CreateJob(ctx, " co-1 ", serviceItems())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if snap.Subtotal != 300 || snap.Total != 300 || snap.IsPaid {
			t.Fatalf("unexpected snapshot: %+v", snap)
		}
	})
}

func TestJobUseCase_UpdatePricing(t *testing.T) {
	ctx := context.Background()

	t.Run("job not found", func(t *testing.T) {
		uc, m := newJobUseCaseForTest(t)
		m.jobRepo.EXPECT().GetByID(gomock.Any(), "job-1").Return(entities.Job{}, nil)

		if _, _, err := uc.UpdatePricing(ctx, "job-1", serviceItems()); !errors.Is(err, ErrJobNotFound) {
			t.Fatalf("expected ErrJobNotFound, got %v", err)
		}
	})

	t.Run("removing last service rejected without a write", func(t *testing.T) {
		uc, m := newJobUseCaseForTest(t)
		m.jobRepo.EXPECT().GetByID(gomock.Any(), "job-1").Return(jobWithTotal320(), nil)

		items := []entities.PricingItem{
			{Kind: entities.ItemKindAdditional, Label: "Travel Fee", Price: 40},
		}
		_, _, err := uc.UpdatePricing(ctx, "job-1", items)
		if !errors.Is(err, pricing.ErrNoServiceItem) {
			t.Fatalf("expected ErrNoServiceItem, got %v", err)
		}
		if !errors.Is(err, ErrInvalidPricingItems) {
			t.Fatalf("expected ErrInvalidPricingItems, got %v", err)
		}
	})

	t.Run("concurrent edit maps to conflict", func(t *testing.T) {
		uc, m := newJobUseCaseForTest(t)
		m.jobRepo.EXPECT().GetByID(gomock.Any(), "job-1").Return(jobWithTotal320(), nil)
		m.discountRepo.EXPECT().GetByID(gomock.Any(), "dc-1").Return(tenPercentServiceCode(), nil)
		m.jobRepo.EXPECT().Update(gomock.Any(), gomock.Any()).Return(entities.Job{}, interfaces.ErrVersionConflict)

		_, _, err := uc.UpdatePricing(ctx, "job-1", serviceItems())
		if !errors.Is(err, ErrJobConflict) {
			t.Fatalf("expected ErrJobConflict, got %v", err)
		}
	})

	t.Run("update reprices with attached discount", func(t *testing.T) {
		uc, m := newJobUseCaseForTest(t)
		m.jobRepo.EXPECT().GetByID(gomock.Any(), "job-1").Return(jobWithTotal320(), nil)
		m.discountRepo.EXPECT().GetByID(gomock.Any(), "dc-1").Return(tenPercentServiceCode(), nil).Times(2)
		m.jobRepo.EXPECT().Update(gomock.Any(), gomock.AssignableToTypeOf(entities.Job{})).DoAndReturn(
			func(_ context.Context, j entities.Job) (entities.Job, error) {
				if j.Items[0].Price != 270 || j.Items[0].OriginalPrice != 300 {
					t.Fatalf("expected repriced service item, got %+v", j.Items[0])
				}
				j.Version++
				return j, nil
			},
		)
		m.paymentRepo.EXPECT().ListByJobID(gomock.Any(), "job-1").Return(nil, nil)

		updated, snap, err := uc.UpdatePricing(ctx, "job-1", serviceItems())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if updated.Version != 4 {
			t.Fatalf("expected bumped version, got %d", updated.Version)
		}
		if snap.Subtotal != 300 || snap.DiscountAmount != 30 || snap.Total != 270 {
			t.Fatalf("unexpected snapshot: %+v", snap)
		}
	})
}

func TestJobUseCase_SelectDiscount(t *testing.T) {
	ctx := context.Background()

	t.Run("unknown code", func(t *testing.T) {
		uc, m := newJobUseCaseForTest(t)
		m.jobRepo.EXPECT().GetByID(gomock.Any(), "job-1").Return(jobWithTotal320(), nil)
		m.discountRepo.EXPECT().GetByID(gomock.Any(), "dc-x").Return(entities.DiscountCode{}, nil)

		if _, _, err := uc.SelectDiscount(ctx, "job-1", "dc-x"); !errors.Is(err, ErrDiscountCodeNotFound) {
			t.Fatalf("expected ErrDiscountCodeNotFound, got %v", err)
		}
	})

	t.Run("attaching a new code consumes one use", func(t *testing.T) {
		uc, m := newJobUseCaseForTest(t)
		j := jobWithTotal320()
		j.DiscountCodeID = ""
		j.Items[0].Price = 300 // no discount applied yet
		m.jobRepo.EXPECT().GetByID(gomock.Any(), "job-1").Return(j, nil)
		m.discountRepo.EXPECT().GetByID(gomock.Any(), "dc-1").Return(tenPercentServiceCode(), nil)
		m.discountRepo.EXPECT().Update(gomock.Any(), gomock.AssignableToTypeOf(entities.DiscountCode{})).DoAndReturn(
			func(_ context.Context, d entities.DiscountCode) (entities.DiscountCode, error) {
				if d.TimesUsed != 1 {
					t.Fatalf("expected times_used bumped to 1, got %d", d.TimesUsed)
				}
				return d, nil
			},
		)
		m.jobRepo.EXPECT().Update(gomock.Any(), gomock.AssignableToTypeOf(entities.Job{})).DoAndReturn(
			func(_ context.Context, j entities.Job) (entities.Job, error) {
				if j.DiscountCodeID != "dc-1" || j.Items[0].Price != 270 {
					t.Fatalf("expected discounted job, got %+v", j)
				}
				return j, nil
			},
		)
		m.discountRepo.EXPECT().GetByID(gomock.Any(), "dc-1").Return(tenPercentServiceCode(), nil)
		m.paymentRepo.EXPECT().ListByJobID(gomock.Any(), "job-1").Return(nil, nil)

		_, snap, err := uc.SelectDiscount(ctx, "job-1", "dc-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if snap.DiscountAmount != 30 || snap.Total != 320 {
			t.Fatalf("unexpected snapshot: %+v", snap)
		}
	})

	t.Run("single-use code discounts the job spending its use", func(t *testing.T) {
		uc, m := newJobUseCaseForTest(t)
		j := jobWithTotal320()
		j.DiscountCodeID = ""
		j.Items[0].Price = 300
		singleUse := tenPercentServiceCode()
		singleUse.MaxUses = 1

		m.jobRepo.EXPECT().GetByID(gomock.Any(), "job-1").Return(j, nil)
		m.discountRepo.EXPECT().GetByID(gomock.Any(), "dc-1").Return(singleUse, nil)
		m.discountRepo.EXPECT().Update(gomock.Any(), gomock.AssignableToTypeOf(entities.DiscountCode{})).DoAndReturn(
			func(_ context.Context, d entities.DiscountCode) (entities.DiscountCode, error) {
				if d.TimesUsed != 1 {
					t.Fatalf("expected times_used bumped to 1, got %d", d.TimesUsed)
				}
				return d, nil
			},
		)
		m.jobRepo.EXPECT().Update(gomock.Any(), gomock.AssignableToTypeOf(entities.Job{})).DoAndReturn(
			func(_ context.Context, j entities.Job) (entities.Job, error) {
				if j.Items[0].Price != 270 {
					t.Fatalf("expected discounted price 270, got %v", j.Items[0].Price)
				}
				return j, nil
			},
		)
		// The snapshot reloads the code as persisted, with this job's use
		// already counted against max_uses.
		spent := singleUse
		spent.TimesUsed = 1
		m.discountRepo.EXPECT().GetByID(gomock.Any(), "dc-1").Return(spent, nil)
		m.paymentRepo.EXPECT().ListByJobID(gomock.Any(), "job-1").Return(nil, nil)

		_, snap, err := uc.SelectDiscount(ctx, "job-1", "dc-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if snap.DiscountAmount != 30 || snap.Total != 320 {
			t.Fatalf("unexpected snapshot: %+v", snap)
		}
	})

	t.Run("exhausted code attaches without discount", func(t *testing.T) {
		uc, m := newJobUseCaseForTest(t)
		j := jobWithTotal320()
		j.DiscountCodeID = ""
		j.Items[0].Price = 300
		exhausted := tenPercentServiceCode()
		exhausted.MaxUses = 2
		exhausted.TimesUsed = 2

		m.jobRepo.EXPECT().GetByID(gomock.Any(), "job-1").Return(j, nil)
		m.discountRepo.EXPECT().GetByID(gomock.Any(), "dc-1").Return(exhausted, nil)
		m.discountRepo.EXPECT().Update(gomock.Any(), gomock.AssignableToTypeOf(entities.DiscountCode{})).DoAndReturn(
			func(_ context.Context, d entities.DiscountCode) (entities.DiscountCode, error) {
				return d, nil
			},
		)
		m.jobRepo.EXPECT().Update(gomock.Any(), gomock.AssignableToTypeOf(entities.Job{})).DoAndReturn(
			func(_ context.Context, j entities.Job) (entities.Job, error) {
				if j.Items[0].Price != 300 {
					t.Fatalf("expected undiscounted price 300, got %v", j.Items[0].Price)
				}
				return j, nil
			},
		)
		spent := exhausted
		spent.TimesUsed = 3
		m.discountRepo.EXPECT().GetByID(gomock.Any(), "dc-1").Return(spent, nil)
		m.paymentRepo.EXPECT().ListByJobID(gomock.Any(), "job-1").Return(nil, nil)

		_, snap, err := uc.SelectDiscount(ctx, "job-1", "dc-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if snap.DiscountAmount != 0 {
			t.Fatalf("expected no discount from an exhausted code, got %+v", snap)
		}
	})

	t.Run("clearing the code restores original prices", func(t *testing.T) {
		uc, m := newJobUseCaseForTest(t)
		m.jobRepo.EXPECT().GetByID(gomock.Any(), "job-1").Return(jobWithTotal320(), nil)
		m.jobRepo.EXPECT().Update(gomock.Any(), gomock.AssignableToTypeOf(entities.Job{})).DoAndReturn(
			func(_ context.Context, j entities.Job) (entities.Job, error) {
				if j.DiscountCodeID != "" {
					t.Fatalf("expected cleared code, got %q", j.DiscountCodeID)
				}
				if j.Items[0].Price != 300 {
					t.Fatalf("expected price restored to 300, got %v", j.Items[0].Price)
				}
				return j, nil
			},
		)
		m.paymentRepo.EXPECT().ListByJobID(gomock.Any(), "job-1").Return(nil, nil)

		_, snap, err := uc.SelectDiscount(ctx, "job-1", "")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if snap.DiscountAmount != 0 || snap.Total != 350 {
			t.Fatalf("unexpected snapshot: %+v", snap)
		}
	})
}
