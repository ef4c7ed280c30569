package usecase

import (
	"context"
	"errors"
	"log"
	"strings"
	"time"

	"inspect_billing/internal/domain/entities"
	"inspect_billing/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var (
	ErrInvalidDiscountCode  = errors.New("invalid discount code")
	ErrInvalidDiscountType  = errors.New("discount type must be percent or amount")
	ErrInvalidDiscountValue = errors.New("invalid discount value")
)

// IDiscountCodeUseCase exposes company-admin discount code management.

type IDiscountCodeUseCase interface {
	Create(ctx context.Context, d entities.DiscountCode) (entities.DiscountCode, error)
	Update(ctx context.Context, d entities.DiscountCode) (entities.DiscountCode, error)
	GetByID(ctx context.Context, id string) (entities.DiscountCode, error)
	ListByCompanyID(ctx context.Context, companyID string) ([]entities.DiscountCode, error)
}

type DiscountCodeUseCase struct {
	repo interfaces.IDiscountCodeRepository
}

var _ IDiscountCodeUseCase = (*DiscountCodeUseCase)(nil)

func NewDiscountCodeUseCase(repo interfaces.IDiscountCodeRepository) *DiscountCodeUseCase {
	return &DiscountCodeUseCase{repo: repo}
}

func (u *DiscountCodeUseCase) Create(ctx context.Context, d entities.DiscountCode) (entities.DiscountCode, error) {
	if err := validateDiscountCode(&d); err != nil {
		return entities.DiscountCode{}, err
	}

	now := time.Now().UTC()
	d.ID = uuid.NewString()
	d.TimesUsed = 0
	d.CreatedAt = now
	d.UpdatedAt = now

	created, err := u.repo.Create(ctx, d)
	if err != nil {
		log.Printf("[discount][usecase] create failed company_id=%s err=%v", d.CompanyID, err)
		return entities.DiscountCode{}, err
	}
	log.Printf("[discount][usecase] create success company_id=%s code_id=%s code=%q", created.CompanyID, created.ID, created.Code)
	return created, nil
}

func (u *DiscountCodeUseCase) Update(ctx context.Context, d entities.DiscountCode) (entities.DiscountCode, error) {
	d.ID = strings.TrimSpace(d.ID)
	if d.ID == "" {
		return entities.DiscountCode{}, ErrDiscountCodeNotFound
	}
	if err := validateDiscountCode(&d); err != nil {
		return entities.DiscountCode{}, err
	}

	existing, err := u.repo.GetByID(ctx, d.ID)
	if err != nil {
		return entities.DiscountCode{}, err
	}
	if existing.ID == "" {
		return entities.DiscountCode{}, ErrDiscountCodeNotFound
	}

	d.TimesUsed = existing.TimesUsed
	d.CreatedAt = existing.CreatedAt
	d.UpdatedAt = time.Now().UTC()

	updated, err := u.repo.Update(ctx, d)
	if err != nil {
		log.Printf("[discount][usecase] update failed code_id=%s err=%v", d.ID, err)
		return entities.DiscountCode{}, err
	}
	log.Printf("[discount][usecase] update success code_id=%s active=%t", updated.ID, updated.Active)
	return updated, nil
}

func (u *DiscountCodeUseCase) GetByID(ctx context.Context, id string) (entities.DiscountCode, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.DiscountCode{}, ErrDiscountCodeNotFound
	}

	d, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.DiscountCode{}, err
	}
	if d.ID == "" {
		return entities.DiscountCode{}, ErrDiscountCodeNotFound
	}
	return d, nil
}

func (u *DiscountCodeUseCase) ListByCompanyID(ctx context.Context, companyID string) ([]entities.DiscountCode, error) {
	companyID = strings.TrimSpace(companyID)
	if companyID == "" {
		return nil, ErrInvalidCompanyID
	}
	return u.repo.ListByCompanyID(ctx, companyID)
}

func validateDiscountCode(d *entities.DiscountCode) error {
	d.CompanyID = strings.TrimSpace(d.CompanyID)
	d.Code = strings.TrimSpace(d.Code)
	if d.CompanyID == "" {
		return ErrInvalidCompanyID
	}
	if d.Code == "" {
		return ErrInvalidDiscountCode
	}
	if d.Type != entities.DiscountTypePercent && d.Type != entities.DiscountTypeAmount {
		return ErrInvalidDiscountType
	}
	if d.Value < 0 {
		return ErrInvalidDiscountValue
	}
	if d.Type == entities.DiscountTypePercent && d.Value > 100 {
		return ErrInvalidDiscountValue
	}
	if d.MaxUses < 0 {
		return ErrInvalidDiscountValue
	}
	return nil
}
