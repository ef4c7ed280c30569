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
	ErrPaymentNotFound        = errors.New("payment record not found")
	ErrInvalidPaymentID       = errors.New("invalid payment id")
	ErrInvalidPaymentAmount   = errors.New("payment amount must be greater than zero")
	ErrPaymentImmutable       = errors.New("gateway payments cannot be edited or deleted")
	ErrPaymentExceedsBalance  = errors.New("payment would exceed the remaining balance")
	ErrNothingToSettle        = errors.New("job has no remaining balance to settle")
	ErrInvalidGatewayID       = errors.New("invalid gateway transaction id")
	ErrGatewayPaymentRejected = errors.New("gateway payment is not approved")
)

// Manual amounts compare against the balance with a small tolerance so a
// legitimate final payment is not rejected over float rounding.
const balanceTolerance = 1e-9

const markPaidMethod = "Mark as Paid"

// IPaymentUseCase exposes the payment ledger of a job.
//
// Ledger rules:
//   - amounts must be positive;
//   - gateway-sourced records are immutable and undeletable here;
//   - a manual record/update must not push amount-paid above the job total;
//     when editing, the ceiling is remainingBalance + oldAmount so a payment
//     can grow as long as the net effect stays within the total.

type IPaymentUseCase interface {
	GetSnapshot(ctx context.Context, jobID string) (entities.FinancialSnapshot, error)
	RecordPayment(ctx context.Context, jobID string, amount float64, paidAt time.Time, method string) (entities.PaymentRecord, error)
	UpdatePayment(ctx context.Context, jobID, paymentID string, amount float64, paidAt time.Time, method string) (entities.PaymentRecord, error)
	DeletePayment(ctx context.Context, jobID, paymentID string) error
	MarkPaid(ctx context.Context, jobID string) (entities.PaymentRecord, error)
	RecordGatewayPayment(ctx context.Context, transactionID string) (entities.PaymentRecord, error)
}

type PaymentUseCase struct {
	jobRepo      interfaces.IJobRepository
	paymentRepo  interfaces.IPaymentRecordRepository
	discountRepo interfaces.IDiscountCodeRepository
	gateway      interfaces.IPaymentGateway
}

var _ IPaymentUseCase = (*PaymentUseCase)(nil)

func NewPaymentUseCase(jobRepo interfaces.IJobRepository, paymentRepo interfaces.IPaymentRecordRepository, discountRepo interfaces.IDiscountCodeRepository, gateway interfaces.IPaymentGateway) *PaymentUseCase {
	return &PaymentUseCase{jobRepo: jobRepo, paymentRepo: paymentRepo, discountRepo: discountRepo, gateway: gateway}
}

func (u *PaymentUseCase) GetSnapshot(ctx context.Context, jobID string) (entities.FinancialSnapshot, error) {
	j, code, records, err := u.loadState(ctx, jobID)
	if err != nil {
		return entities.FinancialSnapshot{}, err
	}
	return pricing.Reconcile(j.Items, code, records, time.Now().UTC()), nil
}

func (u *PaymentUseCase) RecordPayment(ctx context.Context, jobID string, amount float64, paidAt time.Time, method string) (entities.PaymentRecord, error) {
	if amount <= 0 {
		return entities.PaymentRecord{}, ErrInvalidPaymentAmount
	}

	j, code, records, err := u.loadState(ctx, jobID)
	if err != nil {
		return entities.PaymentRecord{}, err
	}

	snap := pricing.Reconcile(j.Items, code, records, time.Now().UTC())
	if amount > snap.RemainingBalance+balanceTolerance {
		log.Printf("[payment][usecase] record rejected job_id=%s amount=%.2f remaining=%.2f", j.ID, amount, snap.RemainingBalance)
		return entities.PaymentRecord{}, ErrPaymentExceedsBalance
	}

	return u.appendManual(ctx, j.ID, amount, paidAt, method)
}

func (u *PaymentUseCase) UpdatePayment(ctx context.Context, jobID, paymentID string, amount float64, paidAt time.Time, method string) (entities.PaymentRecord, error) {
	if amount <= 0 {
		return entities.PaymentRecord{}, ErrInvalidPaymentAmount
	}

	j, code, records, err := u.loadState(ctx, jobID)
	if err != nil {
		return entities.PaymentRecord{}, err
	}

	target, err := u.findRecord(records, paymentID)
	if err != nil {
		return entities.PaymentRecord{}, err
	}
	if target.IsGateway() {
		log.Printf("[payment][usecase] update rejected (gateway record) job_id=%s payment_id=%s", j.ID, target.ID)
		return entities.PaymentRecord{}, ErrPaymentImmutable
	}

	// Editing frees the old amount: ceiling is remaining + oldAmount.
	snap := pricing.Reconcile(j.Items, code, records, time.Now().UTC())
	if amount > snap.RemainingBalance+target.Amount+balanceTolerance {
		log.Printf("[payment][usecase] update rejected job_id=%s payment_id=%s amount=%.2f ceiling=%.2f", j.ID, target.ID, amount, snap.RemainingBalance+target.Amount)
		return entities.PaymentRecord{}, ErrPaymentExceedsBalance
	}

	target.Amount = amount
	if !paidAt.IsZero() {
		target.PaidAt = paidAt.UTC()
	}
	if m := strings.TrimSpace(method); m != "" {
		target.Method = m
	}

	updated, err := u.paymentRepo.Update(ctx, target)
	if err != nil {
		log.Printf("[payment][usecase] update failed job_id=%s payment_id=%s err=%v", j.ID, target.ID, err)
		return entities.PaymentRecord{}, err
	}
	log.Printf("[payment][usecase] update success job_id=%s payment_id=%s amount=%.2f", j.ID, updated.ID, updated.Amount)
	return updated, nil
}

func (u *PaymentUseCase) DeletePayment(ctx context.Context, jobID, paymentID string) error {
	j, _, records, err := u.loadState(ctx, jobID)
	if err != nil {
		return err
	}

	target, err := u.findRecord(records, paymentID)
	if err != nil {
		return err
	}
	if target.IsGateway() {
		log.Printf("[payment][usecase] delete rejected (gateway record) job_id=%s payment_id=%s", j.ID, target.ID)
		return ErrPaymentImmutable
	}

	if err := u.paymentRepo.Delete(ctx, target.ID); err != nil {
		log.Printf("[payment][usecase] delete failed job_id=%s payment_id=%s err=%v", j.ID, target.ID, err)
		return err
	}
	log.Printf("[payment][usecase] delete success job_id=%s payment_id=%s", j.ID, target.ID)
	return nil
}

func (u *PaymentUseCase) MarkPaid(ctx context.Context, jobID string) (entities.PaymentRecord, error) {
	j, code, records, err := u.loadState(ctx, jobID)
	if err != nil {
		return entities.PaymentRecord{}, err
	}

	snap := pricing.Reconcile(j.Items, code, records, time.Now().UTC())
	if snap.RemainingBalance <= 0 {
		log.Printf("[payment][usecase] mark-paid no-op job_id=%s remaining=%.2f", j.ID, snap.RemainingBalance)
		return entities.PaymentRecord{}, ErrNothingToSettle
	}

	return u.appendManual(ctx, j.ID, snap.RemainingBalance, time.Now().UTC(), markPaidMethod)
}

func (u *PaymentUseCase) RecordGatewayPayment(ctx context.Context, transactionID string) (entities.PaymentRecord, error) {
	transactionID = strings.TrimSpace(transactionID)
	if transactionID == "" {
		return entities.PaymentRecord{}, ErrInvalidGatewayID
	}
	if u.gateway == nil {
		return entities.PaymentRecord{}, errors.New("payment gateway not configured")
	}

	log.Printf("[payment][usecase] gateway lookup start transaction_id=%s", transactionID)
	gp, err := u.gateway.GetPayment(ctx, transactionID)
	if err != nil {
		log.Printf("[payment][usecase] gateway lookup failed transaction_id=%s err=%v", transactionID, err)
		return entities.PaymentRecord{}, err
	}
	if !strings.EqualFold(gp.Status, "approved") {
		log.Printf("[payment][usecase] gateway payment not approved transaction_id=%s status=%s", transactionID, gp.Status)
		return entities.PaymentRecord{}, ErrGatewayPaymentRejected
	}
	if gp.Amount <= 0 {
		return entities.PaymentRecord{}, ErrInvalidPaymentAmount
	}

	j, err := u.jobRepo.GetByID(ctx, strings.TrimSpace(gp.ExternalReference))
	if err != nil {
		return entities.PaymentRecord{}, err
	}
	if j.ID == "" {
		return entities.PaymentRecord{}, ErrJobNotFound
	}

	// Webhooks retry; the transaction id makes recording idempotent.
	records, err := u.paymentRepo.ListByJobID(ctx, j.ID)
	if err != nil {
		return entities.PaymentRecord{}, err
	}
	for _, r := range records {
		if r.GatewayTransactionID == gp.TransactionID {
			log.Printf("[payment][usecase] gateway payment already recorded job_id=%s transaction_id=%s", j.ID, gp.TransactionID)
			return r, nil
		}
	}

	now := time.Now().UTC()
	paidAt := gp.PaidAt
	if paidAt.IsZero() {
		paidAt = now
	}
	p := entities.PaymentRecord{
		ID:                   uuid.NewString(),
		JobID:                j.ID,
		Amount:               gp.Amount,
		PaidAt:               paidAt.UTC(),
		Source:               entities.PaymentSourceGateway,
		GatewayTransactionID: gp.TransactionID,
		CreatedAt:            now,
	}

	created, err := u.paymentRepo.Create(ctx, p)
	if err != nil {
		log.Printf("[payment][usecase] gateway record failed job_id=%s transaction_id=%s err=%v", j.ID, gp.TransactionID, err)
		return entities.PaymentRecord{}, err
	}
	log.Printf("[payment][usecase] gateway record success job_id=%s payment_id=%s amount=%.2f", j.ID, created.ID, created.Amount)
	return created, nil
}

func (u *PaymentUseCase) appendManual(ctx context.Context, jobID string, amount float64, paidAt time.Time, method string) (entities.PaymentRecord, error) {
	now := time.Now().UTC()
	if paidAt.IsZero() {
		paidAt = now
	}
	p := entities.PaymentRecord{
		ID:        uuid.NewString(),
		JobID:     jobID,
		Amount:    amount,
		PaidAt:    paidAt.UTC(),
		Source:    entities.PaymentSourceManual,
		Method:    strings.TrimSpace(method),
		CreatedAt: now,
	}

	created, err := u.paymentRepo.Create(ctx, p)
	if err != nil {
		log.Printf("[payment][usecase] record failed job_id=%s err=%v", jobID, err)
		return entities.PaymentRecord{}, err
	}
	log.Printf("[payment][usecase] record success job_id=%s payment_id=%s amount=%.2f method=%q", jobID, created.ID, created.Amount, created.Method)
	return created, nil
}

func (u *PaymentUseCase) loadState(ctx context.Context, jobID string) (entities.Job, *entities.DiscountCode, []entities.PaymentRecord, error) {
	jobID = strings.TrimSpace(jobID)
	if jobID == "" {
		return entities.Job{}, nil, nil, ErrInvalidJobID
	}

	j, err := u.jobRepo.GetByID(ctx, jobID)
	if err != nil {
		return entities.Job{}, nil, nil, err
	}
	if j.ID == "" {
		return entities.Job{}, nil, nil, ErrJobNotFound
	}

	var code *entities.DiscountCode
	if j.DiscountCodeID != "" && u.discountRepo != nil {
		c, err := u.discountRepo.GetByID(ctx, j.DiscountCodeID)
		if err != nil {
			return entities.Job{}, nil, nil, err
		}
		if c.ID != "" {
			c = c.ExcludingHolderUse()
			code = &c
		}
	}

	records, err := u.paymentRepo.ListByJobID(ctx, j.ID)
	if err != nil {
		return entities.Job{}, nil, nil, err
	}
	return j, code, records, nil
}

func (u *PaymentUseCase) findRecord(records []entities.PaymentRecord, paymentID string) (entities.PaymentRecord, error) {
	paymentID = strings.TrimSpace(paymentID)
	if paymentID == "" {
		return entities.PaymentRecord{}, ErrInvalidPaymentID
	}
	for _, r := range records {
		if r.ID == paymentID {
			return r, nil
		}
	}
	return entities.PaymentRecord{}, ErrPaymentNotFound
}
