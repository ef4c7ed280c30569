package pricing

import (
	"sort"
	"time"

	"inspect_billing/internal/domain/entities"
)

// Reconcile is the single entry point for deriving a job's financial state.
//
// It runs discount matching and the calculator over the current pricing
// items, folds in the payment ledger, and returns the full snapshot:
// subtotal, discount, total, amount paid, remaining balance, paid flag and
// the (newest-first) payment history.
//
// Policy: a zero-total job is never reported as paid; the paid flag requires
// both a positive total and a settled balance.
//
// Pure aggregation: inputs are never mutated and the only clock use is the
// expiration check inside discount matching.
func Reconcile(items []entities.PricingItem, code *entities.DiscountCode, records []entities.PaymentRecord, now time.Time) entities.FinancialSnapshot {
	discounts := MatchDiscount(items, code, now)
	totals := Calculate(items, discounts)

	paid := entities.AmountPaid(records)
	remaining := totals.Total - paid
	if remaining < 0 {
		remaining = 0
	}

	history := make([]entities.PaymentRecord, len(records))
	copy(history, records)
	sort.SliceStable(history, func(i, j int) bool {
		return history[i].PaidAt.After(history[j].PaidAt)
	})

	return entities.FinancialSnapshot{
		Subtotal:         totals.Subtotal,
		DiscountAmount:   totals.DiscountAmount,
		Total:            totals.Total,
		AmountPaid:       paid,
		RemainingBalance: remaining,
		IsPaid:           remaining <= 0 && totals.Total > 0,
		PaymentHistory:   history,
	}
}
