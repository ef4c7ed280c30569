package entities

// FinancialSnapshot is the derived "how much is owed" view of a job.
//
// It is never persisted on its own: every value is recomputed from the
// current pricing items, the attached discount code, and the payment ledger.
// PaymentHistory is ordered newest first for presentation.

type FinancialSnapshot struct {
	Subtotal         float64         `json:"subtotal"`
	DiscountAmount   float64         `json:"discount_amount"`
	Total            float64         `json:"total"`
	AmountPaid       float64         `json:"amount_paid"`
	RemainingBalance float64         `json:"remaining_balance"`
	IsPaid           bool            `json:"is_paid"`
	PaymentHistory   []PaymentRecord `json:"payment_history"`
}
