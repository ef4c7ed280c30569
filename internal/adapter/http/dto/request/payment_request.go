package request

import "time"

// RecordPaymentRequest creates a manual payment ledger entry.
//
// Currency is informational; amounts are plain decimal numbers in the job's
// base currency, no cents conversion happens server-side.

type RecordPaymentRequest struct {
	Amount        float64   `json:"amount" binding:"required"`
	PaidAt        time.Time `json:"paid_at"`
	Currency      string    `json:"currency"`
	PaymentMethod string    `json:"payment_method"`
}

// UpdatePaymentRequest edits an existing manual ledger entry.
type UpdatePaymentRequest struct {
	PaymentID     string    `json:"payment_id" binding:"required"`
	Amount        float64   `json:"amount" binding:"required"`
	PaidAt        time.Time `json:"paid_at"`
	PaymentMethod string    `json:"payment_method"`
}
