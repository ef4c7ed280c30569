package entities

import "time"

// PaymentSource tells apart staff-entered payments from gateway-confirmed ones.

type PaymentSource string

const (
	PaymentSourceManual  PaymentSource = "manual"
	PaymentSourceGateway PaymentSource = "gateway"
)

// PaymentRecord is one entry in a job's payment ledger.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (job_id-index): job_id
//
// Gateway-sourced records carry the provider transaction id and are immutable
// through this service: only the payment-gateway webhook creates them, nothing
// here edits or deletes them.

type PaymentRecord struct {
	ID                   string        `json:"id"`
	JobID                string        `json:"job_id"`
	Amount               float64       `json:"amount"`
	PaidAt               time.Time     `json:"paid_at"`
	Source               PaymentSource `json:"source"`
	Method               string        `json:"payment_method,omitempty"`
	GatewayTransactionID string        `json:"gateway_transaction_id,omitempty"`
	CreatedAt            time.Time     `json:"created_at"`
}

// IsGateway reports whether the record came from the payment gateway.
func (p PaymentRecord) IsGateway() bool {
	return p.Source == PaymentSourceGateway || p.GatewayTransactionID != ""
}

// AmountPaid sums all record amounts regardless of source.
func AmountPaid(records []PaymentRecord) float64 {
	total := 0.0
	for _, r := range records {
		total += r.Amount
	}
	return total
}
