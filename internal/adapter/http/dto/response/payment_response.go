package response

import (
	"time"

	"inspect_billing/internal/domain/entities"
)

type PaymentRecordResponse struct {
	PaymentID            string    `json:"payment_id"`
	JobID                string    `json:"job_id"`
	Amount               float64   `json:"amount"`
	PaidAt               time.Time `json:"paid_at"`
	Source               string    `json:"source"`
	PaymentMethod        string    `json:"payment_method,omitempty"`
	GatewayTransactionID string    `json:"gateway_transaction_id,omitempty"`
}

func FromPaymentRecord(p entities.PaymentRecord) PaymentRecordResponse {
	return PaymentRecordResponse{
		PaymentID:            p.ID,
		JobID:                p.JobID,
		Amount:               p.Amount,
		PaidAt:               p.PaidAt,
		Source:               string(p.Source),
		PaymentMethod:        p.Method,
		GatewayTransactionID: p.GatewayTransactionID,
	}
}

type FinancialSnapshotResponse struct {
	Subtotal         float64                 `json:"subtotal"`
	DiscountAmount   float64                 `json:"discount_amount"`
	Total            float64                 `json:"total"`
	AmountPaid       float64                 `json:"amount_paid"`
	RemainingBalance float64                 `json:"remaining_balance"`
	IsPaid           bool                    `json:"is_paid"`
	PaymentHistory   []PaymentRecordResponse `json:"payment_history"`
}

func FromFinancialSnapshot(s entities.FinancialSnapshot) FinancialSnapshotResponse {
	history := make([]PaymentRecordResponse, 0, len(s.PaymentHistory))
	for _, p := range s.PaymentHistory {
		history = append(history, FromPaymentRecord(p))
	}
	return FinancialSnapshotResponse{
		Subtotal:         s.Subtotal,
		DiscountAmount:   s.DiscountAmount,
		Total:            s.Total,
		AmountPaid:       s.AmountPaid,
		RemainingBalance: s.RemainingBalance,
		IsPaid:           s.IsPaid,
		PaymentHistory:   history,
	}
}
