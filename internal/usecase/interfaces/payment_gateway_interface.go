package interfaces

import (
	"context"
	"time"
)

// GatewayPayment is the confirmed outcome of a payment processed by an
// external provider (e.g. Mercado Pago). ExternalReference carries the job id
// the charge was created against.

type GatewayPayment struct {
	TransactionID     string
	ExternalReference string
	Status            string
	Amount            float64
	PaidAt            time.Time
}

// IPaymentGateway abstracts the external payment provider.
//
// This service never initiates charges; it only resolves webhook
// notifications into confirmed payment outcomes so they can be recorded as
// immutable gateway-sourced ledger entries.
type IPaymentGateway interface {
	GetPayment(ctx context.Context, transactionID string) (GatewayPayment, error)
}
