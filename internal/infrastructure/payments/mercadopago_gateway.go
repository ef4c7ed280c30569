package payments

import (
	"context"
	"errors"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"inspect_billing/internal/usecase/interfaces"

	"github.com/mercadopago/sdk-go/pkg/config"
	"github.com/mercadopago/sdk-go/pkg/payment"
)

var ErrMissingMercadoPagoAccessToken = errors.New("missing MERCADOPAGO_ACCESS_TOKEN")
var ErrMercadoPagoGatewayNotConfigured = errors.New("mercado pago gateway not configured")
var ErrInvalidTransactionID = errors.New("invalid mercado pago transaction id")

// MercadoPagoGateway looks payments up at Mercado Pago. Checkout happens on
// the provider's side; this service only fetches the authoritative state of a
// transaction when a webhook points at it. The job id rides along in the
// payment's external_reference.

type MercadoPagoGateway struct {
	client   payment.Client
	mockMode bool
}

var _ interfaces.IPaymentGateway = (*MercadoPagoGateway)(nil)

func NewMercadoPagoGateway(accessToken string) (*MercadoPagoGateway, error) {
	if isPaymentGatewayMockEnabled() {
		log.Printf("[payment][gateway] mock mode enabled")
		return &MercadoPagoGateway{mockMode: true}, nil
	}

	if accessToken == "" {
		log.Printf("[payment][gateway] missing MERCADOPAGO_ACCESS_TOKEN")
		return nil, ErrMissingMercadoPagoAccessToken
	}

	cfg, err := config.New(accessToken)
	if err != nil {
		log.Printf("[payment][gateway] failed creating sdk config err=%v", err)
		return nil, err
	}
	log.Printf("[payment][gateway] Mercado Pago client initialized")

	return &MercadoPagoGateway{client: payment.NewClient(cfg)}, nil
}

func (g *MercadoPagoGateway) GetPayment(ctx context.Context, transactionID string) (interfaces.GatewayPayment, error) {
	if g != nil && g.mockMode {
		return g.mockPayment(transactionID), nil
	}

	if g == nil || g.client == nil {
		log.Printf("[payment][gateway] gateway not configured")
		return interfaces.GatewayPayment{}, ErrMercadoPagoGatewayNotConfigured
	}

	id, err := strconv.Atoi(strings.TrimSpace(transactionID))
	if err != nil {
		log.Printf("[payment][gateway] non-numeric transaction id %q", transactionID)
		return interfaces.GatewayPayment{}, ErrInvalidTransactionID
	}

	log.Printf("[payment][gateway] get start transaction_id=%d", id)
	resp, err := g.client.Get(ctx, id)
	if err != nil {
		log.Printf("[payment][gateway] sdk get failed transaction_id=%d err=%v", id, err)
		return interfaces.GatewayPayment{}, err
	}
	log.Printf("[payment][gateway] get success transaction_id=%d status=%s amount=%.2f", resp.ID, resp.Status, resp.TransactionAmount)

	return interfaces.GatewayPayment{
		TransactionID:     strconv.Itoa(resp.ID),
		ExternalReference: resp.ExternalReference,
		Status:            resp.Status,
		Amount:            resp.TransactionAmount,
		PaidAt:            resp.DateApproved,
	}, nil
}

// mockPayment fabricates an approved payment for local runs without provider
// credentials. The target job and amount come from env so end-to-end webhook
// flows can be exercised against local DynamoDB.
func (g *MercadoPagoGateway) mockPayment(transactionID string) interfaces.GatewayPayment {
	amount := 100.0
	if v, err := strconv.ParseFloat(os.Getenv("PAYMENT_GATEWAY_MOCK_AMOUNT"), 64); err == nil && v > 0 {
		amount = v
	}
	gp := interfaces.GatewayPayment{
		TransactionID:     transactionID,
		ExternalReference: os.Getenv("PAYMENT_GATEWAY_MOCK_REFERENCE"),
		Status:            "approved",
		Amount:            amount,
		PaidAt:            time.Now().UTC(),
	}
	log.Printf("[payment][gateway] mock get transaction_id=%s reference=%q amount=%.2f", gp.TransactionID, gp.ExternalReference, gp.Amount)
	return gp
}

func isPaymentGatewayMockEnabled() bool {
	for _, key := range []string{"PAYMENT_GATEWAY_MOCK", "MERCADOPAGO_MOCK"} {
		v := strings.ToLower(strings.TrimSpace(os.Getenv(key)))
		switch v {
		case "1", "true", "yes", "on", "mock":
			return true
		}
	}
	return false
}
