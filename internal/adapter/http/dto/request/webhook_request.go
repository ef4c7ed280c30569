package request

// MercadoPagoWebhookRequest is the notification body Mercado Pago posts when
// a payment changes state. Only the payment id is used; the authoritative
// amount and status are fetched back from the provider.

type MercadoPagoWebhookRequest struct {
	Action string `json:"action"`
	Type   string `json:"type"`
	Data   struct {
		ID string `json:"id"`
	} `json:"data"`
}

// TransactionID resolves the provider payment id from the body or the legacy
// query parameter form.
func (r MercadoPagoWebhookRequest) TransactionID(queryID string) string {
	if r.Data.ID != "" {
		return r.Data.ID
	}
	return queryID
}
