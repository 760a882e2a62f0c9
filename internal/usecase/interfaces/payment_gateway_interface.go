package interfaces

import (
	"context"
	"encoding/json"
)

// GatewayPayment is what the processor answered for a payment request.
// Response is kept raw for audit.
type GatewayPayment struct {
	ProviderID string
	Status     string
	Response   json.RawMessage
}

// IPaymentGateway abstracts external payment providers (Mercado Pago).
type IPaymentGateway interface {
	CreatePayment(ctx context.Context, requestPayload json.RawMessage) (GatewayPayment, error)
}
