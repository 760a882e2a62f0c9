package entities

import (
	"encoding/json"
	"time"

	"github.com/shopspring/decimal"
)

// Payment is an append-only record of money received against a quotation.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (quotation_id-index): quotation_id
//
// ProviderPayloadRaw keeps the processor response (MercadoPago) for audit
// when the payment was recorded through the gateway.
type Payment struct {
	ID          string          `json:"id"`
	QuotationID string          `json:"quotation_id"`
	ClientID    string          `json:"client_id"`
	Amount      decimal.Decimal `json:"amount"`
	Status      PaymentStatus   `json:"status"`
	Method      string          `json:"method"`
	Concept     string          `json:"concept"`
	CreatedAt   time.Time       `json:"created_at"`

	ProviderPayloadRaw json.RawMessage `json:"provider_payload_raw,omitempty"`
}

// ProductionCost is an append-only discretionary cost incurred against a
// quotation (extra staff, transport, rentals).
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (quotation_id-index): quotation_id
type ProductionCost struct {
	ID          string          `json:"id"`
	QuotationID string          `json:"quotation_id"`
	Name        string          `json:"name"`
	Description string          `json:"description,omitempty"`
	Amount      decimal.Decimal `json:"amount"`
	CreatedAt   time.Time       `json:"created_at"`
}
