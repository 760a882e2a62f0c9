package response

import (
	"time"

	"github.com/israelwong/prosocial-app-sub003/internal/domain/entities"
)

type PaymentResponse struct {
	PaymentID    string    `json:"payment_id"`
	ID           string    `json:"id"`
	QuotationID  string    `json:"quotation_id"`
	ClientID     string    `json:"client_id,omitempty"`
	Amount       string    `json:"amount"`
	Status       string    `json:"status"`
	Method       string    `json:"payment_method_id,omitempty"`
	Concept      string    `json:"concept,omitempty"`
	Date         time.Time `json:"date"`
	MPPayloadRaw string    `json:"mp_payload_raw,omitempty"`
}

func FromPayment(p entities.Payment) PaymentResponse {
	return PaymentResponse{
		PaymentID:    p.ID,
		ID:           p.ID,
		QuotationID:  p.QuotationID,
		ClientID:     p.ClientID,
		Amount:       money(p.Amount),
		Status:       string(p.Status),
		Method:       p.Method,
		Concept:      p.Concept,
		Date:         p.CreatedAt,
		MPPayloadRaw: string(p.ProviderPayloadRaw),
	}
}

func FromPayments(ps []entities.Payment) []PaymentResponse {
	out := make([]PaymentResponse, 0, len(ps))
	for _, p := range ps {
		out = append(out, FromPayment(p))
	}
	return out
}

type ProductionCostResponse struct {
	ID          string    `json:"id"`
	QuotationID string    `json:"quotation_id"`
	Name        string    `json:"name"`
	Description string    `json:"description,omitempty"`
	Amount      string    `json:"amount"`
	CreatedAt   time.Time `json:"created_at"`
}

func FromProductionCost(c entities.ProductionCost) ProductionCostResponse {
	return ProductionCostResponse{
		ID:          c.ID,
		QuotationID: c.QuotationID,
		Name:        c.Name,
		Description: c.Description,
		Amount:      money(c.Amount),
		CreatedAt:   c.CreatedAt,
	}
}

func FromProductionCosts(cs []entities.ProductionCost) []ProductionCostResponse {
	out := make([]ProductionCostResponse, 0, len(cs))
	for _, c := range cs {
		out = append(out, FromProductionCost(c))
	}
	return out
}
