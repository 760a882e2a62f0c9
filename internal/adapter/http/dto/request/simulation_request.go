package request

import (
	"strings"

	"github.com/israelwong/prosocial-app-sub003/internal/usecase"

	"github.com/shopspring/decimal"
)

// SimulationRequest accepts base_amount as a JSON number or a decimal string.
type SimulationRequest struct {
	PaymentMethodID       string          `json:"payment_method_id" binding:"required"`
	BaseAmount            decimal.Decimal `json:"base_amount" binding:"money"`
	CommercialConditionID string          `json:"commercial_condition_id"`
}

func (r SimulationRequest) ToInput() usecase.SimulationInput {
	return usecase.SimulationInput{
		PaymentMethodID:       strings.TrimSpace(r.PaymentMethodID),
		BaseAmount:            r.BaseAmount,
		CommercialConditionID: strings.TrimSpace(r.CommercialConditionID),
	}
}
