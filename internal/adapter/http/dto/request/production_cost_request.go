package request

import (
	"github.com/israelwong/prosocial-app-sub003/internal/usecase"

	"github.com/shopspring/decimal"
)

type CreateProductionCostRequest struct {
	Name        string          `json:"name" binding:"required"`
	Description string          `json:"description"`
	Amount      decimal.Decimal `json:"amount" binding:"money"`
}

func (r CreateProductionCostRequest) ToInput(quotationID string) usecase.CreateProductionCostInput {
	return usecase.CreateProductionCostInput{
		QuotationID: quotationID,
		Name:        r.Name,
		Description: r.Description,
		Amount:      r.Amount,
	}
}
