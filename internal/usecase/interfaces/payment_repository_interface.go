package interfaces

import (
	"context"

	"github.com/israelwong/prosocial-app-sub003/internal/domain/entities"
)

// IPaymentRepository abstracts the append-only payment ledger.
type IPaymentRepository interface {
	Create(ctx context.Context, p entities.Payment) (entities.Payment, error)
	ListByQuotationID(ctx context.Context, quotationID string) ([]entities.Payment, error)
}

// IProductionCostRepository abstracts the append-only production cost ledger.
type IProductionCostRepository interface {
	Create(ctx context.Context, c entities.ProductionCost) (entities.ProductionCost, error)
	ListByQuotationID(ctx context.Context, quotationID string) ([]entities.ProductionCost, error)
}
