package interfaces

import (
	"context"

	"github.com/israelwong/prosocial-app-sub003/internal/domain/quotation"
)

// IQuotationRepository abstracts DynamoDB persistence for quotations.
//
// The quotation record stores the frozen line items and the commercial terms
// as snapshots. Save recomputes precio, utilidadSistema and utilidadVenta from
// the aggregate on every write. A zero Quotation with a nil error means not
// found.
type IQuotationRepository interface {
	Create(ctx context.Context, q quotation.Quotation) (quotation.Quotation, error)
	Save(ctx context.Context, q quotation.Quotation) (quotation.Quotation, error)
	GetByID(ctx context.Context, id string) (quotation.Quotation, error)
}
