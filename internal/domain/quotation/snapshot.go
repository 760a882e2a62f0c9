package quotation

import (
	"fmt"
	"time"

	"github.com/israelwong/prosocial-app-sub003/internal/domain/entities"

	"github.com/shopspring/decimal"
)

// Snapshot is the flat persisted form of a Quotation.
//
// Precio and DiscountAtFreeze are only read back for approved quotations;
// for the others the price is recomputed from the terms.
type Snapshot struct {
	ID                 string
	Name               string
	EventID            string
	Status             entities.QuotationStatus
	LineItems          []entities.FrozenLineItem
	Condition          *entities.CommercialCondition
	Method             *entities.PaymentMethod
	DiscountAtFreeze   *decimal.Decimal
	Precio             decimal.Decimal
	SalesCommissionPct decimal.Decimal
	CreatedAt          time.Time
	UpdatedAt          time.Time
}

// Snapshot flattens the aggregate for storage.
func (q Quotation) Snapshot() Snapshot {
	s := Snapshot{
		ID:                 q.ID,
		Name:               q.Name,
		EventID:            q.EventID,
		Status:             q.Status,
		LineItems:          q.LineItems(),
		SalesCommissionPct: q.SalesCommissionPct,
		CreatedAt:          q.CreatedAt,
		UpdatedAt:          q.UpdatedAt,
	}
	switch p := q.Pricing.(type) {
	case Approved:
		s.Condition, s.Method = p.Condition, p.Method
		s.DiscountAtFreeze = q.DiscountAtFreeze()
		s.Precio = p.FrozenPrice
	case Draft:
		s.Condition, s.Method = p.Condition, p.Method
	}
	return s
}

// Restore rebuilds an aggregate from storage. Approved snapshots come back
// with Approved pricing; every other status gets Draft pricing over the
// stored terms. Only draft and pending terms may be refreshed from the live
// directory.
func Restore(s Snapshot) (Quotation, error) {
	q := Quotation{
		ID:                 s.ID,
		Name:               s.Name,
		EventID:            s.EventID,
		Status:             s.Status,
		SalesCommissionPct: s.SalesCommissionPct,
		CreatedAt:          s.CreatedAt,
		UpdatedAt:          s.UpdatedAt,
		items:              append([]entities.FrozenLineItem(nil), s.LineItems...),
	}
	for _, it := range q.items {
		if it.Quantity < 1 {
			return Quotation{}, fmt.Errorf("%w: line %s quantity %d", ErrInconsistentState, it.ServiceID, it.Quantity)
		}
	}

	if s.Status == entities.QuotationStatusApproved {
		if s.DiscountAtFreeze != nil && s.Condition == nil {
			return Quotation{}, fmt.Errorf("%w: frozen discount without condition", ErrInconsistentState)
		}
		q.Pricing = Approved{
			DiscountAtFreeze: s.DiscountAtFreeze,
			FrozenPrice:      s.Precio,
			Condition:        s.Condition,
			Method:           s.Method,
		}
		return q, nil
	}
	if s.DiscountAtFreeze != nil {
		return Quotation{}, fmt.Errorf("%w: frozen discount on %s quotation", ErrInconsistentState, s.Status)
	}
	q.Pricing = Draft{Condition: s.Condition, Method: s.Method}
	return q, nil
}

// WithLiveTerms swaps the Draft terms for fresh directory values. Approved
// and rejected quotations are returned unchanged.
func (q Quotation) WithLiveTerms(condition *entities.CommercialCondition, method *entities.PaymentMethod) Quotation {
	if q.Status.IsTerminal() {
		return q
	}
	next := q
	next.Pricing = Draft{Condition: condition, Method: method}
	return next
}
