package quotation

import (
	"github.com/israelwong/prosocial-app-sub003/internal/domain/entities"

	"github.com/shopspring/decimal"
)

// Pricing is either Draft or Approved. Only Approved carries a frozen
// discount, so a live discount can never be read for an approved quotation.
type Pricing interface {
	isPricing()
}

// Draft prices a quotation from the live commercial terms. Condition and
// Method point at directory values and follow their changes.
type Draft struct {
	Condition *entities.CommercialCondition
	Method    *entities.PaymentMethod
}

// Approved prices a quotation from values copied at approval time.
//
// DiscountAtFreeze is nil when no condition was attached. Condition and
// Method are private snapshots; editing the directory does not reach them.
type Approved struct {
	DiscountAtFreeze *decimal.Decimal
	FrozenPrice      decimal.Decimal
	Condition        *entities.CommercialCondition
	Method           *entities.PaymentMethod
}

func (Draft) isPricing()    {}
func (Approved) isPricing() {}

// terms is the resolved view of the pricing used by ComputeTotals.
type terms struct {
	discountPct decimal.Decimal
	condition   *entities.CommercialCondition
	method      *entities.PaymentMethod
}

func resolveTerms(p Pricing) terms {
	switch v := p.(type) {
	case Approved:
		t := terms{condition: v.Condition, method: v.Method}
		if v.DiscountAtFreeze != nil {
			t.discountPct = *v.DiscountAtFreeze
		}
		return t
	case Draft:
		t := terms{condition: v.Condition, method: v.Method}
		if v.Condition != nil {
			t.discountPct = v.Condition.DiscountPct
		}
		return t
	}
	return terms{}
}
