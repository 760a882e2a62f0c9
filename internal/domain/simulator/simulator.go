// Package simulator projects what a client would pay under a payment method
// without touching any quotation or ledger.
package simulator

import (
	"errors"

	"github.com/israelwong/prosocial-app-sub003/internal/domain/entities"
	"github.com/israelwong/prosocial-app-sub003/internal/domain/quotation"

	"github.com/shopspring/decimal"
)

var ErrInvalidBaseAmount = errors.New("base amount must be non-negative")

var hundred = decimal.NewFromInt(100)

// Simulation is the projected payment plan. Values are unrounded.
type Simulation struct {
	Discount              decimal.Decimal
	NetAmount             decimal.Decimal
	Advance               decimal.Decimal
	Pending               decimal.Decimal
	Commission            decimal.Decimal
	InstallmentCommission decimal.Decimal
	InstallmentCount      int
	PerInstallmentAmount  decimal.Decimal
	TotalPayable          decimal.Decimal
}

// Simulate applies the optional condition discount first and charges the
// processor commission on the discounted amount, in the same order the
// quotation aggregate uses.
//
// With installments the pending amount after the advance plus the
// installment commission is split evenly. Without a condition, a method with
// installments finances the whole net amount and a single-payment method has
// nothing pending.
func Simulate(method entities.PaymentMethod, baseAmount decimal.Decimal, condition *entities.CommercialCondition) (Simulation, error) {
	if baseAmount.IsNegative() {
		return Simulation{}, ErrInvalidBaseAmount
	}
	if err := quotation.ValidateMethod(method); err != nil {
		return Simulation{}, err
	}
	if condition != nil {
		if err := quotation.ValidateCondition(*condition); err != nil {
			return Simulation{}, err
		}
	}

	var s Simulation
	if condition != nil {
		s.Discount = baseAmount.Mul(condition.DiscountPct).Div(hundred)
	}
	s.NetAmount = baseAmount.Sub(s.Discount)
	s.Commission = method.FixedCommission.Add(s.NetAmount.Mul(method.BaseCommissionPct).Div(hundred))

	switch {
	case condition != nil:
		s.Advance = s.NetAmount.Mul(condition.AdvancePct).Div(hundred)
	case method.HasInstallments():
		s.Advance = decimal.Zero
	default:
		s.Advance = s.NetAmount
	}
	s.Pending = s.NetAmount.Sub(s.Advance)

	if method.HasInstallments() {
		s.InstallmentCount = method.InstallmentCount
		s.InstallmentCommission = s.NetAmount.Mul(method.InstallmentCommissionPct).Div(hundred)
		s.PerInstallmentAmount = s.Pending.Add(s.InstallmentCommission).Div(decimal.NewFromInt(int64(method.InstallmentCount)))
	}
	s.TotalPayable = s.NetAmount.Add(s.Commission).Add(s.InstallmentCommission)
	return s, nil
}
