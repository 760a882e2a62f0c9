package entities

import "github.com/shopspring/decimal"

// PaymentMethod is a processor-backed way of paying (card, transfer, MSI).
//
// InstallmentCount 0 means a single payment.
type PaymentMethod struct {
	ID                       string          `json:"id"`
	Name                     string          `json:"name"`
	InstallmentCount         int             `json:"installment_count"`
	BaseCommissionPct        decimal.Decimal `json:"base_commission_pct"`
	FixedCommission          decimal.Decimal `json:"fixed_commission"`
	InstallmentCommissionPct decimal.Decimal `json:"installment_commission_pct"`
}

// HasInstallments reports whether the method splits payment into installments.
func (m PaymentMethod) HasInstallments() bool {
	return m.InstallmentCount > 0
}

// CommercialCondition bundles a discount, an advance-payment requirement and
// the payment methods a client may choose under it.
type CommercialCondition struct {
	ID             string          `json:"id"`
	Name           string          `json:"name"`
	DiscountPct    decimal.Decimal `json:"discount_pct"`
	AdvancePct     decimal.Decimal `json:"advance_pct"`
	EventType      string          `json:"event_type"`
	PaymentMethods []PaymentMethod `json:"payment_methods"`
}

// Method returns the eligible payment method with the given id.
func (c CommercialCondition) Method(id string) (PaymentMethod, bool) {
	for _, m := range c.PaymentMethods {
		if m.ID == id {
			return m, true
		}
	}
	return PaymentMethod{}, false
}

// Clone returns a deep copy so callers can keep a snapshot of the terms.
func (c CommercialCondition) Clone() CommercialCondition {
	out := c
	out.PaymentMethods = append([]PaymentMethod(nil), c.PaymentMethods...)
	return out
}
