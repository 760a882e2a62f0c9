package response

import "github.com/shopspring/decimal"

// money renders an amount rounded to cents. Rounding happens only here.
func money(d decimal.Decimal) string {
	return d.StringFixed(2)
}

func optionalMoney(d *decimal.Decimal) *string {
	if d == nil {
		return nil
	}
	s := money(*d)
	return &s
}
