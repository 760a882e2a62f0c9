package quotation

import (
	"fmt"

	"github.com/shopspring/decimal"
)

var hundred = decimal.NewFromInt(100)

// Totals is every figure derived from the line items and commercial terms.
// Values are unrounded.
type Totals struct {
	Subtotal              decimal.Decimal
	DiscountAmount        decimal.Decimal
	FinalPrice            decimal.Decimal
	InstallmentCount      int
	InstallmentPayment    decimal.Decimal
	AdvanceAmount         decimal.Decimal
	PendingAfterAdvance   decimal.Decimal
	ProcessorCommission   decimal.Decimal
	InstallmentCommission decimal.Decimal
	SalesCommission       decimal.Decimal
	OperatingCost         decimal.Decimal
	SystemProfit          decimal.Decimal
	SaleProfit            decimal.Decimal
	ProfitLossDelta       decimal.Decimal
	Code                  string
}

func pct(amount, percent decimal.Decimal) decimal.Decimal {
	return amount.Mul(percent).Div(hundred)
}

// ComputeTotals derives the quotation figures from the current pricing.
//
// Draft terms are re-validated because they follow the live directory; an
// out-of-range live discount is an error, never a guessed price.
func (q Quotation) ComputeTotals() (Totals, error) {
	t := resolveTerms(q.Pricing)
	if _, draft := q.Pricing.(Draft); draft && t.condition != nil {
		if err := ValidateCondition(*t.condition); err != nil {
			return Totals{}, err
		}
	}
	if !inPercentRange(t.discountPct) {
		return Totals{}, fmt.Errorf("%w: %s", ErrInvalidDiscount, t.discountPct)
	}
	if t.method != nil {
		if err := ValidateMethod(*t.method); err != nil {
			return Totals{}, err
		}
	}

	var out Totals
	costAndExpense := decimal.Zero
	for _, it := range q.items {
		out.Subtotal = out.Subtotal.Add(it.Subtotal())
		out.OperatingCost = out.OperatingCost.Add(it.CostTotal())
		out.SystemProfit = out.SystemProfit.Add(it.SystemProfit())
		costAndExpense = costAndExpense.Add(it.CostTotal()).Add(it.ExpenseTotal())
	}

	out.DiscountAmount = pct(out.Subtotal, t.discountPct)
	out.FinalPrice = out.Subtotal.Sub(out.DiscountAmount)

	if t.method != nil {
		out.ProcessorCommission = t.method.FixedCommission.Add(pct(out.FinalPrice, t.method.BaseCommissionPct))
		if t.method.HasInstallments() {
			n := decimal.NewFromInt(int64(t.method.InstallmentCount))
			out.InstallmentCount = t.method.InstallmentCount
			out.InstallmentCommission = pct(out.FinalPrice, t.method.InstallmentCommissionPct)
			out.InstallmentPayment = out.FinalPrice.Div(n)
		}
	}

	if t.condition != nil {
		out.AdvanceAmount = pct(out.FinalPrice, t.condition.AdvancePct)
	} else {
		out.AdvanceAmount = out.FinalPrice
	}
	out.PendingAfterAdvance = out.FinalPrice.Sub(out.AdvanceAmount)

	out.SalesCommission = pct(out.FinalPrice, q.SalesCommissionPct)
	out.SaleProfit = out.FinalPrice.
		Sub(costAndExpense).
		Sub(out.SalesCommission).
		Sub(out.ProcessorCommission).
		Sub(out.InstallmentCommission)
	out.ProfitLossDelta = out.SaleProfit.Sub(out.SystemProfit)
	out.Code = ProfitCode(out.SystemProfit, out.SaleProfit)
	return out, nil
}

// ProfitCode summarizes system profit against sale profit, e.g.
// "US1500-UV1200-P300". The -P segment appears only when the sale eroded the
// catalog margin. Amounts are rounded to whole units for display.
func ProfitCode(systemProfit, saleProfit decimal.Decimal) string {
	code := fmt.Sprintf("US%s-UV%s", systemProfit.StringFixed(0), saleProfit.StringFixed(0))
	if saleProfit.LessThan(systemProfit) {
		code += "-P" + systemProfit.Sub(saleProfit).StringFixed(0)
	}
	return code
}
