// Package balance derives the financial position of a quotation from its
// frozen snapshot and the payment and production-cost ledgers.
//
// Calculate is pure: it reads only what the caller passes in, so concurrent
// calls for the same quotation are safe.
package balance

import (
	"fmt"

	"github.com/israelwong/prosocial-app-sub003/internal/domain/entities"
	"github.com/israelwong/prosocial-app-sub003/internal/domain/quotation"

	"github.com/shopspring/decimal"
)

var hundred = decimal.NewFromInt(100)

// Band is an advisory classification of payment progress.
type Band string

const (
	BandInitial     Band = "initial"
	BandAdvanced    Band = "advanced"
	BandFullyFunded Band = "fully_funded"
)

// RowKind tells which ledger a warning came from.
type RowKind string

const (
	RowKindPayment        RowKind = "payment"
	RowKindProductionCost RowKind = "production_cost"
)

// MalformedLedgerRow describes a ledger row left out of the sums.
type MalformedLedgerRow struct {
	Kind   RowKind
	RowID  string
	Reason string
}

// Balance is the derived financial position. Values are unrounded.
type Balance struct {
	QuotationID         string
	TotalPaid           decimal.Decimal
	EffectiveTotal      decimal.Decimal
	PendingBalance      decimal.Decimal
	PaymentProgressPct  decimal.Decimal
	OperatingCost       decimal.Decimal
	ProductionCostTotal decimal.Decimal
	FinalProfit         decimal.Decimal
	Band                Band
	Warnings            []MalformedLedgerRow
}

// MalformedRows is the number of ledger rows excluded from the sums.
func (b Balance) MalformedRows() int {
	return len(b.Warnings)
}

// Overpaid reports whether payments exceed the effective total.
func (b Balance) Overpaid() bool {
	return b.TotalPaid.GreaterThan(b.EffectiveTotal)
}

// Calculate combines the quotation, its payments and its production costs.
//
// Only payments with status paid count towards TotalPaid. Rows with a
// negative amount, an unknown status or a different quotation id are
// excluded and reported in Warnings.
func Calculate(q quotation.Quotation, payments []entities.Payment, costs []entities.ProductionCost) (Balance, error) {
	totals, err := q.ComputeTotals()
	if err != nil {
		return Balance{}, err
	}

	b := Balance{QuotationID: q.ID}
	b.EffectiveTotal = EffectiveTotal(totals.Subtotal, totals.FinalPrice, q.DiscountAtFreeze())

	for _, p := range payments {
		if reason := paymentProblem(q.ID, p); reason != "" {
			b.Warnings = append(b.Warnings, MalformedLedgerRow{Kind: RowKindPayment, RowID: p.ID, Reason: reason})
			continue
		}
		if p.Status == entities.PaymentStatusPaid {
			b.TotalPaid = b.TotalPaid.Add(p.Amount)
		}
	}

	for _, c := range costs {
		if reason := costProblem(q.ID, c); reason != "" {
			b.Warnings = append(b.Warnings, MalformedLedgerRow{Kind: RowKindProductionCost, RowID: c.ID, Reason: reason})
			continue
		}
		b.ProductionCostTotal = b.ProductionCostTotal.Add(c.Amount)
	}

	b.PendingBalance = decimal.Max(decimal.Zero, b.EffectiveTotal.Sub(b.TotalPaid))
	if b.EffectiveTotal.IsPositive() {
		b.PaymentProgressPct = b.TotalPaid.Div(b.EffectiveTotal).Mul(hundred)
	}
	b.OperatingCost = totals.OperatingCost
	b.FinalProfit = b.TotalPaid.Sub(b.OperatingCost).Sub(b.ProductionCostTotal)
	b.Band = Classify(b.PaymentProgressPct)
	return b, nil
}

// EffectiveTotal reconciles the live and approved pricing paths: with a
// frozen discount the total is subtotal × (1 - discount/100), otherwise the
// computed final price.
func EffectiveTotal(subtotal, finalPrice decimal.Decimal, discountAtFreeze *decimal.Decimal) decimal.Decimal {
	if discountAtFreeze == nil {
		return finalPrice
	}
	return subtotal.Mul(decimal.NewFromInt(1).Sub(discountAtFreeze.Div(hundred)))
}

// Classify maps a progress percentage to its advisory band.
func Classify(progressPct decimal.Decimal) Band {
	switch {
	case progressPct.GreaterThanOrEqual(hundred):
		return BandFullyFunded
	case progressPct.GreaterThanOrEqual(decimal.NewFromInt(50)):
		return BandAdvanced
	default:
		return BandInitial
	}
}

func paymentProblem(quotationID string, p entities.Payment) string {
	switch {
	case p.QuotationID != quotationID:
		return fmt.Sprintf("belongs to quotation %q", p.QuotationID)
	case p.Amount.IsNegative():
		return fmt.Sprintf("negative amount %s", p.Amount)
	case !p.Status.Valid():
		return fmt.Sprintf("unknown status %q", p.Status)
	}
	return ""
}

func costProblem(quotationID string, c entities.ProductionCost) string {
	switch {
	case c.QuotationID != quotationID:
		return fmt.Sprintf("belongs to quotation %q", c.QuotationID)
	case c.Amount.IsNegative():
		return fmt.Sprintf("negative amount %s", c.Amount)
	}
	return ""
}
