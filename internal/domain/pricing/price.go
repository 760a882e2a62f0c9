// Package pricing derives catalog prices and freezes catalog services into
// quotation line items. Everything here is pure: no I/O, no clocks.
package pricing

import (
	"errors"
	"fmt"

	"github.com/israelwong/prosocial-app-sub003/internal/domain/entities"

	"github.com/shopspring/decimal"
)

var (
	ErrInvalidPricingConfig = errors.New("invalid pricing config")
	ErrNegativeAmount       = errors.New("negative cost or expense")
)

var (
	hundred = decimal.NewFromInt(100)
	one     = decimal.NewFromInt(1)
)

// FallbackReporter is notified when a system price cannot be computed and the
// catalog public price is used instead.
type FallbackReporter func(serviceID string, reason error)

// ComputeSystemPrice derives the catalog price of a service from its cost,
// expense and profit type.
//
//	product: (cost + expense) × (1 + markup) × (1 + surcharge)
//	service: product formula / (1 - salesCommission)
//
// The service gross-up keeps the intended margin intact after the sales
// commission is paid out. No rounding is applied.
func ComputeSystemPrice(cost, expense decimal.Decimal, pt entities.ProfitType, cfg entities.PricingConfig) (decimal.Decimal, error) {
	if cost.IsNegative() || expense.IsNegative() {
		return decimal.Zero, ErrNegativeAmount
	}
	if err := ValidateConfig(cfg); err != nil {
		return decimal.Zero, err
	}

	base := cost.Add(expense)
	price := base.
		Mul(one.Add(cfg.MarkupFor(pt).Div(hundred))).
		Mul(one.Add(cfg.SurchargePct.Div(hundred)))

	if pt == entities.ProfitTypeProduct {
		return price, nil
	}
	return price.Div(one.Sub(cfg.SalesCommissionPct.Div(hundred))), nil
}

// ValidateConfig checks every percentage is non-negative and the sales
// commission leaves something to gross up against.
func ValidateConfig(cfg entities.PricingConfig) error {
	fields := []struct {
		name  string
		value decimal.Decimal
	}{
		{"service_markup_pct", cfg.ServiceMarkupPct},
		{"product_markup_pct", cfg.ProductMarkupPct},
		{"surcharge_pct", cfg.SurchargePct},
		{"sales_commission_pct", cfg.SalesCommissionPct},
	}
	for _, f := range fields {
		if f.value.IsNegative() {
			return fmt.Errorf("%w: %s is negative", ErrInvalidPricingConfig, f.name)
		}
	}
	if cfg.SalesCommissionPct.GreaterThanOrEqual(hundred) {
		return fmt.Errorf("%w: sales_commission_pct must be below 100", ErrInvalidPricingConfig)
	}
	return nil
}

// SystemPrice returns the computed price of entry under cfg, or the entry's
// public price when cfg is nil or the computation fails. Failures are passed
// to report when it is non-nil; a nil cfg is not a failure.
func SystemPrice(entry entities.ServiceCatalogEntry, cfg *entities.PricingConfig, report FallbackReporter) decimal.Decimal {
	if cfg == nil {
		return entry.PublicPrice
	}
	price, err := ComputeSystemPrice(entry.Cost, entry.Expense, entry.ProfitType, *cfg)
	if err != nil {
		if report != nil {
			report(entry.ID, err)
		}
		return entry.PublicPrice
	}
	return price
}
