package entities

import "github.com/shopspring/decimal"

// ProfitType selects how the system price of a catalog service is derived.
type ProfitType string

const (
	ProfitTypeService ProfitType = "service"
	ProfitTypeProduct ProfitType = "product"
)

// ServiceCatalogEntry is a live catalog record owned by the admin application.
//
// Entries change over time (prices, costs). A quotation never dereferences an
// entry after freezing it; only the copied values in FrozenLineItem matter.
type ServiceCatalogEntry struct {
	ID          string          `json:"id"`
	Name        string          `json:"name"`
	PublicPrice decimal.Decimal `json:"public_price"`
	Cost        decimal.Decimal `json:"cost"`
	Expense     decimal.Decimal `json:"expense"`
	ProfitType  ProfitType      `json:"profit_type"`
	CategoryID  string          `json:"category_id"`
	Position    int             `json:"position"`
}

// PricingConfig is the active pricing configuration of the business.
//
// All values are percentages (0-100 scale).
type PricingConfig struct {
	ServiceMarkupPct   decimal.Decimal `json:"service_markup_pct"`
	ProductMarkupPct   decimal.Decimal `json:"product_markup_pct"`
	SurchargePct       decimal.Decimal `json:"surcharge_pct"`
	SalesCommissionPct decimal.Decimal `json:"sales_commission_pct"`
}

// MarkupFor returns the markup percentage that applies to a profit type.
func (c PricingConfig) MarkupFor(pt ProfitType) decimal.Decimal {
	if pt == ProfitTypeProduct {
		return c.ProductMarkupPct
	}
	return c.ServiceMarkupPct
}

// ParseProfitType normalizes legacy catalog values ("servicio", "producto").
// Anything unrecognized is treated as a service.
func ParseProfitType(raw string) ProfitType {
	switch normalizeToken(raw) {
	case "product", "producto":
		return ProfitTypeProduct
	default:
		return ProfitTypeService
	}
}
