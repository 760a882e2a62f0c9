package entities

import "github.com/shopspring/decimal"

// FrozenLineItem is an immutable copy of a catalog service taken when a
// quotation is built.
//
// ServiceID is a weak reference: it identifies the line inside a quotation
// but is never used to read the catalog again. Name, UnitPrice, UnitCost and
// UnitExpense never change once the item exists; only Quantity does, and only
// through the quotation aggregate.
type FrozenLineItem struct {
	ServiceID   string          `json:"service_id"`
	CategoryID  string          `json:"category_id"`
	Name        string          `json:"name"`
	ProfitType  ProfitType      `json:"profit_type"`
	Position    int             `json:"position"`
	UnitPrice   decimal.Decimal `json:"unit_price"`
	UnitCost    decimal.Decimal `json:"unit_cost"`
	UnitExpense decimal.Decimal `json:"unit_expense"`
	Quantity    int             `json:"quantity"`
}

func (li FrozenLineItem) qty() decimal.Decimal {
	return decimal.NewFromInt(int64(li.Quantity))
}

// Subtotal is UnitPrice × Quantity.
func (li FrozenLineItem) Subtotal() decimal.Decimal {
	return li.UnitPrice.Mul(li.qty())
}

// CostTotal is UnitCost × Quantity.
func (li FrozenLineItem) CostTotal() decimal.Decimal {
	return li.UnitCost.Mul(li.qty())
}

// ExpenseTotal is UnitExpense × Quantity.
func (li FrozenLineItem) ExpenseTotal() decimal.Decimal {
	return li.UnitExpense.Mul(li.qty())
}

// SystemProfit is the margin baked into the catalog price for this line.
func (li FrozenLineItem) SystemProfit() decimal.Decimal {
	return li.UnitPrice.Sub(li.UnitCost).Mul(li.qty())
}
