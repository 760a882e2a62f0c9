// Package quotation implements the quotation aggregate: frozen line items,
// commercial terms, status transitions and derived totals.
//
// Commands never modify the receiver; they return the next state.
package quotation

import (
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/israelwong/prosocial-app-sub003/internal/domain/entities"

	"github.com/shopspring/decimal"
)

var (
	ErrInvalidDiscount    = errors.New("discount must be between 0 and 100")
	ErrInvalidAdvancePct  = errors.New("advance percentage must be between 0 and 100")
	ErrInvalidCommission  = errors.New("payment method values must be non-negative")
	ErrIncompatibleMethod = errors.New("payment method not eligible for commercial condition")
	ErrEmptyQuotation     = errors.New("quotation has no line items")
	ErrLineItemNotFound   = errors.New("line item not found")
	ErrQuotationLocked    = errors.New("quotation pricing is locked")
	ErrInvalidTransition  = errors.New("invalid status transition")
	ErrInvalidQuantity    = errors.New("quantity must be at least 1")
	ErrInconsistentState  = errors.New("inconsistent quotation state")
)

// Quotation is the aggregate root.
type Quotation struct {
	ID      string
	Name    string
	EventID string
	Status  entities.QuotationStatus
	Pricing Pricing

	// SalesCommissionPct is copied from the pricing configuration when the
	// quotation is built and used for sale profit.
	SalesCommissionPct decimal.Decimal

	CreatedAt time.Time
	UpdatedAt time.Time

	items []entities.FrozenLineItem
}

// New returns an empty draft quotation.
func New(id, name, eventID string, salesCommissionPct decimal.Decimal, now time.Time) Quotation {
	return Quotation{
		ID:                 id,
		Name:               name,
		EventID:            eventID,
		Status:             entities.QuotationStatusDraft,
		Pricing:            Draft{},
		SalesCommissionPct: salesCommissionPct,
		CreatedAt:          now,
		UpdatedAt:          now,
	}
}

// LineItems returns a copy of the line items in insertion order.
func (q Quotation) LineItems() []entities.FrozenLineItem {
	return append([]entities.FrozenLineItem(nil), q.items...)
}

// OrderedLineItems returns the line items ordered for presentation:
// category, catalog position, then name.
func (q Quotation) OrderedLineItems() []entities.FrozenLineItem {
	out := q.LineItems()
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].CategoryID != out[j].CategoryID {
			return out[i].CategoryID < out[j].CategoryID
		}
		if out[i].Position != out[j].Position {
			return out[i].Position < out[j].Position
		}
		return out[i].Name < out[j].Name
	})
	return out
}

// IsApproved reports whether pricing is frozen.
func (q Quotation) IsApproved() bool {
	_, ok := q.Pricing.(Approved)
	return ok
}

// DiscountAtFreeze returns the discount copied at approval, if any.
func (q Quotation) DiscountAtFreeze() *decimal.Decimal {
	if a, ok := q.Pricing.(Approved); ok && a.DiscountAtFreeze != nil {
		d := *a.DiscountAtFreeze
		return &d
	}
	return nil
}

// Condition returns the commercial condition currently pricing the quotation.
func (q Quotation) Condition() *entities.CommercialCondition {
	return resolveTerms(q.Pricing).condition
}

// Method returns the payment method currently pricing the quotation.
func (q Quotation) Method() *entities.PaymentMethod {
	return resolveTerms(q.Pricing).method
}

// editable allows line-item and term changes only while the quotation is a
// draft. Pending quotations are under review and must be rejected and
// re-quoted to change.
func (q Quotation) editable() error {
	if q.Status != entities.QuotationStatusDraft {
		return fmt.Errorf("%w: status %s", ErrQuotationLocked, q.Status)
	}
	return nil
}

func (q Quotation) indexOf(serviceID string) int {
	for i, it := range q.items {
		if it.ServiceID == serviceID {
			return i
		}
	}
	return -1
}

// AddLineItem appends a frozen item, or adds its quantity to the existing
// line for the same service. The existing line keeps its frozen values.
func (q Quotation) AddLineItem(item entities.FrozenLineItem) (Quotation, error) {
	if err := q.editable(); err != nil {
		return q, err
	}
	if item.Quantity < 1 {
		return q, ErrInvalidQuantity
	}
	next := q
	next.items = q.LineItems()
	if i := next.indexOf(item.ServiceID); i >= 0 {
		next.items[i].Quantity += item.Quantity
		return next, nil
	}
	next.items = append(next.items, item)
	return next, nil
}

// SetQuantity updates a line quantity; qty < 1 removes the line.
func (q Quotation) SetQuantity(serviceID string, qty int) (Quotation, error) {
	if err := q.editable(); err != nil {
		return q, err
	}
	i := q.indexOf(serviceID)
	if i < 0 {
		return q, fmt.Errorf("%w: %s", ErrLineItemNotFound, serviceID)
	}
	next := q
	next.items = q.LineItems()
	if qty < 1 {
		next.items = append(next.items[:i], next.items[i+1:]...)
		return next, nil
	}
	next.items[i].Quantity = qty
	return next, nil
}

// ApplyCommercialCondition attaches live commercial terms. method may be nil;
// when set it must be one of the condition's eligible methods. A nil
// condition with a nil method clears the terms.
func (q Quotation) ApplyCommercialCondition(condition *entities.CommercialCondition, method *entities.PaymentMethod) (Quotation, error) {
	if err := q.editable(); err != nil {
		return q, err
	}
	if condition == nil {
		if method != nil {
			return q, ErrIncompatibleMethod
		}
		next := q
		next.Pricing = Draft{}
		return next, nil
	}
	if err := ValidateCondition(*condition); err != nil {
		return q, err
	}
	if method != nil {
		if _, ok := condition.Method(method.ID); !ok {
			return q, fmt.Errorf("%w: method %s condition %s", ErrIncompatibleMethod, method.ID, condition.ID)
		}
		if err := ValidateMethod(*method); err != nil {
			return q, err
		}
	}
	next := q
	next.Pricing = Draft{Condition: condition, Method: method}
	return next, nil
}

// Submit moves a draft to pending.
func (q Quotation) Submit() (Quotation, error) {
	if q.Status != entities.QuotationStatusDraft {
		return q, fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, q.Status, entities.QuotationStatusPending)
	}
	next := q
	next.Status = entities.QuotationStatusPending
	return next, nil
}

// Reject moves a pending quotation to rejected.
func (q Quotation) Reject() (Quotation, error) {
	if q.Status != entities.QuotationStatusPending {
		return q, fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, q.Status, entities.QuotationStatusRejected)
	}
	next := q
	next.Status = entities.QuotationStatusRejected
	next.Pricing = detachTerms(q.Pricing)
	return next, nil
}

// Approve freezes the discount and final price and moves pending to approved.
// From then on totals are derived from the frozen copies only.
func (q Quotation) Approve() (Quotation, error) {
	if q.Status != entities.QuotationStatusPending {
		return q, fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, q.Status, entities.QuotationStatusApproved)
	}
	if len(q.items) == 0 {
		return q, ErrEmptyQuotation
	}
	totals, err := q.ComputeTotals()
	if err != nil {
		return q, err
	}

	t := resolveTerms(q.Pricing)
	approved := Approved{FrozenPrice: totals.FinalPrice}
	if t.condition != nil {
		d := t.condition.DiscountPct
		approved.DiscountAtFreeze = &d
		c := t.condition.Clone()
		approved.Condition = &c
	}
	if t.method != nil {
		m := *t.method
		approved.Method = &m
	}

	next := q
	next.Status = entities.QuotationStatusApproved
	next.Pricing = approved
	return next, nil
}

// ValidateCondition checks discount and advance percentages are in 0-100.
func ValidateCondition(c entities.CommercialCondition) error {
	if !inPercentRange(c.DiscountPct) {
		return fmt.Errorf("%w: %s", ErrInvalidDiscount, c.DiscountPct)
	}
	if !inPercentRange(c.AdvancePct) {
		return fmt.Errorf("%w: %s", ErrInvalidAdvancePct, c.AdvancePct)
	}
	return nil
}

// ValidateMethod checks commission values and installment count are non-negative.
func ValidateMethod(m entities.PaymentMethod) error {
	if m.InstallmentCount < 0 || m.BaseCommissionPct.IsNegative() || m.FixedCommission.IsNegative() || m.InstallmentCommissionPct.IsNegative() {
		return fmt.Errorf("%w: method %s", ErrInvalidCommission, m.ID)
	}
	return nil
}

func inPercentRange(v decimal.Decimal) bool {
	return !v.IsNegative() && v.LessThanOrEqual(hundred)
}

// detachTerms copies the live terms so directory edits made after a terminal
// transition never reach the quotation.
func detachTerms(p Pricing) Pricing {
	t := resolveTerms(p)
	d := Draft{}
	if t.condition != nil {
		c := t.condition.Clone()
		d.Condition = &c
	}
	if t.method != nil {
		m := *t.method
		d.Method = &m
	}
	return d
}
