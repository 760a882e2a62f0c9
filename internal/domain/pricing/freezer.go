package pricing

import (
	"errors"
	"fmt"

	"github.com/israelwong/prosocial-app-sub003/internal/domain/entities"
)

var (
	ErrServiceNotFound = errors.New("service not found")
	ErrInvalidQuantity = errors.New("quantity must be at least 1")
)

// ServiceNotFoundError identifies the catalog id that could not be resolved.
// It matches ErrServiceNotFound with errors.Is.
type ServiceNotFoundError struct {
	ServiceID string
}

func (e *ServiceNotFoundError) Error() string {
	return fmt.Sprintf("service not found: %s", e.ServiceID)
}

func (e *ServiceNotFoundError) Is(target error) bool {
	return target == ErrServiceNotFound
}

// ServiceRef points at a catalog service and the quantity wanted.
type ServiceRef struct {
	ServiceID string
	Quantity  int
}

// Catalog resolves live catalog entries already loaded by the caller.
type Catalog interface {
	Service(id string) (entities.ServiceCatalogEntry, bool)
}

// CatalogSnapshot is an in-memory Catalog keyed by service id.
type CatalogSnapshot map[string]entities.ServiceCatalogEntry

func (c CatalogSnapshot) Service(id string) (entities.ServiceCatalogEntry, bool) {
	e, ok := c[id]
	return e, ok
}

// NewCatalogSnapshot indexes entries by id.
func NewCatalogSnapshot(entries []entities.ServiceCatalogEntry) CatalogSnapshot {
	out := make(CatalogSnapshot, len(entries))
	for _, e := range entries {
		out[e.ID] = e
	}
	return out
}

// Freezer turns catalog references into FrozenLineItems.
//
// Config is optional; without it the catalog public price is frozen.
type Freezer struct {
	Config     *entities.PricingConfig
	OnFallback FallbackReporter
}

// FreezeOne freezes a single reference.
func (f Freezer) FreezeOne(ref ServiceRef, catalog Catalog) (entities.FrozenLineItem, error) {
	if ref.Quantity < 1 {
		return entities.FrozenLineItem{}, fmt.Errorf("%w: service %s quantity %d", ErrInvalidQuantity, ref.ServiceID, ref.Quantity)
	}
	entry, ok := catalog.Service(ref.ServiceID)
	if !ok {
		return entities.FrozenLineItem{}, &ServiceNotFoundError{ServiceID: ref.ServiceID}
	}
	return entities.FrozenLineItem{
		ServiceID:   entry.ID,
		CategoryID:  entry.CategoryID,
		Name:        entry.Name,
		ProfitType:  entry.ProfitType,
		Position:    entry.Position,
		UnitPrice:   SystemPrice(entry, f.Config, f.OnFallback),
		UnitCost:    entry.Cost,
		UnitExpense: entry.Expense,
		Quantity:    ref.Quantity,
	}, nil
}

// Freeze freezes every reference in order and stops at the first failure.
func (f Freezer) Freeze(refs []ServiceRef, catalog Catalog) ([]entities.FrozenLineItem, error) {
	items := make([]entities.FrozenLineItem, 0, len(refs))
	for _, ref := range refs {
		item, err := f.FreezeOne(ref, catalog)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	return items, nil
}

// FreezeSkipping freezes what it can and returns the ids missing from the
// catalog. Invalid quantities still abort.
func (f Freezer) FreezeSkipping(refs []ServiceRef, catalog Catalog) ([]entities.FrozenLineItem, []string, error) {
	items := make([]entities.FrozenLineItem, 0, len(refs))
	var missing []string
	for _, ref := range refs {
		item, err := f.FreezeOne(ref, catalog)
		if errors.Is(err, ErrServiceNotFound) {
			missing = append(missing, ref.ServiceID)
			continue
		}
		if err != nil {
			return nil, nil, err
		}
		items = append(items, item)
	}
	return items, missing, nil
}
