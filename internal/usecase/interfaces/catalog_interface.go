package interfaces

import (
	"context"

	"github.com/israelwong/prosocial-app-sub003/internal/domain/entities"
)

// ICatalogReader reads live service records from the catalog store.
//
// GetService returns a zero entry and a nil error when the id is unknown.
// GetServicesByIDs silently leaves out unknown ids.
type ICatalogReader interface {
	GetService(ctx context.Context, id string) (entities.ServiceCatalogEntry, error)
	GetServicesByIDs(ctx context.Context, ids []string) ([]entities.ServiceCatalogEntry, error)
	ListServicesByCategory(ctx context.Context, categoryID string) ([]entities.ServiceCatalogEntry, error)
}

// ICommercialConditionDirectory reads commercial conditions and their
// eligible payment methods. Lookups by id return a zero value and a nil error
// when nothing matches.
type ICommercialConditionDirectory interface {
	ListActiveConditions(ctx context.Context, eventType string) ([]entities.CommercialCondition, error)
	GetCondition(ctx context.Context, id string) (entities.CommercialCondition, error)
	GetPaymentMethod(ctx context.Context, id string) (entities.PaymentMethod, error)
}

// IPricingConfigProvider returns the active pricing configuration, or nil
// when none is set up.
type IPricingConfigProvider interface {
	ActivePricingConfig(ctx context.Context) (*entities.PricingConfig, error)
}
