package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/israelwong/prosocial-app-sub003/internal/domain/entities"
	"github.com/israelwong/prosocial-app-sub003/internal/domain/pricing"
	"github.com/israelwong/prosocial-app-sub003/internal/usecase/interfaces"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

var (
	ErrCatalogServiceNotFound = errors.New("catalog service not found")
	ErrInvalidCategoryID      = errors.New("invalid category id")
)

// CatalogServiceView is a live catalog record with the price a new quotation
// would freeze for it right now.
type CatalogServiceView struct {
	Entry       entities.ServiceCatalogEntry
	SystemPrice decimal.Decimal
}

// ICatalogUseCase browses the live service catalog.
type ICatalogUseCase interface {
	GetService(ctx context.Context, id string) (CatalogServiceView, error)
	ListServicesByCategory(ctx context.Context, categoryID string) ([]CatalogServiceView, error)
}

type CatalogUseCase struct {
	catalog interfaces.ICatalogReader
	configs interfaces.IPricingConfigProvider
	logger  *zap.Logger
}

var _ ICatalogUseCase = (*CatalogUseCase)(nil)

func NewCatalogUseCase(catalog interfaces.ICatalogReader, configs interfaces.IPricingConfigProvider, logger *zap.Logger) *CatalogUseCase {
	return &CatalogUseCase{catalog: catalog, configs: configs, logger: logger.Named("catalog.usecase")}
}

func (u *CatalogUseCase) GetService(ctx context.Context, id string) (CatalogServiceView, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return CatalogServiceView{}, ErrInvalidServiceID
	}
	if u.catalog == nil {
		return CatalogServiceView{}, ErrCatalogNotConfigured
	}

	entry, err := u.catalog.GetService(ctx, id)
	if err != nil {
		return CatalogServiceView{}, fmt.Errorf("get catalog service %s: %w", id, err)
	}
	if entry.ID == "" {
		return CatalogServiceView{}, ErrCatalogServiceNotFound
	}
	return u.price(entry, u.activeConfig(ctx)), nil
}

// ListServicesByCategory keeps the store's position order.
func (u *CatalogUseCase) ListServicesByCategory(ctx context.Context, categoryID string) ([]CatalogServiceView, error) {
	categoryID = strings.TrimSpace(categoryID)
	if categoryID == "" {
		return nil, ErrInvalidCategoryID
	}
	if u.catalog == nil {
		return nil, ErrCatalogNotConfigured
	}

	entries, err := u.catalog.ListServicesByCategory(ctx, categoryID)
	if err != nil {
		return nil, fmt.Errorf("list catalog services for category %s: %w", categoryID, err)
	}
	cfg := u.activeConfig(ctx)
	out := make([]CatalogServiceView, 0, len(entries))
	for _, e := range entries {
		out = append(out, u.price(e, cfg))
	}
	return out, nil
}

// activeConfig returns nil when no configuration can be read; prices then
// fall back to the public price, as they do when freezing.
func (u *CatalogUseCase) activeConfig(ctx context.Context) *entities.PricingConfig {
	if u.configs == nil {
		return nil
	}
	cfg, err := u.configs.ActivePricingConfig(ctx)
	if err != nil {
		u.logger.Warn("[catalog][usecase] pricing configuration unavailable, showing public prices", zap.Error(err))
		return nil
	}
	return cfg
}

func (u *CatalogUseCase) price(e entities.ServiceCatalogEntry, cfg *entities.PricingConfig) CatalogServiceView {
	return CatalogServiceView{
		Entry: e,
		SystemPrice: pricing.SystemPrice(e, cfg, func(serviceID string, reason error) {
			u.logger.Warn("[catalog][pricing] falling back to public price",
				zap.String("service_id", serviceID),
				zap.Error(reason),
			)
		}),
	}
}
