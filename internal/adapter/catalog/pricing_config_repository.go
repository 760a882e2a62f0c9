package catalog

import (
	"context"
	"errors"
	"fmt"

	"github.com/israelwong/prosocial-app-sub003/internal/domain/entities"
	"github.com/israelwong/prosocial-app-sub003/internal/usecase/interfaces"

	"github.com/jackc/pgx/v5"
)

// PricingConfigRepo reads the single active pricing configuration.
type PricingConfigRepo struct {
	db Querier
}

var _ interfaces.IPricingConfigProvider = (*PricingConfigRepo)(nil)

func NewPricingConfigRepo(db Querier) *PricingConfigRepo {
	return &PricingConfigRepo{db: db}
}

// ActivePricingConfig returns the most recently updated active row, or nil
// when there is none.
func (r *PricingConfigRepo) ActivePricingConfig(ctx context.Context) (*entities.PricingConfig, error) {
	query := `
		SELECT service_markup_pct::text, product_markup_pct::text,
			COALESCE(surcharge_pct, 0)::text, sales_commission_pct::text
		FROM pricing_configurations
		WHERE status = 'active'
		ORDER BY updated_at DESC
		LIMIT 1`

	var serviceMarkup, productMarkup, surcharge, salesCommission string
	if err := r.db.QueryRow(ctx, query).Scan(&serviceMarkup, &productMarkup, &surcharge, &salesCommission); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get active pricing configuration: %w", err)
	}

	var cfg entities.PricingConfig
	if err := parseNumerics(
		numericField{"service_markup_pct", serviceMarkup, &cfg.ServiceMarkupPct},
		numericField{"product_markup_pct", productMarkup, &cfg.ProductMarkupPct},
		numericField{"surcharge_pct", surcharge, &cfg.SurchargePct},
		numericField{"sales_commission_pct", salesCommission, &cfg.SalesCommissionPct},
	); err != nil {
		return nil, fmt.Errorf("pricing configuration: %w", err)
	}
	return &cfg, nil
}
