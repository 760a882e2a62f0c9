package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/israelwong/prosocial-app-sub003/internal/domain/entities"
	"github.com/israelwong/prosocial-app-sub003/internal/domain/pricing"
	"github.com/israelwong/prosocial-app-sub003/internal/domain/quotation"
	"github.com/israelwong/prosocial-app-sub003/internal/usecase/interfaces"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

var (
	ErrQuotationNotFound           = errors.New("quotation not found")
	ErrInvalidQuotationID          = errors.New("invalid quotation id")
	ErrInvalidQuotationName        = errors.New("invalid quotation name")
	ErrInvalidServiceID            = errors.New("invalid service id")
	ErrNoServices                  = errors.New("no services to quote")
	ErrCommercialConditionNotFound = errors.New("commercial condition not found")
	ErrPaymentMethodNotFound       = errors.New("payment method not found")
	ErrCatalogNotConfigured        = errors.New("catalog store not configured")
)

// CreateQuotationInput is the command to build a new draft quotation.
type CreateQuotationInput struct {
	Name                  string
	EventID               string
	EventType             string
	Services              []pricing.ServiceRef
	SkipMissing           bool
	CommercialConditionID string
	PaymentMethodID       string
}

// QuotationView is a quotation with its derived totals.
// SkippedServiceIDs is only set by Create with SkipMissing.
type QuotationView struct {
	Quotation         quotation.Quotation
	Totals            quotation.Totals
	SkippedServiceIDs []string
}

// IQuotationUseCase exposes the quotation lifecycle.
type IQuotationUseCase interface {
	Create(ctx context.Context, in CreateQuotationInput) (QuotationView, error)
	Get(ctx context.Context, id string) (QuotationView, error)
	AddItem(ctx context.Context, id string, ref pricing.ServiceRef) (QuotationView, error)
	SetQuantity(ctx context.Context, id, serviceID string, qty int) (QuotationView, error)
	ApplyCondition(ctx context.Context, id, conditionID, methodID string) (QuotationView, error)
	ClearCondition(ctx context.Context, id string) (QuotationView, error)
	Submit(ctx context.Context, id string) (QuotationView, error)
	Approve(ctx context.Context, id string) (QuotationView, error)
	Reject(ctx context.Context, id string) (QuotationView, error)
}

type QuotationUseCase struct {
	repo       interfaces.IQuotationRepository
	catalog    interfaces.ICatalogReader
	conditions interfaces.ICommercialConditionDirectory
	configs    interfaces.IPricingConfigProvider
	loader     quotationLoader
	logger     *zap.Logger
	now        func() time.Time
}

var _ IQuotationUseCase = (*QuotationUseCase)(nil)

func NewQuotationUseCase(
	repo interfaces.IQuotationRepository,
	catalog interfaces.ICatalogReader,
	conditions interfaces.ICommercialConditionDirectory,
	configs interfaces.IPricingConfigProvider,
	logger *zap.Logger,
) *QuotationUseCase {
	logger = logger.Named("quotation.usecase")
	return &QuotationUseCase{
		repo:       repo,
		catalog:    catalog,
		conditions: conditions,
		configs:    configs,
		loader:     quotationLoader{repo: repo, conditions: conditions, logger: logger},
		logger:     logger,
		now:        func() time.Time { return time.Now().UTC() },
	}
}

func (u *QuotationUseCase) Create(ctx context.Context, in CreateQuotationInput) (QuotationView, error) {
	in.Name = strings.TrimSpace(in.Name)
	in.EventID = strings.TrimSpace(in.EventID)
	if in.Name == "" {
		return QuotationView{}, ErrInvalidQuotationName
	}
	if len(in.Services) == 0 {
		return QuotationView{}, ErrNoServices
	}
	u.logger.Info("[quotation][usecase] create start",
		zap.String("event_id", in.EventID),
		zap.Int("services", len(in.Services)),
		zap.Bool("skip_missing", in.SkipMissing),
	)

	freezer, cfg := u.freezer(ctx)
	catalog, err := u.loadCatalog(ctx, in.Services)
	if err != nil {
		return QuotationView{}, err
	}

	var items []entities.FrozenLineItem
	var skipped []string
	if in.SkipMissing {
		items, skipped, err = freezer.FreezeSkipping(in.Services, catalog)
	} else {
		items, err = freezer.Freeze(in.Services, catalog)
	}
	if err != nil {
		u.logger.Warn("[quotation][usecase] freeze failed", zap.Error(err))
		return QuotationView{}, err
	}
	if len(skipped) > 0 {
		u.logger.Warn("[quotation][usecase] skipped services missing from catalog", zap.Strings("service_ids", skipped))
	}
	if len(items) == 0 {
		return QuotationView{}, ErrNoServices
	}

	salesCommission := decimal.Zero
	if cfg != nil {
		salesCommission = cfg.SalesCommissionPct
	}
	q := quotation.New(uuid.NewString(), in.Name, in.EventID, salesCommission, u.now())
	for _, it := range items {
		if q, err = q.AddLineItem(it); err != nil {
			return QuotationView{}, err
		}
	}

	if strings.TrimSpace(in.CommercialConditionID) != "" {
		cond, method, err := resolveConditionAndMethod(ctx, u.conditions, in.CommercialConditionID, in.PaymentMethodID)
		if err != nil {
			return QuotationView{}, err
		}
		if et := strings.TrimSpace(in.EventType); et != "" && cond.EventType != "" && !strings.EqualFold(et, cond.EventType) {
			u.logger.Warn("[quotation][usecase] commercial condition targets another event type",
				zap.String("condition_id", cond.ID),
				zap.String("condition_event_type", cond.EventType),
				zap.String("event_type", et),
			)
		}
		if q, err = q.ApplyCommercialCondition(cond, method); err != nil {
			return QuotationView{}, err
		}
	} else if strings.TrimSpace(in.PaymentMethodID) != "" {
		return QuotationView{}, quotation.ErrIncompatibleMethod
	}

	totals, err := q.ComputeTotals()
	if err != nil {
		return QuotationView{}, err
	}
	created, err := u.repo.Create(ctx, q)
	if err != nil {
		u.logger.Error("[quotation][usecase] repository create failed", zap.String("quotation_id", q.ID), zap.Error(err))
		return QuotationView{}, fmt.Errorf("create quotation: %w", err)
	}
	u.logger.Info("[quotation][usecase] create success",
		zap.String("quotation_id", created.ID),
		zap.String("final_price", totals.FinalPrice.StringFixed(2)),
		zap.String("profit_code", totals.Code),
	)
	return QuotationView{Quotation: created, Totals: totals, SkippedServiceIDs: skipped}, nil
}

func (u *QuotationUseCase) Get(ctx context.Context, id string) (QuotationView, error) {
	q, err := u.loader.load(ctx, id)
	if err != nil {
		return QuotationView{}, err
	}
	return view(q)
}

func (u *QuotationUseCase) AddItem(ctx context.Context, id string, ref pricing.ServiceRef) (QuotationView, error) {
	ref.ServiceID = strings.TrimSpace(ref.ServiceID)
	if ref.ServiceID == "" {
		return QuotationView{}, ErrInvalidServiceID
	}
	return u.mutate(ctx, id, func(q quotation.Quotation) (quotation.Quotation, error) {
		freezer, _ := u.freezer(ctx)
		catalog, err := u.loadCatalog(ctx, []pricing.ServiceRef{ref})
		if err != nil {
			return q, err
		}
		item, err := freezer.FreezeOne(ref, catalog)
		if err != nil {
			return q, err
		}
		return q.AddLineItem(item)
	})
}

func (u *QuotationUseCase) SetQuantity(ctx context.Context, id, serviceID string, qty int) (QuotationView, error) {
	serviceID = strings.TrimSpace(serviceID)
	if serviceID == "" {
		return QuotationView{}, ErrInvalidServiceID
	}
	return u.mutate(ctx, id, func(q quotation.Quotation) (quotation.Quotation, error) {
		return q.SetQuantity(serviceID, qty)
	})
}

func (u *QuotationUseCase) ApplyCondition(ctx context.Context, id, conditionID, methodID string) (QuotationView, error) {
	if strings.TrimSpace(conditionID) == "" {
		return QuotationView{}, ErrCommercialConditionNotFound
	}
	return u.mutate(ctx, id, func(q quotation.Quotation) (quotation.Quotation, error) {
		cond, method, err := resolveConditionAndMethod(ctx, u.conditions, conditionID, methodID)
		if err != nil {
			return q, err
		}
		return q.ApplyCommercialCondition(cond, method)
	})
}

func (u *QuotationUseCase) ClearCondition(ctx context.Context, id string) (QuotationView, error) {
	return u.mutate(ctx, id, func(q quotation.Quotation) (quotation.Quotation, error) {
		return q.ApplyCommercialCondition(nil, nil)
	})
}

func (u *QuotationUseCase) Submit(ctx context.Context, id string) (QuotationView, error) {
	return u.mutate(ctx, id, quotation.Quotation.Submit)
}

func (u *QuotationUseCase) Approve(ctx context.Context, id string) (QuotationView, error) {
	return u.mutate(ctx, id, quotation.Quotation.Approve)
}

func (u *QuotationUseCase) Reject(ctx context.Context, id string) (QuotationView, error) {
	return u.mutate(ctx, id, quotation.Quotation.Reject)
}

// mutate loads, applies one aggregate command and saves the result.
func (u *QuotationUseCase) mutate(ctx context.Context, id string, cmd func(quotation.Quotation) (quotation.Quotation, error)) (QuotationView, error) {
	q, err := u.loader.load(ctx, id)
	if err != nil {
		return QuotationView{}, err
	}
	before := q.Status

	next, err := cmd(q)
	if err != nil {
		u.logger.Warn("[quotation][usecase] command rejected", zap.String("quotation_id", q.ID), zap.String("status", string(before)), zap.Error(err))
		return QuotationView{}, err
	}
	if _, err := next.ComputeTotals(); err != nil {
		return QuotationView{}, err
	}
	next.UpdatedAt = u.now()

	saved, err := u.repo.Save(ctx, next)
	if err != nil {
		u.logger.Error("[quotation][usecase] repository save failed", zap.String("quotation_id", q.ID), zap.Error(err))
		return QuotationView{}, fmt.Errorf("save quotation %s: %w", q.ID, err)
	}
	if saved.ID == "" {
		return QuotationView{}, ErrQuotationNotFound
	}
	if saved.Status != before {
		u.logger.Info("[quotation][usecase] status changed",
			zap.String("quotation_id", saved.ID),
			zap.String("from", string(before)),
			zap.String("to", string(saved.Status)),
		)
	}
	return view(saved)
}

func (u *QuotationUseCase) freezer(ctx context.Context) (pricing.Freezer, *entities.PricingConfig) {
	f := pricing.Freezer{OnFallback: u.reportFallback}
	if u.configs == nil {
		return f, nil
	}
	cfg, err := u.configs.ActivePricingConfig(ctx)
	if err != nil {
		u.logger.Warn("[quotation][usecase] pricing configuration unavailable, freezing public prices", zap.Error(err))
		return f, nil
	}
	if cfg == nil {
		u.logger.Warn("[quotation][usecase] no active pricing configuration, freezing public prices")
	}
	f.Config = cfg
	return f, cfg
}

func (u *QuotationUseCase) reportFallback(serviceID string, reason error) {
	u.logger.Warn("[quotation][pricing] falling back to public price",
		zap.String("service_id", serviceID),
		zap.Error(reason),
	)
}

func (u *QuotationUseCase) loadCatalog(ctx context.Context, refs []pricing.ServiceRef) (pricing.CatalogSnapshot, error) {
	if u.catalog == nil {
		return nil, ErrCatalogNotConfigured
	}
	ids := make([]string, 0, len(refs))
	seen := make(map[string]struct{}, len(refs))
	for _, r := range refs {
		if _, ok := seen[r.ServiceID]; ok {
			continue
		}
		seen[r.ServiceID] = struct{}{}
		ids = append(ids, r.ServiceID)
	}
	entries, err := u.catalog.GetServicesByIDs(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("read catalog: %w", err)
	}
	return pricing.NewCatalogSnapshot(entries), nil
}

// resolveConditionAndMethod reads the condition and, when methodID is set,
// the method. A method that exists but is not eligible is returned as is so
// the aggregate reports ErrIncompatibleMethod.
func resolveConditionAndMethod(ctx context.Context, dir interfaces.ICommercialConditionDirectory, conditionID, methodID string) (*entities.CommercialCondition, *entities.PaymentMethod, error) {
	conditionID = strings.TrimSpace(conditionID)
	methodID = strings.TrimSpace(methodID)
	if dir == nil {
		return nil, nil, ErrCatalogNotConfigured
	}

	cond, err := dir.GetCondition(ctx, conditionID)
	if err != nil {
		return nil, nil, fmt.Errorf("read commercial condition %s: %w", conditionID, err)
	}
	if cond.ID == "" {
		return nil, nil, ErrCommercialConditionNotFound
	}
	if methodID == "" {
		return &cond, nil, nil
	}
	if m, ok := cond.Method(methodID); ok {
		return &cond, &m, nil
	}

	m, err := dir.GetPaymentMethod(ctx, methodID)
	if err != nil {
		return nil, nil, fmt.Errorf("read payment method %s: %w", methodID, err)
	}
	if m.ID == "" {
		return nil, nil, ErrPaymentMethodNotFound
	}
	return &cond, &m, nil
}

func view(q quotation.Quotation) (QuotationView, error) {
	totals, err := q.ComputeTotals()
	if err != nil {
		return QuotationView{}, err
	}
	return QuotationView{Quotation: q, Totals: totals}, nil
}
