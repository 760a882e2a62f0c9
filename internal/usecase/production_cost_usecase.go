package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/israelwong/prosocial-app-sub003/internal/domain/entities"
	"github.com/israelwong/prosocial-app-sub003/internal/usecase/interfaces"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

var (
	ErrInvalidAmount   = errors.New("invalid amount")
	ErrInvalidCostName = errors.New("invalid production cost name")
)

// CreateProductionCostInput is a discretionary cost to book against a quotation.
type CreateProductionCostInput struct {
	QuotationID string
	Name        string
	Description string
	Amount      decimal.Decimal
}

// IProductionCostUseCase appends to and reads the production cost ledger.
type IProductionCostUseCase interface {
	Create(ctx context.Context, in CreateProductionCostInput) (entities.ProductionCost, error)
	ListByQuotationID(ctx context.Context, quotationID string) ([]entities.ProductionCost, error)
}

type ProductionCostUseCase struct {
	repo       interfaces.IProductionCostRepository
	quotations interfaces.IQuotationRepository
	logger     *zap.Logger
	now        func() time.Time
}

var _ IProductionCostUseCase = (*ProductionCostUseCase)(nil)

func NewProductionCostUseCase(repo interfaces.IProductionCostRepository, quotations interfaces.IQuotationRepository, logger *zap.Logger) *ProductionCostUseCase {
	return &ProductionCostUseCase{
		repo:       repo,
		quotations: quotations,
		logger:     logger.Named("production_cost.usecase"),
		now:        func() time.Time { return time.Now().UTC() },
	}
}

func (u *ProductionCostUseCase) Create(ctx context.Context, in CreateProductionCostInput) (entities.ProductionCost, error) {
	in.QuotationID = strings.TrimSpace(in.QuotationID)
	in.Name = strings.TrimSpace(in.Name)
	if in.QuotationID == "" {
		return entities.ProductionCost{}, ErrInvalidQuotationID
	}
	if in.Name == "" {
		return entities.ProductionCost{}, ErrInvalidCostName
	}
	if !in.Amount.IsPositive() {
		return entities.ProductionCost{}, ErrInvalidAmount
	}

	q, err := u.quotations.GetByID(ctx, in.QuotationID)
	if err != nil {
		return entities.ProductionCost{}, fmt.Errorf("load quotation %s: %w", in.QuotationID, err)
	}
	if q.ID == "" {
		return entities.ProductionCost{}, ErrQuotationNotFound
	}

	c := entities.ProductionCost{
		ID:          uuid.NewString(),
		QuotationID: q.ID,
		Name:        in.Name,
		Description: strings.TrimSpace(in.Description),
		Amount:      in.Amount,
		CreatedAt:   u.now(),
	}
	created, err := u.repo.Create(ctx, c)
	if err != nil {
		u.logger.Error("[production_cost][usecase] repository create failed", zap.String("quotation_id", q.ID), zap.Error(err))
		return entities.ProductionCost{}, fmt.Errorf("create production cost: %w", err)
	}
	u.logger.Info("[production_cost][usecase] cost recorded",
		zap.String("quotation_id", q.ID),
		zap.String("cost_id", created.ID),
		zap.String("amount", created.Amount.StringFixed(2)),
	)
	return created, nil
}

func (u *ProductionCostUseCase) ListByQuotationID(ctx context.Context, quotationID string) ([]entities.ProductionCost, error) {
	quotationID = strings.TrimSpace(quotationID)
	if quotationID == "" {
		return nil, ErrInvalidQuotationID
	}
	return u.repo.ListByQuotationID(ctx, quotationID)
}
