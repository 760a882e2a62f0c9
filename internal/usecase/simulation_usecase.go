package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/israelwong/prosocial-app-sub003/internal/domain/entities"
	"github.com/israelwong/prosocial-app-sub003/internal/domain/quotation"
	"github.com/israelwong/prosocial-app-sub003/internal/domain/simulator"
	"github.com/israelwong/prosocial-app-sub003/internal/usecase/interfaces"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// SimulationInput is a what-if request. CommercialConditionID is optional.
type SimulationInput struct {
	PaymentMethodID       string
	BaseAmount            decimal.Decimal
	CommercialConditionID string
}

// SimulationResult carries the plan and the resolved terms it used.
type SimulationResult struct {
	Method     entities.PaymentMethod
	Condition  *entities.CommercialCondition
	Simulation simulator.Simulation
}

// ISimulationUseCase previews payment plans without touching any quotation
// or ledger.
type ISimulationUseCase interface {
	Simulate(ctx context.Context, in SimulationInput) (SimulationResult, error)
}

type SimulationUseCase struct {
	conditions interfaces.ICommercialConditionDirectory
	logger     *zap.Logger
}

var _ ISimulationUseCase = (*SimulationUseCase)(nil)

func NewSimulationUseCase(conditions interfaces.ICommercialConditionDirectory, logger *zap.Logger) *SimulationUseCase {
	return &SimulationUseCase{conditions: conditions, logger: logger.Named("simulation.usecase")}
}

func (u *SimulationUseCase) Simulate(ctx context.Context, in SimulationInput) (SimulationResult, error) {
	methodID := strings.TrimSpace(in.PaymentMethodID)
	if methodID == "" {
		return SimulationResult{}, ErrPaymentMethodNotFound
	}
	if in.BaseAmount.IsNegative() {
		return SimulationResult{}, ErrInvalidAmount
	}
	if u.conditions == nil {
		return SimulationResult{}, ErrCatalogNotConfigured
	}

	var (
		cond   *entities.CommercialCondition
		method entities.PaymentMethod
	)
	if strings.TrimSpace(in.CommercialConditionID) != "" {
		c, m, err := resolveConditionAndMethod(ctx, u.conditions, in.CommercialConditionID, methodID)
		if err != nil {
			return SimulationResult{}, err
		}
		if _, ok := c.Method(m.ID); !ok {
			return SimulationResult{}, fmt.Errorf("%w: method %s condition %s", quotation.ErrIncompatibleMethod, m.ID, c.ID)
		}
		cond, method = c, *m
	} else {
		m, err := u.conditions.GetPaymentMethod(ctx, methodID)
		if err != nil {
			return SimulationResult{}, fmt.Errorf("read payment method %s: %w", methodID, err)
		}
		if m.ID == "" {
			return SimulationResult{}, ErrPaymentMethodNotFound
		}
		method = m
	}

	s, err := simulator.Simulate(method, in.BaseAmount, cond)
	if err != nil {
		return SimulationResult{}, err
	}
	u.logger.Debug("[simulation][usecase] simulated",
		zap.String("payment_method_id", method.ID),
		zap.String("base_amount", in.BaseAmount.String()),
		zap.String("total_payable", s.TotalPayable.StringFixed(2)),
	)
	return SimulationResult{Method: method, Condition: cond, Simulation: s}, nil
}
