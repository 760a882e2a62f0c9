package usecase

import (
	"context"
	"fmt"

	"github.com/israelwong/prosocial-app-sub003/internal/domain/balance"
	"github.com/israelwong/prosocial-app-sub003/internal/domain/quotation"
	"github.com/israelwong/prosocial-app-sub003/internal/usecase/interfaces"

	"go.uber.org/zap"
)

// BalanceReport is the balance of a quotation next to the totals it was
// derived from.
type BalanceReport struct {
	Quotation quotation.Quotation
	Totals    quotation.Totals
	Balance   balance.Balance
}

// IBalanceUseCase derives the financial position of a quotation.
type IBalanceUseCase interface {
	GetBalance(ctx context.Context, quotationID string) (BalanceReport, error)
}

type BalanceUseCase struct {
	loader   quotationLoader
	payments interfaces.IPaymentRepository
	costs    interfaces.IProductionCostRepository
	logger   *zap.Logger
}

var _ IBalanceUseCase = (*BalanceUseCase)(nil)

func NewBalanceUseCase(
	repo interfaces.IQuotationRepository,
	conditions interfaces.ICommercialConditionDirectory,
	payments interfaces.IPaymentRepository,
	costs interfaces.IProductionCostRepository,
	logger *zap.Logger,
) *BalanceUseCase {
	logger = logger.Named("balance.usecase")
	return &BalanceUseCase{
		loader:   quotationLoader{repo: repo, conditions: conditions, logger: logger},
		payments: payments,
		costs:    costs,
		logger:   logger,
	}
}

func (u *BalanceUseCase) GetBalance(ctx context.Context, quotationID string) (BalanceReport, error) {
	q, err := u.loader.load(ctx, quotationID)
	if err != nil {
		return BalanceReport{}, err
	}

	payments, err := u.payments.ListByQuotationID(ctx, q.ID)
	if err != nil {
		return BalanceReport{}, fmt.Errorf("list payments: %w", err)
	}
	costs, err := u.costs.ListByQuotationID(ctx, q.ID)
	if err != nil {
		return BalanceReport{}, fmt.Errorf("list production costs: %w", err)
	}

	totals, err := q.ComputeTotals()
	if err != nil {
		return BalanceReport{}, err
	}
	b, err := balance.Calculate(q, payments, costs)
	if err != nil {
		return BalanceReport{}, err
	}
	for _, w := range b.Warnings {
		u.logger.Warn("[balance][usecase] ledger row excluded",
			zap.String("quotation_id", q.ID),
			zap.String("kind", string(w.Kind)),
			zap.String("row_id", w.RowID),
			zap.String("reason", w.Reason),
		)
	}
	if b.Overpaid() {
		u.logger.Warn("[balance][usecase] quotation overpaid",
			zap.String("quotation_id", q.ID),
			zap.String("total_paid", b.TotalPaid.StringFixed(2)),
			zap.String("effective_total", b.EffectiveTotal.StringFixed(2)),
		)
	}
	return BalanceReport{Quotation: q, Totals: totals, Balance: b}, nil
}
