package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/israelwong/prosocial-app-sub003/internal/domain/balance"
	"github.com/israelwong/prosocial-app-sub003/internal/domain/entities"
	"github.com/israelwong/prosocial-app-sub003/internal/domain/quotation"
	mock_interfaces "github.com/israelwong/prosocial-app-sub003/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
	"go.uber.org/zap"
)

func TestBalanceUseCase_GetBalance(t *testing.T) {
	setup := func(t *testing.T) (*BalanceUseCase, *mock_interfaces.MockIQuotationRepository, *mock_interfaces.MockIPaymentRepository, *mock_interfaces.MockIProductionCostRepository) {
		ctrl := gomock.NewController(t)
		repo := mock_interfaces.NewMockIQuotationRepository(ctrl)
		payments := mock_interfaces.NewMockIPaymentRepository(ctrl)
		costs := mock_interfaces.NewMockIProductionCostRepository(ctrl)
		dir := mock_interfaces.NewMockICommercialConditionDirectory(ctrl)
		return NewBalanceUseCase(repo, dir, payments, costs, zap.NewNop()), repo, payments, costs
	}

	t.Run("not found", func(t *testing.T) {
		uc, repo, _, _ := setup(t)
		repo.EXPECT().GetByID(gomock.Any(), "q-1").Return(quotation.Quotation{}, nil)
		if _, err := uc.GetBalance(context.Background(), "q-1"); !errors.Is(err, ErrQuotationNotFound) {
			t.Fatalf("expected ErrQuotationNotFound, got %v", err)
		}
	})

	t.Run("payments error", func(t *testing.T) {
		uc, repo, payments, _ := setup(t)
		repo.EXPECT().GetByID(gomock.Any(), "q-1").Return(draftQuotation(t), nil)
		payments.EXPECT().ListByQuotationID(gomock.Any(), "q-1").Return(nil, errors.New("db"))
		if _, err := uc.GetBalance(context.Background(), "q-1"); err == nil || err.Error() != "list payments: db" {
			t.Fatalf("expected wrapped db error, got %v", err)
		}
	})

	t.Run("derives balance and reports bad rows", func(t *testing.T) {
		uc, repo, payments, costs := setup(t)
		repo.EXPECT().GetByID(gomock.Any(), "q-1").Return(draftQuotation(t), nil)
		payments.EXPECT().ListByQuotationID(gomock.Any(), "q-1").Return([]entities.Payment{
			{ID: "p1", QuotationID: "q-1", Amount: dec("600"), Status: entities.PaymentStatusPaid},
			{ID: "p2", QuotationID: "q-1", Amount: dec("-1"), Status: entities.PaymentStatusPaid},
		}, nil)
		costs.EXPECT().ListByQuotationID(gomock.Any(), "q-1").Return([]entities.ProductionCost{
			{ID: "c1", QuotationID: "q-1", Amount: dec("50")},
		}, nil)

		res, err := uc.GetBalance(context.Background(), "q-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		b := res.Balance
		if !b.TotalPaid.Equal(dec("600")) || !b.PendingBalance.Equal(dec("400")) {
			t.Fatalf("unexpected paid/pending %s/%s", b.TotalPaid, b.PendingBalance)
		}
		if !b.FinalProfit.Equal(dec("-50")) {
			t.Fatalf("expected final profit -50, got %s", b.FinalProfit)
		}
		if b.Band != balance.BandAdvanced || b.MalformedRows() != 1 {
			t.Fatalf("unexpected band %s or warnings %v", b.Band, b.Warnings)
		}
		if !res.Totals.FinalPrice.Equal(dec("1000")) {
			t.Fatalf("unexpected totals %+v", res.Totals)
		}
	})
}
