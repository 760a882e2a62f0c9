package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/israelwong/prosocial-app-sub003/internal/domain/entities"
	"github.com/israelwong/prosocial-app-sub003/internal/domain/quotation"
	mock_interfaces "github.com/israelwong/prosocial-app-sub003/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
	"go.uber.org/zap"
)

func TestSimulationUseCase_Simulate(t *testing.T) {
	setup := func(t *testing.T) (*SimulationUseCase, *mock_interfaces.MockICommercialConditionDirectory) {
		ctrl := gomock.NewController(t)
		dir := mock_interfaces.NewMockICommercialConditionDirectory(ctrl)
		return NewSimulationUseCase(dir, zap.NewNop()), dir
	}

	t.Run("validations", func(t *testing.T) {
		uc, _ := setup(t)
		if _, err := uc.Simulate(context.Background(), SimulationInput{BaseAmount: dec("10")}); !errors.Is(err, ErrPaymentMethodNotFound) {
			t.Fatalf("expected ErrPaymentMethodNotFound, got %v", err)
		}
		if _, err := uc.Simulate(context.Background(), SimulationInput{PaymentMethodID: "card", BaseAmount: dec("-1")}); !errors.Is(err, ErrInvalidAmount) {
			t.Fatalf("expected ErrInvalidAmount, got %v", err)
		}
	})

	t.Run("with condition", func(t *testing.T) {
		uc, dir := setup(t)
		dir.EXPECT().GetCondition(gomock.Any(), "cond-1").Return(contado(), nil)

		res, err := uc.Simulate(context.Background(), SimulationInput{PaymentMethodID: "card", BaseAmount: dec("10000"), CommercialConditionID: "cond-1"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !res.Simulation.TotalPayable.Equal(dec("9320")) || !res.Simulation.Commission.Equal(dec("320")) {
			t.Fatalf("unexpected simulation %+v", res.Simulation)
		}
		if res.Condition == nil || res.Condition.ID != "cond-1" {
			t.Fatalf("expected resolved condition")
		}
	})

	t.Run("method not eligible", func(t *testing.T) {
		uc, dir := setup(t)
		dir.EXPECT().GetCondition(gomock.Any(), "cond-1").Return(contado(), nil)
		dir.EXPECT().GetPaymentMethod(gomock.Any(), "msi-3").Return(msiMethod(), nil)

		_, err := uc.Simulate(context.Background(), SimulationInput{PaymentMethodID: "msi-3", BaseAmount: dec("1000"), CommercialConditionID: "cond-1"})
		if !errors.Is(err, quotation.ErrIncompatibleMethod) {
			t.Fatalf("expected ErrIncompatibleMethod, got %v", err)
		}
	})

	t.Run("method only", func(t *testing.T) {
		uc, dir := setup(t)
		dir.EXPECT().GetPaymentMethod(gomock.Any(), "msi-3").Return(msiMethod(), nil)

		res, err := uc.Simulate(context.Background(), SimulationInput{PaymentMethodID: "msi-3", BaseAmount: dec("9000")})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.Simulation.InstallmentCount != 3 || !res.Simulation.PerInstallmentAmount.Equal(dec("3180")) {
			t.Fatalf("unexpected installments %+v", res.Simulation)
		}
	})

	t.Run("unknown method", func(t *testing.T) {
		uc, dir := setup(t)
		dir.EXPECT().GetPaymentMethod(gomock.Any(), "cash").Return(entities.PaymentMethod{}, nil)
		if _, err := uc.Simulate(context.Background(), SimulationInput{PaymentMethodID: "cash", BaseAmount: dec("10")}); !errors.Is(err, ErrPaymentMethodNotFound) {
			t.Fatalf("expected ErrPaymentMethodNotFound, got %v", err)
		}
	})
}

func TestConditionsUseCase_ListActive(t *testing.T) {
	t.Run("not configured", func(t *testing.T) {
		uc := NewConditionsUseCase(nil, zap.NewNop())
		if _, err := uc.ListActive(context.Background(), "boda"); !errors.Is(err, ErrCatalogNotConfigured) {
			t.Fatalf("expected ErrCatalogNotConfigured, got %v", err)
		}
	})

	t.Run("drops invalid rows", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		dir := mock_interfaces.NewMockICommercialConditionDirectory(ctrl)
		uc := NewConditionsUseCase(dir, zap.NewNop())

		bad := contado()
		bad.ID = "cond-bad"
		bad.DiscountPct = dec("130")
		dir.EXPECT().ListActiveConditions(gomock.Any(), "boda").Return([]entities.CommercialCondition{contado(), bad}, nil)

		res, err := uc.ListActive(context.Background(), " boda ")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(res) != 1 || res[0].ID != "cond-1" {
			t.Fatalf("unexpected conditions %+v", res)
		}
	})
}
