package simulator

import (
	"errors"
	"testing"

	"github.com/israelwong/prosocial-app-sub003/internal/domain/entities"
	"github.com/israelwong/prosocial-app-sub003/internal/domain/quotation"

	"github.com/shopspring/decimal"
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func requireDecimal(t *testing.T, name string, got, want decimal.Decimal) {
	t.Helper()
	if !got.Equal(want) {
		t.Fatalf("%s = %s, want %s", name, got, want)
	}
}

var card = entities.PaymentMethod{ID: "card", BaseCommissionPct: dec("3"), FixedCommission: dec("50")}

var msi = entities.PaymentMethod{ID: "msi-3", InstallmentCount: 3, BaseCommissionPct: dec("3"), InstallmentCommissionPct: dec("6")}

func TestSimulate_DiscountThenCommission(t *testing.T) {
	cond := &entities.CommercialCondition{ID: "c", DiscountPct: dec("10"), AdvancePct: dec("30")}

	s, err := Simulate(card, dec("10000"), cond)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	requireDecimal(t, "discount", s.Discount, dec("1000"))
	requireDecimal(t, "net", s.NetAmount, dec("9000"))
	requireDecimal(t, "commission", s.Commission, dec("320"))
	requireDecimal(t, "advance", s.Advance, dec("2700"))
	requireDecimal(t, "pending", s.Pending, dec("6300"))
	requireDecimal(t, "total payable", s.TotalPayable, dec("9320"))
	if s.InstallmentCount != 0 {
		t.Fatalf("expected no installments, got %d", s.InstallmentCount)
	}
}

func TestSimulate_CommissionNeverChargedOnGross(t *testing.T) {
	cond := &entities.CommercialCondition{ID: "c", DiscountPct: dec("25"), AdvancePct: dec("0")}
	for _, base := range []string{"100", "2500.50", "10000"} {
		with, err := Simulate(card, dec(base), cond)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		without, err := Simulate(card, dec(base), nil)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !with.Commission.LessThan(without.Commission) {
			t.Fatalf("base %s: discounted commission %s should be below %s", base, with.Commission, without.Commission)
		}
	}
}

func TestSimulate_Installments(t *testing.T) {
	s, err := Simulate(msi, dec("9000"), nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if s.InstallmentCount != 3 {
		t.Fatalf("expected 3 installments, got %d", s.InstallmentCount)
	}
	requireDecimal(t, "advance", s.Advance, dec("0"))
	requireDecimal(t, "pending", s.Pending, dec("9000"))
	requireDecimal(t, "installment commission", s.InstallmentCommission, dec("540"))
	requireDecimal(t, "per installment", s.PerInstallmentAmount, dec("3180"))
	requireDecimal(t, "total payable", s.TotalPayable, dec("9810"))
}

func TestSimulate_InstallmentsAfterAdvance(t *testing.T) {
	cond := &entities.CommercialCondition{ID: "c", DiscountPct: dec("0"), AdvancePct: dec("40")}
	s, err := Simulate(msi, dec("9000"), cond)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	requireDecimal(t, "advance", s.Advance, dec("3600"))
	requireDecimal(t, "per installment", s.PerInstallmentAmount, dec("1980"))
}

func TestSimulate_SinglePaymentWithoutCondition(t *testing.T) {
	s, err := Simulate(card, dec("1000"), nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	requireDecimal(t, "advance", s.Advance, dec("1000"))
	requireDecimal(t, "pending", s.Pending, dec("0"))
	requireDecimal(t, "commission", s.Commission, dec("80"))
}

func TestSimulate_InvalidInput(t *testing.T) {
	if _, err := Simulate(card, dec("-1"), nil); !errors.Is(err, ErrInvalidBaseAmount) {
		t.Fatalf("expected ErrInvalidBaseAmount, got %v", err)
	}
	bad := entities.PaymentMethod{ID: "bad", FixedCommission: dec("-5")}
	if _, err := Simulate(bad, dec("100"), nil); !errors.Is(err, quotation.ErrInvalidCommission) {
		t.Fatalf("expected ErrInvalidCommission, got %v", err)
	}
	cond := &entities.CommercialCondition{ID: "c", DiscountPct: dec("150")}
	if _, err := Simulate(card, dec("100"), cond); !errors.Is(err, quotation.ErrInvalidDiscount) {
		t.Fatalf("expected ErrInvalidDiscount, got %v", err)
	}
}
