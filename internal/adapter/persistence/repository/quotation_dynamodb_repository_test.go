package repository

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/israelwong/prosocial-app-sub003/internal/domain/entities"
	"github.com/israelwong/prosocial-app-sub003/internal/domain/quotation"

	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/shopspring/decimal"
)

func dec(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func sampleQuotation(t *testing.T) quotation.Quotation {
	t.Helper()
	now := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	q := quotation.New("q-1", "Boda Ana", "evt-1", dec("10"), now)
	q, err := q.AddLineItem(entities.FrozenLineItem{
		ServiceID: "foto", CategoryID: "cat-1", Name: "Fotografía", ProfitType: entities.ProfitTypeService,
		Position: 2, UnitPrice: dec("1000.50"), UnitCost: dec("600"), UnitExpense: dec("25"), Quantity: 2,
	})
	if err != nil {
		t.Fatalf("add line item: %v", err)
	}
	card := entities.PaymentMethod{ID: "card", Name: "Tarjeta", BaseCommissionPct: dec("3.5"), FixedCommission: dec("4")}
	cond := entities.CommercialCondition{ID: "cond-1", Name: "Contado", DiscountPct: dec("10"), AdvancePct: dec("30"), PaymentMethods: []entities.PaymentMethod{card}}
	q, err = q.ApplyCommercialCondition(&cond, &card)
	if err != nil {
		t.Fatalf("apply condition: %v", err)
	}
	return q
}

func TestQuotationDynamoRepository_RoundTrip(t *testing.T) {
	ctx := context.Background()
	ddb := newFakeDynamo()
	repo := NewQuotationDynamoRepository(ddb, "")

	q := sampleQuotation(t)
	if _, err := repo.Create(ctx, q); err != nil {
		t.Fatalf("create: %v", err)
	}

	t.Run("stores derived figures as decimal strings", func(t *testing.T) {
		raw := ddb.items["q-1"]
		precio, ok := raw["precio"].(*types.AttributeValueMemberS)
		if !ok || precio.Value != "1800.9" {
			t.Fatalf("unexpected precio %#v", raw["precio"])
		}
		if _, ok := raw["utilidad_venta"].(*types.AttributeValueMemberS); !ok {
			t.Fatalf("expected utilidad_venta attribute")
		}
	})

	t.Run("reads back an equal quotation", func(t *testing.T) {
		got, err := repo.GetByID(ctx, "q-1")
		if err != nil {
			t.Fatalf("get: %v", err)
		}
		items := got.LineItems()
		if len(items) != 1 || !items[0].UnitPrice.Equal(dec("1000.50")) || items[0].Quantity != 2 || items[0].ProfitType != entities.ProfitTypeService {
			t.Fatalf("unexpected items %+v", items)
		}
		if got.Condition() == nil || !got.Condition().DiscountPct.Equal(dec("10")) {
			t.Fatalf("expected condition snapshot, got %+v", got.Condition())
		}
		if got.Method() == nil || !got.Method().BaseCommissionPct.Equal(dec("3.5")) {
			t.Fatalf("expected method snapshot, got %+v", got.Method())
		}
		if !got.SalesCommissionPct.Equal(dec("10")) || !got.CreatedAt.Equal(q.CreatedAt) {
			t.Fatalf("unexpected header %+v", got)
		}
		want, _ := q.ComputeTotals()
		have, err := got.ComputeTotals()
		if err != nil || !have.FinalPrice.Equal(want.FinalPrice) {
			t.Fatalf("totals drifted: %v %s vs %s", err, have.FinalPrice, want.FinalPrice)
		}
	})

	t.Run("duplicate create fails", func(t *testing.T) {
		_, err := repo.Create(ctx, q)
		var cfe *types.ConditionalCheckFailedException
		if !errors.As(err, &cfe) {
			t.Fatalf("expected conditional check failure, got %v", err)
		}
	})

	t.Run("approved keeps frozen discount", func(t *testing.T) {
		submitted, err := q.Submit()
		if err != nil {
			t.Fatalf("submit: %v", err)
		}
		approved, err := submitted.Approve()
		if err != nil {
			t.Fatalf("approve: %v", err)
		}
		if _, err := repo.Save(ctx, approved); err != nil {
			t.Fatalf("save: %v", err)
		}
		got, err := repo.GetByID(ctx, "q-1")
		if err != nil {
			t.Fatalf("get: %v", err)
		}
		if !got.IsApproved() || got.DiscountAtFreeze() == nil || !got.DiscountAtFreeze().Equal(dec("10")) {
			t.Fatalf("expected approved with frozen discount, got %+v", got)
		}
	})

	t.Run("save of missing quotation is not found", func(t *testing.T) {
		other := quotation.New("q-404", "Otra", "evt-2", decimal.Zero, time.Now().UTC())
		got, err := repo.Save(ctx, other)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got.ID != "" {
			t.Fatalf("expected empty quotation, got %s", got.ID)
		}
	})

	t.Run("missing id is empty", func(t *testing.T) {
		got, err := repo.GetByID(ctx, "nope")
		if err != nil || got.ID != "" {
			t.Fatalf("expected empty result, got %+v err=%v", got, err)
		}
	})
}

func TestQuotationDynamoRepository_Errors(t *testing.T) {
	ddb := newFakeDynamo()
	ddb.putErr = errors.New("throttled")
	repo := NewQuotationDynamoRepository(ddb, "quotations")

	if _, err := repo.Save(context.Background(), sampleQuotation(t)); err == nil || err.Error() != "throttled" {
		t.Fatalf("expected throttled, got %v", err)
	}
}
