package repository

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/israelwong/prosocial-app-sub003/internal/domain/entities"

	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

func TestPaymentDynamoRepository(t *testing.T) {
	ctx := context.Background()
	ddb := newFakeDynamo()
	ddb.pageSize = 1
	repo := NewPaymentDynamoRepository(ddb, "")

	now := time.Date(2026, 3, 2, 9, 0, 0, 0, time.UTC)
	for _, p := range []entities.Payment{
		{ID: "p1", QuotationID: "q-1", Amount: dec("300.25"), Status: entities.PaymentStatusPaid, Method: "visa", CreatedAt: now, ProviderPayloadRaw: json.RawMessage(`{"id":1}`)},
		{ID: "p2", QuotationID: "q-1", Amount: dec("100"), Status: entities.PaymentStatusPending, CreatedAt: now},
		{ID: "p3", QuotationID: "q-2", Amount: dec("50"), Status: entities.PaymentStatusPaid, CreatedAt: now},
	} {
		if _, err := repo.Create(ctx, p); err != nil {
			t.Fatalf("create %s: %v", p.ID, err)
		}
	}

	t.Run("lists every page for the quotation", func(t *testing.T) {
		got, err := repo.ListByQuotationID(ctx, "q-1")
		if err != nil {
			t.Fatalf("list: %v", err)
		}
		if len(got) != 2 || got[0].ID != "p1" || got[1].ID != "p2" {
			t.Fatalf("unexpected payments %+v", got)
		}
		if !got[0].Amount.Equal(dec("300.25")) || got[0].Status != entities.PaymentStatusPaid || string(got[0].ProviderPayloadRaw) != `{"id":1}` {
			t.Fatalf("unexpected first payment %+v", got[0])
		}
		if !got[0].CreatedAt.Equal(now) {
			t.Fatalf("unexpected created_at %s", got[0].CreatedAt)
		}
	})

	t.Run("legacy spanish status normalizes", func(t *testing.T) {
		ddb.items["p4"] = map[string]types.AttributeValue{
			"id":           &types.AttributeValueMemberS{Value: "p4"},
			"quotation_id": &types.AttributeValueMemberS{Value: "q-3"},
			"amount":       &types.AttributeValueMemberS{Value: "10"},
			"status":       &types.AttributeValueMemberS{Value: "Pagado"},
		}
		ddb.order = append(ddb.order, "p4")
		got, err := repo.ListByQuotationID(ctx, "q-3")
		if err != nil || len(got) != 1 || got[0].Status != entities.PaymentStatusPaid {
			t.Fatalf("unexpected result %+v err=%v", got, err)
		}
	})

	t.Run("unknown status and bad amount are kept for the balance to flag", func(t *testing.T) {
		ddb.items["p5"] = map[string]types.AttributeValue{
			"id":           &types.AttributeValueMemberS{Value: "p5"},
			"quotation_id": &types.AttributeValueMemberS{Value: "q-4"},
			"amount":       &types.AttributeValueMemberS{Value: "10"},
			"status":       &types.AttributeValueMemberS{Value: "disputed"},
		}
		ddb.items["p6"] = map[string]types.AttributeValue{
			"id":           &types.AttributeValueMemberS{Value: "p6"},
			"quotation_id": &types.AttributeValueMemberS{Value: "q-4"},
			"amount":       &types.AttributeValueMemberS{Value: "ten"},
			"status":       &types.AttributeValueMemberS{Value: "paid"},
		}
		ddb.order = append(ddb.order, "p5", "p6")
		got, err := repo.ListByQuotationID(ctx, "q-4")
		if err != nil || len(got) != 2 {
			t.Fatalf("unexpected result %+v err=%v", got, err)
		}
		for _, p := range got {
			if p.Status.Valid() {
				t.Fatalf("expected invalid status for %s, got %s", p.ID, p.Status)
			}
		}
	})
}

func TestProductionCostDynamoRepository(t *testing.T) {
	ctx := context.Background()
	repo := NewProductionCostDynamoRepository(newFakeDynamo(), "")

	c := entities.ProductionCost{ID: "c1", QuotationID: "q-1", Name: "Flete", Description: "camioneta", Amount: dec("350.50"), CreatedAt: time.Now().UTC()}
	if _, err := repo.Create(ctx, c); err != nil {
		t.Fatalf("create: %v", err)
	}
	if _, err := repo.Create(ctx, c); err == nil {
		t.Fatalf("expected duplicate create to fail")
	}

	got, err := repo.ListByQuotationID(ctx, "q-1")
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(got) != 1 || got[0].Name != "Flete" || !got[0].Amount.Equal(dec("350.50")) {
		t.Fatalf("unexpected costs %+v", got)
	}

	empty, err := repo.ListByQuotationID(ctx, "q-2")
	if err != nil || len(empty) != 0 {
		t.Fatalf("expected no costs, got %+v err=%v", empty, err)
	}
}
