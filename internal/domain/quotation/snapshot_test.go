package quotation

import (
	"errors"
	"testing"

	"github.com/israelwong/prosocial-app-sub003/internal/domain/entities"
)

func TestRestore_ApprovedKeepsFrozenValues(t *testing.T) {
	q := newQuotation(t, item("a", "10000", "6000", 1))
	q, err := q.ApplyCommercialCondition(condition("10", "30", card()), card())
	if err != nil {
		t.Fatalf("apply: %v", err)
	}
	q, _ = q.Submit()
	approved, err := q.Approve()
	if err != nil {
		t.Fatalf("approve: %v", err)
	}

	restored, err := Restore(approved.Snapshot())
	if err != nil {
		t.Fatalf("restore: %v", err)
	}
	if !restored.IsApproved() {
		t.Fatalf("expected approved pricing")
	}
	requireDecimal(t, "final price", mustTotals(t, restored).FinalPrice, dec("9000"))
	requireDecimal(t, "precio", restored.Snapshot().Precio, dec("9000"))

	// Live terms are ignored once approved.
	same := restored.WithLiveTerms(condition("90", "0"), nil)
	requireDecimal(t, "after live refresh", mustTotals(t, same).FinalPrice, dec("9000"))
}

func TestRestore_DraftUsesTerms(t *testing.T) {
	q, err := newQuotation(t, item("a", "200", "100", 1)).ApplyCommercialCondition(condition("50", "0"), nil)
	if err != nil {
		t.Fatalf("apply: %v", err)
	}
	restored, err := Restore(q.Snapshot())
	if err != nil {
		t.Fatalf("restore: %v", err)
	}
	if restored.IsApproved() {
		t.Fatalf("draft must not restore as approved")
	}
	requireDecimal(t, "final price", mustTotals(t, restored).FinalPrice, dec("100"))

	refreshed := restored.WithLiveTerms(condition("25", "0"), nil)
	requireDecimal(t, "refreshed final price", mustTotals(t, refreshed).FinalPrice, dec("150"))
}

func TestRestore_Inconsistent(t *testing.T) {
	d := dec("10")
	_, err := Restore(Snapshot{ID: "q", Status: entities.QuotationStatusDraft, DiscountAtFreeze: &d})
	if !errors.Is(err, ErrInconsistentState) {
		t.Fatalf("expected ErrInconsistentState, got %v", err)
	}

	_, err = Restore(Snapshot{ID: "q", Status: entities.QuotationStatusDraft, LineItems: []entities.FrozenLineItem{{ServiceID: "a", Quantity: 0}}})
	if !errors.Is(err, ErrInconsistentState) {
		t.Fatalf("expected ErrInconsistentState for zero quantity, got %v", err)
	}
}
