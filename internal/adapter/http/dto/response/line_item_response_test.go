package response

import (
	"testing"

	"eventpilot/internal/domain/entities"
)

func TestFromLineItemList(t *testing.T) {
	items := []entities.LineItem{
		{ID: "li-1", Quantity: 2, UnitPrice: 10, SortOrder: 0},
		{ID: "li-2", Quantity: 1, UnitPrice: 5, SortOrder: 1},
		{ID: "li-fee", Name: "Service Fee", Quantity: 1, UnitPrice: 0.88, IsServiceFee: true, SortOrder: 2},
	}

	res := FromLineItemList(items)
	if len(res.Items) != 3 {
		t.Fatalf("expected 3 items, got %d", len(res.Items))
	}
	if res.Subtotal != 25 {
		t.Fatalf("expected subtotal 25, got %v", res.Subtotal)
	}
	if res.ServiceFee != 0.88 {
		t.Fatalf("expected fee 0.88, got %v", res.ServiceFee)
	}
	if res.Total != 25.88 {
		t.Fatalf("expected total 25.88, got %v", res.Total)
	}
	if res.Items[0].Amount != 20 {
		t.Fatalf("expected extended amount 20, got %v", res.Items[0].Amount)
	}
}

func TestFromLineItemList_Empty(t *testing.T) {
	res := FromLineItemList(nil)
	if res.Items == nil || len(res.Items) != 0 {
		t.Fatalf("expected empty slice, got %+v", res.Items)
	}
	if res.Subtotal != 0 || res.ServiceFee != 0 || res.Total != 0 {
		t.Fatalf("expected zero totals, got %+v", res)
	}
}
