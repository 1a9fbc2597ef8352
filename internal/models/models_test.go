package models

import (
	"testing"
)

func TestQuoteItem_Recalculate(t *testing.T) {
	item := QuoteItem{Quantity: 10, Width: 20, Height: 5, Length: 3, UnitValue: 1500}
	item.Recalculate()

	// 10 × 20 × 5 × 3 / 10000 = 30 m³ at R$1500/m³
	if got := item.CubicVolume(); got != 30 {
		t.Errorf("CubicVolume() = %f, want 30", got)
	}
	if item.Total != 45000 {
		t.Errorf("Total = %f, want 45000", item.Total)
	}
}

func TestQuoteItem_RecalculateZeroDimension(t *testing.T) {
	item := QuoteItem{Quantity: 10, Width: 0, Height: 5, Length: 3, UnitValue: 1500}
	item.Recalculate()
	if item.Total != 0 {
		t.Errorf("Total = %f, want 0", item.Total)
	}
}

func TestQuoteItem_BeforeCreateAssignsID(t *testing.T) {
	item := QuoteItem{}
	if err := item.BeforeCreate(nil); err != nil {
		t.Fatalf("BeforeCreate: %v", err)
	}
	if item.ID == "" {
		t.Error("expected generated id")
	}

	kept := QuoteItem{ID: "existing"}
	if err := kept.BeforeCreate(nil); err != nil {
		t.Fatalf("BeforeCreate: %v", err)
	}
	if kept.ID != "existing" {
		t.Errorf("ID = %q, want existing id preserved", kept.ID)
	}
}

func TestQuote_Recalculate(t *testing.T) {
	quote := Quote{
		ShippingValue: 50,
		Discount:      10,
		Items: []QuoteItem{
			{Quantity: 1, Width: 10, Height: 10, Length: 10, UnitValue: 100}, // 1 m³ → 100
			{Quantity: 2, Width: 10, Height: 10, Length: 10, UnitValue: 100}, // 2 m³ → 200
		},
	}
	quote.Recalculate()

	if got := quote.ItemsSubtotal(); got != 300 {
		t.Errorf("ItemsSubtotal() = %f, want 300", got)
	}
	// 300 × 0.9 + 50 = 320
	if quote.TotalValue != 320 {
		t.Errorf("TotalValue = %f, want 320", quote.TotalValue)
	}
}

func TestQuote_RecalculateNoItems(t *testing.T) {
	quote := Quote{ShippingValue: 75}
	quote.Recalculate()
	if quote.TotalValue != 75 {
		t.Errorf("TotalValue = %f, want 75", quote.TotalValue)
	}
}

func TestQuote_RecalculateOverwritesStaleTotals(t *testing.T) {
	quote := Quote{
		TotalValue: 999999,
		Items: []QuoteItem{
			{Quantity: 1, Width: 10, Height: 10, Length: 10, UnitValue: 100, Total: 12345},
		},
	}
	quote.Recalculate()

	if quote.Items[0].Total != 100 {
		t.Errorf("item Total = %f, want 100", quote.Items[0].Total)
	}
	if quote.TotalValue != 100 {
		t.Errorf("TotalValue = %f, want 100", quote.TotalValue)
	}
}

func TestClient_IsPersisted(t *testing.T) {
	c := Client{}
	if c.IsPersisted() {
		t.Error("zero id should not be persisted")
	}
	c.ID = 7
	if !c.IsPersisted() {
		t.Error("non-zero id should be persisted")
	}
}
