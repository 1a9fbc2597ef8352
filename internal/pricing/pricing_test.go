package pricing

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLineItemTotal(t *testing.T) {
	tests := []struct {
		name       string
		quantity   int
		width      float64
		height     float64
		length     float64
		unitValue  float64
		wantVolume float64
		wantTotal  float64
	}{
		// 10 pieces of 20cm × 5cm × 3m at R$1500/m³
		{"catalog example", 10, 20, 5, 3, 1500, 30, 45000},
		{"single piece", 1, 10, 10, 1, 200, 0.01, 2},
		{"zero quantity", 0, 20, 5, 3, 1500, 0, 0},
		{"zero width", 10, 0, 5, 3, 1500, 0, 0},
		{"zero height", 10, 20, 0, 3, 1500, 0, 0},
		{"zero length", 10, 20, 5, 0, 1500, 0, 0},
		{"zero unit value", 10, 20, 5, 3, 0, 30, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			volume, total := LineItemTotal(tt.quantity, tt.width, tt.height, tt.length, tt.unitValue)
			assert.InDelta(t, tt.wantVolume, volume, 1e-9)
			assert.InDelta(t, tt.wantTotal, total, 1e-9)
		})
	}
}

func TestLineItemTotalIsPure(t *testing.T) {
	v1, t1 := LineItemTotal(7, 12.5, 4.2, 2.8, 1234.56)
	for i := 0; i < 100; i++ {
		v, tot := LineItemTotal(7, 12.5, 4.2, 2.8, 1234.56)
		assert.Equal(t, v1, v)
		assert.Equal(t, t1, tot)
	}
}

func TestQuoteTotals(t *testing.T) {
	tests := []struct {
		name           string
		itemTotals     []float64
		shipping       float64
		discount       float64
		wantSubtotal   float64
		wantDiscounted float64
		wantGrand      float64
	}{
		{"ten percent off", []float64{100, 200}, 50, 10, 300, 270, 320},
		{"no discount", []float64{100, 200}, 50, 0, 300, 300, 350},
		{"full discount", []float64{100, 200}, 50, 100, 300, 0, 50},
		{"empty items", nil, 75, 0, 0, 0, 75},
		{"shipping not discounted", []float64{1000}, 100, 50, 1000, 500, 600},
		{"everything zero", nil, 0, 0, 0, 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			subtotal, discounted, grand := QuoteTotals(tt.itemTotals, tt.shipping, tt.discount)
			assert.InDelta(t, tt.wantSubtotal, subtotal, 1e-9)
			assert.InDelta(t, tt.wantDiscounted, discounted, 1e-9)
			assert.InDelta(t, tt.wantGrand, grand, 1e-9)
		})
	}
}

func TestQuoteTotalsAdditivity(t *testing.T) {
	a := []float64{123.45, 67.89}
	b := []float64{1000, 0.55}

	subA, _, _ := QuoteTotals(a, 0, 0)
	subB, _, _ := QuoteTotals(b, 0, 0)
	subAB, _, _ := QuoteTotals(append(append([]float64{}, a...), b...), 0, 0)

	assert.InDelta(t, subA+subB, subAB, 1e-9)
}

func TestQuoteTotalsComposition(t *testing.T) {
	items := []float64{250, 125.5, 88.25}
	for _, discount := range []float64{0, 5, 33.3, 50, 100} {
		for _, shipping := range []float64{0, 49.9, 300} {
			_, discounted, grand := QuoteTotals(items, shipping, discount)
			assert.InDelta(t, discounted+shipping, grand, 1e-9)
		}
	}
}
