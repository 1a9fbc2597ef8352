package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/caua/madeira/internal/pricing"
)

// Quote is a priced proposal for a client: a set of dimensioned line items
// plus shipping and a percentage discount.
type Quote struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	Name     string `gorm:"size:255;not null" json:"name"`
	ClientID uint   `gorm:"index;not null" json:"client_id"`
	// ClientName is denormalized so listings survive client edits.
	ClientName string    `gorm:"size:255" json:"client_name"`
	Date       time.Time `gorm:"not null" json:"date"`

	ShippingValue float64 `json:"shipping_value"`
	// Discount is a percentage in [0, 100] applied to the items subtotal only.
	Discount   float64 `json:"discount"`
	TotalValue float64 `json:"total_value"`
	// Notes holds free-text "complemento" printed on the quote document.
	Notes string `gorm:"type:text" json:"notes,omitempty"`

	Items []QuoteItem `gorm:"foreignKey:QuoteID" json:"items"`
}

// ItemsSubtotal sums the line item totals before discount and shipping.
func (q *Quote) ItemsSubtotal() float64 {
	subtotal, _, _ := pricing.QuoteTotals(q.itemTotals(), 0, 0)
	return subtotal
}

// Recalculate recomputes every line item total and the quote total from the
// current items, discount, and shipping. TotalValue is never assigned
// directly anywhere else, so it cannot drift from its components.
func (q *Quote) Recalculate() {
	for i := range q.Items {
		q.Items[i].Recalculate()
	}
	_, _, q.TotalValue = pricing.QuoteTotals(q.itemTotals(), q.ShippingValue, q.Discount)
}

func (q *Quote) itemTotals() []float64 {
	totals := make([]float64, len(q.Items))
	for i, it := range q.Items {
		totals[i] = it.Total
	}
	return totals
}

// QuoteItem is one priced entry within a quote: a quantity of material with
// given dimensions and a price per cubic meter. Width and height are in
// centimeters, length in meters.
type QuoteItem struct {
	ID      string `gorm:"primaryKey;size:36" json:"id"`
	QuoteID uint   `gorm:"index;not null" json:"quote_id"`

	Quantity  int     `gorm:"not null;default:0" json:"quantity"`
	Width     float64 `json:"width"`
	Height    float64 `json:"height"`
	Length    float64 `json:"length"`
	UnitValue float64 `json:"unit_value"`
	// Total is persisted redundantly so stored quotes keep the value they
	// were issued with; it is recomputed only through Recalculate.
	Total float64 `json:"total"`

	Position int `gorm:"default:0" json:"position"`
}

// BeforeCreate assigns a fresh identifier when the repository inserts an
// item that only carried a local placeholder id.
func (it *QuoteItem) BeforeCreate(tx *gorm.DB) error {
	if it.ID == "" {
		it.ID = uuid.NewString()
	}
	return nil
}

// CubicVolume returns the item's volume in cubic meters.
func (it *QuoteItem) CubicVolume() float64 {
	volume, _ := pricing.LineItemTotal(it.Quantity, it.Width, it.Height, it.Length, it.UnitValue)
	return volume
}

// Recalculate updates Total from the item's current fields.
func (it *QuoteItem) Recalculate() {
	_, it.Total = pricing.LineItemTotal(it.Quantity, it.Width, it.Height, it.Length, it.UnitValue)
}
