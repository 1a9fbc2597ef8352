package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"
	"strings"

	"github.com/caua/madeira/internal/format"
	"github.com/caua/madeira/internal/httpx"
	"github.com/caua/madeira/internal/pricing"
	"github.com/caua/madeira/internal/validation"
)

// PricingHandler exposes the calculation engine directly, so a thin client
// can recompute totals on every field change without persisting anything.
type PricingHandler struct{}

func NewPricingHandler() *PricingHandler {
	return &PricingHandler{}
}

// Item: POST /pricing/item (form-encoded). Numeric fields accept either
// comma or dot decimals, the way they are typed in the entry form.
func (h *PricingHandler) Item(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		httpx.JSONError(w, http.StatusBadRequest, "invalid_form", nil)
		return
	}

	v := make(validation.Violations)

	quantity := 0
	if raw := strings.TrimSpace(r.PostFormValue("quantity")); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			v["quantity"] = "invalid_number"
		} else {
			quantity = parsed
		}
	}
	width := parseField(r, "width", v)
	height := parseField(r, "height", v)
	length := parseField(r, "length", v)
	unitValue := parseField(r, "unit_value", v)

	validation.NonNegativeInt("quantity", quantity, v)
	validation.NonNegative("width", width, v)
	validation.NonNegative("height", height, v)
	validation.NonNegative("length", length, v)
	validation.NonNegative("unit_value", unitValue, v)
	if !v.Empty() {
		httpx.JSONError(w, http.StatusUnprocessableEntity, "validation_failed", v)
		return
	}

	volume, total := pricing.LineItemTotal(quantity, width, height, length, unitValue)
	httpx.JSON(w, http.StatusOK, map[string]any{
		"cubic_volume": volume,
		"total":        total,
	})
}

func parseField(r *http.Request, field string, v validation.Violations) float64 {
	value, err := format.ParseDecimal(r.PostFormValue(field))
	if err != nil {
		v[field] = "invalid_number"
	}
	return value
}

type quoteTotalsPayload struct {
	ItemTotals    []float64 `json:"item_totals"`
	ShippingValue float64   `json:"shipping_value"`
	Discount      float64   `json:"discount"`
}

// Quote: POST /pricing/quote (JSON).
func (h *PricingHandler) Quote(w http.ResponseWriter, r *http.Request) {
	var p quoteTotalsPayload
	if err := json.NewDecoder(r.Body).Decode(&p); err != nil {
		httpx.JSONError(w, http.StatusBadRequest, "invalid_json", nil)
		return
	}

	v := make(validation.Violations)
	validation.NonNegative("shipping_value", p.ShippingValue, v)
	validation.RangeFloat("discount", p.Discount, 0, 100, v)
	for i, t := range p.ItemTotals {
		validation.NonNegative("item_totals["+strconv.Itoa(i)+"]", t, v)
	}
	if !v.Empty() {
		httpx.JSONError(w, http.StatusUnprocessableEntity, "validation_failed", v)
		return
	}

	subtotal, discounted, grand := pricing.QuoteTotals(p.ItemTotals, p.ShippingValue, p.Discount)
	httpx.JSON(w, http.StatusOK, map[string]any{
		"items_subtotal":      subtotal,
		"discounted_subtotal": discounted,
		"grand_total":         grand,
	})
}
