// Package pricing computes cubic volume and monetary totals for lumber quotes.
//
// The unit convention is fixed across the whole application, including the
// PDF export: width and height are entered in centimeters, length in meters,
// and the unit value is a price per cubic meter. Quantity is folded into the
// volume, so a zero quantity yields a zero volume and a zero total.
package pricing

// LineItemTotal returns the cubic volume (m³) and the monetary total for a
// single line item:
//
//	cubicVolume = quantity × width(cm) × height(cm) × length(m) / 10000
//	total       = cubicVolume × unitValue
//
// The function is pure and accepts any numeric input; zero in any factor
// yields zero. Rejecting negative input is the caller's validation concern.
func LineItemTotal(quantity int, width, height, length, unitValue float64) (cubicVolume, total float64) {
	cubicVolume = float64(quantity) * width * height * length / 10000
	total = cubicVolume * unitValue
	return cubicVolume, total
}

// QuoteTotals aggregates line item totals into quote-level figures. The
// discount percentage applies to the items subtotal only; shipping is added
// after the discount:
//
//	itemsSubtotal      = Σ itemTotals
//	discountedSubtotal = itemsSubtotal × (1 − discountPercent/100)
//	grandTotal         = discountedSubtotal + shippingValue
//
// discountPercent is expected in [0, 100]; range checking happens at the
// validation layer before this is called.
func QuoteTotals(itemTotals []float64, shippingValue, discountPercent float64) (itemsSubtotal, discountedSubtotal, grandTotal float64) {
	for _, t := range itemTotals {
		itemsSubtotal += t
	}
	discountedSubtotal = itemsSubtotal
	if discountPercent > 0 {
		discountedSubtotal = itemsSubtotal * (1 - discountPercent/100)
	}
	grandTotal = discountedSubtotal + shippingValue
	return itemsSubtotal, discountedSubtotal, grandTotal
}
