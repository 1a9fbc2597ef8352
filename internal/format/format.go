// Package format parses and renders numbers the way Brazilian users type and
// read them: comma as the decimal separator, optional dot as the thousands
// separator.
package format

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// ParseDecimal parses user-entered numeric text. It accepts either comma or
// dot as the decimal separator ("10,5" and "10.5" both parse to 10.5) and
// tolerates dot thousands separators when a comma is present ("1.234,56").
// Empty input parses as zero.
func ParseDecimal(s string) (float64, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, nil
	}
	normalized := s
	if strings.Contains(s, ",") {
		normalized = strings.ReplaceAll(normalized, ".", "")
		normalized = strings.ReplaceAll(normalized, ",", ".")
	}
	d, err := decimal.NewFromString(normalized)
	if err != nil {
		return 0, fmt.Errorf("invalid number %q", s)
	}
	f, _ := d.Float64()
	return f, nil
}

// Money renders a monetary value with two decimals: 1234.5 → "1234,50".
func Money(v float64) string {
	return strings.Replace(decimal.NewFromFloat(v).StringFixed(2), ".", ",", 1)
}

// Currency renders a monetary value with the R$ prefix.
func Currency(v float64) string {
	return "R$ " + Money(v)
}

// Dimension renders a dimensional value with three decimals: 0.025 → "0,025".
func Dimension(v float64) string {
	return strings.Replace(decimal.NewFromFloat(v).StringFixed(3), ".", ",", 1)
}
