package chart

import (
	"strings"

	"github.com/shopspring/decimal"
)

// FormatCurrency renders v as a dollar amount rounded to places decimals
// with comma thousands separators, e.g. "$1,850" or "-$12.50".
func FormatCurrency(v float64, places int32) string {
	if !finite(v) {
		return "–"
	}
	d := decimal.NewFromFloat(v).Round(places)
	neg := d.IsNegative()
	whole, frac, _ := strings.Cut(d.Abs().StringFixed(places), ".")

	var b strings.Builder
	if neg {
		b.WriteByte('-')
	}
	b.WriteByte('$')
	lead := len(whole) % 3
	if lead == 0 {
		lead = 3
	}
	b.WriteString(whole[:lead])
	for i := lead; i < len(whole); i += 3 {
		b.WriteByte(',')
		b.WriteString(whole[i : i+3])
	}
	if frac != "" {
		b.WriteByte('.')
		b.WriteString(frac)
	}
	return b.String()
}

// labelPlaces picks cents for narrow domains where whole dollars would
// repeat the same label.
func labelPlaces(d Domain) int32 {
	if d.MaxY-d.MinY < 10 {
		return 2
	}
	return 0
}
