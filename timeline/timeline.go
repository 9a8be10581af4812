// Package timeline decodes balance projections and spending breakdowns
// from JSON documents and turns them into chart input.
package timeline

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/shopspring/decimal"

	"git.sr.ht/~whereswaldon/runway/chart"
	"git.sr.ht/~whereswaldon/runway/theme"
)

// ErrEmpty is returned when a document has no balance points at all.
var ErrEmpty = errors.New("timeline has no points")

// Point is one projected or recorded balance.
type Point struct {
	Date         string          `json:"date"`
	Balance      decimal.Decimal `json:"balance"`
	Week         int             `json:"week"`
	IsHistorical bool            `json:"is_historical"`
}

// ComparisonStats summarises how far apart the two paths end up.
type ComparisonStats struct {
	BalanceDifference decimal.Decimal `json:"balance_difference"`
	SavingsPotential  decimal.Decimal `json:"savings_potential"`
	DaysWithCushion   int             `json:"days_with_cushion"`
	EventsAffordable  int             `json:"events_affordable"`
}

// Breakdown is the spending in one category.
type Breakdown struct {
	Category   string          `json:"category"`
	Amount     decimal.Decimal `json:"amount"`
	Percentage float64         `json:"percentage"`
}

// Document is a timeline as served by the projections API: the balance on
// the current spending pace, the balance following the suggested plan, and
// optionally where the money went recently.
type Document struct {
	OnPace          []Point         `json:"on_pace"`
	Plan            []Point         `json:"aadil_plan"`
	ComparisonStats ComparisonStats `json:"comparison_stats"`
	Breakdown       []Breakdown     `json:"last_30_days_breakdown,omitempty"`
}

// Decode reads one document from r.
func Decode(r io.Reader) (Document, error) {
	var doc Document
	if err := json.NewDecoder(r).Decode(&doc); err != nil {
		return Document{}, fmt.Errorf("failed decoding timeline: %w", err)
	}
	if len(doc.OnPace) == 0 && len(doc.Plan) == 0 {
		return doc, ErrEmpty
	}
	return doc, nil
}

// Load decodes the document stored at path.
func Load(path string) (Document, error) {
	f, err := os.Open(path)
	if err != nil {
		return Document{}, err
	}
	defer f.Close()
	doc, err := Decode(f)
	if err != nil {
		return doc, fmt.Errorf("%s: %w", path, err)
	}
	return doc, nil
}

func toSeries(points []Point) chart.Series {
	if len(points) == 0 {
		return nil
	}
	byWeek := false
	for _, p := range points {
		if p.Week != 0 {
			byWeek = true
			break
		}
	}
	s := make(chart.Series, len(points))
	for i, p := range points {
		x := float64(i + 1)
		if byWeek {
			x = float64(p.Week)
		}
		s[i] = chart.Point{
			X:          x,
			Y:          p.Balance.InexactFloat64(),
			Historical: p.IsHistorical,
		}
	}
	return s
}

// Series returns the on-pace balance as the primary series and the plan
// as the secondary one. Points are placed by week when any point in the
// series has one, otherwise by position.
func (d Document) Series() (primary, secondary chart.Series) {
	return toSeries(d.OnPace), toSeries(d.Plan)
}

// Slices returns the spending breakdown as donut slices, colored from the
// palette's accents in order.
func (d Document) Slices(p theme.Palette) []chart.Slice {
	accents := p.Accents()
	out := make([]chart.Slice, 0, len(d.Breakdown))
	for i, b := range d.Breakdown {
		out = append(out, chart.Slice{
			Label: b.Category,
			Value: b.Amount.InexactFloat64(),
			Color: accents[i%len(accents)],
		})
	}
	return out
}
