package chart

import "golang.org/x/exp/constraints"

// DefaultGridLines is the number of horizontal guides drawn when the
// configuration does not ask for a specific count.
const DefaultGridLines = 5

// MaxGridLines is the most grid lines GridLines will draw.
const MaxGridLines = 64

func clamp[T constraints.Ordered](v, lo, hi T) T {
	return min(max(v, lo), hi)
}

// GridLine is a horizontal guide across the plot and the domain value it
// marks.
type GridLine struct {
	From, To Vec
	Value    float64
}

// GridLines spaces count guides evenly from the top of the plot to the
// bottom. Values descend from the domain's MaxY to its MinY. The count is
// clamped to [2, 64]; zero or less selects DefaultGridLines.
func GridLines(s Scale, count int) []GridLine {
	if count <= 0 {
		count = DefaultGridLines
	}
	count = clamp(count, 2, MaxGridLines)
	lines := make([]GridLine, count)
	for i := range lines {
		t := float64(i) / float64(count-1)
		y := lerp(s.Plot.Min.Y, s.Plot.Max.Y, t)
		lines[i] = GridLine{
			From:  Vec{X: s.Plot.Min.X, Y: y},
			To:    Vec{X: s.Plot.Max.X, Y: y},
			Value: lerp(s.Domain.MaxY, s.Domain.MinY, t),
		}
	}
	return lines
}
