package chart

import "math"

// YPadding is the fraction of the vertical span added above and below
// the data.
const YPadding = 0.1

// Domain is the data-space rectangle that is mapped onto the plot.
type Domain struct {
	MinX, MaxX float64
	MinY, MaxY float64
}

// unitDomain is used when there is nothing to measure.
var unitDomain = Domain{MinX: 0, MaxX: 1, MinY: 0, MaxY: 1}

// ComputeDomain measures the union of all finite points across series and
// pads the Y range by YPadding on each side. X is not padded.
//
// A zero-width axis is widened by one unit on each side before padding, so
// the returned domain always has MaxX > MinX and MaxY > MinY. When there is
// no finite point at all the unit square is returned along with false.
func ComputeDomain(series ...Series) (Domain, bool) {
	var (
		d     Domain
		found bool
	)
	for _, s := range series {
		for _, p := range s {
			if !finite(p.X) || !finite(p.Y) {
				continue
			}
			if !found {
				d = Domain{MinX: p.X, MaxX: p.X, MinY: p.Y, MaxY: p.Y}
				found = true
				continue
			}
			d.MinX = min(d.MinX, p.X)
			d.MaxX = max(d.MaxX, p.X)
			d.MinY = min(d.MinY, p.Y)
			d.MaxY = max(d.MaxY, p.Y)
		}
	}
	if !found {
		return unitDomain, false
	}
	d.MinX, d.MaxX = widen(d.MinX, d.MaxX)
	d.MinY, d.MaxY = widen(d.MinY, d.MaxY)
	pad := span(d.MinY, d.MaxY) * YPadding
	d.MinY = bounded(d.MinY - pad)
	d.MaxY = bounded(d.MaxY + pad)
	return d, true
}

// span returns hi-lo, saturating at math.MaxFloat64 when the difference
// overflows.
func span(lo, hi float64) float64 {
	if d := hi - lo; finite(d) {
		return d
	}
	return math.MaxFloat64
}

// bounded clamps v to the finite float64 range.
func bounded(v float64) float64 {
	return max(-math.MaxFloat64, min(math.MaxFloat64, v))
}

// widen gives a degenerate interval an artificial span. Values too large
// for a one unit step to register are widened relative to their magnitude.
func widen(lo, hi float64) (float64, float64) {
	if hi > lo {
		return lo, hi
	}
	step := max(1, math.Abs(lo)*1e-9)
	return bounded(lo - step), bounded(hi + step)
}
