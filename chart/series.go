// Package chart turns one or two numeric series into plot geometry: a
// scale from data space onto a pixel canvas, smooth cubic paths split into
// historical and projected parts, grid lines and axis labels.
//
// Everything here is a pure function of its inputs. Malformed input
// degrades to less geometry rather than an error.
package chart

import "math"

// Point is one sample of a series. Historical marks samples that have
// already happened, as opposed to projected ones.
type Point struct {
	X, Y       float64
	Historical bool
}

// Series is an ordered run of points. Ascending X order is assumed but
// never checked.
type Series []Point

func finite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}

// Finite returns the points of s whose coordinates are both finite. When
// every point is finite s itself is returned.
func (s Series) Finite() Series {
	for i, p := range s {
		if finite(p.X) && finite(p.Y) {
			continue
		}
		out := make(Series, i, len(s))
		copy(out, s[:i])
		for _, p := range s[i+1:] {
			if finite(p.X) && finite(p.Y) {
				out = append(out, p)
			}
		}
		return out
	}
	return s
}

// Split partitions s on the Historical flag. When both halves are
// non-empty the last historical point is repeated as the first future
// point, so the solid and dashed strokes meet without a gap.
func Split(s Series) (historical, future Series) {
	for _, p := range s {
		if p.Historical {
			historical = append(historical, p)
		} else {
			future = append(future, p)
		}
	}
	if len(historical) > 0 && len(future) > 0 {
		future = append(Series{historical[len(historical)-1]}, future...)
	}
	return historical, future
}
