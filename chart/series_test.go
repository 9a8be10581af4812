package chart

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func flagged(flags ...bool) Series {
	s := make(Series, len(flags))
	for i, f := range flags {
		s[i] = Point{X: float64(i + 1), Y: float64(100 * (i + 1)), Historical: f}
	}
	return s
}

func TestSplit(t *testing.T) {
	for _, tc := range []struct {
		name               string
		in                 Series
		historical, future int
		boundaryX          float64
		checkBoundary      bool
	}{
		{name: "empty", in: nil},
		{name: "all historical", in: flagged(true, true, true, true), historical: 4},
		{name: "none historical", in: flagged(false, false, false), future: 3},
		{name: "transition", in: flagged(true, true, false, false), historical: 2, future: 3, boundaryX: 2, checkBoundary: true},
		{name: "single historical then future", in: flagged(true, false), historical: 1, future: 2, boundaryX: 1, checkBoundary: true},
	} {
		t.Run(tc.name, func(t *testing.T) {
			historical, future := Split(tc.in)
			assert.Len(t, historical, tc.historical)
			assert.Len(t, future, tc.future)
			if tc.checkBoundary {
				assert.Equal(t, tc.boundaryX, historical[len(historical)-1].X)
				assert.Equal(t, historical[len(historical)-1], future[0])
			}
		})
	}
}

func TestFinite(t *testing.T) {
	clean := flagged(true, false)
	assert.Equal(t, clean, clean.Finite())

	dirty := Series{
		{X: 1, Y: 1},
		{X: math.NaN(), Y: 2},
		{X: 3, Y: math.Inf(1)},
		{X: 4, Y: 4},
	}
	got := dirty.Finite()
	assert.Equal(t, Series{{X: 1, Y: 1}, {X: 4, Y: 4}}, got)
	assert.Len(t, dirty, 4, "input must not be modified")
}
