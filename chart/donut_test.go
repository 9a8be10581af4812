package chart

import (
	"bytes"
	"image/color"
	"math"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDonut(t *testing.T) {
	red := color.NRGBA{R: 0xff, A: 0xff}
	blue := color.NRGBA{B: 0xff, A: 0xff}
	d := Donut([]Slice{
		{Label: "dining", Value: 100, Color: red},
		{Label: "broken", Value: math.NaN()},
		{Label: "refund", Value: -50},
		{Label: "rent", Value: 300, Color: blue},
	}, 200, 40)

	assert.Equal(t, 80.0, d.Radius)
	assert.Equal(t, Vec{X: 100, Y: 100}, d.Center)
	assert.InDelta(t, 2*math.Pi*80, d.Circumference, 1e-9)
	assert.Equal(t, 400.0, d.Total)
	assert.Equal(t, "$400", d.TotalLabel)
	require.Len(t, d.Arcs, 2)

	first, second := d.Arcs[0], d.Arcs[1]
	assert.Equal(t, "dining", first.Slice.Label)
	assert.InDelta(t, 0.25, first.Share, 1e-12)
	assert.InDelta(t, 0, first.Start, 1e-12)
	assert.InDelta(t, math.Pi/2, first.Sweep, 1e-12)
	assert.InDelta(t, 0, first.DashOffset, 1e-9)
	assert.InDelta(t, d.Circumference, first.DashArray[0]+first.DashArray[1], 1e-9)

	assert.InDelta(t, math.Pi/2, second.Start, 1e-12)
	assert.InDelta(t, 3*math.Pi/2, second.Sweep, 1e-12)
	assert.InDelta(t, 0.75*d.Circumference, second.DashOffset, 1e-9)
	assert.InDelta(t, 2*math.Pi, second.Start+second.Sweep, 1e-12)
}

func TestDonutEmpty(t *testing.T) {
	d := Donut(nil, 120, 20)
	assert.Empty(t, d.Arcs)
	assert.Equal(t, "$0", d.TotalLabel)

	d = Donut([]Slice{{Value: 10}}, 10, 40)
	assert.Equal(t, 0.0, d.Radius)
	require.Len(t, d.Arcs, 1)
	assert.Equal(t, 0.0, d.Arcs[0].DashOffset)
}

func TestProgressRing(t *testing.T) {
	for _, tc := range []struct {
		in, progress float64
	}{
		{in: 25, progress: 25},
		{in: 150, progress: 100},
		{in: -5, progress: 0},
		{in: math.NaN(), progress: 0},
	} {
		r := ProgressRing(tc.in, 80, 8)
		assert.Equal(t, tc.progress, r.Progress)
		assert.Equal(t, 36.0, r.Radius)
		assert.InDelta(t, tc.progress/100*2*math.Pi, r.Sweep, 1e-12)
		assert.InDelta(t, r.Circumference*(1-tc.progress/100), r.DashOffset, 1e-9)
	}
}

func TestDonutAndRingSVG(t *testing.T) {
	text := color.NRGBA{A: 0xff}
	var buf bytes.Buffer
	d := Donut([]Slice{{Value: 1, Color: text}, {Value: 3, Color: text}}, 200, 40)
	require.NoError(t, d.WriteSVG(&buf, text))
	assert.Equal(t, 2, strings.Count(buf.String(), "<circle "))
	assert.Contains(t, buf.String(), ">$4</text>")
	assert.Contains(t, buf.String(), `transform="rotate(-90 100.00 100.00)"`)

	buf.Reset()
	r := ProgressRing(50, 80, 8)
	require.NoError(t, r.WriteSVG(&buf, color.NRGBA{R: 0xe5, G: 0xe5, B: 0xea, A: 0xff}, text))
	assert.Equal(t, 2, strings.Count(buf.String(), "<circle "))
	assert.Contains(t, buf.String(), `stroke="#E5E5EA"`)
}

func TestArcPoints(t *testing.T) {
	c := Vec{X: 100, Y: 100}
	pts := ArcPoints(c, 50, 0, math.Pi/2, 64)
	require.Len(t, pts, 17)
	assert.InDelta(t, 100, pts[0].X, 1e-9)
	assert.InDelta(t, 50, pts[0].Y, 1e-9)
	// Clockwise from 12 o'clock ends at 3 o'clock.
	assert.InDelta(t, 150, pts[16].X, 1e-9)
	assert.InDelta(t, 100, pts[16].Y, 1e-9)
	for _, p := range pts {
		assert.InDelta(t, 50, math.Hypot(p.X-c.X, p.Y-c.Y), 1e-9)
	}

	assert.Len(t, ArcPoints(c, 50, 0, 2*math.Pi, 64), 65)
	assert.Len(t, ArcPoints(c, 50, 1, 0.001, 64), 2)
	assert.Nil(t, ArcPoints(c, 50, 0, 0, 64))
	assert.Nil(t, ArcPoints(c, 0, 0, 1, 64))
}
