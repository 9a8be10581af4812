package main

import (
	"image"
	"image/color"
	"math"

	"gioui.org/f32"
	"gioui.org/layout"
	"gioui.org/op"
	"gioui.org/op/clip"
	"gioui.org/op/paint"
	"gioui.org/unit"
	"gioui.org/widget/material"
	"gioui.org/x/stroke"

	"git.sr.ht/~whereswaldon/runway/chart"
)

func rec(gtx C, w layout.Widget) (D, op.CallOp) {
	macro := op.Record(gtx.Ops)
	dims := w(gtx)
	call := macro.Stop()
	return dims, call
}

func pt(v chart.Vec) f32.Point {
	return f32.Pt(float32(v.X), float32(v.Y))
}

// ChartView draws a projection chart into whatever space it is given. The
// configured geometry is in Dp and is converted to pixels every frame.
type ChartView struct {
	Config chart.Config
}

// scaled returns the configuration sized to the current constraints.
func (v *ChartView) scaled(gtx C) chart.Config {
	cfg := v.Config
	px := float64(gtx.Metric.PxPerDp)
	cfg.Width = float64(gtx.Constraints.Max.X)
	cfg.Height = float64(gtx.Constraints.Max.Y)
	cfg.Insets = chart.Insets{
		Top:    cfg.Insets.Top * px,
		Right:  cfg.Insets.Right * px,
		Bottom: cfg.Insets.Bottom * px,
		Left:   cfg.Insets.Left * px,
	}
	cfg.Primary.Width *= px
	cfg.Secondary.Width *= px
	cfg.Dashes = make([]float64, len(v.Config.Dashes))
	for i, d := range v.Config.Dashes {
		cfg.Dashes[i] = d * px
	}
	return cfg
}

func strokePath(p chart.Path) stroke.Path {
	segs := make([]stroke.Segment, 0, len(p.Segments))
	for _, s := range p.Segments {
		switch s.Op {
		case chart.OpMove:
			segs = append(segs, stroke.MoveTo(pt(s.End)))
		case chart.OpCube:
			segs = append(segs, stroke.CubeTo(pt(s.Ctrl0), pt(s.Ctrl1), pt(s.End)))
		}
	}
	return stroke.Path{Segments: segs}
}

func polyline(pts []chart.Vec) stroke.Path {
	segs := make([]stroke.Segment, 0, len(pts))
	for i, p := range pts {
		if i == 0 {
			segs = append(segs, stroke.MoveTo(pt(p)))
		} else {
			segs = append(segs, stroke.LineTo(pt(p)))
		}
	}
	return stroke.Path{Segments: segs}
}

func dashes(d []float64) stroke.Dashes {
	out := stroke.Dashes{Dashes: make([]float32, len(d))}
	for i, v := range d {
		out.Dashes[i] = float32(v)
	}
	return out
}

func drawLine(gtx C, l chart.Line, px float32) {
	shape := stroke.Shape{
		Path:  polyline([]chart.Vec{l.From, l.To}),
		Width: float32(l.Width) * px,
		Cap:   stroke.FlatCap,
	}
	paint.FillShape(gtx.Ops, l.Color, shape.Op(gtx.Ops))
}

func drawStroke(gtx C, s chart.Stroke) {
	shape := stroke.Shape{
		Path:  strokePath(s.Path),
		Width: float32(s.Style.Width),
		Cap:   stroke.RoundCap,
		Join:  stroke.RoundJoin,
	}
	if s.Future {
		shape.Dashes = dashes(s.Dashes)
	}
	paint.FillShape(gtx.Ops, s.Style.Color, shape.Op(gtx.Ops))
}

func drawMarker(gtx C, m chart.Marker) {
	r := int(math.Ceil(m.Radius))
	c := image.Pt(int(m.Center.X), int(m.Center.Y))
	paint.FillShape(gtx.Ops, m.Color, clip.Ellipse{
		Min: c.Sub(image.Pt(r, r)),
		Max: c.Add(image.Pt(r, r)),
	}.Op(gtx.Ops))
}

// drawLabel places l so that its right edge and vertical center sit on the
// label's anchor.
func (v *ChartView) drawLabel(gtx C, th *material.Theme, l chart.Label) {
	lbl := material.Label(th, unit.Sp(v.Config.FontSize), l.Text)
	lbl.Color = l.Color
	lbl.MaxLines = 1
	gtx.Constraints.Min = image.Point{}
	dims, call := rec(gtx, lbl.Layout)
	defer op.Offset(image.Point{
		X: int(l.Anchor.X) - dims.Size.X,
		Y: int(l.Anchor.Y) - dims.Size.Y/2,
	}).Push(gtx.Ops).Pop()
	call.Add(gtx.Ops)
}

// Layout renders primary and secondary into the available space.
func (v *ChartView) Layout(gtx C, th *material.Theme, primary, secondary chart.Series) D {
	sc := chart.Render(v.scaled(gtx), primary, secondary)
	px := gtx.Metric.PxPerDp
	for _, l := range sc.Grid {
		drawLine(gtx, l, px)
	}
	for _, l := range sc.Axes {
		drawLine(gtx, l, px)
	}
	for _, s := range sc.Strokes {
		drawStroke(gtx, s)
	}
	for _, m := range sc.Markers {
		drawMarker(gtx, m)
	}
	for _, l := range sc.Labels {
		v.drawLabel(gtx, th, l)
	}
	return D{Size: gtx.Constraints.Max}
}

// DonutView draws a spending breakdown as a ring with a legend beside it.
type DonutView struct {
	StrokeWidth unit.Dp
	TextColor   color.NRGBA
}

const arcSegments = 96

func (d *DonutView) layoutRing(gtx C, th *material.Theme, slices []chart.Slice) D {
	size := min(gtx.Constraints.Max.X, gtx.Constraints.Max.Y)
	donut := chart.Donut(slices, float64(size), float64(gtx.Dp(d.StrokeWidth)))
	for _, a := range donut.Arcs {
		pts := chart.ArcPoints(donut.Center, donut.Radius, a.Start, a.Sweep, arcSegments)
		if len(pts) < 2 {
			continue
		}
		shape := stroke.Shape{
			Path:  polyline(pts),
			Width: float32(donut.StrokeWidth),
			Cap:   stroke.FlatCap,
			Join:  stroke.RoundJoin,
		}
		paint.FillShape(gtx.Ops, a.Slice.Color, shape.Op(gtx.Ops))
	}

	gtx.Constraints = layout.Exact(image.Pt(size, size))
	layout.Center.Layout(gtx, func(gtx C) D {
		return layout.Flex{Axis: layout.Vertical, Alignment: layout.Middle}.Layout(gtx,
			layout.Rigid(func(gtx C) D {
				l := material.H5(th, donut.TotalLabel)
				l.Color = d.TextColor
				return l.Layout(gtx)
			}),
			layout.Rigid(func(gtx C) D {
				l := material.Body2(th, "Total")
				l.Color = d.TextColor
				return l.Layout(gtx)
			}),
		)
	})
	return D{Size: image.Pt(size, size)}
}

func (d *DonutView) layoutLegend(gtx C, th *material.Theme, slices []chart.Slice) D {
	children := make([]layout.FlexChild, 0, len(slices))
	for _, s := range slices {
		s := s
		children = append(children, layout.Rigid(func(gtx C) D {
			return layout.UniformInset(4).Layout(gtx, func(gtx C) D {
				return layout.Flex{Alignment: layout.Middle}.Layout(gtx,
					layout.Rigid(func(gtx C) D {
						sz := image.Pt(gtx.Dp(10), gtx.Dp(10))
						paint.FillShape(gtx.Ops, s.Color, clip.Ellipse{Max: sz}.Op(gtx.Ops))
						return D{Size: sz}
					}),
					layout.Rigid(layout.Spacer{Width: 8}.Layout),
					layout.Rigid(material.Body1(th, s.Label).Layout),
					layout.Rigid(layout.Spacer{Width: 8}.Layout),
					layout.Rigid(material.Body2(th, chart.FormatCurrency(s.Value, 2)).Layout),
				)
			})
		}))
	}
	return layout.Flex{Axis: layout.Vertical}.Layout(gtx, children...)
}

// Layout draws the ring on the left and the legend on the right.
func (d *DonutView) Layout(gtx C, th *material.Theme, slices []chart.Slice) D {
	if len(slices) == 0 {
		return layout.Center.Layout(gtx, material.Body1(th, "No spending breakdown in this timeline.").Layout)
	}
	return layout.Flex{Alignment: layout.Middle, Spacing: layout.SpaceAround}.Layout(gtx,
		layout.Flexed(1, func(gtx C) D {
			return layout.UniformInset(16).Layout(gtx, func(gtx C) D {
				return d.layoutRing(gtx, th, slices)
			})
		}),
		layout.Rigid(func(gtx C) D {
			return d.layoutLegend(gtx, th, slices)
		}),
	)
}
