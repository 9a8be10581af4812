package chart

import (
	"bytes"
	"fmt"
	"image/color"
	"io"
	"math"
)

// Slice is one share of a donut.
type Slice struct {
	Label string
	Value float64
	Color color.NRGBA
}

// Arc is the placement of one slice on the ring. Angles are in radians,
// measured clockwise from 12 o'clock.
type Arc struct {
	Slice Slice
	Share float64
	Start float64
	Sweep float64
	// DashArray and DashOffset draw the arc as a dashed stroke of a full
	// circle rotated to start at 12 o'clock.
	DashArray  [2]float64
	DashOffset float64
}

// DonutScene is a ring of arcs sized to fit a size x size square.
type DonutScene struct {
	Size, StrokeWidth float64
	Center            Vec
	Radius            float64
	Circumference     float64
	Arcs              []Arc
	Total             float64
	TotalLabel        string
}

// Donut lays slices out around a ring. Slices with negative or non-finite
// values are skipped. A non-positive total produces no arcs.
func Donut(slices []Slice, size, strokeWidth float64) DonutScene {
	radius := max((size-strokeWidth)/2, 0)
	d := DonutScene{
		Size:          size,
		StrokeWidth:   strokeWidth,
		Center:        Vec{X: size / 2, Y: size / 2},
		Radius:        radius,
		Circumference: 2 * math.Pi * radius,
	}
	for _, s := range slices {
		if finite(s.Value) && s.Value > 0 {
			d.Total += s.Value
		}
	}
	d.TotalLabel = FormatCurrency(d.Total, 0)
	if d.Total <= 0 {
		return d
	}
	var cumulative float64
	for _, s := range slices {
		if !finite(s.Value) || s.Value <= 0 {
			continue
		}
		share := s.Value / d.Total
		length := share * d.Circumference
		var offset float64
		if d.Circumference > 0 {
			offset = math.Mod(d.Circumference-cumulative*d.Circumference, d.Circumference)
		}
		d.Arcs = append(d.Arcs, Arc{
			Slice:      s,
			Share:      share,
			Start:      cumulative * 2 * math.Pi,
			Sweep:      share * 2 * math.Pi,
			DashArray:  [2]float64{length, d.Circumference - length},
			DashOffset: offset,
		})
		cumulative += share
	}
	return d
}

// Ring is a progress indicator drawn as a partial circle over a track.
type Ring struct {
	Size, StrokeWidth float64
	Center            Vec
	Radius            float64
	Circumference     float64
	// Progress is the clamped percentage in [0,100].
	Progress   float64
	Sweep      float64
	DashOffset float64
}

// ProgressRing computes the ring for a percentage. Values outside [0,100]
// are clamped and non-finite values count as zero.
func ProgressRing(progress, size, strokeWidth float64) Ring {
	if !finite(progress) {
		progress = 0
	}
	progress = clamp(progress, 0, 100)
	radius := max((size-strokeWidth)/2, 0)
	c := 2 * math.Pi * radius
	return Ring{
		Size:          size,
		StrokeWidth:   strokeWidth,
		Center:        Vec{X: size / 2, Y: size / 2},
		Radius:        radius,
		Circumference: c,
		Progress:      progress,
		Sweep:         progress / 100 * 2 * math.Pi,
		DashOffset:    c * (1 - progress/100),
	}
}

func writeRingCircle(b *bytes.Buffer, center Vec, radius, width float64, c color.NRGBA, dashes string) {
	fmt.Fprintf(b, `<circle cx="%s" cy="%s" r="%s" fill="none" %s stroke-width="%s"%s transform="rotate(-90 %s %s)"/>`+"\n",
		num(center.X), num(center.Y), num(radius), paintAttr("stroke", c), num(width), dashes, num(center.X), num(center.Y))
}

// WriteSVG encodes the donut with its total in the middle.
func (d DonutScene) WriteSVG(w io.Writer, text color.NRGBA) error {
	var b bytes.Buffer
	fmt.Fprintf(&b, svgHeader, num(d.Size), num(d.Size), num(d.Size), num(d.Size))
	for _, a := range d.Arcs {
		dashes := fmt.Sprintf(` stroke-dasharray="%s %s" stroke-dashoffset="%s"`,
			num(a.DashArray[0]), num(a.DashArray[1]), num(a.DashOffset))
		writeRingCircle(&b, d.Center, d.Radius, d.StrokeWidth, a.Slice.Color, dashes)
	}
	fmt.Fprintf(&b, `<text x="%s" y="%s" %s font-size="24" font-weight="700" text-anchor="middle">%s</text>`+"\n",
		num(d.Center.X), num(d.Center.Y-10), paintAttr("fill", text), escape(d.TotalLabel))
	fmt.Fprintf(&b, `<text x="%s" y="%s" %s font-size="14" text-anchor="middle">Total</text>`+"\n",
		num(d.Center.X), num(d.Center.Y+15), paintAttr("fill", text))
	b.WriteString("</svg>\n")
	_, err := w.Write(b.Bytes())
	return err
}

// WriteSVG encodes the ring over a track circle.
func (r Ring) WriteSVG(w io.Writer, track, fill color.NRGBA) error {
	var b bytes.Buffer
	fmt.Fprintf(&b, svgHeader, num(r.Size), num(r.Size), num(r.Size), num(r.Size))
	writeRingCircle(&b, r.Center, r.Radius, r.StrokeWidth, track, "")
	dashes := fmt.Sprintf(` stroke-dasharray="%s" stroke-dashoffset="%s" stroke-linecap="round"`,
		num(r.Circumference), num(r.DashOffset))
	writeRingCircle(&b, r.Center, r.Radius, r.StrokeWidth, fill, dashes)
	b.WriteString("</svg>\n")
	_, err := w.Write(b.Bytes())
	return err
}

// ArcPoints samples the arc of radius around center that starts at start
// and runs clockwise for sweep radians, angles measured from 12 o'clock.
// At least two points are returned for any non-zero sweep; a full circle
// uses segments+1 points.
func ArcPoints(center Vec, radius, start, sweep float64, segments int) []Vec {
	if !finite(sweep) || sweep == 0 || radius <= 0 {
		return nil
	}
	n := max(1, int(math.Ceil(float64(segments)*math.Abs(sweep)/(2*math.Pi))))
	pts := make([]Vec, n+1)
	for i := range pts {
		a := start + sweep*float64(i)/float64(n)
		pts[i] = Vec{
			X: center.X + radius*math.Sin(a),
			Y: center.Y - radius*math.Cos(a),
		}
	}
	return pts
}
