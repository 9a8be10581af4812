package chart

// Vec is a position on the canvas in pixels. Y grows downward.
type Vec struct {
	X, Y float64
}

// Rect is an axis-aligned canvas rectangle.
type Rect struct {
	Min, Max Vec
}

func (r Rect) Dx() float64 { return r.Max.X - r.Min.X }
func (r Rect) Dy() float64 { return r.Max.Y - r.Min.Y }

// Contains reports whether v lies inside r, edges included, allowing eps of
// floating point slack.
func (r Rect) Contains(v Vec, eps float64) bool {
	return v.X >= r.Min.X-eps && v.X <= r.Max.X+eps &&
		v.Y >= r.Min.Y-eps && v.Y <= r.Max.Y+eps
}

// Insets is the padding between the canvas edges and the plot rectangle.
type Insets struct {
	Top, Right, Bottom, Left float64
}

// Common insets. The simulator reserves more room for its wider labels.
var (
	DashboardInsets = Insets{Top: 20, Right: 20, Bottom: 40, Left: 50}
	SimulatorInsets = Insets{Top: 20, Right: 20, Bottom: 40, Left: 60}
)

// Scale is the affine map from a domain onto the plot rectangle of a canvas.
type Scale struct {
	Domain Domain
	Plot   Rect
}

// NewScale builds the scale for a width x height canvas. Insets that leave
// no room collapse the plot to a line rather than inverting it.
func NewScale(d Domain, width, height float64, in Insets) Scale {
	plot := Rect{
		Min: Vec{X: in.Left, Y: in.Top},
		Max: Vec{X: width - in.Right, Y: height - in.Bottom},
	}
	plot.Max.X = max(plot.Max.X, plot.Min.X)
	plot.Max.Y = max(plot.Max.Y, plot.Min.Y)
	return Scale{Domain: d, Plot: plot}
}

// lerp is exact at t=0 and t=1.
func lerp(a, b, t float64) float64 {
	return (1-t)*a + t*b
}

func ratio(v, lo, hi float64) float64 {
	if hi <= lo {
		return 0
	}
	if d := hi - lo; finite(d) {
		return (v - lo) / d
	}
	// The span overflows; halve everything first.
	return (v/2 - lo/2) / (hi/2 - lo/2)
}

// X maps a domain x onto the canvas.
func (s Scale) X(x float64) float64 {
	return lerp(s.Plot.Min.X, s.Plot.Max.X, ratio(x, s.Domain.MinX, s.Domain.MaxX))
}

// Y maps a domain y onto the canvas. Larger values land higher up.
func (s Scale) Y(y float64) float64 {
	return lerp(s.Plot.Max.Y, s.Plot.Min.Y, ratio(y, s.Domain.MinY, s.Domain.MaxY))
}

// Point maps p onto the canvas.
func (s Scale) Point(p Point) Vec {
	return Vec{X: s.X(p.X), Y: s.Y(p.Y)}
}

// Project maps every point of series onto the canvas.
func (s Scale) Project(series Series) []Vec {
	out := make([]Vec, len(series))
	for i, p := range series {
		out[i] = s.Point(p)
	}
	return out
}
