package chart

import (
	"strconv"
	"strings"
)

// SegmentOp is the drawing command of a path segment.
type SegmentOp uint8

const (
	// OpMove starts a new subpath at End.
	OpMove SegmentOp = iota
	// OpCube draws a cubic Bézier curve through Ctrl0 and Ctrl1 to End.
	OpCube
)

// Segment is one command of a Path. Control points are unused by OpMove.
type Segment struct {
	Op           SegmentOp
	Ctrl0, Ctrl1 Vec
	End          Vec
}

// Path is a sequence of drawing commands in canvas coordinates.
type Path struct {
	Segments []Segment
}

// Empty reports whether the path draws nothing.
func (p Path) Empty() bool {
	return len(p.Segments) < 2
}

// Points returns the end point of every segment in order.
func (p Path) Points() []Vec {
	out := make([]Vec, len(p.Segments))
	for i, s := range p.Segments {
		out[i] = s.End
	}
	return out
}

// Smooth joins consecutive points with cubic curves whose tangents are
// horizontal at every point. For each pair both control points sit at the
// horizontal midpoint, the first at the height of the left point and the
// second at the height of the right one. The curve therefore never leaves
// the bounding box of its two end points.
//
// Fewer than two points produce an empty path.
func Smooth(pts []Vec) Path {
	if len(pts) < 2 {
		return Path{}
	}
	segs := make([]Segment, 0, len(pts))
	segs = append(segs, Segment{Op: OpMove, End: pts[0]})
	for i := 1; i < len(pts); i++ {
		p1, p2 := pts[i-1], pts[i]
		mid := (p1.X + p2.X) / 2
		segs = append(segs, Segment{
			Op:    OpCube,
			Ctrl0: Vec{X: mid, Y: p1.Y},
			Ctrl1: Vec{X: mid, Y: p2.Y},
			End:   p2,
		})
	}
	return Path{Segments: segs}
}

// SVG returns the path in SVG path data syntax.
func (p Path) SVG() string {
	var b strings.Builder
	for i, s := range p.Segments {
		if i > 0 {
			b.WriteByte(' ')
		}
		switch s.Op {
		case OpMove:
			b.WriteString("M")
			writeVec(&b, s.End)
		case OpCube:
			b.WriteString("C")
			writeVec(&b, s.Ctrl0)
			b.WriteByte(' ')
			writeVec(&b, s.Ctrl1)
			b.WriteByte(' ')
			writeVec(&b, s.End)
		}
	}
	return b.String()
}

func num(f float64) string {
	return strconv.FormatFloat(f, 'f', 2, 64)
}

func writeVec(b *strings.Builder, v Vec) {
	b.WriteString(num(v.X))
	b.WriteByte(',')
	b.WriteString(num(v.Y))
}
