package chart

import (
	"image/color"

	"git.sr.ht/~whereswaldon/runway/theme"
)

// Style is how one series is stroked.
type Style struct {
	Color color.NRGBA
	Width float64
}

// Config describes the canvas and how to draw on it. It is read, never
// modified, by Render.
type Config struct {
	Width, Height float64
	Insets        Insets

	Primary   Style
	Secondary Style

	GridColor color.NRGBA
	AxisColor color.NRGBA
	TextColor color.NRGBA
	// GridLines is the number of horizontal guides. Zero means
	// DefaultGridLines.
	GridLines int
	// Dashes is the on/off pattern for projected strokes.
	Dashes   []float64
	FontSize float64
}

// DefaultDashes is the dash pattern for projected strokes.
var DefaultDashes = []float64{6, 4}

// DefaultConfig returns a 350x200 dashboard chart colored from p.
func DefaultConfig(p theme.Palette) Config {
	return Config{
		Width:     350,
		Height:    200,
		Insets:    DashboardInsets,
		Primary:   Style{Color: p.AccentSky, Width: 3},
		Secondary: Style{Color: p.AccentGreen, Width: 3},
		GridColor: p.Border,
		AxisColor: p.Border,
		TextColor: p.TextMuted,
		GridLines: DefaultGridLines,
		Dashes:    DefaultDashes,
		FontSize:  11,
	}
}

// SeriesID names which input series a stroke belongs to.
type SeriesID uint8

const (
	Primary SeriesID = iota
	Secondary
)

func (s SeriesID) String() string {
	if s == Secondary {
		return "secondary"
	}
	return "primary"
}

// Line is a straight styled segment, used for grid lines and axes.
type Line struct {
	From, To Vec
	Color    color.NRGBA
	Width    float64
}

// Stroke is one drawn part of a series. Projected parts carry a dash
// pattern; historical parts have none.
type Stroke struct {
	Series SeriesID
	Future bool
	Path   Path
	Style  Style
	Dashes []float64
}

// Marker is a dot standing in for a series too short to draw a line.
type Marker struct {
	Series SeriesID
	Center Vec
	Radius float64
	Color  color.NRGBA
}

// Label is a piece of text whose right edge and vertical center sit on
// Anchor.
type Label struct {
	Anchor Vec
	Text   string
	Color  color.NRGBA
	Size   float64
}

// Scene is everything needed to draw one chart, listed in paint order:
// grid, axes, strokes, markers, labels.
type Scene struct {
	Width, Height float64
	Scale         Scale
	Grid          []Line
	Axes          []Line
	Strokes       []Stroke
	Markers       []Marker
	Labels        []Label
}

// labelGap is the horizontal distance between a label and the plot.
const labelGap = 8

// Render lays out the primary series and an optional secondary series on
// the canvas described by cfg. The secondary series is emitted first so the
// primary paints over it.
func Render(cfg Config, primary, secondary Series) Scene {
	primary, secondary = primary.Finite(), secondary.Finite()
	domain, _ := ComputeDomain(primary, secondary)
	scale := NewScale(domain, cfg.Width, cfg.Height, cfg.Insets)
	sc := Scene{
		Width:  cfg.Width,
		Height: cfg.Height,
		Scale:  scale,
	}

	places := labelPlaces(domain)
	for _, g := range GridLines(scale, cfg.GridLines) {
		sc.Grid = append(sc.Grid, Line{From: g.From, To: g.To, Color: cfg.GridColor, Width: 1})
		sc.Labels = append(sc.Labels, Label{
			Anchor: Vec{X: scale.Plot.Min.X - labelGap, Y: g.From.Y},
			Text:   FormatCurrency(g.Value, places),
			Color:  cfg.TextColor,
			Size:   cfg.FontSize,
		})
	}
	plot := scale.Plot
	sc.Axes = []Line{
		{From: plot.Min, To: Vec{X: plot.Min.X, Y: plot.Max.Y}, Color: cfg.AxisColor, Width: 1},
		{From: Vec{X: plot.Min.X, Y: plot.Max.Y}, To: plot.Max, Color: cfg.AxisColor, Width: 1},
	}

	dashes := cfg.Dashes
	if len(dashes) == 0 {
		dashes = DefaultDashes
	}
	sc.addSeries(Secondary, secondary, cfg.Secondary, dashes)
	sc.addSeries(Primary, primary, cfg.Primary, dashes)
	return sc
}

func (sc *Scene) addSeries(id SeriesID, s Series, style Style, dashes []float64) {
	switch len(s) {
	case 0:
		return
	case 1:
		sc.Markers = append(sc.Markers, Marker{
			Series: id,
			Center: sc.Scale.Point(s[0]),
			Radius: max(style.Width, 2),
			Color:  style.Color,
		})
		return
	}
	historical, future := Split(s)
	if p := Smooth(sc.Scale.Project(historical)); !p.Empty() {
		sc.Strokes = append(sc.Strokes, Stroke{Series: id, Path: p, Style: style})
	}
	if p := Smooth(sc.Scale.Project(future)); !p.Empty() {
		sc.Strokes = append(sc.Strokes, Stroke{Series: id, Future: true, Path: p, Style: style, Dashes: dashes})
	}
}
