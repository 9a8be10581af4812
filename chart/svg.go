package chart

import (
	"bytes"
	"encoding/xml"
	"fmt"
	"image/color"
	"io"
	"strings"

	"git.sr.ht/~whereswaldon/runway/theme"
)

const svgHeader = `<svg xmlns="http://www.w3.org/2000/svg" width="%s" height="%s" viewBox="0 0 %s %s">` + "\n"

// paintAttr renders c as an SVG paint attribute plus its opacity when c is
// not opaque.
func paintAttr(name string, c color.NRGBA) string {
	hex := theme.Hex(color.NRGBA{R: c.R, G: c.G, B: c.B, A: 0xff})
	if c.A == 0xff {
		return fmt.Sprintf(`%s="%s"`, name, hex)
	}
	return fmt.Sprintf(`%s="%s" %s-opacity="%s"`, name, hex, name, num(float64(c.A)/0xff))
}

func dashAttr(dashes []float64) string {
	parts := make([]string, len(dashes))
	for i, d := range dashes {
		parts[i] = num(d)
	}
	return strings.Join(parts, " ")
}

func escape(s string) string {
	var b strings.Builder
	_ = xml.EscapeText(&b, []byte(s))
	return b.String()
}

func writeLine(b *bytes.Buffer, l Line) {
	fmt.Fprintf(b, `<line x1="%s" y1="%s" x2="%s" y2="%s" %s stroke-width="%s"/>`+"\n",
		num(l.From.X), num(l.From.Y), num(l.To.X), num(l.To.Y), paintAttr("stroke", l.Color), num(l.Width))
}

// WriteSVG encodes the scene as a standalone SVG document.
func (sc Scene) WriteSVG(w io.Writer) error {
	var b bytes.Buffer
	fmt.Fprintf(&b, svgHeader, num(sc.Width), num(sc.Height), num(sc.Width), num(sc.Height))
	b.WriteString(`<g fill="none">` + "\n")
	for _, l := range sc.Grid {
		writeLine(&b, l)
	}
	for _, l := range sc.Axes {
		writeLine(&b, l)
	}
	for _, s := range sc.Strokes {
		fmt.Fprintf(&b, `<path d="%s" %s stroke-width="%s" stroke-linecap="round" stroke-linejoin="round"`,
			s.Path.SVG(), paintAttr("stroke", s.Style.Color), num(s.Style.Width))
		if len(s.Dashes) > 0 {
			fmt.Fprintf(&b, ` stroke-dasharray="%s"`, dashAttr(s.Dashes))
		}
		b.WriteString("/>\n")
	}
	b.WriteString("</g>\n")
	for _, m := range sc.Markers {
		fmt.Fprintf(&b, `<circle cx="%s" cy="%s" r="%s" %s/>`+"\n",
			num(m.Center.X), num(m.Center.Y), num(m.Radius), paintAttr("fill", m.Color))
	}
	for _, l := range sc.Labels {
		fmt.Fprintf(&b, `<text x="%s" y="%s" %s font-size="%s" text-anchor="end" dominant-baseline="middle">%s</text>`+"\n",
			num(l.Anchor.X), num(l.Anchor.Y), paintAttr("fill", l.Color), num(l.Size), escape(l.Text))
	}
	b.WriteString("</svg>\n")
	_, err := w.Write(b.Bytes())
	return err
}
