package chart

import (
	"bytes"
	"errors"
	"image/color"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSceneWriteSVG(t *testing.T) {
	cfg := testConfig()
	cfg.Secondary.Color = color.NRGBA{R: 0x30, G: 0xd1, B: 0x58, A: 0x80}
	primary := Series{{X: 1, Y: 2000, Historical: true}, {X: 2, Y: 1850, Historical: true}, {X: 3, Y: 1700}}
	secondary := Series{{X: 1, Y: 2000}}
	sc := Render(cfg, primary, secondary)

	var buf bytes.Buffer
	require.NoError(t, sc.WriteSVG(&buf))
	out := buf.String()

	assert.True(t, strings.HasPrefix(out, `<svg xmlns="http://www.w3.org/2000/svg" width="350.00" height="200.00"`))
	assert.True(t, strings.HasSuffix(out, "</svg>\n"))
	assert.Equal(t, len(sc.Grid)+len(sc.Axes), strings.Count(out, "<line "))
	assert.Equal(t, 2, strings.Count(out, "<path "))
	assert.Equal(t, 1, strings.Count(out, `stroke-dasharray="6.00 4.00"`))
	assert.Equal(t, 1, strings.Count(out, "<circle "))
	assert.Contains(t, out, `fill="#30D158" fill-opacity="0.50"`)
	assert.Equal(t, len(sc.Labels), strings.Count(out, "<text "))
	assert.Contains(t, out, ">$2,030</text>")
	assert.Contains(t, out, sc.Strokes[0].Path.SVG())
}

func TestEscapeLabel(t *testing.T) {
	assert.Equal(t, "a &lt;b&gt; &amp; c", escape("a <b> & c"))
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) { return 0, errors.New("disk full") }

func TestWriteSVGPropagatesErrors(t *testing.T) {
	sc := Render(testConfig(), Series{{X: 1, Y: 1}, {X: 2, Y: 2}}, nil)
	assert.EqualError(t, sc.WriteSVG(failingWriter{}), "disk full")
}
