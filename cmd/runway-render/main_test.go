package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"git.sr.ht/~whereswaldon/runway/config"
	"git.sr.ht/~whereswaldon/runway/timeline"
)

const testTimeline = "../../timeline/testdata/timeline.json"

func testConfig(t *testing.T) *config.Config {
	t.Helper()
	cfg, err := config.Load("")
	require.NoError(t, err)
	cfg.Timeline = testTimeline
	return cfg
}

func TestRenderToStdout(t *testing.T) {
	var out bytes.Buffer
	err := render(testConfig(t), options{donutSize: 200}, zap.NewNop(), &out)
	require.NoError(t, err)

	svg := out.String()
	assert.True(t, strings.HasPrefix(svg, "<svg"))
	assert.True(t, strings.HasSuffix(svg, "</svg>\n"))
	// Both series have a historical and a projected part.
	assert.Equal(t, 4, strings.Count(svg, "<path "))
	assert.Equal(t, 2, strings.Count(svg, "stroke-dasharray"))
	assert.Contains(t, svg, `stroke="#5AC8FA"`)
}

func TestRenderFiles(t *testing.T) {
	dir := t.TempDir()
	opts := options{
		output:    filepath.Join(dir, "chart.svg"),
		donut:     filepath.Join(dir, "donut.svg"),
		ring:      filepath.Join(dir, "ring.svg"),
		progress:  40,
		themeName: "dark",
		donutSize: 200,
	}
	var out bytes.Buffer
	require.NoError(t, render(testConfig(t), opts, zap.NewNop(), &out))
	assert.Zero(t, out.Len())

	donut, err := os.ReadFile(opts.donut)
	require.NoError(t, err)
	assert.Contains(t, string(donut), "$799")
	assert.Equal(t, 4, strings.Count(string(donut), "<circle"))

	ring, err := os.ReadFile(opts.ring)
	require.NoError(t, err)
	assert.Equal(t, 2, strings.Count(string(ring), "<circle"))

	chartSVG, err := os.ReadFile(opts.output)
	require.NoError(t, err)
	assert.Contains(t, string(chartSVG), `stroke="#64D2FF"`)
}

func TestRenderErrors(t *testing.T) {
	t.Run("missing timeline", func(t *testing.T) {
		cfg := testConfig(t)
		cfg.Timeline = filepath.Join(t.TempDir(), "missing.json")
		err := render(cfg, options{donutSize: 200}, zap.NewNop(), &bytes.Buffer{})
		assert.ErrorIs(t, err, os.ErrNotExist)
	})
	t.Run("empty timeline", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "empty.json")
		require.NoError(t, os.WriteFile(path, []byte(`{"on_pace": [], "aadil_plan": []}`), 0o644))
		cfg := testConfig(t)
		cfg.Timeline = path
		err := render(cfg, options{donutSize: 200}, zap.NewNop(), &bytes.Buffer{})
		assert.ErrorIs(t, err, timeline.ErrEmpty)
	})
	t.Run("bad theme", func(t *testing.T) {
		err := render(testConfig(t), options{themeName: "sepia", donutSize: 200}, zap.NewNop(), &bytes.Buffer{})
		assert.Error(t, err)
	})
}

func TestRootCmd(t *testing.T) {
	var out bytes.Buffer
	cmd := newRootCmd(&out)
	cmd.SetArgs([]string{testTimeline, "--theme", "light"})
	require.NoError(t, cmd.Execute())
	assert.Contains(t, out.String(), "<svg")

	cmd = newRootCmd(&out)
	cmd.SetArgs([]string{testTimeline, "--donut-size", "0"})
	assert.ErrorIs(t, cmd.Execute(), config.ErrInvalid)
}
