package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"git.sr.ht/~whereswaldon/runway/chart"
	"git.sr.ht/~whereswaldon/runway/theme"
)

func writeConfig(t *testing.T, name, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, float64(DefaultWidth), cfg.Width)
	assert.Equal(t, float64(DefaultHeight), cfg.Height)
	assert.Equal(t, chart.DashboardInsets, cfg.ChartInsets())
	assert.Equal(t, chart.DefaultGridLines, cfg.GridLines)
	assert.Equal(t, theme.ModeLight, cfg.Mode())
	assert.Equal(t, DefaultTimeline, cfg.Timeline)

	cc := cfg.Chart(theme.Light())
	assert.Equal(t, chart.DefaultDashes, cc.Dashes)
	assert.Equal(t, theme.Light().AccentSky, cc.Primary.Color)
	assert.Equal(t, float64(DefaultStrokeWidth), cc.Secondary.Width)
}

func TestLoadFile(t *testing.T) {
	path := writeConfig(t, "runway.yaml", `
width: 300
height: 120
preset: simulator
insets:
  bottom: 24
grid_lines: 6
stroke_width: 2
dash: [3, 2]
theme: dark
primary_color: "#1F64FF"
timeline: data/semester.json
`)
	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, chart.Insets{Top: 20, Right: 20, Bottom: 24, Left: 60}, cfg.ChartInsets())
	assert.Equal(t, theme.ModeDark, cfg.Mode())
	assert.Equal(t, "data/semester.json", cfg.Timeline)

	cc := cfg.Chart(cfg.Mode().Palette())
	assert.Equal(t, 300.0, cc.Width)
	assert.Equal(t, 6, cc.GridLines)
	assert.Equal(t, []float64{3, 2}, cc.Dashes)
	assert.Equal(t, theme.Light().Primary, cc.Primary.Color)
	assert.Equal(t, theme.Dark().AccentGreen, cc.Secondary.Color)
	assert.Equal(t, 2.0, cc.Primary.Width)
}

func TestLoadEnvironment(t *testing.T) {
	t.Setenv("RUNWAY_WIDTH", "500")
	t.Setenv("RUNWAY_INSETS_LEFT", "72")
	t.Setenv("RUNWAY_THEME", "dark")
	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, 500.0, cfg.Width)
	assert.Equal(t, 72.0, cfg.ChartInsets().Left)
	assert.Equal(t, theme.ModeDark, cfg.Mode())
}

func TestValidate(t *testing.T) {
	for _, tc := range []struct {
		name string
		body string
	}{
		{name: "zero width", body: "width: 0"},
		{name: "insets too wide", body: "width: 60"},
		{name: "unknown preset", body: "preset: tablet"},
		{name: "one grid line", body: "grid_lines: 1"},
		{name: "too many grid lines", body: "grid_lines: 65"},
		{name: "negative dash", body: "dash: [4, -1]"},
		{name: "bad theme", body: "theme: sepia"},
		{name: "bad color", body: `secondary_color: "#12"`},
		{name: "no stroke", body: "stroke_width: 0"},
	} {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Load(writeConfig(t, "runway.yaml", tc.body))
			assert.ErrorIs(t, err, ErrInvalid)
		})
	}
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
	assert.NotErrorIs(t, err, ErrInvalid)
}

func TestLoadMaxGridLines(t *testing.T) {
	cfg, err := Load(writeConfig(t, "runway.yaml", "grid_lines: 64"))
	require.NoError(t, err)
	assert.Equal(t, chart.MaxGridLines, cfg.GridLines)
}
