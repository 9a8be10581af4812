// Package config loads chart geometry and styling for the runway commands.
package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/viper"

	"git.sr.ht/~whereswaldon/runway/chart"
	"git.sr.ht/~whereswaldon/runway/theme"
)

// ErrInvalid wraps every validation failure.
var ErrInvalid = errors.New("invalid configuration")

// Presets name the insets used by the two chart placements.
const (
	PresetDashboard = "dashboard"
	PresetSimulator = "simulator"
)

// Insets mirrors chart.Insets. Negative values mean "use the preset".
type Insets struct {
	Top    float64 `mapstructure:"top"`
	Right  float64 `mapstructure:"right"`
	Bottom float64 `mapstructure:"bottom"`
	Left   float64 `mapstructure:"left"`
}

type Config struct {
	Width          float64   `mapstructure:"width"`
	Height         float64   `mapstructure:"height"`
	Preset         string    `mapstructure:"preset"`
	Insets         Insets    `mapstructure:"insets"`
	GridLines      int       `mapstructure:"grid_lines"`
	StrokeWidth    float64   `mapstructure:"stroke_width"`
	Dash           []float64 `mapstructure:"dash"`
	Theme          string    `mapstructure:"theme"`
	PrimaryColor   string    `mapstructure:"primary_color"`
	SecondaryColor string    `mapstructure:"secondary_color"`
	Timeline       string    `mapstructure:"timeline"`
	Output         string    `mapstructure:"output"`
	Debug          bool      `mapstructure:"debug"`
}

const (
	DefaultWidth       = 350
	DefaultHeight      = 220
	DefaultStrokeWidth = 3
	DefaultTimeline    = "timeline.json"
)

func defaults() map[string]interface{} {
	return map[string]interface{}{
		"width":         DefaultWidth,
		"height":        DefaultHeight,
		"preset":        PresetDashboard,
		"insets.top":    -1,
		"insets.right":  -1,
		"insets.bottom": -1,
		"insets.left":   -1,
		"grid_lines":    chart.DefaultGridLines,
		"stroke_width":  DefaultStrokeWidth,
		"dash":          chart.DefaultDashes,
		"theme":         theme.ModeLight.String(),
		"timeline":      DefaultTimeline,
	}
}

// Load reads the configuration file at path, if path is not empty, over
// the defaults. RUNWAY_* environment variables override both.
func Load(path string) (*Config, error) {
	v := viper.New()
	for key, value := range defaults() {
		v.SetDefault(key, value)
	}
	v.SetEnvPrefix("RUNWAY")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed reading config %s: %w", path, err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed decoding config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func invalid(format string, args ...interface{}) error {
	return fmt.Errorf("%w: %s", ErrInvalid, fmt.Sprintf(format, args...))
}

// Validate reports the first problem that would make the chart unusable.
func (c *Config) Validate() error {
	if c.Width <= 0 || c.Height <= 0 {
		return invalid("canvas must be positive, got %gx%g", c.Width, c.Height)
	}
	if _, err := presetInsets(c.Preset); err != nil {
		return err
	}
	in := c.ChartInsets()
	if in.Left+in.Right >= c.Width || in.Top+in.Bottom >= c.Height {
		return invalid("insets %+v leave no room on a %gx%g canvas", in, c.Width, c.Height)
	}
	if c.GridLines < 2 || c.GridLines > chart.MaxGridLines {
		return invalid("grid_lines must be between 2 and %d, got %d", chart.MaxGridLines, c.GridLines)
	}
	if c.StrokeWidth <= 0 {
		return invalid("stroke_width must be positive, got %g", c.StrokeWidth)
	}
	for _, d := range c.Dash {
		if d < 0 {
			return invalid("dash entries must not be negative, got %v", c.Dash)
		}
	}
	if _, err := theme.ParseMode(c.Theme); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalid, err)
	}
	for _, col := range []string{c.PrimaryColor, c.SecondaryColor} {
		if col == "" {
			continue
		}
		if _, err := theme.ParseHex(col); err != nil {
			return fmt.Errorf("%w: %w", ErrInvalid, err)
		}
	}
	return nil
}

func presetInsets(name string) (chart.Insets, error) {
	switch strings.ToLower(name) {
	case PresetDashboard, "":
		return chart.DashboardInsets, nil
	case PresetSimulator:
		return chart.SimulatorInsets, nil
	}
	return chart.Insets{}, invalid("unknown preset %q", name)
}

// ChartInsets resolves the preset and applies any explicit insets over it.
func (c *Config) ChartInsets() chart.Insets {
	in, _ := presetInsets(c.Preset)
	if c.Insets.Top >= 0 {
		in.Top = c.Insets.Top
	}
	if c.Insets.Right >= 0 {
		in.Right = c.Insets.Right
	}
	if c.Insets.Bottom >= 0 {
		in.Bottom = c.Insets.Bottom
	}
	if c.Insets.Left >= 0 {
		in.Left = c.Insets.Left
	}
	return in
}

// Mode returns the configured theme mode.
func (c *Config) Mode() theme.Mode {
	m, _ := theme.ParseMode(c.Theme)
	return m
}

// Chart builds the renderer configuration for palette p. Configured colors
// replace the palette's series colors.
func (c *Config) Chart(p theme.Palette) chart.Config {
	cc := chart.DefaultConfig(p)
	cc.Width = c.Width
	cc.Height = c.Height
	cc.Insets = c.ChartInsets()
	cc.GridLines = c.GridLines
	cc.Primary.Width = c.StrokeWidth
	cc.Secondary.Width = c.StrokeWidth
	if len(c.Dash) > 0 {
		cc.Dashes = append([]float64(nil), c.Dash...)
	}
	if col, err := theme.ParseHex(c.PrimaryColor); err == nil {
		cc.Primary.Color = col
	}
	if col, err := theme.ParseHex(c.SecondaryColor); err == nil {
		cc.Secondary.Color = col
	}
	return cc
}
