// Package theme holds the color palettes shared by the renderer and the viewer.
package theme

import (
	"errors"
	"fmt"
	"image/color"
	"strconv"
	"strings"
)

// Palette is the closed set of colors a view may draw with. Palettes are
// passed explicitly to whatever needs them.
type Palette struct {
	Background   color.NRGBA
	Surface      color.NRGBA
	SurfaceMuted color.NRGBA
	Primary      color.NRGBA
	PrimarySoft  color.NRGBA
	AccentGreen  color.NRGBA
	AccentOrange color.NRGBA
	AccentPink   color.NRGBA
	AccentPurple color.NRGBA
	AccentSky    color.NRGBA
	Text         color.NRGBA
	TextMuted    color.NRGBA
	Border       color.NRGBA
}

// Accents returns the accent colors in the order series and slices use them.
func (p Palette) Accents() []color.NRGBA {
	return []color.NRGBA{
		p.Primary,
		p.AccentGreen,
		p.AccentOrange,
		p.AccentPink,
		p.AccentPurple,
		p.AccentSky,
	}
}

func rgb(v uint32) color.NRGBA {
	return color.NRGBA{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v), A: 0xff}
}

// Light returns the default light palette.
func Light() Palette {
	return Palette{
		Background:   rgb(0xF6F7FB),
		Surface:      rgb(0xFFFFFF),
		SurfaceMuted: rgb(0xF9FAFF),
		Primary:      rgb(0x1F64FF),
		PrimarySoft:  rgb(0xEDF3FF),
		AccentGreen:  rgb(0x30D158),
		AccentOrange: rgb(0xFF8A34),
		AccentPink:   rgb(0xF56B92),
		AccentPurple: rgb(0xAC6CFF),
		AccentSky:    rgb(0x5AC8FA),
		Text:         rgb(0x0F172A),
		TextMuted:    rgb(0x6B7280),
		Border:       rgb(0xE2E8F0),
	}
}

// Dark returns the dark palette.
func Dark() Palette {
	return Palette{
		Background:   rgb(0x0B1120),
		Surface:      rgb(0x111827),
		SurfaceMuted: rgb(0x1F2937),
		Primary:      rgb(0x4C8DFF),
		PrimarySoft:  rgb(0x1E2A44),
		AccentGreen:  rgb(0x32D74B),
		AccentOrange: rgb(0xFF9F0A),
		AccentPink:   rgb(0xFF6482),
		AccentPurple: rgb(0xBF5AF2),
		AccentSky:    rgb(0x64D2FF),
		Text:         rgb(0xF8FAFC),
		TextMuted:    rgb(0x94A3B8),
		Border:       rgb(0x334155),
	}
}

// Mode selects one of the two palettes.
type Mode uint8

const (
	ModeLight Mode = iota
	ModeDark
)

func (m Mode) String() string {
	switch m {
	case ModeLight:
		return "light"
	case ModeDark:
		return "dark"
	default:
		return "unknown"
	}
}

// Toggle returns the other mode.
func (m Mode) Toggle() Mode {
	if m == ModeDark {
		return ModeLight
	}
	return ModeDark
}

// Palette returns the palette for the mode. Unknown modes get the light palette.
func (m Mode) Palette() Palette {
	if m == ModeDark {
		return Dark()
	}
	return Light()
}

// ErrUnknownMode is returned by ParseMode for names other than light and dark.
var ErrUnknownMode = errors.New("unknown theme mode")

// ParseMode parses "light" or "dark", ignoring case and surrounding space.
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "light", "":
		return ModeLight, nil
	case "dark":
		return ModeDark, nil
	}
	return ModeLight, fmt.Errorf("%w: %q", ErrUnknownMode, s)
}

// ParseHex parses #RGB, #RRGGBB and #RRGGBBAA color strings.
func ParseHex(s string) (color.NRGBA, error) {
	raw := strings.TrimPrefix(strings.TrimSpace(s), "#")
	switch len(raw) {
	case 3:
		raw = string([]byte{raw[0], raw[0], raw[1], raw[1], raw[2], raw[2]}) + "ff"
	case 6:
		raw += "ff"
	case 8:
	default:
		return color.NRGBA{}, fmt.Errorf("invalid color %q: want #RGB, #RRGGBB or #RRGGBBAA", s)
	}
	v, err := strconv.ParseUint(raw, 16, 32)
	if err != nil {
		return color.NRGBA{}, fmt.Errorf("invalid color %q: %w", s, err)
	}
	return color.NRGBA{R: uint8(v >> 24), G: uint8(v >> 16), B: uint8(v >> 8), A: uint8(v)}, nil
}

// Hex formats c as #RRGGBB, or #RRGGBBAA when it is not opaque.
func Hex(c color.NRGBA) string {
	if c.A == 0xff {
		return fmt.Sprintf("#%02X%02X%02X", c.R, c.G, c.B)
	}
	return fmt.Sprintf("#%02X%02X%02X%02X", c.R, c.G, c.B, c.A)
}
