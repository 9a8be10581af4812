package main

import (
	"gioui.org/font/gofont"
	"gioui.org/text"
	"gioui.org/widget/material"

	"git.sr.ht/~whereswaldon/runway/theme"
)

// newTheme builds a material theme whose colors come from p.
func newTheme(p theme.Palette) *material.Theme {
	th := material.NewTheme()
	th.Shaper = text.NewShaper(text.WithCollection(gofont.Collection()), text.NoSystemFonts())
	applyPalette(th, p)
	return th
}

func applyPalette(th *material.Theme, p theme.Palette) {
	th.Palette = material.Palette{
		Bg:         p.Background,
		Fg:         p.Text,
		ContrastBg: p.Primary,
		ContrastFg: p.Surface,
	}
}
