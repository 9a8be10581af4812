package theme

import (
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseHex(t *testing.T) {
	for _, tc := range []struct {
		in      string
		want    color.NRGBA
		wantErr bool
	}{
		{in: "#5AC8FA", want: color.NRGBA{R: 0x5a, G: 0xc8, B: 0xfa, A: 0xff}},
		{in: "30d158", want: color.NRGBA{R: 0x30, G: 0xd1, B: 0x58, A: 0xff}},
		{in: "#fff", want: color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}},
		{in: "#0F172A80", want: color.NRGBA{R: 0x0f, G: 0x17, B: 0x2a, A: 0x80}},
		{in: "#12345", wantErr: true},
		{in: "#zzzzzz", wantErr: true},
		{in: "", wantErr: true},
	} {
		t.Run(tc.in, func(t *testing.T) {
			got, err := ParseHex(tc.in)
			if tc.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestHexRoundTrip(t *testing.T) {
	for _, c := range append(Light().Accents(), color.NRGBA{R: 1, G: 2, B: 3, A: 4}) {
		parsed, err := ParseHex(Hex(c))
		require.NoError(t, err)
		assert.Equal(t, c, parsed)
	}
	assert.Equal(t, "#1F64FF", Hex(Light().Primary))
}

func TestMode(t *testing.T) {
	m, err := ParseMode(" Dark ")
	require.NoError(t, err)
	assert.Equal(t, ModeDark, m)
	assert.Equal(t, ModeLight, m.Toggle())
	assert.Equal(t, ModeDark, m.Toggle().Toggle())
	assert.Equal(t, Dark(), m.Palette())
	assert.Equal(t, Light(), ModeLight.Palette())
	assert.Equal(t, "dark", m.String())

	_, err = ParseMode("sepia")
	assert.ErrorIs(t, err, ErrUnknownMode)
}

func TestEditMode(t *testing.T) {
	var e EditMode
	assert.Equal(t, Viewing, e)
	e = e.Toggle()
	assert.Equal(t, Editing, e)
	assert.Equal(t, "editing", e.String())
	assert.Equal(t, Viewing, e.Toggle())
}
