package nicecolors

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseHex(t *testing.T) {
	tests := []struct {
		input string
		want  Color
		ok    bool
	}{
		{"FF0000", Color{R: 255}, true},
		{"#FF0000", Color{R: 255}, true},
		{"F00", Color{R: 255}, true},
		{"#F00", Color{R: 255}, true},
		{"ff0000", Color{R: 255}, true},
		{"#800080", Color{R: 128, B: 128}, true},
		{"112233", Color{R: 0x11, G: 0x22, B: 0x33}, true},
		// Alpha digits are validated but dropped.
		{"F00A", Color{R: 255}, true},
		{"#11223344", Color{R: 0x11, G: 0x22, B: 0x33}, true},
		{"11223344", Color{R: 0x11, G: 0x22, B: 0x33}, true},
		// Invalid lengths.
		{"", Color{}, false},
		{"#", Color{}, false},
		{"12345", Color{}, false},
		{"1234567", Color{}, false},
		{"123456789", Color{}, false},
		// Invalid digits fail the whole parse, alpha included.
		{"GG0000", Color{}, false},
		{"F0G", Color{}, false},
		{"F00G", Color{}, false},
		{"112233GG", Color{}, false},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseHex(tt.input)
			if !tt.ok {
				assert.ErrorIs(t, err, ErrInvalidColor)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseHexAlpha(t *testing.T) {
	tests := []struct {
		input     string
		want      Color
		wantAlpha float64
	}{
		{"F00", Color{R: 255}, 1},
		{"#FF0000", Color{R: 255}, 1},
		{"F008", Color{R: 255}, float64(0x88) / 255},
		{"#11223344", Color{R: 0x11, G: 0x22, B: 0x33}, float64(0x44) / 255},
		{"11223300", Color{R: 0x11, G: 0x22, B: 0x33}, 0},
		{"112233FF", Color{R: 0x11, G: 0x22, B: 0x33}, 1},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, alpha, err := ParseHexAlpha(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
			assert.InDelta(t, tt.wantAlpha, alpha, 1e-9)
		})
	}

	_, _, err := ParseHexAlpha("F00G")
	assert.ErrorIs(t, err, ErrInvalidColor)
}

func TestParseRGBA(t *testing.T) {
	tests := []struct {
		input     string
		want      Color
		wantAlpha float64
		ok        bool
	}{
		{"rgb(100,100,100)", Color{R: 100, G: 100, B: 100}, 1, true},
		{"rgb( 100, 100, 100 )", Color{R: 100, G: 100, B: 100}, 1, true},
		{"rgb(100 100 100)", Color{R: 100, G: 100, B: 100}, 1, true},
		{"rgb(255,0,0)", Color{R: 255}, 1, true},
		{"rgba(100,100,100,0.5)", Color{R: 100, G: 100, B: 100}, 0.5, true},
		{"rgba( 100, 100, 100, 1.0 )", Color{R: 100, G: 100, B: 100}, 1, true},
		{"rgba(255,0,0,0.2)", Color{R: 255}, 0.2, true},
		// Integer alpha normalizes over 255.
		{"rgba(1,2,3,128)", Color{R: 1, G: 2, B: 3}, 128.0 / 255, true},
		{"rgba(1,2,3,255)", Color{R: 1, G: 2, B: 3}, 1, true},
		// Percentage channels.
		{"rgb(50%,100%,0%)", Color{R: 128, G: 255, B: 0}, 1, true},
		// Channels above 255 wrap modulo 256.
		{"rgb(300,0,0)", Color{R: 44}, 1, true},
		{"rgb(256,256,256)", Color{}, 1, true},
		// A negative sign forces the channel to zero.
		{"rgb(-5,10,20)", Color{G: 10, B: 20}, 1, true},
		// Malformed inputs.
		{"rgb(1,2)", Color{}, 0, false},
		{"rgb(1,2,3,4)", Color{}, 0, false},
		{"rgba(1,2,3)", Color{}, 0, false},
		{"rgba(1,2,3,4,5)", Color{}, 0, false},
		{"rgb(a,b,c)", Color{}, 0, false},
		{"rgb(1,2,3", Color{}, 0, false},
		{"1,2,3", Color{}, 0, false},
		{"rgb(-x,0,0)", Color{}, 0, false},
		{"rgba(1,2,3,x)", Color{}, 0, false},
		{"", Color{}, 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, alpha, err := ParseRGBA(tt.input)
			if !tt.ok {
				assert.ErrorIs(t, err, ErrInvalidColor)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
			assert.InDelta(t, tt.wantAlpha, alpha, 1e-9)
		})
	}
}

func TestParseRGBDropsAlpha(t *testing.T) {
	got, err := ParseRGB("rgba(100,100,100,0.5)")

	require.NoError(t, err)
	assert.Equal(t, Color{R: 100, G: 100, B: 100}, got)
}

func TestParseHSLA(t *testing.T) {
	tests := []struct {
		input     string
		want      Color
		wantAlpha float64
		ok        bool
	}{
		{"hsl(0,100%,50%)", Color{R: 255}, 1, true},
		{"hsl(120,100%,50%)", Color{G: 255}, 1, true},
		{"hsl(240,100%,50%)", Color{B: 255}, 1, true},
		{"hsl(0 100% 50%)", Color{R: 255}, 1, true},
		{"hsl(0, 100%, 50%)", Color{R: 255}, 1, true},
		{"hsl(0,0%,100%)", Color{R: 255, G: 255, B: 255}, 1, true},
		{"hsl(0,0%,0%)", Color{}, 1, true},
		// Hue normalizes into [0, 360).
		{"hsl(360,100%,50%)", Color{R: 255}, 1, true},
		{"hsl(480,100%,50%)", Color{G: 255}, 1, true},
		{"hsl(-120,100%,50%)", Color{B: 255}, 1, true},
		// Fractional saturation/lightness.
		{"hsl(0,0.5,0.5)", Color{R: 191, G: 64, B: 64}, 1, true},
		// Alpha as percentage or fraction.
		{"hsla(0,100%,50%,50%)", Color{R: 255}, 0.5, true},
		{"hsla(0,100%,50%,0.5)", Color{R: 255}, 0.5, true},
		// Malformed inputs.
		{"hsl(0,100%)", Color{}, 0, false},
		{"hsl(0,100%,50%,1)", Color{}, 0, false},
		{"hsla(0,100%,50%)", Color{}, 0, false},
		{"hsl(x,100%,50%)", Color{}, 0, false},
		{"hsl(0,x,50%)", Color{}, 0, false},
		{"hsl(0,100%,50%", Color{}, 0, false},
		{"hue(0,100%,50%)", Color{}, 0, false},
		{"", Color{}, 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, alpha, err := ParseHSLA(tt.input)
			if !tt.ok {
				assert.ErrorIs(t, err, ErrInvalidColor)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
			assert.InDelta(t, tt.wantAlpha, alpha, 1e-9)
		})
	}
}

func TestParseHSLDropsAlpha(t *testing.T) {
	got, err := ParseHSL("hsla(120,100%,50%,0.25)")

	require.NoError(t, err)
	assert.Equal(t, Color{G: 255}, got)
}

func TestHexRoundTrip(t *testing.T) {
	colors := []Color{
		{},
		{R: 255},
		{G: 255},
		{B: 255},
		{R: 255, G: 255, B: 255},
		{R: 1, G: 2, B: 3},
		{R: 100, G: 149, B: 237},
	}

	for _, c := range colors {
		got, err := ParseHex(c.Hex())
		require.NoError(t, err)
		assert.Equal(t, c, got)
	}
}
