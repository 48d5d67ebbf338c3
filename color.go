// Package nicecolors provides a compact RGB color value type with CSS-style
// parsing and formatting.
//
// A Color packs three 8-bit channels and is cheap to copy; every operation
// returns a new value. Parsing accepts hex (#RGB, #RGBA, #RRGGBB, #RRGGBBAA),
// rgb()/rgba(), hsl()/hsla() and HTML color names. Alpha values are carried
// separately as a float in [0, 1] rather than stored in the color itself.
package nicecolors

import "errors"

// ErrInvalidColor is returned by every parse function when the input does not
// match any supported color syntax.
var ErrInvalidColor = errors.New("not a valid color string")

// Color is an RGB color with 8-bit channels. The zero value is black.
// Colors compare with == and order lexicographically over (R, G, B).
type Color struct {
	R, G, B uint8
}

// New returns a color with the given channel values.
func New(r, g, b uint8) Color {
	return Color{R: r, G: g, B: b}
}

// FromDecimal unpacks a color from its decimal form. The red channel occupies
// the lowest-order byte, green the second and blue the third; the top byte is
// ignored. Inverse of Decimal.
func FromDecimal(v uint32) Color {
	return Color{
		R: uint8(v),
		G: uint8(v >> 8),
		B: uint8(v >> 16),
	}
}

// FromChannels builds a color from an [r, g, b] array.
func FromChannels(ch [3]uint8) Color {
	return Color{R: ch[0], G: ch[1], B: ch[2]}
}

// Decimal packs the color into a single integer with red in the lowest-order
// byte. FromDecimal(c.Decimal()) == c for every color.
func (c Color) Decimal() uint32 {
	return uint32(c.R) | uint32(c.G)<<8 | uint32(c.B)<<16
}

// Channels returns the color as an [r, g, b] array.
func (c Color) Channels() [3]uint8 {
	return [3]uint8{c.R, c.G, c.B}
}

// Map applies f to each channel independently.
func (c Color) Map(f func(v uint8) uint8) Color {
	return Color{
		R: f(c.R),
		G: f(c.G),
		B: f(c.B),
	}
}

// MapWith applies f channel-wise between this color and other.
func (c Color) MapWith(other Color, f func(a, b uint8) uint8) Color {
	return Color{
		R: f(c.R, other.R),
		G: f(c.G, other.G),
		B: f(c.B, other.B),
	}
}

// Blend interpolates linearly between this color and other. An amount of 0
// returns the receiver unchanged and an amount of 1 returns other exactly;
// values outside [0, 1] behave as the nearest endpoint. Only amounts strictly
// between 0 and 1 compute a weighted round.
func (c Color) Blend(other Color, amount float64) Color {
	if amount >= 1 {
		return other
	}
	if amount <= 0 {
		return c
	}

	return c.MapWith(other, func(a, b uint8) uint8 {
		return floatToByte(float64(a)*(1-amount) + float64(b)*amount)
	})
}

// Darken blends the color towards black by amount.
func (c Color) Darken(amount float64) Color {
	return c.Blend(Color{}, amount)
}

// Lighten blends the color towards white by amount.
func (c Color) Lighten(amount float64) Color {
	return c.Blend(Color{R: 255, G: 255, B: 255}, amount)
}

// HSL derives the hue/saturation/lightness representation of the color.
func (c Color) HSL() HSLColor {
	h, s, l := rgbToHSL(c.R, c.G, c.B)
	return HSLColor{Hue: h, Saturation: s, Lightness: l}
}

// String returns the color as an uppercase hex string without a leading hash.
func (c Color) String() string {
	return c.Hex()
}

// Parse reads a color from any supported syntax, trying hex, rgb()/rgba(),
// hsl()/hsla() and finally HTML color names. Unlike ParseHex, the hex form
// requires a leading hash here so that a bare digit string is never mistaken
// for a different format.
func Parse(s string) (Color, error) {
	if c, _, ok := parseHex(s, true); ok {
		return c, nil
	}
	if c, _, ok := parseRGBA(s); ok {
		return c, nil
	}
	if c, _, ok := parseHSL(s); ok {
		return c, nil
	}
	if c, ok := ByName(s); ok {
		return c, nil
	}

	return Color{}, ErrInvalidColor
}
