package nicecolors

import (
	"strconv"
	"strings"
)

// ParseHex reads a hex color string. The leading hash is optional here, in
// contrast to the generic Parse. Bodies of 3, 4, 6 or 8 digits are accepted;
// the alpha component of 4- and 8-digit forms is validated but discarded.
func ParseHex(s string) (Color, error) {
	c, _, ok := parseHex(s, false)
	if !ok {
		return Color{}, ErrInvalidColor
	}
	return c, nil
}

// ParseHexAlpha is ParseHex with the alpha component retained: 4- and 8-digit
// bodies yield their trailing alpha normalized to [0, 1], the others yield 1.
func ParseHexAlpha(s string) (Color, float64, error) {
	c, alpha, ok := parseHex(s, false)
	if !ok {
		return Color{}, 0, ErrInvalidColor
	}
	return c, alpha, nil
}

// ParseRGB reads an rgb() or rgba() string, discarding any alpha field.
func ParseRGB(s string) (Color, error) {
	c, _, ok := parseRGBA(s)
	if !ok {
		return Color{}, ErrInvalidColor
	}
	return c, nil
}

// ParseRGBA reads an rgb() or rgba() string. Alpha defaults to 1 when the
// rgb() form is used.
func ParseRGBA(s string) (Color, float64, error) {
	c, alpha, ok := parseRGBA(s)
	if !ok {
		return Color{}, 0, ErrInvalidColor
	}
	return c, alpha, nil
}

// ParseHSL reads an hsl() or hsla() string, discarding any alpha field.
func ParseHSL(s string) (Color, error) {
	c, _, ok := parseHSL(s)
	if !ok {
		return Color{}, ErrInvalidColor
	}
	return c, nil
}

// ParseHSLA reads an hsl() or hsla() string. Alpha defaults to 1 when the
// hsl() form is used.
func ParseHSLA(s string) (Color, float64, error) {
	c, alpha, ok := parseHSL(s)
	if !ok {
		return Color{}, 0, ErrInvalidColor
	}
	return c, alpha, nil
}

// parseHex parses a hex color body of 3, 4, 6 or 8 digits. The whole body
// must be valid hexadecimal, including alpha digits that end up discarded
// from the color: a malformed alpha still invalidates the string.
func parseHex(s string, requireHash bool) (Color, float64, bool) {
	if rest, ok := strings.CutPrefix(s, "#"); ok {
		s = rest
	} else if requireHash {
		return Color{}, 0, false
	}

	switch len(s) {
	case 3, 4, 6, 8:
	default:
		return Color{}, 0, false
	}

	v, err := strconv.ParseUint(s, 16, 32)
	if err != nil {
		return Color{}, 0, false
	}

	alpha := 1.0
	var c Color

	switch len(s) {
	case 3:
		c = Color{
			R: uint8(v>>8&0xF) * 0x11,
			G: uint8(v>>4&0xF) * 0x11,
			B: uint8(v&0xF) * 0x11,
		}
	case 4:
		c = Color{
			R: uint8(v>>12&0xF) * 0x11,
			G: uint8(v>>8&0xF) * 0x11,
			B: uint8(v>>4&0xF) * 0x11,
		}
		alpha = float64(uint8(v&0xF)*0x11) / 255
	case 6:
		c = Color{
			R: uint8(v >> 16),
			G: uint8(v >> 8),
			B: uint8(v),
		}
	case 8:
		c = Color{
			R: uint8(v >> 24),
			G: uint8(v >> 16),
			B: uint8(v >> 8),
		}
		alpha = float64(uint8(v)) / 255
	}

	return c, alpha, true
}

// parseRGBA parses "rgb(R,G,B)" or "rgba(R,G,B,A)". Fields separate on
// commas and/or spaces. Channels accept integers (truncated modulo 256 when
// above 255), percentages, or a negative integer which is forced to zero.
// Alpha accepts an integer 0-255 (divided by 255) or a float.
func parseRGBA(s string) (Color, float64, bool) {
	expected := 3
	var body string

	switch {
	case strings.HasPrefix(s, "rgb("):
		body = s[len("rgb("):]
	case strings.HasPrefix(s, "rgba("):
		body = s[len("rgba("):]
		expected = 4
	default:
		return Color{}, 0, false
	}

	body, ok := strings.CutSuffix(body, ")")
	if !ok {
		return Color{}, 0, false
	}

	fields := splitFields(body)
	if len(fields) != expected {
		return Color{}, 0, false
	}

	var ch [3]uint8
	alpha := 1.0

	for i, f := range fields {
		if i < 3 {
			v, ok := parseChannel(f)
			if !ok {
				return Color{}, 0, false
			}
			ch[i] = v
			continue
		}

		if n, err := strconv.ParseUint(f, 10, 8); err == nil {
			alpha = float64(n) / 255
		} else if v, err := strconv.ParseFloat(f, 64); err == nil {
			alpha = v
		} else {
			return Color{}, 0, false
		}
	}

	return FromChannels(ch), alpha, true
}

// parseChannel reads a single rgb() channel field.
func parseChannel(f string) (uint8, bool) {
	if strings.HasSuffix(f, "%") {
		p, ok := parsePercent(f)
		if !ok {
			return 0, false
		}
		return floatToByte(p * 255), true
	}

	if rest, ok := strings.CutPrefix(f, "-"); ok {
		// The magnitude must still be a valid integer, but negative
		// channels always mean zero.
		if _, err := strconv.ParseUint(rest, 10, 32); err != nil {
			return 0, false
		}
		return 0, true
	}

	v, err := strconv.ParseUint(f, 10, 32)
	if err != nil {
		return 0, false
	}
	// Values above 255 wrap rather than clamp.
	return uint8(v), true
}

// parseHSL parses "hsl(H,S,L)" or "hsla(H,S,L,A)". Hue is an integer number
// of degrees normalized into [0, 360); saturation, lightness and alpha use
// the percentage grammar. The color converts straight to RGB via the CSS
// m1/m2 formula.
func parseHSL(s string) (Color, float64, bool) {
	expected := 3
	var body string

	switch {
	case strings.HasPrefix(s, "hsl("):
		body = s[len("hsl("):]
	case strings.HasPrefix(s, "hsla("):
		body = s[len("hsla("):]
		expected = 4
	default:
		return Color{}, 0, false
	}

	body, ok := strings.CutSuffix(body, ")")
	if !ok {
		return Color{}, 0, false
	}

	fields := splitFields(body)
	if len(fields) != expected {
		return Color{}, 0, false
	}

	deg, err := strconv.Atoi(fields[0])
	if err != nil {
		return Color{}, 0, false
	}
	hue := float64((deg%360+360)%360) / 360

	saturation, ok := parsePercent(fields[1])
	if !ok {
		return Color{}, 0, false
	}
	lightness, ok := parsePercent(fields[2])
	if !ok {
		return Color{}, 0, false
	}

	alpha := 1.0
	if expected == 4 {
		alpha, ok = parsePercent(fields[3])
		if !ok {
			return Color{}, 0, false
		}
	}

	var m2 float64
	if lightness <= 0.5 {
		m2 = lightness * (saturation + 1)
	} else {
		m2 = lightness + saturation - lightness*saturation
	}
	m1 := lightness*2 - m2

	c := Color{
		R: floatToByte(hueToRGB(m1, m2, hue+1.0/3.0) * 255),
		G: floatToByte(hueToRGB(m1, m2, hue) * 255),
		B: floatToByte(hueToRGB(m1, m2, hue-1.0/3.0) * 255),
	}

	return c, alpha, true
}

// splitFields splits a function body on commas and spaces, trimming each
// field and dropping empty ones so that mixed or repeated separators
// collapse.
func splitFields(s string) []string {
	parts := strings.FieldsFunc(s, func(r rune) bool {
		return r == ',' || r == ' '
	})

	fields := parts[:0]
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p != "" {
			fields = append(fields, p)
		}
	}
	return fields
}
