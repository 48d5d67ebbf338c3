package nicecolors

import "math"

// HSLColor is a color expressed as hue, saturation and lightness. Hue is in
// degrees within [0, 360); saturation and lightness are fractions in [0, 1].
type HSLColor struct {
	Hue        float64
	Saturation float64
	Lightness  float64
}

// NewHSL returns an HSLColor with each field forced into its valid range:
// hue wraps around the circle, saturation and lightness clamp.
func NewHSL(hue, saturation, lightness float64) HSLColor {
	return HSLColor{
		Hue:        wrapHue(hue),
		Saturation: fitPercent(saturation),
		Lightness:  fitPercent(lightness),
	}
}

// WithHue returns a copy with the hue wrapped into [0, 360).
func (h HSLColor) WithHue(v float64) HSLColor {
	h.Hue = wrapHue(v)
	return h
}

// WithSaturation returns a copy with the saturation clamped to [0, 1].
func (h HSLColor) WithSaturation(v float64) HSLColor {
	h.Saturation = fitPercent(v)
	return h
}

// WithLightness returns a copy with the lightness clamped to [0, 1].
func (h HSLColor) WithLightness(v float64) HSLColor {
	h.Lightness = fitPercent(v)
	return h
}

func wrapHue(v float64) float64 {
	v = math.Mod(v, 360)
	if v < 0 {
		v += 360
	}
	return v
}

// rgbToHSL converts 8-bit RGB channels to hue (degrees), saturation and
// lightness. Achromatic inputs (r == g == b) yield hue 0 and saturation 0.
// Total over all byte triples.
func rgbToHSL(r, g, b uint8) (hue, saturation, lightness float64) {
	rf := float64(r) / 255
	gf := float64(g) / 255
	bf := float64(b) / 255

	max := math.Max(rf, math.Max(gf, bf))
	min := math.Min(rf, math.Min(gf, bf))
	lightness = (max + min) / 2

	if max == min {
		return 0, 0, lightness
	}

	diff := max - min
	if lightness > 0.5 {
		saturation = diff / (2 - max - min)
	} else {
		saturation = diff / (max + min)
	}

	switch max {
	case rf:
		hue = (gf - bf) / diff
		if gf < bf {
			hue += 6
		}
	case gf:
		hue = (bf-rf)/diff + 2
	default:
		hue = (rf-gf)/diff + 4
	}

	return hue / 6 * 360, saturation, lightness
}
