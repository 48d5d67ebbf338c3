package nicecolors

import (
	"math"
	"strconv"
	"strings"
)

// fitPercent clamps v to [0, 1].
func fitPercent(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// parsePercent reads a percentage token: either a value with a "%" suffix
// (divided by 100) or a bare fraction written with a leading "0." or ".".
// The result is clamped to [0, 1]. CSS mixes both forms for
// saturation/lightness/alpha fields, hence the dual grammar.
func parsePercent(s string) (float64, bool) {
	s = strings.TrimSpace(s)

	if rest, ok := strings.CutSuffix(s, "%"); ok {
		v, err := strconv.ParseFloat(rest, 64)
		if err != nil {
			return 0, false
		}
		return fitPercent(v / 100), true
	}

	if strings.HasPrefix(s, "0.") || strings.HasPrefix(s, ".") {
		v, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return 0, false
		}
		return fitPercent(v), true
	}

	return 0, false
}

// floatToByte rounds v to the nearest integer (ties away from zero) and
// saturates to [0, 255].
func floatToByte(v float64) uint8 {
	v = math.Round(v)
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return uint8(v)
}

// hueToRGB is the CSS/SVG hue basis function. h must be within [-1, 2]: it is
// wrapped into [0, 1] by a single add or subtract, not a full modulo. The
// branch boundaries are written as h*6 < 1, h*2 < 1, h*3 < 2, the form used
// by the CSS3 color spec.
func hueToRGB(m1, m2, h float64) float64 {
	if h < 0 {
		h++
	} else if h > 1 {
		h--
	}

	switch {
	case h*6 < 1:
		return m1 + (m2-m1)*h*6
	case h*2 < 1:
		return m2
	case h*3 < 2:
		return m1 + (m2-m1)*(2.0/3.0-h)*6
	default:
		return m1
	}
}
