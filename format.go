package nicecolors

import (
	"fmt"
	"strconv"
	"strings"
)

// Hex formats the color as six uppercase hex digits without a leading hash.
// Callers wanting the CSS form prepend "#" themselves.
func (c Color) Hex() string {
	return fmt.Sprintf("%02X%02X%02X", c.R, c.G, c.B)
}

// RGBString formats the color as "rgb(R,G,B)".
func (c Color) RGBString() string {
	return fmt.Sprintf("rgb(%d,%d,%d)", c.R, c.G, c.B)
}

// RGBAString formats the color as "rgba(R,G,B,A)". The alpha is clamped to
// [0, 1] and printed with at most three decimal places.
func (c Color) RGBAString(alpha float64) string {
	return fmt.Sprintf("rgba(%d,%d,%d,%s)", c.R, c.G, c.B, formatAlpha(alpha))
}

// formatAlpha renders a clamped alpha with up to three decimals, trailing
// zeros trimmed.
func formatAlpha(alpha float64) string {
	alpha = fitPercent(alpha)

	s := strconv.FormatFloat(alpha, 'f', 3, 64)
	s = strings.TrimRight(s, "0")
	s = strings.TrimSuffix(s, ".")
	return s
}
