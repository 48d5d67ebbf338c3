package nicecolors

import (
	"strings"

	"golang.org/x/image/colornames"
)

// The HTML named-color tables, built once from the SVG 1.1 keyword list that
// x/image ships. Never mutated after init, so lookups are safe from any
// goroutine.
var (
	nameToColor map[string]Color
	colorToName map[Color]string
)

func init() {
	nameToColor = make(map[string]Color, len(colornames.Names))
	colorToName = make(map[Color]string, len(colornames.Names))

	// colornames.Names is sorted, so for duplicate RGB values (aqua/cyan,
	// the gray/grey pairs) the alphabetically first name wins the reverse
	// mapping.
	for _, name := range colornames.Names {
		rgba := colornames.Map[name]
		c := Color{R: rgba.R, G: rgba.G, B: rgba.B}
		nameToColor[name] = c
		if _, ok := colorToName[c]; !ok {
			colorToName[c] = name
		}
	}
}

// ByName looks up an HTML color keyword, case-insensitively.
func ByName(name string) (Color, bool) {
	c, ok := nameToColor[strings.ToLower(name)]
	return c, ok
}

// Name returns the HTML keyword for a color, if one exists. Where several
// names share an RGB value the alphabetically first is returned.
func Name(c Color) (string, bool) {
	name, ok := colorToName[c]
	return name, ok
}

// Names returns the known HTML color keywords in alphabetical order.
func Names() []string {
	names := make([]string, len(colornames.Names))
	copy(names, colornames.Names)
	return names
}
