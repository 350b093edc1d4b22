package colour

import (
	"strings"

	"golang.org/x/image/colornames"
)

// ResolveName maps an SVG 1.1 colour keyword (e.g. "slategray") to its hex
// form. Inputs that are not keywords are returned unchanged with ok=false so
// hex strings pass straight through.
func ResolveName(input string) (string, bool) {
	c, ok := colornames.Map[strings.ToLower(strings.TrimSpace(input))]
	if !ok {
		return input, false
	}
	return RGB{R: c.R, G: c.G, B: c.B}.Hex(), true
}
