package colour

import (
	"fmt"
	"strings"
)

// ANSI escape codes for terminal colours.
const (
	ansiReset    = "\033[0m"
	ansiFgPrefix = "\033[38;2;"
	ansiBgPrefix = "\033[48;2;"
	ansiSuffix   = "m"
	defaultWidth = 8
)

// Preview returns an ANSI-coloured block for a colour.
// Width specifies how many characters wide the block should be.
func Preview(c RGB, width int) string {
	if width <= 0 {
		width = defaultWidth
	}

	bg := fmt.Sprintf("%s%d;%d;%d%s", ansiBgPrefix, c.R, c.G, c.B, ansiSuffix)
	return bg + strings.Repeat(" ", width) + ansiReset
}

// PreviewPair renders text in fg on a bg block, the way the pair would look in
// an interface.
func PreviewPair(bg, fg RGB, text string, width int) string {
	if width <= 0 {
		width = defaultWidth
	}

	// Pad or truncate text to fit width.
	display := text
	if len(text) > width {
		display = text[:width]
	} else if len(text) < width {
		padding := (width - len(text)) / 2
		display = strings.Repeat(" ", padding) + text + strings.Repeat(" ", width-len(text)-padding)
	}

	bgSeq := fmt.Sprintf("%s%d;%d;%d%s", ansiBgPrefix, bg.R, bg.G, bg.B, ansiSuffix)
	fgSeq := fmt.Sprintf("%s%d;%d;%d%s", ansiFgPrefix, fg.R, fg.G, fg.B, ansiSuffix)
	return bgSeq + fgSeq + display + ansiReset
}

// FormatWithPreview formats a colour with its preview and hex code.
func FormatWithPreview(rgb RGB, width int) string {
	return fmt.Sprintf("%s %s", Preview(rgb, width), rgb.Hex())
}
