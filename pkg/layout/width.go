package layout

import (
	"strings"

	"github.com/charmbracelet/x/ansi"
	"github.com/mattn/go-runewidth"
)

// DisplayWidth returns the number of terminal cells s occupies, ignoring ANSI escape sequences
func DisplayWidth(s string) int {
	return runewidth.StringWidth(ansi.Strip(s))
}

// PadRight pads s with spaces up to width cells. Longer strings are returned unchanged.
func PadRight(s string, width int) string {
	w := DisplayWidth(s)
	if w >= width {
		return s
	}
	return s + strings.Repeat(" ", width-w)
}
