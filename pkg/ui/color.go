// Package ui decides how symfetch output is styled for the current terminal.
package ui

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
	"github.com/muesli/termenv"
)

// ColorMode is the user's colour preference
type ColorMode int

const (
	// ColorAuto enables colour on capable terminals
	ColorAuto ColorMode = iota
	// ColorAlways forces truecolor styling, even when piped
	ColorAlways
	// ColorNever disables styling
	ColorNever
)

func (m ColorMode) String() string {
	switch m {
	case ColorAuto:
		return "auto"
	case ColorAlways:
		return "always"
	case ColorNever:
		return "never"
	default:
		return "unknown"
	}
}

// ParseColorMode parses a --color flag value
func ParseColorMode(s string) (ColorMode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "auto", "":
		return ColorAuto, nil
	case "always", "yes", "force":
		return ColorAlways, nil
	case "never", "no", "none":
		return ColorNever, nil
	default:
		return ColorAuto, fmt.Errorf("unknown color mode: %s", s)
	}
}

// Profile resolves mode to a termenv profile for output.
// Auto honours NO_COLOR, disables colour when output is not a terminal and
// otherwise uses the detected terminal profile.
func Profile(output io.Writer, mode ColorMode) termenv.Profile {
	switch mode {
	case ColorNever:
		return termenv.Ascii
	case ColorAlways:
		return termenv.TrueColor
	}

	if os.Getenv("NO_COLOR") != "" {
		return termenv.Ascii
	}

	f, ok := output.(*os.File)
	if !ok || (!isatty.IsTerminal(f.Fd()) && !isatty.IsCygwinTerminal(f.Fd())) {
		return termenv.Ascii
	}

	return termenv.NewOutput(f).EnvColorProfile()
}

// NewRenderer returns a lipgloss renderer for output using mode
func NewRenderer(output io.Writer, mode ColorMode) *lipgloss.Renderer {
	r := lipgloss.NewRenderer(output)
	r.SetColorProfile(Profile(output, mode))
	return r
}
