package layout

import "strings"

// TextBlock is an ordered set of lines padded to a common width
type TextBlock struct {
	Lines []string
	Width int
}

// Height is the number of lines in the block
func (b TextBlock) Height() int {
	return len(b.Lines)
}

// IsEmpty reports whether the block has nothing to show
func (b TextBlock) IsEmpty() bool {
	return b.Width == 0
}

// Normalize measures lines and pads each one on the right to the widest line
func Normalize(lines []string) TextBlock {
	width := 0
	for _, l := range lines {
		if w := DisplayWidth(l); w > width {
			width = w
		}
	}

	padded := make([]string, len(lines))
	for i, l := range lines {
		padded[i] = PadRight(l, width)
	}
	return TextBlock{Lines: padded, Width: width}
}

// FromText splits text into lines and normalizes them. A single trailing
// newline does not produce an extra empty row.
func FromText(text string) TextBlock {
	return Normalize(SplitLines(text))
}

// SplitLines splits on "\n", dropping a trailing "\r" per line and the empty
// element after a final newline
func SplitLines(text string) []string {
	if text == "" {
		return nil
	}
	lines := strings.Split(text, "\n")
	if lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	for i, l := range lines {
		lines[i] = strings.TrimSuffix(l, "\r")
	}
	return lines
}

// PadTo widens the block to width cells. An empty block stays empty and a
// block is never narrowed below its natural width.
func (b TextBlock) PadTo(width int) TextBlock {
	if b.IsEmpty() || width <= b.Width {
		return b
	}
	padded := make([]string, len(b.Lines))
	for i, l := range b.Lines {
		padded[i] = PadRight(l, width)
	}
	return TextBlock{Lines: padded, Width: width}
}

// Raw measures lines without padding them. It is used for the right-hand
// column, whose lines are printed verbatim.
func Raw(lines []string) TextBlock {
	width := 0
	for _, l := range lines {
		if w := DisplayWidth(l); w > width {
			width = w
		}
	}
	return TextBlock{Lines: lines, Width: width}
}
