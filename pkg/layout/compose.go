package layout

import "strings"

// Divider separates the left and right columns
const Divider = " | "

// Compose merges left and right row by row. Missing left rows become blank
// cells of the left width, missing right rows become empty strings. When the
// left block is empty the right lines are returned verbatim with no divider.
func Compose(left, right TextBlock) []string {
	if left.IsEmpty() {
		return append(make([]string, 0, right.Height()), right.Lines...)
	}

	rows := max(left.Height(), right.Height())
	out := make([]string, 0, rows)

	blank := strings.Repeat(" ", left.Width)
	for i := 0; i < rows; i++ {
		l := blank
		if i < left.Height() {
			l = PadRight(left.Lines[i], left.Width)
		}
		out = append(out, l+Divider+cell(right.Lines, i))
	}
	return out
}

func cell(lines []string, i int) string {
	if i < len(lines) {
		return lines[i]
	}
	return ""
}
