package render

import (
	"fmt"
	"image"
	"image/color"
	"strings"

	"github.com/muesli/termenv"
	"github.com/symmetrysyndicate/symfetch/pkg/errors"
	"github.com/symmetrysyndicate/symfetch/pkg/types"
)

const (
	defaultANSIWidth  = 40
	defaultANSIHeight = 20

	upperHalf = "▀"
	lowerHalf = "▄"
)

// ANSIBackend draws two pixel rows per terminal row using half block
// characters with truecolor foreground and background.
type ANSIBackend struct{}

// NewANSIBackend creates the truecolor backend
func NewANSIBackend() *ANSIBackend {
	return &ANSIBackend{}
}

func (b *ANSIBackend) Name() string { return BackendANSI }

func (b *ANSIBackend) Accepts(types.ImageSource) bool { return true }

// Render fits img into width x height cells (40x20 unless configured),
// preserving the aspect ratio. Trailing blank cells are trimmed.
func (b *ANSIBackend) Render(img image.Image, src types.ImageSource) (string, error) {
	cols, rows := int(src.WidthOr(defaultANSIWidth)), int(src.HeightOr(defaultANSIHeight))
	if cols <= 0 || rows <= 0 {
		return "", errors.Newf(errors.ErrRenderFailed, "invalid render size %dx%d", cols, rows)
	}

	w, h := fit(img.Bounds(), cols, rows*2)
	pixels := scale(img, w, h)

	var sb strings.Builder
	for y := 0; y < h; y += 2 {
		var line strings.Builder
		open := false
		for x := 0; x < w; x++ {
			top := pixels.NRGBAAt(x, y)
			bottom := color.NRGBA{}
			if y+1 < h {
				bottom = pixels.NRGBAAt(x, y+1)
			}

			switch {
			case opaque(top) && opaque(bottom):
				line.WriteString(sgr(fg(top), bg(bottom)) + upperHalf)
				open = true
			case opaque(top):
				line.WriteString(sgr(fg(top)) + upperHalf)
				open = true
			case opaque(bottom):
				line.WriteString(sgr(fg(bottom)) + lowerHalf)
				open = true
			default:
				if open {
					line.WriteString(reset())
					open = false
				}
				line.WriteByte(' ')
			}
		}
		if open {
			line.WriteString(reset())
		}
		sb.WriteString(strings.TrimRight(line.String(), " "))
		sb.WriteByte('\n')
	}
	return sb.String(), nil
}

func hex(c color.NRGBA) string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

func fg(c color.NRGBA) string {
	return termenv.TrueColor.Color(hex(c)).Sequence(false)
}

func bg(c color.NRGBA) string {
	return termenv.TrueColor.Color(hex(c)).Sequence(true)
}

// sgr resets attributes and applies params, so no colour leaks between cells
func sgr(params ...string) string {
	return termenv.CSI + termenv.ResetSeq + ";" + strings.Join(params, ";") + "m"
}

func reset() string {
	return termenv.CSI + termenv.ResetSeq + "m"
}
