package render

import (
	"image"
	"math"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
	"github.com/muesli/termenv"
	"github.com/symmetrysyndicate/symfetch/pkg/errors"
	"github.com/symmetrysyndicate/symfetch/pkg/types"
)

const (
	// DefaultCharset runs from darkest to brightest
	DefaultCharset = " .:-=+*#%@"

	defaultASCIIWidth  = 100
	defaultASCIIHeight = 100

	// terminal cells are roughly twice as tall as they are wide
	cellAspect = 0.5
)

// ASCIIBackend maps pixel luminance onto a character ramp
type ASCIIBackend struct {
	charset []rune
}

// NewASCIIBackend creates a backend using DefaultCharset
func NewASCIIBackend() *ASCIIBackend {
	return &ASCIIBackend{charset: []rune(DefaultCharset)}
}

// WithCharset replaces the character ramp; ramps shorter than two runes are ignored
func (b *ASCIIBackend) WithCharset(charset string) *ASCIIBackend {
	if r := []rune(charset); len(r) >= 2 {
		b.charset = r
	}
	return b
}

func (b *ASCIIBackend) Name() string { return BackendASCII }

func (b *ASCIIBackend) Accepts(src types.ImageSource) bool {
	return src.AllowsASCII()
}

// Render draws img as characters. With neither width nor height configured
// the output is 100x100; with only one configured the other follows the
// image aspect ratio.
func (b *ASCIIBackend) Render(img image.Image, src types.ImageSource) (string, error) {
	w, h, err := asciiSize(img.Bounds(), src)
	if err != nil {
		return "", err
	}

	pixels := scale(img, w, h)
	colored := src.IsColored()
	last := len(b.charset) - 1

	var sb strings.Builder
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			px := pixels.NRGBAAt(x, y)
			if !opaque(px) {
				sb.WriteByte(' ')
				continue
			}
			c, _ := colorful.MakeColor(px)
			l, _, _ := c.Lab()
			idx := int(math.Round(clamp01(l) * float64(last)))
			ch := b.charset[idx]
			if colored {
				sb.WriteString(termenv.CSI + termenv.TrueColor.Color(c.Clamped().Hex()).Sequence(false) + "m")
				sb.WriteRune(ch)
				sb.WriteString(termenv.CSI + termenv.ResetSeq + "m")
				continue
			}
			sb.WriteRune(ch)
		}
		sb.WriteByte('\n')
	}
	return sb.String(), nil
}

func asciiSize(bounds image.Rectangle, src types.ImageSource) (int, int, error) {
	iw, ih := float64(bounds.Dx()), float64(bounds.Dy())
	if iw == 0 || ih == 0 {
		return 0, 0, errors.New(errors.ErrRenderFailed, "image has no pixels")
	}

	var w, h int
	switch {
	case src.Width == nil && src.Height == nil:
		w, h = defaultASCIIWidth, defaultASCIIHeight
	case src.Width != nil && src.Height != nil:
		w, h = int(*src.Width), int(*src.Height)
	case src.Width != nil:
		w = int(*src.Width)
		h = max(1, int(math.Round(float64(w)*ih/iw*cellAspect)))
	default:
		h = int(*src.Height)
		w = max(1, int(math.Round(float64(h)*iw/ih/cellAspect)))
	}

	if w <= 0 || h <= 0 {
		return 0, 0, errors.Newf(errors.ErrRenderFailed, "invalid render size %dx%d", w, h)
	}
	return w, h, nil
}

func clamp01(v float64) float64 {
	return math.Max(0, math.Min(1, v))
}
