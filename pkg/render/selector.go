package render

import (
	"image"

	"github.com/rs/zerolog"
	"github.com/spf13/afero"
	"github.com/symmetrysyndicate/symfetch/pkg/layout"
	"github.com/symmetrysyndicate/symfetch/pkg/logging"
	"github.com/symmetrysyndicate/symfetch/pkg/types"
)

// SourceFile names the result of reading an ASCII art file
const SourceFile = "file"

// Result is the outcome of Select: raw left-column lines, or nothing
type Result struct {
	Lines []string
	// Backend names what produced Lines: SourceFile or a backend name
	Backend string
	// DeclaredWidth is the explicit image width hint, 0 when none applies
	DeclaredWidth int
}

// IsEmpty reports whether there is no usable left column. Lines that are all
// blank count as empty.
func (r Result) IsEmpty() bool {
	return r.Block().IsEmpty()
}

// Block normalizes the lines and widens them to the declared width
func (r Result) Block() layout.TextBlock {
	return layout.Normalize(r.Lines).PadTo(r.DeclaredWidth)
}

// Selector chooses the strategy that produces the left column
type Selector struct {
	fs       afero.Fs
	decoder  Decoder
	backends []Backend
	logger   zerolog.Logger
}

// NewSelector creates a selector reading from fs and trying backends in order.
// An empty backend list disables image rendering.
func NewSelector(fs afero.Fs, backends []Backend) *Selector {
	return &Selector{
		fs:       fs,
		decoder:  NewImageDecoder(fs),
		backends: backends,
		logger:   logging.GetLogger("render"),
	}
}

// WithDecoder replaces the image decoder
func (s *Selector) WithDecoder(d Decoder) *Selector {
	s.decoder = d
	return s
}

// Backends returns the names of the configured backends in precedence order
func (s *Selector) Backends() []string {
	names := make([]string, len(s.backends))
	for i, b := range s.backends {
		names[i] = b.Name()
	}
	return names
}

// Select produces the left column for cfg. It never fails: any error is
// logged and yields an empty Result.
func (s *Selector) Select(cfg types.RenderConfig) Result {
	switch cfg.Kind() {
	case types.SourceASCII:
		return s.selectFile(*cfg.Ascii)
	case types.SourceImage:
		return s.selectImage(*cfg.Image)
	default:
		s.logger.Debug().Msg("No graphic configured")
		return Result{}
	}
}

// selectFile never falls through to image handling
func (s *Selector) selectFile(src types.AsciiSource) Result {
	text, err := readTextFile(s.fs, src.Path)
	if err != nil {
		s.logger.Debug().Err(err).Str("path", src.Path).Msg("ASCII art unavailable")
		return Result{}
	}

	lines := layout.SplitLines(text)
	s.logger.Debug().Str("path", src.Path).Int("lines", len(lines)).Msg("ASCII art loaded")
	return Result{Lines: lines, Backend: SourceFile}
}

func (s *Selector) selectImage(src types.ImageSource) Result {
	var (
		img       image.Image
		decodeErr error
		decoded   bool
	)

	for _, b := range s.backends {
		logger := s.logger.With().Str("backend", b.Name()).Str("path", src.Path).Logger()

		if !b.Accepts(src) {
			logger.Debug().Msg("Backend not applicable to this image")
			continue
		}

		if !decoded {
			img, decodeErr = s.decoder.Decode(src.Path)
			decoded = true
		}
		if decodeErr != nil {
			logger.Debug().Err(decodeErr).Msg("Image unavailable")
			continue
		}

		text, err := b.Render(img, src)
		if err != nil {
			logger.Debug().Err(err).Msg("Backend failed, trying next")
			continue
		}

		block := layout.FromText(text)
		if block.IsEmpty() {
			logger.Debug().Int("lines", block.Height()).Msg("Backend produced no output, trying next")
			continue
		}

		logger.Debug().Int("lines", block.Height()).Int("width", block.Width).Msg("Image rendered")
		return Result{Lines: block.Lines, Backend: b.Name(), DeclaredWidth: src.DeclaredWidth()}
	}

	s.logger.Debug().Str("path", src.Path).Msg("No backend produced a graphic")
	return Result{}
}
