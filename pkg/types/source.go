package types

import "fmt"

// SourceKind identifies which variant of RenderConfig is set
type SourceKind string

const (
	SourceNone  SourceKind = "none"
	SourceASCII SourceKind = "ascii"
	SourceImage SourceKind = "image"
)

// AsciiSource points at a plain text file holding ASCII art
type AsciiSource struct {
	Path string
}

// ImageSource points at an image file plus optional rendering hints.
// A nil hint means "not configured"; each backend applies its own default.
type ImageSource struct {
	Path    string
	Width   *uint
	Height  *uint
	Colored *bool
	AsASCII *bool
}

// WidthOr returns the configured width or def
func (s ImageSource) WidthOr(def uint) uint {
	if s.Width != nil {
		return *s.Width
	}
	return def
}

// HeightOr returns the configured height or def
func (s ImageSource) HeightOr(def uint) uint {
	if s.Height != nil {
		return *s.Height
	}
	return def
}

// IsColored reports the colored hint, false when unset
func (s ImageSource) IsColored() bool {
	return s.Colored != nil && *s.Colored
}

// AllowsASCII reports whether the image may be rendered as plain ASCII.
// Unset means allowed.
func (s ImageSource) AllowsASCII() bool {
	return s.AsASCII == nil || *s.AsASCII
}

// DeclaredWidth returns the explicit width hint, or 0 when none was configured
func (s ImageSource) DeclaredWidth() int {
	if s.Width == nil {
		return 0
	}
	return int(*s.Width)
}

// RenderConfig is the validated choice of graphic source. Exactly one of
// Ascii and Image is set once it leaves the config package.
type RenderConfig struct {
	Ascii *AsciiSource
	Image *ImageSource
}

// Kind reports which source is configured
func (c RenderConfig) Kind() SourceKind {
	switch {
	case c.Ascii != nil:
		return SourceASCII
	case c.Image != nil:
		return SourceImage
	default:
		return SourceNone
	}
}

// String is used in logs and by `config check`
func (c RenderConfig) String() string {
	switch c.Kind() {
	case SourceASCII:
		return fmt.Sprintf("ascii(%s)", c.Ascii.Path)
	case SourceImage:
		return fmt.Sprintf("image(%s)", c.Image.Path)
	default:
		return "none"
	}
}

// Uint returns a pointer to v, for building hints in code and tests
func Uint(v uint) *uint { return &v }

// Bool returns a pointer to v
func Bool(v bool) *bool { return &v }
