package render

import (
	"image"
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/symmetrysyndicate/symfetch/pkg/errors"
	"github.com/symmetrysyndicate/symfetch/pkg/testutil"
	"github.com/symmetrysyndicate/symfetch/pkg/types"
)

type fakeBackend struct {
	name    string
	out     string
	err     error
	refuse  bool
	calls   int
	lastSrc types.ImageSource
}

func (f *fakeBackend) Name() string { return f.name }
func (f *fakeBackend) Accepts(types.ImageSource) bool { return !f.refuse }
func (f *fakeBackend) Render(_ image.Image, src types.ImageSource) (string, error) {
	f.calls++
	f.lastSrc = src
	return f.out, f.err
}

type countingDecoder struct {
	inner Decoder
	calls int
}

func (d *countingDecoder) Decode(path string) (image.Image, error) {
	d.calls++
	return d.inner.Decode(path)
}

func imageConfig(path string) types.RenderConfig {
	return types.RenderConfig{Image: &types.ImageSource{Path: path}}
}

func newTestSelector(t *testing.T, backends ...Backend) (*Selector, *countingDecoder) {
	t.Helper()
	fs := testutil.NewMemFS()
	testutil.WriteFile(t, fs, "/art/logo.txt", []byte("ab\nabc\n"))
	testutil.WriteFile(t, fs, "/art/bad.txt", []byte{0xff, 0xfe, 0x00})
	testutil.WritePNG(t, fs, "/art/logo.png", testutil.SolidImage(8, 8, color.White))
	testutil.WriteFile(t, fs, "/art/broken.png", []byte("nope"))

	dec := &countingDecoder{inner: NewImageDecoder(fs)}
	return NewSelector(fs, backends).WithDecoder(dec), dec
}

func TestSelectASCIIFile(t *testing.T) {
	ansi := &fakeBackend{name: "ansi", out: "should not be used"}
	s, dec := newTestSelector(t, ansi)

	t.Run("reads lines", func(t *testing.T) {
		res := s.Select(types.RenderConfig{Ascii: &types.AsciiSource{Path: "/art/logo.txt"}})
		assert.Equal(t, []string{"ab", "abc"}, res.Lines)
		assert.Equal(t, SourceFile, res.Backend)
		assert.Zero(t, res.DeclaredWidth)
	})

	t.Run("missing file is empty and never touches images", func(t *testing.T) {
		res := s.Select(types.RenderConfig{Ascii: &types.AsciiSource{Path: "/art/missing.txt"}})
		assert.True(t, res.IsEmpty())
		assert.Zero(t, ansi.calls)
		assert.Zero(t, dec.calls)
	})

	t.Run("directory is empty", func(t *testing.T) {
		res := s.Select(types.RenderConfig{Ascii: &types.AsciiSource{Path: "/art"}})
		assert.True(t, res.IsEmpty())
	})

	t.Run("blank lines only is empty", func(t *testing.T) {
		fs := testutil.NewMemFS()
		testutil.WriteFile(t, fs, "/art/blank.txt", []byte("\n\n\n"))
		res := NewSelector(fs, nil).Select(types.RenderConfig{Ascii: &types.AsciiSource{Path: "/art/blank.txt"}})
		assert.True(t, res.IsEmpty())
	})

	t.Run("invalid utf8 is empty", func(t *testing.T) {
		res := s.Select(types.RenderConfig{Ascii: &types.AsciiSource{Path: "/art/bad.txt"}})
		assert.True(t, res.IsEmpty())
	})
}

func TestSelectNothingConfigured(t *testing.T) {
	s, _ := newTestSelector(t, NewASCIIBackend(), NewANSIBackend())
	assert.True(t, s.Select(types.RenderConfig{}).IsEmpty())
}

func TestSelectPrecedence(t *testing.T) {
	t.Run("ascii success skips ansi", func(t *testing.T) {
		ascii := &fakeBackend{name: "ascii", out: "##\n##\n"}
		ansi := &fakeBackend{name: "ansi", out: "xx\n"}
		s, _ := newTestSelector(t, ascii, ansi)

		res := s.Select(imageConfig("/art/logo.png"))

		assert.Equal(t, []string{"##", "##"}, res.Lines)
		assert.Equal(t, "ascii", res.Backend)
		assert.Equal(t, 1, ascii.calls)
		assert.Zero(t, ansi.calls, "ansi backend must not be invoked")
	})

	t.Run("ascii failure falls through to ansi", func(t *testing.T) {
		ascii := &fakeBackend{name: "ascii", err: errors.New(errors.ErrRenderFailed, "boom")}
		ansi := &fakeBackend{name: "ansi", out: "xx\n"}
		s, dec := newTestSelector(t, ascii, ansi)

		res := s.Select(imageConfig("/art/logo.png"))

		assert.Equal(t, []string{"xx"}, res.Lines)
		assert.Equal(t, "ansi", res.Backend)
		assert.Equal(t, 1, dec.calls, "image is decoded once per selection")
	})

	t.Run("empty output falls through", func(t *testing.T) {
		ascii := &fakeBackend{name: "ascii", out: ""}
		ansi := &fakeBackend{name: "ansi", out: "xx"}
		s, _ := newTestSelector(t, ascii, ansi)

		assert.Equal(t, "ansi", s.Select(imageConfig("/art/logo.png")).Backend)
	})

	t.Run("blank output falls through", func(t *testing.T) {
		ascii := &fakeBackend{name: "ascii", out: "\n\n"}
		ansi := &fakeBackend{name: "ansi", out: "xx"}
		s, _ := newTestSelector(t, ascii, ansi)

		res := s.Select(imageConfig("/art/logo.png"))
		assert.Equal(t, "ansi", res.Backend)
		assert.Equal(t, []string{"xx"}, res.Lines)
		assert.Equal(t, 1, ascii.calls)
	})

	t.Run("only blank output is empty", func(t *testing.T) {
		ansi := &fakeBackend{name: "ansi", out: "\n  \n\n"}
		s, _ := newTestSelector(t, ansi)

		res := s.Select(imageConfig("/art/logo.png"))
		assert.True(t, res.IsEmpty())
		assert.Empty(t, res.Lines)
	})

	t.Run("backend that refuses the source is skipped", func(t *testing.T) {
		ascii := &fakeBackend{name: "ascii", out: "##", refuse: true}
		ansi := &fakeBackend{name: "ansi", out: "xx"}
		s, _ := newTestSelector(t, ascii, ansi)

		res := s.Select(imageConfig("/art/logo.png"))
		assert.Equal(t, "ansi", res.Backend)
		assert.Zero(t, ascii.calls)
	})

	t.Run("all backends fail", func(t *testing.T) {
		ascii := &fakeBackend{name: "ascii", err: errors.New(errors.ErrRenderFailed, "a")}
		ansi := &fakeBackend{name: "ansi", err: errors.New(errors.ErrRenderFailed, "b")}
		s, _ := newTestSelector(t, ascii, ansi)

		assert.True(t, s.Select(imageConfig("/art/logo.png")).IsEmpty())
		assert.Equal(t, 1, ascii.calls)
		assert.Equal(t, 1, ansi.calls)
	})

	t.Run("no backends available", func(t *testing.T) {
		s, dec := newTestSelector(t)
		assert.True(t, s.Select(imageConfig("/art/logo.png")).IsEmpty())
		assert.Zero(t, dec.calls)
	})
}

func TestSelectImageFailures(t *testing.T) {
	ascii := &fakeBackend{name: "ascii", out: "##"}
	ansi := &fakeBackend{name: "ansi", out: "xx"}
	s, _ := newTestSelector(t, ascii, ansi)

	for _, path := range []string{"/art/missing.png", "/art/broken.png"} {
		res := s.Select(imageConfig(path))
		assert.True(t, res.IsEmpty(), path)
	}
	assert.Zero(t, ascii.calls)
	assert.Zero(t, ansi.calls)
}

func TestSelectDeclaredWidth(t *testing.T) {
	ascii := &fakeBackend{name: "ascii", out: "ab\nabc"}
	s, _ := newTestSelector(t, ascii)

	cfg := types.RenderConfig{Image: &types.ImageSource{Path: "/art/logo.png", Width: types.Uint(6)}}
	res := s.Select(cfg)

	assert.Equal(t, 6, res.DeclaredWidth)
	assert.Equal(t, uint(6), *ascii.lastSrc.Width)
	assert.Nil(t, ascii.lastSrc.Height, "height is omitted rather than defaulted")

	block := res.Block()
	assert.Equal(t, 6, block.Width)
	assert.Equal(t, []string{"ab    ", "abc   "}, block.Lines)
}

func TestSelectWithRealBackends(t *testing.T) {
	s, _ := newTestSelector(t, DefaultBackends()...)
	assert.Equal(t, []string{"ascii", "ansi"}, s.Backends())

	t.Run("ascii backend wins by default", func(t *testing.T) {
		cfg := types.RenderConfig{Image: &types.ImageSource{Path: "/art/logo.png", Width: types.Uint(10), Height: types.Uint(5)}}
		res := s.Select(cfg)
		require.False(t, res.IsEmpty())
		assert.Equal(t, BackendASCII, res.Backend)
		assert.Len(t, res.Lines, 5)
	})

	t.Run("as_ascii false goes straight to ansi", func(t *testing.T) {
		cfg := types.RenderConfig{Image: &types.ImageSource{Path: "/art/logo.png", AsASCII: types.Bool(false)}}
		res := s.Select(cfg)
		require.False(t, res.IsEmpty())
		assert.Equal(t, BackendANSI, res.Backend)
	})

	t.Run("selection is repeatable", func(t *testing.T) {
		cfg := types.RenderConfig{Image: &types.ImageSource{Path: "/art/logo.png", Width: types.Uint(12)}}
		assert.Equal(t, s.Select(cfg), s.Select(cfg))
	})
}
