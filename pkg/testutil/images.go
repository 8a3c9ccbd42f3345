package testutil

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"path/filepath"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/require"
)

// SolidImage returns a w x h image filled with c
func SolidImage(w, h int, c color.Color) *image.NRGBA {
	return PatternImage(w, h, func(int, int) color.Color { return c })
}

// PatternImage returns a w x h image whose pixels come from fill
func PatternImage(w, h int, fill func(x, y int) color.Color) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.Set(x, y, fill(x, y))
		}
	}
	return img
}

// EncodePNG returns img encoded as PNG
func EncodePNG(t *testing.T, img image.Image) []byte {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	return buf.Bytes()
}

// WritePNG encodes img into path on fs, creating parent directories
func WritePNG(t *testing.T, fs afero.Fs, path string, img image.Image) {
	t.Helper()
	WriteFile(t, fs, path, EncodePNG(t, img))
}

// WriteFile writes data into path on fs, creating parent directories
func WriteFile(t *testing.T, fs afero.Fs, path string, data []byte) {
	t.Helper()
	require.NoError(t, fs.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(t, afero.WriteFile(fs, path, data, 0644))
}

// NewMemFS returns an empty in-memory file system
func NewMemFS() afero.Fs {
	return afero.NewMemMapFs()
}
