package render

import (
	"image"
	"image/color"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/symmetrysyndicate/symfetch/pkg/layout"
	"github.com/symmetrysyndicate/symfetch/pkg/testutil"
	"github.com/symmetrysyndicate/symfetch/pkg/types"
)

func TestASCIISize(t *testing.T) {
	bounds := image.Rect(0, 0, 200, 100)

	tests := []struct {
		name  string
		src   types.ImageSource
		wantW int
		wantH int
	}{
		{"defaults", types.ImageSource{}, 100, 100},
		{"both given", types.ImageSource{Width: types.Uint(30), Height: types.Uint(7)}, 30, 7},
		{"width only derives height", types.ImageSource{Width: types.Uint(80)}, 80, 20},
		{"height only derives width", types.ImageSource{Height: types.Uint(10)}, 40, 10},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w, h, err := asciiSize(bounds, tt.src)
			require.NoError(t, err)
			assert.Equal(t, tt.wantW, w)
			assert.Equal(t, tt.wantH, h)
		})
	}

	t.Run("zero width rejected", func(t *testing.T) {
		_, _, err := asciiSize(bounds, types.ImageSource{Width: types.Uint(0), Height: types.Uint(5)})
		assert.Error(t, err)
	})
}

func TestASCIIBackendRender(t *testing.T) {
	b := NewASCIIBackend()
	src := types.ImageSource{Width: types.Uint(8), Height: types.Uint(4)}

	t.Run("white maps to the brightest rune", func(t *testing.T) {
		out, err := b.Render(testutil.SolidImage(16, 16, color.White), src)
		require.NoError(t, err)

		lines := layout.SplitLines(out)
		require.Len(t, lines, 4)
		for _, l := range lines {
			assert.Equal(t, strings.Repeat("@", 8), l)
		}
	})

	t.Run("black and transparent map to spaces", func(t *testing.T) {
		for _, c := range []color.Color{color.Black, color.Transparent} {
			out, err := b.Render(testutil.SolidImage(16, 16, c), src)
			require.NoError(t, err)
			for _, l := range layout.SplitLines(out) {
				assert.Equal(t, strings.Repeat(" ", 8), l)
			}
		}
	})

	t.Run("colored output keeps display width", func(t *testing.T) {
		colored := src
		colored.Colored = types.Bool(true)
		out, err := b.Render(testutil.SolidImage(16, 16, color.NRGBA{R: 200, G: 40, B: 40, A: 255}), colored)
		require.NoError(t, err)

		assert.Contains(t, out, "\x1b[38;2;")
		for _, l := range layout.SplitLines(out) {
			assert.Equal(t, 8, layout.DisplayWidth(l))
		}
	})

	t.Run("custom charset", func(t *testing.T) {
		custom := NewASCIIBackend().WithCharset("01")
		out, err := custom.Render(testutil.SolidImage(4, 4, color.White), src)
		require.NoError(t, err)
		assert.Equal(t, strings.Repeat("1", 8), layout.SplitLines(out)[0])
	})
}

func TestASCIIBackendAccepts(t *testing.T) {
	b := NewASCIIBackend()
	assert.True(t, b.Accepts(types.ImageSource{}))
	assert.True(t, b.Accepts(types.ImageSource{AsASCII: types.Bool(true)}))
	assert.False(t, b.Accepts(types.ImageSource{AsASCII: types.Bool(false)}))
}
