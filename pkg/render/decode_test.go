package render

import (
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/symmetrysyndicate/symfetch/pkg/errors"
	"github.com/symmetrysyndicate/symfetch/pkg/testutil"
)

func TestImageDecoder(t *testing.T) {
	fs := testutil.NewMemFS()
	testutil.WritePNG(t, fs, "/img/logo.png", testutil.SolidImage(6, 3, color.White))
	testutil.WriteFile(t, fs, "/img/garbage.png", []byte("definitely not a png"))

	d := NewImageDecoder(fs)

	t.Run("decodes png", func(t *testing.T) {
		img, err := d.Decode("/img/logo.png")
		require.NoError(t, err)
		assert.Equal(t, 6, img.Bounds().Dx())
		assert.Equal(t, 3, img.Bounds().Dy())
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := d.Decode("/img/missing.png")
		assert.True(t, errors.IsErrorCode(err, errors.ErrFileAccess))
	})

	t.Run("undecodable file", func(t *testing.T) {
		_, err := d.Decode("/img/garbage.png")
		assert.True(t, errors.IsErrorCode(err, errors.ErrImageDecode))
	})
}
