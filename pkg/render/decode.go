package render

import (
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	"github.com/spf13/afero"
	"github.com/symmetrysyndicate/symfetch/pkg/errors"
	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"
)

// Decoder loads an image from a path
type Decoder interface {
	Decode(path string) (image.Image, error)
}

// ImageDecoder decodes PNG, JPEG, GIF, BMP, TIFF and WebP files from a file system
type ImageDecoder struct {
	fs afero.Fs
}

// NewImageDecoder creates a decoder reading from fs
func NewImageDecoder(fs afero.Fs) *ImageDecoder {
	return &ImageDecoder{fs: fs}
}

// Decode opens path, sniffs its format and decodes it. The file is closed before returning.
func (d *ImageDecoder) Decode(path string) (image.Image, error) {
	f, err := d.fs.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrFileAccess, "failed to open image %s", path)
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrImageDecode, "failed to decode image %s", path)
	}
	if b := img.Bounds(); b.Dx() == 0 || b.Dy() == 0 {
		return nil, errors.Newf(errors.ErrImageDecode, "image %s has no pixels", path)
	}
	return img, nil
}
