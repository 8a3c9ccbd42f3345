package render

import (
	"image"
	"image/color"
	"math"

	"golang.org/x/image/draw"
)

// scale resamples img to exactly w x h pixels
func scale(img image.Image, w, h int) *image.NRGBA {
	dst := image.NewNRGBA(image.Rect(0, 0, w, h))
	draw.CatmullRom.Scale(dst, dst.Bounds(), img, img.Bounds(), draw.Src, nil)
	return dst
}

// fit returns the largest size with the image's aspect ratio that fits in maxW x maxH
func fit(bounds image.Rectangle, maxW, maxH int) (int, int) {
	iw, ih := float64(bounds.Dx()), float64(bounds.Dy())
	ratio := math.Min(float64(maxW)/iw, float64(maxH)/ih)
	return max(1, int(math.Round(iw*ratio))), max(1, int(math.Round(ih*ratio)))
}

// opaque reports whether a pixel is visible enough to draw
func opaque(c color.NRGBA) bool {
	return c.A >= 128
}
