package render

import (
	"image"
	"image/draw"

	"github.com/anthonynsimon/bild/transform"
	xdraw "golang.org/x/image/draw"
	"golang.org/x/image/math/f64"
)

// RasterSource adapts an already-decoded bitmap (a rendered PNG theme
// asset) to the Source interface, so raster inputs flow through the same
// tile-exact upscale pipeline as SVGs. Raster intrinsic sizes are always
// whole pixels.
//
// RasterSource is read-only over the wrapped image and safe for
// concurrent Render calls.
type RasterSource struct {
	img image.Image
}

// NewRasterSource wraps a decoded image.
func NewRasterSource(img image.Image) *RasterSource {
	return &RasterSource{img: img}
}

// Size returns the bitmap's pixel dimensions.
func (s *RasterSource) Size() (w, h float64) {
	b := s.img.Bounds()
	return float64(b.Dx()), float64(b.Dy())
}

// Render draws the bitmap into dst under tf.
//
// Three paths, cheapest capable one wins:
//   - identity into an equal-sized buffer: direct pixel copy
//   - pure scale to the full buffer: Lanczos resize
//   - anything with an offset (the border-aware frame shift): affine
//     Catmull-Rom transform
func (s *RasterSource) Render(dst *image.RGBA, tf Transform) {
	b := dst.Bounds()
	srcB := s.img.Bounds()

	if tf.OffsetX == 0 && tf.OffsetY == 0 {
		if tf.ScaleX == 1 && tf.ScaleY == 1 && b.Dx() == srcB.Dx() && b.Dy() == srcB.Dy() {
			draw.Draw(dst, b, s.img, srcB.Min, draw.Src)
			return
		}
		resized := transform.Resize(s.img, b.Dx(), b.Dy(), transform.Lanczos)
		draw.Draw(dst, b, resized, resized.Bounds().Min, draw.Src)
		return
	}

	m := f64.Aff3{
		tf.ScaleX, 0, tf.OffsetX,
		0, tf.ScaleY, tf.OffsetY,
	}
	xdraw.CatmullRom.Transform(dst, m, s.img, srcB, xdraw.Src, nil)
}
