package render

import (
	"fmt"
	"image"
	"io"
	"strings"

	"github.com/srwiley/oksvg"
	"github.com/srwiley/rasterx"
)

// SVGSource rasterizes an SVG document through oksvg. Its intrinsic size
// is the document's viewbox, which may be fractional; the renderer
// rejects fractional sources before any pixels are produced.
//
// SetTarget mutates the underlying icon, so an SVGSource must not be
// rendered from multiple goroutines at once. Parse the document once per
// worker if outputs are rendered in parallel.
type SVGSource struct {
	icon *oksvg.SvgIcon
}

// ParseSVG parses an SVG document into a renderable source.
func ParseSVG(r io.Reader) (*SVGSource, error) {
	icon, err := oksvg.ReadIconStream(r)
	if err != nil {
		return nil, fmt.Errorf("failed to parse svg: %w", err)
	}
	return &SVGSource{icon: icon}, nil
}

// ParseSVGString parses an SVG document held in memory, typically the
// output of color substitution.
func ParseSVGString(text string) (*SVGSource, error) {
	return ParseSVG(strings.NewReader(text))
}

// Size returns the viewbox size in pixels.
func (s *SVGSource) Size() (w, h float64) {
	return s.icon.ViewBox.W, s.icon.ViewBox.H
}

// Render rasterizes the document into dst. The affine transform maps the
// viewbox onto the target rectangle oksvg expects: an origin offset of
// tf.Offset and an extent of viewbox size times tf.Scale.
func (s *SVGSource) Render(dst *image.RGBA, tf Transform) {
	s.icon.SetTarget(tf.OffsetX, tf.OffsetY, s.icon.ViewBox.W*tf.ScaleX, s.icon.ViewBox.H*tf.ScaleY)

	b := dst.Bounds()
	scanner := rasterx.NewScannerGV(b.Dx(), b.Dy(), dst, b)
	s.icon.Draw(rasterx.NewDasher(b.Dx(), b.Dy(), scanner), 1)
}
