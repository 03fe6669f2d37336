package border

import (
	"image"
	"image/color"
	"image/draw"
	"math"
)

// Bounds holds one marker color's semantic border width for each of the
// four image edges, in pixels. A width of zero means the marker is absent
// on that edge.
//
// Bounds values are produced once per source image by Detect and are
// never mutated afterwards; Scale derives a new value for each output
// resolution.
type Bounds struct {
	Left   int `json:"left"`
	Right  int `json:"right"`
	Top    int `json:"top"`
	Bottom int `json:"bottom"`
}

// BoundsPair carries the two marker colors' measurements together. The
// two always travel as a pair: an image encodes at most one yellow and
// one pink region, and detection either recovers both or neither.
type BoundsPair struct {
	Yellow Bounds `json:"yellow"`
	Pink   Bounds `json:"pink"`
}

// IsEmpty reports whether all four widths are zero.
func (b Bounds) IsEmpty() bool {
	return b.Left == 0 && b.Right == 0 && b.Top == 0 && b.Bottom == 0
}

// IsEmpty reports whether both colors' bounds are empty.
func (p BoundsPair) IsEmpty() bool {
	return p.Yellow.IsEmpty() && p.Pink.IsEmpty()
}

// scaleValue scales one width. Zero stays zero: an edge with no marker
// never gains one. A nonzero width is rounded up and floored at 1, so a
// fixed-size region can never collapse under a fractional scale. Rounding
// up rather than to nearest errs on the side of a slightly larger fixed
// region, which degrades far more gracefully than one that is too small.
func scaleValue(v int, factor float64) int {
	if v == 0 {
		return 0
	}
	scaled := int(math.Ceil(float64(v) * factor))
	if scaled < 1 {
		return 1
	}
	return scaled
}

// Scale returns a copy of b with every width scaled by factor.
//
// For every field: Scale(x, f) == 0 iff x == 0, and the result is
// monotonic in f.
func (b Bounds) Scale(factor float64) Bounds {
	return Bounds{
		Left:   scaleValue(b.Left, factor),
		Right:  scaleValue(b.Right, factor),
		Top:    scaleValue(b.Top, factor),
		Bottom: scaleValue(b.Bottom, factor),
	}
}

// Scale scales both colors' bounds by the same factor.
func (p BoundsPair) Scale(factor float64) BoundsPair {
	return BoundsPair{
		Yellow: p.Yellow.Scale(factor),
		Pink:   p.Pink.Scale(factor),
	}
}

// fillRect overwrites a rectangle with an exact color. draw.Src replaces
// pixels outright, so marker colors land in the buffer byte-exact with no
// alpha blending or antialiasing.
func fillRect(img *image.RGBA, r image.Rectangle, c color.Color) {
	draw.Draw(img, r.Intersect(img.Bounds()), image.NewUniform(c), image.Point{}, draw.Src)
}

// Paint redraws b's marker lines onto img in the given color.
//
// It is a no-op when b is empty. Otherwise it draws four one-pixel-wide
// lines along the image edges, each field+1 pixels long, re-encoding the
// semantic width so that detection on the painted image recovers b again:
//
//   - a horizontal line of Left+1 pixels along the top row, from the left
//   - a vertical line of Top+1 pixels along the left column, from the top
//   - a horizontal line of Right+1 pixels along the bottom row, ending at
//     the right edge
//   - a vertical line of Bottom+1 pixels along the right column, ending
//     at the bottom edge
func (b Bounds) Paint(img *image.RGBA, c color.Color) {
	if b.IsEmpty() {
		return
	}

	w := img.Bounds().Dx()
	h := img.Bounds().Dy()

	fillRect(img, image.Rect(0, 0, b.Left+1, 1), c)
	fillRect(img, image.Rect(0, 0, 1, b.Top+1), c)
	fillRect(img, image.Rect(w-(b.Right+1), h-1, w, h), c)
	fillRect(img, image.Rect(w-1, h-(b.Bottom+1), w, h), c)
}

// EraseBounds clears all four one-pixel edge strips of img to fully
// transparent, regardless of what they held. A rescaled render always
// erases before repainting so that stale marker pixels from the scaled
// artwork never bleed into the new border.
func EraseBounds(img *image.RGBA) {
	w := img.Bounds().Dx()
	h := img.Bounds().Dy()

	clear := color.RGBA{}
	fillRect(img, image.Rect(0, 0, w, 1), clear)
	fillRect(img, image.Rect(0, h-1, w, h), clear)
	fillRect(img, image.Rect(0, 0, 1, h), clear)
	fillRect(img, image.Rect(w-1, 0, w, h), clear)
}
