package render

import "fmt"

// InvalidScaleError reports a scale factor the renderer cannot honor.
// Zero and negative factors are meaningless; factors below 1 are
// downscales, which this tool deliberately does not support and never
// silently clamps.
type InvalidScaleError struct {
	Scale float64
}

func (e *InvalidScaleError) Error() string {
	return fmt.Sprintf("scale amount %g is invalid", e.Scale)
}

// FractionalInputResolutionError reports a source whose intrinsic size is
// not a whole number of pixels. A correctly bordered integer bitmap
// cannot be produced from a fractional source.
type FractionalInputResolutionError struct {
	Width, Height float64
}

func (e *FractionalInputResolutionError) Error() string {
	return fmt.Sprintf("input has fractional resolution of %g x %g", e.Width, e.Height)
}

// NotDivisibleIntoTilesError reports an inner image size that does not
// divide evenly into the requested tile counts. Tile sizes are a hard
// precondition, not a rounding target.
type NotDivisibleIntoTilesError struct {
	Width, Height  int
	TilesX, TilesY int
}

func (e *NotDivisibleIntoTilesError) Error() string {
	return fmt.Sprintf("input image of size %dx%d cannot be cleanly divided into %d by %d tiles",
		e.Width, e.Height, e.TilesX, e.TilesY)
}

// InvalidOutputResolutionError reports an output bitmap size that cannot
// be allocated (a dimension computed to zero or below).
type InvalidOutputResolutionError struct {
	Width, Height int
}

func (e *InvalidOutputResolutionError) Error() string {
	return fmt.Sprintf("output image of size %dx%d cannot be created", e.Width, e.Height)
}
