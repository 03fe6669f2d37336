package render

import "image"

// Transform is the axis-aligned affine transform the pipeline needs:
// scale about the origin, then translate. Rotation and shear never occur
// here, so the full 2x3 matrix would be dead weight.
type Transform struct {
	ScaleX, ScaleY   float64
	OffsetX, OffsetY float64
}

// Identity is the no-op transform.
var Identity = Transform{ScaleX: 1, ScaleY: 1}

// Source is a graphic that can rasterize itself into a pixel buffer.
//
// Size returns the intrinsic size in pixels; vector sources may report a
// fractional size, which the renderer rejects. Render draws the source
// into dst with tf applied, compositing with standard alpha over a
// transparent buffer.
//
// Sources are not required to be safe for concurrent Render calls;
// parallel output rendering must use one Source per goroutine.
type Source interface {
	Size() (w, h float64)
	Render(dst *image.RGBA, tf Transform)
}
