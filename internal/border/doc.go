// Package border detects and redraws REAPER's reserved-color border markers.
//
// REAPER theme images encode resize metadata directly in pixel color: a
// one-pixel frame drawn in two reserved colors marks which regions of an
// image may stretch when the image is scaled. Yellow (#FFFF00) and pink
// (#FF00FF) each carry an independent measurement, so a single image can
// describe both a coarse and a fine-grained stretch region.
//
// # Marker Encoding
//
// A marker run of N pixels along an edge represents a semantic region of
// N-1 pixels: the marker is one line drawn at the boundary of the region
// it delimits. Detection inverts that encoding, and Bounds.Paint applies
// it again when a scaled border is redrawn.
//
// # Coordinate System
//
// All pixel coordinates are 0-based with the origin at the top-left
// corner, matching the rest of the repository. Only the four one-pixel
// edge strips of an image are ever examined; interior pixels are not
// authoritative and are left alone.
//
// # Thread Safety
//
// Everything in this package is a pure function over the supplied image.
// Bounds values are immutable after construction; Scale returns a new
// value. Paint and EraseBounds mutate only the image they are given.
package border
