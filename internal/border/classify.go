package border

import "image/color"

// Reserved marker colors. These are metadata, never artwork: REAPER reads
// them back out of the pixels, so they must be written exactly, fully
// opaque, with no blending.
var (
	// Yellow is the first reserved marker color (#FFFF00).
	Yellow = color.RGBA{R: 255, G: 255, B: 0, A: 255}

	// Pink is the second reserved marker color (#FF00FF).
	Pink = color.RGBA{R: 255, G: 0, B: 255, A: 255}
)

// PixelClass is the classification of a single pixel during border
// detection.
type PixelClass int

const (
	// PixelYellow is a fully opaque pixel matching the yellow marker.
	PixelYellow PixelClass = iota

	// PixelPink is a fully opaque pixel matching the pink marker.
	PixelPink

	// PixelTransparent is any pixel with zero alpha, regardless of its
	// RGB channels.
	PixelTransparent

	// PixelOther is everything else. An Other pixel anywhere on an edge
	// strip means the image has no marker border at all.
	PixelOther
)

// String returns a short name for the class, used in log output and test
// failure messages.
func (c PixelClass) String() string {
	switch c {
	case PixelYellow:
		return "yellow"
	case PixelPink:
		return "pink"
	case PixelTransparent:
		return "transparent"
	default:
		return "other"
	}
}

// Classify assigns exactly one PixelClass to a pixel.
//
// A pixel is PixelYellow or PixelPink only when its alpha is fully opaque
// (255) and its RGB channels match the reserved color exactly. Zero alpha
// is PixelTransparent no matter what the RGB channels hold. Anything else
// is PixelOther.
//
// The pixel is taken premultiplied (image.RGBA storage); at alpha 255 the
// premultiplied and straight representations coincide, so the exact-match
// comparison is unaffected.
func Classify(px color.RGBA) PixelClass {
	if px.A == 0 {
		return PixelTransparent
	}
	if px.A == 255 {
		if px.R == 255 && px.G == 255 && px.B == 0 {
			return PixelYellow
		}
		if px.R == 255 && px.G == 0 && px.B == 255 {
			return PixelPink
		}
	}
	return PixelOther
}
