package render

import (
	"image"
	"math"

	"github.com/ironsheep/reaper-svg-tools/internal/border"
)

// intrinsicSize reads the source's size and requires it to be a whole
// number of pixels on both axes.
func intrinsicSize(src Source) (w, h int, err error) {
	fw, fh := src.Size()
	if math.Trunc(fw) != fw || math.Trunc(fh) != fh {
		return 0, 0, &FractionalInputResolutionError{Width: fw, Height: fh}
	}
	return int(fw), int(fh), nil
}

// Render rasterizes src at its intrinsic size with no scaling, tiling or
// border handling. This is the base render every task produces first: it
// is both the scale-1 output and the bitmap border detection runs on.
func Render(src Source) (*image.RGBA, error) {
	w, h, err := intrinsicSize(src)
	if err != nil {
		return nil, err
	}
	if w <= 0 || h <= 0 {
		return nil, &InvalidOutputResolutionError{Width: w, Height: h}
	}

	dst := image.NewRGBA(image.Rect(0, 0, w, h))
	src.Render(dst, Identity)
	return dst, nil
}

// Upscale rasterizes src at the given scale factor, keeping every tile of
// the requested layout at an integer pixel size.
//
// When bounds is non-nil and carries at least one non-empty measurement
// the render is border-aware: the one-pixel marker frame is excluded from
// the tiled region, the artwork is scaled with the frame stripped, and
// the markers are redrawn at the scaled widths (pink first, then yellow,
// as exact unblended writes). Otherwise the whole image scales as-is.
//
// The tile layout must divide the inner size exactly; each tile then
// scales to ceil(tile * scale), so the achieved scale can be marginally
// larger than requested but never smaller, and tile boundaries stay on
// whole pixels. All failures return typed errors and no bitmap.
func Upscale(src Source, scale float64, mode UpscaleMode, bounds *border.BoundsPair) (*image.RGBA, error) {
	if scale <= 0 {
		return nil, &InvalidScaleError{Scale: scale}
	}

	outerW, outerH, err := intrinsicSize(src)
	if err != nil {
		return nil, err
	}

	borderAware := bounds != nil && !bounds.IsEmpty()
	innerW, innerH := outerW, outerH
	if borderAware {
		// A bordered image is at least 3x3; anything smaller cannot have
		// produced the bounds in the first place.
		innerW -= 2
		innerH -= 2
		if innerW <= 0 || innerH <= 0 {
			return nil, &InvalidOutputResolutionError{Width: innerW, Height: innerH}
		}
	}

	tilesX, tilesY := mode.Tiles()
	tileW, okW := divideNoRemainder(innerW, tilesX)
	tileH, okH := divideNoRemainder(innerH, tilesY)
	if !okW || !okH {
		return nil, &NotDivisibleIntoTilesError{
			Width: innerW, Height: innerH,
			TilesX: tilesX, TilesY: tilesY,
		}
	}

	finalInnerW := int(math.Ceil(float64(tileW)*scale)) * tilesX
	finalInnerH := int(math.Ceil(float64(tileH)*scale)) * tilesY
	finalOuterW, finalOuterH := finalInnerW, finalInnerH
	if borderAware {
		finalOuterW += 2
		finalOuterH += 2
	}
	if finalOuterW <= 0 || finalOuterH <= 0 {
		return nil, &InvalidOutputResolutionError{Width: finalOuterW, Height: finalOuterH}
	}

	dst := image.NewRGBA(image.Rect(0, 0, finalOuterW, finalOuterH))

	if !borderAware {
		src.Render(dst, Transform{
			ScaleX: float64(finalOuterW) / float64(outerW),
			ScaleY: float64(finalOuterH) / float64(outerH),
		})
		return dst, nil
	}

	// Strip the frame, scale the inner artwork, restore the frame offset:
	// x' = sx*(x-1)+1.
	sx := float64(finalInnerW) / float64(innerW)
	sy := float64(finalInnerH) / float64(innerH)
	src.Render(dst, Transform{
		ScaleX:  sx,
		ScaleY:  sy,
		OffsetX: 1 - sx,
		OffsetY: 1 - sy,
	})

	// Scale the markers by the larger axis so a non-uniform tile-driven
	// scale never under-sizes the border on the tighter axis.
	actualScale := math.Max(sx, sy)
	scaled := bounds.Scale(actualScale)

	border.EraseBounds(dst)
	scaled.Pink.Paint(dst, border.Pink)
	scaled.Yellow.Paint(dst, border.Yellow)

	return dst, nil
}
