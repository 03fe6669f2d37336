package border

import "image"

// stripClasses classifies one edge strip of img. The coordinate walk is
// supplied as slices so each edge controls its own direction; the strip
// covers the cross product, which is always one pixel wide because one of
// the two slices has a single element.
func stripClasses(img *image.RGBA, xs, ys []int) []PixelClass {
	classes := make([]PixelClass, 0, len(xs)*len(ys))
	for _, x := range xs {
		for _, y := range ys {
			classes = append(classes, Classify(img.RGBAAt(x, y)))
		}
	}
	return classes
}

// ascending returns [0, 1, ..., n-1].
func ascending(n int) []int {
	out := make([]int, n)
	for i := range out {
		out[i] = i
	}
	return out
}

// descending returns [n-1, n-2, ..., 0].
func descending(n int) []int {
	out := make([]int, n)
	for i := range out {
		out[i] = n - 1 - i
	}
	return out
}

// Detect scans the four edges of img and recovers the yellow and pink
// border measurements.
//
// The four scans, and the Bounds field each one feeds:
//
//   - top row, left to right   -> Left
//   - left column, top down    -> Top
//   - bottom row, right to left -> Right
//   - right column, bottom up  -> Bottom
//
// The mapping looks rotated but is exactly what REAPER reads: each field
// is measured along the edge that starts at its corner, walking away from
// it.
//
// Detection is all or nothing. An image with zero width or height has no
// border, and if any single edge fails to scan as a valid marker strip
// the whole image is treated as borderless; partial borders are not a
// thing. ok is false when no border was detected.
func Detect(img *image.RGBA) (pair BoundsPair, ok bool) {
	w := img.Bounds().Dx()
	h := img.Bounds().Dy()
	if w == 0 || h == 0 {
		return BoundsPair{}, false
	}

	type edge struct {
		xs, ys []int
	}
	edges := []edge{
		{ascending(w), []int{0}},      // left: top row, left to right
		{[]int{0}, ascending(h)},      // top: left column, top down
		{descending(w), []int{h - 1}}, // right: bottom row, right to left
		{[]int{w - 1}, descending(h)}, // bottom: right column, bottom up
	}

	var yellow, pink [4]int
	for i, e := range edges {
		yw, pw, valid := scanEdge(stripClasses(img, e.xs, e.ys))
		if !valid {
			return BoundsPair{}, false
		}
		yellow[i] = yw
		pink[i] = pw
	}

	return BoundsPair{
		Yellow: Bounds{Left: yellow[0], Top: yellow[1], Right: yellow[2], Bottom: yellow[3]},
		Pink:   Bounds{Left: pink[0], Top: pink[1], Right: pink[2], Bottom: pink[3]},
	}, true
}
