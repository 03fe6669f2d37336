package render

// UpscaleMode describes how an image divides into equal-sized tiles for
// pixel-exact upscaling. The zero value is Normal: the whole image is one
// tile.
type UpscaleMode struct {
	tilesX int
	tilesY int
}

// Normal upscales the entire contents as a single tile.
var Normal = UpscaleMode{}

// VerticalButton is a fixed three-way vertical split, the common
// cap/stretch/cap layout of a vertically sliced button.
var VerticalButton = VerticalTiles(3)

// HorizontalButton is a fixed three-way horizontal split.
var HorizontalButton = HorizontalTiles(3)

// VerticalTiles lays the image out as n tiles stacked vertically.
func VerticalTiles(n int) UpscaleMode {
	return UpscaleMode{tilesY: n}
}

// HorizontalTiles lays the image out as n tiles side by side.
func HorizontalTiles(n int) UpscaleMode {
	return UpscaleMode{tilesX: n}
}

// Grid lays the image out as an x by y grid of tiles.
func Grid(x, y int) UpscaleMode {
	return UpscaleMode{tilesX: x, tilesY: y}
}

// Tiles resolves the mode to concrete tile counts. Unset axes count as a
// single tile, so the zero value resolves to (1, 1).
func (m UpscaleMode) Tiles() (x, y int) {
	x, y = m.tilesX, m.tilesY
	if x < 1 {
		x = 1
	}
	if y < 1 {
		y = 1
	}
	return x, y
}

// divideNoRemainder returns total/count only when the division is exact.
func divideNoRemainder(total, count int) (int, bool) {
	if total%count != 0 {
		return 0, false
	}
	return total / count, true
}
