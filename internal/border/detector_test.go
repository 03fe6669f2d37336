package border

import (
	"image"
	"image/color"
	"testing"
)

// frameImage builds a w x h transparent image with a one-pixel yellow
// frame around its full perimeter.
func frameImage(w, h int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for x := 0; x < w; x++ {
		img.SetRGBA(x, 0, Yellow)
		img.SetRGBA(x, h-1, Yellow)
	}
	for y := 0; y < h; y++ {
		img.SetRGBA(0, y, Yellow)
		img.SetRGBA(w-1, y, Yellow)
	}
	return img
}

func TestDetectZeroDimension(t *testing.T) {
	tests := []struct {
		name string
		rect image.Rectangle
	}{
		{"zero width", image.Rect(0, 0, 0, 10)},
		{"zero height", image.Rect(0, 0, 10, 0)},
		{"zero both", image.Rect(0, 0, 0, 0)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, ok := Detect(image.NewRGBA(tt.rect)); ok {
				t.Error("Detect reported a border on a degenerate image")
			}
		})
	}
}

func TestDetectFullFrame(t *testing.T) {
	// A solid frame means every edge strip is wall-to-wall yellow; the
	// run covers the whole strip and the width clamps to length-2.
	img := frameImage(10, 10)

	pair, ok := Detect(img)
	if !ok {
		t.Fatal("Detect found no border")
	}
	wantYellow := Bounds{Left: 8, Right: 8, Top: 8, Bottom: 8}
	if pair.Yellow != wantYellow {
		t.Errorf("yellow bounds = %+v, want %+v", pair.Yellow, wantYellow)
	}
	if !pair.Pink.IsEmpty() {
		t.Errorf("pink bounds = %+v, want empty", pair.Pink)
	}
}

func TestDetectEdgeFieldMapping(t *testing.T) {
	// Each Bounds field comes from a specific strip and scan direction:
	// Left from the top row, Top from the left column, Right from the
	// bottom row scanned backwards, Bottom from the right column scanned
	// upwards. Mark each strip differently and check the assembly.
	img := image.NewRGBA(image.Rect(0, 0, 10, 10))
	for x := 0; x <= 3; x++ { // top row: yellow run of 4
		img.SetRGBA(x, 0, Yellow)
	}
	for y := 0; y <= 2; y++ { // left column: yellow run of 3
		img.SetRGBA(0, y, Yellow)
	}
	for x := 8; x <= 9; x++ { // bottom row: pink run of 2, right-aligned
		img.SetRGBA(x, 9, Pink)
	}
	for y := 8; y <= 9; y++ { // right column: pink run of 2, bottom-aligned
		img.SetRGBA(9, y, Pink)
	}

	pair, ok := Detect(img)
	if !ok {
		t.Fatal("Detect found no border")
	}

	wantYellow := Bounds{Left: 3, Top: 2}
	wantPink := Bounds{Right: 1, Bottom: 1}
	if pair.Yellow != wantYellow {
		t.Errorf("yellow bounds = %+v, want %+v", pair.Yellow, wantYellow)
	}
	if pair.Pink != wantPink {
		t.Errorf("pink bounds = %+v, want %+v", pair.Pink, wantPink)
	}
}

func TestDetectFailsAsAWhole(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(img *image.RGBA)
	}{
		{"artwork pixel on top row", func(img *image.RGBA) {
			img.SetRGBA(5, 0, color.RGBA{1, 2, 3, 255})
		}},
		{"artwork pixel on bottom row", func(img *image.RGBA) {
			img.SetRGBA(5, 9, color.RGBA{1, 2, 3, 255})
		}},
		{"transparent corner breaks two strips", func(img *image.RGBA) {
			img.SetRGBA(0, 0, color.RGBA{})
		}},
		{"semi-transparent marker", func(img *image.RGBA) {
			img.SetRGBA(3, 0, color.RGBA{255, 255, 0, 128})
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			img := frameImage(10, 10)
			tt.mutate(img)
			if _, ok := Detect(img); ok {
				t.Error("Detect reported a border; one bad edge must fail the whole image")
			}
		})
	}
}

func TestDetectInteriorIgnored(t *testing.T) {
	// Pixels off the four edge strips are not authoritative; stray marker
	// or artwork colors inside must not disturb detection.
	img := frameImage(10, 10)
	img.SetRGBA(4, 4, Pink)
	img.SetRGBA(5, 5, color.RGBA{9, 9, 9, 255})

	pair, ok := Detect(img)
	if !ok {
		t.Fatal("Detect found no border")
	}
	if pair.Yellow.IsEmpty() {
		t.Error("yellow bounds empty, want full-frame measurement")
	}
}

func TestDetectTooSmall(t *testing.T) {
	// 2x2 frame: every strip is shorter than 3 pixels.
	if _, ok := Detect(frameImage(2, 2)); ok {
		t.Error("Detect reported a border on a 2x2 image")
	}
}
