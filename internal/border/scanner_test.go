package border

import (
	"image/color"
	"testing"
)

// classes builds a strip from a compact spec string: 'Y' yellow, 'P' pink,
// 'T' transparent, 'O' other.
func classes(s string) []PixelClass {
	strip := make([]PixelClass, len(s))
	for i, c := range s {
		switch c {
		case 'Y':
			strip[i] = PixelYellow
		case 'P':
			strip[i] = PixelPink
		case 'T':
			strip[i] = PixelTransparent
		default:
			strip[i] = PixelOther
		}
	}
	return strip
}

func TestClassify(t *testing.T) {
	tests := []struct {
		name string
		px   color.RGBA
		want PixelClass
	}{
		{"yellow", color.RGBA{255, 255, 0, 255}, PixelYellow},
		{"pink", color.RGBA{255, 0, 255, 255}, PixelPink},
		{"transparent black", color.RGBA{0, 0, 0, 0}, PixelTransparent},
		{"transparent with stray rgb", color.RGBA{255, 255, 0, 0}, PixelTransparent},
		{"opaque artwork", color.RGBA{10, 20, 30, 255}, PixelOther},
		{"semi-transparent yellow", color.RGBA{128, 128, 0, 128}, PixelOther},
		{"near-yellow", color.RGBA{254, 255, 0, 255}, PixelOther},
		{"white", color.RGBA{255, 255, 255, 255}, PixelOther},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Classify(tt.px); got != tt.want {
				t.Errorf("Classify(%v) = %v, want %v", tt.px, got, tt.want)
			}
		})
	}
}

func TestScanEdge(t *testing.T) {
	tests := []struct {
		name       string
		strip      string
		wantYellow int
		wantPink   int
		wantOK     bool
	}{
		{"single yellow marker", "YYTT", 1, 0, true},
		{"single pink marker", "PPPT", 0, 2, true},
		{"one pixel marker line", "YTT", 0, 0, true},
		{"clamped to strip length minus two", "YYYY", 2, 0, true},
		{"too short", "YT", 0, 0, false},
		{"empty", "", 0, 0, false},
		{"leading transparent", "TYYT", 0, 0, false},
		{"all transparent", "TTTT", 0, 0, false},
		{"yellow abuts pink", "YYPT", 0, 0, false},
		{"pink abuts yellow", "PYTT", 0, 0, false},
		{"marker after transparent", "YTYT", 0, 0, false},
		{"pink after transparent", "YTTP", 0, 0, false},
		{"other at start", "OYTT", 0, 0, false},
		{"other in middle", "YYOT", 0, 0, false},
		{"other at end", "YYTO", 0, 0, false},
		{"long pink run clamped", "PPPPPP", 0, 4, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			yellow, pink, ok := scanEdge(classes(tt.strip))
			if ok != tt.wantOK {
				t.Fatalf("scanEdge(%q) ok = %v, want %v", tt.strip, ok, tt.wantOK)
			}
			if !ok {
				return
			}
			if yellow != tt.wantYellow || pink != tt.wantPink {
				t.Errorf("scanEdge(%q) = (%d, %d), want (%d, %d)",
					tt.strip, yellow, pink, tt.wantYellow, tt.wantPink)
			}
		})
	}
}
