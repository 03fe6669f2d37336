package render

import "testing"

func TestUpscaleModeTiles(t *testing.T) {
	tests := []struct {
		name  string
		mode  UpscaleMode
		wantX int
		wantY int
	}{
		{"normal", Normal, 1, 1},
		{"zero value", UpscaleMode{}, 1, 1},
		{"vertical tiles", VerticalTiles(4), 1, 4},
		{"horizontal tiles", HorizontalTiles(5), 5, 1},
		{"grid", Grid(3, 2), 3, 2},
		{"vertical button", VerticalButton, 1, 3},
		{"horizontal button", HorizontalButton, 3, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			x, y := tt.mode.Tiles()
			if x != tt.wantX || y != tt.wantY {
				t.Errorf("Tiles() = (%d, %d), want (%d, %d)", x, y, tt.wantX, tt.wantY)
			}
		})
	}
}

func TestDivideNoRemainder(t *testing.T) {
	tests := []struct {
		total, count int
		want         int
		wantOK       bool
	}{
		{9, 3, 3, true},
		{9, 4, 0, false},
		{10, 1, 10, true},
		{0, 3, 0, true},
		{7, 7, 1, true},
		{6, 4, 0, false},
	}

	for _, tt := range tests {
		got, ok := divideNoRemainder(tt.total, tt.count)
		if ok != tt.wantOK || got != tt.want {
			t.Errorf("divideNoRemainder(%d, %d) = (%d, %v), want (%d, %v)",
				tt.total, tt.count, got, ok, tt.want, tt.wantOK)
		}
		if ok && got*tt.count != tt.total {
			t.Errorf("divideNoRemainder(%d, %d): %d * %d != %d", tt.total, tt.count, got, tt.count, tt.total)
		}
	}
}
