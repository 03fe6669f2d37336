package pipeline

import (
	"strings"
	"testing"

	"github.com/ironsheep/reaper-svg-tools/internal/render"
)

func TestParseTileMode(t *testing.T) {
	tests := []struct {
		input   string
		want    render.UpscaleMode
		wantErr bool
	}{
		{"", render.Normal, false},
		{"hb", render.HorizontalButton, false},
		{"vb", render.VerticalButton, false},
		{"x:4", render.HorizontalTiles(4), false},
		{"y:2", render.VerticalTiles(2), false},
		{"3x2", render.Grid(3, 2), false},
		{"x:0", render.Normal, true},
		{"x:abc", render.Normal, true},
		{"y:-1", render.Normal, true},
		{"3x", render.Normal, true},
		{"x2", render.Normal, true},
		{"bogus", render.Normal, true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseTileMode(tt.input)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseTileMode(%q) err = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if err == nil && got != tt.want {
				t.Errorf("ParseTileMode(%q) = %+v, want %+v", tt.input, got, tt.want)
			}
		})
	}
}

func TestParseOutput(t *testing.T) {
	tests := []struct {
		input   string
		want    Output
		wantErr bool
	}{
		{"out.png", Output{Path: "out.png", Scale: 1}, false},
		{"out.png@2", Output{Path: "out.png", Scale: 2}, false},
		{"out.png@1.5", Output{Path: "out.png", Scale: 1.5}, false},
		{"dir@2x/out.png@3", Output{Path: "dir@2x/out.png", Scale: 3}, false},
		{"out.png@", Output{}, true},
		{"out.png@huge", Output{}, true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseOutput(tt.input)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseOutput(%q) err = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if err == nil && got != tt.want {
				t.Errorf("ParseOutput(%q) = %+v, want %+v", tt.input, got, tt.want)
			}
		})
	}
}

func TestDecodeTasks(t *testing.T) {
	input := `[
	  {
	    "input": "knob.svg",
	    "maps": {"#ff0000": "#00ff00"},
	    "tile": "hb",
	    "outputs": [
	      {"path": "knob.png", "scale": 1},
	      {"path": "knob@2x.png", "scale": 2}
	    ]
	  },
	  {"input": "panel.svg", "outputs": [{"path": "panel.png", "scale": 1.5}]}
	]`

	tasks, err := DecodeTasks(strings.NewReader(input))
	if err != nil {
		t.Fatalf("DecodeTasks failed: %v", err)
	}
	if len(tasks) != 2 {
		t.Fatalf("decoded %d tasks, want 2", len(tasks))
	}
	if tasks[0].Input != "knob.svg" || tasks[0].Tile != "hb" {
		t.Errorf("task[0] = %+v", tasks[0])
	}
	if len(tasks[0].Outputs) != 2 || tasks[0].Outputs[1].Scale != 2 {
		t.Errorf("task[0] outputs = %+v", tasks[0].Outputs)
	}
	if tasks[0].Maps["#ff0000"] != "#00ff00" {
		t.Errorf("task[0] maps = %+v", tasks[0].Maps)
	}
}

func TestDecodeTasksRejectsUnknownFields(t *testing.T) {
	input := `[{"input": "a.svg", "outputs": [], "scale": 2}]`
	if _, err := DecodeTasks(strings.NewReader(input)); err == nil {
		t.Error("DecodeTasks accepted an unknown field")
	}
}
