package pipeline

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/ironsheep/reaper-svg-tools/internal/render"
)

// Output is one requested rendering of a task's input.
type Output struct {
	// Path is where the rendered image is saved; the extension selects
	// the encoder (normally .png).
	Path string `json:"path"`

	// Scale is the upscale factor. 1 writes the base render unchanged;
	// values below 1 are rejected.
	Scale float64 `json:"scale"`
}

// Task is one unit of batch work.
type Task struct {
	// Input is the path of the SVG (or raster) file to render.
	Input string `json:"input"`

	// Maps remaps color literals in an SVG input before rendering,
	// old literal to new literal (e.g. "#ff0000" -> "rgb(0,0,0)").
	Maps map[string]string `json:"maps,omitempty"`

	// Tile selects the tile layout: "", "hb", "vb", "x:N", "y:N" or
	// "NxM". See ParseTileMode.
	Tile string `json:"tile,omitempty"`

	// Outputs are the renderings to produce; at least one is required.
	Outputs []Output `json:"outputs"`
}

// DecodeTasks reads a JSON task list, the input format of the batch
// command.
func DecodeTasks(r io.Reader) ([]Task, error) {
	var tasks []Task
	dec := json.NewDecoder(r)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&tasks); err != nil {
		return nil, fmt.Errorf("failed to decode task list: %w", err)
	}
	return tasks, nil
}

// ParseTileMode parses a tile layout selector:
//
//	""     whole image as one tile
//	"hb"   horizontal button, three tiles side by side
//	"vb"   vertical button, three tiles stacked
//	"x:N"  N tiles side by side
//	"y:N"  N tiles stacked
//	"NxM"  N by M grid
func ParseTileMode(s string) (render.UpscaleMode, error) {
	switch {
	case s == "":
		return render.Normal, nil
	case s == "hb":
		return render.HorizontalButton, nil
	case s == "vb":
		return render.VerticalButton, nil
	case strings.HasPrefix(s, "x:"):
		n, err := parseTileCount(s[2:])
		if err != nil {
			return render.Normal, fmt.Errorf("invalid tile setting %q: %w", s, err)
		}
		return render.HorizontalTiles(n), nil
	case strings.HasPrefix(s, "y:"):
		n, err := parseTileCount(s[2:])
		if err != nil {
			return render.Normal, fmt.Errorf("invalid tile setting %q: %w", s, err)
		}
		return render.VerticalTiles(n), nil
	}

	if x, y, ok := strings.Cut(s, "x"); ok {
		nx, errX := parseTileCount(x)
		ny, errY := parseTileCount(y)
		if errX == nil && errY == nil {
			return render.Grid(nx, ny), nil
		}
	}
	return render.Normal, fmt.Errorf("invalid tile setting %q", s)
}

func parseTileCount(s string) (int, error) {
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("tile count %q is not a number", s)
	}
	if n < 1 {
		return 0, fmt.Errorf("tile count must be at least 1, got %d", n)
	}
	return n, nil
}

// ParseOutput parses a command-line output argument of the form
// "path" or "path@scale".
func ParseOutput(s string) (Output, error) {
	path, scaleStr, found := cutLast(s, '@')
	if !found {
		return Output{Path: s, Scale: 1}, nil
	}
	scale, err := strconv.ParseFloat(scaleStr, 64)
	if err != nil {
		return Output{}, fmt.Errorf("invalid output scale in %q: %w", s, err)
	}
	return Output{Path: path, Scale: scale}, nil
}

// cutLast splits around the last occurrence of sep, so paths containing
// the separator still parse.
func cutLast(s string, sep byte) (before, after string, found bool) {
	i := strings.LastIndexByte(s, sep)
	if i < 0 {
		return s, "", false
	}
	return s[:i], s[i+1:], true
}
