package pipeline

import (
	"fmt"
	"image"
	"os"
	"path/filepath"
	"strings"

	"github.com/disintegration/imaging"
	"go.uber.org/zap"

	"github.com/ironsheep/reaper-svg-tools/internal/border"
	"github.com/ironsheep/reaper-svg-tools/internal/render"
	"github.com/ironsheep/reaper-svg-tools/internal/svgcolor"
)

// Options applies to every task in a run.
type Options struct {
	// AllInputColors and AllSVGColors tighten color remapping; see
	// svgcolor.ReplaceOptions.
	AllInputColors bool
	AllSVGColors   bool

	// IncludeAlpha enables alpha-carrying color literals.
	IncludeAlpha bool

	// Logger receives per-task progress; nil disables logging.
	Logger *zap.Logger
}

func (o Options) logger() *zap.Logger {
	if o.Logger == nil {
		return zap.NewNop()
	}
	return o.Logger
}

// RunAll runs a batch of tasks. A failing task is logged and skipped;
// the error reports how many tasks failed, if any.
func RunAll(tasks []Task, opts Options) error {
	log := opts.logger()

	failed := 0
	for _, task := range tasks {
		if err := Run(task, opts); err != nil {
			log.Error("task failed", zap.String("input", task.Input), zap.Error(err))
			failed++
		}
	}
	if failed > 0 {
		return fmt.Errorf("%d of %d tasks failed", failed, len(tasks))
	}
	return nil
}

// Run executes one task: load and recolor the input, render the scale-1
// base, then produce every output. A failing output is logged and
// skipped while the remaining outputs continue; the returned error
// reports how many outputs failed, if any.
func Run(task Task, opts Options) error {
	log := opts.logger().With(zap.String("input", task.Input))

	if len(task.Outputs) == 0 {
		return fmt.Errorf("task has no outputs")
	}

	mode, err := ParseTileMode(task.Tile)
	if err != nil {
		return err
	}

	src, err := loadSource(task, opts)
	if err != nil {
		return err
	}

	base, err := render.Render(src)
	if err != nil {
		return fmt.Errorf("failed to render %s: %w", task.Input, err)
	}

	// Borders are detected at most once per task, on the base render,
	// and shared read-only by every upscaled output.
	var pair *border.BoundsPair
	detected := false
	detect := func() *border.BoundsPair {
		if !detected {
			detected = true
			if p, ok := border.Detect(base); ok {
				pair = &p
				log.Info("detected border markers",
					zap.Any("yellow", p.Yellow), zap.Any("pink", p.Pink))
			}
		}
		return pair
	}

	failed := 0
	for _, out := range task.Outputs {
		if err := renderOutput(src, base, mode, out, detect); err != nil {
			log.Error("output failed", zap.String("path", out.Path),
				zap.Float64("scale", out.Scale), zap.Error(err))
			failed++
			continue
		}
		log.Info("wrote output", zap.String("path", out.Path), zap.Float64("scale", out.Scale))
	}
	if failed > 0 {
		return fmt.Errorf("%d of %d outputs failed", failed, len(task.Outputs))
	}
	return nil
}

// renderOutput produces a single output file.
func renderOutput(src render.Source, base *image.RGBA, mode render.UpscaleMode, out Output, detect func() *border.BoundsPair) error {
	if out.Scale == 1 {
		return save(base, out.Path)
	}
	if out.Scale < 1 {
		return &render.InvalidScaleError{Scale: out.Scale}
	}

	img, err := render.Upscale(src, out.Scale, mode, detect())
	if err != nil {
		return err
	}
	return save(img, out.Path)
}

func save(img *image.RGBA, path string) error {
	if err := imaging.Save(img, path); err != nil {
		return fmt.Errorf("failed to save %s: %w", path, err)
	}
	return nil
}

// loadSource opens the task's input as a renderable source, applying
// color remapping for SVG inputs.
func loadSource(task Task, opts Options) (render.Source, error) {
	if strings.EqualFold(filepath.Ext(task.Input), ".svg") {
		raw, err := os.ReadFile(task.Input)
		if err != nil {
			return nil, fmt.Errorf("failed to read svg: %w", err)
		}

		mapping, err := parseMapping(task.Maps)
		if err != nil {
			return nil, err
		}
		text, err := svgcolor.Replace(string(raw), mapping, svgcolor.ReplaceOptions{
			AllInputColors: opts.AllInputColors,
			AllSVGColors:   opts.AllSVGColors,
			IncludeAlpha:   opts.IncludeAlpha,
		})
		if err != nil {
			return nil, fmt.Errorf("failed to map colors in %s: %w", task.Input, err)
		}

		return render.ParseSVGString(text)
	}

	if len(task.Maps) > 0 {
		return nil, fmt.Errorf("color remapping requires an SVG input, got %s", task.Input)
	}
	img, err := imaging.Open(task.Input)
	if err != nil {
		return nil, fmt.Errorf("failed to open image: %w", err)
	}
	return render.NewRasterSource(img), nil
}

// parseMapping converts the task's textual color pairs.
func parseMapping(maps map[string]string) (map[svgcolor.Color]svgcolor.Color, error) {
	if len(maps) == 0 {
		return nil, nil
	}
	mapping := make(map[svgcolor.Color]svgcolor.Color, len(maps))
	for oldStr, newStr := range maps {
		oldColor, err := svgcolor.ParseColor(oldStr)
		if err != nil {
			return nil, fmt.Errorf("invalid map source color: %w", err)
		}
		newColor, err := svgcolor.ParseColor(newStr)
		if err != nil {
			return nil, fmt.Errorf("invalid map target color: %w", err)
		}
		mapping[oldColor] = newColor
	}
	return mapping, nil
}
