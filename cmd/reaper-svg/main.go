package main

import (
	"fmt"
	"io"
	"os"

	"github.com/alecthomas/kong"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/ironsheep/reaper-svg-tools/internal/pipeline"
	"github.com/ironsheep/reaper-svg-tools/internal/svgcolor"
)

// Version information - set by ldflags during build
var (
	Version   = "dev"
	BuildTime = "unknown"
	GitCommit = "unknown"
)

const description = `reaper-svg prepares vector UI assets for REAPER themes.

It renders SVG files to PNG at one or more scales while preserving the
pink/yellow border markers REAPER uses to encode resizable regions, and
keeps every tile of sliced elements (buttons, grids) pixel-exact when
upscaling. It can also remap colors in the SVG text before rendering and
list the colors a set of SVGs uses.`

type appContext struct {
	log *zap.Logger
}

type cli struct {
	Render  renderCmd  `cmd:"" help:"Render one input to one or more scaled outputs."`
	Batch   batchCmd   `cmd:"" help:"Run render tasks from a JSON task list."`
	Colors  colorsCmd  `cmd:"" help:"Scan SVG files for color literals and list them."`
	Version versionCmd `cmd:"" help:"Print version information."`

	Verbose bool `short:"v" env:"REAPER_SVG_VERBOSE" help:"Enable debug logging."`
}

// strictFlags are the color-mapping strictness options shared by the
// render and batch commands.
type strictFlags struct {
	AllInputColors bool `help:"Require every mapped color to occur in the SVG."`
	AllSVGColors   bool `help:"Require every color in the SVG to be covered by a mapping."`
	IncludeAlpha   bool `help:"Recognize alpha-carrying color literals (#rrggbbaa, rgba())."`
}

func (f strictFlags) options(log *zap.Logger) pipeline.Options {
	return pipeline.Options{
		AllInputColors: f.AllInputColors,
		AllSVGColors:   f.AllSVGColors,
		IncludeAlpha:   f.IncludeAlpha,
		Logger:         log,
	}
}

type renderCmd struct {
	strictFlags

	Input string            `short:"i" required:"" help:"Input SVG (or PNG) to render."`
	Map   map[string]string `help:"Replace colors before rendering, as OLD=NEW literals."`
	Tile  string            `help:"Tile layout: hb, vb, x:N, y:N or NxM."`
	Out   []string          `short:"o" required:"" help:"Output to render, as PATH or PATH@SCALE."`
}

func (c *renderCmd) Run(app *appContext) error {
	outputs := make([]pipeline.Output, 0, len(c.Out))
	for _, o := range c.Out {
		out, err := pipeline.ParseOutput(o)
		if err != nil {
			return err
		}
		outputs = append(outputs, out)
	}

	task := pipeline.Task{
		Input:   c.Input,
		Maps:    c.Map,
		Tile:    c.Tile,
		Outputs: outputs,
	}
	return pipeline.Run(task, c.options(app.log))
}

type batchCmd struct {
	strictFlags

	Tasks string `arg:"" default:"-" help:"JSON task list, or - for stdin."`
}

func (c *batchCmd) Run(app *appContext) error {
	var in io.Reader = os.Stdin
	if c.Tasks != "-" {
		f, err := os.Open(c.Tasks)
		if err != nil {
			return fmt.Errorf("failed to open task list: %w", err)
		}
		defer f.Close()
		in = f
	}

	tasks, err := pipeline.DecodeTasks(in)
	if err != nil {
		return err
	}
	return pipeline.RunAll(tasks, c.options(app.log))
}

type colorsCmd struct {
	Count        bool     `help:"Print the number of files each color appears in."`
	IncludeAlpha bool     `help:"Recognize alpha-carrying color literals."`
	Paths        []string `arg:"" name:"path" help:"SVG files to scan."`
}

func (c *colorsCmd) Run(app *appContext) error {
	perDocument := make([]map[svgcolor.Color]bool, 0, len(c.Paths))
	for _, path := range c.Paths {
		raw, err := os.ReadFile(path)
		if err != nil {
			return fmt.Errorf("failed to read svg: %w", err)
		}
		found, err := svgcolor.Colors(string(raw), c.IncludeAlpha)
		if err != nil {
			return fmt.Errorf("failed to parse %s: %w", path, err)
		}
		perDocument = append(perDocument, found)
	}

	for _, entry := range svgcolor.Inventory(perDocument) {
		if c.Count {
			fmt.Printf("%d %s\n", entry.Count, entry.Color)
		} else {
			fmt.Println(entry.Color)
		}
	}
	return nil
}

type versionCmd struct{}

func (versionCmd) Run(*appContext) error {
	fmt.Printf("reaper-svg %s\n", Version)
	fmt.Printf("  Build time: %s\n", BuildTime)
	fmt.Printf("  Git commit: %s\n", GitCommit)
	return nil
}

// newLogger builds the CLI logger: human-readable, on stderr so stdout
// stays clean for the colors listing.
func newLogger(verbose bool) (*zap.Logger, error) {
	config := zap.NewDevelopmentConfig()
	config.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	if !verbose {
		config.Level = zap.NewAtomicLevelAt(zap.InfoLevel)
	} else {
		config.Level = zap.NewAtomicLevelAt(zap.DebugLevel)
	}
	return config.Build()
}

func main() {
	var c cli
	ctx := kong.Parse(&c,
		kong.Name("reaper-svg"),
		kong.Description(description),
		kong.UsageOnError(),
	)

	log, err := newLogger(c.Verbose)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer func() { _ = log.Sync() }()

	if err := ctx.Run(&appContext{log: log}); err != nil {
		log.Error("command failed", zap.Error(err))
		os.Exit(1)
	}
}
