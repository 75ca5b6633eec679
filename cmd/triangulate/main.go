package main

import (
	"fmt"
	"io"
	"os"

	"go.uber.org/zap"
	"gopkg.in/alecthomas/kingpin.v2"

	triangulate "github.com/jai2706/Polygon-Triangulator"
	"github.com/jai2706/Polygon-Triangulator/internal/svgpoly"
)

// Triangulates y-monotone polygons read from a file or stdin.
//
// Text input is newline separated points in the form "x y", with each polygon
// separated by an extra newline. With --svg, every <polygon> element of an SVG
// document is read instead.
//
// Each polygon is triangulated on its own. A polygon that fails is reported,
// and the rest are still processed, but the exit status is 1.

type config struct {
	svg     bool
	format  string
	color   bool
	verbose bool
	file    string
}

func newApp(cfg *config) *kingpin.Application {
	app := kingpin.New("triangulate", "Triangulate y-monotone polygons.")
	app.Flag("svg", "Read <polygon> elements from an SVG document instead of text.").BoolVar(&cfg.svg)
	app.Flag("format", "Output format.").Short('f').Default("text").EnumVar(&cfg.format, "text", "json", "geojson")
	app.Flag("color", "Colorize text output.").BoolVar(&cfg.color)
	app.Flag("verbose", "Log every sweep step to stderr.").Short('v').BoolVar(&cfg.verbose)
	app.Arg("file", "Input file. Reads stdin if omitted.").StringVar(&cfg.file)
	return app
}

func main() {
	var cfg config
	kingpin.MustParse(newApp(&cfg).Parse(os.Args[1:]))

	logger, err := newLogger(cfg.verbose)
	if err != nil {
		fmt.Fprintln(os.Stderr, "building logger:", err)
		os.Exit(1)
	}

	status := run(cfg, os.Stdin, os.Stdout, os.Stderr, logger)
	_ = logger.Sync()
	os.Exit(status)
}

func newLogger(verbose bool) (*zap.Logger, error) {
	if verbose {
		return zap.NewDevelopment()
	}
	production := zap.NewProductionConfig()
	production.Level = zap.NewAtomicLevelAt(zap.WarnLevel)
	return production.Build()
}

// One input polygon and what became of it. Exactly one of Result and Err is set.
type outcome struct {
	Index  int
	Points []triangulate.Point
	Result *triangulate.Triangulation
	Err    error
}

func run(cfg config, stdin io.Reader, stdout, stderr io.Writer, logger *zap.Logger) int {
	in := stdin
	if cfg.file != "" {
		f, err := os.Open(cfg.file)
		if err != nil {
			fmt.Fprintln(stderr, err)
			return 1
		}
		defer f.Close()
		in = f
	}

	var (
		polygons [][]triangulate.Point
		err      error
	)
	if cfg.svg {
		polygons, err = svgpoly.Parse(in)
	} else {
		polygons, err = readPolygons(in)
	}
	if err != nil {
		fmt.Fprintln(stderr, "reading input:", err)
		return 1
	}
	logger.Debug("read input", zap.Int("polygons", len(polygons)))

	status := 0
	outcomes := make([]outcome, 0, len(polygons))
	for i, points := range polygons {
		result, err := triangulate.TriangulateMonotone(points,
			triangulate.WithLogger(logger.With(zap.Int("polygon", i))))
		if err != nil {
			logger.Info("triangulation failed", zap.Int("polygon", i), zap.Error(err))
			fmt.Fprintf(stderr, "polygon %d: %v\n", i, err)
			status = 1
		}
		outcomes = append(outcomes, outcome{Index: i, Points: points, Result: result, Err: err})
	}

	if err := writeOutput(stdout, cfg, outcomes); err != nil {
		fmt.Fprintln(stderr, "writing output:", err)
		return 1
	}
	return status
}
