package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/osuushi/orthogonalize/advanced"
	"github.com/pkg/errors"
	"gopkg.in/alecthomas/kingpin.v2"
)

// Demo of squaring outlines. Input on stdin should be newline separated points
// in the form "x y", with each shape separated by an extra newline. The squared
// shapes are written to stdout in the same format.
//
// Points must already be in a planar frame. Every shape is treated as a closed
// ring, so don't repeat the first point at the end.

var (
	app        = kingpin.New("orthogonalize", "Square up outlines read from stdin.")
	strength   = app.Flag("strength", "How much of the correction to apply, from 0 to 1.").Short('s').Default("1").Float64()
	iterations = app.Flag("iterations", "Maximum number of relaxation passes.").Default(strconv.Itoa(advanced.DefaultIterations)).Int()
	epsilon    = app.Flag("epsilon", "Stop once the squareness score drops below this.").Default(strconv.FormatFloat(advanced.DefaultEpsilon, 'g', -1, 64)).Float64()
	threshold  = app.Flag("threshold", "Angles within this many degrees of 90 or 180 are left alone.").Default(strconv.FormatFloat(advanced.DefaultThresholdAngle, 'g', -1, 64)).Float64()
	pngPath    = app.Flag("png", "Also draw a before/after comparison of the first shape to this file.").String()
	scale      = app.Flag("scale", "Pixels per unit for --png.").Default("100").Float64()
	verbose    = app.Flag("verbose", "Enable debug logging.").Short('v').Bool()
)

func main() {
	kingpin.MustParse(app.Parse(os.Args[1:]))

	level := log.InfoLevel
	if *verbose {
		level = log.DebugLevel
	}
	logger := newLogger(os.Stderr, level)

	cfg := config{
		Options: []advanced.Option{
			advanced.WithStrength(*strength),
			advanced.WithIterations(*iterations),
			advanced.WithEpsilon(*epsilon),
			advanced.WithThresholdAngle(*threshold),
			advanced.WithLogger(logger),
		},
		PNGPath: *pngPath,
		Scale:   *scale,
	}

	if err := run(os.Stdin, os.Stdout, logger, cfg); err != nil {
		logger.Error("failed", "err", err)
		os.Exit(1)
	}
}

func newLogger(w io.Writer, level log.Level) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      "15:04:05.00",
		Level:           level,
	})
}

type config struct {
	Options []advanced.Option
	// Comparison drawing of the first shape, skipped if empty
	PNGPath string
	Scale   float64
}

func run(in io.Reader, out io.Writer, logger *log.Logger, cfg config) error {
	shapes, err := readShapes(in)
	if err != nil {
		return err
	}
	logger.Infof("Read %d shapes", len(shapes))

	results := make([][]advanced.Point, 0, len(shapes))
	for i, shape := range shapes {
		result, err := advanced.Optimize(shape, cfg.Options...)
		if err != nil {
			return errors.Wrapf(err, "shape %d", i)
		}
		logger.Info(result.String())
		results = append(results, result.Points)

		if i == 0 && cfg.PNGPath != "" {
			if err := advanced.DrawComparison(cfg.PNGPath, cfg.Scale, result.Original, result.Points); err != nil {
				return err
			}
			logger.Info("Wrote comparison", "path", cfg.PNGPath)
		}
	}

	return writeShapes(out, results)
}

func readShapes(in io.Reader) ([][]advanced.Point, error) {
	shapes := [][]advanced.Point{}
	// Scan lines
	scanner := bufio.NewScanner(in)
	var points []advanced.Point
	lineNumber := 0
	for scanner.Scan() {
		lineNumber++
		line := strings.TrimSpace(scanner.Text())

		// If it's empty, and we collected any points, this is the end of the shape
		if line == "" {
			if len(points) > 0 {
				shapes = append(shapes, points)
				points = nil
			}
			continue
		}

		point, err := parsePoint(line)
		if err != nil {
			return nil, errors.Wrapf(err, "line %d", lineNumber)
		}
		points = append(points, point)
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.Wrap(err, "reading points")
	}

	// Handle trailing shape if any
	if len(points) > 0 {
		shapes = append(shapes, points)
	}
	return shapes, nil
}

func parsePoint(line string) (advanced.Point, error) {
	parts := strings.Fields(line)
	if len(parts) != 2 {
		return advanced.Point{}, errors.Errorf("expected \"x y\", got %q", line)
	}
	x, err := strconv.ParseFloat(parts[0], 64)
	if err != nil {
		return advanced.Point{}, errors.Wrapf(err, "invalid x value %q", parts[0])
	}
	y, err := strconv.ParseFloat(parts[1], 64)
	if err != nil {
		return advanced.Point{}, errors.Wrapf(err, "invalid y value %q", parts[1])
	}
	return advanced.Point{X: x, Y: y}, nil
}

func writeShapes(out io.Writer, shapes [][]advanced.Point) error {
	w := bufio.NewWriter(out)
	for i, shape := range shapes {
		if i > 0 {
			fmt.Fprintln(w)
		}
		for _, p := range shape {
			fmt.Fprintf(w, "%s %s\n", strconv.FormatFloat(p.X, 'g', -1, 64), strconv.FormatFloat(p.Y, 'g', -1, 64))
		}
	}
	return errors.Wrap(w.Flush(), "writing points")
}
