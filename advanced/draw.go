package advanced

import (
	"io"
	"math"
	"os"
	"path/filepath"

	"github.com/fogleman/gg"
	imgcat "github.com/martinlindhe/imgcat/lib"
	"github.com/pkg/errors"
)

// This is for debugging purposes only. It draws the original outline dashed
// in grey and the result in cyan, with each moved vertex marked.

// Padding around the shapes so vertices on the bounding box stay visible
const drawPadding = 20

func DrawComparison(path string, scale float64, original, result []Point) error {
	if len(original) == 0 && len(result) == 0 {
		return errors.New("nothing to draw")
	}
	var minX, minY, maxX, maxY float64
	minX = math.Inf(1)
	minY = math.Inf(1)
	maxX = math.Inf(-1)
	maxY = math.Inf(-1)
	for _, points := range [][]Point{original, result} {
		for _, p := range points {
			minX = math.Min(minX, p.X)
			minY = math.Min(minY, p.Y)
			maxX = math.Max(maxX, p.X)
			maxY = math.Max(maxY, p.Y)
		}
	}

	// Set up the context
	width := int(scale*(maxX-minX)) + drawPadding*2
	height := int(scale*(maxY-minY)) + drawPadding*2
	c := gg.NewContext(width, height)
	c.SetRGB(0, 0, 0)
	c.Clear()

	// Flip the context so the origin is at the bottom left
	c.Translate(0, float64(height))
	c.Scale(1, -1)
	c.Translate(drawPadding, drawPadding)
	c.Scale(scale, scale)
	c.Translate(-minX, -minY)

	c.SetLineWidth(2)
	c.SetDash(6, 4)
	tracePath(c, original)
	c.SetRGB(0.5, 0.5, 0.5)
	c.Stroke()

	c.SetDash()
	tracePath(c, result)
	c.SetRGB(0, 1, 1)
	c.Stroke()

	c.SetRGB(1, 0.4, 0)
	for i := range result {
		if i < len(original) && original[i] != result[i] {
			c.DrawCircle(result[i].X, result[i].Y, 3/scale)
			c.Fill()
		}
	}

	return errors.Wrapf(c.SavePNG(path), "saving %s", path)
}

// Draw the comparison to a temporary file and print it inline in the terminal
// (iTerm only).
func ShowComparison(w io.Writer, scale float64, original, result []Point) error {
	dir, err := os.MkdirTemp("", "orthogonalize")
	if err != nil {
		return errors.WithStack(err)
	}
	defer os.RemoveAll(dir)

	path := filepath.Join(dir, "comparison.png")
	if err := DrawComparison(path, scale, original, result); err != nil {
		return err
	}
	imgcat.CatFile(path, w)
	return nil
}

func tracePath(c *gg.Context, points []Point) {
	if len(points) == 0 {
		return
	}
	c.MoveTo(points[0].X, points[0].Y)
	for _, p := range points[1:] {
		c.LineTo(p.X, p.Y)
	}
	c.ClosePath()
}
