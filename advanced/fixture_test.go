package advanced

import (
	"embed"
	"math"
	"strconv"
	"strings"
	"testing"

	"github.com/JoshVarga/svgparser"
	"github.com/stretchr/testify/require"
)

// This file parses the svg fixtures and outputs point sequences. This is not a
// full (or even correct) svg parser. It finds the single polygon in the file
// and returns its points in document order.
//
// Fixtures are traced building outlines, available by name in the fixtures/
// directory, sans extension.

//go:embed fixtures
var fixtures embed.FS

func LoadFixture(t *testing.T, name string) []Point {
	t.Helper()
	fixture, err := fixtures.Open("fixtures/" + name + ".svg")
	require.NoError(t, err, "could not load fixture %q", name)
	defer fixture.Close()

	rootEl, err := svgparser.Parse(fixture, true)
	require.NoError(t, err, "failed to parse fixture %q", name)

	polygons := rootEl.FindAll("polygon")
	require.Len(t, polygons, 1, "expected exactly one polygon in fixture %q", name)

	var points []Point
	for _, pointString := range strings.Fields(polygons[0].Attributes["points"]) {
		coords := strings.Split(pointString, ",")
		require.Len(t, coords, 2, "invalid point string %q", pointString)
		x, err := strconv.ParseFloat(coords[0], 64)
		require.NoError(t, err)
		y, err := strconv.ParseFloat(coords[1], 64)
		require.NoError(t, err)
		points = append(points, Point{x, y})
	}
	return points
}

// Some ad hoc fixtures

func Rectangle(x, y, width, height float64) []Point {
	return []Point{
		{x, y},
		{x + width, y},
		{x + width, y + height},
		{x, y + height},
	}
}

// A unit square with each corner pushed at most 0.05 in a fixed direction.
func JitteredSquare() []Point {
	return []Point{
		{0 + 0.03, 0 - 0.04},
		{1 - 0.02, 0 + 0.04},
		{1 + 0.04, 1 + 0.03},
		{0 - 0.04, 1 - 0.01},
	}
}

func SharpTriangle() []Point {
	return []Point{
		{0, 0},
		{10, 0},
		{10, 1},
	}
}

func rotatePoints(points []Point, angle float64) []Point {
	cos := math.Cos(angle)
	sin := math.Sin(angle)
	result := make([]Point, len(points))
	for i, p := range points {
		result[i] = Point{p.X*cos - p.Y*sin, p.X*sin + p.Y*cos}
	}
	return result
}

func translatePoints(points []Point, dx, dy float64) []Point {
	result := make([]Point, len(points))
	for i, p := range points {
		result[i] = Point{p.X + dx, p.Y + dy}
	}
	return result
}
