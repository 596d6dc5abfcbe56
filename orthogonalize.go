// Squaring of digitized outlines for Go.
//
// This package takes a sequence of 2D points, usually a building outline
// traced from imagery, and nudges every vertex until the corners are as close
// as it can get them to right angles or straight lines, without moving the
// shape as a whole.
//
// Points are in a planar frame. Geographic coordinates should be projected
// before they're passed in, and unprojected afterwards.
//
// The sequence is always treated as a closed ring: the first and last points
// are neighbors. For open polylines that coupling is part of the result.
package orthogonalize

import "github.com/osuushi/orthogonalize/advanced"

type Point = advanced.Point
type Option = advanced.Option

// Square up a sequence of points at the given strength. Strength 1 applies
// the full correction and 0 keeps the original shape. NaN or an infinity
// counts as "no strength given" and means 1; anything else is clamped to
// [0, 1].
//
// Sequences of fewer than two points come back unchanged.
func Orthogonalize(points []Point, strength float64) ([]Point, error) {
	return OrthogonalizeWithOptions(points, advanced.WithStrength(strength))
}

// Like Orthogonalize, but with full control over the run. See the advanced
// package for diagnostics beyond the resulting points.
func OrthogonalizeWithOptions(points []Point, opts ...Option) ([]Point, error) {
	result, err := advanced.Optimize(points, opts...)
	if err != nil {
		return nil, err
	}
	return result.Points, nil
}

func WithStrength(strength float64) Option {
	return advanced.WithStrength(strength)
}

func WithIterations(n int) Option {
	return advanced.WithIterations(n)
}

func WithEpsilon(epsilon float64) Option {
	return advanced.WithEpsilon(epsilon)
}

func WithThresholdAngle(degrees float64) Option {
	return advanced.WithThresholdAngle(degrees)
}

// Squareness score of a sequence with the default thresholds. 0 means every
// corner is right or straight.
func Score(points []Point) float64 {
	return advanced.Score(points, advanced.DefaultThresholds())
}
