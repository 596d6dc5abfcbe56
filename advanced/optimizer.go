package advanced

import (
	"context"
	"fmt"
	"math"

	"github.com/logrusorgru/aurora"
	"github.com/osuushi/orthogonalize/dbg"
	"github.com/pkg/errors"
)

// Everything a run produced, for callers who want more than the final points.
type Result struct {
	// Readable name for the run, used to tell runs apart in logs.
	Name string
	// The blended output. This is what the simple API returns.
	Points []Point
	// A copy of the input.
	Original []Point
	// The best scoring snapshot, before blending.
	Optimized []Point
	// Score of the optimized snapshot. For inputs with fewer than two points
	// this is 0.
	Score float64
	// Relaxation passes performed.
	Iterations int
	// Whether the score dropped below epsilon before the budget ran out.
	Converged bool
	// Corner tracking state from the last pass, only meaningful for triangles.
	Corner   Corner
	Strength float64
}

func (r *Result) String() string {
	status := aurora.Green("converged").String()
	if !r.Converged {
		status = aurora.Yellow("budget exhausted").String()
	}
	return fmt.Sprintf("%s: %d points, score %.6f after %d iterations (%s)",
		aurora.Cyan(r.Name), len(r.Points), r.Score, r.Iterations, status)
}

// Ratio of the output's area to the input's. 1 means the optimizer kept the
// area exactly. Returns NaN if the input has no area.
func (r *Result) AreaRatio() float64 {
	original := math.Abs(SignedArea(r.Original))
	if original == 0 {
		return math.NaN()
	}
	return math.Abs(SignedArea(r.Points)) / original
}

func Optimize(points []Point, opts ...Option) (*Result, error) {
	return OptimizeContext(context.Background(), points, opts...)
}

// Run the optimizer over points and blend the best snapshot with the input.
// The context is checked between relaxation passes.
func OptimizeContext(ctx context.Context, points []Point, opts ...Option) (result *Result, err error) {
	defer func() {
		recoveredErr := HandlePanicRecover(recover())
		if recoveredErr != nil {
			result = nil
			err = recoveredErr
		}
	}()

	if err := validate(points); err != nil {
		return nil, err
	}

	o := NewOptions(opts...)
	result = &Result{
		Name:      dbg.RunName(),
		Original:  Sequence(points).Copy(),
		Converged: true,
		Corner:    NewCorner(),
		Strength:  o.Strength,
	}
	logger := o.logger().With("run", result.Name)

	if len(points) <= 1 {
		result.Optimized = Sequence(points).Copy()
		result.Points = Sequence(points).Copy()
		return result, nil
	}

	logger.Debug("starting", "points", len(points), "iterations", o.Iterations, "epsilon", o.Epsilon)
	th := o.Thresholds()
	working := Sequence(points).Copy()
	best := working.Copy()
	bestScore := math.Inf(1)

	for i := 0; i < o.Iterations; i++ {
		if err := ctx.Err(); err != nil {
			return nil, errors.Wrapf(err, "optimization %s stopped after %d iterations", result.Name, i)
		}

		var corner Corner
		working, corner = Relax(working, th)
		checkFinite(working, i)
		result.Iterations = i + 1
		result.Corner = corner

		score := Score(working, th)
		if score < bestScore {
			bestScore = score
			best = working.Copy()
			logger.Debug("new best", "iteration", i, "score", score)
		}
		if bestScore < o.Epsilon {
			break
		}
	}

	result.Score = bestScore
	result.Converged = bestScore < o.Epsilon
	result.Optimized = best
	result.Points = Blend(result.Original, best, o.Strength)

	if result.Converged {
		logger.Debug("converged", "iterations", result.Iterations, "score", bestScore)
	} else {
		logger.Debug("iteration budget exhausted", "iterations", result.Iterations, "score", bestScore)
	}
	return result, nil
}

func checkFinite(points []Point, iteration int) {
	for i, point := range points {
		if !point.IsFinite() {
			fatalf("vertex %d became non-finite on iteration %d", i, iteration)
		}
	}
}
