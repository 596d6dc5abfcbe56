package orthogonalize

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Smoke tests. The internals are tested in the advanced package.
func TestOrthogonalize(t *testing.T) {
	points := []Point{
		{X: 0.03, Y: -0.04},
		{X: 0.98, Y: 0.04},
		{X: 1.04, Y: 1.03},
		{X: -0.04, Y: 0.99},
	}

	result, err := Orthogonalize(points, 1)
	require.NoError(t, err)
	assert.Len(t, result, 4)
	assert.Less(t, Score(result), 0.01)
	assert.Less(t, Score(result), Score(points))
}

func TestOrthogonalize_MissingStrengthMeansFull(t *testing.T) {
	points := []Point{{X: 0.03, Y: -0.04}, {X: 0.98, Y: 0.04}, {X: 1.04, Y: 1.03}, {X: -0.04, Y: 0.99}}

	full, err := Orthogonalize(points, 1)
	require.NoError(t, err)
	missing, err := Orthogonalize(points, math.NaN())
	require.NoError(t, err)
	assert.Equal(t, full, missing)

	defaulted, err := OrthogonalizeWithOptions(points)
	require.NoError(t, err)
	assert.Equal(t, full, defaulted)
}

func TestOrthogonalize_StrengthZero(t *testing.T) {
	points := []Point{{X: 0.03, Y: -0.04}, {X: 0.98, Y: 0.04}, {X: 1.04, Y: 1.03}, {X: -0.04, Y: 0.99}}
	result, err := Orthogonalize(points, 0)
	require.NoError(t, err)
	assert.Equal(t, points, result)

	// Negative strengths clamp to 0
	result, err = Orthogonalize(points, -2)
	require.NoError(t, err)
	assert.Equal(t, points, result)
}

func TestOrthogonalize_Degenerate(t *testing.T) {
	result, err := Orthogonalize([]Point{}, 1)
	require.NoError(t, err)
	assert.Empty(t, result)

	result, err = Orthogonalize([]Point{{X: 4, Y: 2}}, 1)
	require.NoError(t, err)
	assert.Equal(t, []Point{{X: 4, Y: 2}}, result)
}

func TestOrthogonalize_InvalidInput(t *testing.T) {
	_, err := Orthogonalize([]Point{{X: 0, Y: 0}, {X: math.NaN(), Y: 1}, {X: 1, Y: 1}}, 1)
	assert.Error(t, err)
}

func TestOrthogonalizeWithOptions(t *testing.T) {
	points := []Point{{X: 0.03, Y: -0.04}, {X: 0.98, Y: 0.04}, {X: 1.04, Y: 1.03}, {X: -0.04, Y: 0.99}}
	result, err := OrthogonalizeWithOptions(points,
		WithStrength(1),
		WithIterations(1),
		WithEpsilon(0),
		WithThresholdAngle(20),
	)
	require.NoError(t, err)
	assert.Len(t, result, 4)
	assert.NotEqual(t, points, result)
}
