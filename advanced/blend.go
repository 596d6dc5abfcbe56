package advanced

// Blend the optimized positions back toward the original ones. A vertex that
// the optimizer moved lands strength of the way from its original position to
// its optimized one. A vertex that ended up exactly where it started is passed
// through untouched.
//
// The two sequences must have the same length.
func Blend(original, optimized []Point, strength float64) []Point {
	if len(original) != len(optimized) {
		fatalf("cannot blend sequences of different lengths: %d and %d", len(original), len(optimized))
	}
	result := make([]Point, len(original))
	for i, point := range original {
		if optimized[i] != point {
			point = point.Lerp(optimized[i], strength)
		}
		result[i] = point
	}
	return result
}

// Movement of each vertex between two sequences of the same length.
func Displacements(original, moved []Point) []float64 {
	result := make([]float64, len(original))
	for i := range original {
		result[i] = original[i].Distance(moved[i])
	}
	return result
}
