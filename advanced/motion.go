package advanced

import "math"

// Dot products below this, on shapes with more than three vertices, belong to
// nearly straight angles. See Motion.
var straightCutoff = -math.Cos(math.Pi / 4)

// Compute the displacement for the vertex at index i of points. The vertex is
// pushed along the bisector of its two edges, by an amount proportional to its
// filtered dot product and capped by the shorter of the two edges so that
// lopsided edges don't overshoot.
//
// For a triangle, the corner accumulator is updated and returned. For any
// other shape it is returned unchanged.
func Motion(points []Point, i int, th Thresholds, corner Corner) (Point, Corner) {
	n := len(points)
	b := points[i]
	a := points[CircularIndex(i-1, n)]
	c := points[CircularIndex(i+1, n)]

	p := a.Sub(b)
	q := c.Sub(b)
	scale := 2 * math.Min(p.Length(), q.Length())
	p = p.Normalize(1)
	q = q.Normalize(1)

	dotp := th.Filter(p.Dot(q))

	// Near 180°, the raw dot product pulls the wrong way. Shifting it by one
	// flips the correction so nearly straight runs get straightened instead.
	if n > 3 && dotp < straightCutoff {
		dotp += 1
	}

	if n == 3 && dotp != 0 && math.Abs(dotp) < corner.Dot {
		corner = Corner{Index: i, Dot: math.Abs(dotp)}
	}

	return p.Add(q).Normalize(0.1 * dotp * scale), corner
}

// A single relaxation pass. Every motion is computed against the positions in
// points as they were when the pass started, and the moved positions are
// returned as a new slice. points itself is not modified.
func Relax(points []Point, th Thresholds) ([]Point, Corner) {
	corner := NewCorner()
	motions := make([]Point, len(points))
	for i := range points {
		motions[i], corner = Motion(points, i, th, corner)
	}

	result := make([]Point, len(points))
	for i, point := range points {
		result[i] = point.Add(motions[i])
	}
	return result, corner
}
