package orthogonalize

import (
	"github.com/paulmach/orb"
	"github.com/pkg/errors"
)

// Adapters for orb geometries. orb points are [x, y] pairs, which is the same
// convention the optimizer uses, so no axis flipping happens here.

func OrthogonalizeLineString(ls orb.LineString, opts ...Option) (orb.LineString, error) {
	points, err := OrthogonalizeWithOptions(fromOrb(ls), opts...)
	if err != nil {
		return nil, err
	}
	return orb.LineString(toOrb(points)), nil
}

// Square up a ring. A closed ring repeats its first point at the end; that
// duplicate is dropped before optimizing (it would otherwise be a zero length
// edge next to the first vertex) and restored afterwards.
func OrthogonalizeRing(r orb.Ring, opts ...Option) (orb.Ring, error) {
	closed := len(r) > 1 && r.Closed()
	open := r
	if closed {
		open = r[:len(r)-1]
	}

	points, err := OrthogonalizeWithOptions(fromOrb(open), opts...)
	if err != nil {
		return nil, err
	}

	result := orb.Ring(toOrb(points))
	if closed {
		result = append(result, result[0])
	}
	return result, nil
}

// Square up every ring of a polygon independently.
func OrthogonalizePolygon(p orb.Polygon, opts ...Option) (orb.Polygon, error) {
	result := make(orb.Polygon, len(p))
	for i, ring := range p {
		squared, err := OrthogonalizeRing(ring, opts...)
		if err != nil {
			return nil, errors.Wrapf(err, "ring %d", i)
		}
		result[i] = squared
	}
	return result, nil
}

func fromOrb(points []orb.Point) []Point {
	if points == nil {
		return nil
	}
	result := make([]Point, len(points))
	for i, p := range points {
		result[i] = Point{X: p.X(), Y: p.Y()}
	}
	return result
}

func toOrb(points []Point) []orb.Point {
	if points == nil {
		return nil
	}
	result := make([]orb.Point, len(points))
	for i, p := range points {
		result[i] = orb.Point{p.X, p.Y}
	}
	return result
}
