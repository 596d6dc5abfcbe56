package advanced

import "math"

// Often we want to treat an array as a circular buffer. This gives the modular
// index given length n, but unlike the raw modulo operator, it only gives positive values
func CircularIndex(i, n int) int {
	return (i%n + n) % n
}

func (p Point) Add(q Point) Point {
	return Point{p.X + q.X, p.Y + q.Y}
}

// Componentwise difference. Zero is an ordinary coordinate here; a point at
// the origin or on an axis is not "missing".
func (p Point) Sub(q Point) Point {
	return Point{p.X - q.X, p.Y - q.Y}
}

func (p Point) Scale(s float64) Point {
	return Point{p.X * s, p.Y * s}
}

func (p Point) Dot(q Point) float64 {
	return p.X*q.X + p.Y*q.Y
}

func (p Point) Length() float64 {
	return math.Hypot(p.X, p.Y)
}

func (p Point) Distance(q Point) float64 {
	return p.Sub(q).Length()
}

// Scale the vector to the given length. A zero vector has no direction, so it
// stays zero instead of turning into NaNs.
func (p Point) Normalize(length float64) Point {
	l := p.Length()
	if l == 0 {
		return Point{}
	}
	return p.Scale(length / l)
}

// Linear interpolation from p toward q. t is not clamped. This is written as
// p*(1-t) + q*t rather than p + (q-p)*t, so that t=0 and t=1 reproduce the
// endpoints exactly.
func (p Point) Lerp(q Point, t float64) Point {
	return Point{
		p.X*(1-t) + q.X*t,
		p.Y*(1-t) + q.Y*t,
	}
}

func (p Point) IsFinite() bool {
	return isFinite(p.X) && isFinite(p.Y)
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
