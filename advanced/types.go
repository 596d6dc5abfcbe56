package advanced

// Points are values. Nothing in the optimizer holds on to a caller's slice;
// every sequence it returns is a fresh copy, so callers may keep mutating
// their input freely.
type Point struct {
	X float64
	Y float64
}

// The neighbors of a vertex are always the previous and next entries with
// wraparound, even if the caller thinks of the sequence as an open polyline.
// That means the first and last vertices of a polyline pull on each other.
type Sequence []Point

// Triangle corner tracking. During a relaxation pass over a 3 point sequence,
// this records the vertex with the smallest nonzero filtered dot product seen
// so far. Index is -1 until a vertex has been recorded.
type Corner struct {
	Index int
	Dot   float64
}

// Starting state for a relaxation pass.
func NewCorner() Corner {
	return Corner{Index: -1, Dot: 1}
}

func (s Sequence) Copy() Sequence {
	if s == nil {
		return nil
	}
	result := make(Sequence, len(s))
	copy(result, s)
	return result
}

// The neighbors of the vertex at index i.
func (s Sequence) Neighbors(i int) (prev, next Point) {
	n := len(s)
	return s[CircularIndex(i-1, n)], s[CircularIndex(i+1, n)]
}
