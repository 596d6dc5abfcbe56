package advanced

// Shoelace area. Positive for counterclockwise sequences, negative for
// clockwise ones. Like everything else here, the sequence is treated as
// closed.
func SignedArea(points []Point) float64 {
	var sum float64
	n := len(points)
	for i, p := range points {
		q := points[CircularIndex(i+1, n)]
		sum += p.X*q.Y - q.X*p.Y
	}
	return sum / 2
}

func IsCCW(points []Point) bool {
	return SignedArea(points) > 0
}

func (s Sequence) Reverse() Sequence {
	result := make(Sequence, 0, len(s))
	for i := len(s) - 1; i >= 0; i-- {
		result = append(result, s[i])
	}
	return result
}
