package advanced

import "math"

const DefaultThresholdAngle = 15.0 // degrees

// Angles within the threshold angle of a right angle, or of a straight line,
// produce dot products that survive the filter. Everything in between is
// ignored, both by the score and by the motion rule.
type Thresholds struct {
	Lower float64 // cos(90° - angle)
	Upper float64 // cos(angle)
}

func NewThresholds(angleDegrees float64) Thresholds {
	return Thresholds{
		Lower: math.Cos((90 - angleDegrees) * math.Pi / 180),
		Upper: math.Cos(angleDegrees * math.Pi / 180),
	}
}

func DefaultThresholds() Thresholds {
	return NewThresholds(DefaultThresholdAngle)
}

// Keep the dot product if it is near 0 or near ±1, otherwise zero it.
func (th Thresholds) Filter(dotp float64) float64 {
	abs := math.Abs(dotp)
	if th.Lower > abs || abs > th.Upper {
		return dotp
	}
	return 0
}

// Filtered dot product of two vectors, after normalizing both of them.
func (th Thresholds) FilteredDot(p, q Point) float64 {
	return th.Filter(p.Normalize(1).Dot(q.Normalize(1)))
}

// Squareness score of a sequence. Each vertex contributes twice the distance
// from its filtered dot product to the nearest of -1, 0 and 1, so a shape
// whose angles are all right or straight scores 0. Lower is better, and the
// score is never negative.
func Score(points []Point, th Thresholds) float64 {
	n := len(points)
	var score float64
	for i, b := range points {
		a := points[CircularIndex(i-1, n)]
		c := points[CircularIndex(i+1, n)]
		dotp := th.FilteredDot(a.Sub(b), c.Sub(b))
		score += 2 * math.Min(math.Abs(dotp-1), math.Min(math.Abs(dotp), math.Abs(dotp+1)))
	}
	return score
}
