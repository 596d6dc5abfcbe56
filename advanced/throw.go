package advanced

import (
	"fmt"

	"github.com/pkg/errors"
)

// Faults inside the optimizer (a position turning non-finite, sequences
// changing length) are programming errors rather than bad input, and checking
// for them at every step would clutter the numeric code. Instead we panic,
// and the public API recovers to convert to an error.

type optimizeFault struct {
	err error
}

// Panic with an error that HandlePanicRecover knows how to turn back into an
// error.
func fatalf(format string, args ...interface{}) {
	panic(optimizeFault{errors.Errorf(format, args...)})
}

func HandlePanicRecover(r interface{}) error {
	if r != nil {
		if fault, ok := r.(optimizeFault); ok {
			return fault.err
		}
		panic(r)
	}
	return nil
}

// Returned when a caller passes a point that cannot take part in the
// optimization. Zero coordinates are fine; NaN and infinite ones are not.
type InvalidInputError struct {
	Index int
	Point Point
}

func (e *InvalidInputError) Error() string {
	return fmt.Sprintf("invalid point at index %d: (%v, %v)", e.Index, e.Point.X, e.Point.Y)
}

func validate(points []Point) error {
	for i, point := range points {
		if !point.IsFinite() {
			return errors.WithStack(&InvalidInputError{Index: i, Point: point})
		}
	}
	return nil
}
