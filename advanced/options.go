package advanced

import (
	"io"
	"math"

	"github.com/charmbracelet/log"
)

const (
	DefaultIterations = 1000
	DefaultEpsilon    = 1.0 / 1000
	DefaultStrength   = 1.0
)

// Tuning for a single optimization run. Nothing here is shared between runs,
// so concurrent runs with different options don't interfere.
type Options struct {
	// How much of the optimized displacement ends up in the output, from 0
	// (original shape) to 1 (fully optimized).
	Strength float64
	// Maximum number of relaxation passes.
	Iterations int
	// The run stops as soon as the best score drops below this.
	Epsilon float64
	// Angles within this many degrees of 90° or 180° are considered good enough.
	ThresholdAngle float64
	// Debug output. Nil means silent.
	Logger *log.Logger
}

// Option configures an optimization run.
//
// Example:
//
//	result, err := advanced.Optimize(points,
//		advanced.WithStrength(0.5),
//		advanced.WithIterations(200),
//	)
type Option func(*Options)

func DefaultOptions() Options {
	return Options{
		Strength:       DefaultStrength,
		Iterations:     DefaultIterations,
		Epsilon:        DefaultEpsilon,
		ThresholdAngle: DefaultThresholdAngle,
	}
}

func NewOptions(opts ...Option) Options {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// Set the blend strength. NaN and infinities count as "not given" and leave
// full strength in place; anything else is clamped to [0, 1].
func WithStrength(strength float64) Option {
	return func(o *Options) {
		o.Strength = NormalizeStrength(strength)
	}
}

// Set the iteration budget. Values below 1 are ignored.
func WithIterations(n int) Option {
	return func(o *Options) {
		if n >= 1 {
			o.Iterations = n
		}
	}
}

// Set the convergence threshold. Negative or non-finite values are ignored.
func WithEpsilon(epsilon float64) Option {
	return func(o *Options) {
		if isFinite(epsilon) && epsilon >= 0 {
			o.Epsilon = epsilon
		}
	}
}

// Set the filter angle in degrees. It must be in (0, 45]; a larger angle
// would make the "near right" and "near straight" bands overlap.
func WithThresholdAngle(degrees float64) Option {
	return func(o *Options) {
		if degrees > 0 && degrees <= 45 {
			o.ThresholdAngle = degrees
		}
	}
}

func WithLogger(logger *log.Logger) Option {
	return func(o *Options) {
		o.Logger = logger
	}
}

func NormalizeStrength(strength float64) float64 {
	if !isFinite(strength) {
		return DefaultStrength
	}
	return math.Max(0, math.Min(1, strength))
}

func (o Options) Thresholds() Thresholds {
	return NewThresholds(o.ThresholdAngle)
}

func (o Options) logger() *log.Logger {
	if o.Logger == nil {
		return log.New(io.Discard)
	}
	return o.Logger
}
