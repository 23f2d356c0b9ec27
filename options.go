package beamgo

import (
	"math"
	"time"

	"github.com/hupe1980/beamgo/beam"
)

// Defaults substituted for absent or invalid option values. Invalid values
// are never rejected with an error; they are silently replaced, so a
// misconfigured search degrades to documented behavior instead of failing.
const (
	// DefaultTurnTime is the compute burst length before yielding.
	DefaultTurnTime = 30 * time.Millisecond

	// DefaultUtilization is the target fraction of wall-clock time consumed.
	DefaultUtilization = 0.5

	// DefaultOptimalTimeRatio parameterizes the adaptive deadline: once
	// active time passes timeOfBest × (2 − ratio) without improvement, the
	// search assumes diminishing returns and stops.
	DefaultOptimalTimeRatio = 0.66
)

type options[T any] struct {
	oracle           OracleFunc[T]
	beamWidth        int           // beam.Unbounded when no cap
	turnTime         time.Duration // always > 0
	totalTime        time.Duration // 0 means unbounded
	maxEquivalents   int
	bailLimit        int // 0 means unbounded
	utilization      float64
	optimalTimeRatio float64 // 0 disables the adaptive deadline

	logger  *Logger
	metrics MetricsCollector
	now     func() time.Time
}

func defaultOptions[T any]() options[T] {
	return options[T]{
		beamWidth:        beam.Unbounded,
		turnTime:         DefaultTurnTime,
		utilization:      DefaultUtilization,
		optimalTimeRatio: DefaultOptimalTimeRatio,
		logger:           NoopLogger(),
		metrics:          NoopMetricsCollector{},
		now:              time.Now,
	}
}

// Option configures an Optimizer. Options are generic because some of them
// (the oracle) close over the state type.
type Option[T any] func(*options[T])

// WithOracle configures an optimality oracle: a predicate on a complete
// solution that, when true, terminates the whole search immediately with
// that solution. Absent, the search never short-circuits.
func WithOracle[T any](oracle OracleFunc[T]) Option[T] {
	return func(o *options[T]) {
		o.oracle = oracle
	}
}

// WithBeamWidth caps the number of partial solutions retained
// simultaneously. Non-positive widths mean unbounded.
func WithBeamWidth[T any](width int) Option[T] {
	return func(o *options[T]) {
		if width <= 0 {
			width = beam.Unbounded
		}
		o.beamWidth = width
	}
}

// WithTurnTime sets the compute burst length before the search yields to
// other work. Non-positive durations fall back to DefaultTurnTime.
func WithTurnTime[T any](d time.Duration) Option[T] {
	return func(o *options[T]) {
		if d <= 0 {
			d = DefaultTurnTime
		}
		o.turnTime = d
	}
}

// WithTotalTime sets a hard cap on accumulated active compute time.
// Non-positive durations mean unbounded.
func WithTotalTime[T any](d time.Duration) Option[T] {
	return func(o *options[T]) {
		if d < 0 {
			d = 0
		}
		o.totalTime = d
	}
}

// WithMaxEquivalents caps how many solutions tied with the current best are
// retained beyond the best itself. The default is 0: ties are counted but
// not saved.
func WithMaxEquivalents[T any](n int) Option[T] {
	return func(o *options[T]) {
		if n < 0 {
			n = 0
		}
		o.maxEquivalents = n
	}
}

// WithBailLimit terminates the search once the number of solutions tying
// the current best passes n; finding that many ties suggests continuing has
// diminishing value. Non-positive limits mean unbounded.
func WithBailLimit[T any](n int) Option[T] {
	return func(o *options[T]) {
		if n < 0 {
			n = 0
		}
		o.bailLimit = n
	}
}

// WithUtilization sets the target fraction of wall-clock time the search
// consumes; the rest is deliberately left idle for other work sharing the
// scheduler. Values are clamped into [0, 1]; NaN falls back to
// DefaultUtilization. A utilization of 0 never reschedules: a search that
// does not finish within its first turn resolves as canceled.
func WithUtilization[T any](u float64) Option[T] {
	return func(o *options[T]) {
		switch {
		case math.IsNaN(u):
			u = DefaultUtilization
		case u < 0:
			u = 0
		case u > 1:
			u = 1
		}
		o.utilization = u
	}
}

// WithOptimalTimeRatio sets the adaptive-deadline parameter: the expected
// fraction of total search time needed to find the optimum. When a new best
// is found at active time t, the search stops once active time passes
// t × (2 − ratio) without a further improvement. Values outside [0, 1] fall
// back to DefaultOptimalTimeRatio; 0 disables the heuristic.
func WithOptimalTimeRatio[T any](ratio float64) Option[T] {
	return func(o *options[T]) {
		if math.IsNaN(ratio) || ratio < 0 || ratio > 1 {
			ratio = DefaultOptimalTimeRatio
		}
		o.optimalTimeRatio = ratio
	}
}

// WithLogger configures structured logging. Pass nil to disable logging
// (the default).
func WithLogger[T any](logger *Logger) Option[T] {
	return func(o *options[T]) {
		if logger == nil {
			logger = NoopLogger()
		}
		o.logger = logger
	}
}

// WithMetricsCollector configures a metrics collector for monitoring
// searches. Pass nil to disable metrics collection (the default).
func WithMetricsCollector[T any](collector MetricsCollector) Option[T] {
	return func(o *options[T]) {
		if collector == nil {
			collector = NoopMetricsCollector{}
		}
		o.metrics = collector
	}
}

// WithClock overrides the time source used for turn deadlines and active
// time accounting. Intended for tests; pass nil to restore the wall clock.
func WithClock[T any](now func() time.Time) Option[T] {
	return func(o *options[T]) {
		if now == nil {
			now = time.Now
		}
		o.now = now
	}
}
