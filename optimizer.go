package beamgo

import (
	"context"
	"time"

	"golang.org/x/time/rate"

	"github.com/hupe1980/beamgo/beam"
)

// ExpandFunc produces the successor states of a partial solution. The
// returned sequence must be finite; it is consumed eagerly on each call.
type ExpandFunc[T any] func(state T) []T

// CompleteFunc reports whether a state is a complete solution. It must be
// pure and total.
type CompleteFunc[T any] func(state T) bool

// CompareFunc orders states; see beam.CompareFunc. It must define a
// consistent strict weak ordering for the search to behave correctly.
type CompareFunc[T any] = beam.CompareFunc[T]

// OracleFunc reports whether a complete solution is provably optimal.
type OracleFunc[T any] func(solution T) bool

// Optimizer is a generic anytime beam-search optimizer. Given a
// caller-supplied expansion rule, completeness test, and comparator, it
// explores a combinatorial state space, keeps only a bounded set of the most
// promising partial solutions in memory, and returns the best complete
// solution(s) found within the configured time budgets.
//
// An Optimizer is immutable after construction and may be shared; each call
// to Start or Run owns its search state exclusively, so independent
// invocations interleave without interacting.
type Optimizer[T any] struct {
	expand   ExpandFunc[T]
	complete CompleteFunc[T]
	compare  CompareFunc[T]
	opts     options[T]
}

// New creates an Optimizer from the three caller-supplied functions.
// Invalid option values are silently replaced by documented defaults; see
// the With* options.
func New[T any](expand ExpandFunc[T], complete CompleteFunc[T], compare CompareFunc[T], optFns ...Option[T]) *Optimizer[T] {
	opts := defaultOptions[T]()
	for _, fn := range optFns {
		fn(&opts)
	}

	return &Optimizer[T]{
		expand:   expand,
		complete: complete,
		compare:  compare,
		opts:     opts,
	}
}

// Run starts a search over the initial states and blocks until it resolves.
// It returns ErrNoInitialStates when initial is empty. On context
// cancellation the returned outcome still carries the best solution found
// so far, alongside the context's error.
func (o *Optimizer[T]) Run(ctx context.Context, initial []T) (*Outcome[T], error) {
	h, err := o.Start(ctx, initial)
	if err != nil {
		return nil, err
	}
	// The loop observes ctx itself, so done always closes; blocking here
	// (rather than racing Wait against ctx) preserves the partial outcome.
	<-h.done
	return h.outcome, h.err
}

// Start begins an asynchronous search over the initial states. It validates
// the input and seeds the candidate container synchronously, then runs the
// turn loop on its own goroutine, paced so that only the configured
// utilization fraction of wall-clock time is consumed.
func (o *Optimizer[T]) Start(ctx context.Context, initial []T) (*Handle[T], error) {
	if len(initial) == 0 {
		return nil, ErrNoInitialStates
	}

	// Private copy: beam seeding partitions its input in place.
	states := make([]T, len(initial))
	copy(states, initial)

	r := o.newRun(states)
	h := &Handle[T]{done: make(chan struct{})}

	go h.loop(ctx, r)

	return h, nil
}

// Handle tracks one in-flight search.
type Handle[T any] struct {
	done    chan struct{}
	outcome *Outcome[T]
	err     error
}

// Done returns a channel that is closed when the search resolves.
func (h *Handle[T]) Done() <-chan struct{} { return h.done }

// Wait blocks until the search resolves or ctx is canceled. Note that
// canceling ctx abandons the wait without stopping the search; the search
// itself is bound to the context given to Start.
func (h *Handle[T]) Wait(ctx context.Context) (*Outcome[T], error) {
	select {
	case <-h.done:
		return h.outcome, h.err
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}

// loop schedules turns at a fixed cadence until the search terminates.
func (h *Handle[T]) loop(ctx context.Context, r *run[T]) {
	defer close(h.done)

	opts := &r.opt.opts
	limiter := r.opt.newPacer()
	r.ctx = ctx

	for {
		// The limiter starts with one burst token, so the first turn runs
		// immediately; later turns are spaced at turnTime/utilization.
		if err := limiter.Wait(ctx); err != nil {
			// Either ctx was canceled, or a zero-utilization pacer can
			// never supply another token.
			if cerr := ctx.Err(); cerr != nil {
				err = cerr
			}
			h.outcome = r.outcome(ctx, ReasonCanceled)
			h.err = err
			return
		}

		poppedBefore := r.stats.Popped
		activeBefore := r.active
		reason := r.turn()

		opts.metrics.RecordTurn(r.active-activeBefore, r.stats.Popped-poppedBefore)
		opts.logger.LogTurn(ctx, r.stats.Turns, r.active, r.frontier.Len())

		if reason != ReasonNone {
			h.outcome = r.outcome(ctx, reason)
			return
		}
	}
}

// newPacer builds the rate limiter enforcing the utilization bound.
func (o *Optimizer[T]) newPacer() *rate.Limiter {
	u := o.opts.utilization
	if u <= 0 {
		// Never refills: only the initial burst token is ever available.
		return rate.NewLimiter(0, 1)
	}
	interval := time.Duration(float64(o.opts.turnTime) / u)
	return rate.NewLimiter(rate.Every(interval), 1)
}

// run is the resumable search state machine: candidate container, best and
// equivalents, pending-expansion marker, and timing counters. It is stepped
// by turn() and owned by exactly one invocation.
type run[T any] struct {
	opt *Optimizer[T]
	ctx context.Context // the scheduling context, for log records only

	frontier beam.Frontier[T]
	pending  []T // successors not yet inserted across a suspension

	best     T
	found    bool
	ties     []T
	tieCount int

	active       time.Duration
	activeAtBest time.Duration
	projection   time.Duration // adaptive deadline; 0 when inactive

	stats Stats
	now   func() time.Time
}

func (o *Optimizer[T]) newRun(states []T) *run[T] {
	r := &run[T]{
		opt: o,
		now: o.opts.now,
	}

	// The beam only pays off when an oracle can short-circuit or a finite
	// width prunes; otherwise every state gets visited anyway and a plain
	// stack skips the cost of maintaining order.
	if o.opts.oracle != nil || o.opts.beamWidth != beam.Unbounded {
		r.frontier = beam.New(o.compare, o.opts.beamWidth, states)
	} else {
		r.frontier = beam.NewStack(states)
	}

	return r
}

// turn executes one bounded compute burst. It returns ReasonNone when the
// turn yielded on its deadline with work remaining, or the termination
// reason that ended the search. Suspension happens only between container
// operations, so all invariants hold at every suspension boundary.
func (r *run[T]) turn() (reason TerminationReason) {
	opts := &r.opt.opts
	start := r.now()
	deadline := start.Add(opts.turnTime)

	defer func() {
		r.active += r.now().Sub(start)
		r.stats.Turns++
	}()

	for {
		now := r.now()
		activeNow := r.active + now.Sub(start)

		// Budget checks precede the yield check so a budget smaller than
		// one turn still terminates instead of rescheduling forever.
		if opts.totalTime > 0 && activeNow >= opts.totalTime {
			return ReasonTimeBudget
		}
		if r.projection > 0 && activeNow > r.projection {
			return ReasonConverged
		}
		if now.After(deadline) {
			return ReasonNone
		}

		// Resume a suspended expansion before any further pops, so no
		// successor is lost or duplicated across turns.
		if len(r.pending) > 0 {
			s := r.pending[0]
			r.pending = r.pending[1:]
			if r.frontier.Push(s) {
				r.stats.Inserted++
			} else {
				r.stats.Pruned++
			}
			continue
		}

		c, ok := r.frontier.Pop()
		if !ok {
			return ReasonExhausted
		}
		r.stats.Popped++

		if !r.opt.complete(c) {
			r.pending = r.opt.expand(c)
			r.stats.Expanded++
			opts.metrics.RecordExpand(len(r.pending))
			continue
		}

		r.stats.Completed++
		if reason := r.score(c, activeNow); reason != ReasonNone {
			return reason
		}
	}
}

// score compares a complete solution against the current best and applies
// the oracle, adaptive-deadline, and tie-bail heuristics.
func (r *run[T]) score(c T, activeNow time.Duration) TerminationReason {
	opts := &r.opt.opts

	s := 0
	if r.found {
		s = sign(r.opt.compare(c, r.best))
	} else {
		s = -1 // first complete solution becomes the best
	}

	switch {
	case s < 0:
		r.best = c
		r.found = true
		r.ties = r.ties[:0]
		r.tieCount = 0
		r.activeAtBest = activeNow
		opts.metrics.RecordBest(activeNow)
		opts.logger.LogBest(r.ctx, activeNow)

		if opts.oracle != nil && opts.oracle(c) {
			return ReasonOptimal
		}
		if opts.optimalTimeRatio > 0 {
			r.projection = time.Duration(float64(activeNow) * (2 - opts.optimalTimeRatio))
		}

	case s == 0:
		r.tieCount++
		if len(r.ties) < opts.maxEquivalents {
			r.ties = append(r.ties, c)
		}
		if opts.bailLimit > 0 && r.tieCount > opts.bailLimit {
			return ReasonTooManyTies
		}

	default:
		// strictly worse, discard
	}

	return ReasonNone
}

// outcome freezes the run state into a result.
func (r *run[T]) outcome(ctx context.Context, reason TerminationReason) *Outcome[T] {
	opts := &r.opt.opts

	out := &Outcome[T]{
		Best:       r.best,
		Found:      r.found,
		Ties:       append([]T(nil), r.ties...),
		ActiveTime: r.active,
		TimeToBest: r.activeAtBest,
		Reason:     reason,
		Stats:      r.stats,
	}
	out.Stats.Ties = r.tieCount

	opts.metrics.RecordTermination(reason, r.active)
	opts.logger.LogTerminate(ctx, reason, r.active, out.Stats)

	return out
}

// sign normalizes a comparator result to {-1, 0, 1} so that only its sign,
// never its magnitude, influences the search.
func sign(c int) int {
	switch {
	case c < 0:
		return -1
	case c > 0:
		return 1
	default:
		return 0
	}
}
