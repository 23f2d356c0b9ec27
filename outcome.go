package beamgo

import "time"

// TerminationReason records which condition ended a search.
type TerminationReason int

const (
	// ReasonNone is the zero value; it never appears in an Outcome.
	ReasonNone TerminationReason = iota

	// ReasonExhausted means the candidate container emptied: every reachable
	// state surviving the beam was visited.
	ReasonExhausted

	// ReasonOptimal means the optimality oracle confirmed a solution.
	ReasonOptimal

	// ReasonTimeBudget means accumulated active time reached the configured
	// total time budget.
	ReasonTimeBudget

	// ReasonConverged means accumulated active time passed the adaptive
	// deadline projected from the optimal-time ratio without a further
	// improvement.
	ReasonConverged

	// ReasonTooManyTies means the tie count passed the bail limit.
	ReasonTooManyTies

	// ReasonCanceled means the context was canceled before the search ended
	// on its own. The outcome still carries the best solution found so far.
	ReasonCanceled
)

// String implements fmt.Stringer.
func (r TerminationReason) String() string {
	switch r {
	case ReasonExhausted:
		return "exhausted"
	case ReasonOptimal:
		return "optimal"
	case ReasonTimeBudget:
		return "time budget"
	case ReasonConverged:
		return "converged"
	case ReasonTooManyTies:
		return "too many ties"
	case ReasonCanceled:
		return "canceled"
	default:
		return "none"
	}
}

// Stats carries per-search counters, useful for tuning beam width and time
// budgets.
type Stats struct {
	// Turns is the number of compute bursts executed, including the final
	// partial one.
	Turns int

	// Popped is the number of candidates taken from the container.
	Popped int

	// Expanded is the number of partial candidates expanded.
	Expanded int

	// Inserted is the number of successors retained by the container.
	Inserted int

	// Pruned is the number of successors rejected by the beam.
	Pruned int

	// Completed is the number of complete solutions scored.
	Completed int

	// Ties is the number of complete solutions that tied the current best,
	// including ones not retained due to the equivalents cap.
	Ties int
}

// Outcome is the result of one search invocation.
type Outcome[T any] struct {
	// Best is the best-ranked complete solution found. Only meaningful when
	// Found is true.
	Best T

	// Found reports whether any complete solution was encountered.
	Found bool

	// Ties holds complete solutions tied with Best under the comparator,
	// capped by the MaxEquivalents option. Best itself is not repeated here.
	Ties []T

	// ActiveTime is the cumulative compute time spent across turns,
	// excluding idle gaps between scheduled turns.
	ActiveTime time.Duration

	// TimeToBest is the active time accumulated when Best was found.
	TimeToBest time.Duration

	// Reason records which termination condition ended the search.
	Reason TerminationReason

	// Stats carries the per-search counters.
	Stats Stats
}

// Solutions returns the tied-best complete solutions: Best followed by Ties.
// It returns nil when no complete solution was found.
func (o *Outcome[T]) Solutions() []T {
	if !o.Found {
		return nil
	}
	out := make([]T, 0, 1+len(o.Ties))
	out = append(out, o.Best)
	return append(out, o.Ties...)
}
