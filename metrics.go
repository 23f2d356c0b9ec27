package beamgo

import (
	"sync/atomic"
	"time"
)

// MetricsCollector defines an interface for collecting operational metrics.
// Implement this interface to integrate with monitoring systems like
// Prometheus.
//
// Example Prometheus integration:
//
//	type PrometheusCollector struct {
//	    turnHistogram prometheus.Histogram
//	    pruneCounter  prometheus.Counter
//	}
//
//	func (p *PrometheusCollector) RecordTurn(duration time.Duration, popped int) {
//	    p.turnHistogram.Observe(duration.Seconds())
//	    // ... record popped count, etc.
//	}
type MetricsCollector interface {
	// RecordTurn is called after each compute burst.
	// duration is the burst's compute time, popped the candidates consumed.
	RecordTurn(duration time.Duration, popped int)

	// RecordExpand is called after each expansion of a partial solution.
	// successors is the number of states produced.
	RecordExpand(successors int)

	// RecordBest is called when a strictly better complete solution is
	// found. active is the accumulated active time at that point.
	RecordBest(active time.Duration)

	// RecordTermination is called once per search with the final reason and
	// total active time.
	RecordTermination(reason TerminationReason, active time.Duration)
}

// NoopMetricsCollector is a no-op implementation of MetricsCollector.
// Use this when metrics collection is not needed.
type NoopMetricsCollector struct{}

func (NoopMetricsCollector) RecordTurn(time.Duration, int) {}

func (NoopMetricsCollector) RecordExpand(int) {}

func (NoopMetricsCollector) RecordBest(time.Duration) {}

func (NoopMetricsCollector) RecordTermination(TerminationReason, time.Duration) {}

// BasicMetricsCollector provides simple in-memory metrics collection.
// Useful for debugging and basic monitoring without external dependencies.
type BasicMetricsCollector struct {
	TurnCount       atomic.Int64
	TurnTotalNanos  atomic.Int64
	PoppedTotal     atomic.Int64
	ExpandCount     atomic.Int64
	SuccessorsTotal atomic.Int64
	BestCount       atomic.Int64
	Terminations    atomic.Int64
	ActiveNanos     atomic.Int64
}

// RecordTurn implements MetricsCollector.
func (b *BasicMetricsCollector) RecordTurn(duration time.Duration, popped int) {
	b.TurnCount.Add(1)
	b.TurnTotalNanos.Add(duration.Nanoseconds())
	b.PoppedTotal.Add(int64(popped))
}

// RecordExpand implements MetricsCollector.
func (b *BasicMetricsCollector) RecordExpand(successors int) {
	b.ExpandCount.Add(1)
	b.SuccessorsTotal.Add(int64(successors))
}

// RecordBest implements MetricsCollector.
func (b *BasicMetricsCollector) RecordBest(time.Duration) {
	b.BestCount.Add(1)
}

// RecordTermination implements MetricsCollector.
func (b *BasicMetricsCollector) RecordTermination(_ TerminationReason, active time.Duration) {
	b.Terminations.Add(1)
	b.ActiveNanos.Add(active.Nanoseconds())
}

// AvgTurnTime returns the mean compute burst duration.
func (b *BasicMetricsCollector) AvgTurnTime() time.Duration {
	turns := b.TurnCount.Load()
	if turns == 0 {
		return 0
	}
	return time.Duration(b.TurnTotalNanos.Load() / turns)
}
