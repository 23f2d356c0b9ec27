package beamgo

import (
	"context"

	"golang.org/x/sync/errgroup"
)

// Variant is one optimizer configuration competing in a Portfolio.
type Variant[T any] struct {
	// Name identifies the variant in errors and logs.
	Name string

	// Options configure this variant's optimizer on top of the portfolio's
	// shared expand/complete/compare functions.
	Options []Option[T]
}

// Portfolio runs the same initial states through several optimizer variants
// concurrently (say, a narrow greedy beam next to a wide one) and merges
// their outcomes under the shared comparator. Each variant is an independent
// search invocation with exclusively owned state; only the merge step reads
// across them.
type Portfolio[T any] struct {
	expand   ExpandFunc[T]
	complete CompleteFunc[T]
	compare  CompareFunc[T]
	variants []Variant[T]
	limit    int
	logger   *Logger
}

// PortfolioOption configures a Portfolio.
type PortfolioOption func(*portfolioOptions)

type portfolioOptions struct {
	limit  int
	logger *Logger
}

// WithMaxConcurrent bounds how many variants run at once. Non-positive
// values run all variants concurrently.
func WithMaxConcurrent(n int) PortfolioOption {
	return func(o *portfolioOptions) {
		if n < 0 {
			n = 0
		}
		o.limit = n
	}
}

// WithPortfolioLogger configures structured logging for the portfolio.
// Pass nil to disable logging (the default).
func WithPortfolioLogger(logger *Logger) PortfolioOption {
	return func(o *portfolioOptions) {
		if logger == nil {
			logger = NoopLogger()
		}
		o.logger = logger
	}
}

// NewPortfolio creates a Portfolio over the shared problem functions and the
// given variants.
func NewPortfolio[T any](expand ExpandFunc[T], complete CompleteFunc[T], compare CompareFunc[T], variants []Variant[T], optFns ...PortfolioOption) *Portfolio[T] {
	opts := portfolioOptions{logger: NoopLogger()}
	for _, fn := range optFns {
		fn(&opts)
	}

	return &Portfolio[T]{
		expand:   expand,
		complete: complete,
		compare:  compare,
		variants: variants,
		limit:    opts.limit,
		logger:   opts.logger,
	}
}

// PortfolioResult holds the merged outcome and the per-variant outcomes,
// index-aligned with the configured variants.
type PortfolioResult[T any] struct {
	Merged   *Outcome[T]
	Variants []*Outcome[T]
}

// Run fans the initial states out to every variant and blocks until all of
// them resolve. The merged outcome carries the best solution across
// variants; solutions from other variants that tie it are appended to the
// merged Ties. The merged ActiveTime is the sum of compute time spent by
// all variants. A variant failure cancels the remaining variants and is
// reported as a VariantError.
func (p *Portfolio[T]) Run(ctx context.Context, initial []T) (*PortfolioResult[T], error) {
	if len(p.variants) == 0 {
		return nil, ErrNoVariants
	}
	if len(initial) == 0 {
		return nil, ErrNoInitialStates
	}

	outcomes := make([]*Outcome[T], len(p.variants))

	g, gctx := errgroup.WithContext(ctx)
	if p.limit > 0 {
		g.SetLimit(p.limit)
	}

	for i, v := range p.variants {
		g.Go(func() error {
			opt := New(p.expand, p.complete, p.compare, v.Options...)
			out, err := opt.Run(gctx, initial)
			if err != nil {
				return &VariantError{Index: i, Name: v.Name, cause: err}
			}
			outcomes[i] = out
			p.logger.DebugContext(gctx, "variant resolved",
				"variant", v.Name,
				"reason", out.Reason.String(),
				"active_ms", out.ActiveTime.Milliseconds(),
			)
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	return &PortfolioResult[T]{
		Merged:   p.merge(outcomes),
		Variants: outcomes,
	}, nil
}

// merge folds the per-variant outcomes into one, keeping the best solution
// under the shared comparator.
func (p *Portfolio[T]) merge(outcomes []*Outcome[T]) *Outcome[T] {
	merged := &Outcome[T]{}

	for _, out := range outcomes {
		merged.ActiveTime += out.ActiveTime
		merged.Stats.Turns += out.Stats.Turns
		merged.Stats.Popped += out.Stats.Popped
		merged.Stats.Expanded += out.Stats.Expanded
		merged.Stats.Inserted += out.Stats.Inserted
		merged.Stats.Pruned += out.Stats.Pruned
		merged.Stats.Completed += out.Stats.Completed
		merged.Stats.Ties += out.Stats.Ties

		if !out.Found {
			continue
		}

		if !merged.Found {
			merged.Best = out.Best
			merged.Found = true
			merged.Ties = append(merged.Ties[:0], out.Ties...)
			merged.TimeToBest = out.TimeToBest
			merged.Reason = out.Reason
			continue
		}

		switch sign(p.compare(out.Best, merged.Best)) {
		case -1:
			merged.Best = out.Best
			merged.Ties = append(merged.Ties[:0], out.Ties...)
			merged.TimeToBest = out.TimeToBest
			merged.Reason = out.Reason
		case 0:
			merged.Ties = append(merged.Ties, out.Best)
			merged.Ties = append(merged.Ties, out.Ties...)
		}
	}

	return merged
}
