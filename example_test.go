package beamgo_test

import (
	"context"
	"fmt"
	"log"

	"github.com/hupe1980/beamgo"
)

// Example demonstrates a minimal search over an integer-counter space.
func Example() {
	opt := beamgo.New(
		func(n int) []int { // expand
			if n < 3 {
				return []int{n + 1}
			}
			return nil
		},
		func(n int) bool { return n == 3 },  // complete
		func(a, b int) int { return b - a }, // compare: larger is better
		beamgo.WithBeamWidth[int](2),
	)

	outcome, err := opt.Run(context.Background(), []int{0})
	if err != nil {
		log.Fatal(err)
	}

	fmt.Println(outcome.Solutions())
	// Output: [3]
}

// Example_oracle terminates on the first solution the oracle confirms as
// optimal, without exploring the rest of the space.
func Example_oracle() {
	opt := beamgo.New(
		func(n int) []int {
			if n == 0 {
				return []int{1, 2, 3}
			}
			return nil
		},
		func(n int) bool { return n > 0 },
		func(a, b int) int { return b - a },
		beamgo.WithOracle[int](func(n int) bool { return n == 3 }),
	)

	outcome, err := opt.Run(context.Background(), []int{0})
	if err != nil {
		log.Fatal(err)
	}

	fmt.Println(outcome.Best, outcome.Reason)
	// Output: 3 optimal
}

// ExamplePortfolio races a greedy beam against a wide one and keeps the
// better result.
func ExamplePortfolio() {
	expand := func(n int) []int {
		if n < 8 {
			return []int{2 * n, 2*n + 1}
		}
		return nil
	}
	complete := func(n int) bool { return n >= 8 }
	compare := func(a, b int) int { return b - a }

	p := beamgo.NewPortfolio(expand, complete, compare,
		[]beamgo.Variant[int]{
			{Name: "greedy", Options: []beamgo.Option[int]{beamgo.WithBeamWidth[int](1)}},
			{Name: "wide", Options: []beamgo.Option[int]{beamgo.WithBeamWidth[int](16)}},
		},
		beamgo.WithMaxConcurrent(2),
	)

	res, err := p.Run(context.Background(), []int{1})
	if err != nil {
		log.Fatal(err)
	}

	fmt.Println(res.Merged.Best)
	// Output: 15
}
