// Package beamgo provides a generic anytime beam-search optimizer for Go.
//
// Given a caller-supplied expansion rule, completeness test, and comparator,
// beamgo explores a combinatorial state space while keeping only a bounded
// set of the most promising partial solutions ("the beam") in memory, and
// returns the best complete solution(s) found within configurable time
// budgets. The states, their semantics, and the objective are entirely
// supplied by the caller; beamgo owns only the search discipline:
//
//   - Bounded candidate retention via a min-max heap with O(1) rejection of
//     candidates worse than the current worst (package beam)
//   - Linear-time order-statistic seeding of the beam from the initial states
//   - Cooperative time-sliced execution: bounded compute bursts ("turns")
//     paced so only a configured fraction of wall-clock time is consumed
//   - Anytime termination heuristics: optimality oracle, total time budget,
//     adaptive convergence deadline, and a tie-count bail limit
//
// # Quick Start
//
// Search for the numerically largest complete counter in a chain:
//
//	opt := beamgo.New(
//	    func(n int) []int { // expand
//	        if n < 3 {
//	            return []int{n + 1}
//	        }
//	        return nil
//	    },
//	    func(n int) bool { return n == 3 },  // complete
//	    func(a, b int) int { return b - a }, // compare: larger is better
//	    beamgo.WithBeamWidth[int](2),
//	)
//
//	outcome, err := opt.Run(ctx, []int{0})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(outcome.Solutions(), outcome.ActiveTime)
//
// # Anytime Behavior
//
// A search yields after every turn (default 30ms of compute) and resumes at
// a fixed cadence, so long optimizations coexist with other work on the
// host. Every termination heuristic produces a normal outcome carrying the
// best solution found so far, never an error; the only hard failure is an
// empty initial state set.
//
// # Tuning
//
// Beam width trades memory and time against solution quality: width 1 is
// pure greedy, unbounded width with no oracle degenerates to exhaustive
// backtracking (and skips priority maintenance entirely). The Portfolio
// type races several widths concurrently and merges the results.
//
// Invalid option values are never rejected; they are silently replaced by
// documented defaults, so a misconfigured search still runs.
package beamgo
