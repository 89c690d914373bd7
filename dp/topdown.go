package dp

import (
	"fmt"
	"time"

	"github.com/katalvlaran/invdp/internal/logging"
)

// SolveTopDown returns the minimum expected cost-to-go of the state
// (periodsRemaining, inventory) by memoised recursion.
//
// Algorithm:
//  1. periodsRemaining == 0 ⇒ 0 (terminal; the memo is not touched).
//  2. Cached state ⇒ return the memo entry without descending.
//  3. Otherwise, for each action a in order, sum over the demand outcomes
//     of period periodsRemaining: p · (cost(x, a, d) + V(t−1, x + a − d)).
//  4. Keep the first minimum, store value and action in memo, return.
//
// Every reachable state is solved at most once, so total work is
// O(|reachable states| · A · D). Recursion depth equals periodsRemaining.
//
// The memo is an accumulator: a warm memo answers repeated calls without
// new insertions, and its size is the count of states visited.
//
// Errors: ErrInvalidParameter (nil problem, negative periods, bad demand),
// ErrNilMemo.
func SolveTopDown(p *Problem, periodsRemaining, inventory int, memo *Memo) (float64, error) {
	if p == nil {
		return 0, fmt.Errorf("%w: nil problem", ErrInvalidParameter)
	}
	if memo == nil {
		return 0, ErrNilMemo
	}
	if periodsRemaining < 0 {
		return 0, fmt.Errorf("%w: periods remaining %d < 0", ErrInvalidParameter, periodsRemaining)
	}

	log := p.opts.Logger.WithValues("strategy", TopDown.String())
	start := time.Now()
	before := memo.Len()

	td := topDown{p: p, memo: memo}
	v, err := td.solve(State{PeriodsRemaining: periodsRemaining, Inventory: inventory})
	if err != nil {
		return 0, err
	}

	elapsed := time.Since(start)
	p.observer.SolveFinished(TopDown, elapsed)
	log.V(logging.DEBUG).Info("solve finished",
		"periodsRemaining", periodsRemaining, "inventory", inventory,
		"value", v, "newStates", memo.Len()-before, "states", memo.Len(), "elapsed", elapsed)

	return v, nil
}

type topDown struct {
	p    *Problem
	memo *Memo
}

func (td *topDown) solve(s State) (float64, error) {
	if s.PeriodsRemaining == 0 {
		return 0, nil
	}
	if v, ok := td.memo.values[s]; ok {
		td.p.observer.CacheHit(TopDown)
		return v, nil
	}

	dist, err := td.p.distribution(s.PeriodsRemaining)
	if err != nil {
		return 0, err
	}
	below := s.PeriodsRemaining - 1
	v, a, err := td.p.best(s, dist, func(next int) (float64, error) {
		return td.solve(State{PeriodsRemaining: below, Inventory: next})
	})
	if err != nil {
		return 0, err
	}

	td.memo.store(s, v, a)
	td.p.observer.StateEvaluated(TopDown)

	return v, nil
}
