package dp

import (
	"fmt"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/invdp/internal/logging"
)

// SolveBottomUp fills the value table for totalPeriods and returns the
// value at (totalPeriods, InitialInventory).
//
// Errors: see FillTable.
func SolveBottomUp(p *Problem, totalPeriods int) (float64, error) {
	tb, err := FillTable(p, totalPeriods)
	if err != nil {
		return 0, err
	}
	s := State{PeriodsRemaining: totalPeriods, Inventory: p.model.InitialInventory()}
	v, ok := tb.Value(s)
	if !ok {
		return 0, fmt.Errorf("%w: initial state %+v not in table", ErrStateWindowOverflow, s)
	}

	return v, nil
}

// FillTable computes V(t, x) for t = 1..totalPeriods over the rows chosen
// by the problem's WindowMode.
//
// Algorithm:
//  1. Validate: totalPeriods ≥ 1.
//  2. Plan rows: envelope (DerivedWindow), reachable set (SparseWindow) or
//     the fixed window checked against the envelope (FixedWindow).
//  3. For t = 1..T: fetch the demand of period t once, then evaluate every
//     cell of row t from row t−1 (row 0 is 0 everywhere). With Workers > 1
//     the cells of a row are split across goroutines; rows stay sequential
//     because row t only depends on row t−1.
//
// Errors:
//   - ErrInvalidParameter:     nil problem, totalPeriods < 1, bad demand.
//   - ErrStateWindowOverflow:  FixedWindow misses the initial inventory, or
//     misses a reachable state under the Strict policy.
//
// Complexity: O(cells · A · D) time, O(cells) memory.
func FillTable(p *Problem, totalPeriods int) (*Table, error) {
	if p == nil {
		return nil, fmt.Errorf("%w: nil problem", ErrInvalidParameter)
	}
	if totalPeriods < 1 {
		return nil, fmt.Errorf("%w: horizon %d < 1", ErrInvalidParameter, totalPeriods)
	}

	log := p.opts.Logger.WithValues("strategy", BottomUp.String(), "window", p.opts.Window.String())
	start := time.Now()

	tb := &Table{horizon: totalPeriods, initial: p.model.InitialInventory(), mode: p.opts.Window}
	if err := p.planRows(tb); err != nil {
		return nil, err
	}
	log.V(logging.DEBUG).Info("table planned", "horizon", totalPeriods, "cells", tb.Len(), "truncated", tb.truncated)

	for t := 1; t <= totalPeriods; t++ {
		if err := p.fillRow(tb, t); err != nil {
			return nil, err
		}
		if log.V(logging.TRACE).Enabled() {
			lo, hi, _ := tb.Bounds(t)
			log.V(logging.TRACE).Info("row filled", "periodsRemaining", t, "cells", len(tb.rows[t].values), "lo", lo, "hi", hi)
		}
	}

	elapsed := time.Since(start)
	p.observer.SolveFinished(BottomUp, elapsed)
	log.V(logging.DEBUG).Info("fill finished", "cells", tb.Len(), "elapsed", elapsed)

	return tb, nil
}

// planRows allocates rows 1..T of tb according to the window mode.
func (p *Problem) planRows(tb *Table) error {
	horizon := tb.horizon
	tb.rows = make([]row, horizon+1)

	switch p.opts.Window {
	case SparseWindow:
		levels, err := Reachable(p, horizon)
		if err != nil {
			return err
		}
		for t := 1; t <= horizon; t++ {
			tb.rows[t] = newSparseRow(levels[t])
		}

	case FixedWindow:
		win := Band{Lo: p.opts.FixedMin, Hi: p.opts.FixedMax - 1}
		if !win.Contains(tb.initial) {
			return fmt.Errorf("%w: initial inventory %d outside [%d,%d)",
				ErrStateWindowOverflow, tb.initial, p.opts.FixedMin, p.opts.FixedMax)
		}
		bands, err := Envelope(p, horizon)
		if err != nil {
			return err
		}
		for t := 1; t <= horizon; t++ {
			if win.Contains(bands[t].Lo) && win.Contains(bands[t].Hi) {
				continue
			}
			if p.opts.Boundary == Strict {
				return fmt.Errorf("%w: row %d reaches [%d,%d], window is [%d,%d)",
					ErrStateWindowOverflow, t, bands[t].Lo, bands[t].Hi, p.opts.FixedMin, p.opts.FixedMax)
			}
			tb.truncated = true

			break
		}
		for t := 1; t <= horizon; t++ {
			if p.opts.Boundary == Strict {
				// The envelope fits: fill only what is reachable.
				tb.rows[t] = newDenseRow(bands[t])
			} else {
				tb.rows[t] = newDenseRow(win)
			}
		}

	default:
		bands, err := Envelope(p, horizon)
		if err != nil {
			return err
		}
		for t := 1; t <= horizon; t++ {
			tb.rows[t] = newDenseRow(bands[t])
		}
	}

	return nil
}

// fillRow evaluates every cell of row t from row t−1.
func (p *Problem) fillRow(tb *Table, t int) error {
	dist, err := p.distribution(t)
	if err != nil {
		return err
	}
	cur, below := &tb.rows[t], &tb.rows[t-1]
	zeroFill := p.opts.Window == FixedWindow && p.opts.Boundary == ZeroFill

	future := func(next int) (float64, error) {
		if t == 1 {
			return 0, nil
		}
		if i, ok := below.slot(next); ok {
			return below.values[i], nil
		}
		if zeroFill {
			return 0, nil
		}

		return 0, fmt.Errorf("%w: lookup of state (%d,%d)", ErrStateWindowOverflow, t-1, next)
	}
	eval := func(i int) error {
		s := State{PeriodsRemaining: t, Inventory: cur.inventory(i)}
		v, a, err := p.best(s, dist, future)
		if err != nil {
			return err
		}
		cur.values[i], cur.actions[i] = v, a
		p.observer.StateEvaluated(BottomUp)

		return nil
	}

	n := len(cur.values)
	workers := p.opts.Workers
	if workers <= 1 || n < 2*workers {
		for i := 0; i < n; i++ {
			if err = eval(i); err != nil {
				return err
			}
		}

		return nil
	}

	// Each goroutine owns a disjoint slice of cells; row t−1 is read-only.
	var g errgroup.Group
	chunk := (n + workers - 1) / workers
	for lo := 0; lo < n; lo += chunk {
		hi := min(lo+chunk, n)
		g.Go(func() error {
			for i := lo; i < hi; i++ {
				if err := eval(i); err != nil {
					return err
				}
			}

			return nil
		})
	}

	return g.Wait()
}
