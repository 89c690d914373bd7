package report

import (
	"fmt"
	"io"
	"strconv"
)

// lineWriter remembers the first write error so the text renderer can
// print unconditionally and check once.
type lineWriter struct {
	w   io.Writer
	err error
}

func (lw *lineWriter) printf(format string, args ...any) {
	if lw.err != nil {
		return
	}
	_, lw.err = fmt.Fprintf(lw.w, format, args...)
}

func writeText(w io.Writer, s Summary) error {
	lw := &lineWriter{w: w}

	title := "Inventory control by dynamic programming"
	if s.Scenario != "" {
		title += ": " + s.Scenario
	}
	lw.printf("=== %s ===\n\n", title)

	lw.printf("Parameters:\n")
	lw.printf("  Initial inventory: %d\n", s.InitialInventory)
	lw.printf("  Holding rate:      %s\n", Money(s.HoldingRate))
	lw.printf("  Shortage rate:     %s\n", Money(s.ShortageRate))
	lw.printf("  Order rate:        %s\n", Money(s.OrderRate))
	lw.printf("  Periods:           %d\n", s.Horizon)

	if sol := s.Solution; sol != nil {
		lw.printf("\nSolver:        %s\n", sol.Method)
		lw.printf("Expected cost: %s\n", Money(sol.Value))
		lw.printf("States stored: %d\n", sol.States)
	}

	if c := s.Comparison; c != nil {
		lw.printf("\nTop-down result:  %s\n", Money(c.TopDown))
		lw.printf("Bottom-up result: %s\n", Money(c.BottomUp))
		lw.printf("Difference:       %s\n", Money(c.Difference))
		tol := strconv.FormatFloat(c.Tolerance, 'g', -1, 64)
		if c.Match {
			lw.printf("PASS: both solvers agree within %s\n", tol)
		} else {
			lw.printf("FAIL: solvers differ by more than %s\n", tol)
		}
		if c.Truncated {
			lw.printf("WARNING: the fixed state window cut off reachable inventories\n")
		}
		lw.printf("\nStates visited (top-down): %d\n", c.StatesVisited)
		lw.printf("Table states (bottom-up):  %d\n", c.TableStates)
	}

	if r := s.Simulation; r != nil {
		lw.printf("\nSimulation (%d runs):\n", r.Runs)
		lw.printf("  Expected cost: %s\n", Money(r.Expected))
		lw.printf("  Mean cost:     %s\n", Money(r.Mean))
		lw.printf("  Std deviation: %s\n", Money(r.StdDev))
		lw.printf("  Range:         %s .. %s\n", Money(r.Min), Money(r.Max))
	}

	if v, ok := s.optimalCost(); ok && s.SavingsRate > 0 {
		lw.printf("\nEstimated savings (%s%%): %s\n",
			percent(s.SavingsRate), savingsAmount(v, s.SavingsRate))
	}

	return lw.err
}
