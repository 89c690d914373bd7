package compare

import (
	"errors"
	"fmt"
	"math"

	"github.com/katalvlaran/invdp/dp"
)

// DefaultTolerance bounds the absolute difference of a match (exclusive).
const DefaultTolerance = 0.01

// ErrNilProblem indicates Run was called without a problem.
var ErrNilProblem = errors.New("compare: nil problem")

// Result is the outcome of one comparison.
type Result struct {
	TopDown    float64 `json:"top_down" yaml:"top_down"`
	BottomUp   float64 `json:"bottom_up" yaml:"bottom_up"`
	Difference float64 `json:"difference" yaml:"difference"`
	Tolerance  float64 `json:"tolerance" yaml:"tolerance"`
	Match      bool    `json:"match" yaml:"match"`

	// StatesVisited is the size of the top-down memo after the solve.
	StatesVisited int `json:"states_visited" yaml:"states_visited"`
	// TableStates counts the non-terminal cells of the bottom-up table.
	TableStates int `json:"table_states" yaml:"table_states"`
	// Truncated is set when a FixedWindow with ZeroFill cut off reachable states.
	Truncated bool `json:"truncated" yaml:"truncated"`
}

// Run solves (horizon, InitialInventory) top-down with a fresh memo and
// bottom-up with a fresh table, then compares the two values.
// A tolerance ≤ 0 (or NaN) selects DefaultTolerance.
//
// Errors from either solver are returned unchanged, so callers may match
// dp.ErrStateWindowOverflow or dp.ErrInvalidParameter with errors.Is.
func Run(p *dp.Problem, horizon int, tolerance float64) (Result, error) {
	if p == nil {
		return Result{}, ErrNilProblem
	}
	if !(tolerance > 0) {
		tolerance = DefaultTolerance
	}

	memo := dp.NewMemo()
	td, err := dp.SolveTopDown(p, horizon, p.Model().InitialInventory(), memo)
	if err != nil {
		return Result{}, fmt.Errorf("top-down: %w", err)
	}

	tb, err := dp.FillTable(p, horizon)
	if err != nil {
		return Result{}, fmt.Errorf("bottom-up: %w", err)
	}
	bu, ok := tb.Value(dp.State{PeriodsRemaining: horizon, Inventory: p.Model().InitialInventory()})
	if !ok {
		return Result{}, fmt.Errorf("bottom-up: %w: initial state missing from table", dp.ErrStateWindowOverflow)
	}

	diff := math.Abs(td - bu)

	return Result{
		TopDown:       td,
		BottomUp:      bu,
		Difference:    diff,
		Tolerance:     tolerance,
		Match:         diff < tolerance,
		StatesVisited: memo.Len(),
		TableStates:   tb.Len(),
		Truncated:     tb.Truncated(),
	}, nil
}
