package dp

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/go-logr/logr"
)

// Sentinel errors for dp operations.
var (
	// ErrInvalidParameter indicates a malformed problem or call argument.
	ErrInvalidParameter = errors.New("dp: invalid parameter")
	// ErrStateWindowOverflow indicates a reachable inventory level outside a fixed window.
	ErrStateWindowOverflow = errors.New("dp: reachable inventory outside state window")
	// ErrNilMemo indicates SolveTopDown was called with a nil memo.
	ErrNilMemo = errors.New("dp: memo is nil")
	// ErrStateNotSolved indicates a policy lookup for a state that was never evaluated.
	ErrStateNotSolved = errors.New("dp: state not solved")
)

// Default fixed window, half-open: [-50, 100).
const (
	DefaultFixedMin = -50
	DefaultFixedMax = 100
)

// State is a (periods remaining, inventory level) pair.
// Inventory may be negative (backorders).
type State struct {
	PeriodsRemaining int
	Inventory        int
}

// Strategy names a solver for observers and logs.
type Strategy int

const (
	// TopDown is the memoised recursion.
	TopDown Strategy = iota
	// BottomUp is the iterative table fill.
	BottomUp
)

// String returns "topdown" or "bottomup".
func (s Strategy) String() string {
	switch s {
	case TopDown:
		return "topdown"
	case BottomUp:
		return "bottomup"
	default:
		return "unknown"
	}
}

// WindowMode selects how FillTable sizes each row of the table.
type WindowMode int

const (
	// DerivedWindow sizes row t to the interval of inventories reachable
	// from the initial state. No lookup ever leaves the table.
	DerivedWindow WindowMode = iota
	// SparseWindow stores exactly the reachable inventories of each row.
	SparseWindow
	// FixedWindow uses [FixedMin, FixedMax) for every row.
	FixedWindow
)

// String returns the lower-case mode name.
func (m WindowMode) String() string {
	switch m {
	case DerivedWindow:
		return "derived"
	case SparseWindow:
		return "sparse"
	case FixedWindow:
		return "fixed"
	default:
		return "unknown"
	}
}

// ParseWindowMode parses "derived", "sparse" or "fixed".
func ParseWindowMode(s string) (WindowMode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "derived":
		return DerivedWindow, nil
	case "sparse":
		return SparseWindow, nil
	case "fixed":
		return FixedWindow, nil
	}

	return 0, fmt.Errorf("%w: unknown window mode %q", ErrInvalidParameter, s)
}

// BoundaryPolicy decides what a FixedWindow does with reachable states
// that fall outside it.
type BoundaryPolicy int

const (
	// Strict refuses to fill a window that does not contain every reachable
	// state, returning ErrStateWindowOverflow.
	Strict BoundaryPolicy = iota
	// ZeroFill prices every out-of-window lookup at 0 and marks the table
	// truncated. This silently under-estimates tail states.
	ZeroFill
)

// String returns "strict" or "zero".
func (b BoundaryPolicy) String() string {
	switch b {
	case Strict:
		return "strict"
	case ZeroFill:
		return "zero"
	default:
		return "unknown"
	}
}

// ParseBoundaryPolicy parses "strict" or "zero".
func ParseBoundaryPolicy(s string) (BoundaryPolicy, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "strict":
		return Strict, nil
	case "zero", "zerofill":
		return ZeroFill, nil
	}

	return 0, fmt.Errorf("%w: unknown boundary policy %q", ErrInvalidParameter, s)
}

// Observer receives solver events. Implementations must be safe for
// concurrent use: a parallel fill reports from several goroutines.
type Observer interface {
	StateEvaluated(s Strategy)
	CacheHit(s Strategy)
	SolveFinished(s Strategy, d time.Duration)
}

type nopObserver struct{}

func (nopObserver) StateEvaluated(Strategy)               {}
func (nopObserver) CacheHit(Strategy)                     {}
func (nopObserver) SolveFinished(Strategy, time.Duration) {}

// Options configures a Problem.
//
// Fields:
//   - Actions:  allowed order quantities, non-negative and strictly
//     increasing. Iteration order is the tie-break order.
//   - Window:   row sizing of the bottom-up table (see WindowMode).
//   - FixedMin, FixedMax: half-open inventory window for FixedWindow.
//   - Boundary: out-of-window policy for FixedWindow.
//   - Workers:  goroutines per row in FillTable; 0 or 1 means serial.
//   - Logger:   solver logs; zero value discards.
//   - Observer: solver events; nil means none.
type Options struct {
	Actions  []int
	Window   WindowMode
	FixedMin int
	FixedMax int
	Boundary BoundaryPolicy
	Workers  int
	Logger   logr.Logger
	Observer Observer
}

// DefaultActions returns {0, 5, 10, …, 45}.
func DefaultActions() []int {
	a, _ := ActionRange(0, 50, 5)

	return a
}

// DefaultOptions returns the default configuration: DefaultActions, a
// derived window, Strict boundary, serial fill, discard logger, no observer.
// FixedMin/FixedMax are preset to the classic [-50, 100) window.
func DefaultOptions() Options {
	return Options{
		Actions:  DefaultActions(),
		Window:   DerivedWindow,
		FixedMin: DefaultFixedMin,
		FixedMax: DefaultFixedMax,
		Boundary: Strict,
		Logger:   logr.Discard(),
	}
}

// ActionRange returns {lo, lo+step, …} strictly below hi.
// Returns ErrInvalidParameter for lo < 0, step < 1 or an empty range.
func ActionRange(lo, hi, step int) ([]int, error) {
	if lo < 0 || step < 1 || hi <= lo {
		return nil, fmt.Errorf("%w: action range [%d,%d) step %d", ErrInvalidParameter, lo, hi, step)
	}
	out := make([]int, 0, (hi-lo+step-1)/step)
	for a := lo; a < hi; a += step {
		out = append(out, a)
	}

	return out, nil
}
