// Package dp computes the minimum expected cost of running a single-item
// inventory over a finite horizon of periods with stochastic demand.
//
// 🚀 What is it?
//
//	At the start of every period the manager looks at the stock on hand and
//	picks an order quantity from a small discrete set. Demand then arrives
//	from a period-dependent distribution; leftovers pay a holding cost,
//	backorders pay a shortage cost and every ordered unit pays an order cost.
//	The value function
//
//	  V(0, x) = 0
//	  V(t, x) = min_a Σ_d p_t(d) · ( cost(x, a, d) + V(t−1, x + a − d) )
//
//	is the minimum expected cost-to-go from inventory x with t periods left.
//
// ✨ Two solvers, one recurrence:
//
//   - SolveTopDown: recursive, memoised in a caller-owned Memo. Visits only
//     states reachable from the starting state. Recursion depth = t.
//   - SolveBottomUp / FillTable: iterative row-by-row fill of a Table.
//     Rows are sized by a WindowMode:
//     DerivedWindow (default): the reachable inventory interval per row;
//     SparseWindow:            exactly the reachable inventories;
//     FixedWindow:             a caller-chosen [FixedMin, FixedMax) window,
//     guarded by a BoundaryPolicy (Strict or the legacy ZeroFill).
//     With Workers > 1 the cells of a row are filled concurrently.
//
// Both solvers break ties in favour of the earlier action in Options.Actions,
// so with ascending actions the smaller order wins.
//
// Complexity:
//
//	Time   = O(S · A · D)  (S states, A actions, D demand outcomes)
//	Memory = O(S)
//
// Errors:
//
//   - ErrInvalidParameter:     bad problem, horizon, window or action set.
//   - ErrStateWindowOverflow:  a reachable inventory escapes a FixedWindow.
//   - ErrNilMemo:              SolveTopDown called without a Memo.
//   - ErrStateNotSolved:       policy lookup of a state never evaluated.
//
// Negative or non-finite rates never reach this package: cost.NewModel
// rejects them with cost.ErrInvalidRate, so a Problem always holds a valid
// Model. Rates that are finite but large enough to overflow the expected
// cost fail inside the solvers with ErrInvalidParameter.
package dp
