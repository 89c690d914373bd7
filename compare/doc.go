// Package compare runs both dp solvers on the same problem and checks that
// they agree.
//
// The comparison is the acceptance test of the whole engine: the memoised
// recursion visits only reachable states, the table fill sweeps whole rows,
// and any disagreement beyond the tolerance points at a window that is too
// small (see dp.ZeroFill) or at a bug in one of the two paths.
//
// Run reports both values, their absolute difference, the verdict, and the
// number of states each solver stored.
package compare
