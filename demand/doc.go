// Package demand describes stochastic, period-dependent demand as discrete
// probability distributions.
//
// What:
//
//   - Distribution is an ordered list of (demand, probability) outcomes.
//   - Provider maps a period index to the Distribution in force for it.
//   - Tiered is a Provider that partitions periods into bands, each with
//     its own fixed Distribution. DefaultTiers reproduces the classic
//     three-band profile (periods ≤5, ≤10, >10).
//
// Period index:
//
//	The solvers in package dp ask for the distribution of a state using its
//	periods-remaining count, so index 1 is the last period of the horizon.
//	Indices below 1 are a precondition violation (ErrInvalidPeriod).
//
// Errors:
//
//   - ErrInvalidPeriod, ErrEmptyDistribution, ErrNegativeDemand,
//     ErrBadProbability, ErrProbabilitySum, ErrBadTiers.
package demand
