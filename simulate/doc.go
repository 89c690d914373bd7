// Package simulate replays the optimal ordering policy against sampled
// demand paths and reports the realised cost distribution.
//
// The expected cost returned by the dp solvers is an average over every
// demand path weighted by its probability. Simulation draws Runs paths at
// random, follows the policy recorded in the top-down memo along each one,
// and summarises the realised totals. The sample mean converges to the
// expected value, which makes the package a statistical check of the whole
// engine as well as a view of the spread behind the single number.
//
// Determinism:
//
//	Runs are grouped into fixed-size chunks and every chunk draws from its
//	own RNG stream derived from Options.Seed. The same seed gives the same
//	Result regardless of Options.Workers.
package simulate
