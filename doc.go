// Package invdp is a small toolkit for single-item inventory planning under
// uncertain demand: how much to order each period so that holding,
// shortage and ordering costs stay as low as possible on average.
//
// 🚀 What is invdp?
//
//	A dynamic-programming engine with two interchangeable solvers that
//	check each other:
//		• Cost model: holding, shortage and per-unit order rates
//		• Demand: period-dependent discrete distributions (tiered profiles)
//		• Top-down: memoised recursion over reachable states only
//		• Bottom-up: row-by-row table fill, optionally parallel per row
//		• Comparator: both solvers on one problem, tolerance verdict
//		• Simulation: Monte Carlo replay of the optimal policy
//		• Reports: text, JSON and YAML with decimal currency rounding
//
// ✨ Why two solvers?
//
//   - The recursion is the reference: it touches exactly the states a plan
//     can reach and needs no window.
//   - The table is the workhorse: no recursion depth, cache-friendly rows,
//     and a policy for every inventory in the window.
//   - Whenever the table's window covers every reachable state the two
//     agree to the last cent; when it does not, the comparator says so.
//
// Packages:
//
//	cost/             holding, shortage and order rates; period cost
//	demand/           Distribution, Provider, tiered default profile
//	dp/               Problem, Memo, Table, Envelope, both solvers, Policy
//	compare/          equivalence check of the two solvers
//	simulate/         policy replay over sampled demand paths
//	report/           rendering of results
//	internal/config   scenario presets and viper-based loading
//	internal/logging  zap-backed logr loggers
//	internal/metrics  Prometheus solver metrics
//	cmd/invdp         command-line driver
//
// Quick example (calibration scenario):
//
//	20 units on hand, holding 2.0, shortage 10.0, order 5.0, 12 periods
//	⇒ minimum expected cost 1154.50, 738 states visited, first order 10.
//
//	go run ./cmd/invdp compare
package invdp
