package simulate

import (
	"errors"
	"fmt"
	"math"
	"time"

	"golang.org/x/sync/errgroup"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"

	"github.com/katalvlaran/invdp/cost"
	"github.com/katalvlaran/invdp/demand"
	"github.com/katalvlaran/invdp/dp"
	"github.com/katalvlaran/invdp/internal/logging"
)

// chunkSize is the number of runs drawn from one RNG stream.
const chunkSize = 1000

// ErrNoRuns indicates Options.Runs < 1.
var ErrNoRuns = errors.New("simulate: at least one run is required")

// Options controls a replay.
type Options struct {
	// Runs is the number of sampled demand paths.
	Runs int
	// Seed selects the sample; 0 behaves like 1.
	Seed int64
	// Workers bounds the goroutines replaying chunks; 0 or 1 means serial.
	Workers int
}

// DefaultOptions returns 10 000 serial runs with seed 1.
func DefaultOptions() Options {
	return Options{Runs: 10000, Seed: 1}
}

// Result summarises the realised total cost of every run.
type Result struct {
	Runs     int     `json:"runs" yaml:"runs"`
	Expected float64 `json:"expected" yaml:"expected"`
	Mean     float64 `json:"mean" yaml:"mean"`
	StdDev   float64 `json:"std_dev" yaml:"std_dev"`
	Min      float64 `json:"min" yaml:"min"`
	Max      float64 `json:"max" yaml:"max"`
}

// Run solves (horizon, InitialInventory) top-down once, then replays the
// optimal policy over opts.Runs sampled demand paths.
//
// Every period of a run: look up the optimal order for the current state,
// draw a demand from that period's distribution, add the period cost and
// move to the ending inventory. The memo covers every reachable state, so a
// lookup never misses.
//
// Errors: ErrNoRuns, dp.ErrInvalidParameter (nil problem, horizon < 1,
// negative workers) and anything SolveTopDown returns.
//
// Complexity: O(S · A · D) for the solve plus O(Runs · horizon · D).
func Run(p *dp.Problem, horizon int, opts Options) (Result, error) {
	if p == nil {
		return Result{}, fmt.Errorf("%w: nil problem", dp.ErrInvalidParameter)
	}
	if horizon < 1 {
		return Result{}, fmt.Errorf("%w: horizon %d < 1", dp.ErrInvalidParameter, horizon)
	}
	if opts.Runs < 1 {
		return Result{}, fmt.Errorf("%w: got %d", ErrNoRuns, opts.Runs)
	}
	if opts.Workers < 0 {
		return Result{}, fmt.Errorf("%w: workers %d < 0", dp.ErrInvalidParameter, opts.Workers)
	}

	log := p.Options().Logger.WithName("simulate")
	start := time.Now()

	memo := dp.NewMemo()
	expected, err := dp.SolveTopDown(p, horizon, p.Model().InitialInventory(), memo)
	if err != nil {
		return Result{}, err
	}

	// Period distributions are fetched once and shared read-only.
	dists := make([]demand.Distribution, horizon+1)
	for t := 1; t <= horizon; t++ {
		if dists[t], err = p.Demand().Distribution(t); err != nil {
			return Result{}, fmt.Errorf("%w: demand for period %d: %w", dp.ErrInvalidParameter, t, err)
		}
	}

	r := replay{
		model:   p.Model(),
		policy:  dp.PolicyFromMemo(memo),
		dists:   dists,
		horizon: horizon,
		seed:    opts.Seed,
		totals:  make([]float64, opts.Runs),
	}

	chunks := (opts.Runs + chunkSize - 1) / chunkSize
	var g errgroup.Group
	if opts.Workers > 1 {
		g.SetLimit(opts.Workers)
	} else {
		g.SetLimit(1)
	}
	for c := 0; c < chunks; c++ {
		g.Go(func() error { return r.chunk(c) })
	}
	if err = g.Wait(); err != nil {
		return Result{}, err
	}

	res := Result{
		Runs:     opts.Runs,
		Expected: expected,
		Min:      floats.Min(r.totals),
		Max:      floats.Max(r.totals),
	}
	res.Mean, res.StdDev = stat.MeanStdDev(r.totals, nil)
	if math.IsNaN(res.StdDev) {
		// A single run has no spread.
		res.StdDev = 0
	}

	log.V(logging.DEBUG).Info("replay finished",
		"runs", res.Runs, "chunks", chunks, "expected", res.Expected,
		"mean", res.Mean, "stdDev", res.StdDev, "elapsed", time.Since(start))

	return res, nil
}

// replay holds the read-only inputs of every chunk and the shared totals
// slice; chunks write disjoint index ranges.
type replay struct {
	model   cost.Model
	policy  *dp.Policy
	dists   []demand.Distribution
	horizon int
	seed    int64
	totals  []float64
}

func (r *replay) chunk(c int) error {
	rng := newStream(r.seed, uint64(c))
	lo := c * chunkSize
	hi := min(lo+chunkSize, len(r.totals))
	for i := lo; i < hi; i++ {
		x := r.model.InitialInventory()
		var total float64
		for t := r.horizon; t >= 1; t-- {
			a, err := r.policy.Order(dp.State{PeriodsRemaining: t, Inventory: x})
			if err != nil {
				return err
			}
			d := demand.Sample(r.dists[t], rng.Float64())
			pc, err := r.model.PeriodCost(x, a, d)
			if err != nil {
				return err
			}
			total += pc
			x = cost.EndingInventory(x, a, d)
		}
		r.totals[i] = total
	}

	return nil
}
