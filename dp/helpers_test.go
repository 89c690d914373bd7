package dp_test

import (
	"sync/atomic"
	"testing"
	"time"

	"github.com/katalvlaran/invdp/cost"
	"github.com/katalvlaran/invdp/demand"
	"github.com/katalvlaran/invdp/dp"
	"github.com/stretchr/testify/require"
)

// Reference values of the two classic scenarios.
const (
	calibrationHorizon = 12
	calibrationValue   = 1154.5
	calibrationStates  = 738

	fieldHorizon   = 15
	fieldValue     = 2313.5
	fieldStates    = 1170
	fieldZeroValue = 1793.376 // legacy [-50,100) window with zero-filled tails

	eps = 1e-6
)

// calibrationModel: 20 units, holding 2.0, shortage 10.0, order 5.0.
func calibrationModel(t testing.TB) cost.Model {
	t.Helper()
	m, err := cost.NewModel(20, 2.0, 10.0, 5.0)
	require.NoError(t, err)

	return m
}

// fieldModel: 25 units, holding 1.5, shortage 15.0, order 8.0.
func fieldModel(t testing.TB) cost.Model {
	t.Helper()
	m, err := cost.NewModel(25, 1.5, 15.0, 8.0)
	require.NoError(t, err)

	return m
}

// newProblem builds a Problem over the default demand tiers.
func newProblem(t testing.TB, m cost.Model, opts dp.Options) *dp.Problem {
	t.Helper()
	p, err := dp.NewProblem(m, demand.Default(), opts)
	require.NoError(t, err)

	return p
}

// countingObserver tallies solver events; safe for parallel fills.
type countingObserver struct {
	evaluated [2]atomic.Int64
	hits      [2]atomic.Int64
	finished  [2]atomic.Int64
}

func (c *countingObserver) StateEvaluated(s dp.Strategy) { c.evaluated[s].Add(1) }
func (c *countingObserver) CacheHit(s dp.Strategy)       { c.hits[s].Add(1) }
func (c *countingObserver) SolveFinished(s dp.Strategy, _ time.Duration) {
	c.finished[s].Add(1)
}
