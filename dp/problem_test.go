package dp_test

import (
	"errors"
	"testing"

	"github.com/katalvlaran/invdp/cost"
	"github.com/katalvlaran/invdp/demand"
	"github.com/katalvlaran/invdp/dp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestNewProblem_Errors verifies every option rejected by NewProblem.
func TestNewProblem_Errors(t *testing.T) {
	m := calibrationModel(t)
	cases := []struct {
		name   string
		mutate func(*dp.Options)
	}{
		{"NegativeAction", func(o *dp.Options) { o.Actions = []int{-5, 0, 5} }},
		{"UnsortedActions", func(o *dp.Options) { o.Actions = []int{0, 10, 5} }},
		{"DuplicateActions", func(o *dp.Options) { o.Actions = []int{0, 5, 5} }},
		{"EmptyFixedWindow", func(o *dp.Options) { o.Window = dp.FixedWindow; o.FixedMin, o.FixedMax = 10, 10 }},
		{"UnknownBoundary", func(o *dp.Options) { o.Window = dp.FixedWindow; o.Boundary = dp.BoundaryPolicy(7) }},
		{"UnknownWindow", func(o *dp.Options) { o.Window = dp.WindowMode(9) }},
		{"NegativeWorkers", func(o *dp.Options) { o.Workers = -1 }},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			opts := dp.DefaultOptions()
			tc.mutate(&opts)
			_, err := dp.NewProblem(m, demand.Default(), opts)
			assert.ErrorIs(t, err, dp.ErrInvalidParameter)
		})
	}

	_, err := dp.NewProblem(m, nil, dp.DefaultOptions())
	assert.ErrorIs(t, err, dp.ErrInvalidParameter)
}

// TestNewProblem_Defaults checks that empty actions fall back to the defaults
// and that the problem keeps its own copy.
func TestNewProblem_Defaults(t *testing.T) {
	actions := []int{0, 10, 20}
	opts := dp.Options{Actions: actions}
	p, err := dp.NewProblem(calibrationModel(t), demand.Default(), opts)
	require.NoError(t, err)

	actions[0] = 99
	assert.Equal(t, []int{0, 10, 20}, p.Actions())

	p, err = dp.NewProblem(calibrationModel(t), demand.Default(), dp.Options{})
	require.NoError(t, err)
	assert.Equal(t, dp.DefaultActions(), p.Actions())
	assert.Equal(t, dp.DerivedWindow, p.Options().Window)
	assert.Equal(t, 20, p.Model().InitialInventory())
	assert.NotNil(t, p.Demand())
}

func TestDefaultActions(t *testing.T) {
	assert.Equal(t, []int{0, 5, 10, 15, 20, 25, 30, 35, 40, 45}, dp.DefaultActions())
}

func TestActionRange(t *testing.T) {
	got, err := dp.ActionRange(10, 31, 10)
	require.NoError(t, err)
	assert.Equal(t, []int{10, 20, 30}, got)

	for _, bad := range [][3]int{{-1, 10, 1}, {0, 10, 0}, {5, 5, 1}} {
		_, err := dp.ActionRange(bad[0], bad[1], bad[2])
		assert.ErrorIs(t, err, dp.ErrInvalidParameter, "%v", bad)
	}
}

func TestParseModes(t *testing.T) {
	for in, want := range map[string]dp.WindowMode{"": dp.DerivedWindow, "Sparse": dp.SparseWindow, "fixed": dp.FixedWindow} {
		got, err := dp.ParseWindowMode(in)
		require.NoError(t, err)
		assert.Equal(t, want, got)
		if in != "" {
			assert.Equal(t, want.String(), got.String())
		}
	}
	_, err := dp.ParseWindowMode("dense")
	assert.ErrorIs(t, err, dp.ErrInvalidParameter)

	b, err := dp.ParseBoundaryPolicy("zero")
	require.NoError(t, err)
	assert.Equal(t, dp.ZeroFill, b)
	_, err = dp.ParseBoundaryPolicy("clamp")
	assert.ErrorIs(t, err, dp.ErrInvalidParameter)

	assert.Equal(t, "topdown", dp.TopDown.String())
	assert.Equal(t, "bottomup", dp.BottomUp.String())
}

// TestSolvers_BadDemand ensures a provider returning an invalid distribution
// surfaces as ErrInvalidParameter wrapping the demand sentinel.
func TestSolvers_BadDemand(t *testing.T) {
	bad := demand.ProviderFunc(func(period int) (demand.Distribution, error) {
		return demand.Distribution{{Demand: 5, Probability: 0.5}}, nil
	})
	p, err := dp.NewProblem(calibrationModel(t), bad, dp.DefaultOptions())
	require.NoError(t, err)

	_, err = dp.SolveTopDown(p, 2, 0, dp.NewMemo())
	assert.ErrorIs(t, err, dp.ErrInvalidParameter)
	assert.ErrorIs(t, err, demand.ErrProbabilitySum)

	_, err = dp.SolveBottomUp(p, 2)
	assert.ErrorIs(t, err, dp.ErrInvalidParameter)
	assert.ErrorIs(t, err, demand.ErrProbabilitySum)
}

// TestSolvers_ProviderError propagates provider failures.
func TestSolvers_ProviderError(t *testing.T) {
	boom := errors.New("boom")
	p, err := dp.NewProblem(cost.Model{}, demand.ProviderFunc(func(int) (demand.Distribution, error) {
		return nil, boom
	}), dp.DefaultOptions())
	require.NoError(t, err)

	_, err = dp.SolveTopDown(p, 1, 0, dp.NewMemo())
	assert.ErrorIs(t, err, boom)
	_, err = dp.Envelope(p, 1)
	assert.ErrorIs(t, err, boom)
}

// TestPolicy covers both sources and the error paths.
func TestPolicy(t *testing.T) {
	p := newProblem(t, calibrationModel(t), dp.DefaultOptions())
	memo := dp.NewMemo()
	_, err := dp.SolveTopDown(p, calibrationHorizon, 20, memo)
	require.NoError(t, err)
	tb, err := dp.FillTable(p, calibrationHorizon)
	require.NoError(t, err)

	root := dp.State{PeriodsRemaining: calibrationHorizon, Inventory: 20}
	for _, pol := range []*dp.Policy{dp.PolicyFromMemo(memo), dp.PolicyFromTable(tb)} {
		a, err := pol.Order(root)
		require.NoError(t, err)
		assert.Equal(t, 10, a)

		_, err = pol.Order(dp.State{PeriodsRemaining: 0, Inventory: 20})
		assert.ErrorIs(t, err, dp.ErrInvalidParameter)
		_, err = pol.Order(dp.State{PeriodsRemaining: calibrationHorizon, Inventory: 21})
		assert.ErrorIs(t, err, dp.ErrStateNotSolved)
	}
}

// TestNewProblem_RatesValidatedByModel: rate errors come from cost.NewModel,
// before any Problem can be built.
func TestNewProblem_RatesValidatedByModel(t *testing.T) {
	_, err := cost.NewModel(20, -2.0, 10.0, 5.0)
	assert.ErrorIs(t, err, cost.ErrInvalidRate)
	assert.NotErrorIs(t, err, dp.ErrInvalidParameter)
}
