package dp_test

import (
	"testing"

	"github.com/katalvlaran/invdp/dp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestSolveTopDown_BaseCase verifies V(0, x) == 0 for any x and that the
// memo stays empty.
func TestSolveTopDown_BaseCase(t *testing.T) {
	p := newProblem(t, calibrationModel(t), dp.DefaultOptions())
	for _, inv := range []int{-1000, -5, 0, 20, 1000} {
		memo := dp.NewMemo()
		v, err := dp.SolveTopDown(p, 0, inv, memo)
		require.NoError(t, err)
		assert.Zero(t, v, "inventory %d", inv)
		assert.Zero(t, memo.Len())
	}
}

// TestSolveTopDown_Calibration checks the reference value and state count.
func TestSolveTopDown_Calibration(t *testing.T) {
	p := newProblem(t, calibrationModel(t), dp.DefaultOptions())
	memo := dp.NewMemo()

	v, err := dp.SolveTopDown(p, calibrationHorizon, 20, memo)
	require.NoError(t, err)
	assert.InDelta(t, calibrationValue, v, eps)
	assert.Equal(t, calibrationStates, memo.Len())

	got, ok := memo.Value(dp.State{PeriodsRemaining: calibrationHorizon, Inventory: 20})
	require.True(t, ok)
	assert.Equal(t, v, got)

	a, ok := memo.Action(dp.State{PeriodsRemaining: calibrationHorizon, Inventory: 20})
	require.True(t, ok)
	assert.Equal(t, 10, a, "optimal first order")
}

// TestSolveTopDown_ShortHorizons pins small horizons computed by hand-checked reference.
func TestSolveTopDown_ShortHorizons(t *testing.T) {
	p := newProblem(t, calibrationModel(t), dp.DefaultOptions())
	cases := []struct {
		periods int
		want    float64
		states  int
	}{
		{1, 10.0, 1}, // order nothing: 0.3·(10·2) + 0.4·(5·2) + 0.3·0
		{2, 78.0, 13},
		{3, 163.0, 36},
	}
	for _, tc := range cases {
		memo := dp.NewMemo()
		v, err := dp.SolveTopDown(p, tc.periods, 20, memo)
		require.NoError(t, err)
		assert.InDelta(t, tc.want, v, eps, "periods=%d", tc.periods)
		assert.Equal(t, tc.states, memo.Len(), "periods=%d", tc.periods)
	}
}

// TestSolveTopDown_Field checks the second reference scenario.
func TestSolveTopDown_Field(t *testing.T) {
	p := newProblem(t, fieldModel(t), dp.DefaultOptions())
	memo := dp.NewMemo()

	v, err := dp.SolveTopDown(p, fieldHorizon, 25, memo)
	require.NoError(t, err)
	assert.InDelta(t, fieldValue, v, eps)
	assert.Equal(t, fieldStates, memo.Len())
}

// TestSolveTopDown_WarmMemo ensures repeated calls hit the cache without
// inserting new keys, and that observers see hits instead of evaluations.
func TestSolveTopDown_WarmMemo(t *testing.T) {
	obs := &countingObserver{}
	opts := dp.DefaultOptions()
	opts.Observer = obs
	p := newProblem(t, calibrationModel(t), opts)
	memo := dp.NewMemo()

	first, err := dp.SolveTopDown(p, calibrationHorizon, 20, memo)
	require.NoError(t, err)
	size := memo.Len()
	evaluated := obs.evaluated[dp.TopDown].Load()
	assert.Equal(t, int64(size), evaluated, "one evaluation per memo key")

	second, err := dp.SolveTopDown(p, calibrationHorizon, 20, memo)
	require.NoError(t, err)
	assert.Equal(t, first, second)
	assert.Equal(t, size, memo.Len(), "warm memo must not grow")
	assert.Equal(t, evaluated, obs.evaluated[dp.TopDown].Load(), "warm memo must not re-evaluate")
	assert.Positive(t, obs.hits[dp.TopDown].Load())
	assert.Equal(t, int64(2), obs.finished[dp.TopDown].Load())
}

// TestSolveTopDown_MemoBound checks that the memo never exceeds
// (horizon+1) × distinct reachable inventory levels.
func TestSolveTopDown_MemoBound(t *testing.T) {
	p := newProblem(t, calibrationModel(t), dp.DefaultOptions())
	memo := dp.NewMemo()
	_, err := dp.SolveTopDown(p, calibrationHorizon, 20, memo)
	require.NoError(t, err)

	levels, err := dp.Reachable(p, calibrationHorizon)
	require.NoError(t, err)
	distinct := map[int]struct{}{}
	for _, row := range levels {
		for _, x := range row {
			distinct[x] = struct{}{}
		}
	}
	assert.LessOrEqual(t, memo.Len(), (calibrationHorizon+1)*len(distinct))

	for _, s := range memo.States() {
		assert.Contains(t, levels[s.PeriodsRemaining], s.Inventory, "memo state %+v must be reachable", s)
	}
}

// TestSolveTopDown_Errors covers argument validation.
func TestSolveTopDown_Errors(t *testing.T) {
	p := newProblem(t, calibrationModel(t), dp.DefaultOptions())

	_, err := dp.SolveTopDown(p, 3, 20, nil)
	assert.ErrorIs(t, err, dp.ErrNilMemo)

	_, err = dp.SolveTopDown(p, -1, 20, dp.NewMemo())
	assert.ErrorIs(t, err, dp.ErrInvalidParameter)

	_, err = dp.SolveTopDown(nil, 3, 20, dp.NewMemo())
	assert.ErrorIs(t, err, dp.ErrInvalidParameter)
}

// TestMemo_StatesOrdered verifies States sorts by period, then inventory.
func TestMemo_StatesOrdered(t *testing.T) {
	p := newProblem(t, calibrationModel(t), dp.DefaultOptions())
	memo := dp.NewMemo()
	_, err := dp.SolveTopDown(p, 2, 20, memo)
	require.NoError(t, err)

	states := memo.States()
	require.Len(t, states, 13)
	for i := 1; i < len(states); i++ {
		prev, cur := states[i-1], states[i]
		ordered := prev.PeriodsRemaining < cur.PeriodsRemaining ||
			(prev.PeriodsRemaining == cur.PeriodsRemaining && prev.Inventory < cur.Inventory)
		assert.True(t, ordered, "%+v before %+v", prev, cur)
	}
	assert.Equal(t, dp.State{PeriodsRemaining: 2, Inventory: 20}, states[len(states)-1])
}
