package dp

import (
	"cmp"
	"slices"
)

// Memo is the caller-owned cache of SolveTopDown: state → (value, best action).
// A Memo belongs to one Problem; reusing it across problems returns stale values.
// It is not safe for concurrent use.
type Memo struct {
	values  map[State]float64
	actions map[State]int
}

// NewMemo returns an empty Memo.
func NewMemo() *Memo {
	return &Memo{
		values:  make(map[State]float64),
		actions: make(map[State]int),
	}
}

// Len returns the number of solved states.
func (m *Memo) Len() int { return len(m.values) }

// Value returns the cached value of s.
func (m *Memo) Value(s State) (float64, bool) {
	v, ok := m.values[s]

	return v, ok
}

// Action returns the cached optimal order quantity of s.
func (m *Memo) Action(s State) (int, bool) {
	a, ok := m.actions[s]

	return a, ok
}

// States returns the solved states ordered by periods remaining, then inventory.
func (m *Memo) States() []State {
	out := make([]State, 0, len(m.values))
	for s := range m.values {
		out = append(out, s)
	}
	slices.SortFunc(out, compareStates)

	return out
}

func (m *Memo) store(s State, v float64, a int) {
	m.values[s] = v
	m.actions[s] = a
}

func compareStates(a, b State) int {
	if c := cmp.Compare(a.PeriodsRemaining, b.PeriodsRemaining); c != 0 {
		return c
	}

	return cmp.Compare(a.Inventory, b.Inventory)
}
