package dp

import "fmt"

// Policy answers "how much should I order in state s?" from a solved
// Memo or Table. It never solves anything itself.
type Policy struct {
	memo  *Memo
	table *Table
}

// PolicyFromMemo returns the policy recorded by SolveTopDown in m.
func PolicyFromMemo(m *Memo) *Policy { return &Policy{memo: m} }

// PolicyFromTable returns the policy recorded by FillTable in tb.
func PolicyFromTable(tb *Table) *Policy { return &Policy{table: tb} }

// Order returns the optimal order quantity for s.
// Errors: ErrInvalidParameter for terminal or negative-period states,
// ErrStateNotSolved when s was never evaluated.
func (p *Policy) Order(s State) (int, error) {
	if s.PeriodsRemaining < 1 {
		return 0, fmt.Errorf("%w: no decision with %d periods remaining", ErrInvalidParameter, s.PeriodsRemaining)
	}

	var (
		a  int
		ok bool
	)
	switch {
	case p.memo != nil:
		a, ok = p.memo.Action(s)
	case p.table != nil:
		a, ok = p.table.Action(s)
	}
	if !ok {
		return 0, fmt.Errorf("%w: %+v", ErrStateNotSolved, s)
	}

	return a, nil
}
