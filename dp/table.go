package dp

import "slices"

// row is one period of the value table, stored flat for cache friendliness.
// Dense rows cover every inventory in [lo, lo+len(values)); sparse rows keep
// an explicit inventory → slot index and their sorted inventories in levels.
type row struct {
	lo      int
	values  []float64
	actions []int
	index   map[int]int // nil for dense rows
	levels  []int       // sparse rows only
}

// newDenseRow allocates a row spanning band.
// Complexity: O(width) time and memory.
func newDenseRow(b Band) row {
	n := b.Width()

	return row{lo: b.Lo, values: make([]float64, n), actions: make([]int, n)}
}

// newSparseRow allocates a row holding exactly levels (sorted ascending).
// Complexity: O(len(levels)).
func newSparseRow(levels []int) row {
	idx := make(map[int]int, len(levels))
	for i, x := range levels {
		idx[x] = i
	}

	return row{
		values:  make([]float64, len(levels)),
		actions: make([]int, len(levels)),
		index:   idx,
		levels:  levels,
	}
}

// slot maps an inventory level to its flat index, or false when the row
// does not hold it.
// Complexity: O(1).
func (r *row) slot(inv int) (int, bool) {
	if r.index != nil {
		i, ok := r.index[inv]

		return i, ok
	}
	i := inv - r.lo
	if i < 0 || i >= len(r.values) {
		return 0, false
	}

	return i, true
}

// inventory maps a flat index back to its inventory level.
func (r *row) inventory(i int) int {
	if r.levels != nil {
		return r.levels[i]
	}

	return r.lo + i
}

// Table is the filled value table of FillTable. Row t holds
// V(t, ·) for t = 1..Horizon(); row 0 is the terminal row and is
// implicitly 0 for every inventory. Tables are read-only once returned.
type Table struct {
	horizon   int
	initial   int
	mode      WindowMode
	rows      []row
	truncated bool
}

// Horizon returns the number of periods the table was filled for.
func (tb *Table) Horizon() int { return tb.horizon }

// Mode returns the window mode used to size the rows.
func (tb *Table) Mode() WindowMode { return tb.mode }

// Truncated reports whether states reachable from the initial state
// escaped the window and were priced at 0 (FixedWindow with ZeroFill only).
// The value of a truncated table at the initial state may under-estimate
// the true cost. Cells outside the reachable envelope are approximations
// under ZeroFill whether or not the table is truncated.
func (tb *Table) Truncated() bool { return tb.truncated }

// Value returns V(s). Terminal states are 0 for any inventory.
// Complexity: O(1).
func (tb *Table) Value(s State) (float64, bool) {
	if s.PeriodsRemaining == 0 {
		return 0, true
	}
	r, ok := tb.row(s.PeriodsRemaining)
	if !ok {
		return 0, false
	}
	i, ok := r.slot(s.Inventory)
	if !ok {
		return 0, false
	}

	return r.values[i], true
}

// Action returns the optimal order quantity stored for s.
// Complexity: O(1).
func (tb *Table) Action(s State) (int, bool) {
	r, ok := tb.row(s.PeriodsRemaining)
	if !ok || s.PeriodsRemaining == 0 {
		return 0, false
	}
	i, ok := r.slot(s.Inventory)
	if !ok {
		return 0, false
	}

	return r.actions[i], true
}

// Bounds returns the lowest and highest inventory stored in row t.
func (tb *Table) Bounds(t int) (lo, hi int, ok bool) {
	r, ok := tb.row(t)
	if !ok || t == 0 || len(r.values) == 0 {
		return 0, 0, false
	}

	return r.inventory(0), r.inventory(len(r.values) - 1), true
}

// Len returns the number of stored (non-terminal) cells.
func (tb *Table) Len() int {
	n := 0
	for t := 1; t < len(tb.rows); t++ {
		n += len(tb.rows[t].values)
	}

	return n
}

// States returns every stored (non-terminal) state ordered by periods
// remaining, then inventory.
func (tb *Table) States() []State {
	out := make([]State, 0, tb.Len())
	for t := 1; t < len(tb.rows); t++ {
		r := &tb.rows[t]
		for i := range r.values {
			out = append(out, State{PeriodsRemaining: t, Inventory: r.inventory(i)})
		}
	}
	slices.SortFunc(out, compareStates)

	return out
}

func (tb *Table) row(t int) (*row, bool) {
	if t < 0 || t >= len(tb.rows) {
		return nil, false
	}

	return &tb.rows[t], true
}
