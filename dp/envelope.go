package dp

import (
	"fmt"
	"slices"
)

// Band is an inclusive inventory interval [Lo, Hi].
type Band struct {
	Lo, Hi int
}

// Contains reports whether x lies in the band.
func (b Band) Contains(x int) bool { return x >= b.Lo && x <= b.Hi }

// Width returns the number of integer levels in the band.
func (b Band) Width() int { return b.Hi - b.Lo + 1 }

// Envelope returns, for every row t = 0..totalPeriods, the interval of
// inventory levels reachable from (totalPeriods, InitialInventory):
//
//	band[T]   = [I0, I0]
//	band[t−1] = [band[t].Lo + minAction − maxDemand(t),
//	             band[t].Hi + maxAction − minDemand(t)]
//
// Every lookup made while evaluating a cell of row t lands in band[t−1],
// which is what lets DerivedWindow size the table exactly.
// Complexity: O(T · D).
func Envelope(p *Problem, totalPeriods int) ([]Band, error) {
	if p == nil {
		return nil, fmt.Errorf("%w: nil problem", ErrInvalidParameter)
	}
	if totalPeriods < 0 {
		return nil, fmt.Errorf("%w: horizon %d < 0", ErrInvalidParameter, totalPeriods)
	}

	bands := make([]Band, totalPeriods+1)
	i0 := p.model.InitialInventory()
	bands[totalPeriods] = Band{Lo: i0, Hi: i0}
	for t := totalPeriods; t >= 1; t-- {
		dist, err := p.distribution(t)
		if err != nil {
			return nil, err
		}
		bands[t-1] = Band{
			Lo: bands[t].Lo + p.minAction() - dist.MaxDemand(),
			Hi: bands[t].Hi + p.maxAction() - dist.MinDemand(),
		}
	}

	return bands, nil
}

// Reachable returns, for every row t = 0..totalPeriods, the sorted set of
// inventory levels reachable from (totalPeriods, InitialInventory) under
// some sequence of actions and demand outcomes.
// Complexity: O(S · A · D) time, O(S) memory.
func Reachable(p *Problem, totalPeriods int) ([][]int, error) {
	if p == nil {
		return nil, fmt.Errorf("%w: nil problem", ErrInvalidParameter)
	}
	if totalPeriods < 0 {
		return nil, fmt.Errorf("%w: horizon %d < 0", ErrInvalidParameter, totalPeriods)
	}

	levels := make([][]int, totalPeriods+1)
	levels[totalPeriods] = []int{p.model.InitialInventory()}
	for t := totalPeriods; t >= 1; t-- {
		dist, err := p.distribution(t)
		if err != nil {
			return nil, err
		}
		seen := make(map[int]struct{}, len(levels[t])*len(p.opts.Actions))
		for _, x := range levels[t] {
			for _, a := range p.opts.Actions {
				for _, o := range dist {
					seen[x+a-o.Demand] = struct{}{}
				}
			}
		}
		next := make([]int, 0, len(seen))
		for x := range seen {
			next = append(next, x)
		}
		slices.Sort(next)
		levels[t-1] = next
	}

	return levels, nil
}
