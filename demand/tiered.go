package demand

import "fmt"

// Tier assigns Outcomes to every period index up to and including UpTo.
// UpTo == 0 marks the open-ended last tier.
type Tier struct {
	UpTo     int          `json:"up_to" yaml:"up_to" mapstructure:"up_to"`
	Outcomes Distribution `json:"outcomes" yaml:"outcomes" mapstructure:"outcomes"`
}

// Tiered is a Provider partitioning period indices into consecutive bands.
// It is immutable once built and safe for concurrent use.
type Tiered struct {
	tiers []Tier
}

// DefaultTiers returns the three-band demand profile:
//
//	periods  1..5 : 10 (0.3), 15 (0.4), 20 (0.3)
//	periods 6..10 : 15 (0.2), 20 (0.5), 25 (0.3)
//	periods  11.. : 20 (0.4), 25 (0.4), 30 (0.2)
func DefaultTiers() []Tier {
	return []Tier{
		{UpTo: 5, Outcomes: Distribution{{10, 0.3}, {15, 0.4}, {20, 0.3}}},
		{UpTo: 10, Outcomes: Distribution{{15, 0.2}, {20, 0.5}, {25, 0.3}}},
		{UpTo: 0, Outcomes: Distribution{{20, 0.4}, {25, 0.4}, {30, 0.2}}},
	}
}

// Default returns a Tiered provider over DefaultTiers.
func Default() *Tiered {
	t, err := NewTiered(DefaultTiers()...)
	if err != nil {
		// DefaultTiers is a compile-time constant table.
		panic(err)
	}

	return t
}

// NewTiered validates and deep-copies tiers.
//
// Contract:
//   - at least one tier;
//   - bounded tiers come first with strictly increasing positive UpTo;
//   - exactly one open tier (UpTo == 0), placed last;
//   - every Outcomes passes Distribution.Validate.
//
// Complexity: O(total outcomes).
func NewTiered(tiers ...Tier) (*Tiered, error) {
	if len(tiers) == 0 {
		return nil, fmt.Errorf("%w: no tiers", ErrBadTiers)
	}
	prev := 0
	out := make([]Tier, len(tiers))
	for i, t := range tiers {
		last := i == len(tiers)-1
		switch {
		case t.UpTo == 0 && !last:
			return nil, fmt.Errorf("%w: open tier %d is not last", ErrBadTiers, i)
		case t.UpTo != 0 && last:
			return nil, fmt.Errorf("%w: last tier must be open (up_to=0), got %d", ErrBadTiers, t.UpTo)
		case t.UpTo < 0 || (t.UpTo != 0 && t.UpTo <= prev):
			return nil, fmt.Errorf("%w: tier %d bound %d not above %d", ErrBadTiers, i, t.UpTo, prev)
		}
		if err := t.Outcomes.Validate(); err != nil {
			return nil, fmt.Errorf("tier %d: %w", i, err)
		}
		prev = t.UpTo
		out[i] = Tier{UpTo: t.UpTo, Outcomes: append(Distribution(nil), t.Outcomes...)}
	}

	return &Tiered{tiers: out}, nil
}

// Distribution returns the outcomes of the tier covering period.
// The returned slice is shared; callers must not modify it.
// Complexity: O(number of tiers).
func (t *Tiered) Distribution(period int) (Distribution, error) {
	if period < 1 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidPeriod, period)
	}
	for _, tier := range t.tiers {
		if tier.UpTo == 0 || period <= tier.UpTo {
			return tier.Outcomes, nil
		}
	}

	// Unreachable: NewTiered guarantees an open last tier.
	return nil, fmt.Errorf("%w: no tier covers period %d", ErrBadTiers, period)
}

// Tiers returns a copy of the tier table.
func (t *Tiered) Tiers() []Tier {
	out := make([]Tier, len(t.tiers))
	for i, tier := range t.tiers {
		out[i] = Tier{UpTo: tier.UpTo, Outcomes: append(Distribution(nil), tier.Outcomes...)}
	}

	return out
}
