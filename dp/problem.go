package dp

import (
	"fmt"
	"math"

	"github.com/go-logr/logr"

	"github.com/katalvlaran/invdp/cost"
	"github.com/katalvlaran/invdp/demand"
)

// Problem bundles everything both solvers need: the cost model, the demand
// provider and the solver options. It is immutable once built and may be
// shared by concurrent solves.
type Problem struct {
	model    cost.Model
	demand   demand.Provider
	opts     Options
	observer Observer
}

// NewProblem validates opts and returns a Problem.
//
// Contract:
//   - provider must be non-nil;
//   - opts.Actions non-empty, non-negative, strictly increasing
//     (an empty slice selects DefaultActions);
//   - FixedMin < FixedMax when Window == FixedWindow;
//   - Workers ≥ 0.
//
// Errors wrap ErrInvalidParameter.
func NewProblem(model cost.Model, provider demand.Provider, opts Options) (*Problem, error) {
	if provider == nil {
		return nil, fmt.Errorf("%w: nil demand provider", ErrInvalidParameter)
	}
	if len(opts.Actions) == 0 {
		opts.Actions = DefaultActions()
	}
	for i, a := range opts.Actions {
		if a < 0 {
			return nil, fmt.Errorf("%w: negative action %d", ErrInvalidParameter, a)
		}
		if i > 0 && a <= opts.Actions[i-1] {
			return nil, fmt.Errorf("%w: actions must be strictly increasing (%d after %d)",
				ErrInvalidParameter, a, opts.Actions[i-1])
		}
	}
	switch opts.Window {
	case DerivedWindow, SparseWindow:
	case FixedWindow:
		if opts.FixedMin >= opts.FixedMax {
			return nil, fmt.Errorf("%w: empty fixed window [%d,%d)", ErrInvalidParameter, opts.FixedMin, opts.FixedMax)
		}
		if opts.Boundary != Strict && opts.Boundary != ZeroFill {
			return nil, fmt.Errorf("%w: unknown boundary policy %d", ErrInvalidParameter, opts.Boundary)
		}
	default:
		return nil, fmt.Errorf("%w: unknown window mode %d", ErrInvalidParameter, opts.Window)
	}
	if opts.Workers < 0 {
		return nil, fmt.Errorf("%w: workers %d < 0", ErrInvalidParameter, opts.Workers)
	}
	if opts.Logger.GetSink() == nil {
		opts.Logger = logr.Discard()
	}
	opts.Actions = append([]int(nil), opts.Actions...)

	var obs Observer = nopObserver{}
	if opts.Observer != nil {
		obs = opts.Observer
	}

	return &Problem{model: model, demand: provider, opts: opts, observer: obs}, nil
}

// Model returns the cost model.
func (p *Problem) Model() cost.Model { return p.model }

// Demand returns the demand provider.
func (p *Problem) Demand() demand.Provider { return p.demand }

// Options returns a copy of the options in force.
func (p *Problem) Options() Options {
	o := p.opts
	o.Actions = append([]int(nil), p.opts.Actions...)

	return o
}

// Actions returns a copy of the allowed order quantities.
func (p *Problem) Actions() []int { return append([]int(nil), p.opts.Actions...) }

func (p *Problem) minAction() int { return p.opts.Actions[0] }
func (p *Problem) maxAction() int { return p.opts.Actions[len(p.opts.Actions)-1] }

// distribution fetches and validates the demand distribution of row t.
func (p *Problem) distribution(t int) (demand.Distribution, error) {
	d, err := p.demand.Distribution(t)
	if err != nil {
		return nil, fmt.Errorf("%w: demand for period %d: %w", ErrInvalidParameter, t, err)
	}
	if err = d.Validate(); err != nil {
		return nil, fmt.Errorf("%w: demand for period %d: %w", ErrInvalidParameter, t, err)
	}

	return d, nil
}

// lookupFunc returns V(t−1, next) for the row below the state being evaluated.
type lookupFunc func(next int) (float64, error)

// best evaluates the recurrence at state s:
//
//	min over actions a of Σ_d p(d) · ( cost(x, a, d) + future(x + a − d) )
//
// The first minimum in action order wins ties. A state whose best
// expected cost is not finite fails with ErrInvalidParameter.
// Complexity: O(A · D) plus the cost of future.
func (p *Problem) best(s State, dist demand.Distribution, future lookupFunc) (float64, int, error) {
	bestCost := math.Inf(1)
	bestAction := p.opts.Actions[0]
	for _, a := range p.opts.Actions {
		var expected float64
		for _, o := range dist {
			c, err := p.model.PeriodCost(s.Inventory, a, o.Demand)
			if err != nil {
				return 0, 0, err
			}
			f, err := future(cost.EndingInventory(s.Inventory, a, o.Demand))
			if err != nil {
				return 0, 0, err
			}
			expected += o.Probability * (c + f)
		}
		if expected < bestCost {
			bestCost, bestAction = expected, a
		}
	}
	// Huge finite rates can overflow every action to +Inf (or NaN, which
	// never compares below bestCost).
	if math.IsInf(bestCost, 0) {
		return 0, 0, fmt.Errorf("%w: expected cost of state (%d,%d) is not finite",
			ErrInvalidParameter, s.PeriodsRemaining, s.Inventory)
	}

	return bestCost, bestAction, nil
}
