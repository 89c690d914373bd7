package demand

import "errors"

// SumTolerance is the absolute slack allowed when checking that the
// probabilities of a Distribution add up to 1.
const SumTolerance = 1e-9

// Sentinel errors for demand operations.
var (
	// ErrInvalidPeriod indicates a period index below 1.
	ErrInvalidPeriod = errors.New("demand: period index must be >= 1")
	// ErrEmptyDistribution indicates a distribution with no outcomes.
	ErrEmptyDistribution = errors.New("demand: distribution has no outcomes")
	// ErrNegativeDemand indicates an outcome with a negative demand value.
	ErrNegativeDemand = errors.New("demand: demand values must be non-negative")
	// ErrBadProbability indicates a probability outside [0,1] or NaN.
	ErrBadProbability = errors.New("demand: probability must lie in [0,1]")
	// ErrProbabilitySum indicates probabilities that do not sum to 1.
	ErrProbabilitySum = errors.New("demand: probabilities must sum to 1")
	// ErrBadTiers indicates an ill-formed tier list.
	ErrBadTiers = errors.New("demand: invalid tier layout")
)

// Outcome is one possible realization of demand in a period.
type Outcome struct {
	Demand      int     `json:"demand" yaml:"demand" mapstructure:"demand"`
	Probability float64 `json:"probability" yaml:"probability" mapstructure:"probability"`
}

// Distribution is an ordered, finite demand distribution.
// Solvers iterate outcomes in slice order.
type Distribution []Outcome

// Provider returns the demand distribution for a period index.
type Provider interface {
	Distribution(period int) (Distribution, error)
}

// ProviderFunc adapts a plain function to the Provider interface.
type ProviderFunc func(period int) (Distribution, error)

// Distribution calls f(period).
func (f ProviderFunc) Distribution(period int) (Distribution, error) { return f(period) }
