package demand

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/floats/scalar"
)

// Validate checks that d is a proper probability distribution.
//
// Stage 1: non-empty.
// Stage 2: every demand ≥ 0 and every probability in [0,1].
// Stage 3: probabilities sum to 1 within SumTolerance.
//
// Complexity: O(len(d)).
func (d Distribution) Validate() error {
	if len(d) == 0 {
		return ErrEmptyDistribution
	}
	probs := make([]float64, len(d))
	for i, o := range d {
		if o.Demand < 0 {
			return fmt.Errorf("%w: outcome %d has demand %d", ErrNegativeDemand, i, o.Demand)
		}
		if math.IsNaN(o.Probability) || o.Probability < 0 || o.Probability > 1 {
			return fmt.Errorf("%w: outcome %d has probability %v", ErrBadProbability, i, o.Probability)
		}
		probs[i] = o.Probability
	}
	if sum := floats.Sum(probs); !scalar.EqualWithinAbs(sum, 1, SumTolerance) {
		return fmt.Errorf("%w: got %v", ErrProbabilitySum, sum)
	}

	return nil
}

// MinDemand returns the smallest demand value, or 0 for an empty distribution.
func (d Distribution) MinDemand() int {
	if len(d) == 0 {
		return 0
	}
	lo := d[0].Demand
	for _, o := range d[1:] {
		if o.Demand < lo {
			lo = o.Demand
		}
	}

	return lo
}

// MaxDemand returns the largest demand value, or 0 for an empty distribution.
func (d Distribution) MaxDemand() int {
	if len(d) == 0 {
		return 0
	}
	hi := d[0].Demand
	for _, o := range d[1:] {
		if o.Demand > hi {
			hi = o.Demand
		}
	}

	return hi
}

// Mean returns the expected demand.
func (d Distribution) Mean() float64 {
	values := make([]float64, len(d))
	weights := make([]float64, len(d))
	for i, o := range d {
		values[i] = float64(o.Demand)
		weights[i] = o.Probability
	}

	return floats.Dot(values, weights)
}

// Sample draws a demand by inverting the cumulative distribution at u.
// u is expected in [0,1); values at or beyond the total mass return the
// last outcome so rounding in the probabilities never falls off the end.
// Complexity: O(len(d)).
func Sample(d Distribution, u float64) int {
	var acc float64
	for _, o := range d {
		acc += o.Probability
		if u < acc {
			return o.Demand
		}
	}

	return d[len(d)-1].Demand
}
