package cost

import (
	"fmt"
	"math"
)

// NewModel validates the rates and returns an immutable Model.
// Returns ErrInvalidRate if any rate is negative, NaN or ±Inf.
// Complexity: O(1).
func NewModel(initialInventory int, holdingRate, shortageRate, orderRate float64) (Model, error) {
	rates := [...]struct {
		name string
		v    float64
	}{
		{"holding", holdingRate},
		{"shortage", shortageRate},
		{"order", orderRate},
	}
	for _, r := range rates {
		if r.v < 0 || math.IsNaN(r.v) || math.IsInf(r.v, 0) {
			return Model{}, fmt.Errorf("%w: %s rate %v", ErrInvalidRate, r.name, r.v)
		}
	}

	return Model{
		initialInventory: initialInventory,
		holdingRate:      holdingRate,
		shortageRate:     shortageRate,
		orderRate:        orderRate,
	}, nil
}

// WithInitialInventory returns a copy of m starting from n units.
func (m Model) WithInitialInventory(n int) Model {
	m.initialInventory = n

	return m
}

// EndingInventory returns before + order − demand. Negative values are backorders.
func EndingInventory(before, order, demand int) int {
	return before + order - demand
}

// PeriodCost returns holding + shortage + ordering cost for one period.
//
// Stage 1 (Validate): order and demand must be non-negative.
// Stage 2 (Execute): settle the ending inventory and charge each term.
//
// The inventory before demand may have any sign.
// Complexity: O(1).
func (m Model) PeriodCost(before, order, demand int) (float64, error) {
	if order < 0 || demand < 0 {
		return 0, fmt.Errorf("%w: order=%d demand=%d", ErrNegativeQuantity, order, demand)
	}

	ending := EndingInventory(before, order, demand)

	var holding, shortage, ordering float64
	if ending > 0 {
		holding = float64(ending) * m.holdingRate
	} else if ending < 0 {
		shortage = float64(-ending) * m.shortageRate
	}
	if order > 0 {
		ordering = float64(order) * m.orderRate
	}

	return holding + shortage + ordering, nil
}
