package config

import (
	"fmt"
	"slices"
	"strings"

	"github.com/katalvlaran/invdp/compare"
	"github.com/katalvlaran/invdp/dp"
)

// DefaultPreset is used when no preset is named.
const DefaultPreset = "calibration"

// presets are the two classic scenarios.
//
//	calibration: 20 units, rates 2.0 / 10.0 / 5.0, twelve periods;
//	field:       25 units, rates 1.5 / 15.0 / 8.0, fifteen periods.
var presets = map[string]Scenario{
	"calibration": {
		Name:             "calibration",
		InitialInventory: 20,
		HoldingRate:      2.0,
		ShortageRate:     10.0,
		OrderRate:        5.0,
		Horizon:          12,
	},
	"field": {
		Name:             "field",
		InitialInventory: 25,
		HoldingRate:      1.5,
		ShortageRate:     15.0,
		OrderRate:        8.0,
		Horizon:          15,
	},
}

// Presets returns the registered preset names in sorted order.
func Presets() []string {
	names := make([]string, 0, len(presets))
	for n := range presets {
		names = append(names, n)
	}
	slices.Sort(names)

	return names
}

// Preset returns a copy of the named scenario with the shared defaults
// filled in. The empty name selects DefaultPreset.
func Preset(name string) (Scenario, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	if name == "" {
		name = DefaultPreset
	}
	s, ok := presets[name]
	if !ok {
		return Scenario{}, fmt.Errorf("%w: %q (known: %s)", ErrUnknownPreset, name, strings.Join(Presets(), ", "))
	}
	s.Window = dp.DerivedWindow.String()
	s.Boundary = dp.Strict.String()
	s.FixedMin, s.FixedMax = dp.DefaultFixedMin, dp.DefaultFixedMax
	s.Tolerance = compare.DefaultTolerance
	s.Runs = 10000
	s.Seed = 1

	return s, nil
}
