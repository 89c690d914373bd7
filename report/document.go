package report

import (
	"github.com/katalvlaran/invdp/compare"
	"github.com/katalvlaran/invdp/simulate"
)

// document is the JSON/YAML shape of a Summary.
type document struct {
	Scenario   string         `json:"scenario,omitempty" yaml:"scenario,omitempty"`
	Parameters parameters     `json:"parameters" yaml:"parameters"`
	Solution   *solutionDoc   `json:"solution,omitempty" yaml:"solution,omitempty"`
	Comparison *comparisonDoc `json:"comparison,omitempty" yaml:"comparison,omitempty"`
	Simulation *simulationDoc `json:"simulation,omitempty" yaml:"simulation,omitempty"`
	Savings    *savingsDoc    `json:"estimated_savings,omitempty" yaml:"estimated_savings,omitempty"`
}

type parameters struct {
	InitialInventory int     `json:"initial_inventory" yaml:"initial_inventory"`
	HoldingRate      float64 `json:"holding_rate" yaml:"holding_rate"`
	ShortageRate     float64 `json:"shortage_rate" yaml:"shortage_rate"`
	OrderRate        float64 `json:"order_rate" yaml:"order_rate"`
	Horizon          int     `json:"horizon" yaml:"horizon"`
}

type solutionDoc struct {
	Solution `json:",inline" yaml:",inline"`
	Rounded  string `json:"rounded" yaml:"rounded"`
}

type comparisonDoc struct {
	compare.Result `json:",inline" yaml:",inline"`
	Rounded        map[string]string `json:"rounded" yaml:"rounded"`
}

type simulationDoc struct {
	simulate.Result `json:",inline" yaml:",inline"`
	Rounded         map[string]string `json:"rounded" yaml:"rounded"`
}

type savingsDoc struct {
	Rate   float64 `json:"rate" yaml:"rate"`
	Amount string  `json:"amount" yaml:"amount"`
}

func newDocument(s Summary) document {
	d := document{
		Scenario: s.Scenario,
		Parameters: parameters{
			InitialInventory: s.InitialInventory,
			HoldingRate:      s.HoldingRate,
			ShortageRate:     s.ShortageRate,
			OrderRate:        s.OrderRate,
			Horizon:          s.Horizon,
		},
	}
	if sol := s.Solution; sol != nil {
		d.Solution = &solutionDoc{Solution: *sol, Rounded: Money(sol.Value)}
	}
	if c := s.Comparison; c != nil {
		d.Comparison = &comparisonDoc{
			Result: *c,
			Rounded: map[string]string{
				"top_down":   Money(c.TopDown),
				"bottom_up":  Money(c.BottomUp),
				"difference": Money(c.Difference),
			},
		}
	}
	if r := s.Simulation; r != nil {
		d.Simulation = &simulationDoc{
			Result: *r,
			Rounded: map[string]string{
				"expected": Money(r.Expected),
				"mean":     Money(r.Mean),
				"std_dev":  Money(r.StdDev),
				"min":      Money(r.Min),
				"max":      Money(r.Max),
			},
		}
	}
	if v, ok := s.optimalCost(); ok && s.SavingsRate > 0 {
		d.Savings = &savingsDoc{Rate: s.SavingsRate, Amount: savingsAmount(v, s.SavingsRate)}
	}

	return d
}
