package report

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/invdp/compare"
	"github.com/katalvlaran/invdp/simulate"
)

// DefaultSavingsRate is the share of the optimal cost quoted as the
// estimated saving over an unoptimised plan.
const DefaultSavingsRate = 0.15

// ErrUnknownFormat indicates an unsupported output format name.
var ErrUnknownFormat = errors.New("report: unknown format")

// Format selects the rendering of Write.
type Format int

const (
	Text Format = iota
	JSON
	YAML
)

// String returns the lower-case format name.
func (f Format) String() string {
	switch f {
	case Text:
		return "text"
	case JSON:
		return "json"
	case YAML:
		return "yaml"
	default:
		return "unknown"
	}
}

// ParseFormat parses "text", "json" or "yaml" (case-insensitive).
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "text":
		return Text, nil
	case "json":
		return JSON, nil
	case "yaml", "yml":
		return YAML, nil
	}

	return 0, fmt.Errorf("%w: %q", ErrUnknownFormat, s)
}

// Summary is everything a report shows. Solution, Comparison and
// Simulation are optional; nil sections are omitted.
type Summary struct {
	Scenario         string
	InitialInventory int
	HoldingRate      float64
	ShortageRate     float64
	OrderRate        float64
	Horizon          int

	Solution   *Solution
	Comparison *compare.Result
	Simulation *simulate.Result

	// SavingsRate > 0 adds an estimated saving of SavingsRate × the optimal cost.
	SavingsRate float64
}

// Solution is the outcome of a single solver.
type Solution struct {
	Method string  `json:"method" yaml:"method"`
	Value  float64 `json:"value" yaml:"value"`
	States int     `json:"states" yaml:"states"`
}

// Money rounds v half away from zero and formats it with two decimals.
// Non-finite values print as "+Inf", "-Inf" or "NaN".
func Money(v float64) string {
	if !finite(v) {
		return strconv.FormatFloat(v, 'f', -1, 64)
	}

	return decimal.NewFromFloat(v).Round(2).StringFixed(2)
}

// percent formats a rate such as 0.15 as "15".
func percent(rate float64) string {
	if !finite(rate) {
		return strconv.FormatFloat(rate*100, 'f', -1, 64)
	}

	return decimal.NewFromFloat(rate).Shift(2).String()
}

// savingsAmount multiplies in decimal: 1154.5 × 0.15 is exactly 173.175
// and rounds to 173.18.
func savingsAmount(v, rate float64) string {
	if !finite(v) || !finite(rate) {
		return Money(v * rate)
	}

	return decimal.NewFromFloat(v).Mul(decimal.NewFromFloat(rate)).Round(2).StringFixed(2)
}

// finite reports whether decimal can represent v.
func finite(v float64) bool { return !math.IsInf(v, 0) && !math.IsNaN(v) }

// Write renders s to w in format f.
func Write(w io.Writer, f Format, s Summary) error {
	switch f {
	case Text:
		return writeText(w, s)
	case JSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(newDocument(s))
	case YAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(newDocument(s)); err != nil {
			return err
		}
		return enc.Close()
	default:
		return fmt.Errorf("%w: %d", ErrUnknownFormat, int(f))
	}
}

// optimalCost is the value the savings estimate is based on.
func (s Summary) optimalCost() (float64, bool) {
	switch {
	case s.Solution != nil:
		return s.Solution.Value, true
	case s.Comparison != nil:
		return s.Comparison.TopDown, true
	case s.Simulation != nil:
		return s.Simulation.Expected, true
	}

	return 0, false
}
