// Package config loads the scenario a run solves: cost rates, horizon,
// action set, window policy and demand tiers.
//
// Sources, lowest precedence first:
//
//  1. a named preset (calibration or field);
//  2. an optional YAML file (--config);
//  3. INVDP_* environment variables;
//  4. command-line flags bound to the viper instance.
//
// Only keys that are actually set in 2-4 override the preset, so an
// untouched flag never resets a preset value to the flag's zero default.
package config

import (
	"errors"
	"fmt"
	"reflect"
	"strconv"
	"strings"
	"unicode"

	"github.com/go-logr/logr"
	"github.com/go-viper/mapstructure/v2"
	"github.com/spf13/viper"

	"github.com/katalvlaran/invdp/cost"
	"github.com/katalvlaran/invdp/demand"
	"github.com/katalvlaran/invdp/dp"
	"github.com/katalvlaran/invdp/simulate"
)

// EnvPrefix prefixes every environment override: INVDP_HORIZON, ...
const EnvPrefix = "INVDP"

// Configuration keys shared by the YAML file, the environment and flags.
const (
	KeyPreset           = "preset"
	KeyName             = "name"
	KeyInitialInventory = "initial_inventory"
	KeyHoldingRate      = "holding_rate"
	KeyShortageRate     = "shortage_rate"
	KeyOrderRate        = "order_rate"
	KeyHorizon          = "horizon"
	KeyActions          = "actions"
	KeyWindow           = "window"
	KeyBoundary         = "boundary"
	KeyFixedMin         = "fixed_min"
	KeyFixedMax         = "fixed_max"
	KeyWorkers          = "workers"
	KeyTolerance        = "tolerance"
	KeyRuns             = "runs"
	KeySeed             = "seed"
	KeyDemand           = "demand"
)

// scenarioKeys lists every key decoded onto a Scenario.
var scenarioKeys = []string{
	KeyName, KeyInitialInventory, KeyHoldingRate, KeyShortageRate, KeyOrderRate,
	KeyHorizon, KeyActions, KeyWindow, KeyBoundary, KeyFixedMin, KeyFixedMax,
	KeyWorkers, KeyTolerance, KeyRuns, KeySeed, KeyDemand,
}

var (
	// ErrUnknownPreset indicates a preset name that is not registered.
	ErrUnknownPreset = errors.New("config: unknown preset")
	// ErrInvalidScenario indicates a scenario that fails Validate.
	ErrInvalidScenario = errors.New("config: invalid scenario")
)

// Scenario is one fully resolved run configuration.
type Scenario struct {
	Name             string  `mapstructure:"name" yaml:"name"`
	InitialInventory int     `mapstructure:"initial_inventory" yaml:"initial_inventory"`
	HoldingRate      float64 `mapstructure:"holding_rate" yaml:"holding_rate"`
	ShortageRate     float64 `mapstructure:"shortage_rate" yaml:"shortage_rate"`
	OrderRate        float64 `mapstructure:"order_rate" yaml:"order_rate"`
	Horizon          int     `mapstructure:"horizon" yaml:"horizon"`

	// Actions empty means dp.DefaultActions.
	Actions  []int  `mapstructure:"actions" yaml:"actions,omitempty"`
	Window   string `mapstructure:"window" yaml:"window"`
	Boundary string `mapstructure:"boundary" yaml:"boundary"`
	FixedMin int    `mapstructure:"fixed_min" yaml:"fixed_min"`
	FixedMax int    `mapstructure:"fixed_max" yaml:"fixed_max"`
	Workers  int    `mapstructure:"workers" yaml:"workers"`

	Tolerance float64 `mapstructure:"tolerance" yaml:"tolerance"`
	Runs      int     `mapstructure:"runs" yaml:"runs"`
	Seed      int64   `mapstructure:"seed" yaml:"seed"`

	// Demand empty means demand.DefaultTiers.
	Demand []demand.Tier `mapstructure:"demand" yaml:"demand,omitempty"`
}

// New returns a viper instance reading INVDP_* variables and, when path is
// not empty, the YAML file at path.
func New(path string) (*viper.Viper, error) {
	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("read config %s: %w", path, err)
		}
	}

	return v, nil
}

// Load resolves the scenario held by v: the preset named by KeyPreset
// (calibration when unset) overlaid with every other key set in v.
// The result is validated.
func Load(v *viper.Viper) (Scenario, error) {
	s, err := Preset(v.GetString(KeyPreset))
	if err != nil {
		return Scenario{}, err
	}

	set := make(map[string]any, len(scenarioKeys))
	for _, k := range scenarioKeys {
		if v.IsSet(k) {
			set[k] = v.Get(k)
		}
	}
	if len(set) > 0 {
		dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
			Result:           &s,
			WeaklyTypedInput: true,
			DecodeHook:       stringToInts,
		})
		if err != nil {
			return Scenario{}, err
		}
		if err = dec.Decode(set); err != nil {
			return Scenario{}, fmt.Errorf("%w: %w", ErrInvalidScenario, err)
		}
	}

	if err = s.Validate(); err != nil {
		return Scenario{}, err
	}

	return s, nil
}

// stringToInts decodes "0,5,10", "0 5 10" or "[0,5,10]" into []int: the
// shapes an environment variable or a slice flag give an action list.
func stringToInts(from, to reflect.Type, data any) (any, error) {
	if from.Kind() != reflect.String || to != reflect.TypeOf([]int(nil)) {
		return data, nil
	}
	fields := strings.FieldsFunc(strings.Trim(data.(string), "[]"), func(r rune) bool {
		return r == ',' || unicode.IsSpace(r)
	})
	out := make([]int, 0, len(fields))
	for _, f := range fields {
		n, err := strconv.Atoi(f)
		if err != nil {
			return nil, fmt.Errorf("parse %q: %w", f, err)
		}
		out = append(out, n)
	}

	return out, nil
}

// Validate checks every field that NewProblem and the solvers would reject,
// so configuration mistakes surface before any work starts.
func (s *Scenario) Validate() error {
	if s.Horizon < 1 {
		return fmt.Errorf("%w: horizon must be >= 1, got %d", ErrInvalidScenario, s.Horizon)
	}
	if _, err := s.model(); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidScenario, err)
	}
	if _, err := s.options(); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidScenario, err)
	}
	if _, err := s.demand(); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidScenario, err)
	}
	if s.Workers < 0 {
		return fmt.Errorf("%w: workers must be >= 0, got %d", ErrInvalidScenario, s.Workers)
	}
	if s.Tolerance < 0 {
		return fmt.Errorf("%w: tolerance must be >= 0, got %v", ErrInvalidScenario, s.Tolerance)
	}
	if s.Runs < 0 {
		return fmt.Errorf("%w: runs must be >= 0, got %d", ErrInvalidScenario, s.Runs)
	}

	return nil
}

// Problem builds the dp.Problem of the scenario. logger and observer are
// handed to the solvers; a nil observer records nothing.
func (s *Scenario) Problem(logger logr.Logger, observer dp.Observer) (*dp.Problem, error) {
	m, err := s.model()
	if err != nil {
		return nil, err
	}
	opts, err := s.options()
	if err != nil {
		return nil, err
	}
	provider, err := s.demand()
	if err != nil {
		return nil, err
	}
	opts.Logger = logger.WithValues("scenario", s.Name)
	opts.Observer = observer

	return dp.NewProblem(m, provider, opts)
}

// SimulateOptions returns the replay options of the scenario.
func (s *Scenario) SimulateOptions() simulate.Options {
	o := simulate.DefaultOptions()
	if s.Runs > 0 {
		o.Runs = s.Runs
	}
	if s.Seed != 0 {
		o.Seed = s.Seed
	}
	o.Workers = s.Workers

	return o
}

func (s *Scenario) model() (cost.Model, error) {
	return cost.NewModel(s.InitialInventory, s.HoldingRate, s.ShortageRate, s.OrderRate)
}

func (s *Scenario) demand() (demand.Provider, error) {
	if len(s.Demand) == 0 {
		return demand.Default(), nil
	}

	return demand.NewTiered(s.Demand...)
}

func (s *Scenario) options() (dp.Options, error) {
	opts := dp.DefaultOptions()
	if len(s.Actions) > 0 {
		opts.Actions = append([]int(nil), s.Actions...)
	}
	window, err := dp.ParseWindowMode(s.Window)
	if err != nil {
		return dp.Options{}, err
	}
	boundary, err := dp.ParseBoundaryPolicy(s.Boundary)
	if err != nil {
		return dp.Options{}, err
	}
	opts.Window = window
	opts.Boundary = boundary
	opts.FixedMin, opts.FixedMax = s.FixedMin, s.FixedMax
	opts.Workers = s.Workers

	// NewProblem owns the remaining checks (action order, window bounds).
	if _, err = dp.NewProblem(cost.Model{}, demand.Default(), opts); err != nil {
		return dp.Options{}, err
	}

	return opts, nil
}
