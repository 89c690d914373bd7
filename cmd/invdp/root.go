package main

import (
	"errors"
	"strings"

	"github.com/go-logr/logr"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/katalvlaran/invdp/dp"
	"github.com/katalvlaran/invdp/internal/config"
	"github.com/katalvlaran/invdp/internal/logging"
	"github.com/katalvlaran/invdp/internal/metrics"
	"github.com/katalvlaran/invdp/report"
)

// errMismatch is returned by compare when the solvers disagree.
var errMismatch = errors.New("top-down and bottom-up results differ beyond tolerance")

// app carries the state shared by every subcommand of one invocation.
type app struct {
	configPath string
	logLevel   string
	logDev     bool
	formatName string
	withMetric bool

	v        *viper.Viper
	log      logr.Logger
	format   report.Format
	recorder *metrics.Recorder
	scenario config.Scenario
}

func (a *app) rootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:           "invdp",
		Short:         "Stochastic inventory control by dynamic programming",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.setup(cmd.Flags())
		},
	}

	pf := root.PersistentFlags()
	pf.StringVar(&a.configPath, "config", "", "YAML scenario file")
	pf.StringVar(&a.logLevel, "log-level", "info", "log verbosity: info, debug or trace")
	pf.BoolVar(&a.logDev, "log-dev", false, "human-readable development logging")
	pf.StringVar(&a.formatName, "format", "text", "output format: text, json or yaml")
	pf.BoolVar(&a.withMetric, "metrics", false, "print solver metrics to stderr after the run")

	pf.String("preset", config.DefaultPreset, "base scenario: "+strings.Join(config.Presets(), ", "))
	pf.String("name", "", "scenario name shown in reports")
	pf.Int("initial-inventory", 0, "starting inventory level")
	pf.Float64("holding-rate", 0, "cost per unit held at period end")
	pf.Float64("shortage-rate", 0, "cost per unit backordered at period end")
	pf.Float64("order-rate", 0, "cost per unit ordered")
	pf.Int("horizon", 0, "number of periods")
	pf.IntSlice("actions", nil, "allowed order quantities, ascending (default 0,5,...,45)")
	pf.String("window", "", "bottom-up state window: derived, sparse or fixed")
	pf.String("boundary", "", "fixed-window boundary policy: strict or zero")
	pf.Int("fixed-min", 0, "fixed window lower bound (inclusive)")
	pf.Int("fixed-max", 0, "fixed window upper bound (exclusive)")
	pf.Int("workers", 0, "goroutines per table row and per simulation")

	root.AddCommand(a.compareCommand(), a.solveCommand(), a.simulateCommand())

	return root
}

// setup builds logger, metrics and scenario once flags are parsed.
func (a *app) setup(flags *pflag.FlagSet) error {
	var err error
	if a.log, err = logging.New(a.logLevel, a.logDev); err != nil {
		return err
	}
	if a.format, err = report.ParseFormat(a.formatName); err != nil {
		return err
	}
	if a.v, err = config.New(a.configPath); err != nil {
		return err
	}
	// Flag "holding-rate" binds key "holding_rate"; only changed flags
	// override the preset.
	for _, name := range []string{
		"preset", "name", "initial-inventory", "holding-rate", "shortage-rate", "order-rate",
		"horizon", "actions", "window", "boundary", "fixed-min", "fixed-max", "workers",
		"tolerance", "runs", "seed",
	} {
		if f := flags.Lookup(name); f != nil {
			if err = a.v.BindPFlag(strings.ReplaceAll(name, "-", "_"), f); err != nil {
				return err
			}
		}
	}
	if a.scenario, err = config.Load(a.v); err != nil {
		return err
	}
	if a.withMetric {
		a.recorder = metrics.NewRecorder()
	}
	a.log.V(logging.DEBUG).Info("scenario loaded", "scenario", a.scenario.Name,
		"horizon", a.scenario.Horizon, "window", a.scenario.Window)

	return nil
}

// problem builds the dp.Problem of the loaded scenario.
func (a *app) problem() (*dp.Problem, error) {
	var obs dp.Observer
	if a.recorder != nil {
		obs = a.recorder
	}

	return a.scenario.Problem(a.log, obs)
}

// summary fills the scenario part of a report.
func (a *app) summary() report.Summary {
	s := a.scenario

	return report.Summary{
		Scenario:         s.Name,
		InitialInventory: s.InitialInventory,
		HoldingRate:      s.HoldingRate,
		ShortageRate:     s.ShortageRate,
		OrderRate:        s.OrderRate,
		Horizon:          s.Horizon,
	}
}
