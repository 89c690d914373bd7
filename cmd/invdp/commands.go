package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/invdp/compare"
	"github.com/katalvlaran/invdp/dp"
	"github.com/katalvlaran/invdp/report"
	"github.com/katalvlaran/invdp/simulate"
)

func (a *app) compareCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "compare",
		Short: "Run both solvers and check that they agree",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			p, err := a.problem()
			if err != nil {
				return err
			}
			res, err := compare.Run(p, a.scenario.Horizon, a.scenario.Tolerance)
			if err != nil {
				return err
			}
			s := a.summary()
			s.Comparison = &res
			if err = report.Write(cmd.OutOrStdout(), a.format, s); err != nil {
				return err
			}
			if !res.Match {
				return fmt.Errorf("%w: |%s - %s| = %s", errMismatch,
					report.Money(res.TopDown), report.Money(res.BottomUp), report.Money(res.Difference))
			}

			return nil
		},
	}
	cmd.Flags().Float64("tolerance", compare.DefaultTolerance, "largest accepted absolute difference (exclusive)")

	return cmd
}

func (a *app) solveCommand() *cobra.Command {
	var method string
	cmd := &cobra.Command{
		Use:   "solve",
		Short: "Compute the minimum expected cost with one solver",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			p, err := a.problem()
			if err != nil {
				return err
			}
			sol := &report.Solution{Method: strings.ToLower(method)}
			switch sol.Method {
			case dp.TopDown.String():
				memo := dp.NewMemo()
				if sol.Value, err = dp.SolveTopDown(p, a.scenario.Horizon, a.scenario.InitialInventory, memo); err != nil {
					return err
				}
				sol.States = memo.Len()
			case dp.BottomUp.String():
				tb, err := dp.FillTable(p, a.scenario.Horizon)
				if err != nil {
					return err
				}
				v, ok := tb.Value(dp.State{PeriodsRemaining: a.scenario.Horizon, Inventory: a.scenario.InitialInventory})
				if !ok {
					return fmt.Errorf("%w: initial state missing from table", dp.ErrStateWindowOverflow)
				}
				sol.Value, sol.States = v, tb.Len()
			default:
				return fmt.Errorf("unknown method %q (want topdown or bottomup)", method)
			}

			s := a.summary()
			s.Solution = sol
			s.SavingsRate = report.DefaultSavingsRate

			return report.Write(cmd.OutOrStdout(), a.format, s)
		},
	}
	cmd.Flags().StringVar(&method, "method", dp.TopDown.String(), "solver: topdown or bottomup")

	return cmd
}

func (a *app) simulateCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "simulate",
		Short: "Replay the optimal policy over sampled demand paths",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			p, err := a.problem()
			if err != nil {
				return err
			}
			res, err := simulate.Run(p, a.scenario.Horizon, a.scenario.SimulateOptions())
			if err != nil {
				return err
			}
			s := a.summary()
			s.Simulation = &res
			s.SavingsRate = report.DefaultSavingsRate

			return report.Write(cmd.OutOrStdout(), a.format, s)
		},
	}
	def := simulate.DefaultOptions()
	cmd.Flags().Int("runs", def.Runs, "number of sampled demand paths")
	cmd.Flags().Int64("seed", def.Seed, "random seed")

	return cmd
}
