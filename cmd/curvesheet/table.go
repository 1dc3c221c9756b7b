package main

import (
	"encoding/csv"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
	"github.com/yuhongherald/curvesheet/numerics"
	"github.com/yuhongherald/curvesheet/plot"
)

func tableCmd() *cobra.Command {
	var flags sampleFlags

	cmd := &cobra.Command{
		Use:   "table",
		Short: "Print sampled curves as CSV",
		Long: `Print sampled curves as CSV.

The first column is x, travelling from --from to --to (or back with --reverse),
followed by one column per curve.

Environment variables:
  CURVESHEET_FROM, CURVESHEET_TO   Sampled range (default: 0, 1)
  CURVESHEET_STEPS                 Number of intervals (default: 20)
  CURVESHEET_FUNCTIONS             Comma-separated curve names (default: all)`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := flags.load(cmd)
			if err != nil {
				return err
			}

			table := plot.Sample(flags.sampleRange(cfg), cfg.Steps(), cfg.Functions())

			w := csv.NewWriter(cmd.OutOrStdout())
			if err := w.WriteAll(table.Rows()); err != nil {
				return fmt.Errorf("write csv: %w", err)
			}
			return nil
		},
	}
	flags.register(cmd)

	return cmd
}

func evalCmd() *cobra.Command {
	var (
		from float64
		to   float64
	)

	cmd := &cobra.Command{
		Use:   "eval FUNCTION X",
		Short: "Evaluate one curve at x",
		Example: `  curvesheet eval smooth_ft 0.25
  curvesheet eval SmoothMiddle_FTF 5 --from 0 --to 10`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			fn, err := numerics.ParseFunction(args[0])
			if err != nil {
				return err
			}
			x, err := strconv.ParseFloat(args[1], 64)
			if err != nil {
				return fmt.Errorf("parse x: %w", err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), strconv.FormatFloat(fn.At(x, from, to), 'g', -1, 64))
			return nil
		},
	}
	cmd.Flags().Float64Var(&from, "from", 0, "Curve start")
	cmd.Flags().Float64Var(&to, "to", 1, "Curve end")

	return cmd
}
