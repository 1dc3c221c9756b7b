// Package main is the entry point for the curvesheet CLI.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/yuhongherald/curvesheet/internal/config"
	"github.com/yuhongherald/curvesheet/numerics"
)

// Version information set via ldflags during build.
var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

func main() {
	if err := rootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func rootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:           "curvesheet",
		Short:         "Sample easing curves and plot them",
		Long:          `curvesheet samples easing curves over a numeric range and prints the table as CSV or uploads it to Google Sheets with a line chart.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.AddCommand(tableCmd())
	cmd.AddCommand(evalCmd())
	cmd.AddCommand(plotCmd())
	cmd.AddCommand(versionCmd())

	return cmd
}

// sampleFlags are shared by every command that samples curves. Flags left
// unset keep the value from the environment.
type sampleFlags struct {
	envFile   string
	from      float64
	to        float64
	steps     int
	functions []string
	reverse   bool
}

func (f *sampleFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.envFile, "env-file", "", "Path to .env file (default: .env in current directory)")
	cmd.Flags().Float64Var(&f.from, "from", 0, "Start of the sampled range")
	cmd.Flags().Float64Var(&f.to, "to", 1, "End of the sampled range")
	cmd.Flags().IntVar(&f.steps, "steps", config.DefaultSteps, "Number of intervals to sample")
	cmd.Flags().StringSliceVar(&f.functions, "functions", nil, "Curves to sample (default: all)")
	cmd.Flags().BoolVar(&f.reverse, "reverse", false, "Sample from the end of the range to its start")
}

func (f *sampleFlags) load(cmd *cobra.Command) (config.AppConfig, error) {
	cfg, err := config.LoadConfig(f.envFile)
	if err != nil {
		return config.AppConfig{}, fmt.Errorf("load config: %w", err)
	}

	var opts []config.Option
	flags := cmd.Flags()
	if flags.Changed("from") || flags.Changed("to") {
		r := cfg.Range()
		from, to := r.Start(), r.End()
		if flags.Changed("from") {
			from = f.from
		}
		if flags.Changed("to") {
			to = f.to
		}
		opts = append(opts, config.WithRange(from, to))
	}
	if flags.Changed("steps") {
		opts = append(opts, config.WithSteps(f.steps))
	}
	if flags.Changed("functions") {
		fns, err := parseFunctions(f.functions)
		if err != nil {
			return config.AppConfig{}, err
		}
		opts = append(opts, config.WithFunctions(fns...))
	}
	return cfg.With(opts...), nil
}

func (f *sampleFlags) sampleRange(cfg config.AppConfig) numerics.Range {
	r := cfg.Range()
	if f.reverse {
		return r.Reversed()
	}
	return r
}

func parseFunctions(names []string) ([]numerics.Function, error) {
	fns := make([]numerics.Function, 0, len(names))
	for _, name := range names {
		fn, err := numerics.ParseFunction(name)
		if err != nil {
			return nil, err
		}
		fns = append(fns, fn)
	}
	return fns, nil
}
