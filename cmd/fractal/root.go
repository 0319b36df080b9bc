package main

import (
	"fmt"
	"os"

	"FractalSentinel/internal/collector"
	"FractalSentinel/internal/config"
	"FractalSentinel/internal/logger"

	"github.com/spf13/cobra"
)

type rootOptions struct {
	configPath string
	cfg        *config.Config
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{configPath: "configs/config.yaml"}
	if v := os.Getenv("CONFIG_PATH"); v != "" {
		opts.configPath = v
	}

	root := &cobra.Command{
		Use:           "fractal",
		Short:         "Fractal time-series analysis: Hurst exponent, volatility and regime changes",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.Load(opts.configPath)
			if err != nil {
				return fmt.Errorf("load config: %w", err)
			}
			if err := logger.Setup(cfg.Log.Level, cfg.Log.Format); err != nil {
				return err
			}
			opts.cfg = cfg
			return nil
		},
	}
	root.PersistentFlags().StringVar(&opts.configPath, "config", opts.configPath, "path to the YAML config file")

	root.AddCommand(newAnalyzeCmd(opts), newWatchCmd(opts), newSweepCmd(opts))
	return root
}

// seriesFlags holds per-command overrides of the series section.
type seriesFlags struct {
	length      int
	persistence float64
	start       float64
	seed        int64
	window      int
	label       string
}

func (f *seriesFlags) register(cmd *cobra.Command) {
	cmd.Flags().IntVar(&f.length, "length", 0, "number of points to generate")
	cmd.Flags().Float64Var(&f.persistence, "persistence", 0, "persistence in [0, 1]")
	cmd.Flags().Float64Var(&f.start, "start", 0, "start value of the series")
	cmd.Flags().Int64Var(&f.seed, "seed", 0, "random seed (0 seeds from the clock)")
	cmd.Flags().IntVar(&f.window, "window", 0, "regime detection window size")
	cmd.Flags().StringVar(&f.label, "label", "", "label printed in the report")
}

// apply copies explicitly set flags into cfg and validates the result.
func (f *seriesFlags) apply(cmd *cobra.Command, cfg *config.Config) error {
	flags := cmd.Flags()
	if flags.Changed("length") {
		cfg.Series.Length = f.length
	}
	if flags.Changed("persistence") {
		cfg.Series.Persistence = f.persistence
	}
	if flags.Changed("start") {
		cfg.Series.StartValue = f.start
	}
	if flags.Changed("seed") {
		cfg.Series.Seed = f.seed
	}
	if flags.Changed("window") {
		cfg.Analysis.WindowSize = f.window
	}
	if flags.Changed("label") {
		cfg.Series.Label = f.label
	}
	return cfg.Validate()
}

func newCollector(cfg *config.Config) *collector.Collector {
	src := collector.NewSyntheticSource(cfg.Series.Length, cfg.Series.Persistence, cfg.Series.StartValue, cfg.Series.Seed)
	return collector.NewCollector(src, cfg.Series.Label, collector.Options{
		WindowSize:    cfg.Analysis.WindowSize,
		TrendPeriod:   cfg.Analysis.TrendPeriod,
		RollingWindow: cfg.Analysis.RollingWindow,
		Workers:       cfg.Analysis.Workers,
	})
}
