package main

import (
	"time"

	"FractalSentinel/internal/collector"
	"FractalSentinel/internal/notifier"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

func newSweepCmd(opts *rootOptions) *cobra.Command {
	var (
		trials       int
		persistences []float64
		length       int
		seed         int64
	)
	cmd := &cobra.Command{
		Use:   "sweep",
		Short: "Average Hurst estimates of many generated series per persistence value",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg := opts.cfg
			if cmd.Flags().Changed("trials") {
				cfg.Sweep.Trials = trials
			}
			if cmd.Flags().Changed("persistence") {
				cfg.Sweep.Persistences = persistences
			}
			if cmd.Flags().Changed("length") {
				cfg.Series.Length = length
			}
			if cmd.Flags().Changed("seed") {
				cfg.Series.Seed = seed
			}
			if err := cfg.Validate(); err != nil {
				return err
			}
			if cfg.Series.Seed == 0 {
				cfg.Series.Seed = time.Now().UnixNano()
			}

			start := time.Now()
			results, err := collector.Sweep(cmd.Context(), collector.SweepOptions{
				Persistences: cfg.Sweep.Persistences,
				Trials:       cfg.Sweep.Trials,
				Length:       cfg.Series.Length,
				StartValue:   cfg.Series.StartValue,
				Seed:         cfg.Series.Seed,
				Workers:      cfg.Analysis.Workers,
			})
			if err != nil {
				return err
			}
			log.Info().Dur("elapsed", time.Since(start)).Int("series", len(results)*cfg.Sweep.Trials).Msg("sweep finished")
			return notifier.NewWriterNotifier(cmd.OutOrStdout()).Send(cmd.Context(), notifier.FormatSweep(results))
		},
	}
	cmd.Flags().IntVar(&trials, "trials", 0, "series generated per persistence value")
	cmd.Flags().Float64SliceVar(&persistences, "persistence", nil, "persistence values, comma separated")
	cmd.Flags().IntVar(&length, "length", 0, "points per generated series")
	cmd.Flags().Int64Var(&seed, "seed", 0, "base random seed (0 seeds from the clock)")
	return cmd
}
