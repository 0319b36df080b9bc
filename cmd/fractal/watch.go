package main

import (
	"os/signal"
	"syscall"

	"FractalSentinel/internal/notifier"
	"FractalSentinel/internal/scheduler"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

func newWatchCmd(opts *rootOptions) *cobra.Command {
	flags := &seriesFlags{}
	var runOnStart bool
	cmd := &cobra.Command{
		Use:   "watch",
		Short: "Refresh the analysis on the configured cron schedule until interrupted",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg := opts.cfg
			if err := flags.apply(cmd, cfg); err != nil {
				return err
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			sched := scheduler.NewScheduler(ctx, newCollector(cfg), notifier.NewWriterNotifier(cmd.OutOrStdout()), cfg.Analysis.RegimeThreshold)
			if err := sched.RegisterAll(cfg.Schedule.RefreshCron); err != nil {
				return err
			}
			sched.Start()
			defer sched.Stop()

			if runOnStart {
				sched.RunInBackground()
			}

			log.Info().Str("cron", cfg.Schedule.RefreshCron).Msg("watching, press Ctrl+C to stop")
			<-ctx.Done()
			log.Info().Msg("shutdown signal received, stopping")
			return nil
		},
	}
	flags.register(cmd)
	cmd.Flags().BoolVar(&runOnStart, "run-on-start", false, "run one refresh immediately")
	return cmd
}
