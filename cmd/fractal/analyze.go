package main

import (
	"FractalSentinel/internal/notifier"
	"FractalSentinel/internal/strategy"

	"github.com/spf13/cobra"
)

func newAnalyzeCmd(opts *rootOptions) *cobra.Command {
	flags := &seriesFlags{}
	cmd := &cobra.Command{
		Use:   "analyze",
		Short: "Generate a series and print its fractal analysis",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg := opts.cfg
			if err := flags.apply(cmd, cfg); err != nil {
				return err
			}
			rep, err := newCollector(cfg).Collect(cmd.Context())
			if err != nil {
				return err
			}
			a := strategy.Evaluate(rep, cfg.Analysis.RegimeThreshold)
			return notifier.NewWriterNotifier(cmd.OutOrStdout()).Send(cmd.Context(), notifier.FormatReport(rep, a))
		},
	}
	flags.register(cmd)
	return cmd
}
