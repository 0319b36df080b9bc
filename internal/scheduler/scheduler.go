package scheduler

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"

	"FractalSentinel/internal/collector"
	"FractalSentinel/internal/notifier"
	"FractalSentinel/internal/strategy"

	"github.com/robfig/cron/v3"
	"github.com/rs/zerolog/log"
)

// Scheduler refreshes the analysis on a cron schedule.
type Scheduler struct {
	Cron      *cron.Cron
	Collector *collector.Collector
	Notifier  notifier.Notifier
	Threshold float64
	Ctx       context.Context

	// refresh is shared by cron ticks and manual runs, so a manual run
	// overlapping a tick is skipped like two overlapping ticks.
	refresh cron.Job
	manual  sync.WaitGroup
	runs    atomic.Int64
}

// NewScheduler creates a new Scheduler. Overlapping refreshes are skipped.
func NewScheduler(ctx context.Context, col *collector.Collector, n notifier.Notifier, threshold float64) *Scheduler {
	logger := cronLogger{}
	s := &Scheduler{
		Cron:      cron.New(cron.WithSeconds(), cron.WithLogger(logger)),
		Collector: col,
		Notifier:  n,
		Threshold: threshold,
		Ctx:       ctx,
	}
	s.refresh = cron.NewChain(cron.Recover(logger), cron.SkipIfStillRunning(logger)).
		Then(cron.FuncJob(s.refreshTask))
	return s
}

// RegisterAll registers the refresh task.
func (s *Scheduler) RegisterAll(refreshCron string) error {
	if _, err := s.Cron.AddJob(refreshCron, s.refresh); err != nil {
		return fmt.Errorf("register refresh task: %w", err)
	}
	return nil
}

// Start starts the cron scheduler.
func (s *Scheduler) Start() {
	s.Cron.Start()
	log.Info().Int("jobs", len(s.Cron.Entries())).Msg("scheduler started")
}

// Stop stops the cron scheduler and waits for running ticks and
// background refreshes to finish.
func (s *Scheduler) Stop() {
	<-s.Cron.Stop().Done()
	s.manual.Wait()
	log.Info().Msg("scheduler stopped")
}

// RunNow executes the refresh task immediately, unless one is already running.
func (s *Scheduler) RunNow() {
	s.refresh.Run()
}

// RunInBackground starts RunNow on a goroutine that Stop waits for.
func (s *Scheduler) RunInBackground() {
	s.manual.Add(1)
	go func() {
		defer s.manual.Done()
		s.RunNow()
	}()
}

// Runs reports how many refreshes have completed.
func (s *Scheduler) Runs() int64 {
	return s.runs.Load()
}

func (s *Scheduler) refreshTask() {
	defer s.runs.Add(1)
	log.Info().Msg("running refresh task")

	rep, err := s.Collector.Collect(s.Ctx)
	if err != nil {
		log.Error().Err(err).Msg("refresh collect")
		s.trySend(fmt.Sprintf("refresh failed: %v", err))
		return
	}

	a := strategy.Evaluate(rep, s.Threshold)
	if a.Tier.MinScore >= strategy.Tiers[0].MinScore {
		log.Warn().Float64("peak", a.PeakScore).Int("index", a.PeakIndex).Msg("regime shift detected")
	}
	s.trySend(notifier.FormatReport(rep, a))
}

func (s *Scheduler) trySend(text string) {
	if err := s.Notifier.Send(s.Ctx, text); err != nil {
		log.Error().Err(err).Msg("send notification")
	}
}

// cronLogger adapts zerolog to cron.Logger.
type cronLogger struct{}

func (cronLogger) Info(msg string, keysAndValues ...interface{}) {
	log.Debug().Fields(keysAndValues).Msg("cron: " + msg)
}

func (cronLogger) Error(err error, msg string, keysAndValues ...interface{}) {
	log.Error().Err(err).Fields(keysAndValues).Msg("cron: " + msg)
}
