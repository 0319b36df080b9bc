package scheduler

import (
	"bytes"
	"context"
	"sync"
	"testing"
	"time"

	"FractalSentinel/internal/collector"
	"FractalSentinel/internal/notifier"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type syncBuffer struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (b *syncBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.Write(p)
}

func (b *syncBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.String()
}

func newTestScheduler(src collector.Source, out *syncBuffer) *Scheduler {
	col := collector.NewCollector(src, "test", collector.DefaultOptions())
	return NewScheduler(context.Background(), col, notifier.NewWriterNotifier(out), 0.5)
}

func TestRunNow_SendsReport(t *testing.T) {
	var out syncBuffer
	s := newTestScheduler(collector.NewSyntheticSource(200, 0.7, 100, 3), &out)

	s.RunNow()

	assert.Equal(t, int64(1), s.Runs())
	assert.Contains(t, out.String(), "FractalSentinel | test")
	assert.Contains(t, out.String(), "Hurst exponent:")
}

func TestRunNow_ReportsCollectFailure(t *testing.T) {
	var out syncBuffer
	s := newTestScheduler(&collector.StaticSource{}, &out)

	s.RunNow()

	assert.Equal(t, int64(1), s.Runs())
	assert.Contains(t, out.String(), "refresh failed")
}

func TestRegisterAll_InvalidSpec(t *testing.T) {
	var out syncBuffer
	s := newTestScheduler(collector.NewSyntheticSource(200, 0.7, 100, 3), &out)
	assert.Error(t, s.RegisterAll("not a cron spec"))
}

func TestScheduler_TicksEverySecond(t *testing.T) {
	var out syncBuffer
	s := newTestScheduler(collector.NewSyntheticSource(120, 0.5, 100, 8), &out)
	require.NoError(t, s.RegisterAll("* * * * * *"))

	s.Start()
	assert.Eventually(t, func() bool { return s.Runs() >= 1 }, 5*time.Second, 50*time.Millisecond)
	s.Stop()

	assert.Contains(t, out.String(), "FractalSentinel | test")
}

// gatedSource blocks in Series until release is closed.
type gatedSource struct {
	started chan struct{}
	release chan struct{}
	once    sync.Once
}

func newGatedSource() *gatedSource {
	return &gatedSource{started: make(chan struct{}), release: make(chan struct{})}
}

func (g *gatedSource) Name() string { return "gated" }

func (g *gatedSource) Series(ctx context.Context) ([]float64, error) {
	g.once.Do(func() { close(g.started) })
	<-g.release
	return collector.NewSyntheticSource(120, 0.5, 100, 4).Series(ctx)
}

func TestStop_WaitsForBackgroundRefresh(t *testing.T) {
	var out syncBuffer
	src := newGatedSource()
	s := newTestScheduler(src, &out)
	require.NoError(t, s.RegisterAll("0 0 0 1 1 *"))
	s.Start()

	s.RunInBackground()
	<-src.started

	stopped := make(chan struct{})
	go func() {
		s.Stop()
		close(stopped)
	}()

	select {
	case <-stopped:
		t.Fatal("Stop returned while a refresh was still running")
	case <-time.After(100 * time.Millisecond):
	}

	close(src.release)
	select {
	case <-stopped:
	case <-time.After(5 * time.Second):
		t.Fatal("Stop did not return after the refresh finished")
	}
	assert.Equal(t, int64(1), s.Runs())
	assert.Contains(t, out.String(), "FractalSentinel | test")
}

func TestRunNow_SkippedWhileRefreshRunning(t *testing.T) {
	var out syncBuffer
	src := newGatedSource()
	s := newTestScheduler(src, &out)

	s.RunInBackground()
	<-src.started

	s.RunNow()
	assert.Equal(t, int64(0), s.Runs())

	close(src.release)
	s.Stop()
	assert.Equal(t, int64(1), s.Runs())
}
