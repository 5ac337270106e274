package scheduler

import (
	"context"
	"sync"
	"testing"
	"time"

	"go.uber.org/zap"

	"github.com/hamed0406/ewsmon/internal/domain"
	"github.com/hamed0406/ewsmon/internal/notify"
	"github.com/hamed0406/ewsmon/internal/probe"
)

func intp(i int) *int { return &i }

// ---- fakes ----

type fakeTargets struct {
	enabled []domain.Target
	err     error
}

func (f *fakeTargets) Add(ctx context.Context, t *domain.Target) error { return nil }
func (f *fakeTargets) List(ctx context.Context) ([]domain.Target, error) {
	return f.enabled, f.err
}
func (f *fakeTargets) ListEnabled(ctx context.Context) ([]domain.Target, error) {
	return f.enabled, f.err
}
func (f *fakeTargets) GetByName(ctx context.Context, name string) (*domain.Target, error) {
	return nil, nil
}

type fakeProbes struct {
	mu       sync.Mutex
	calls    []string
	prev     map[domain.TargetID]bool
	appended [][]*domain.ProbeResult
	deleted  []time.Time
	delErr   error
}

func (f *fakeProbes) Append(ctx context.Context, rows []*domain.ProbeResult) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls = append(f.calls, "append")
	f.appended = append(f.appended, rows)
	return nil
}

func (f *fakeProbes) LastOKByTarget(ctx context.Context, ids []domain.TargetID) (map[domain.TargetID]bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls = append(f.calls, "lastok")
	out := make(map[domain.TargetID]bool)
	for _, id := range ids {
		if v, ok := f.prev[id]; ok {
			out[id] = v
		}
	}
	return out, nil
}

func (f *fakeProbes) Latest(ctx context.Context) ([]domain.ProbeResult, error) { return nil, nil }
func (f *fakeProbes) RecentByTarget(ctx context.Context, id domain.TargetID, limit int) ([]domain.ProbeResult, error) {
	return nil, nil
}

func (f *fakeProbes) DeleteOlderThan(ctx context.Context, cutoff time.Time) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls = append(f.calls, "delete")
	f.deleted = append(f.deleted, cutoff)
	return 3, f.delErr
}

type fakeProber struct {
	mu      sync.Mutex
	active  int
	peak    int
	results map[domain.TargetID]probe.Outcome
}

func (f *fakeProber) Probe(ctx context.Context, t domain.Target) probe.Outcome {
	f.mu.Lock()
	f.active++
	if f.active > f.peak {
		f.peak = f.active
	}
	f.mu.Unlock()

	time.Sleep(5 * time.Millisecond)

	f.mu.Lock()
	f.active--
	out := f.results[t.ID]
	f.mu.Unlock()
	return out
}

type fakeSink struct {
	mu     sync.Mutex
	events []notify.Event
}

func (f *fakeSink) Dispatch(ev notify.Event) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.events = append(f.events, ev)
}
func (f *fakeSink) Wait() {}

// ---- tests ----

func twoTargets() []domain.Target {
	return []domain.Target{
		{ID: "A", Name: "Tracking", URL: "https://a", APIType: domain.APITrack, Enabled: true},
		{ID: "B", Name: "Estimating", URL: "https://b", APIType: domain.APIEstimate, Enabled: true},
	}
}

func newTestRunner(targets *fakeTargets, probes *fakeProbes, prober *fakeProber, sink *fakeSink, cfg RunnerConfig) *Runner {
	if cfg.Interval == 0 {
		cfg.Interval = time.Minute
	}
	return NewRunner(zap.NewNop(), targets, probes, prober, NewDetector(5*time.Minute), sink, cfg)
}

func TestRunOnce_PersistsBatchWithSharedTimestamp(t *testing.T) {
	probes := &fakeProbes{prev: map[domain.TargetID]bool{}}
	prober := &fakeProber{results: map[domain.TargetID]probe.Outcome{
		"A": {OK: true, HTTPStatus: intp(200)},
		"B": {OK: false, HTTPStatus: intp(503), Error: "[PROD] http 503"},
	}}
	sink := &fakeSink{}
	r := newTestRunner(&fakeTargets{enabled: twoTargets()}, probes, prober, sink, RunnerConfig{})

	r.runOnce(context.Background())

	if len(probes.appended) != 1 || len(probes.appended[0]) != 2 {
		t.Fatalf("want one batch of 2 rows, got %+v", probes.appended)
	}
	rows := probes.appended[0]
	if !rows[0].CheckedAt.Equal(rows[1].CheckedAt) {
		t.Fatalf("rows in one cycle must share a timestamp")
	}
	if rows[0].TargetID != "A" || !rows[0].OK {
		t.Fatalf("row A: %+v", rows[0])
	}
	if rows[1].TargetID != "B" || rows[1].OK || rows[1].Error == "" {
		t.Fatalf("row B: %+v", rows[1])
	}
}

func TestRunOnce_ReadsPreviousStateBeforeAppending(t *testing.T) {
	probes := &fakeProbes{prev: map[domain.TargetID]bool{"A": true, "B": true}}
	prober := &fakeProber{results: map[domain.TargetID]probe.Outcome{
		"A": {OK: false, HTTPStatus: intp(500), Error: "[PROD] http 500"},
		"B": {OK: true, HTTPStatus: intp(200)},
	}}
	sink := &fakeSink{}
	r := newTestRunner(&fakeTargets{enabled: twoTargets()}, probes, prober, sink, RunnerConfig{})

	r.runOnce(context.Background())

	if len(probes.calls) < 2 || probes.calls[0] != "lastok" || probes.calls[1] != "append" {
		t.Fatalf("call order: %v", probes.calls)
	}
	if len(sink.events) != 1 {
		t.Fatalf("want exactly one event, got %+v", sink.events)
	}
	ev := sink.events[0]
	if ev.Type != domain.EventDown || ev.Target.ID != "A" || ev.Reason != "[PROD] http 500" {
		t.Fatalf("event: %+v", ev)
	}
}

func TestRunOnce_FirstCycleNeverAlerts(t *testing.T) {
	// no prior rows at all: everything is a baseline
	probes := &fakeProbes{prev: map[domain.TargetID]bool{}}
	prober := &fakeProber{results: map[domain.TargetID]probe.Outcome{
		"A": {OK: false, Error: "[PROD] connection: refused"},
		"B": {OK: true},
	}}
	sink := &fakeSink{}
	r := newTestRunner(&fakeTargets{enabled: twoTargets()}, probes, prober, sink, RunnerConfig{})

	r.runOnce(context.Background())

	if len(sink.events) != 0 {
		t.Fatalf("baseline cycle must not alert: %+v", sink.events)
	}
}

func TestRunOnce_NoTargetsSkipsEverything(t *testing.T) {
	probes := &fakeProbes{}
	sink := &fakeSink{}
	r := newTestRunner(&fakeTargets{}, probes, &fakeProber{}, sink, RunnerConfig{})

	r.runOnce(context.Background())

	if len(probes.calls) != 0 {
		t.Fatalf("no store access expected: %v", probes.calls)
	}
}

func TestProbeAll_HonoursConcurrencyLimit(t *testing.T) {
	var targets []domain.Target
	results := map[domain.TargetID]probe.Outcome{}
	for _, id := range []domain.TargetID{"A", "B", "C", "D", "E", "F"} {
		targets = append(targets, domain.Target{ID: id, URL: "https://x", APIType: domain.APITrack, Enabled: true})
		results[id] = probe.Outcome{OK: true}
	}
	prober := &fakeProber{results: results}
	r := newTestRunner(&fakeTargets{enabled: targets}, &fakeProbes{}, prober, &fakeSink{}, RunnerConfig{Concurrency: 2})

	out := r.probeAll(context.Background(), targets)

	if len(out) != 6 {
		t.Fatalf("want 6 outcomes, got %d", len(out))
	}
	if prober.peak > 2 {
		t.Fatalf("concurrency limit exceeded: peak %d", prober.peak)
	}
}

func TestMaybeCleanup_RunsOnTimerAndResetsOnFailure(t *testing.T) {
	probes := &fakeProbes{prev: map[domain.TargetID]bool{}}
	r := newTestRunner(&fakeTargets{enabled: twoTargets()}, probes,
		&fakeProber{results: map[domain.TargetID]probe.Outcome{}}, &fakeSink{},
		RunnerConfig{RetentionDays: 14, CleanupEvery: time.Hour})

	clock := time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC)
	r.now = func() time.Time { return clock }

	r.maybeCleanup(context.Background())
	if len(probes.deleted) != 1 {
		t.Fatalf("first call should clean, got %d", len(probes.deleted))
	}
	want := clock.Add(-14 * 24 * time.Hour)
	if !probes.deleted[0].Equal(want) {
		t.Fatalf("cutoff: got %v want %v", probes.deleted[0], want)
	}

	// within the interval: skipped
	clock = clock.Add(30 * time.Minute)
	r.maybeCleanup(context.Background())
	if len(probes.deleted) != 1 {
		t.Fatalf("cleanup must respect the interval")
	}

	// past the interval: runs again even though the last run "failed"
	probes.delErr = context.DeadlineExceeded
	clock = clock.Add(time.Hour)
	r.maybeCleanup(context.Background())
	if len(probes.deleted) != 2 {
		t.Fatalf("cleanup should run after the interval")
	}
	clock = clock.Add(time.Hour)
	r.maybeCleanup(context.Background())
	if len(probes.deleted) != 3 {
		t.Fatalf("failed cleanup still resets the timer, next interval retries")
	}
}

func TestMaybeCleanup_DisabledWithoutRetention(t *testing.T) {
	probes := &fakeProbes{}
	r := newTestRunner(&fakeTargets{}, probes, &fakeProber{}, &fakeSink{}, RunnerConfig{})
	r.maybeCleanup(context.Background())
	if len(probes.deleted) != 0 {
		t.Fatalf("retention disabled, nothing should be deleted")
	}
}
