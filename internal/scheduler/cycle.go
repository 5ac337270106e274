package scheduler

import (
	"context"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/hamed0406/ewsmon/internal/domain"
	"github.com/hamed0406/ewsmon/internal/notify"
	"github.com/hamed0406/ewsmon/internal/probe"
	"github.com/hamed0406/ewsmon/internal/repo"
)

// Prober is the probe side of a cycle, satisfied by probe.Prober.
type Prober interface {
	Probe(ctx context.Context, t domain.Target) probe.Outcome
}

// EventSink receives confirmed state-change events, satisfied by
// notify.Dispatcher.
type EventSink interface {
	Dispatch(ev notify.Event)
	Wait()
}

type RunnerConfig struct {
	Interval      time.Duration
	ProbeTimeout  time.Duration
	Concurrency   int // 0 means one goroutine per target
	RetentionDays int
	CleanupEvery  time.Duration
}

// Runner drives the probe cycle: fan out probes over the enabled
// targets, persist the batch, feed the detector and hand events to the
// sink. Cycles never overlap; a slow cycle delays the next tick.
type Runner struct {
	Logger   *zap.Logger
	Targets  repo.TargetStore
	Probes   repo.ProbeStore
	Prober   Prober
	Detector *Detector
	Events   EventSink
	Cfg      RunnerConfig

	lastCleanup time.Time
	now         func() time.Time
}

func NewRunner(
	logger *zap.Logger,
	targets repo.TargetStore,
	probes repo.ProbeStore,
	prober Prober,
	detector *Detector,
	events EventSink,
	cfg RunnerConfig,
) *Runner {
	if cfg.ProbeTimeout <= 0 {
		cfg.ProbeTimeout = 20 * time.Second
	}
	return &Runner{
		Logger:   logger,
		Targets:  targets,
		Probes:   probes,
		Prober:   prober,
		Detector: detector,
		Events:   events,
		Cfg:      cfg,
		now:      time.Now,
	}
}

// Run does an immediate pass, then one per tick until ctx is cancelled.
func (r *Runner) Run(ctx context.Context) {
	t := time.NewTicker(r.Cfg.Interval)
	defer t.Stop()

	r.runOnce(ctx)

	for {
		select {
		case <-ctx.Done():
			r.Logger.Info("runner_stopped")
			return
		case <-t.C:
			r.runOnce(ctx)
		}
	}
}

func (r *Runner) runOnce(ctx context.Context) {
	start := r.now()

	targets, err := r.Targets.ListEnabled(ctx)
	if err != nil {
		r.Logger.Warn("cycle_list_error", zap.Error(err))
		return
	}
	if len(targets) == 0 {
		r.Logger.Warn("cycle_no_targets")
		return
	}

	outcomes := r.probeAll(ctx, targets)

	// Previous states must come from storage before this cycle's rows
	// land, or every probe would compare against itself.
	ids := make([]domain.TargetID, len(targets))
	for i, t := range targets {
		ids[i] = t.ID
	}
	prev, err := r.Probes.LastOKByTarget(ctx, ids)
	if err != nil {
		r.Logger.Warn("cycle_prev_state_error", zap.Error(err))
		return
	}

	checkedAt := r.now().UTC()
	rows := make([]*domain.ProbeResult, len(targets))
	for i, t := range targets {
		out := outcomes[i]
		rows[i] = &domain.ProbeResult{
			TargetID:   t.ID,
			OK:         out.OK,
			HTTPStatus: out.HTTPStatus,
			DurationMS: out.DurationMS,
			Error:      out.Error,
			CheckedAt:  checkedAt,
		}
	}
	if err := r.Probes.Append(ctx, rows); err != nil {
		// Alerts still go out; the history just has a gap.
		r.Logger.Warn("cycle_append_error", zap.Error(err))
	}

	var downs, ups int
	for i, t := range targets {
		out := outcomes[i]
		var prevUp *bool
		if v, seen := prev[t.ID]; seen {
			vv := v
			prevUp = &vv
		}
		switch r.Detector.Observe(t.ID, prevUp, out.OK) {
		case DecideDown:
			downs++
			r.Events.Dispatch(notify.Event{
				Type:       domain.EventDown,
				Target:     t,
				HTTPStatus: out.HTTPStatus,
				DurationMS: out.DurationMS,
				Reason:     out.Error,
				When:       checkedAt,
			})
		case DecideRecovered:
			ups++
			r.Events.Dispatch(notify.Event{
				Type:       domain.EventUp,
				Target:     t,
				HTTPStatus: out.HTTPStatus,
				DurationMS: out.DurationMS,
				When:       checkedAt,
			})
		}
	}

	r.maybeCleanup(ctx)
	r.Events.Wait()

	var failed int
	for _, out := range outcomes {
		if !out.OK {
			failed++
		}
	}
	r.Logger.Info("cycle_completed",
		zap.Int("targets", len(targets)),
		zap.Int("failed", failed),
		zap.Int("down_alerts", downs),
		zap.Int("recovered_alerts", ups),
		zap.Duration("took", r.now().Sub(start)),
	)
}

func (r *Runner) probeAll(ctx context.Context, targets []domain.Target) []probe.Outcome {
	limit := r.Cfg.Concurrency
	if limit <= 0 || limit > len(targets) {
		limit = len(targets)
	}
	sem := make(chan struct{}, limit)
	outcomes := make([]probe.Outcome, len(targets))
	var wg sync.WaitGroup

	for i, tgt := range targets {
		i, t := i, tgt
		sem <- struct{}{}
		wg.Add(1)
		go func() {
			defer func() { <-sem }()
			defer wg.Done()

			cctx, cancel := context.WithTimeout(ctx, r.Cfg.ProbeTimeout)
			defer cancel()
			outcomes[i] = r.Prober.Probe(cctx, t)
		}()
	}
	wg.Wait()
	return outcomes
}

// maybeCleanup prunes expired probe rows at most once per CleanupEvery.
// The timer resets even when the delete fails so a broken store does
// not turn into a hot loop.
func (r *Runner) maybeCleanup(ctx context.Context) {
	if r.Cfg.RetentionDays <= 0 || r.Cfg.CleanupEvery <= 0 {
		return
	}
	now := r.now()
	if !r.lastCleanup.IsZero() && now.Sub(r.lastCleanup) < r.Cfg.CleanupEvery {
		return
	}
	r.lastCleanup = now

	cutoff := now.UTC().Add(-time.Duration(r.Cfg.RetentionDays) * 24 * time.Hour)
	n, err := r.Probes.DeleteOlderThan(ctx, cutoff)
	if err != nil {
		r.Logger.Warn("cleanup_error", zap.Error(err))
		return
	}
	r.Logger.Info("cleanup_completed",
		zap.Int64("deleted", n),
		zap.Time("cutoff", cutoff),
	)
}
