package scheduler

import (
	"sync"
	"time"

	"github.com/hamed0406/ewsmon/internal/domain"
)

type Decision int

const (
	DecideNothing Decision = iota
	DecideDown
	DecideRecovered
)

// Detector turns raw per-cycle probe outcomes into alert decisions.
// A DOWN alert fires on an up-to-down transition, rate limited per
// target by the cooldown. A RECOVERED alert needs two consecutive UP
// cycles after a down, so a single lucky probe never announces
// recovery.
//
// State is in-process only. After a restart the first cycle seeds the
// previous state from storage and never alerts.
type Detector struct {
	mu       sync.Mutex
	cooldown time.Duration
	trackers map[domain.TargetID]*trackerState
	now      func() time.Time
}

type trackerState struct {
	pendingRecovery bool
	lastDownAlert   time.Time
}

func NewDetector(cooldown time.Duration) *Detector {
	return &Detector{
		cooldown: cooldown,
		trackers: make(map[domain.TargetID]*trackerState),
		now:      time.Now,
	}
}

// Observe records one cycle's outcome for a target. prevUp is the
// stored state before this cycle, nil when the target has never been
// probed.
func (d *Detector) Observe(id domain.TargetID, prevUp *bool, currentUp bool) Decision {
	d.mu.Lock()
	defer d.mu.Unlock()

	st := d.trackers[id]
	if st == nil {
		st = &trackerState{}
		d.trackers[id] = st
	}

	if prevUp == nil {
		// First ever observation: establish a baseline, never alert.
		st.pendingRecovery = false
		return DecideNothing
	}

	if !currentUp {
		st.pendingRecovery = false
		if !*prevUp {
			return DecideNothing // still down
		}
		now := d.now()
		if !st.lastDownAlert.IsZero() && now.Sub(st.lastDownAlert) < d.cooldown {
			return DecideNothing // transition within cooldown, stay quiet
		}
		st.lastDownAlert = now
		return DecideDown
	}

	if !*prevUp {
		// First UP after a down. Hold the recovery until it repeats.
		st.pendingRecovery = true
		return DecideNothing
	}
	if st.pendingRecovery {
		st.pendingRecovery = false
		return DecideRecovered
	}
	return DecideNothing
}
