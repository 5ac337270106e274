package memory

import (
	"context"
	"math"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/hamed0406/ewsmon/internal/domain"
	"github.com/hamed0406/ewsmon/internal/repo"
)

// Store is an in-memory implementation of every repo port, used when no
// DATABASE_URL is configured and as the fake in handler tests.
type Store struct {
	mu      sync.RWMutex
	targets []*domain.Target
	probes  []*domain.ProbeResult
	subs    []domain.WebhookSubscription
	rollups []domain.DailyRollup
	nextID  int64
}

var (
	_ repo.TargetStore       = (*Store)(nil)
	_ repo.ProbeStore        = (*Store)(nil)
	_ repo.SubscriptionStore = (*Store)(nil)
	_ repo.RollupStore       = (*Store)(nil)
)

func New() *Store {
	return &Store{nextID: 1}
}

// ---- TargetStore ----

func (m *Store) Add(ctx context.Context, t *domain.Target) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if t.ID == "" {
		t.ID = domain.TargetID(uuid.NewString())
	}
	if t.CreatedAt.IsZero() {
		t.CreatedAt = time.Now().UTC()
	}
	m.targets = append(m.targets, t)
	return nil
}

func (m *Store) List(ctx context.Context) ([]domain.Target, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]domain.Target, 0, len(m.targets))
	for _, t := range m.targets {
		out = append(out, *t)
	}
	return out, nil
}

func (m *Store) ListEnabled(ctx context.Context) ([]domain.Target, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	var out []domain.Target
	for _, t := range m.targets {
		if t.Enabled {
			out = append(out, *t)
		}
	}
	return out, nil
}

func (m *Store) GetByName(ctx context.Context, name string) (*domain.Target, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	for _, t := range m.targets {
		if t.Name == name {
			cp := *t
			return &cp, nil
		}
	}
	return nil, nil
}

// ---- ProbeStore ----

func (m *Store) Append(ctx context.Context, rows []*domain.ProbeResult) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, r := range rows {
		r.ID = m.nextID
		m.nextID++
		m.probes = append(m.probes, r)
	}
	return nil
}

func (m *Store) LastOKByTarget(ctx context.Context, ids []domain.TargetID) (map[domain.TargetID]bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	wanted := make(map[domain.TargetID]bool, len(ids))
	for _, id := range ids {
		wanted[id] = true
	}
	latest := make(map[domain.TargetID]*domain.ProbeResult)
	for _, r := range m.probes {
		if !wanted[r.TargetID] {
			continue
		}
		cur := latest[r.TargetID]
		if cur == nil || newer(r, cur) {
			latest[r.TargetID] = r
		}
	}
	out := make(map[domain.TargetID]bool, len(latest))
	for id, r := range latest {
		out[id] = r.OK
	}
	return out, nil
}

func (m *Store) Latest(ctx context.Context) ([]domain.ProbeResult, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	latest := make(map[domain.TargetID]*domain.ProbeResult)
	for _, r := range m.probes {
		cur := latest[r.TargetID]
		if cur == nil || newer(r, cur) {
			latest[r.TargetID] = r
		}
	}
	out := make([]domain.ProbeResult, 0, len(latest))
	for _, r := range latest {
		out = append(out, *r)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].TargetID < out[j].TargetID })
	return out, nil
}

func (m *Store) RecentByTarget(ctx context.Context, id domain.TargetID, limit int) ([]domain.ProbeResult, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	var out []domain.ProbeResult
	for _, r := range m.probes {
		if r.TargetID == id {
			out = append(out, *r)
		}
	}
	// most recent first: timestamp, then insertion id
	sort.Slice(out, func(i, j int) bool {
		if !out[i].CheckedAt.Equal(out[j].CheckedAt) {
			return out[i].CheckedAt.After(out[j].CheckedAt)
		}
		return out[i].ID > out[j].ID
	})
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (m *Store) DeleteOlderThan(ctx context.Context, cutoff time.Time) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	kept := m.probes[:0]
	var deleted int64
	for _, r := range m.probes {
		if r.CheckedAt.Before(cutoff) {
			deleted++
			continue
		}
		kept = append(kept, r)
	}
	m.probes = kept
	return deleted, nil
}

func newer(a, b *domain.ProbeResult) bool {
	if !a.CheckedAt.Equal(b.CheckedAt) {
		return a.CheckedAt.After(b.CheckedAt)
	}
	return a.ID > b.ID
}

// ---- SubscriptionStore ----

// AddSubscription exists for tests and the no-DB mode; the admin
// surface owns subscriptions in production.
func (m *Store) AddSubscription(s domain.WebhookSubscription) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if s.ID == "" {
		s.ID = domain.SubscriptionID(uuid.NewString())
	}
	m.subs = append(m.subs, s)
}

func (m *Store) ListActive(ctx context.Context) ([]domain.WebhookSubscription, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	var out []domain.WebhookSubscription
	for _, s := range m.subs {
		if s.Active {
			out = append(out, s)
		}
	}
	return out, nil
}

// ---- RollupStore ----

func (m *Store) AggregateDay(ctx context.Context, day time.Time) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	dayStart := time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, time.UTC)
	dayEnd := dayStart.Add(24 * time.Hour)

	type agg struct {
		total, okCount int
		durations      []float64
	}
	byTarget := make(map[domain.TargetID]*agg)
	for _, r := range m.probes {
		if r.CheckedAt.Before(dayStart) || !r.CheckedAt.Before(dayEnd) {
			continue
		}
		a := byTarget[r.TargetID]
		if a == nil {
			a = &agg{}
			byTarget[r.TargetID] = a
		}
		a.total++
		if r.OK {
			a.okCount++
		}
		if r.DurationMS != nil {
			a.durations = append(a.durations, *r.DurationMS)
		}
	}

	for id, a := range byTarget {
		ru := domain.DailyRollup{TargetID: id, Day: dayStart, Total: a.total, OKCount: a.okCount}
		if n := len(a.durations); n > 0 {
			sort.Float64s(a.durations)
			var sum float64
			for _, d := range a.durations {
				sum += d
			}
			avg := sum / float64(n)
			// nearest-rank p95
			idx := int(math.Ceil(0.95*float64(n))) - 1
			if idx < 0 {
				idx = 0
			}
			p95 := a.durations[idx]
			ru.AvgMS = &avg
			ru.P95MS = &p95
		}
		m.upsertRollup(ru)
	}
	return int64(len(byTarget)), nil
}

func (m *Store) upsertRollup(ru domain.DailyRollup) {
	for i, existing := range m.rollups {
		if existing.TargetID == ru.TargetID && existing.Day.Equal(ru.Day) {
			m.rollups[i] = ru
			return
		}
	}
	m.rollups = append(m.rollups, ru)
}

func (m *Store) RollupsByTarget(ctx context.Context, id domain.TargetID, limit int) ([]domain.DailyRollup, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	var out []domain.DailyRollup
	for _, r := range m.rollups {
		if r.TargetID == id {
			out = append(out, r)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Day.After(out[j].Day) })
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}
