package repo

import (
	"context"
	"time"

	"github.com/hamed0406/ewsmon/internal/domain"
)

// Ports (interfaces) — swap in any DB adapter later.

type TargetStore interface {
	Add(ctx context.Context, t *domain.Target) error
	List(ctx context.Context) ([]domain.Target, error)
	// ListEnabled is the per-cycle registry snapshot, in stable order.
	ListEnabled(ctx context.Context) ([]domain.Target, error)
	GetByName(ctx context.Context, name string) (*domain.Target, error)
}

type ProbeStore interface {
	// Append inserts one cycle's results as new rows; rows are never
	// updated afterwards.
	Append(ctx context.Context, rows []*domain.ProbeResult) error
	// LastOKByTarget returns the ok flag of the most recent probe per
	// target. Targets with no probe yet are absent from the map.
	LastOKByTarget(ctx context.Context, ids []domain.TargetID) (map[domain.TargetID]bool, error)
	// Latest returns the single most recent row per target.
	Latest(ctx context.Context) ([]domain.ProbeResult, error)
	RecentByTarget(ctx context.Context, id domain.TargetID, limit int) ([]domain.ProbeResult, error)
	// DeleteOlderThan removes rows checked before the cutoff and
	// reports how many went.
	DeleteOlderThan(ctx context.Context, cutoff time.Time) (int64, error)
}

type SubscriptionStore interface {
	ListActive(ctx context.Context) ([]domain.WebhookSubscription, error)
}

type RollupStore interface {
	// AggregateDay (re)computes the rollup rows for one UTC day from
	// the probe rows and reports how many targets were aggregated.
	AggregateDay(ctx context.Context, day time.Time) (int64, error)
	RollupsByTarget(ctx context.Context, id domain.TargetID, limit int) ([]domain.DailyRollup, error)
}
