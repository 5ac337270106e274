package scheduler

import (
	"context"
	"time"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"

	"github.com/hamed0406/ewsmon/internal/repo"
)

// RollupJob recomputes yesterday's per-target daily stats shortly after
// midnight UTC. Re-runs are safe, the aggregation upserts.
type RollupJob struct {
	Logger  *zap.Logger
	Rollups repo.RollupStore

	cron *cron.Cron
	now  func() time.Time
}

func NewRollupJob(logger *zap.Logger, rollups repo.RollupStore) *RollupJob {
	return &RollupJob{
		Logger:  logger,
		Rollups: rollups,
		cron:    cron.New(cron.WithLocation(time.UTC)),
		now:     time.Now,
	}
}

func (j *RollupJob) Start() error {
	_, err := j.cron.AddFunc("15 0 * * *", func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
		defer cancel()
		j.aggregate(ctx, j.now().UTC().AddDate(0, 0, -1))
	})
	if err != nil {
		return err
	}
	j.cron.Start()
	return nil
}

func (j *RollupJob) Stop() {
	if j.cron != nil {
		<-j.cron.Stop().Done()
	}
}

func (j *RollupJob) aggregate(ctx context.Context, day time.Time) {
	n, err := j.Rollups.AggregateDay(ctx, day)
	if err != nil {
		j.Logger.Warn("rollup_error",
			zap.Time("day", day),
			zap.Error(err))
		return
	}
	j.Logger.Info("rollup_completed",
		zap.String("day", day.Format("2006-01-02")),
		zap.Int64("targets", n))
}
