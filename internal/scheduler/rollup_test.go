package scheduler

import (
	"context"
	"testing"
	"time"

	"go.uber.org/zap"

	"github.com/hamed0406/ewsmon/internal/domain"
	"github.com/hamed0406/ewsmon/internal/repo/memory"
)

func TestRollupJob_AggregatesOneDay(t *testing.T) {
	store := memory.New()
	ms := 120.0
	day := time.Date(2026, 8, 29, 0, 0, 0, 0, time.UTC)
	err := store.Append(context.Background(), []*domain.ProbeResult{
		{TargetID: "A", OK: true, DurationMS: &ms, CheckedAt: day.Add(6 * time.Hour)},
		{TargetID: "A", OK: false, DurationMS: &ms, CheckedAt: day.Add(7 * time.Hour)},
	})
	if err != nil {
		t.Fatalf("seed: %v", err)
	}

	j := NewRollupJob(zap.NewNop(), store)
	j.aggregate(context.Background(), day)

	rus, _ := store.RollupsByTarget(context.Background(), "A", 0)
	if len(rus) != 1 || rus[0].Total != 2 || rus[0].OKCount != 1 {
		t.Fatalf("rollups: %+v", rus)
	}
}
