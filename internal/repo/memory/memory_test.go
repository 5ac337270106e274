package memory

import (
	"context"
	"testing"
	"time"

	"github.com/hamed0406/ewsmon/internal/domain"
)

func intp(i int) *int         { return &i }
func f64p(f float64) *float64 { return &f }
func at(s string) time.Time   { t, _ := time.Parse(time.RFC3339, s); return t }

func TestStore_AddAndListTargets(t *testing.T) {
	ctx := context.Background()
	s := New()

	tgt := &domain.Target{
		Name:    "Purolator Package Tracking Service",
		URL:     "https://webservices.purolator.com/EWS/V1/Tracking/TrackingService.asmx",
		APIType: domain.APITrack,
		Enabled: true,
	}
	if err := s.Add(ctx, tgt); err != nil {
		t.Fatalf("Add: %v", err)
	}
	if tgt.ID == "" {
		t.Fatalf("expected target ID to be set")
	}

	disabled := &domain.Target{Name: "old", URL: "https://x", APIType: domain.APILocate}
	if err := s.Add(ctx, disabled); err != nil {
		t.Fatalf("Add: %v", err)
	}

	enabled, err := s.ListEnabled(ctx)
	if err != nil {
		t.Fatalf("ListEnabled: %v", err)
	}
	if len(enabled) != 1 || enabled[0].Name != tgt.Name {
		t.Fatalf("unexpected enabled targets: %+v", enabled)
	}

	got, err := s.GetByName(ctx, "old")
	if err != nil || got == nil {
		t.Fatalf("GetByName: %v %v", got, err)
	}
	if missing, _ := s.GetByName(ctx, "nope"); missing != nil {
		t.Fatalf("want nil for unknown name")
	}
}

func TestStore_LastOKByTarget_UsesMostRecent(t *testing.T) {
	ctx := context.Background()
	s := New()

	rows := []*domain.ProbeResult{
		{TargetID: "A", OK: true, CheckedAt: at("2026-08-01T10:00:00Z")},
		{TargetID: "A", OK: false, CheckedAt: at("2026-08-01T10:00:10Z")},
		{TargetID: "B", OK: true, CheckedAt: at("2026-08-01T10:00:10Z")},
	}
	if err := s.Append(ctx, rows); err != nil {
		t.Fatalf("Append: %v", err)
	}

	prev, err := s.LastOKByTarget(ctx, []domain.TargetID{"A", "B", "C"})
	if err != nil {
		t.Fatalf("LastOKByTarget: %v", err)
	}
	if ok, present := prev["A"]; !present || ok {
		t.Fatalf("A should be present and down: %+v", prev)
	}
	if ok, present := prev["B"]; !present || !ok {
		t.Fatalf("B should be present and up: %+v", prev)
	}
	if _, present := prev["C"]; present {
		t.Fatalf("C has never been probed, must be absent: %+v", prev)
	}
}

func TestStore_LastOKByTarget_TiesBreakOnInsertionID(t *testing.T) {
	ctx := context.Background()
	s := New()

	same := at("2026-08-01T10:00:00Z")
	if err := s.Append(ctx, []*domain.ProbeResult{
		{TargetID: "A", OK: true, CheckedAt: same},
		{TargetID: "A", OK: false, CheckedAt: same},
	}); err != nil {
		t.Fatalf("Append: %v", err)
	}
	prev, _ := s.LastOKByTarget(ctx, []domain.TargetID{"A"})
	if prev["A"] {
		t.Fatalf("later insertion should win the tie")
	}
}

func TestStore_DeleteOlderThan(t *testing.T) {
	ctx := context.Background()
	s := New()
	cutoff := at("2026-08-10T00:00:00Z")

	if err := s.Append(ctx, []*domain.ProbeResult{
		{TargetID: "A", CheckedAt: cutoff.Add(-time.Second)},
		{TargetID: "A", CheckedAt: cutoff}, // exactly at the cutoff survives
		{TargetID: "A", CheckedAt: cutoff.Add(time.Second)},
	}); err != nil {
		t.Fatalf("Append: %v", err)
	}

	n, err := s.DeleteOlderThan(ctx, cutoff)
	if err != nil {
		t.Fatalf("DeleteOlderThan: %v", err)
	}
	if n != 1 {
		t.Fatalf("want 1 deleted, got %d", n)
	}
	rows, _ := s.RecentByTarget(ctx, "A", 0)
	if len(rows) != 2 {
		t.Fatalf("want 2 surviving rows, got %d", len(rows))
	}
}

func TestStore_RecentByTarget_OrderAndLimit(t *testing.T) {
	ctx := context.Background()
	s := New()
	if err := s.Append(ctx, []*domain.ProbeResult{
		{TargetID: "A", HTTPStatus: intp(200), CheckedAt: at("2026-08-01T10:00:00Z")},
		{TargetID: "A", HTTPStatus: intp(500), CheckedAt: at("2026-08-01T10:00:20Z")},
		{TargetID: "A", HTTPStatus: intp(503), CheckedAt: at("2026-08-01T10:00:10Z")},
	}); err != nil {
		t.Fatalf("Append: %v", err)
	}
	rows, err := s.RecentByTarget(ctx, "A", 2)
	if err != nil {
		t.Fatalf("RecentByTarget: %v", err)
	}
	if len(rows) != 2 || *rows[0].HTTPStatus != 500 || *rows[1].HTTPStatus != 503 {
		t.Fatalf("unexpected order: %+v", rows)
	}
}

func TestStore_Subscriptions(t *testing.T) {
	ctx := context.Background()
	s := New()
	s.AddSubscription(domain.WebhookSubscription{URL: "https://a", Secret: "s1", Events: "down", Active: true})
	s.AddSubscription(domain.WebhookSubscription{URL: "https://b", Secret: "s2", Events: "up,down", Active: false})

	subs, err := s.ListActive(ctx)
	if err != nil {
		t.Fatalf("ListActive: %v", err)
	}
	if len(subs) != 1 || subs[0].URL != "https://a" {
		t.Fatalf("unexpected active subscriptions: %+v", subs)
	}
}

func TestStore_AggregateDay(t *testing.T) {
	ctx := context.Background()
	s := New()
	if err := s.Append(ctx, []*domain.ProbeResult{
		{TargetID: "A", OK: true, DurationMS: f64p(100), CheckedAt: at("2026-08-01T10:00:00Z")},
		{TargetID: "A", OK: false, DurationMS: f64p(300), CheckedAt: at("2026-08-01T11:00:00Z")},
		{TargetID: "A", OK: true, DurationMS: f64p(200), CheckedAt: at("2026-08-02T00:00:01Z")}, // next day
	}); err != nil {
		t.Fatalf("Append: %v", err)
	}

	n, err := s.AggregateDay(ctx, at("2026-08-01T00:00:00Z"))
	if err != nil {
		t.Fatalf("AggregateDay: %v", err)
	}
	if n != 1 {
		t.Fatalf("want 1 target aggregated, got %d", n)
	}

	rus, _ := s.RollupsByTarget(ctx, "A", 0)
	if len(rus) != 1 {
		t.Fatalf("want 1 rollup, got %d", len(rus))
	}
	ru := rus[0]
	if ru.Total != 2 || ru.OKCount != 1 {
		t.Fatalf("bad counts: %+v", ru)
	}
	if ru.AvgMS == nil || *ru.AvgMS != 200 {
		t.Fatalf("bad avg: %+v", ru.AvgMS)
	}
	if ru.P95MS == nil || *ru.P95MS != 300 {
		t.Fatalf("bad p95: %+v", ru.P95MS)
	}

	// re-running the same day replaces, not duplicates
	if _, err := s.AggregateDay(ctx, at("2026-08-01T00:00:00Z")); err != nil {
		t.Fatalf("AggregateDay again: %v", err)
	}
	rus, _ = s.RollupsByTarget(ctx, "A", 0)
	if len(rus) != 1 {
		t.Fatalf("rollup should be upserted, got %d rows", len(rus))
	}
}
