package domain

import "time"

// ProbeResult is append-only: written once per target per cycle and
// removed only by retention cleanup.
type ProbeResult struct {
	ID         int64     `json:"id"`
	TargetID   TargetID  `json:"target_id"`
	OK         bool      `json:"ok"`
	HTTPStatus *int      `json:"http_status"` // nil when no response was received
	DurationMS *float64  `json:"duration_ms"` // nil when the call was never attempted
	Error      string    `json:"error,omitempty"`
	CheckedAt  time.Time `json:"checked_at"`
}

// DailyRollup is a per-target per-day aggregate maintained by the
// nightly rollup job.
type DailyRollup struct {
	TargetID TargetID  `json:"target_id"`
	Day      time.Time `json:"day"`
	Total    int       `json:"total"`
	OKCount  int       `json:"ok_count"`
	AvgMS    *float64  `json:"avg_ms"`
	P95MS    *float64  `json:"p95_ms"`
}
