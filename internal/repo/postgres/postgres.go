package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"

	"github.com/hamed0406/ewsmon/internal/domain"
	"github.com/hamed0406/ewsmon/internal/repo"
)

var (
	_ repo.TargetStore       = (*Store)(nil)
	_ repo.ProbeStore        = (*Store)(nil)
	_ repo.SubscriptionStore = (*Store)(nil)
	_ repo.RollupStore       = (*Store)(nil)
)

type Store struct {
	pool *pgxpool.Pool
	log  *zap.Logger
}

func New(ctx context.Context, dsn string, log *zap.Logger) (*Store, error) {
	pool, err := pgxpool.New(ctx, dsn)
	if err != nil {
		return nil, fmt.Errorf("pgxpool.New: %w", err)
	}
	ctxPing, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := pool.Ping(ctxPing); err != nil {
		pool.Close()
		return nil, fmt.Errorf("ping: %w", err)
	}
	return &Store{pool: pool, log: log}, nil
}

func (s *Store) Close() {
	if s.pool != nil {
		s.pool.Close()
	}
}

// InitSchema creates the tables if they are missing. Schema changes
// beyond this are applied by hand.
func (s *Store) InitSchema(ctx context.Context) error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS targets (
			id          TEXT PRIMARY KEY,
			name        TEXT NOT NULL UNIQUE,
			url         TEXT NOT NULL,
			soap_action TEXT NOT NULL DEFAULT '',
			api_type    TEXT NOT NULL,
			enabled     BOOLEAN NOT NULL DEFAULT TRUE,
			created_at  TIMESTAMPTZ NOT NULL
		)`,
		`CREATE TABLE IF NOT EXISTS probes (
			id          BIGSERIAL PRIMARY KEY,
			target_id   TEXT NOT NULL REFERENCES targets(id),
			ok          BOOLEAN NOT NULL,
			http_status INT,
			duration_ms DOUBLE PRECISION,
			error       TEXT NOT NULL DEFAULT '',
			checked_at  TIMESTAMPTZ NOT NULL
		)`,
		`CREATE INDEX IF NOT EXISTS probes_target_checked_idx
			ON probes (target_id, checked_at DESC, id DESC)`,
		`CREATE TABLE IF NOT EXISTS webhook_subscriptions (
			id         TEXT PRIMARY KEY,
			url        TEXT NOT NULL,
			secret     TEXT NOT NULL,
			events     TEXT NOT NULL DEFAULT 'up,down',
			active     BOOLEAN NOT NULL DEFAULT TRUE,
			created_at TIMESTAMPTZ NOT NULL
		)`,
		`CREATE TABLE IF NOT EXISTS daily_rollups (
			target_id TEXT NOT NULL REFERENCES targets(id),
			day       DATE NOT NULL,
			total     INT NOT NULL,
			ok_count  INT NOT NULL,
			avg_ms    DOUBLE PRECISION,
			p95_ms    DOUBLE PRECISION,
			PRIMARY KEY (target_id, day)
		)`,
	}
	for _, stmt := range stmts {
		if _, err := s.pool.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("init schema: %w", err)
		}
	}
	return nil
}

// ---- TargetStore ----

func (s *Store) Add(ctx context.Context, t *domain.Target) error {
	if t.ID == "" {
		t.ID = domain.TargetID(uuid.NewString())
	}
	if t.CreatedAt.IsZero() {
		t.CreatedAt = time.Now().UTC()
	}
	_, err := s.pool.Exec(ctx,
		`INSERT INTO targets (id, name, url, soap_action, api_type, enabled, created_at)
		 VALUES ($1,$2,$3,$4,$5,$6,$7)`,
		string(t.ID), t.Name, t.URL, t.SOAPAction, string(t.APIType), t.Enabled, t.CreatedAt)
	if err != nil {
		return fmt.Errorf("insert target: %w", err)
	}
	return nil
}

func (s *Store) List(ctx context.Context) ([]domain.Target, error) {
	return s.listTargets(ctx,
		`SELECT id, name, url, soap_action, api_type, enabled, created_at
		   FROM targets
		  ORDER BY name`)
}

func (s *Store) ListEnabled(ctx context.Context) ([]domain.Target, error) {
	return s.listTargets(ctx,
		`SELECT id, name, url, soap_action, api_type, enabled, created_at
		   FROM targets
		  WHERE enabled
		  ORDER BY name`)
}

func (s *Store) listTargets(ctx context.Context, q string) ([]domain.Target, error) {
	rows, err := s.pool.Query(ctx, q)
	if err != nil {
		return nil, fmt.Errorf("list targets: %w", err)
	}
	defer rows.Close()

	var out []domain.Target
	for rows.Next() {
		var t domain.Target
		if err := rows.Scan(&t.ID, &t.Name, &t.URL, &t.SOAPAction, &t.APIType, &t.Enabled, &t.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan target: %w", err)
		}
		out = append(out, t)
	}
	return out, rows.Err()
}

func (s *Store) GetByName(ctx context.Context, name string) (*domain.Target, error) {
	row := s.pool.QueryRow(ctx,
		`SELECT id, name, url, soap_action, api_type, enabled, created_at
		   FROM targets
		  WHERE name = $1`, name)
	var t domain.Target
	err := row.Scan(&t.ID, &t.Name, &t.URL, &t.SOAPAction, &t.APIType, &t.Enabled, &t.CreatedAt)
	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get target by name: %w", err)
	}
	return &t, nil
}

// ---- ProbeStore ----

func (s *Store) Append(ctx context.Context, probes []*domain.ProbeResult) error {
	if len(probes) == 0 {
		return nil
	}
	batch := &pgx.Batch{}
	for _, r := range probes {
		batch.Queue(
			`INSERT INTO probes (target_id, ok, http_status, duration_ms, error, checked_at)
			 VALUES ($1,$2,$3,$4,$5,$6)
			 RETURNING id`,
			string(r.TargetID), r.OK, r.HTTPStatus, r.DurationMS, r.Error, r.CheckedAt)
	}
	br := s.pool.SendBatch(ctx, batch)
	defer br.Close()
	for _, r := range probes {
		if err := br.QueryRow().Scan(&r.ID); err != nil {
			return fmt.Errorf("insert probe for %s: %w", r.TargetID, err)
		}
	}
	return nil
}

func (s *Store) LastOKByTarget(ctx context.Context, ids []domain.TargetID) (map[domain.TargetID]bool, error) {
	strs := make([]string, len(ids))
	for i, id := range ids {
		strs[i] = string(id)
	}
	rows, err := s.pool.Query(ctx, `
SELECT DISTINCT ON (target_id) target_id, ok
  FROM probes
 WHERE target_id = ANY($1)
 ORDER BY target_id, checked_at DESC, id DESC`, strs)
	if err != nil {
		return nil, fmt.Errorf("last ok by target: %w", err)
	}
	defer rows.Close()

	out := make(map[domain.TargetID]bool, len(ids))
	for rows.Next() {
		var id string
		var ok bool
		if err := rows.Scan(&id, &ok); err != nil {
			return nil, fmt.Errorf("scan last ok: %w", err)
		}
		out[domain.TargetID(id)] = ok
	}
	return out, rows.Err()
}

func (s *Store) Latest(ctx context.Context) ([]domain.ProbeResult, error) {
	rows, err := s.pool.Query(ctx, `
SELECT DISTINCT ON (target_id)
       id, target_id, ok, http_status, duration_ms, error, checked_at
  FROM probes
 ORDER BY target_id, checked_at DESC, id DESC`)
	if err != nil {
		return nil, fmt.Errorf("latest: %w", err)
	}
	defer rows.Close()
	return scanProbes(rows)
}

func (s *Store) RecentByTarget(ctx context.Context, id domain.TargetID, limit int) ([]domain.ProbeResult, error) {
	if limit <= 0 {
		limit = 100
	}
	rows, err := s.pool.Query(ctx,
		`SELECT id, target_id, ok, http_status, duration_ms, error, checked_at
		   FROM probes
		  WHERE target_id = $1
		  ORDER BY checked_at DESC, id DESC
		  LIMIT $2`, string(id), limit)
	if err != nil {
		return nil, fmt.Errorf("recent by target: %w", err)
	}
	defer rows.Close()
	return scanProbes(rows)
}

func scanProbes(rows pgx.Rows) ([]domain.ProbeResult, error) {
	var out []domain.ProbeResult
	for rows.Next() {
		var r domain.ProbeResult
		if err := rows.Scan(&r.ID, &r.TargetID, &r.OK, &r.HTTPStatus, &r.DurationMS, &r.Error, &r.CheckedAt); err != nil {
			return nil, fmt.Errorf("scan probe: %w", err)
		}
		out = append(out, r)
	}
	return out, rows.Err()
}

func (s *Store) DeleteOlderThan(ctx context.Context, cutoff time.Time) (int64, error) {
	tag, err := s.pool.Exec(ctx, `DELETE FROM probes WHERE checked_at < $1`, cutoff)
	if err != nil {
		return 0, fmt.Errorf("delete old probes: %w", err)
	}
	return tag.RowsAffected(), nil
}

// ---- SubscriptionStore ----

func (s *Store) ListActive(ctx context.Context) ([]domain.WebhookSubscription, error) {
	rows, err := s.pool.Query(ctx,
		`SELECT id, url, secret, events, active, created_at
		   FROM webhook_subscriptions
		  WHERE active
		  ORDER BY created_at`)
	if err != nil {
		return nil, fmt.Errorf("list subscriptions: %w", err)
	}
	defer rows.Close()

	var out []domain.WebhookSubscription
	for rows.Next() {
		var ws domain.WebhookSubscription
		if err := rows.Scan(&ws.ID, &ws.URL, &ws.Secret, &ws.Events, &ws.Active, &ws.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan subscription: %w", err)
		}
		out = append(out, ws)
	}
	return out, rows.Err()
}

// ---- RollupStore ----

func (s *Store) AggregateDay(ctx context.Context, day time.Time) (int64, error) {
	dayStart := time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, time.UTC)
	tag, err := s.pool.Exec(ctx, `
INSERT INTO daily_rollups (target_id, day, total, ok_count, avg_ms, p95_ms)
SELECT target_id,
       $1::date,
       COUNT(*),
       COUNT(*) FILTER (WHERE ok),
       AVG(duration_ms),
       percentile_cont(0.95) WITHIN GROUP (ORDER BY duration_ms)
  FROM probes
 WHERE checked_at >= $1 AND checked_at < $1 + INTERVAL '1 day'
 GROUP BY target_id
ON CONFLICT (target_id, day) DO UPDATE SET
   total    = EXCLUDED.total,
   ok_count = EXCLUDED.ok_count,
   avg_ms   = EXCLUDED.avg_ms,
   p95_ms   = EXCLUDED.p95_ms`, dayStart)
	if err != nil {
		return 0, fmt.Errorf("aggregate day: %w", err)
	}
	return tag.RowsAffected(), nil
}

func (s *Store) RollupsByTarget(ctx context.Context, id domain.TargetID, limit int) ([]domain.DailyRollup, error) {
	if limit <= 0 {
		limit = 30
	}
	rows, err := s.pool.Query(ctx,
		`SELECT target_id, day, total, ok_count, avg_ms, p95_ms
		   FROM daily_rollups
		  WHERE target_id = $1
		  ORDER BY day DESC
		  LIMIT $2`, string(id), limit)
	if err != nil {
		return nil, fmt.Errorf("rollups by target: %w", err)
	}
	defer rows.Close()

	var out []domain.DailyRollup
	for rows.Next() {
		var ru domain.DailyRollup
		if err := rows.Scan(&ru.TargetID, &ru.Day, &ru.Total, &ru.OKCount, &ru.AvgMS, &ru.P95MS); err != nil {
			return nil, fmt.Errorf("scan rollup: %w", err)
		}
		out = append(out, ru)
	}
	return out, rows.Err()
}
