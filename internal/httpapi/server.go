package httpapi

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"go.uber.org/zap"

	"github.com/hamed0406/ewsmon/internal/domain"
	"github.com/hamed0406/ewsmon/internal/httpapi/middleware"
	"github.com/hamed0406/ewsmon/internal/repo"
)

// Server exposes the read-only status API. All mutation happens
// through the worker and the seed tool, so every route here is a GET.
type Server struct {
	Logger  *zap.Logger
	Targets repo.TargetStore
	Probes  repo.ProbeStore
	Rollups repo.RollupStore
}

func NewServer(l *zap.Logger, ts repo.TargetStore, ps repo.ProbeStore, rs repo.RollupStore) *Server {
	return &Server{Logger: l, Targets: ts, Probes: ps, Rollups: rs}
}

func (s *Server) Router() http.Handler {
	r := chi.NewRouter()
	r.Use(cors.AllowAll().Handler)
	r.Use(middleware.RateLimit(120, 60))

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("ok"))
	})

	r.Get("/api/targets", s.handleListTargets)
	r.Get("/api/status", s.handleStatus)
	r.Get("/api/targets/{id}/probes", s.handleTargetProbes)
	r.Get("/api/targets/{id}/rollups", s.handleTargetRollups)

	return r
}

func (s *Server) handleListTargets(w http.ResponseWriter, r *http.Request) {
	ts, err := s.Targets.List(r.Context())
	if err != nil {
		s.Logger.Warn("list_targets_error", zap.Error(err))
		http.Error(w, "list error", http.StatusInternalServerError)
		return
	}
	writeJSON(w, ts)
}

type statusRow struct {
	TargetID    domain.TargetID `json:"target_id"`
	Name        string          `json:"name"`
	URL         string          `json:"url"`
	Environment string          `json:"environment"`
	APIType     domain.APIType  `json:"api_type"`
	Enabled     bool            `json:"enabled"`
	OK          *bool           `json:"ok"`
	HTTPStatus  *int            `json:"http_status"`
	DurationMS  *float64        `json:"duration_ms"`
	Error       string          `json:"error,omitempty"`
	CheckedAt   *time.Time      `json:"checked_at"`
}

// handleStatus joins every target with its most recent probe. Targets
// never probed show null state.
func (s *Server) handleStatus(w http.ResponseWriter, r *http.Request) {
	ts, err := s.Targets.List(r.Context())
	if err != nil {
		s.Logger.Warn("status_targets_error", zap.Error(err))
		http.Error(w, "status error", http.StatusInternalServerError)
		return
	}
	latest, err := s.Probes.Latest(r.Context())
	if err != nil {
		s.Logger.Warn("status_latest_error", zap.Error(err))
		http.Error(w, "status error", http.StatusInternalServerError)
		return
	}
	byID := make(map[domain.TargetID]domain.ProbeResult, len(latest))
	for _, p := range latest {
		byID[p.TargetID] = p
	}

	out := make([]statusRow, 0, len(ts))
	for _, t := range ts {
		row := statusRow{
			TargetID:    t.ID,
			Name:        t.Name,
			URL:         t.URL,
			Environment: string(t.Environment()),
			APIType:     t.APIType,
			Enabled:     t.Enabled,
		}
		if p, seen := byID[t.ID]; seen {
			ok := p.OK
			at := p.CheckedAt
			row.OK = &ok
			row.HTTPStatus = p.HTTPStatus
			row.DurationMS = p.DurationMS
			row.Error = p.Error
			row.CheckedAt = &at
		}
		out = append(out, row)
	}
	writeJSON(w, out)
}

func (s *Server) handleTargetProbes(w http.ResponseWriter, r *http.Request) {
	id := domain.TargetID(chi.URLParam(r, "id"))
	rows, err := s.Probes.RecentByTarget(r.Context(), id, queryLimit(r, 100))
	if err != nil {
		s.Logger.Warn("target_probes_error", zap.String("target_id", string(id)), zap.Error(err))
		http.Error(w, "probes error", http.StatusInternalServerError)
		return
	}
	if rows == nil {
		rows = []domain.ProbeResult{}
	}
	writeJSON(w, rows)
}

func (s *Server) handleTargetRollups(w http.ResponseWriter, r *http.Request) {
	id := domain.TargetID(chi.URLParam(r, "id"))
	rows, err := s.Rollups.RollupsByTarget(r.Context(), id, queryLimit(r, 30))
	if err != nil {
		s.Logger.Warn("target_rollups_error", zap.String("target_id", string(id)), zap.Error(err))
		http.Error(w, "rollups error", http.StatusInternalServerError)
		return
	}
	if rows == nil {
		rows = []domain.DailyRollup{}
	}
	writeJSON(w, rows)
}

func queryLimit(r *http.Request, def int) int {
	raw := r.URL.Query().Get("limit")
	if raw == "" {
		return def
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n <= 0 || n > 1000 {
		return def
	}
	return n
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(v)
}
