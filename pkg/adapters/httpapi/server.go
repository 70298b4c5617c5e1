package httpapi

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/canopyhq/canopy/internal/metrics"
	"github.com/canopyhq/canopy/pkg/disruption"
	"github.com/canopyhq/canopy/pkg/domain"
	"github.com/canopyhq/canopy/pkg/ports"
	"github.com/go-chi/chi/v5"
)

// Engine defines the interface the HTTP layer needs from the canopy core.
type Engine interface {
	Evaluate(ctx context.Context) (*domain.Snapshot, error)
	EvaluateScores(scores map[string]float64) *domain.Snapshot
	Trace(snap *domain.Snapshot, nodeID string) ([]domain.ScoredNode, error)
	Inspect() []domain.TreeNode
}

// Server exposes the presentation surface: snapshot, alerts, traces,
// tree introspection, and disruption simulation.
type Server struct {
	engine   Engine
	provider ports.ScoreProvider
	store    ports.SnapshotStore
	metrics  *metrics.Metrics
	logger   *slog.Logger
}

// ServerOption configures optional collaborators of the server.
type ServerOption func(*Server)

// WithSnapshotStore enables the GET /api/v1/history endpoint.
func WithSnapshotStore(store ports.SnapshotStore) ServerOption {
	return func(s *Server) {
		s.store = store
	}
}

// WithMetrics records evaluation metrics on every snapshot request.
func WithMetrics(m *metrics.Metrics) ServerOption {
	return func(s *Server) {
		s.metrics = m
	}
}

// WithLogger sets the request logger.
func WithLogger(logger *slog.Logger) ServerOption {
	return func(s *Server) {
		s.logger = logger
	}
}

// NewHandler builds the HTTP handler. provider is needed only for the
// simulate endpoint; pass nil to disable it.
func NewHandler(engine Engine, provider ports.ScoreProvider, metricsHandler http.Handler, opts ...ServerOption) http.Handler {
	s := &Server{
		engine:   engine,
		provider: provider,
		logger:   slog.Default(),
	}
	for _, opt := range opts {
		opt(s)
	}

	r := chi.NewRouter()
	r.Get("/healthz", s.getHealthz)
	if metricsHandler != nil {
		r.Handle("/metrics", metricsHandler)
	}

	r.Route("/api/v1", func(r chi.Router) {
		r.Get("/tree", s.getTree)
		r.Get("/snapshot", s.getSnapshot)
		r.Get("/alerts", s.getAlerts)
		r.Get("/trace/{nodeID}", s.getTrace)
		r.Post("/simulate", s.postSimulate)
		if s.store != nil {
			r.Get("/history", s.getHistory)
		}
	})

	return enableCORS(r)
}

func enableCORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type")
		if r.Method == "OPTIONS" {
			w.WriteHeader(http.StatusOK)
			return
		}
		next.ServeHTTP(w, r)
	})
}

func (s *Server) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		s.logger.Error("response encode failed", "error", err)
	}
}

func (s *Server) writeError(w http.ResponseWriter, status int, msg string) {
	s.writeJSON(w, status, map[string]string{"error": msg})
}

// getHealthz handles GET /healthz.
func (s *Server) getHealthz(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// getTree handles GET /api/v1/tree.
func (s *Server) getTree(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, http.StatusOK, s.engine.Inspect())
}

func (s *Server) evaluate(ctx context.Context) (*domain.Snapshot, error) {
	started := time.Now()
	snap, err := s.engine.Evaluate(ctx)
	if err != nil {
		return nil, err
	}
	s.metrics.ObserveSnapshot(snap, time.Since(started))
	return snap, nil
}

// getSnapshot handles GET /api/v1/snapshot: a fresh evaluation of the
// full scored tree.
func (s *Server) getSnapshot(w http.ResponseWriter, r *http.Request) {
	snap, err := s.evaluate(r.Context())
	if err != nil {
		s.logger.Error("snapshot evaluation failed", "error", err)
		s.writeError(w, http.StatusInternalServerError, "evaluation failed")
		return
	}
	s.writeJSON(w, http.StatusOK, snap)
}

// getAlerts handles GET /api/v1/alerts.
func (s *Server) getAlerts(w http.ResponseWriter, r *http.Request) {
	snap, err := s.evaluate(r.Context())
	if err != nil {
		s.logger.Error("alert evaluation failed", "error", err)
		s.writeError(w, http.StatusInternalServerError, "evaluation failed")
		return
	}
	s.writeJSON(w, http.StatusOK, snap.Alerts)
}

// getTrace handles GET /api/v1/trace/{nodeID}: the root-cause path for
// an arbitrary node within a fresh evaluation.
func (s *Server) getTrace(w http.ResponseWriter, r *http.Request) {
	nodeID := chi.URLParam(r, "nodeID")

	snap, err := s.evaluate(r.Context())
	if err != nil {
		s.logger.Error("trace evaluation failed", "error", err)
		s.writeError(w, http.StatusInternalServerError, "evaluation failed")
		return
	}

	path, err := s.engine.Trace(snap, nodeID)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrUnknownNode):
			s.writeError(w, http.StatusNotFound, "unknown node: "+nodeID)
		case errors.Is(err, domain.ErrNodeUnscored):
			s.writeError(w, http.StatusUnprocessableEntity, "node has no score in this evaluation: "+nodeID)
		default:
			s.logger.Error("trace failed", "node_id", nodeID, "error", err)
			s.writeError(w, http.StatusInternalServerError, "trace failed")
		}
		return
	}
	s.writeJSON(w, http.StatusOK, path)
}

// postSimulate handles POST /api/v1/simulate: evaluates the tree with a
// disruption scenario applied to the current leaf scores. The live
// provider data is never modified.
func (s *Server) postSimulate(w http.ResponseWriter, r *http.Request) {
	if s.provider == nil {
		s.writeError(w, http.StatusNotImplemented, "no score provider configured")
		return
	}

	var scenario disruption.Scenario
	if err := json.NewDecoder(r.Body).Decode(&scenario); err != nil {
		s.logger.Warn("simulate: invalid request body", "error", err)
		s.writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := scenario.Validate(); err != nil {
		s.writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	scores, err := s.provider.Scores(r.Context())
	if err != nil {
		s.logger.Error("simulate: score fetch failed", "error", err)
		s.writeError(w, http.StatusInternalServerError, "failed to fetch leaf scores")
		return
	}

	snap := s.engine.EvaluateScores(scenario.Apply(scores))
	s.writeJSON(w, http.StatusOK, snap)
}

// getHistory handles GET /api/v1/history?limit=N from the snapshot store.
func (s *Server) getHistory(w http.ResponseWriter, r *http.Request) {
	limit := 10
	if q := r.URL.Query().Get("limit"); q != "" {
		n, err := strconv.Atoi(q)
		if err != nil || n <= 0 {
			s.writeError(w, http.StatusBadRequest, "limit must be a positive integer")
			return
		}
		limit = n
	}

	hist, err := s.store.History(r.Context(), limit)
	if err != nil {
		s.logger.Error("history fetch failed", "error", err)
		s.writeError(w, http.StatusInternalServerError, "failed to fetch history")
		return
	}
	s.writeJSON(w, http.StatusOK, hist)
}
