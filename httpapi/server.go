// Package httpapi exposes the rotation engine over HTTP.
//
// The transport layer is deliberately thin: every endpoint maps 1:1 to an
// engine operation, and the only logic that lives here is authentication
// (shared-secret header), CORS, input validation, and JSON serialization.
package httpapi

import (
	"encoding/json"
	"net/http"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	taskbackend "github.com/prajwal2403/task-backend"
	"github.com/prajwal2403/task-backend/internal/logging"
	"github.com/prajwal2403/task-backend/types"
)

// Server wires the engine's operations to HTTP routes.
type Server struct {
	engine *taskbackend.Engine
	cfg    taskbackend.Config
	clock  types.Clock
	logger types.Logger
	day    string
}

// Option configures a Server with optional dependencies.
type Option func(*Server)

// WithClock sets the time source used by the rotation-day and simulate
// endpoints.
func WithClock(clock types.Clock) Option {
	return func(s *Server) {
		s.clock = clock
	}
}

// WithLogger sets a logger.
func WithLogger(logger types.Logger) Option {
	return func(s *Server) {
		s.logger = logger
	}
}

// NewServer creates an HTTP server facade over the engine.
//
// Parameters:
//   - engine: Rotation engine (required)
//   - cfg: Service configuration (HTTP section plus rotation settings)
//   - opts: Optional dependencies (clock, logger)
//
// Returns:
//   - *Server: Initialized server
//   - error: taskbackend.ErrEngineRequired when engine is nil
func NewServer(engine *taskbackend.Engine, cfg taskbackend.Config, opts ...Option) (*Server, error) {
	if engine == nil {
		return nil, taskbackend.ErrEngineRequired
	}

	s := &Server{
		engine: engine,
		cfg:    cfg,
		clock:  types.SystemClock{},
		logger: logging.NewNop(),
		day:    cfg.Weekday().String(),
	}
	for _, opt := range opts {
		opt(s)
	}

	return s, nil
}

// Handler builds the route table with auth and CORS middleware applied.
//
// Routes:
//
//	GET  /assignments   current person→task projection
//	POST /rotate        force a rotation
//	POST /people        add a person (rotates when rotateOnChange is set)
//	POST /tasks         add a task (rotates when rotateOnChange is set)
//	GET  /rotation-day  is today the designated rotation day
//	POST /simulate      evaluate the trigger some days in the future
//	GET  /healthz       liveness probe (unauthenticated)
//	GET  /metrics       Prometheus metrics (unauthenticated, optional)
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /assignments", s.handleAssignments)
	mux.HandleFunc("POST /rotate", s.handleRotate)
	mux.HandleFunc("POST /people", s.handleAddPerson)
	mux.HandleFunc("POST /tasks", s.handleAddTask)
	mux.HandleFunc("GET /rotation-day", s.handleRotationDay)
	mux.HandleFunc("POST /simulate", s.handleSimulate)

	authed := s.withAuth(mux)

	outer := http.NewServeMux()
	outer.HandleFunc("GET /healthz", s.handleHealth)
	if s.cfg.HTTP.EnableMetrics {
		outer.Handle("GET /metrics", promhttp.Handler())
	}
	outer.Handle("/", authed)

	return s.withCORS(outer)
}

func (s *Server) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		s.logger.Error("failed to encode response", "error", err)
	}
}

func (s *Server) writeError(w http.ResponseWriter, status int, msg string) {
	s.writeJSON(w, status, map[string]string{"error": msg})
}
