package httpapi

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"go.uber.org/zap"

	"github.com/hamed0406/healthchecker/internal/availability"
	"github.com/hamed0406/healthchecker/internal/metrics"
	"github.com/hamed0406/healthchecker/internal/scheduler"
)

// Progress is the part of the sweeper the API reports on.
type Progress interface {
	State() scheduler.State
	Sweeps() int64
}

// Server is a read-only view of the running checker.
type Server struct {
	Logger   *zap.Logger
	History  *availability.History
	Progress Progress
}

func NewServer(l *zap.Logger, h *availability.History, p Progress) *Server {
	return &Server{Logger: l, History: h, Progress: p}
}

func (s *Server) Router(allowedOrigins []string) http.Handler {
	r := chi.NewRouter()
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: allowedOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodOptions},
	}))

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("ok"))
	})

	r.Get("/api/availability", s.handleAvailability)
	r.Get("/api/state", s.handleState)
	r.Method(http.MethodGet, "/metrics", metrics.Handler())

	return r
}

func (s *Server) handleAvailability(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, availability.Compute(s.History))
}

type statePayload struct {
	State  string `json:"state"`
	Sweeps int64  `json:"sweeps"`
	Window int    `json:"history_window"`
}

func (s *Server) handleState(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, statePayload{
		State:  s.Progress.State().String(),
		Sweeps: s.Progress.Sweeps(),
		Window: s.History.Window(),
	})
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(v)
}

// ListenAndServe runs the API until the server fails or is shut down.
func (s *Server) ListenAndServe(srv *http.Server) {
	s.Logger.Info("status_api_listen", zap.String("addr", srv.Addr))
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		s.Logger.Error("status_api_error", zap.Error(err))
	}
}
