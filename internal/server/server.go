// Package server exposes the habit store over the local REST API.
package server

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/hy4ri/habitflow/internal/store"
)

// Server serves the REST API for a Store.
type Server struct {
	store  *store.Store
	log    *zap.Logger
	router chi.Router
	http   *http.Server
}

// New builds a server listening on addr.
func New(addr string, st *store.Store, log *zap.Logger) *Server {
	if log == nil {
		log = zap.NewNop()
	}
	s := &Server{store: st, log: log}
	s.router = s.routes()
	s.http = &http.Server{
		Addr:              addr,
		Handler:           s.router,
		ReadHeaderTimeout: 5 * time.Second,
	}
	return s
}

// Handler returns the root HTTP handler.
func (s *Server) Handler() http.Handler {
	return s.router
}

// Addr returns the listen address.
func (s *Server) Addr() string {
	return s.http.Addr
}

func (s *Server) routes() chi.Router {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)
	r.Use(s.logRequests)
	r.Use(observeDuration)

	r.Get("/health", s.handleHealth)
	r.Method(http.MethodGet, "/metrics", promhttp.Handler())

	r.Route("/api", func(r chi.Router) {
		r.Get("/stats", s.handleStats)
		r.Get("/stats/weekly", s.handleWeeklyStats)

		r.Route("/habits", func(r chi.Router) {
			r.Get("/", s.handleListHabits)
			r.Post("/", s.handleCreateHabit)
			r.Post("/reorder", s.handleReorderHabits)
			r.Get("/calendar/{year}/{month}", s.handleCalendar)
			r.Post("/{id}/toggle", s.handleToggleHabit)
			r.Delete("/{id}", s.handleDeleteHabit)
		})

		r.Route("/tasks", func(r chi.Router) {
			r.Post("/", s.handleCreateTask)
			r.Get("/{date}", s.handleListTasks)
			r.Post("/{id}/toggle", s.handleToggleTask)
			r.Delete("/{id}", s.handleDeleteTask)
		})

		r.Route("/reports", func(r chi.Router) {
			r.Get("/analytics", s.handleAnalytics)
			r.Get("/monthly/{year}/{month}", s.handleMonthlyTrends)
			r.Get("/daily/{date}", s.handleDailyReport)
		})

		r.Get("/settings/{key}", s.handleGetSetting)
		r.Post("/settings/{key}", s.handleSetSetting)
	})
	return r
}

// Start serves until Shutdown is called. It returns nil after a clean shutdown.
func (s *Server) Start() error {
	s.log.Info("HTTP server starting", zap.String("addr", s.http.Addr))
	if err := s.http.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

// Shutdown stops accepting requests and waits for in-flight ones.
func (s *Server) Shutdown(ctx context.Context) error {
	s.log.Info("Shutting down HTTP server")
	return s.http.Shutdown(ctx)
}
