// Package server exposes the journal over a small JSON API for a browser
// front end. Every response is an envelope carrying the notifications the
// journal emitted while handling the request.
package server

import (
	"context"
	"errors"
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/mux"
	"github.com/rs/cors"
	"go.uber.org/zap"

	"tableflip.dev/diario/pkg/journal"
	"tableflip.dev/diario/pkg/notify"
)

// MaxBodyBytes bounds request bodies.
const MaxBodyBytes = 1 << 20

const shutdownTimeout = 10 * time.Second

// Options configure a Server.
type Options struct {
	// Origins are the CORS allowed origins. Empty allows none.
	Origins []string
	Log     *zap.Logger
}

// Server serializes HTTP access to a journal.Service.
type Server struct {
	mu      sync.Mutex
	svc     *journal.Service
	toasts  *notify.Recorder
	log     *zap.Logger
	origins []string
}

// New wraps svc. toasts must be a notifier of svc.
func New(svc *journal.Service, toasts *notify.Recorder, opts Options) (*Server, error) {
	if svc == nil {
		return nil, errors.New("server: no journal")
	}
	if toasts == nil {
		return nil, errors.New("server: no notification recorder")
	}
	log := opts.Log
	if log == nil {
		log = zap.NewNop()
	}
	return &Server{svc: svc, toasts: toasts, log: log.Named("server"), origins: opts.Origins}, nil
}

// Handler returns the routed, CORS wrapped API.
func (s *Server) Handler() http.Handler {
	r := mux.NewRouter()
	r.Use(logging(s.log))

	r.HandleFunc("/healthz", s.healthz).Methods(http.MethodGet)

	api := r.PathPrefix("/api").Subrouter()
	api.HandleFunc("/dashboard", s.dashboard).Methods(http.MethodGet)
	api.HandleFunc("/calendar", s.calendar).Methods(http.MethodGet)
	api.HandleFunc("/days/{key}", s.day).Methods(http.MethodGet)
	api.HandleFunc("/tasks", s.listTasks).Methods(http.MethodGet)
	api.HandleFunc("/tasks", s.createTask).Methods(http.MethodPost)
	api.HandleFunc("/tasks/migrate", s.migrateTasks).Methods(http.MethodPost)
	api.HandleFunc("/tasks/clear-completed", s.clearCompleted).Methods(http.MethodPost)
	api.HandleFunc("/tasks/{id}/toggle", s.toggleTask).Methods(http.MethodPost)
	api.HandleFunc("/events", s.listEvents).Methods(http.MethodGet)
	api.HandleFunc("/events", s.createEvent).Methods(http.MethodPost)
	api.HandleFunc("/emotions", s.listEmotions).Methods(http.MethodGet)
	api.HandleFunc("/emotions", s.createEmotion).Methods(http.MethodPost)
	api.HandleFunc("/statistics", s.statistics).Methods(http.MethodGet)

	c := cors.New(cors.Options{
		AllowedOrigins: s.origins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders: []string{"Content-Type"},
	})
	return c.Handler(r)
}

// ListenAndServe serves on addr until ctx is done, then shuts down
// gracefully.
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.Handler(),
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      15 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	errc := make(chan error, 1)
	go func() {
		s.log.Info("listening", zap.String("addr", addr))
		errc <- srv.ListenAndServe()
	}()

	select {
	case err := <-errc:
		return err
	case <-ctx.Done():
	}

	s.log.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}
	if err := <-errc; err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

// Reload re-reads the store after another process changed it.
func (s *Server) Reload() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.svc.Reload()
}

// logging records one line per request.
func logging(log *zap.Logger) mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			wrapped := &responseWriter{ResponseWriter: w, statusCode: http.StatusOK}

			next.ServeHTTP(wrapped, r)

			log.Info("http_request",
				zap.String("method", r.Method),
				zap.String("path", r.URL.Path),
				zap.Int("status_code", wrapped.statusCode),
				zap.Int64("duration_ms", time.Since(start).Milliseconds()),
			)
		})
	}
}

type responseWriter struct {
	http.ResponseWriter
	statusCode int
}

func (rw *responseWriter) WriteHeader(code int) {
	rw.statusCode = code
	rw.ResponseWriter.WriteHeader(code)
}
