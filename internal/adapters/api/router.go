// Package api exposes the service over a JSON HTTP API.
package api

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"svw.info/dedoku/internal/usecase"
)

type Server struct {
	uc  *usecase.Service
	log *slog.Logger
}

func NewServer(uc *usecase.Service, log *slog.Logger) *Server {
	return &Server{uc: uc, log: log}
}

// Router builds the API routes with request logging attached.
func (s *Server) Router() chi.Router {
	r := chi.NewRouter()
	r.Use(s.requestLogger)
	r.Route("/api", func(r chi.Router) {
		r.Post("/solve", s.handleSolve)
		r.Post("/validate", s.handleValidate)
		r.Post("/hint", s.handleHint)
		r.Post("/generate", s.handleGenerate)
		r.Route("/puzzles", func(r chi.Router) {
			r.Get("/", s.handleList)
			r.Post("/", s.handleSave)
			r.Get("/{id}", s.handleLoad)
		})
	})
	return r
}

// statusWriter captures HTTP status and bytes written.
type statusWriter struct {
	http.ResponseWriter
	status int
	bytes  int
}

func (w *statusWriter) WriteHeader(code int) {
	w.status = code
	w.ResponseWriter.WriteHeader(code)
}

func (w *statusWriter) Write(b []byte) (int, error) {
	if w.status == 0 {
		w.status = http.StatusOK
	}
	n, err := w.ResponseWriter.Write(b)
	w.bytes += n
	return n, err
}

func (s *Server) requestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		sw := &statusWriter{ResponseWriter: w}
		next.ServeHTTP(sw, r)
		s.log.Info("http",
			"method", r.Method,
			"path", r.URL.Path,
			"status", sw.status,
			"bytes", sw.bytes,
			"dur", time.Since(start).Round(time.Millisecond),
		)
	})
}
