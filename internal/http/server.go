package http

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	v1 "joinery/internal/api/v1"
	"joinery/internal/service"
)

type Server struct {
	service *service.Service
	logger  *slog.Logger
}

func NewServer(service *service.Service, logger *slog.Logger) *Server {
	return &Server{service: service, logger: logger}
}

func (s *Server) Routes() http.Handler {
	handler := v1.NewHandler(s.service)

	r := chi.NewRouter()
	r.Use(s.logRequests)

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})
	r.Mount("/api/v1", handler.Routes())

	return r
}

func (s *Server) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		next.ServeHTTP(w, r)
		s.logger.Info("request",
			slog.String("method", r.Method),
			slog.String("path", r.URL.Path),
		)
	})
}
