package stubapi

import (
	"context"
	"log/slog"
	"net/http"
	"time"
)

// Server wraps the HTTP server setup for the development stub.
type Server struct {
	httpServer *http.Server
	logger     *slog.Logger
}

// New builds a Server with seeded data and fresh token state.
func New(addr string, logger *slog.Logger) *Server {
	store := newMemoryStore()
	tokens := newTokenManager()
	router := buildRouter(logger, store, tokens)

	httpSrv := &http.Server{
		Addr:              addr,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
	}

	return &Server{
		httpServer: httpSrv,
		logger:     logger,
	}
}

// ListenAndServe starts the HTTP server.
func (s *Server) ListenAndServe() error {
	return s.httpServer.ListenAndServe()
}

// Shutdown gracefully stops the HTTP server.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}
