package http

import (
	"context"
	"errors"
	stdhttp "net/http"
	"time"

	"gitpulse/internal/platform/config"
	"gitpulse/internal/platform/logger"

	"github.com/go-chi/chi/v5"
)

// Server wraps chi and the stdlib http.Server. The listen address comes
// from the PORT key of the Conf scope it is built with (CORE_API_PORT in
// the api binary)
type Server struct {
	addr string
	mux  *chi.Mux
	srv  *stdhttp.Server
}

// NewServer builds the server; opts receive the *chi.Mux for early mounting
func NewServer(cfg config.Conf, opts ...func(*chi.Mux)) *Server {
	addr := cfg.MayString("PORT", ":4000")
	m := chi.NewRouter()
	for _, o := range opts {
		o(m)
	}
	return &Server{
		addr: addr,
		mux:  m,
		srv: &stdhttp.Server{
			Addr:              addr,
			Handler:           m,
			ReadHeaderTimeout: 10 * time.Second,
		},
	}
}

// Router returns a Router facade over the internal chi mux
func (s *Server) Router() Router {
	return AdaptChi(s.mux)
}

// Addr returns the listening address
func (s *Server) Addr() string { return s.addr }

// Run starts the server and blocks until it stops; a clean close is not an error
func (s *Server) Run(ctx context.Context) error {
	logger.Named("http").Info().Str("addr", s.addr).Msg("http listening")
	if err := s.srv.ListenAndServe(); !errors.Is(err, stdhttp.ErrServerClosed) {
		return err
	}
	return nil
}

// Shutdown stops the server gracefully
func (s *Server) Shutdown(ctx context.Context) error {
	return s.srv.Shutdown(ctx)
}
