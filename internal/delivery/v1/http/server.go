package http

import (
	"context"
	"net/http"

	"github.com/momozvault/go-backend/internal/cfg"
)

// Server fronts the storefront and admin API. Timeouts come from
// HTTPConfig (HTTP_READ_TIMEOUT, HTTP_WRITE_TIMEOUT, KEEP_ALIVE); the
// write timeout bounds multipart product uploads too, so it must stay
// comfortably above typical image transfer time.
type Server struct {
	httpServer *http.Server
}

func NewServer(handler http.Handler, cfg *cfg.HTTPConfig) *Server {
	return &Server{
		httpServer: &http.Server{
			Addr:              ":" + cfg.Port,
			Handler:           handler,
			ReadTimeout:       cfg.ReadTimeout,
			ReadHeaderTimeout: cfg.ReadTimeout,
			WriteTimeout:      cfg.WriteTimeout,
			IdleTimeout:       cfg.IdleTimeout,
		},
	}
}

func (s *Server) Run() error {
	return s.httpServer.ListenAndServe()
}

func (s *Server) Stop(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}
