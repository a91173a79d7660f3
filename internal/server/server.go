// Package server exposes an editing session over HTTP.
//
// The server owns one [editor.Editor] and serializes every request on it,
// so a browser front end can drive the same operations as the CLI. All
// responses are JSON except the diagram export. Errors carry the editor's
// error code:
//
//	{"error": {"code": "NOT_FOUND", "message": "dot 7f3c... not found"}}
package server

import (
	"context"
	"net"
	"net/http"
	"sync"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/waypoint/pkg/config"
	"github.com/matzehuels/waypoint/pkg/editor"
)

// Server is the HTTP adapter over one editing session.
type Server struct {
	mu     sync.Mutex
	ed     *editor.Editor
	logger *log.Logger
	cfg    config.ServerConfig
}

// New creates a server for ed.
func New(ed *editor.Editor, logger *log.Logger, cfg config.ServerConfig) *Server {
	if logger == nil {
		logger = log.Default()
	}
	return &Server{ed: ed, logger: logger, cfg: cfg}
}

// Run listens on the configured address until ctx is canceled, then shuts
// down gracefully within the configured timeout.
func (s *Server) Run(ctx context.Context) error {
	ln, err := net.Listen("tcp", s.cfg.Addr)
	if err != nil {
		return err
	}
	return s.Serve(ctx, ln)
}

// Serve is Run on an existing listener.
func (s *Server) Serve(ctx context.Context, ln net.Listener) error {
	srv := &http.Server{
		Handler:           s.Handler(),
		ReadHeaderTimeout: 5 * time.Second,
	}

	errc := make(chan error, 1)
	go func() {
		s.logger.Info("listening", "addr", ln.Addr().String())
		errc <- srv.Serve(ln)
	}()

	select {
	case err := <-errc:
		if err == http.ErrServerClosed {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	s.logger.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), s.cfg.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}
	if err := <-errc; err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}

// locked runs fn with exclusive access to the editor.
func (s *Server) locked(fn func(ed *editor.Editor)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	fn(s.ed)
}
