package server

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/ironsheep/color-detect/internal/config"
	"github.com/ironsheep/color-detect/internal/imaging"
	"github.com/ironsheep/color-detect/internal/resolver"
)

// Server serves the color detection API over HTTP.
type Server struct {
	cfg      *config.Config
	logger   *zap.SugaredLogger
	resolver *resolver.Resolver
	engine   *gin.Engine
	version  string
}

// New creates a server from cfg. The gin mode is process-wide and is
// expected to be set by the caller before New.
func New(cfg *config.Config, logger *zap.SugaredLogger, version string) *Server {
	if logger == nil {
		logger = zap.NewNop().Sugar()
	}

	s := &Server{
		cfg:    cfg,
		logger: logger,
		resolver: resolver.New(imaging.DecodeOptions{
			AutoOrient: cfg.AutoOrient,
			MaxPixels:  cfg.MaxPixels,
		}),
		version: version,
	}

	engine := gin.New()
	engine.Use(
		RequestIDMiddleware(),
		RecoveryMiddleware(logger),
		RequestLoggingMiddleware(logger),
		CORSMiddleware(cfg.AllowedOrigins),
	)
	s.registerRoutes(engine)
	s.engine = engine

	return s
}

// Handler returns the HTTP handler serving every route.
func (s *Server) Handler() http.Handler {
	return s.engine
}

// Run listens on the configured address and serves until ctx is done.
func (s *Server) Run(ctx context.Context) error {
	ln, err := net.Listen("tcp", s.cfg.Addr())
	if err != nil {
		return fmt.Errorf("failed to listen on %s: %w", s.cfg.Addr(), err)
	}
	return s.Serve(ctx, ln)
}

// Serve accepts connections on ln until ctx is done, then shuts down
// gracefully, giving in-flight requests up to the configured shutdown
// timeout to finish.
func (s *Server) Serve(ctx context.Context, ln net.Listener) error {
	srv := &http.Server{
		Handler:      s.engine,
		ReadTimeout:  s.cfg.ReadTimeout,
		WriteTimeout: s.cfg.WriteTimeout,
		IdleTimeout:  s.cfg.IdleTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		s.logger.Infow("server starting", "addr", ln.Addr().String(), "version", s.version)
		errCh <- srv.Serve(ln)
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("server error: %w", err)
	case <-ctx.Done():
	}

	s.logger.Infow("shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), s.cfg.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server forced to shutdown: %w", err)
	}
	s.logger.Infow("server exited")
	return nil
}
