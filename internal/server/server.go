package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/yigit/tutordesk/internal/bootstrap"
	"github.com/yigit/tutordesk/internal/config"
	"github.com/yigit/tutordesk/internal/pkg/helpers"
)

// Server holds the state for the HTTP server.
type Server struct {
	config  *config.Config
	router  *gin.Engine
	closers []namedCloser
	logger  zerolog.Logger
	http    *http.Server
}

type namedCloser struct {
	name  string
	close bootstrap.CloseFunc
}

// NewServer creates and initializes a new server instance by calling bootstrap functions.
func NewServer() (*Server, error) {
	cfg, lgr, err := bootstrap.LoadConfigAndSetupLogger()
	if err != nil {
		return nil, fmt.Errorf("failed to load config or setup logger: %w", err)
	}

	store, closeStore, err := bootstrap.SetupStore(cfg, lgr)
	if err != nil {
		return nil, fmt.Errorf("failed to setup record store: %w", err)
	}

	s := &Server{
		config:  cfg,
		logger:  lgr,
		closers: []namedCloser{{name: "record store", close: closeStore}},
	}

	sessions, closeSessions, err := bootstrap.SetupSessions(cfg, lgr)
	if err != nil {
		s.closeAll(context.Background())
		return nil, fmt.Errorf("failed to setup sessions: %w", err)
	}
	s.closers = append(s.closers, namedCloser{name: "session store", close: closeSessions})

	deps, err := bootstrap.BuildDependencies(cfg, store, sessions, lgr)
	if err != nil {
		s.closeAll(context.Background())
		return nil, fmt.Errorf("failed to setup dependencies: %w", err)
	}

	s.router = bootstrap.SetupRouter(cfg, deps, lgr)
	return s, nil
}

// Run starts the HTTP server and handles graceful shutdown.
func (s *Server) Run() error {
	s.logger.Info().Str("port", s.config.Server.Port).Msg("Starting server...")

	s.http = &http.Server{
		Addr:         ":" + s.config.Server.Port,
		Handler:      s.router,
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	serverErrors := make(chan error, 1)

	go func() {
		s.logger.Info().Str("addr", s.http.Addr).Msg("HTTP server listening")
		serverErrors <- s.http.ListenAndServe()
	}()

	osSignals := make(chan os.Signal, 1)
	signal.Notify(osSignals, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-serverErrors:
		if !errors.Is(err, http.ErrServerClosed) {
			s.closeAll(context.Background())
			return fmt.Errorf("error starting server: %w", err)
		}
	case sig := <-osSignals:
		s.logger.Info().Str("signal", sig.String()).Msg("Received OS signal, initiating shutdown...")
	}

	return s.Shutdown(context.Background())
}

// Shutdown gracefully stops the server and closes resources.
func (s *Server) Shutdown(ctx context.Context) error {
	timeout := helpers.ParseDuration(s.config.Server.ShutdownTimeout, 10*time.Second)
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	shutdownError := false

	if s.http != nil {
		s.logger.Info().Msg("Shutting down HTTP server...")
		if err := s.http.Shutdown(ctx); err != nil {
			s.logger.Error().Err(err).Msg("HTTP server shutdown error")
			shutdownError = true
		} else {
			s.logger.Info().Msg("HTTP server gracefully stopped.")
		}
	}

	if !s.closeAll(ctx) {
		shutdownError = true
	}

	s.logger.Info().Msg("Server shutdown process complete.")
	if shutdownError {
		return errors.New("server shutdown completed with errors")
	}
	return nil
}

// closeAll releases connections in reverse order of opening
func (s *Server) closeAll(ctx context.Context) bool {
	ok := true
	for i := len(s.closers) - 1; i >= 0; i-- {
		c := s.closers[i]
		if err := c.close(ctx); err != nil {
			s.logger.Error().Err(err).Str("resource", c.name).Msg("Failed to close resource")
			ok = false
			continue
		}
		s.logger.Info().Str("resource", c.name).Msg("Resource closed")
	}
	s.closers = nil
	return ok
}
