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

	"github.com/labstack/echo/v4"
	"github.com/piresc/maproute/internal/pkg/logger"
)

const defaultShutdownTimeout = 30 * time.Second

// GracefulServer wraps Echo server with graceful shutdown capabilities
type GracefulServer struct {
	echo            *echo.Echo
	logger          *logger.ZapLogger
	address         string
	shutdownTimeout time.Duration
	components      *ShutdownManager
}

// NewGracefulServer creates a new server with graceful shutdown. A zero
// shutdownTimeout falls back to 30 seconds.
func NewGracefulServer(e *echo.Echo, zapLogger *logger.ZapLogger, host string, port int, shutdownTimeout time.Duration) *GracefulServer {
	if shutdownTimeout <= 0 {
		shutdownTimeout = defaultShutdownTimeout
	}
	return &GracefulServer{
		echo:            e,
		logger:          zapLogger,
		address:         fmt.Sprintf("%s:%d", host, port),
		shutdownTimeout: shutdownTimeout,
		components:      NewShutdownManager(zapLogger),
	}
}

// OnShutdown registers a cleanup function run after the HTTP server stopped
func (s *GracefulServer) OnShutdown(fn func(context.Context) error) {
	s.components.Register(fn)
}

// Start serves until SIGINT or SIGTERM and then shuts down gracefully
func (s *GracefulServer) Start() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	return s.Run(ctx)
}

// Run serves until ctx is done or the listener fails
func (s *GracefulServer) Run(ctx context.Context) error {
	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("Starting HTTP server", logger.String("address", s.address))
		if err := s.echo.Start(s.address); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err, ok := <-errCh:
		if ok {
			s.logger.Error("Failed to start server", logger.Err(err))
			return err
		}
		return nil
	case <-ctx.Done():
		s.logger.Info("Received shutdown signal")
	}

	return s.Shutdown()
}

// Shutdown gracefully shuts down the server and then registered components
func (s *GracefulServer) Shutdown() error {
	s.logger.Info("Shutting down server gracefully...")

	ctx, cancel := context.WithTimeout(context.Background(), s.shutdownTimeout)
	defer cancel()

	if err := s.echo.Shutdown(ctx); err != nil {
		s.logger.Error("Server forced to shutdown", logger.Err(err))
		return err
	}

	_ = s.components.Shutdown(ctx)

	s.logger.Info("Server shutdown completed")
	return nil
}

// ShutdownManager runs registered cleanup functions in order
type ShutdownManager struct {
	logger    *logger.ZapLogger
	functions []func(context.Context) error
}

// NewShutdownManager creates a new shutdown manager
func NewShutdownManager(zapLogger *logger.ZapLogger) *ShutdownManager {
	return &ShutdownManager{
		logger:    zapLogger,
		functions: make([]func(context.Context) error, 0),
	}
}

// Register adds a cleanup function to be called during shutdown
func (sm *ShutdownManager) Register(fn func(context.Context) error) {
	sm.functions = append(sm.functions, fn)
}

// Shutdown executes all registered cleanup functions
func (sm *ShutdownManager) Shutdown(ctx context.Context) error {
	sm.logger.Info("Starting graceful shutdown of components", logger.Int("components", len(sm.functions)))

	for i, fn := range sm.functions {
		if err := fn(ctx); err != nil {
			// keep going, the remaining components still need to stop
			sm.logger.Error("Error during component shutdown",
				logger.Int("component", i),
				logger.Err(err))
		}
	}

	sm.logger.Info("All components shutdown completed")
	return nil
}
