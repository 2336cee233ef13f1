// Package server собирает HTTP API divelog: маршруты, middleware и фоновые задачи.
package server

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"time"

	"github.com/iudanet/divelog/internal/server/handlers"
	"github.com/iudanet/divelog/internal/server/metrics"
	"github.com/iudanet/divelog/internal/server/middleware"
	"github.com/iudanet/divelog/internal/server/storage"
)

// Store объединяет хранилища, нужные серверу
type Store interface {
	storage.SessionStorage
	storage.SnapshotStorage
	handlers.Pinger
}

// Config описывает зависимости и параметры сервера
type Config struct {
	Logger       *slog.Logger
	Store        Store
	Fetcher      handlers.TripFetcher
	Metrics      *metrics.Metrics
	Version      string
	ShareBaseURL string
	JWT          handlers.JWTConfig
	RateLimit    int
	RateWindow   time.Duration
}

// Server обслуживает HTTP API
type Server struct {
	logger  *slog.Logger
	store   Store
	limiter *middleware.RateLimiter
	handler http.Handler
}

// New создает сервер и регистрирует маршруты
func New(cfg Config) *Server {
	if cfg.Metrics == nil {
		cfg.Metrics = metrics.New()
	}

	s := &Server{
		logger:  cfg.Logger,
		store:   cfg.Store,
		limiter: middleware.NewRateLimiter(cfg.RateLimit, cfg.RateWindow),
	}

	healthHandler := handlers.NewHealthHandler(cfg.Logger, cfg.Version, cfg.Store)
	shareHandler := handlers.NewShareHandler(cfg.Logger, cfg.Metrics, cfg.ShareBaseURL)
	authHandler := handlers.NewAuthHandler(cfg.Logger, cfg.Fetcher, cfg.Store, cfg.Store, cfg.JWT)
	tripsHandler := handlers.NewTripsHandler(cfg.Logger, cfg.Store)

	requireSession := middleware.AuthMiddleware(cfg.Logger, cfg.JWT, cfg.Store)

	mux := http.NewServeMux()

	// Публичные endpoints
	mux.HandleFunc("GET /api/v1/health", healthHandler.Health)
	mux.HandleFunc("POST /api/v1/share", shareHandler.Create)
	mux.HandleFunc("GET /api/v1/share/{token}", shareHandler.Get)
	mux.HandleFunc("GET /api/v1/share/{token}/profile", shareHandler.Profile)
	mux.HandleFunc("POST /api/v1/auth/login", authHandler.Login)
	mux.Handle("GET /metrics", cfg.Metrics.Handler())

	// Endpoints с сессией
	mux.Handle("POST /api/v1/auth/logout", requireSession(http.HandlerFunc(authHandler.Logout)))
	mux.Handle("GET /api/v1/trips", requireSession(http.HandlerFunc(tripsHandler.List)))

	// Порядок: recovery -> logging -> metrics -> rate limit -> mux
	var handler http.Handler = mux
	handler = middleware.RateLimitMiddleware(s.limiter, cfg.Logger)(handler)
	handler = middleware.MetricsMiddleware(cfg.Metrics)(handler)
	handler = middleware.LoggingWithSkip(cfg.Logger, []string{"/api/v1/health", "/metrics"})(handler)
	handler = middleware.RecoveryMiddleware(cfg.Logger)(handler)
	s.handler = handler

	return s
}

// Handler возвращает корневой http.Handler
func (s *Server) Handler() http.Handler {
	return s.handler
}

// Close останавливает фоновые горутины rate limiter
func (s *Server) Close() {
	s.limiter.Stop()
}

// CleanupSessions удаляет истекшие сессии каждые interval, пока ctx не отменен
func (s *Server) CleanupSessions(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case now := <-ticker.C:
			s.cleanupOnce(ctx, now)
		}
	}
}

func (s *Server) cleanupOnce(ctx context.Context, now time.Time) {
	deleted, err := s.store.DeleteExpiredSessions(ctx, now)
	if err != nil {
		if ctx.Err() == nil {
			s.logger.ErrorContext(ctx, "failed to delete expired sessions", slog.Any("error", err))
		}
		return
	}
	if deleted > 0 {
		s.logger.InfoContext(ctx, "expired sessions deleted", slog.Int("count", deleted))
	}
}

// Serve принимает соединения на listener до отмены ctx, затем ждет
// завершения активных запросов не дольше shutdownTimeout
func (s *Server) Serve(ctx context.Context, listener net.Listener, shutdownTimeout time.Duration) error {
	httpServer := &http.Server{
		Handler:           s.handler,
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       30 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       2 * time.Minute,
		ErrorLog:          slog.NewLogLogger(s.logger.Handler(), slog.LevelWarn),
	}

	serveErr := make(chan error, 1)
	go func() {
		s.logger.Info("server listening", slog.String("address", listener.Addr().String()))
		serveErr <- httpServer.Serve(listener)
	}()

	select {
	case err := <-serveErr:
		return fmt.Errorf("http server: %w", err)
	case <-ctx.Done():
	}

	s.logger.Info("server shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), shutdownTimeout)
	defer cancel()

	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("http server shutdown: %w", err)
	}
	if err := <-serveErr; err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("http server: %w", err)
	}
	return nil
}
