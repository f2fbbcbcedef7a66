package server

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"

	"piecework/internal/domain/payroll"
	"piecework/internal/platform/cache"
	"piecework/internal/platform/config"
	"piecework/internal/platform/metrics"
	"piecework/internal/transport/http/api"
	payrollhandler "piecework/internal/transport/http/handlers/payroll"
	"piecework/internal/transport/http/middleware"
)

type App struct {
	Config  config.Config
	Metrics *metrics.Collector
	Router  http.Handler

	closers []func() error
}

func New(ctx context.Context, cfg config.Config) (*App, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	app := &App{Config: cfg, Metrics: metrics.New()}

	reportCache, err := app.reportCache(ctx)
	if err != nil {
		return nil, err
	}
	service := payroll.NewService(reportCache, cfg.ReportCacheTTL)

	router := chi.NewRouter()
	router.Use(middleware.RequestID)
	router.Use(middleware.Logger(app.Metrics))
	router.Use(chimiddleware.Recoverer)
	router.Use(middleware.SecureHeaders(cfg.IsProduction()))
	router.Use(middleware.BodyLimit(cfg.MaxBodyBytes))

	router.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	if cfg.MetricsEnabled {
		router.Get("/metrics", func(w http.ResponseWriter, r *http.Request) {
			api.Success(w, app.Metrics.Snapshot(), middleware.GetRequestID(r.Context()))
		})
	}

	payrollHandler := payrollhandler.NewHandler(service, app.Metrics,
		middleware.RateLimit(cfg.RateLimitPerMinute, time.Minute, middleware.WithTrustedProxy(cfg.TrustProxy)))
	payrollHandler.RegisterRoutes(router)

	app.Router = router
	return app, nil
}

// reportCache returns nil when caching is disabled; the service then renders every report.
func (a *App) reportCache(ctx context.Context) (payroll.ReportCache, error) {
	switch a.Config.ReportCache {
	case config.ReportCacheMemory:
		return cache.NewMemory(a.Config.ReportCacheMaxEntries), nil
	case config.ReportCacheRedis:
		rdb := cache.NewRedis(a.Config.RedisAddr)
		pingCtx, cancel := context.WithTimeout(ctx, 2*time.Second)
		defer cancel()
		if err := rdb.Ping(pingCtx); err != nil {
			_ = rdb.Close()
			return nil, fmt.Errorf("redis ping failed: %w", err)
		}
		a.closers = append(a.closers, rdb.Close)
		return rdb, nil
	default:
		return nil, nil
	}
}

func (a *App) Close() error {
	var errs []error
	for _, closeFn := range a.closers {
		if err := closeFn(); err != nil {
			errs = append(errs, err)
		}
	}
	a.closers = nil
	return errors.Join(errs...)
}

// Run serves until ctx is cancelled, then drains in-flight requests within ShutdownTimeout.
func Run(ctx context.Context, cfg config.Config) error {
	app, err := New(ctx, cfg)
	if err != nil {
		return err
	}
	defer app.Close()

	srv := &http.Server{
		Addr:              cfg.Addr,
		Handler:           app.Router,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      15 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		slog.Info("piecework server listening", "addr", cfg.Addr, "reportCache", cfg.ReportCache)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("server failed: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	slog.Info("shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server shutdown: %w", err)
	}
	return nil
}
