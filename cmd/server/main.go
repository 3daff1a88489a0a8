package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"golang.org/x/sync/errgroup"

	"github.com/elchananT/personal-coach-demo-website/internal/config"
	"github.com/elchananT/personal-coach-demo-website/internal/content"
	"github.com/elchananT/personal-coach-demo-website/internal/handler"
	"github.com/elchananT/personal-coach-demo-website/internal/logging"
	"github.com/elchananT/personal-coach-demo-website/internal/metrics"
	"github.com/elchananT/personal-coach-demo-website/internal/repository"
	"github.com/elchananT/personal-coach-demo-website/internal/service"
	"github.com/elchananT/personal-coach-demo-website/internal/web"
	"github.com/elchananT/personal-coach-demo-website/pkg/auth"
)

const shutdownTimeout = 5 * time.Second

func main() {
	cfg, err := config.Load()
	if err != nil {
		logging.Setup("")
		logging.Fatal("invalid configuration", "error", err)
	}
	logging.Setup(cfg.LogLevel)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg); err != nil {
		logging.Fatal("server error", "error", err)
	}
}

func run(ctx context.Context, cfg config.Config) error {
	site, err := content.Load(cfg.ContentFile)
	if err != nil {
		return err
	}

	// DATABASE_URL が未設定ならインメモリストアで起動する
	var (
		db    repository.DB
		store repository.BookingRepository
	)
	if cfg.DatabaseURL != "" {
		pool, err := repository.NewPool(ctx, cfg.DatabaseURL)
		if err != nil {
			return err
		}
		defer pool.Close()
		db = pool
		store = repository.NewPgBookingRepository(pool)
	} else {
		slog.Warn("DATABASE_URL not set, bookings are kept in memory")
		mem := repository.NewMemoryBookingRepository()
		db, store = mem, mem
	}

	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	m := metrics.New(reg)

	renderer, err := web.NewRenderer()
	if err != nil {
		return err
	}

	forms := handler.FormFactory{
		Service: service.NewBookingService(store),
		Delay:   cfg.SubmitDelay,
		Metrics: m,
	}
	if cfg.AdminPassword == "" {
		slog.Info("ADMIN_PASSWORD not set, staff endpoints are disabled")
	}

	g, ctx := errgroup.WithContext(ctx)
	limiter := handler.NewRateLimiter(ctx, cfg.RateLimit)

	server := &http.Server{
		Addr: cfg.Addr,
		Handler: handler.NewRouter(handler.Routes{
			Base:     handler.New(db, cfg.FrontendURL),
			Pages:    handler.NewPageHandler(site, renderer, forms),
			Bookings: handler.NewBookingHandler(forms),
			Auth: handler.NewAuthHandler(handler.AuthConfig{
				AdminPassword: cfg.AdminPassword,
				SessionSecret: cfg.SessionSecret,
				SecureCookies: cfg.SecureCookies,
			}),
			Legal:         handler.NewLegalHandler(content.LegalDocs(cfg.LegalDocsDir), site, renderer),
			Limiter:       limiter,
			Metrics:       m.Handler(),
			SessionSecret: auth.SessionSecretBytes(cfg.SessionSecret),
		}),
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
	}

	g.Go(func() error {
		slog.Info("server listening", "addr", server.Addr, "submit_delay", cfg.SubmitDelay.String())
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})

	g.Go(func() error {
		<-ctx.Done()
		slog.Info("shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return server.Shutdown(shutdownCtx)
	})

	g.Go(func() error {
		<-limiter.Done()
		return nil
	})

	return g.Wait()
}
