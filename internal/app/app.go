package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"strconv"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/ranajunaid001/second-braind-junaid/internal/config"
	"github.com/ranajunaid001/second-braind-junaid/internal/transport/middleware"
	"github.com/ranajunaid001/second-braind-junaid/internal/transport/rest"
	"github.com/ranajunaid001/second-braind-junaid/internal/transport/scheduler"
	"github.com/ranajunaid001/second-braind-junaid/internal/transport/telegram"
)

// Run is the application entry point of the server. It loads configuration,
// wires the engine and serves HTTP, the Telegram bot and the scheduler until
// ctx is cancelled.
func Run(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger := NewLogger(cfg.Log)

	logger.Info("starting application",
		slog.String("version", BuildVersion()),
		slog.String("log_level", cfg.Log.Level),
		slog.String("store", cfg.Store.Backend),
		slog.String("llm_provider", cfg.LLM.Provider),
	)

	engine, err := NewEngine(ctx, cfg, logger)
	if err != nil {
		return err
	}
	defer engine.Close()

	return engine.Serve(ctx)
}

// Serve runs every long-lived transport. The first one to fail stops the
// others.
func (e *Engine) Serve(ctx context.Context) error {
	cfg := e.Config
	loc, err := cfg.Digest.Location()
	if err != nil {
		return fmt.Errorf("digest timezone: %w", err)
	}

	limiter := middleware.NewRateLimiter(time.Minute)
	defer limiter.Stop()

	srv := &http.Server{
		Addr:         net.JoinHostPort(cfg.Server.Host, strconv.Itoa(cfg.Server.Port)),
		Handler:      e.Router(limiter),
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		e.log.Info("http server listening", slog.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
		defer cancel()
		e.log.Info("shutting down http server")
		return srv.Shutdown(shutdownCtx)
	})

	if e.botAPI != nil {
		bot := telegram.NewBot(e.log, e.botAPI, e.Assistant, cfg.Telegram)
		g.Go(func() error { return bot.Run(ctx) })
	}

	sched := scheduler.New(e.log, e.Digest, e.Capture, cfg.Digest.Schedule, loc)
	if next, err := sched.Next(time.Now()); err == nil {
		e.log.Info("next digest", slog.Time("at", next))
	}
	g.Go(func() error { return sched.Run(ctx) })

	err = g.Wait()
	e.log.Info("application stopped")
	return err
}

// Router builds the HTTP surface. limiter may be nil.
func (e *Engine) Router(limiter *middleware.RateLimiter) http.Handler {
	cfg := e.Config
	rc := rest.RouterConfig{
		Health: rest.NewHealthHandler(Version, map[string]rest.Pinger{
			"store": rest.PingFunc(e.Ping),
		}),
		Digest:       rest.NewDigestHandler(e.log, e.Digest),
		Capture:      rest.NewCaptureHandler(e.log, e.Assistant),
		TriggerToken: cfg.Digest.TriggerToken,
		Limiter:      limiter,
		CaptureLimit: cfg.Server.CaptureRateLimit,
	}
	if e.Metrics != nil {
		rc.Metrics = e.Metrics.Handler()
		rc.MetricsPath = cfg.Metrics.Path
	}
	return rest.NewRouter(e.log, rc)
}
