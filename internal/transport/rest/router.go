package rest

import (
	"log/slog"
	"net/http"

	"github.com/ranajunaid001/second-braind-junaid/internal/transport/middleware"
)

// RouterConfig collects the handlers and guards of the HTTP surface.
type RouterConfig struct {
	Health  *HealthHandler
	Digest  *DigestHandler
	Capture *CaptureHandler
	// Metrics is mounted at MetricsPath when non-nil.
	Metrics     http.Handler
	MetricsPath string
	// TriggerToken guards /digest and /capture.
	TriggerToken string
	Limiter      *middleware.RateLimiter
	CaptureLimit int
}

// NewRouter builds the HTTP handler with the shared middleware chain.
func NewRouter(log *slog.Logger, cfg RouterConfig) http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /live", cfg.Health.Live)
	mux.HandleFunc("GET /ready", cfg.Health.Ready)
	mux.HandleFunc("GET /health", cfg.Health.Health)

	guard := middleware.RequireToken(cfg.TriggerToken)
	if cfg.Digest != nil {
		send := guard(http.HandlerFunc(cfg.Digest.Send))
		mux.Handle("GET /digest", send)
		mux.Handle("POST /digest", send)
	}
	if cfg.Capture != nil {
		capture := guard(http.HandlerFunc(cfg.Capture.Capture))
		if cfg.Limiter != nil {
			capture = cfg.Limiter.Limit(cfg.CaptureLimit)(capture)
		}
		mux.Handle("POST /capture", capture)
	}
	if cfg.Metrics != nil {
		path := cfg.MetricsPath
		if path == "" {
			path = "/metrics"
		}
		mux.Handle("GET "+path, cfg.Metrics)
	}

	return middleware.Chain(
		middleware.RequestID(),
		middleware.Logger(log),
		middleware.Recovery(log),
	)(mux)
}
