// Command digest builds and delivers one digest. It is intended to be
// invoked by an external cron job when the server's own schedule is not
// used.
//
// Exit codes: 0 = success, 1 = error.
package main

import (
	"context"
	"log"
	"log/slog"
	"os"
	"time"

	"github.com/ranajunaid001/second-braind-junaid/internal/app"
	"github.com/ranajunaid001/second-braind-junaid/internal/config"
)

const trigger = "cron"

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	logger := app.NewLogger(cfg.Log)

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	engine, err := app.NewEngine(ctx, cfg, logger)
	if err != nil {
		logger.Error("build engine", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer engine.Close()

	d, err := engine.Digest.Send(ctx, trigger)
	if err != nil {
		logger.Error("digest failed", slog.String("error", err.Error()))
		engine.Close()
		os.Exit(1)
	}

	logger.Info("digest completed",
		slog.Bool("empty", d.Empty()),
		slog.Int("sections", len(d.Sections)),
	)
}
