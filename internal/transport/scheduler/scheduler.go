// Package scheduler runs the periodic jobs of the long-running process: the
// daily digest and the purge of expired pending confirmations.
package scheduler

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/ranajunaid001/second-braind-junaid/internal/service/digest"
)

// TriggerSchedule names scheduled digest runs in logs and metrics.
const TriggerSchedule = "schedule"

// PurgeSpec is how often expired pending confirmations are removed.
const PurgeSpec = "@every 1h"

type digestSender interface {
	Send(ctx context.Context, trigger string) (digest.Digest, error)
}

type pendingPurger interface {
	PurgeExpired(ctx context.Context) (int, error)
}

// Scheduler owns a cron runner.
type Scheduler struct {
	cron   *cron.Cron
	digest digestSender
	purger pendingPurger
	log    *slog.Logger

	digestSpec string
	ctx        context.Context
}

// New creates a Scheduler that sends the digest on digestSpec (standard
// five-field cron) in loc. purger may be nil.
func New(log *slog.Logger, d digestSender, purger pendingPurger, digestSpec string, loc *time.Location) *Scheduler {
	if loc == nil {
		loc = time.UTC
	}
	log = log.With("transport", "scheduler")
	return &Scheduler{
		cron: cron.New(
			cron.WithLocation(loc),
			cron.WithChain(cron.SkipIfStillRunning(cronLogger{log}), cron.Recover(cronLogger{log})),
		),
		digest:     d,
		purger:     purger,
		log:        log,
		digestSpec: digestSpec,
		ctx:        context.Background(),
	}
}

// Run registers the jobs, starts the runner and blocks until ctx is
// cancelled. Running jobs are waited for before it returns.
func (s *Scheduler) Run(ctx context.Context) error {
	s.ctx = ctx

	if _, err := s.cron.AddFunc(s.digestSpec, s.sendDigest); err != nil {
		return fmt.Errorf("schedule digest %q: %w", s.digestSpec, err)
	}
	if s.purger != nil {
		if _, err := s.cron.AddFunc(PurgeSpec, s.purgePending); err != nil {
			return fmt.Errorf("schedule purge: %w", err)
		}
	}

	s.cron.Start()
	s.log.InfoContext(ctx, "scheduler started", slog.String("digest", s.digestSpec))

	<-ctx.Done()
	<-s.cron.Stop().Done()
	s.log.Info("scheduler stopped")
	return nil
}

// Next returns the next digest run time after t.
func (s *Scheduler) Next(t time.Time) (time.Time, error) {
	sched, err := cron.ParseStandard(s.digestSpec)
	if err != nil {
		return time.Time{}, err
	}
	return sched.Next(t.In(s.cron.Location())), nil
}

func (s *Scheduler) sendDigest() {
	if _, err := s.digest.Send(s.ctx, TriggerSchedule); err != nil {
		s.log.ErrorContext(s.ctx, "scheduled digest failed", slog.String("error", err.Error()))
	}
}

func (s *Scheduler) purgePending() {
	n, err := s.purger.PurgeExpired(s.ctx)
	if err != nil {
		s.log.ErrorContext(s.ctx, "purge pending confirmations failed", slog.String("error", err.Error()))
		return
	}
	if n > 0 {
		s.log.InfoContext(s.ctx, "expired pending confirmations purged", slog.Int("count", n))
	}
}

// cronLogger adapts slog to cron.Logger.
type cronLogger struct {
	log *slog.Logger
}

func (l cronLogger) Info(msg string, keysAndValues ...any) {
	l.log.Debug(msg, keysAndValues...)
}

func (l cronLogger) Error(err error, msg string, keysAndValues ...any) {
	l.log.Error(msg, append(keysAndValues, "error", err)...)
}
