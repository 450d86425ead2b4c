package digest

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/ranajunaid001/second-braind-junaid/internal/domain"
)

// Section is the block of one category inside a digest.
type Section struct {
	Category domain.Category
	Items    []domain.Record
	// Total counts every active record in the category, not only Items.
	Total int
}

// Digest is the composed summary across all categories in DigestOrder.
type Digest struct {
	Sections    []Section
	Focus       []string
	GeneratedAt time.Time
}

// Empty reports whether no category has an active record.
func (d Digest) Empty() bool {
	for _, sec := range d.Sections {
		if sec.Total > 0 {
			return false
		}
	}
	return true
}

// TopItems returns at most n active records of category c, newest first.
// Person profiles rank by last_touched; ties break by insertion order.
func (s *Service) TopItems(ctx context.Context, c domain.Category, n int) ([]domain.Record, error) {
	if !c.IsValid() {
		return nil, fmt.Errorf("%w: %q", domain.ErrUnknownCategory, c)
	}
	if n < 1 {
		return nil, domain.NewValidationError("n", "must be at least 1")
	}

	ctx, cancel := s.withStoreTimeout(ctx)
	defer cancel()

	items, err := s.records.ListActive(ctx, c, n)
	if err != nil {
		return nil, fmt.Errorf("list active %s: %w", c, err)
	}
	if len(items) > n {
		items = items[:n]
	}
	return items, nil
}

// Build composes the full digest. Categories are read concurrently but the
// result is always in DigestOrder.
func (s *Service) Build(ctx context.Context) (Digest, error) {
	sections := make([]Section, len(domain.DigestOrder))

	g, gctx := errgroup.WithContext(ctx)
	for i, c := range domain.DigestOrder {
		g.Go(func() error {
			items, err := s.TopItems(gctx, c, s.cfg.TopN)
			if err != nil {
				return err
			}
			total, err := s.count(gctx, c)
			if err != nil {
				return err
			}
			sections[i] = Section{Category: c, Items: items, Total: max(total, len(items))}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return Digest{}, fmt.Errorf("build digest: %w", err)
	}

	d := Digest{Sections: sections, GeneratedAt: s.now()}
	if s.summarizer != nil && !d.Empty() {
		d.Focus = s.focus(ctx, d)
	}
	return d, nil
}

func (s *Service) count(ctx context.Context, c domain.Category) (int, error) {
	ctx, cancel := s.withStoreTimeout(ctx)
	defer cancel()

	n, err := s.records.CountActive(ctx, c)
	if err != nil {
		return 0, fmt.Errorf("count active %s: %w", c, err)
	}
	return n, nil
}

// focus asks the summarizer for action bullets. Failure yields none.
func (s *Service) focus(ctx context.Context, d Digest) []string {
	bullets, err := s.summarizer.Summarize(ctx, RenderSections(d))
	if err != nil {
		s.log.WarnContext(ctx, "digest summary failed", slog.String("error", err.Error()))
		return nil
	}

	out := make([]string, 0, MaxFocus)
	for _, b := range bullets {
		b = strings.TrimSpace(strings.TrimLeft(strings.TrimSpace(b), "•-* "))
		if b == "" {
			continue
		}
		out = append(out, b)
		if len(out) == MaxFocus {
			break
		}
	}
	return out
}

// Send builds the digest, renders it and hands it to the notifier.
// trigger names the caller (schedule, http, cli) for metrics and logs.
func (s *Service) Send(ctx context.Context, trigger string) (d Digest, err error) {
	defer func() { s.metrics.ObserveDigest(trigger, err) }()

	d, err = s.Build(ctx)
	if err != nil {
		return Digest{}, err
	}
	if err := s.notifier.Notify(ctx, Render(d)); err != nil {
		s.log.ErrorContext(ctx, "digest delivery failed",
			slog.String("trigger", trigger),
			slog.String("error", err.Error()),
		)
		return d, fmt.Errorf("notify: %w", err)
	}

	if perr := s.events.Publish(ctx, domain.Event{Type: domain.EventDigest, At: d.GeneratedAt}); perr != nil {
		s.log.WarnContext(ctx, "publish event failed", slog.String("error", perr.Error()))
	}
	s.log.InfoContext(ctx, "digest sent",
		slog.String("trigger", trigger),
		slog.Bool("empty", d.Empty()),
		slog.Int("focus", len(d.Focus)),
	)
	return d, nil
}
