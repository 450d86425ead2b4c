package digest

import (
	"context"
	"log/slog"
	"time"

	"github.com/ranajunaid001/second-braind-junaid/internal/domain"
)

// DefaultTopN is the per-category size of the full digest.
const DefaultTopN = 5

// MaxFocus bounds the number of summary bullets kept from the summarizer.
const MaxFocus = 3

type recordReader interface {
	ListActive(ctx context.Context, c domain.Category, limit int) ([]domain.Record, error)
	CountActive(ctx context.Context, c domain.Category) (int, error)
}

// summarizer turns a rendered digest into short action bullets.
type summarizer interface {
	Summarize(ctx context.Context, digest string) ([]string, error)
}

type notifier interface {
	Notify(ctx context.Context, text string) error
}

type eventPublisher interface {
	Publish(ctx context.Context, e domain.Event) error
}

type recorder interface {
	ObserveDigest(trigger string, err error)
}

// Config tunes the digest builder.
type Config struct {
	TopN         int
	StoreTimeout time.Duration
}

// Service builds top-item lists and digests.
type Service struct {
	records    recordReader
	summarizer summarizer
	notifier   notifier
	events     eventPublisher
	metrics    recorder
	cfg        Config
	now        func() time.Time
	log        *slog.Logger
}

// NewService creates a new Digest service. summarizer may be nil, in which
// case digests carry no focus bullets.
func NewService(
	log *slog.Logger,
	records recordReader,
	summarizer summarizer,
	notifier notifier,
	events eventPublisher,
	metrics recorder,
	cfg Config,
) *Service {
	if cfg.TopN <= 0 {
		cfg.TopN = DefaultTopN
	}
	return &Service{
		records:    records,
		summarizer: summarizer,
		notifier:   notifier,
		events:     events,
		metrics:    metrics,
		cfg:        cfg,
		now:        func() time.Time { return time.Now().UTC() },
		log:        log.With("service", "digest"),
	}
}

// TopN returns the configured per-category size.
func (s *Service) TopN() int { return s.cfg.TopN }

func (s *Service) withStoreTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	if s.cfg.StoreTimeout <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, s.cfg.StoreTimeout)
}
