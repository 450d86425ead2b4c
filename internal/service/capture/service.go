package capture

import (
	"context"
	"log/slog"
	"time"

	"github.com/ranajunaid001/second-braind-junaid/internal/domain"
	"github.com/ranajunaid001/second-braind-junaid/pkg/keylock"
)

// DefaultPendingTTL is how long a low-confidence classification waits for
// the user when no TTL is configured.
const DefaultPendingTTL = 24 * time.Hour

type classifier interface {
	Classify(ctx context.Context, text string) (domain.Classification, error)
	Extract(ctx context.Context, c domain.Category, text string) domain.Fields
}

type filer interface {
	File(ctx context.Context, msg domain.CapturedMessage, c domain.Category, fields domain.Fields) (domain.Record, error)
}

type inboxLog interface {
	Create(ctx context.Context, e *domain.InboxLogEntry) (*domain.InboxLogEntry, error)
	GetByMessageID(ctx context.Context, id domain.MessageID) (*domain.InboxLogEntry, error)
	SetFixedTo(ctx context.Context, id domain.MessageID, c domain.Category, by domain.FixSource) error
}

type pendingRepo interface {
	Save(ctx context.Context, p *domain.PendingConfirmation) error
	LatestForConversation(ctx context.Context, conversationID string, now time.Time) (*domain.PendingConfirmation, error)
	Delete(ctx context.Context, id domain.MessageID) error
	DeleteExpired(ctx context.Context, now time.Time) (int, error)
}

type eventPublisher interface {
	Publish(ctx context.Context, e domain.Event) error
}

type recorder interface {
	ObserveCapture(outcome, category, source string, took time.Duration)
	ObserveConfirmation(category string, accepted bool)
}

// Config holds capture tunables.
type Config struct {
	PendingTTL   time.Duration
	StoreTimeout time.Duration
	// Locks serializes work per message id. Pass the map the correction
	// service uses; nil gets a private one.
	Locks *keylock.Map
}

// Service runs the capture pipeline: dedup, classify, log, then file or park
// for confirmation.
type Service struct {
	classifier classifier
	filer      filer
	inbox      inboxLog
	pending    pendingRepo
	events     eventPublisher
	metrics    recorder
	cfg        Config
	locks      *keylock.Map
	now        func() time.Time
	log        *slog.Logger
}

// NewService creates a new Capture service.
func NewService(
	log *slog.Logger,
	classifier classifier,
	filer filer,
	inbox inboxLog,
	pending pendingRepo,
	events eventPublisher,
	metrics recorder,
	cfg Config,
) *Service {
	if cfg.PendingTTL <= 0 {
		cfg.PendingTTL = DefaultPendingTTL
	}
	locks := cfg.Locks
	if locks == nil {
		locks = keylock.New()
	}
	return &Service{
		classifier: classifier,
		filer:      filer,
		inbox:      inbox,
		pending:    pending,
		events:     events,
		metrics:    metrics,
		cfg:        cfg,
		locks:      locks,
		now:        func() time.Time { return time.Now().UTC() },
		log:        log.With("service", "capture"),
	}
}

func (s *Service) withStoreTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	if s.cfg.StoreTimeout <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, s.cfg.StoreTimeout)
}

// publish is best effort; the event bus never fails an operation.
func (s *Service) publish(ctx context.Context, e domain.Event) {
	if err := s.events.Publish(ctx, e); err != nil {
		s.log.WarnContext(ctx, "publish event failed",
			slog.String("type", string(e.Type)),
			slog.String("error", err.Error()),
		)
	}
}
