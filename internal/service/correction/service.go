package correction

import (
	"context"
	"log/slog"
	"time"

	"github.com/ranajunaid001/second-braind-junaid/internal/domain"
	"github.com/ranajunaid001/second-braind-junaid/pkg/keylock"
)

type inboxLog interface {
	GetByMessageID(ctx context.Context, id domain.MessageID) (*domain.InboxLogEntry, error)
	SetFixedTo(ctx context.Context, id domain.MessageID, c domain.Category, by domain.FixSource) error
}

type recordRepo interface {
	GetActiveByMessage(ctx context.Context, c domain.Category, id domain.MessageID) (domain.Record, error)
	DeactivateByMessage(ctx context.Context, c domain.Category, id domain.MessageID) (int, error)
}

type pendingRepo interface {
	Delete(ctx context.Context, id domain.MessageID) error
}

type personRetractor interface {
	RetractByMessage(ctx context.Context, id domain.MessageID) (int, error)
}

type extractor interface {
	Extract(ctx context.Context, c domain.Category, text string) domain.Fields
}

type filer interface {
	File(ctx context.Context, msg domain.CapturedMessage, c domain.Category, fields domain.Fields) (domain.Record, error)
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

type eventPublisher interface {
	Publish(ctx context.Context, e domain.Event) error
}

type recorder interface {
	ObserveCorrection(from, to string)
}

// Service re-routes previously captured messages.
type Service struct {
	inbox        inboxLog
	records      recordRepo
	pending      pendingRepo
	people       personRetractor
	extractor    extractor
	filer        filer
	tx           txManager
	events       eventPublisher
	metrics      recorder
	storeTimeout time.Duration
	locks        *keylock.Map
	log          *slog.Logger
}

// Deps groups the collaborators of the correction service.
type Deps struct {
	Inbox     inboxLog
	Records   recordRepo
	Pending   pendingRepo
	People    personRetractor
	Extractor extractor
	Filer     filer
	Tx        txManager
	Events    eventPublisher
	Metrics   recorder
	// Locks is shared with the capture service; nil gets a private map.
	Locks *keylock.Map
}

// NewService creates a new Correction service.
func NewService(log *slog.Logger, deps Deps, storeTimeout time.Duration) *Service {
	locks := deps.Locks
	if locks == nil {
		locks = keylock.New()
	}
	return &Service{
		inbox:        deps.Inbox,
		records:      deps.Records,
		pending:      deps.Pending,
		people:       deps.People,
		extractor:    deps.Extractor,
		filer:        deps.Filer,
		tx:           deps.Tx,
		events:       deps.Events,
		metrics:      deps.Metrics,
		storeTimeout: storeTimeout,
		locks:        locks,
		log:          log.With("service", "correction"),
	}
}
