package app

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/ranajunaid001/second-braind-junaid/internal/adapter/memory"
	"github.com/ranajunaid001/second-braind-junaid/internal/adapter/postgres"
	"github.com/ranajunaid001/second-braind-junaid/internal/adapter/postgres/inboxlog"
	"github.com/ranajunaid001/second-braind-junaid/internal/adapter/postgres/pending"
	"github.com/ranajunaid001/second-braind-junaid/internal/adapter/postgres/person"
	"github.com/ranajunaid001/second-braind-junaid/internal/adapter/postgres/record"
	"github.com/ranajunaid001/second-braind-junaid/internal/config"
	"github.com/ranajunaid001/second-braind-junaid/internal/domain"
)

// InboxLog is the audit trail contract shared by both store backends.
type InboxLog interface {
	Create(ctx context.Context, e *domain.InboxLogEntry) (*domain.InboxLogEntry, error)
	GetByMessageID(ctx context.Context, id domain.MessageID) (*domain.InboxLogEntry, error)
	Latest(ctx context.Context, conversationID string) (*domain.InboxLogEntry, error)
	LatestUncorrected(ctx context.Context, conversationID string) (*domain.InboxLogEntry, error)
	SetFixedTo(ctx context.Context, id domain.MessageID, c domain.Category, by domain.FixSource) error
	List(ctx context.Context, limit int) ([]*domain.InboxLogEntry, error)
}

// RecordStore holds the category collections.
type RecordStore interface {
	Create(ctx context.Context, rec domain.Record) (domain.Record, error)
	GetActiveByMessage(ctx context.Context, c domain.Category, id domain.MessageID) (domain.Record, error)
	DeactivateByMessage(ctx context.Context, c domain.Category, id domain.MessageID) (int, error)
	ListActive(ctx context.Context, c domain.Category, limit int) ([]domain.Record, error)
	CountActive(ctx context.Context, c domain.Category) (int, error)
	List(ctx context.Context, c domain.Category) ([]domain.Record, error)
}

type personStore interface {
	GetActiveByName(ctx context.Context, nameNormalized string) (*domain.PersonProfile, error)
	FindActiveByPrefix(ctx context.Context, prefix string, limit int) ([]*domain.PersonProfile, error)
	ListActiveByMessage(ctx context.Context, messageID domain.MessageID) ([]*domain.PersonProfile, error)
	Create(ctx context.Context, p *domain.PersonProfile) (*domain.PersonProfile, error)
	AddNote(ctx context.Context, personID uuid.UUID, note domain.PersonNote) error
	Touch(ctx context.Context, personID uuid.UUID, lastTouched time.Time, followUps string) error
	RetractNotes(ctx context.Context, personID uuid.UUID, messageID domain.MessageID) (int, error)
	Deactivate(ctx context.Context, personID uuid.UUID) error
}

type pendingStore interface {
	Save(ctx context.Context, p *domain.PendingConfirmation) error
	LatestForConversation(ctx context.Context, conversationID string, now time.Time) (*domain.PendingConfirmation, error)
	Delete(ctx context.Context, id domain.MessageID) error
	DeleteExpired(ctx context.Context, now time.Time) (int, error)
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// stores is one backend's set of repositories.
type stores struct {
	inbox   InboxLog
	records RecordStore
	people  personStore
	pending pendingStore
	tx      txManager
	pool    *pgxpool.Pool
}

func openStores(ctx context.Context, log *slog.Logger, cfg *config.Config) (*stores, func(), error) {
	switch cfg.Store.Backend {
	case config.StoreMemory:
		log.Warn("using in-memory store; data is lost on exit")
		m := memory.New()
		return &stores{
			inbox:   m.InboxLog(),
			records: m.Records(),
			people:  m.People(),
			pending: m.Pending(),
			tx:      m,
		}, func() {}, nil

	case config.StorePostgres:
		pool, err := postgres.NewPool(ctx, log, cfg.Database)
		if err != nil {
			return nil, nil, err
		}
		people := person.New(pool)
		return &stores{
			inbox:   inboxlog.New(pool),
			records: record.New(pool, people),
			people:  people,
			pending: pending.New(pool),
			tx:      postgres.NewTxManager(pool),
			pool:    pool,
		}, pool.Close, nil
	}
	return nil, nil, fmt.Errorf("unknown store backend %q", cfg.Store.Backend)
}
