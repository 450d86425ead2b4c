package people

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/ranajunaid001/second-braind-junaid/internal/domain"
)

// MaxCandidates bounds the prefix search of a lookup.
const MaxCandidates = 10

type personRepo interface {
	GetActiveByName(ctx context.Context, nameNormalized string) (*domain.PersonProfile, error)
	FindActiveByPrefix(ctx context.Context, prefix string, limit int) ([]*domain.PersonProfile, error)
	ListActiveByMessage(ctx context.Context, messageID domain.MessageID) ([]*domain.PersonProfile, error)
	Create(ctx context.Context, p *domain.PersonProfile) (*domain.PersonProfile, error)
	AddNote(ctx context.Context, personID uuid.UUID, note domain.PersonNote) error
	Touch(ctx context.Context, personID uuid.UUID, lastTouched time.Time, followUps string) error
	RetractNotes(ctx context.Context, personID uuid.UUID, messageID domain.MessageID) (int, error)
	Deactivate(ctx context.Context, personID uuid.UUID) error
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// Service owns person profiles: merge on capture, lookup, and retraction on
// correction. Every read-modify-write of a profile runs in one transaction;
// the store locks the profile row for its duration.
type Service struct {
	people       personRepo
	tx           txManager
	storeTimeout time.Duration
	loc          *time.Location
	log          *slog.Logger
}

// NewService creates a new People service. loc is used when rendering dates;
// nil means UTC.
func NewService(
	log *slog.Logger,
	people personRepo,
	tx txManager,
	storeTimeout time.Duration,
	loc *time.Location,
) *Service {
	if loc == nil {
		loc = time.UTC
	}
	return &Service{
		people:       people,
		tx:           tx,
		storeTimeout: storeTimeout,
		loc:          loc,
		log:          log.With("service", "people"),
	}
}

func (s *Service) withStoreTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	if s.storeTimeout <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, s.storeTimeout)
}
