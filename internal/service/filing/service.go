// Package filing turns a categorized message into a stored record. It is
// shared by capture, confirmation and correction.
package filing

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/ranajunaid001/second-braind-junaid/internal/domain"
	"github.com/ranajunaid001/second-braind-junaid/internal/service/people"
)

type recordRepo interface {
	Create(ctx context.Context, rec domain.Record) (domain.Record, error)
}

type personMerger interface {
	Merge(ctx context.Context, input people.MergeInput) (*domain.PersonProfile, error)
}

// Service creates category records.
type Service struct {
	records      recordRepo
	people       personMerger
	storeTimeout time.Duration
	now          func() time.Time
	log          *slog.Logger
}

// NewService creates a new Filing service.
func NewService(
	log *slog.Logger,
	records recordRepo,
	people personMerger,
	storeTimeout time.Duration,
) *Service {
	return &Service{
		records:      records,
		people:       people,
		storeTimeout: storeTimeout,
		now:          func() time.Time { return time.Now().UTC() },
		log:          log.With("service", "filing"),
	}
}

// File stores msg under category c. Extracted fields win over the raw text.
// Person goes through the profile merger and requires a "name" field;
// everything else becomes a fresh active record. Store failures are
// reported as ErrStoreWrite.
func (s *Service) File(ctx context.Context, msg domain.CapturedMessage, c domain.Category, fields domain.Fields) (domain.Record, error) {
	at := msg.CapturedAt
	if at.IsZero() {
		at = s.now()
	}

	if c == domain.CategoryPerson {
		p, err := s.people.Merge(ctx, people.MergeInput{
			Name:      fields.Get("name"),
			Context:   fields.Get("context"),
			FollowUps: fields.Get("follow_ups"),
			Note:      msg.Text,
			MessageID: msg.ID,
			At:        at,
		})
		if err != nil {
			return nil, fmt.Errorf("merge person: %w", err)
		}
		return p, nil
	}

	rec, err := domain.BuildRecord(c, fields, msg.Text, msg.ID, at)
	if err != nil {
		return nil, fmt.Errorf("build record: %w", err)
	}

	writeCtx := ctx
	if s.storeTimeout > 0 {
		var cancel context.CancelFunc
		writeCtx, cancel = context.WithTimeout(ctx, s.storeTimeout)
		defer cancel()
	}

	saved, err := s.records.Create(writeCtx, rec)
	if err != nil {
		if errors.Is(err, domain.ErrAlreadyExists) {
			return nil, fmt.Errorf("create %s record: %w", c, domain.ErrDuplicateMessage)
		}
		s.log.ErrorContext(ctx, "record write failed",
			slog.String("message_id", msg.ID.String()),
			slog.String("category", c.String()),
			slog.String("error", err.Error()),
		)
		return nil, domain.StoreWriteError(fmt.Sprintf("create %s record", c), err)
	}

	s.log.InfoContext(ctx, "record filed",
		slog.String("message_id", msg.ID.String()),
		slog.String("category", c.String()),
		slog.String("record_id", saved.Meta().ID.String()),
	)
	return saved, nil
}
