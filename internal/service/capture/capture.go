package capture

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/ranajunaid001/second-braind-junaid/internal/domain"
	"github.com/ranajunaid001/second-braind-junaid/internal/metrics"
)

// MaxTextLength bounds a captured note.
const MaxTextLength = 4000

// Status is the outcome of one capture.
type Status int

const (
	// StatusFiled means a record was stored.
	StatusFiled Status = iota + 1
	// StatusNeedsConfirmation means the message waits for the user.
	StatusNeedsConfirmation
	// StatusDuplicate means the message id was already processed.
	StatusDuplicate
)

// Result describes what a capture did.
type Result struct {
	Status         Status
	Classification domain.Classification
	Entry          *domain.InboxLogEntry
	Record         domain.Record
	Pending        *domain.PendingConfirmation
	// Fault is set when the classifier failed and the message was parked.
	Fault error
}

func validateMessage(msg domain.CapturedMessage) error {
	var errs []domain.FieldError
	if msg.ID == "" {
		errs = append(errs, domain.FieldError{Field: "message_id", Message: "required"})
	}
	text := strings.TrimSpace(msg.Text)
	if text == "" {
		errs = append(errs, domain.FieldError{Field: "text", Message: "required"})
	}
	if len([]rune(text)) > MaxTextLength {
		errs = append(errs, domain.FieldError{Field: "text", Message: fmt.Sprintf("max %d characters", MaxTextLength)})
	}
	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// Capture processes one inbound message.
//
// A message id that already has an inbox log entry is short-circuited as a
// duplicate. Otherwise exactly one log entry is written before anything
// else is stored. A classifier fault or a confidence at or below 0.60 parks
// the message as a pending confirmation; anything above is filed. A failure
// to file is returned as is and leaves the log entry in place.
func (s *Service) Capture(ctx context.Context, msg domain.CapturedMessage) (Result, error) {
	msg.Text = strings.TrimSpace(msg.Text)
	if err := validateMessage(msg); err != nil {
		return Result{}, err
	}
	if msg.CapturedAt.IsZero() {
		msg.CapturedAt = s.now()
	}

	unlock := s.locks.Lock(string(msg.ID))
	defer unlock()

	start := s.now()

	if existing, err := s.lookupEntry(ctx, msg.ID); err != nil {
		return Result{}, err
	} else if existing != nil {
		s.log.InfoContext(ctx, "duplicate message skipped", slog.String("message_id", msg.ID.String()))
		s.metrics.ObserveCapture(metrics.OutcomeDuplicate, existing.ClassifiedAs.String(), "", s.now().Sub(start))
		return Result{Status: StatusDuplicate, Entry: existing}, nil
	}

	cl, classifyErr := s.classifier.Classify(ctx, msg.Text)
	if classifyErr != nil {
		cl.Confidence = 0
	}

	entry, err := s.writeEntry(ctx, msg, cl)
	if errors.Is(err, domain.ErrAlreadyExists) {
		existing, lookupErr := s.lookupEntry(ctx, msg.ID)
		if lookupErr != nil {
			return Result{}, lookupErr
		}
		return Result{Status: StatusDuplicate, Entry: existing}, nil
	}
	if err != nil {
		s.metrics.ObserveCapture(metrics.OutcomeFailed, cl.Category.String(), cl.Source.String(), s.now().Sub(start))
		return Result{Classification: cl}, err
	}

	res := Result{Classification: cl, Entry: entry, Fault: classifyErr}

	if classifyErr != nil || domain.NeedsConfirmation(cl.Confidence) {
		p, err := s.park(ctx, msg, cl)
		if err != nil {
			s.metrics.ObserveCapture(metrics.OutcomeFailed, cl.Category.String(), cl.Source.String(), s.now().Sub(start))
			return res, err
		}
		res.Status = StatusNeedsConfirmation
		res.Pending = p
		s.metrics.ObserveCapture(metrics.OutcomePending, cl.Category.String(), cl.Source.String(), s.now().Sub(start))
		s.publish(ctx, domain.Event{
			Type: domain.EventPending, MessageID: msg.ID, Category: cl.Category,
			Confidence: cl.Confidence, At: s.now(),
		})
		return res, nil
	}

	rec, err := s.filer.File(ctx, msg, cl.Category, cl.Fields)
	if err != nil {
		s.log.WarnContext(ctx, "filing failed, inbox log kept",
			slog.String("message_id", msg.ID.String()),
			slog.String("category", cl.Category.String()),
			slog.String("error", err.Error()),
		)
		s.metrics.ObserveCapture(metrics.OutcomeFailed, cl.Category.String(), cl.Source.String(), s.now().Sub(start))
		return res, err
	}

	res.Status = StatusFiled
	res.Record = rec
	s.metrics.ObserveCapture(metrics.OutcomeFiled, cl.Category.String(), cl.Source.String(), s.now().Sub(start))
	s.publish(ctx, domain.Event{
		Type: domain.EventFiled, MessageID: msg.ID, Category: cl.Category,
		Confidence: cl.Confidence, At: s.now(),
	})

	s.log.InfoContext(ctx, "message captured",
		slog.String("message_id", msg.ID.String()),
		slog.String("category", cl.Category.String()),
		slog.Float64("confidence", cl.Confidence),
		slog.String("source", cl.Source.String()),
		slog.String("text", domain.Truncate(msg.Text, 50)),
	)
	return res, nil
}

// lookupEntry returns nil, nil when the message has no log entry.
func (s *Service) lookupEntry(ctx context.Context, id domain.MessageID) (*domain.InboxLogEntry, error) {
	ctx, cancel := s.withStoreTimeout(ctx)
	defer cancel()

	e, err := s.inbox.GetByMessageID(ctx, id)
	if errors.Is(err, domain.ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get inbox log entry: %w", err)
	}
	return e, nil
}

func (s *Service) writeEntry(ctx context.Context, msg domain.CapturedMessage, cl domain.Classification) (*domain.InboxLogEntry, error) {
	ctx, cancel := s.withStoreTimeout(ctx)
	defer cancel()

	e, err := s.inbox.Create(ctx, &domain.InboxLogEntry{
		ID:             uuid.New(),
		MessageID:      msg.ID,
		ConversationID: msg.ConversationID,
		Title:          cl.Title(msg.Text),
		CapturedText:   msg.Text,
		ClassifiedAs:   cl.Category,
		Confidence:     cl.Confidence,
		Timestamp:      msg.CapturedAt,
	})
	if errors.Is(err, domain.ErrAlreadyExists) {
		return nil, err
	}
	if err != nil {
		return nil, domain.StoreWriteError("create inbox log entry", err)
	}
	return e, nil
}

func (s *Service) park(ctx context.Context, msg domain.CapturedMessage, cl domain.Classification) (*domain.PendingConfirmation, error) {
	ctx, cancel := s.withStoreTimeout(ctx)
	defer cancel()

	now := s.now()
	p := &domain.PendingConfirmation{
		MessageID:      msg.ID,
		ConversationID: msg.ConversationID,
		Text:           msg.Text,
		Suggested:      cl.Category,
		Confidence:     cl.Confidence,
		Fields:         cl.Fields,
		CreatedAt:      now,
		ExpiresAt:      now.Add(s.cfg.PendingTTL),
	}
	if err := s.pending.Save(ctx, p); err != nil {
		return nil, domain.StoreWriteError("save pending confirmation", err)
	}

	s.log.InfoContext(ctx, "message awaiting confirmation",
		slog.String("message_id", msg.ID.String()),
		slog.String("suggested", cl.Category.String()),
		slog.Float64("confidence", cl.Confidence),
	)
	return p, nil
}
