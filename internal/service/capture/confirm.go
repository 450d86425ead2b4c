package capture

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/ranajunaid001/second-braind-junaid/internal/domain"
)

// Choice is the user's answer to a confirmation request: either accept the
// suggestion or name a category.
type Choice struct {
	Accept   bool
	Category domain.Category
}

// ConfirmResult describes a resolved confirmation.
type ConfirmResult struct {
	MessageID domain.MessageID
	Category  domain.Category
	Suggested domain.Category
	Fields    domain.Fields
	Record    domain.Record
}

// Overridden reports whether the user picked a category other than the
// suggestion.
func (r ConfirmResult) Overridden() bool { return r.Category != r.Suggested }

// HasPending reports whether the conversation has an unexpired pending
// confirmation.
func (s *Service) HasPending(ctx context.Context, conversationID string) (bool, error) {
	ctx, cancel := s.withStoreTimeout(ctx)
	defer cancel()

	_, err := s.pending.LatestForConversation(ctx, conversationID, s.now())
	if errors.Is(err, domain.ErrNotFound) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("get pending confirmation: %w", err)
	}
	return true, nil
}

// Confirm resolves the newest unexpired pending confirmation of a
// conversation and files the message. A category other than the suggestion
// is recorded as fixed_to on the inbox log entry. The pending confirmation
// is kept when filing fails so the user can answer again.
//
// The message lock is shared with capture and correction. A pending
// confirmation that a fix command resolved while Confirm waited for it is
// reported as domain.ErrNoPending.
func (s *Service) Confirm(ctx context.Context, conversationID string, choice Choice) (ConfirmResult, error) {
	unlockConv := s.locks.Lock("conversation:" + conversationID)
	defer unlockConv()

	p, err := s.latestPending(ctx, conversationID)
	if err != nil {
		return ConfirmResult{}, err
	}

	unlockMsg := s.locks.Lock(string(p.MessageID))
	defer unlockMsg()

	if current, err := s.latestPending(ctx, conversationID); err != nil {
		return ConfirmResult{}, err
	} else if current.MessageID != p.MessageID {
		return ConfirmResult{}, domain.ErrNoPending
	}

	res := ConfirmResult{MessageID: p.MessageID, Suggested: p.Suggested}
	switch {
	case choice.Accept && p.Suggested == "":
		return res, domain.NewValidationError("category", "no suggestion to accept, reply with a category")
	case choice.Accept:
		res.Category, res.Fields = p.Suggested, p.Fields
	case !choice.Category.IsValid():
		return res, fmt.Errorf("%w: %q", domain.ErrUnknownCategory, choice.Category)
	case choice.Category == p.Suggested:
		res.Category, res.Fields = p.Suggested, p.Fields
	default:
		res.Category = choice.Category
		res.Fields = s.classifier.Extract(ctx, choice.Category, p.Text)
	}

	rec, err := s.filer.File(ctx, p.Message(), res.Category, res.Fields)
	if err != nil {
		return res, err
	}
	res.Record = rec

	storeCtx, cancel := s.withStoreTimeout(ctx)
	defer cancel()

	if res.Overridden() {
		if err := s.inbox.SetFixedTo(storeCtx, p.MessageID, res.Category, domain.FixedByConfirmation); err != nil {
			return res, domain.StoreWriteError("set fixed_to", err)
		}
	}
	if err := s.pending.Delete(storeCtx, p.MessageID); err != nil {
		return res, domain.StoreWriteError("delete pending confirmation", err)
	}

	s.metrics.ObserveConfirmation(res.Category.String(), !res.Overridden())
	s.publish(ctx, domain.Event{
		Type: domain.EventFiled, MessageID: p.MessageID, Category: res.Category,
		Previous: p.Suggested, Confidence: 1, At: s.now(),
	})
	s.log.InfoContext(ctx, "confirmation resolved",
		slog.String("message_id", p.MessageID.String()),
		slog.String("category", res.Category.String()),
		slog.String("suggested", p.Suggested.String()),
	)
	return res, nil
}

func (s *Service) latestPending(ctx context.Context, conversationID string) (*domain.PendingConfirmation, error) {
	ctx, cancel := s.withStoreTimeout(ctx)
	defer cancel()

	p, err := s.pending.LatestForConversation(ctx, conversationID, s.now())
	if errors.Is(err, domain.ErrNotFound) {
		return nil, domain.ErrNoPending
	}
	if err != nil {
		return nil, fmt.Errorf("get pending confirmation: %w", err)
	}
	return p, nil
}

// PurgeExpired drops pending confirmations whose window has passed.
func (s *Service) PurgeExpired(ctx context.Context) (int, error) {
	ctx, cancel := s.withStoreTimeout(ctx)
	defer cancel()

	n, err := s.pending.DeleteExpired(ctx, s.now())
	if err != nil {
		return 0, domain.StoreWriteError("delete expired pending confirmations", err)
	}
	if n > 0 {
		s.log.InfoContext(ctx, "expired confirmations purged", slog.Int("count", n))
	}
	return n, nil
}
