package correction

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/ranajunaid001/second-braind-junaid/internal/domain"
)

// Result describes an applied or skipped correction.
type Result struct {
	MessageID domain.MessageID
	From      domain.Category
	To        domain.Category
	Record    domain.Record
	// NoOp is true when the message already lived under the target.
	NoOp bool
}

// Correct moves a logged message to category to.
//
// If an active record for the message already exists under to, nothing
// changes. Otherwise the records the message produced under every other
// category are deactivated (Person notes are retracted), the message is
// filed again under to without reclassification, any pending confirmation
// for it is dropped and fixed_to is set on its log entry. All store writes
// happen in one transaction, so a failure leaves no partial correction.
func (s *Service) Correct(ctx context.Context, messageID domain.MessageID, to domain.Category) (Result, error) {
	if !to.IsValid() {
		return Result{}, fmt.Errorf("%w: %q", domain.ErrUnknownCategory, to)
	}

	unlock := s.locks.Lock(string(messageID))
	defer unlock()

	entry, err := s.lookupEntry(ctx, messageID)
	if err != nil {
		return Result{}, err
	}

	res := Result{MessageID: messageID, From: entry.EffectiveCategory(), To: to}

	existing, err := s.activeRecord(ctx, to, messageID)
	if err != nil {
		return res, err
	}
	if existing != nil {
		res.NoOp, res.Record = true, existing
		s.log.InfoContext(ctx, "correction already applied",
			slog.String("message_id", messageID.String()),
			slog.String("category", to.String()),
		)
		return res, nil
	}

	fields := s.extractor.Extract(ctx, to, entry.CapturedText)

	txCtx := ctx
	if s.storeTimeout > 0 {
		var cancel context.CancelFunc
		txCtx, cancel = context.WithTimeout(ctx, s.storeTimeout)
		defer cancel()
	}

	err = s.tx.RunInTx(txCtx, func(ctx context.Context) error {
		for _, c := range domain.DigestOrder {
			if c == to {
				continue
			}
			if err := s.withdraw(ctx, c, messageID); err != nil {
				return err
			}
		}

		rec, err := s.filer.File(ctx, entry.Message(), to, fields)
		if err != nil {
			return err
		}
		res.Record = rec

		if err := s.pending.Delete(ctx, messageID); err != nil {
			return domain.StoreWriteError("delete pending confirmation", err)
		}
		if err := s.inbox.SetFixedTo(ctx, messageID, to, domain.FixedByCorrection); err != nil {
			return domain.StoreWriteError("set fixed_to", err)
		}
		return nil
	})
	if err != nil {
		s.log.WarnContext(ctx, "correction failed",
			slog.String("message_id", messageID.String()),
			slog.String("category", to.String()),
			slog.String("error", err.Error()),
		)
		return res, err
	}

	s.metrics.ObserveCorrection(res.From.String(), to.String())
	if err := s.events.Publish(ctx, domain.Event{
		Type: domain.EventFixed, MessageID: messageID, Category: to, Previous: res.From, At: time.Now().UTC(),
	}); err != nil {
		s.log.WarnContext(ctx, "publish event failed", slog.String("error", err.Error()))
	}

	s.log.InfoContext(ctx, "message corrected",
		slog.String("message_id", messageID.String()),
		slog.String("from", res.From.String()),
		slog.String("to", to.String()),
	)
	return res, nil
}

func (s *Service) lookupEntry(ctx context.Context, id domain.MessageID) (*domain.InboxLogEntry, error) {
	ctx, cancel := s.storeCtx(ctx)
	defer cancel()

	entry, err := s.inbox.GetByMessageID(ctx, id)
	if errors.Is(err, domain.ErrNotFound) {
		return nil, fmt.Errorf("message %s: %w", id, domain.ErrUnknownMessage)
	}
	if err != nil {
		return nil, fmt.Errorf("get inbox log entry: %w", err)
	}
	return entry, nil
}

// activeRecord returns nil, nil when the message has no active record in c.
func (s *Service) activeRecord(ctx context.Context, c domain.Category, id domain.MessageID) (domain.Record, error) {
	ctx, cancel := s.storeCtx(ctx)
	defer cancel()

	rec, err := s.records.GetActiveByMessage(ctx, c, id)
	if errors.Is(err, domain.ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get active %s record: %w", c, err)
	}
	return rec, nil
}

func (s *Service) withdraw(ctx context.Context, c domain.Category, id domain.MessageID) error {
	if c == domain.CategoryPerson {
		if _, err := s.people.RetractByMessage(ctx, id); err != nil {
			return fmt.Errorf("retract person notes: %w", err)
		}
		return nil
	}
	if _, err := s.records.DeactivateByMessage(ctx, c, id); err != nil {
		return domain.StoreWriteError(fmt.Sprintf("deactivate %s records", c), err)
	}
	return nil
}

func (s *Service) storeCtx(ctx context.Context) (context.Context, context.CancelFunc) {
	if s.storeTimeout <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, s.storeTimeout)
}
