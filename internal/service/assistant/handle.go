package assistant

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/ranajunaid001/second-braind-junaid/internal/command"
	"github.com/ranajunaid001/second-braind-junaid/internal/domain"
	"github.com/ranajunaid001/second-braind-junaid/internal/service/capture"
	"github.com/ranajunaid001/second-braind-junaid/internal/service/digest"
)

// Handle parses one inbound message, runs the matching operation and
// returns the reply. Every fault becomes a reply; the error is returned
// alongside it for logging by the transport.
func (s *Service) Handle(ctx context.Context, msg domain.CapturedMessage) (string, error) {
	switch cmd := command.Parse(msg.Text).(type) {
	case command.Fix:
		return s.fix(ctx, msg, cmd)
	case command.Top:
		return s.top(ctx, cmd)
	case command.Who:
		return s.who(ctx, cmd)
	case command.Confirm:
		pending, err := s.capture.HasPending(ctx, msg.ConversationID)
		if err != nil {
			return replySaveFailed, err
		}
		if pending {
			return s.confirm(ctx, msg, cmd)
		}
		return s.captureText(ctx, msg)
	default:
		return s.captureText(ctx, msg)
	}
}

func (s *Service) captureText(ctx context.Context, msg domain.CapturedMessage) (string, error) {
	res, err := s.capture.Capture(ctx, msg)
	switch {
	case err == nil:
	case errors.Is(err, domain.ErrValidation):
		return replyRejected(err), err
	case errors.Is(err, domain.ErrNameExtraction):
		return replyNoName, err
	default:
		return replySaveFailed, err
	}

	switch res.Status {
	case capture.StatusDuplicate:
		return replyDuplicate, nil
	case capture.StatusNeedsConfirmation:
		return replyNeedsConfirmation(msg.Text, res.Classification, res.Fault != nil), nil
	default:
		return replyFiled(res.Classification, msg.Text), nil
	}
}

func (s *Service) confirm(ctx context.Context, msg domain.CapturedMessage, cmd command.Confirm) (string, error) {
	res, err := s.capture.Confirm(ctx, msg.ConversationID, capture.Choice{Accept: cmd.Accept, Category: cmd.Category})
	switch {
	case err == nil:
	case errors.Is(err, domain.ErrNoPending):
		return replyNoPending, err
	case errors.Is(err, domain.ErrValidation):
		return replyNoSuggestion, err
	case errors.Is(err, domain.ErrNameExtraction):
		return replyNoName, err
	default:
		return replySaveFailed, err
	}

	verb := "Filed"
	if res.Overridden() {
		verb = "Corrected and filed"
	}
	return fmt.Sprintf("✓ %s as: %s\nTitle: %s", verb, res.Category, res.Record.Title()), nil
}

func (s *Service) fix(ctx context.Context, msg domain.CapturedMessage, cmd command.Fix) (string, error) {
	if cmd.Category == "" {
		return replyInvalidCategory, nil
	}

	target, err := s.fixTarget(ctx, msg, cmd.Category)
	if err != nil {
		if errors.Is(err, domain.ErrUnknownMessage) {
			return replyFixNotFound, err
		}
		return replySaveFailed, err
	}
	if target == nil {
		return replyNoRecent, nil
	}

	res, err := s.correction.Correct(ctx, target.MessageID, cmd.Category)
	switch {
	case err == nil:
	case errors.Is(err, domain.ErrUnknownMessage):
		return replyFixNotFound, err
	case errors.Is(err, domain.ErrNameExtraction):
		return replyNoName, err
	default:
		return replySaveFailed, err
	}

	if res.NoOp {
		return fmt.Sprintf("✓ Already filed as %s.", res.To), nil
	}
	return fmt.Sprintf("✓ Fixed. Moved from %s to %s.", res.From, res.To), nil
}

// fixTarget picks the message a fix applies to: the replied-to message when
// the transport links one, else the newest uncorrected message of the
// conversation. A newest message already corrected to the same category is
// chosen instead, so repeating a fix stays a no-op. It returns nil when
// there is nothing to fix.
func (s *Service) fixTarget(ctx context.Context, msg domain.CapturedMessage, to domain.Category) (*domain.InboxLogEntry, error) {
	if msg.ReplyTo != "" {
		e, err := s.inbox.GetByMessageID(ctx, msg.ReplyTo)
		if errors.Is(err, domain.ErrNotFound) {
			return nil, fmt.Errorf("message %s: %w", msg.ReplyTo, domain.ErrUnknownMessage)
		}
		return e, err
	}

	latest, err := s.inbox.Latest(ctx, msg.ConversationID)
	if errors.Is(err, domain.ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("latest inbox entry: %w", err)
	}
	if latest.Corrected() && *latest.FixedTo == to {
		return latest, nil
	}

	e, err := s.inbox.LatestUncorrected(ctx, msg.ConversationID)
	if errors.Is(err, domain.ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("latest uncorrected inbox entry: %w", err)
	}
	return e, nil
}

func (s *Service) top(ctx context.Context, cmd command.Top) (string, error) {
	if cmd.All {
		d, err := s.digest.Build(ctx)
		if err != nil {
			return replyDigestFailed, err
		}
		return digest.Render(d), nil
	}
	if cmd.Category == "" {
		return replyUnknownTable, nil
	}

	items, err := s.digest.TopItems(ctx, cmd.Category, s.digest.TopN())
	if err != nil {
		return replyDigestFailed, err
	}
	return digest.RenderTop(cmd.Category, items), nil
}

func (s *Service) who(ctx context.Context, cmd command.Who) (string, error) {
	res, err := s.people.Lookup(ctx, cmd.Name)
	if err != nil && !errors.Is(err, domain.ErrNotFound) {
		s.log.WarnContext(ctx, "person lookup failed",
			slog.String("name", cmd.Name),
			slog.String("error", err.Error()),
		)
		return replySaveFailed, err
	}
	return s.people.RenderLookup(res), nil
}
