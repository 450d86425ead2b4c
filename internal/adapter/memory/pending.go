package memory

import (
	"context"
	"fmt"
	"time"

	"github.com/ranajunaid001/second-braind-junaid/internal/domain"
)

// PendingRepo holds pending confirmations keyed by message id.
type PendingRepo struct {
	s *Store
}

// Save inserts or replaces the pending confirmation of a message.
func (r *PendingRepo) Save(ctx context.Context, p *domain.PendingConfirmation) error {
	return r.s.write(ctx, func(st *state) error {
		st.pending[p.MessageID] = clonePending(p)
		return nil
	})
}

// LatestForConversation returns the newest unexpired pending confirmation
// of a conversation, or ErrNotFound.
func (r *PendingRepo) LatestForConversation(ctx context.Context, conversationID string, now time.Time) (*domain.PendingConfirmation, error) {
	var out *domain.PendingConfirmation
	err := r.s.read(ctx, func(st *state) error {
		var best *domain.PendingConfirmation
		for _, p := range st.pending {
			if p.ConversationID != conversationID || p.Expired(now) {
				continue
			}
			if best == nil || p.CreatedAt.After(best.CreatedAt) ||
				(p.CreatedAt.Equal(best.CreatedAt) && p.MessageID > best.MessageID) {
				best = p
			}
		}
		if best == nil {
			return fmt.Errorf("pending for conversation %s: %w", conversationID, domain.ErrNotFound)
		}
		out = clonePending(best)
		return nil
	})
	return out, err
}

// Delete removes the pending confirmation of a message. Missing is not an
// error.
func (r *PendingRepo) Delete(ctx context.Context, id domain.MessageID) error {
	return r.s.write(ctx, func(st *state) error {
		delete(st.pending, id)
		return nil
	})
}

// DeleteExpired removes every pending confirmation expired at now.
func (r *PendingRepo) DeleteExpired(ctx context.Context, now time.Time) (int, error) {
	var n int
	err := r.s.write(ctx, func(st *state) error {
		for id, p := range st.pending {
			if p.Expired(now) {
				delete(st.pending, id)
				n++
			}
		}
		return nil
	})
	return n, err
}
