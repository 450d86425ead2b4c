package memory

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/ranajunaid001/second-braind-junaid/internal/domain"
)

// InboxLogRepo is the in-memory inbox log.
type InboxLogRepo struct {
	s *Store
}

// Create appends an entry. A second entry for the same message id is
// rejected with ErrAlreadyExists.
func (r *InboxLogRepo) Create(ctx context.Context, e *domain.InboxLogEntry) (*domain.InboxLogEntry, error) {
	var out *domain.InboxLogEntry
	err := r.s.write(ctx, func(st *state) error {
		if _, ok := st.inboxByMsg[e.MessageID]; ok {
			return fmt.Errorf("inbox log %s: %w", e.MessageID, domain.ErrAlreadyExists)
		}
		row := cloneEntry(e)
		if row.ID == uuid.Nil {
			row.ID = uuid.New()
		}
		row.Seq = st.nextSeq()
		st.inbox = append(st.inbox, row)
		st.inboxByMsg[row.MessageID] = row
		out = cloneEntry(row)
		return nil
	})
	return out, err
}

// GetByMessageID returns the entry of a message or ErrNotFound.
func (r *InboxLogRepo) GetByMessageID(ctx context.Context, id domain.MessageID) (*domain.InboxLogEntry, error) {
	var out *domain.InboxLogEntry
	err := r.s.read(ctx, func(st *state) error {
		e, ok := st.inboxByMsg[id]
		if !ok {
			return fmt.Errorf("inbox log %s: %w", id, domain.ErrNotFound)
		}
		out = cloneEntry(e)
		return nil
	})
	return out, err
}

// Latest returns the newest entry of a conversation.
func (r *InboxLogRepo) Latest(ctx context.Context, conversationID string) (*domain.InboxLogEntry, error) {
	return r.latest(ctx, conversationID, false)
}

// LatestUncorrected returns the newest entry of a conversation that no fix
// command has moved.
func (r *InboxLogRepo) LatestUncorrected(ctx context.Context, conversationID string) (*domain.InboxLogEntry, error) {
	return r.latest(ctx, conversationID, true)
}

func (r *InboxLogRepo) latest(ctx context.Context, conversationID string, uncorrected bool) (*domain.InboxLogEntry, error) {
	var out *domain.InboxLogEntry
	err := r.s.read(ctx, func(st *state) error {
		for i := len(st.inbox) - 1; i >= 0; i-- {
			e := st.inbox[i]
			if e.ConversationID != conversationID {
				continue
			}
			if uncorrected && e.Corrected() {
				continue
			}
			out = cloneEntry(e)
			return nil
		}
		return fmt.Errorf("inbox log for conversation %s: %w", conversationID, domain.ErrNotFound)
	})
	return out, err
}

// SetFixedTo records the category a message was moved to and which
// workflow moved it.
func (r *InboxLogRepo) SetFixedTo(ctx context.Context, id domain.MessageID, c domain.Category, by domain.FixSource) error {
	return r.s.write(ctx, func(st *state) error {
		e, ok := st.inboxByMsg[id]
		if !ok {
			return fmt.Errorf("inbox log %s: %w", id, domain.ErrNotFound)
		}
		fixed := c
		e.FixedTo = &fixed
		e.FixedBy = by
		return nil
	})
}

// List returns entries newest first. limit <= 0 returns all.
func (r *InboxLogRepo) List(ctx context.Context, limit int) ([]*domain.InboxLogEntry, error) {
	var out []*domain.InboxLogEntry
	err := r.s.read(ctx, func(st *state) error {
		for i := len(st.inbox) - 1; i >= 0; i-- {
			if limit > 0 && len(out) == limit {
				break
			}
			out = append(out, cloneEntry(st.inbox[i]))
		}
		return nil
	})
	return out, err
}
