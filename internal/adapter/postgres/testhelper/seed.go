package testhelper

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/ranajunaid001/second-braind-junaid/internal/domain"
)

// MessageID returns a message id no other test uses, so tests can share
// the database without truncating it.
func MessageID() domain.MessageID {
	return domain.MessageID("msg-" + uuid.New().String()[:8])
}

// ConversationID returns a unique conversation id.
func ConversationID() string {
	return "conv-" + uuid.New().String()[:8]
}

// Now returns the current time at the database's microsecond precision.
func Now() time.Time {
	return time.Now().UTC().Truncate(time.Microsecond)
}

// SeedEntry inserts an inbox log entry classified into c.
func SeedEntry(t *testing.T, pool *pgxpool.Pool, conversationID string, c domain.Category) domain.InboxLogEntry {
	t.Helper()

	e := domain.InboxLogEntry{
		ID:             uuid.New(),
		MessageID:      MessageID(),
		ConversationID: conversationID,
		Title:          "seeded",
		CapturedText:   "seeded text",
		ClassifiedAs:   c,
		Confidence:     0.9,
		Timestamp:      Now(),
	}
	err := pool.QueryRow(context.Background(),
		`INSERT INTO inbox_log (id, message_id, conversation_id, title, captured_text, classified_as, confidence, captured_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8) RETURNING seq`,
		e.ID, string(e.MessageID), e.ConversationID, e.Title, e.CapturedText, string(c), e.Confidence, e.Timestamp,
	).Scan(&e.Seq)
	if err != nil {
		t.Fatalf("testhelper: seed inbox entry: %v", err)
	}
	return e
}
