package domain

import (
	"strconv"
	"time"

	"github.com/google/uuid"
)

// FixSource names the workflow that set fixed_to on an inbox log entry.
type FixSource string

const (
	// FixedByConfirmation marks a pending confirmation answered with a
	// category other than the suggestion.
	FixedByConfirmation FixSource = "confirmation"
	// FixedByCorrection marks a fix command.
	FixedByCorrection FixSource = "correction"
)

// InboxLogEntry is the audit record of one captured message. Exactly one
// exists per message; FixedTo is its only sanctioned mutation.
type InboxLogEntry struct {
	ID             uuid.UUID
	Seq            int64
	MessageID      MessageID
	ConversationID string
	Title          string
	CapturedText   string
	// ClassifiedAs is empty when the classifier faulted.
	ClassifiedAs Category
	Confidence   float64
	Timestamp    time.Time
	FixedTo      *Category
	// FixedBy is empty while FixedTo is nil.
	FixedBy FixSource
}

// Corrected reports whether a fix command moved the message. A confirmation
// that overrode the suggestion does not count.
func (e *InboxLogEntry) Corrected() bool {
	return e.FixedTo != nil && e.FixedBy != FixedByConfirmation
}

// EffectiveCategory is the category the message currently lives under.
func (e *InboxLogEntry) EffectiveCategory() Category {
	if e.FixedTo != nil {
		return *e.FixedTo
	}
	return e.ClassifiedAs
}

// Values returns the row in InboxLogSchema column order.
func (e *InboxLogEntry) Values() []string {
	fixed := ""
	if e.FixedTo != nil {
		fixed = string(*e.FixedTo)
	}
	return []string{
		e.Title, e.CapturedText, string(e.ClassifiedAs),
		strconv.FormatFloat(e.Confidence, 'f', 2, 64),
		formatTime(e.Timestamp), string(e.MessageID), fixed,
	}
}

// Message reconstructs the captured message the entry was written for.
func (e *InboxLogEntry) Message() CapturedMessage {
	return CapturedMessage{
		ID:             e.MessageID,
		ConversationID: e.ConversationID,
		Text:           e.CapturedText,
		CapturedAt:     e.Timestamp,
	}
}

// PendingConfirmation holds a low-confidence classification until the user
// confirms or overrides it.
type PendingConfirmation struct {
	MessageID      MessageID
	ConversationID string
	Text           string
	// Suggested is empty when the classifier faulted.
	Suggested  Category
	Confidence float64
	Fields     Fields
	CreatedAt  time.Time
	ExpiresAt  time.Time
}

// Expired reports whether the pending confirmation can no longer be resolved.
func (p *PendingConfirmation) Expired(now time.Time) bool {
	return !now.Before(p.ExpiresAt)
}

// Message reconstructs the captured message that is waiting.
func (p *PendingConfirmation) Message() CapturedMessage {
	return CapturedMessage{
		ID:             p.MessageID,
		ConversationID: p.ConversationID,
		Text:           p.Text,
		CapturedAt:     p.CreatedAt,
	}
}
