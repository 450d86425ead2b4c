package domain

import "time"

// MessageID is the transport-assigned identifier of an inbound message. It is
// the idempotency key of the whole capture pipeline.
type MessageID string

func (id MessageID) String() string { return string(id) }

// CapturedMessage is an inbound note. It is never mutated after ingestion.
type CapturedMessage struct {
	ID             MessageID
	ConversationID string
	Text           string
	CapturedAt     time.Time
	// ReplyTo is set when the transport links this message to an earlier one.
	ReplyTo MessageID
}
