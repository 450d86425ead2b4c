package domain

import "time"

// EventType names a state change published to the event bus.
type EventType string

const (
	EventFiled   EventType = "inbox.filed"
	EventPending EventType = "inbox.pending"
	EventFixed   EventType = "inbox.fixed"
	EventDigest  EventType = "digest.sent"
)

// Event is a small, transport-neutral notification about the inbox.
type Event struct {
	Type       EventType `json:"type"`
	MessageID  MessageID `json:"message_id,omitempty"`
	Category   Category  `json:"category,omitempty"`
	Previous   Category  `json:"previous,omitempty"`
	Confidence float64   `json:"confidence,omitempty"`
	At         time.Time `json:"at"`
}
