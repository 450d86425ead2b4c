// Package nats publishes inbox events to a NATS subject per event type.
package nats

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	natsgo "github.com/nats-io/nats.go"

	"github.com/ranajunaid001/second-braind-junaid/internal/config"
	"github.com/ranajunaid001/second-braind-junaid/internal/domain"
)

type conn interface {
	Publish(subject string, data []byte) error
}

// Publisher sends events as JSON. Subjects are "<prefix>.<event type>".
type Publisher struct {
	conn   conn
	prefix string
	log    *slog.Logger
}

// Connect dials the NATS server. The returned close function drains the
// connection.
func Connect(log *slog.Logger, cfg config.NATSConfig) (*Publisher, func(), error) {
	nc, err := natsgo.Connect(cfg.URL, natsgo.Name("second-brain"))
	if err != nil {
		return nil, nil, fmt.Errorf("connect to NATS: %w", err)
	}
	closeFn := func() {
		if err := nc.Drain(); err != nil {
			nc.Close()
		}
	}
	return NewPublisher(log, nc, cfg.SubjectPrefix), closeFn, nil
}

// NewPublisher wraps an established connection.
func NewPublisher(log *slog.Logger, c conn, prefix string) *Publisher {
	return &Publisher{
		conn:   c,
		prefix: prefix,
		log:    log.With("adapter", "nats"),
	}
}

// Subject returns the subject an event type is published on.
func (p *Publisher) Subject(t domain.EventType) string {
	if p.prefix == "" {
		return string(t)
	}
	return p.prefix + "." + string(t)
}

// Publish sends one event. Delivery is fire-and-forget.
func (p *Publisher) Publish(ctx context.Context, e domain.Event) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	data, err := json.Marshal(e)
	if err != nil {
		return fmt.Errorf("marshal event: %w", err)
	}
	subject := p.Subject(e.Type)
	if err := p.conn.Publish(subject, data); err != nil {
		return fmt.Errorf("publish %s: %w", subject, err)
	}
	p.log.DebugContext(ctx, "event published", slog.String("subject", subject))
	return nil
}

// Noop discards events. It is used when no NATS url is configured.
type Noop struct{}

func (Noop) Publish(context.Context, domain.Event) error { return nil }
