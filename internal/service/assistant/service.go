// Package assistant routes parsed chat commands to the engine services and
// turns their results and faults into reply text.
package assistant

import (
	"context"
	"log/slog"

	"github.com/ranajunaid001/second-braind-junaid/internal/domain"
	"github.com/ranajunaid001/second-braind-junaid/internal/service/capture"
	"github.com/ranajunaid001/second-braind-junaid/internal/service/correction"
	"github.com/ranajunaid001/second-braind-junaid/internal/service/digest"
	"github.com/ranajunaid001/second-braind-junaid/internal/service/people"
)

type capturer interface {
	Capture(ctx context.Context, msg domain.CapturedMessage) (capture.Result, error)
	HasPending(ctx context.Context, conversationID string) (bool, error)
	Confirm(ctx context.Context, conversationID string, choice capture.Choice) (capture.ConfirmResult, error)
}

type corrector interface {
	Correct(ctx context.Context, messageID domain.MessageID, to domain.Category) (correction.Result, error)
}

type inboxReader interface {
	GetByMessageID(ctx context.Context, id domain.MessageID) (*domain.InboxLogEntry, error)
	Latest(ctx context.Context, conversationID string) (*domain.InboxLogEntry, error)
	LatestUncorrected(ctx context.Context, conversationID string) (*domain.InboxLogEntry, error)
}

type digester interface {
	TopItems(ctx context.Context, c domain.Category, n int) ([]domain.Record, error)
	Build(ctx context.Context) (digest.Digest, error)
	TopN() int
}

type personFinder interface {
	Lookup(ctx context.Context, name string) (people.LookupResult, error)
	RenderLookup(res people.LookupResult) string
}

// Service is the command router.
type Service struct {
	capture    capturer
	correction corrector
	inbox      inboxReader
	digest     digester
	people     personFinder
	log        *slog.Logger
}

// NewService creates a new Assistant service.
func NewService(
	log *slog.Logger,
	capture capturer,
	correction corrector,
	inbox inboxReader,
	digest digester,
	people personFinder,
) *Service {
	return &Service{
		capture:    capture,
		correction: correction,
		inbox:      inbox,
		digest:     digest,
		people:     people,
		log:        log.With("service", "assistant"),
	}
}
