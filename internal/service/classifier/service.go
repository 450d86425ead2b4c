package classifier

import (
	"context"
	"log/slog"
	"time"

	"github.com/ranajunaid001/second-braind-junaid/internal/domain"
)

// DefaultTimeout bounds a single oracle call when none is configured.
const DefaultTimeout = 15 * time.Second

type oracle interface {
	Classify(ctx context.Context, text string) (domain.OracleVerdict, error)
	Extract(ctx context.Context, category domain.Category, text string) (domain.Fields, error)
}

// Service decides the category of a note: force rules first, then the model
// oracle.
type Service struct {
	oracle  oracle
	rules   []ForceRule
	timeout time.Duration
	log     *slog.Logger
}

// NewService creates a new classifier. A non-positive timeout falls back to
// DefaultTimeout.
func NewService(
	log *slog.Logger,
	oracle oracle,
	rules []ForceRule,
	timeout time.Duration,
) *Service {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &Service{
		oracle:  oracle,
		rules:   rules,
		timeout: timeout,
		log:     log.With("service", "classifier"),
	}
}
