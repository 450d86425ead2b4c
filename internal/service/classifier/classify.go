package classifier

import (
	"context"
	"fmt"
	"log/slog"
	"math"

	"github.com/ranajunaid001/second-braind-junaid/internal/domain"
)

// Classify labels text with a category and confidence.
//
// A force-rule match yields confidence 1.0 whatever the oracle does; the
// oracle is then only asked to extract fields, and an extraction failure
// leaves the fields empty. Without a match the oracle decides; any oracle
// failure, timeout, unknown category or out-of-range confidence is returned
// as ErrClassifierFault together with a zero-confidence result.
func (s *Service) Classify(ctx context.Context, text string) (domain.Classification, error) {
	if c, ok := s.MatchForceRule(text); ok {
		return domain.Classification{
			Category:   c,
			Confidence: 1.0,
			Fields:     s.Extract(ctx, c, text),
			Source:     domain.SourceRule,
		}, nil
	}

	fault := domain.Classification{Source: domain.SourceFallback}

	callCtx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	verdict, err := s.oracle.Classify(callCtx, text)
	if err != nil {
		s.log.WarnContext(ctx, "oracle classify failed",
			slog.String("text", domain.Truncate(text, 50)),
			slog.String("error", err.Error()),
		)
		return fault, fmt.Errorf("%w: %w", domain.ErrClassifierFault, err)
	}

	c, err := domain.ParseCategory(verdict.Category)
	if err != nil {
		s.log.WarnContext(ctx, "oracle returned unknown category",
			slog.String("category", verdict.Category),
		)
		return fault, fmt.Errorf("%w: %w", domain.ErrClassifierFault, err)
	}

	if math.IsNaN(verdict.Confidence) || verdict.Confidence < 0 || verdict.Confidence > 1 {
		s.log.WarnContext(ctx, "oracle returned confidence out of range",
			slog.Float64("confidence", verdict.Confidence),
		)
		fault.Category = c
		return fault, fmt.Errorf("%w: confidence %v out of [0,1]", domain.ErrClassifierFault, verdict.Confidence)
	}

	return domain.Classification{
		Category:   c,
		Confidence: verdict.Confidence,
		Fields:     verdict.Fields,
		Source:     domain.SourceModel,
	}, nil
}

// Extract asks the oracle for the fields of a known category. Failures are
// logged and yield empty fields, so callers fall back to raw-text defaults.
func (s *Service) Extract(ctx context.Context, c domain.Category, text string) domain.Fields {
	callCtx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	fields, err := s.oracle.Extract(callCtx, c, text)
	if err != nil {
		s.log.WarnContext(ctx, "oracle extract failed, using defaults",
			slog.String("category", c.String()),
			slog.String("error", err.Error()),
		)
		return domain.Fields{}
	}
	if fields == nil {
		return domain.Fields{}
	}
	return fields
}
