package people

import (
	"context"
	"errors"
	"fmt"

	"github.com/ranajunaid001/second-braind-junaid/internal/domain"
)

// LookupResult is the outcome of a who-lookup. Exactly one of Profile and
// Candidates is set.
type LookupResult struct {
	Query   string
	Profile *domain.PersonProfile
	// Exact is false when Profile was found by prefix only.
	Exact bool
	// Candidates holds every prefix match when more than one exists.
	Candidates []*domain.PersonProfile
}

// Ambiguous reports whether the query matched several people.
func (r LookupResult) Ambiguous() bool { return len(r.Candidates) > 1 }

// Lookup resolves a name to one active profile. An exact normalized match
// wins; otherwise profiles with a name word starting with the query are
// considered. No match returns ErrNotFound. Several prefix matches are
// returned as candidates, never narrowed to one.
func (s *Service) Lookup(ctx context.Context, name string) (LookupResult, error) {
	key := domain.NormalizeName(name)
	res := LookupResult{Query: name}
	if key == "" {
		return res, domain.NewValidationError("name", "required")
	}

	ctx, cancel := s.withStoreTimeout(ctx)
	defer cancel()

	p, err := s.people.GetActiveByName(ctx, key)
	switch {
	case err == nil:
		res.Profile, res.Exact = p, true
		return res, nil
	case !errors.Is(err, domain.ErrNotFound):
		return res, fmt.Errorf("get person: %w", err)
	}

	candidates, err := s.people.FindActiveByPrefix(ctx, key, MaxCandidates)
	if err != nil {
		return res, fmt.Errorf("find people by prefix: %w", err)
	}

	switch len(candidates) {
	case 0:
		return res, fmt.Errorf("person %q: %w", name, domain.ErrNotFound)
	case 1:
		res.Profile = candidates[0]
	default:
		res.Candidates = candidates
	}
	return res, nil
}
