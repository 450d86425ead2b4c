package classifier

import (
	"fmt"
	"regexp"
	"sort"
	"strings"

	"github.com/ranajunaid001/second-braind-junaid/internal/domain"
)

// DefaultForceRules sends anything mentioning a draft to LinkedIn.
var DefaultForceRules = map[string][]string{
	"linkedin": {"draft"},
}

// ForceRule maps a marker keyword to a fixed category.
type ForceRule struct {
	Category domain.Category
	Keyword  string
	re       *regexp.Regexp
}

// Match reports whether the keyword occurs in text as a whole word,
// case-insensitively.
func (r ForceRule) Match(text string) bool {
	return r.re.MatchString(text)
}

// NewForceRules compiles keyword lists keyed by category name or alias.
// Rules are ordered by category (DigestOrder) and then by keyword, so
// evaluation order does not depend on map iteration.
func NewForceRules(spec map[string][]string) ([]ForceRule, error) {
	byCategory := make(map[domain.Category][]string, len(spec))
	for name, keywords := range spec {
		c, err := domain.ParseCategory(name)
		if err != nil {
			return nil, fmt.Errorf("force rule %q: %w", name, err)
		}
		for _, kw := range keywords {
			kw = strings.TrimSpace(kw)
			if kw == "" {
				return nil, fmt.Errorf("force rule %q: %w", name, domain.NewValidationError("keyword", "must not be empty"))
			}
			byCategory[c] = append(byCategory[c], kw)
		}
	}

	var rules []ForceRule
	for _, c := range domain.DigestOrder {
		keywords := byCategory[c]
		sort.Strings(keywords)
		for _, kw := range keywords {
			re, err := regexp.Compile(`(?i)\b` + regexp.QuoteMeta(kw) + `\b`)
			if err != nil {
				return nil, fmt.Errorf("force rule %q: %w", kw, err)
			}
			rules = append(rules, ForceRule{Category: c, Keyword: kw, re: re})
		}
	}
	return rules, nil
}

// MatchForceRule returns the category of the first matching rule.
func (s *Service) MatchForceRule(text string) (domain.Category, bool) {
	for _, r := range s.rules {
		if r.Match(text) {
			return r.Category, true
		}
	}
	return "", false
}
