// Package stub provides a deterministic keyword oracle for offline runs and
// local development. It never calls the network.
package stub

import (
	"context"
	"strings"
	"unicode"

	"github.com/ranajunaid001/second-braind-junaid/internal/domain"
)

const (
	matchConfidence   = 0.8
	defaultConfidence = 0.4
)

var keywords = []struct {
	category domain.Category
	words    []string
}{
	{domain.CategoryInterview, []string{"interview", "recruiter", "applied", "application", "job", "role", "offer"}},
	{domain.CategoryAdmin, []string{"pay", "bill", "buy", "appointment", "renew", "dentist", "groceries", "errand", "tax"}},
	{domain.CategoryLinkedIn, []string{"linkedin", "post"}},
	{domain.CategoryPerson, []string{"met", "call", "follow up", "friend", "birthday", "coworker", "colleague"}},
	{domain.CategoryIdea, []string{"idea", "build", "app", "startup", "concept"}},
}

// words never taken as a person's name.
var notNames = map[string]bool{
	"i": true, "met": true, "call": true, "follow": true, "the": true, "a": true,
	"my": true, "today": true, "tomorrow": true, "yesterday": true,
}

// Oracle answers from keyword lists.
type Oracle struct{}

// New returns a keyword oracle.
func New() *Oracle { return &Oracle{} }

// Classify picks the first category with a matching keyword; without a
// match it suggests Ideas at a confidence that asks for confirmation.
func (o *Oracle) Classify(ctx context.Context, text string) (domain.OracleVerdict, error) {
	if err := ctx.Err(); err != nil {
		return domain.OracleVerdict{}, err
	}

	lower := strings.ToLower(text)
	for _, k := range keywords {
		for _, w := range k.words {
			if strings.Contains(lower, w) {
				return domain.OracleVerdict{
					Category:   k.category.OracleName(),
					Confidence: matchConfidence,
					Fields:     fieldsFor(k.category, text),
				}, nil
			}
		}
	}
	return domain.OracleVerdict{
		Category:   domain.CategoryIdea.OracleName(),
		Confidence: defaultConfidence,
		Fields:     fieldsFor(domain.CategoryIdea, text),
	}, nil
}

// Extract returns the fields the keyword heuristics can derive.
func (o *Oracle) Extract(ctx context.Context, c domain.Category, text string) (domain.Fields, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return fieldsFor(c, text), nil
}

// Summarize returns the first three bullet lines of the digest.
func (o *Oracle) Summarize(ctx context.Context, digest string) ([]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	var out []string
	for _, line := range strings.Split(digest, "\n") {
		if strings.HasPrefix(line, "• ") {
			out = append(out, line)
			if len(out) == 3 {
				break
			}
		}
	}
	return out, nil
}

func fieldsFor(c domain.Category, text string) domain.Fields {
	title := domain.Truncate(strings.TrimSpace(text), 50)
	switch c {
	case domain.CategoryPerson:
		f := domain.Fields{"context": ""}
		if name := guessName(text); name != "" {
			f["name"] = name
		}
		return f
	case domain.CategoryIdea:
		return domain.Fields{"idea": title}
	case domain.CategoryAdmin:
		return domain.Fields{"task": title, "status": string(domain.TaskStatusOpen)}
	case domain.CategoryLinkedIn:
		return domain.Fields{"idea": title, "notes": text, "status": string(domain.DraftStatusDraft)}
	}
	return domain.Fields{}
}

// guessName returns the first capitalized word that is not a common lead-in.
func guessName(text string) string {
	for _, w := range strings.Fields(text) {
		w = strings.TrimFunc(w, func(r rune) bool { return !unicode.IsLetter(r) })
		if w == "" || notNames[strings.ToLower(w)] {
			continue
		}
		if unicode.IsUpper([]rune(w)[0]) {
			return w
		}
	}
	return ""
}
