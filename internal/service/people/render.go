package people

import (
	"fmt"
	"strings"

	"github.com/ranajunaid001/second-braind-junaid/internal/domain"
)

// Render formats a profile for chat: name, context, one bullet per note in
// insertion order, follow-ups and the last-touched date.
func (s *Service) Render(p *domain.PersonProfile) string {
	var b strings.Builder
	fmt.Fprintf(&b, "👤 %s\n", p.Name)
	if p.Context != "" {
		fmt.Fprintf(&b, "%s\n", p.Context)
	}
	b.WriteString("\n")

	for _, n := range p.Notes {
		fmt.Fprintf(&b, "• %s\n", n.Text)
	}

	if p.FollowUps != "" {
		fmt.Fprintf(&b, "\n📌 %s\n", p.FollowUps)
	}

	if !p.LastTouched.IsZero() {
		fmt.Fprintf(&b, "\nLast updated: %s", p.LastTouched.In(s.loc).Format("Jan 02"))
	}

	return strings.TrimSpace(b.String())
}

// RenderLookup formats any lookup result, flagging prefix-only matches and
// listing candidates when the name is ambiguous.
func (s *Service) RenderLookup(res LookupResult) string {
	if res.Ambiguous() {
		var b strings.Builder
		fmt.Fprintf(&b, "Found %d people:\n\n", len(res.Candidates))
		for _, c := range res.Candidates {
			b.WriteString("• " + c.Name)
			if c.Context != "" {
				fmt.Fprintf(&b, " (%s...)", domain.Truncate(c.Context, 30))
			}
			b.WriteString("\n")
		}
		b.WriteString("\nBe more specific.")
		return b.String()
	}

	if res.Profile == nil {
		return fmt.Sprintf("No one found matching '%s'.", res.Query)
	}

	out := s.Render(res.Profile)
	if !res.Exact {
		out = fmt.Sprintf("Closest match for '%s':\n\n%s", res.Query, out)
	}
	return out
}
