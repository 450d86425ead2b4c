package digest

import (
	"fmt"
	"strings"

	"github.com/ranajunaid001/second-braind-junaid/internal/domain"
)

const (
	digestHeader = "📋 Daily Digest"
	allCaughtUp  = "No pending actions. You're all caught up! 🎉"
)

// Render formats a digest for chat delivery.
func Render(d Digest) string {
	if d.Empty() {
		return digestHeader + "\n\n" + allCaughtUp
	}

	var b strings.Builder
	b.WriteString(digestHeader)
	if len(d.Focus) > 0 {
		b.WriteString("\n\nFocus:")
		for _, f := range d.Focus {
			b.WriteString("\n• " + f)
		}
	}
	if body := RenderSections(d); body != "" {
		b.WriteString("\n\n" + body)
	}
	return b.String()
}

// RenderSections renders the non-empty category blocks in digest order.
func RenderSections(d Digest) string {
	blocks := make([]string, 0, len(d.Sections))
	for _, sec := range d.Sections {
		if sec.Total == 0 {
			continue
		}
		var b strings.Builder
		fmt.Fprintf(&b, "%s (%d)", sec.Category, sec.Total)
		for _, rec := range sec.Items {
			b.WriteString("\n• " + ItemLine(rec))
		}
		blocks = append(blocks, b.String())
	}
	return strings.Join(blocks, "\n\n")
}

// RenderTop formats the reply of "top <category>".
func RenderTop(c domain.Category, items []domain.Record) string {
	if len(items) == 0 {
		return fmt.Sprintf("No active items in %s.", c)
	}
	var b strings.Builder
	fmt.Fprintf(&b, "Top %s:", c)
	for _, rec := range items {
		b.WriteString("\n• " + ItemLine(rec))
	}
	return b.String()
}

// ItemLine is the one-line form of a record: its title plus the field a
// reader acts on.
func ItemLine(rec domain.Record) string {
	title := rec.Title()
	var detail string
	switch r := rec.(type) {
	case *domain.PersonProfile:
		detail = r.FollowUps
	case *domain.AdminTask:
		switch {
		case r.Due != "":
			detail = "due " + r.Due
		case r.NextAction != "":
			detail = r.NextAction
		}
	case *domain.Interview:
		detail = string(r.Status)
		if r.NextStep != "" {
			detail += ", next: " + r.NextStep
		}
	case *domain.Idea:
		detail = r.OneLiner
	case *domain.LinkedInDraft:
		detail = string(r.Status)
	}
	if detail == "" || detail == title {
		return title
	}
	return title + " - " + detail
}
