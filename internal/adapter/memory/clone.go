package memory

import (
	"maps"

	"github.com/ranajunaid001/second-braind-junaid/internal/domain"
)

func cloneEntry(e *domain.InboxLogEntry) *domain.InboxLogEntry {
	c := *e
	if e.FixedTo != nil {
		f := *e.FixedTo
		c.FixedTo = &f
	}
	return &c
}

func clonePending(p *domain.PendingConfirmation) *domain.PendingConfirmation {
	c := *p
	c.Fields = maps.Clone(p.Fields)
	return &c
}

func cloneRecord(r domain.Record) domain.Record {
	switch v := r.(type) {
	case *domain.Idea:
		c := *v
		return &c
	case *domain.Interview:
		c := *v
		return &c
	case *domain.AdminTask:
		c := *v
		return &c
	case *domain.LinkedInDraft:
		c := *v
		return &c
	case *domain.PersonProfile:
		c := *v
		c.Notes = append([]domain.PersonNote(nil), v.Notes...)
		return &c
	}
	return r
}

// materialize builds the caller-facing profile with active notes only.
func (p *personRow) materialize() *domain.PersonProfile {
	out := p.profile
	out.Notes = nil
	for _, n := range p.notes {
		if n.active {
			out.Notes = append(out.Notes, n.note)
		}
	}
	return &out
}
