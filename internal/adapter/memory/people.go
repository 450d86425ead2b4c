package memory

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/ranajunaid001/second-braind-junaid/internal/domain"
)

// PersonRepo is the in-memory profile collection.
type PersonRepo struct {
	s *Store
}

func (st *state) activePerson(key string) *personRow {
	for _, p := range st.people {
		if p.profile.IsActive && domain.NormalizeName(p.profile.Name) == key {
			return p
		}
	}
	return nil
}

func (st *state) personByID(id uuid.UUID) *personRow {
	for _, p := range st.people {
		if p.profile.ID == id {
			return p
		}
	}
	return nil
}

// GetActiveByName returns the active profile with the given normalized
// name, or ErrNotFound.
func (r *PersonRepo) GetActiveByName(ctx context.Context, nameNormalized string) (*domain.PersonProfile, error) {
	var out *domain.PersonProfile
	err := r.s.read(ctx, func(st *state) error {
		p := st.activePerson(nameNormalized)
		if p == nil {
			return fmt.Errorf("person %q: %w", nameNormalized, domain.ErrNotFound)
		}
		out = p.materialize()
		return nil
	})
	return out, err
}

// FindActiveByPrefix returns active profiles with a name word starting with
// prefix, ordered by name.
func (r *PersonRepo) FindActiveByPrefix(ctx context.Context, prefix string, limit int) ([]*domain.PersonProfile, error) {
	var out []*domain.PersonProfile
	err := r.s.read(ctx, func(st *state) error {
		for _, p := range st.people {
			if !p.profile.IsActive {
				continue
			}
			name := domain.NormalizeName(p.profile.Name)
			if strings.HasPrefix(name, prefix) || strings.Contains(name, " "+prefix) {
				out = append(out, p.materialize())
			}
		}
		sort.SliceStable(out, func(i, j int) bool {
			return domain.NormalizeName(out[i].Name) < domain.NormalizeName(out[j].Name)
		})
		if limit > 0 && len(out) > limit {
			out = out[:limit]
		}
		return nil
	})
	return out, err
}

// ListActiveByMessage returns active profiles holding an active note from
// the message.
func (r *PersonRepo) ListActiveByMessage(ctx context.Context, id domain.MessageID) ([]*domain.PersonProfile, error) {
	var out []*domain.PersonProfile
	err := r.s.read(ctx, func(st *state) error {
		for _, p := range st.people {
			if !p.profile.IsActive {
				continue
			}
			for _, n := range p.notes {
				if n.active && n.note.MessageID == id {
					out = append(out, p.materialize())
					break
				}
			}
		}
		return nil
	})
	return out, err
}

// Create stores a new profile with its initial notes. A second active
// profile with the same normalized name is rejected with ErrAlreadyExists.
func (r *PersonRepo) Create(ctx context.Context, p *domain.PersonProfile) (*domain.PersonProfile, error) {
	var out *domain.PersonProfile
	err := r.s.write(ctx, func(st *state) error {
		key := domain.NormalizeName(p.Name)
		if st.activePerson(key) != nil {
			return fmt.Errorf("person %q: %w", key, domain.ErrAlreadyExists)
		}
		row := &personRow{profile: *p}
		row.profile.Notes = nil
		if row.profile.ID == uuid.Nil {
			row.profile.ID = uuid.New()
		}
		row.profile.Seq = st.nextSeq()
		for _, n := range p.Notes {
			row.notes = append(row.notes, noteRow{note: n, active: true})
		}
		st.people = append(st.people, row)
		out = row.materialize()
		return nil
	})
	return out, err
}

// AddNote appends a note to a profile.
func (r *PersonRepo) AddNote(ctx context.Context, personID uuid.UUID, note domain.PersonNote) error {
	return r.s.write(ctx, func(st *state) error {
		p := st.personByID(personID)
		if p == nil {
			return fmt.Errorf("person %s: %w", personID, domain.ErrNotFound)
		}
		p.notes = append(p.notes, noteRow{note: note, active: true})
		return nil
	})
}

// Touch sets last_touched and follow-ups.
func (r *PersonRepo) Touch(ctx context.Context, personID uuid.UUID, lastTouched time.Time, followUps string) error {
	return r.s.write(ctx, func(st *state) error {
		p := st.personByID(personID)
		if p == nil {
			return fmt.Errorf("person %s: %w", personID, domain.ErrNotFound)
		}
		p.profile.LastTouched = lastTouched
		p.profile.FollowUps = followUps
		return nil
	})
}

// RetractNotes deactivates the notes a message contributed to a profile.
func (r *PersonRepo) RetractNotes(ctx context.Context, personID uuid.UUID, id domain.MessageID) (int, error) {
	var n int
	err := r.s.write(ctx, func(st *state) error {
		p := st.personByID(personID)
		if p == nil {
			return fmt.Errorf("person %s: %w", personID, domain.ErrNotFound)
		}
		for i := range p.notes {
			if p.notes[i].active && p.notes[i].note.MessageID == id {
				p.notes[i].active = false
				n++
			}
		}
		return nil
	})
	return n, err
}

// Deactivate soft-deletes a profile.
func (r *PersonRepo) Deactivate(ctx context.Context, personID uuid.UUID) error {
	return r.s.write(ctx, func(st *state) error {
		p := st.personByID(personID)
		if p == nil {
			return fmt.Errorf("person %s: %w", personID, domain.ErrNotFound)
		}
		p.profile.IsActive = false
		return nil
	})
}
