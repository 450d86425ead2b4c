package memory

import (
	"context"
	"fmt"
	"sort"

	"github.com/google/uuid"

	"github.com/ranajunaid001/second-braind-junaid/internal/domain"
)

// RecordRepo serves the category collections. Person reads are answered
// from the profile collection; Person writes go through PersonRepo.
type RecordRepo struct {
	s *Store
}

// Create stores a non-person record and assigns its sequence number. An
// active record of the same category for the same message is rejected with
// ErrAlreadyExists.
func (r *RecordRepo) Create(ctx context.Context, rec domain.Record) (domain.Record, error) {
	c := rec.Category()
	if c == domain.CategoryPerson {
		return nil, domain.NewValidationError("category", "person profiles are created through the person repository")
	}
	if !c.IsValid() {
		return nil, fmt.Errorf("%w: %q", domain.ErrUnknownCategory, c)
	}

	var out domain.Record
	err := r.s.write(ctx, func(st *state) error {
		m := rec.Meta()
		for _, existing := range st.records[c] {
			em := existing.Meta()
			if em.IsActive && em.MessageID == m.MessageID {
				return fmt.Errorf("%s record for %s: %w", c, m.MessageID, domain.ErrAlreadyExists)
			}
		}
		row := cloneRecord(rec)
		rm := row.Meta()
		if rm.ID == uuid.Nil {
			rm.ID = uuid.New()
		}
		rm.Seq = st.nextSeq()
		st.records[c] = append(st.records[c], row)
		out = cloneRecord(row)
		return nil
	})
	return out, err
}

// GetActiveByMessage returns the active record a message produced in a
// category, or ErrNotFound.
func (r *RecordRepo) GetActiveByMessage(ctx context.Context, c domain.Category, id domain.MessageID) (domain.Record, error) {
	var out domain.Record
	err := r.s.read(ctx, func(st *state) error {
		if c == domain.CategoryPerson {
			for _, p := range st.people {
				if !p.profile.IsActive {
					continue
				}
				for _, n := range p.notes {
					if n.active && n.note.MessageID == id {
						out = p.materialize()
						return nil
					}
				}
			}
			return fmt.Errorf("%s record for %s: %w", c, id, domain.ErrNotFound)
		}
		for _, rec := range st.records[c] {
			m := rec.Meta()
			if m.IsActive && m.MessageID == id {
				out = cloneRecord(rec)
				return nil
			}
		}
		return fmt.Errorf("%s record for %s: %w", c, id, domain.ErrNotFound)
	})
	return out, err
}

// DeactivateByMessage soft-deletes every active non-person record a message
// produced in a category and returns how many were deactivated.
func (r *RecordRepo) DeactivateByMessage(ctx context.Context, c domain.Category, id domain.MessageID) (int, error) {
	var n int
	err := r.s.write(ctx, func(st *state) error {
		for _, rec := range st.records[c] {
			m := rec.Meta()
			if m.IsActive && m.MessageID == id {
				m.IsActive = false
				n++
			}
		}
		return nil
	})
	return n, err
}

// ListActive returns the active records of a category, most recent first:
// Person by last_touched, others by insertion. Ties fall back to insertion
// order, newest first. limit <= 0 returns all.
func (r *RecordRepo) ListActive(ctx context.Context, c domain.Category, limit int) ([]domain.Record, error) {
	var out []domain.Record
	err := r.s.read(ctx, func(st *state) error {
		if c == domain.CategoryPerson {
			for _, p := range st.people {
				if p.profile.IsActive {
					out = append(out, p.materialize())
				}
			}
			sort.SliceStable(out, func(i, j int) bool {
				a, b := out[i].(*domain.PersonProfile), out[j].(*domain.PersonProfile)
				if !a.LastTouched.Equal(b.LastTouched) {
					return a.LastTouched.After(b.LastTouched)
				}
				return a.Seq > b.Seq
			})
		} else {
			recs := st.records[c]
			for i := len(recs) - 1; i >= 0; i-- {
				if recs[i].Meta().IsActive {
					out = append(out, cloneRecord(recs[i]))
				}
			}
		}
		if limit > 0 && len(out) > limit {
			out = out[:limit]
		}
		return nil
	})
	return out, err
}

// CountActive returns the number of active records in a category.
func (r *RecordRepo) CountActive(ctx context.Context, c domain.Category) (int, error) {
	var n int
	err := r.s.read(ctx, func(st *state) error {
		if c == domain.CategoryPerson {
			for _, p := range st.people {
				if p.profile.IsActive {
					n++
				}
			}
			return nil
		}
		for _, rec := range st.records[c] {
			if rec.Meta().IsActive {
				n++
			}
		}
		return nil
	})
	return n, err
}

// List returns every record of a category, active or not, in insertion
// order.
func (r *RecordRepo) List(ctx context.Context, c domain.Category) ([]domain.Record, error) {
	var out []domain.Record
	err := r.s.read(ctx, func(st *state) error {
		if c == domain.CategoryPerson {
			for _, p := range st.people {
				out = append(out, p.materialize())
			}
			return nil
		}
		for _, rec := range st.records[c] {
			out = append(out, cloneRecord(rec))
		}
		return nil
	})
	return out, err
}
