package people

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/ranajunaid001/second-braind-junaid/internal/domain"
)

// MergeInput is one observation about a named person.
type MergeInput struct {
	Name      string
	Context   string
	FollowUps string
	Note      string
	MessageID domain.MessageID
	At        time.Time
}

// Validate returns ErrNameExtraction when no usable name is present.
func (i MergeInput) Validate() error {
	if domain.NormalizeName(i.Name) == "" {
		return domain.ErrNameExtraction
	}
	var errs []domain.FieldError
	if strings.TrimSpace(i.Note) == "" {
		errs = append(errs, domain.FieldError{Field: "note", Message: "required"})
	}
	if i.MessageID == "" {
		errs = append(errs, domain.FieldError{Field: "message_id", Message: "required"})
	}
	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// Merge files an observation under the active profile with the same
// normalized name, creating the profile on first mention. On an existing
// profile the note is appended and last_touched refreshed; context is never
// overwritten and follow-ups are replaced only by a non-empty value. A
// message that already contributed a note is not appended twice.
//
// Two first mentions racing on the same name collide on the store's unique
// name constraint; the loser retries once and appends instead.
func (s *Service) Merge(ctx context.Context, input MergeInput) (*domain.PersonProfile, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	ctx, cancel := s.withStoreTimeout(ctx)
	defer cancel()

	var (
		result  *domain.PersonProfile
		created bool
		err     error
	)
	for attempt := 0; attempt < 2; attempt++ {
		result, created, err = s.merge(ctx, input)
		if !errors.Is(err, domain.ErrConflict) {
			break
		}
	}
	if err != nil {
		return nil, err
	}

	s.log.InfoContext(ctx, "person merged",
		slog.String("person_id", result.ID.String()),
		slog.String("message_id", input.MessageID.String()),
		slog.Bool("created", created),
		slog.Int("notes", len(result.Notes)),
	)

	return result, nil
}

func (s *Service) merge(ctx context.Context, input MergeInput) (result *domain.PersonProfile, created bool, err error) {
	key := domain.NormalizeName(input.Name)
	note := domain.PersonNote{
		Text:      strings.TrimSpace(input.Note),
		MessageID: input.MessageID,
		AddedAt:   input.At,
	}

	err = s.tx.RunInTx(ctx, func(ctx context.Context) error {
		existing, err := s.people.GetActiveByName(ctx, key)
		if err != nil && !errors.Is(err, domain.ErrNotFound) {
			return fmt.Errorf("get person: %w", err)
		}

		if existing == nil {
			profileContext := strings.TrimSpace(input.Context)
			if profileContext == "" {
				profileContext = note.Text
			}
			p, err := s.people.Create(ctx, &domain.PersonProfile{
				RecordMeta: domain.RecordMeta{
					ID:        uuid.New(),
					MessageID: input.MessageID,
					IsActive:  true,
					CreatedAt: input.At,
				},
				Name:        strings.Join(strings.Fields(input.Name), " "),
				Context:     profileContext,
				Notes:       []domain.PersonNote{note},
				FollowUps:   strings.TrimSpace(input.FollowUps),
				LastTouched: input.At,
			})
			if err != nil {
				if errors.Is(err, domain.ErrAlreadyExists) {
					return fmt.Errorf("create person: %w", domain.ErrConflict)
				}
				return domain.StoreWriteError("create person", err)
			}
			result, created = p, true
			return nil
		}

		if existing.HasNoteFrom(input.MessageID) {
			result = existing
			return nil
		}

		if err := s.people.AddNote(ctx, existing.ID, note); err != nil {
			return domain.StoreWriteError("add person note", err)
		}

		followUps := existing.FollowUps
		if f := strings.TrimSpace(input.FollowUps); f != "" {
			followUps = f
		}
		if err := s.people.Touch(ctx, existing.ID, input.At, followUps); err != nil {
			return domain.StoreWriteError("touch person", err)
		}

		existing.Notes = append(existing.Notes, note)
		existing.FollowUps = followUps
		existing.LastTouched = input.At
		result = existing
		return nil
	})
	return result, created, err
}

// RetractByMessage withdraws every note that messageID contributed to any
// active profile. A profile left without notes is deactivated. It returns
// the number of notes withdrawn.
func (s *Service) RetractByMessage(ctx context.Context, messageID domain.MessageID) (int, error) {
	ctx, cancel := s.withStoreTimeout(ctx)
	defer cancel()

	profiles, err := s.people.ListActiveByMessage(ctx, messageID)
	if err != nil {
		return 0, fmt.Errorf("list people by message: %w", err)
	}

	total := 0
	for _, p := range profiles {
		n, err := s.retractOne(ctx, p, messageID)
		if err != nil {
			return total, err
		}
		total += n
	}
	return total, nil
}

func (s *Service) retractOne(ctx context.Context, p *domain.PersonProfile, messageID domain.MessageID) (int, error) {
	var n int
	err := s.tx.RunInTx(ctx, func(ctx context.Context) error {
		current, err := s.people.GetActiveByName(ctx, domain.NormalizeName(p.Name))
		if errors.Is(err, domain.ErrNotFound) {
			return nil
		}
		if err != nil {
			return fmt.Errorf("get person: %w", err)
		}

		n, err = s.people.RetractNotes(ctx, current.ID, messageID)
		if err != nil {
			return domain.StoreWriteError("retract person notes", err)
		}

		remaining := 0
		for _, note := range current.Notes {
			if note.MessageID != messageID {
				remaining++
			}
		}
		if remaining == 0 {
			if err := s.people.Deactivate(ctx, current.ID); err != nil {
				return domain.StoreWriteError("deactivate person", err)
			}
		}
		return nil
	})
	if err != nil {
		return 0, err
	}

	s.log.InfoContext(ctx, "person notes retracted",
		slog.String("person_id", p.ID.String()),
		slog.String("message_id", messageID.String()),
		slog.Int("retracted", n),
	)
	return n, nil
}
