//go:build integration

package record_test

import (
	"context"
	"errors"
	"testing"

	"github.com/ranajunaid001/second-braind-junaid/internal/adapter/postgres/person"
	"github.com/ranajunaid001/second-braind-junaid/internal/adapter/postgres/record"
	"github.com/ranajunaid001/second-braind-junaid/internal/adapter/postgres/testhelper"
	"github.com/ranajunaid001/second-braind-junaid/internal/domain"
)

func newRepo(t *testing.T) *record.Repo {
	t.Helper()
	pool := testhelper.SetupTestDB(t)
	return record.New(pool, person.New(pool))
}

func build(t *testing.T, c domain.Category, fields domain.Fields, text string) domain.Record {
	t.Helper()
	rec, err := domain.BuildRecord(c, fields, text, testhelper.MessageID(), testhelper.Now())
	if err != nil {
		t.Fatalf("BuildRecord: %v", err)
	}
	return rec
}

func TestRepo_CreateEveryCategory(t *testing.T) {
	t.Parallel()
	repo := newRepo(t)
	ctx := context.Background()

	tests := []struct {
		category domain.Category
		fields   domain.Fields
		text     string
	}{
		{domain.CategoryIdea, domain.Fields{"idea": "Habit app", "one_liner": "streaks for adults"}, "habit app idea"},
		{domain.CategoryInterview, domain.Fields{"company": "Acme", "role": "SRE", "status": "Applied"}, "applied to acme"},
		{domain.CategoryAdmin, domain.Fields{"task": "Pay rent", "due": "Friday"}, "pay rent friday"},
		{domain.CategoryLinkedIn, domain.Fields{"idea": "Post on on-call"}, "linkedin draft on-call"},
	}

	for _, tt := range tests {
		t.Run(string(tt.category), func(t *testing.T) {
			in := build(t, tt.category, tt.fields, tt.text)
			created, err := repo.Create(ctx, in)
			if err != nil {
				t.Fatalf("Create: %v", err)
			}
			if created.Meta().Seq == 0 {
				t.Fatal("expected seq to be assigned")
			}

			got, err := repo.GetActiveByMessage(ctx, tt.category, in.Meta().MessageID)
			if err != nil {
				t.Fatalf("GetActiveByMessage: %v", err)
			}
			if got.Title() != in.Title() || got.Category() != tt.category {
				t.Fatalf("got %q (%s), want %q", got.Title(), got.Category(), in.Title())
			}
		})
	}
}

func TestRepo_ActiveUniquePerMessage(t *testing.T) {
	t.Parallel()
	repo := newRepo(t)
	ctx := context.Background()

	first := build(t, domain.CategoryIdea, nil, "an idea")
	if _, err := repo.Create(ctx, first); err != nil {
		t.Fatalf("Create: %v", err)
	}

	dup, err := domain.BuildRecord(domain.CategoryIdea, nil, "again", first.Meta().MessageID, testhelper.Now())
	if err != nil {
		t.Fatalf("BuildRecord: %v", err)
	}
	if _, err := repo.Create(ctx, dup); !errors.Is(err, domain.ErrAlreadyExists) {
		t.Fatalf("expected ErrAlreadyExists, got %v", err)
	}

	n, err := repo.DeactivateByMessage(ctx, domain.CategoryIdea, first.Meta().MessageID)
	if err != nil {
		t.Fatalf("DeactivateByMessage: %v", err)
	}
	if n != 1 {
		t.Fatalf("deactivated %d, want 1", n)
	}
	if _, err := repo.Create(ctx, dup); err != nil {
		t.Fatalf("Create after deactivate: %v", err)
	}
}

func TestRepo_RejectsPerson(t *testing.T) {
	t.Parallel()
	repo := newRepo(t)

	_, err := repo.Create(context.Background(), &domain.PersonProfile{Name: "Sam"})
	if !errors.Is(err, domain.ErrValidation) {
		t.Fatalf("expected ErrValidation, got %v", err)
	}
}

func TestRepo_ListActiveNewestFirst(t *testing.T) {
	t.Parallel()
	repo := newRepo(t)
	ctx := context.Background()

	older := build(t, domain.CategoryAdmin, domain.Fields{"task": "older"}, "older")
	newer := build(t, domain.CategoryAdmin, domain.Fields{"task": "newer"}, "newer")
	gone := build(t, domain.CategoryAdmin, domain.Fields{"task": "gone"}, "gone")
	for _, rec := range []domain.Record{older, newer, gone} {
		if _, err := repo.Create(ctx, rec); err != nil {
			t.Fatalf("Create: %v", err)
		}
	}
	if _, err := repo.DeactivateByMessage(ctx, domain.CategoryAdmin, gone.Meta().MessageID); err != nil {
		t.Fatalf("DeactivateByMessage: %v", err)
	}

	list, err := repo.ListActive(ctx, domain.CategoryAdmin, 0)
	if err != nil {
		t.Fatalf("ListActive: %v", err)
	}
	posOlder, posNewer := -1, -1
	for i, rec := range list {
		switch rec.Meta().MessageID {
		case older.Meta().MessageID:
			posOlder = i
		case newer.Meta().MessageID:
			posNewer = i
		case gone.Meta().MessageID:
			t.Fatal("inactive record listed")
		}
	}
	if posNewer < 0 || posOlder < 0 || posNewer > posOlder {
		t.Fatalf("expected newer before older, positions %d %d", posNewer, posOlder)
	}

	count, err := repo.CountActive(ctx, domain.CategoryAdmin)
	if err != nil {
		t.Fatalf("CountActive: %v", err)
	}
	if count < 2 {
		t.Fatalf("CountActive = %d, want at least 2", count)
	}

	all, err := repo.List(ctx, domain.CategoryAdmin)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(all) < 3 {
		t.Fatalf("List returned %d, want inactive rows too", len(all))
	}
}

func TestRepo_PersonReadsDelegate(t *testing.T) {
	t.Parallel()
	pool := testhelper.SetupTestDB(t)
	people := person.New(pool)
	repo := record.New(pool, people)
	ctx := context.Background()

	msg := testhelper.MessageID()
	now := testhelper.Now()
	_, err := people.Create(ctx, &domain.PersonProfile{
		RecordMeta:  domain.RecordMeta{MessageID: msg, IsActive: true, CreatedAt: now},
		Name:        "Record Delegate " + string(msg),
		Notes:       []domain.PersonNote{{Text: "note", MessageID: msg, AddedAt: now}},
		LastTouched: now,
	})
	if err != nil {
		t.Fatalf("Create person: %v", err)
	}

	got, err := repo.GetActiveByMessage(ctx, domain.CategoryPerson, msg)
	if err != nil {
		t.Fatalf("GetActiveByMessage: %v", err)
	}
	if got.Category() != domain.CategoryPerson {
		t.Fatalf("expected person record, got %s", got.Category())
	}
}

func TestRepo_UnknownCategory(t *testing.T) {
	t.Parallel()
	repo := newRepo(t)

	_, err := repo.ListActive(context.Background(), domain.Category("Recipes"), 5)
	if !errors.Is(err, domain.ErrUnknownCategory) {
		t.Fatalf("expected ErrUnknownCategory, got %v", err)
	}
}
