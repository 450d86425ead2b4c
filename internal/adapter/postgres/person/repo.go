// Package person implements the person profile repository using PostgreSQL.
// Notes live in person_notes and are soft-retracted, never deleted.
package person

import (
	"context"
	"fmt"
	"strings"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/ranajunaid001/second-braind-junaid/internal/adapter/postgres"
	"github.com/ranajunaid001/second-braind-junaid/internal/domain"
)

const (
	peopleTable = "people"
	notesTable  = "person_notes"
)

var columns = []string{
	"p.id", "p.seq", "p.name", "p.context", "p.follow_ups", "p.last_touched",
	"p.message_id", "p.is_active", "p.created_at",
}

// Repo provides person profile persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new person repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

func (r *Repo) selectPeople() sq.SelectBuilder {
	return postgres.Builder().Select(columns...).From(peopleTable + " p")
}

// ---------------------------------------------------------------------------
// Read operations
// ---------------------------------------------------------------------------

// GetActiveByName returns the active profile with the given normalized
// name, or domain.ErrNotFound. Inside a transaction the row is locked so
// concurrent merges into the same person serialize.
func (r *Repo) GetActiveByName(ctx context.Context, nameNormalized string) (*domain.PersonProfile, error) {
	q := r.selectPeople().Where(sq.Eq{"p.name_normalized": nameNormalized, "p.is_active": true})
	if postgres.InTx(ctx) {
		q = q.Suffix("FOR UPDATE")
	}

	out, err := r.list(ctx, q)
	if err != nil {
		return nil, err
	}
	if len(out) == 0 {
		return nil, fmt.Errorf("person %q: %w", nameNormalized, domain.ErrNotFound)
	}
	return out[0], nil
}

// FindActiveByPrefix returns active profiles with a name word starting with
// prefix, ordered by name.
func (r *Repo) FindActiveByPrefix(ctx context.Context, prefix string, limit int) ([]*domain.PersonProfile, error) {
	like := escapeLike(prefix)
	q := r.selectPeople().
		Where(sq.Eq{"p.is_active": true}).
		Where(sq.Or{
			sq.Like{"p.name_normalized": like + "%"},
			sq.Like{"p.name_normalized": "% " + like + "%"},
		}).
		OrderBy("p.name_normalized ASC")
	if limit > 0 {
		q = q.Limit(uint64(limit))
	}
	return r.list(ctx, q)
}

// ListActiveByMessage returns active profiles holding an active note from
// the message.
func (r *Repo) ListActiveByMessage(ctx context.Context, id domain.MessageID) ([]*domain.PersonProfile, error) {
	return r.list(ctx, r.byMessage(id).OrderBy("p.seq ASC"))
}

// GetActiveByMessage returns the first active profile holding an active note
// from the message, or domain.ErrNotFound.
func (r *Repo) GetActiveByMessage(ctx context.Context, id domain.MessageID) (*domain.PersonProfile, error) {
	out, err := r.list(ctx, r.byMessage(id).OrderBy("p.seq ASC").Limit(1))
	if err != nil {
		return nil, err
	}
	if len(out) == 0 {
		return nil, fmt.Errorf("%s record for %s: %w", domain.CategoryPerson, id, domain.ErrNotFound)
	}
	return out[0], nil
}

// ListActive returns active profiles by last_touched, newest first. limit
// <= 0 returns all.
func (r *Repo) ListActive(ctx context.Context, limit int) ([]*domain.PersonProfile, error) {
	q := r.selectPeople().Where(sq.Eq{"p.is_active": true}).OrderBy("p.last_touched DESC", "p.seq DESC")
	if limit > 0 {
		q = q.Limit(uint64(limit))
	}
	return r.list(ctx, q)
}

// CountActive returns the number of active profiles.
func (r *Repo) CountActive(ctx context.Context) (int, error) {
	query, args, err := postgres.Builder().Select("count(*)").From(peopleTable).
		Where(sq.Eq{"is_active": true}).ToSql()
	if err != nil {
		return 0, fmt.Errorf("build people count: %w", err)
	}
	var n int
	if err := postgres.QuerierFromCtx(ctx, r.pool).QueryRow(ctx, query, args...).Scan(&n); err != nil {
		return 0, postgres.MapError(err, peopleTable, "count")
	}
	return n, nil
}

// ListAll returns every profile, active or not, in insertion order.
func (r *Repo) ListAll(ctx context.Context) ([]*domain.PersonProfile, error) {
	return r.list(ctx, r.selectPeople().OrderBy("p.seq ASC"))
}

func (r *Repo) byMessage(id domain.MessageID) sq.SelectBuilder {
	return r.selectPeople().
		Where(sq.Eq{"p.is_active": true}).
		Where(sq.Expr(
			"EXISTS (SELECT 1 FROM "+notesTable+" n WHERE n.person_id = p.id AND n.is_active AND n.message_id = ?)",
			string(id),
		))
}

// list runs a people query and attaches each profile's active notes.
func (r *Repo) list(ctx context.Context, q sq.SelectBuilder) ([]*domain.PersonProfile, error) {
	query, args, err := q.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build people query: %w", err)
	}

	db := postgres.QuerierFromCtx(ctx, r.pool)
	rows, err := db.Query(ctx, query, args...)
	if err != nil {
		return nil, postgres.MapError(err, peopleTable, "query")
	}

	var out []*domain.PersonProfile
	for rows.Next() {
		p, err := scanProfile(rows)
		if err != nil {
			rows.Close()
			return nil, fmt.Errorf("scan people: %w", err)
		}
		out = append(out, p)
	}
	rows.Close()
	if err := rows.Err(); err != nil {
		return nil, postgres.MapError(err, peopleTable, "query")
	}

	if len(out) == 0 {
		return out, nil
	}
	if err := r.attachNotes(ctx, db, out); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *Repo) attachNotes(ctx context.Context, db postgres.Querier, people []*domain.PersonProfile) error {
	ids := make([]uuid.UUID, len(people))
	byID := make(map[uuid.UUID]*domain.PersonProfile, len(people))
	for i, p := range people {
		ids[i] = p.ID
		byID[p.ID] = p
	}

	query, args, err := postgres.Builder().
		Select("person_id", "body", "message_id", "added_at").
		From(notesTable).
		Where(sq.Eq{"person_id": ids, "is_active": true}).
		OrderBy("id ASC").
		ToSql()
	if err != nil {
		return fmt.Errorf("build person_notes query: %w", err)
	}

	rows, err := db.Query(ctx, query, args...)
	if err != nil {
		return postgres.MapError(err, notesTable, "query")
	}
	defer rows.Close()

	for rows.Next() {
		var (
			personID  uuid.UUID
			note      domain.PersonNote
			messageID string
		)
		if err := rows.Scan(&personID, &note.Text, &messageID, &note.AddedAt); err != nil {
			return fmt.Errorf("scan person_notes: %w", err)
		}
		note.MessageID = domain.MessageID(messageID)
		note.AddedAt = note.AddedAt.UTC()
		if p, ok := byID[personID]; ok {
			p.Notes = append(p.Notes, note)
		}
	}
	return rows.Err()
}

// ---------------------------------------------------------------------------
// Write operations
// ---------------------------------------------------------------------------

// Create stores a new profile with its initial notes. A second active
// profile with the same normalized name fails with domain.ErrAlreadyExists.
// Callers run it inside a transaction so the profile and its notes land
// together.
func (r *Repo) Create(ctx context.Context, p *domain.PersonProfile) (*domain.PersonProfile, error) {
	id := p.ID
	if id == uuid.Nil {
		id = uuid.New()
	}
	key := domain.NormalizeName(p.Name)

	query, args, err := postgres.Builder().Insert(peopleTable).
		Columns("id", "name", "name_normalized", "context", "follow_ups", "last_touched", "message_id", "is_active", "created_at").
		Values(id, p.Name, key, p.Context, p.FollowUps, p.LastTouched, string(p.MessageID), p.IsActive, p.CreatedAt).
		Suffix("RETURNING seq").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build people insert: %w", err)
	}

	db := postgres.QuerierFromCtx(ctx, r.pool)
	var seq int64
	if err := db.QueryRow(ctx, query, args...).Scan(&seq); err != nil {
		return nil, postgres.MapError(err, "person", key)
	}

	for _, n := range p.Notes {
		if err := r.insertNote(ctx, db, id, n); err != nil {
			return nil, err
		}
	}

	out := *p
	out.ID = id
	out.Seq = seq
	out.Notes = append([]domain.PersonNote(nil), p.Notes...)
	return &out, nil
}

// AddNote appends a note to a profile.
func (r *Repo) AddNote(ctx context.Context, personID uuid.UUID, note domain.PersonNote) error {
	return r.insertNote(ctx, postgres.QuerierFromCtx(ctx, r.pool), personID, note)
}

func (r *Repo) insertNote(ctx context.Context, db postgres.Querier, personID uuid.UUID, note domain.PersonNote) error {
	q := postgres.Builder().Insert(notesTable).
		Columns("person_id", "message_id", "body", "added_at").
		Values(personID, string(note.MessageID), note.Text, note.AddedAt)
	if _, err := postgres.Exec(ctx, db, q); err != nil {
		return postgres.MapError(err, "person", personID)
	}
	return nil
}

// Touch sets last_touched and follow-ups.
func (r *Repo) Touch(ctx context.Context, personID uuid.UUID, lastTouched time.Time, followUps string) error {
	q := postgres.Builder().Update(peopleTable).
		Set("last_touched", lastTouched).
		Set("follow_ups", followUps).
		Where(sq.Eq{"id": personID})
	return r.updateOne(ctx, q, personID)
}

// Deactivate soft-deletes a profile.
func (r *Repo) Deactivate(ctx context.Context, personID uuid.UUID) error {
	q := postgres.Builder().Update(peopleTable).
		Set("is_active", false).
		Where(sq.Eq{"id": personID})
	return r.updateOne(ctx, q, personID)
}

// RetractNotes deactivates the notes a message contributed to a profile and
// returns how many were retracted.
func (r *Repo) RetractNotes(ctx context.Context, personID uuid.UUID, id domain.MessageID) (int, error) {
	db := postgres.QuerierFromCtx(ctx, r.pool)
	exists, err := r.exists(ctx, db, personID)
	if err != nil {
		return 0, err
	}
	if !exists {
		return 0, fmt.Errorf("person %s: %w", personID, domain.ErrNotFound)
	}

	q := postgres.Builder().Update(notesTable).
		Set("is_active", false).
		Where(sq.Eq{"person_id": personID, "message_id": string(id), "is_active": true})
	n, err := postgres.Exec(ctx, db, q)
	if err != nil {
		return 0, postgres.MapError(err, notesTable, personID)
	}
	return int(n), nil
}

func (r *Repo) updateOne(ctx context.Context, q sq.UpdateBuilder, personID uuid.UUID) error {
	n, err := postgres.Exec(ctx, postgres.QuerierFromCtx(ctx, r.pool), q)
	if err != nil {
		return postgres.MapError(err, "person", personID)
	}
	if n == 0 {
		return fmt.Errorf("person %s: %w", personID, domain.ErrNotFound)
	}
	return nil
}

func (r *Repo) exists(ctx context.Context, db postgres.Querier, personID uuid.UUID) (bool, error) {
	var ok bool
	err := db.QueryRow(ctx, "SELECT EXISTS (SELECT 1 FROM "+peopleTable+" WHERE id = $1)", personID).Scan(&ok)
	if err != nil {
		return false, postgres.MapError(err, "person", personID)
	}
	return ok, nil
}

// ---------------------------------------------------------------------------
// Mapping helpers
// ---------------------------------------------------------------------------

func scanProfile(row pgx.Row) (*domain.PersonProfile, error) {
	var (
		p         domain.PersonProfile
		messageID string
	)
	err := row.Scan(&p.ID, &p.Seq, &p.Name, &p.Context, &p.FollowUps, &p.LastTouched,
		&messageID, &p.IsActive, &p.CreatedAt)
	if err != nil {
		return nil, err
	}
	p.MessageID = domain.MessageID(messageID)
	p.LastTouched = p.LastTouched.UTC()
	p.CreatedAt = p.CreatedAt.UTC()
	return &p, nil
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

func escapeLike(s string) string {
	return likeEscaper.Replace(s)
}
