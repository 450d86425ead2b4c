// Package record implements the category collection repository using
// PostgreSQL. Non-person categories each live in their own table; person
// reads are delegated to the profile repository.
package record

import (
	"context"
	"fmt"
	"strings"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/ranajunaid001/second-braind-junaid/internal/adapter/postgres"
	"github.com/ranajunaid001/second-braind-junaid/internal/domain"
)

type peopleReader interface {
	GetActiveByMessage(ctx context.Context, id domain.MessageID) (*domain.PersonProfile, error)
	ListActive(ctx context.Context, limit int) ([]*domain.PersonProfile, error)
	CountActive(ctx context.Context) (int, error)
	ListAll(ctx context.Context) ([]*domain.PersonProfile, error)
}

// Repo serves the category collections.
type Repo struct {
	pool   *pgxpool.Pool
	people peopleReader
}

// New creates a new record repository.
func New(pool *pgxpool.Pool, people peopleReader) *Repo {
	return &Repo{pool: pool, people: people}
}

// Create stores a non-person record and assigns its sequence number. An
// active record of the same category for the same message fails with
// domain.ErrAlreadyExists.
func (r *Repo) Create(ctx context.Context, rec domain.Record) (domain.Record, error) {
	c := rec.Category()
	if c == domain.CategoryPerson {
		return nil, domain.NewValidationError("category", "person profiles are created through the person repository")
	}
	t, err := tableFor(c)
	if err != nil {
		return nil, err
	}

	m := rec.Meta()
	id := m.ID
	if id == uuid.Nil {
		id = uuid.New()
	}
	values := append([]any{id, string(m.MessageID), m.IsActive, m.CreatedAt}, t.values(rec)...)

	query, args, err := postgres.Builder().Insert(t.name).
		Columns(t.insertColumns()...).
		Values(values...).
		Suffix("RETURNING " + strings.Join(t.selectColumns(), ", ")).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build %s insert: %w", t.name, err)
	}

	out, err := t.scan(postgres.QuerierFromCtx(ctx, r.pool).QueryRow(ctx, query, args...))
	if err != nil {
		return nil, postgres.MapError(err, string(c)+" record for", m.MessageID)
	}
	return out, nil
}

// GetActiveByMessage returns the active record a message produced in a
// category, or domain.ErrNotFound.
func (r *Repo) GetActiveByMessage(ctx context.Context, c domain.Category, id domain.MessageID) (domain.Record, error) {
	if c == domain.CategoryPerson {
		p, err := r.people.GetActiveByMessage(ctx, id)
		if err != nil {
			return nil, err
		}
		return p, nil
	}
	t, err := tableFor(c)
	if err != nil {
		return nil, err
	}

	query, args, err := postgres.Builder().Select(t.selectColumns()...).From(t.name).
		Where(sq.Eq{"message_id": string(id), "is_active": true}).
		Limit(1).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build %s query: %w", t.name, err)
	}
	out, err := t.scan(postgres.QuerierFromCtx(ctx, r.pool).QueryRow(ctx, query, args...))
	if err != nil {
		return nil, postgres.MapError(err, string(c)+" record for", id)
	}
	return out, nil
}

// DeactivateByMessage soft-deletes the active non-person records a message
// produced in a category and returns how many were deactivated. Person
// notes are retracted through the profile repository instead.
func (r *Repo) DeactivateByMessage(ctx context.Context, c domain.Category, id domain.MessageID) (int, error) {
	if c == domain.CategoryPerson {
		return 0, nil
	}
	t, err := tableFor(c)
	if err != nil {
		return 0, err
	}
	q := postgres.Builder().Update(t.name).
		Set("is_active", false).
		Where(sq.Eq{"message_id": string(id), "is_active": true})

	n, err := postgres.Exec(ctx, postgres.QuerierFromCtx(ctx, r.pool), q)
	if err != nil {
		return 0, postgres.MapError(err, string(c)+" record for", id)
	}
	return int(n), nil
}

// ListActive returns the active records of a category, most recent first.
// limit <= 0 returns all.
func (r *Repo) ListActive(ctx context.Context, c domain.Category, limit int) ([]domain.Record, error) {
	if c == domain.CategoryPerson {
		people, err := r.people.ListActive(ctx, limit)
		if err != nil {
			return nil, err
		}
		return toRecords(people), nil
	}
	t, err := tableFor(c)
	if err != nil {
		return nil, err
	}

	q := postgres.Builder().Select(t.selectColumns()...).From(t.name).
		Where(sq.Eq{"is_active": true}).
		OrderBy("seq DESC")
	if limit > 0 {
		q = q.Limit(uint64(limit))
	}
	return r.list(ctx, t, q)
}

// CountActive returns the number of active records in a category.
func (r *Repo) CountActive(ctx context.Context, c domain.Category) (int, error) {
	if c == domain.CategoryPerson {
		return r.people.CountActive(ctx)
	}
	t, err := tableFor(c)
	if err != nil {
		return 0, err
	}

	query, args, err := postgres.Builder().Select("count(*)").From(t.name).
		Where(sq.Eq{"is_active": true}).ToSql()
	if err != nil {
		return 0, fmt.Errorf("build %s count: %w", t.name, err)
	}
	var n int
	if err := postgres.QuerierFromCtx(ctx, r.pool).QueryRow(ctx, query, args...).Scan(&n); err != nil {
		return 0, postgres.MapError(err, t.name, "count")
	}
	return n, nil
}

// List returns every record of a category, active or not, in insertion
// order.
func (r *Repo) List(ctx context.Context, c domain.Category) ([]domain.Record, error) {
	if c == domain.CategoryPerson {
		people, err := r.people.ListAll(ctx)
		if err != nil {
			return nil, err
		}
		return toRecords(people), nil
	}
	t, err := tableFor(c)
	if err != nil {
		return nil, err
	}
	return r.list(ctx, t, postgres.Builder().Select(t.selectColumns()...).From(t.name).OrderBy("seq ASC"))
}

func (r *Repo) list(ctx context.Context, t table, q sq.SelectBuilder) ([]domain.Record, error) {
	query, args, err := q.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build %s query: %w", t.name, err)
	}
	rows, err := postgres.QuerierFromCtx(ctx, r.pool).Query(ctx, query, args...)
	if err != nil {
		return nil, postgres.MapError(err, t.name, "query")
	}
	defer rows.Close()

	var out []domain.Record
	for rows.Next() {
		rec, err := t.scan(rows)
		if err != nil {
			return nil, fmt.Errorf("scan %s: %w", t.name, err)
		}
		out = append(out, rec)
	}
	return out, rows.Err()
}

func toRecords(people []*domain.PersonProfile) []domain.Record {
	out := make([]domain.Record, len(people))
	for i, p := range people {
		out[i] = p
	}
	return out
}
