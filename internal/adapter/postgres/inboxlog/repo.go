// Package inboxlog implements the inbox log repository using PostgreSQL.
package inboxlog

import (
	"context"
	"fmt"
	"strings"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/ranajunaid001/second-braind-junaid/internal/adapter/postgres"
	"github.com/ranajunaid001/second-braind-junaid/internal/domain"
)

const table = "inbox_log"

var columns = []string{
	"id", "seq", "message_id", "conversation_id", "title", "captured_text",
	"classified_as", "confidence", "captured_at", "fixed_to", "fixed_by",
}

// Repo provides inbox log persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new inbox log repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// ---------------------------------------------------------------------------
// Read operations
// ---------------------------------------------------------------------------

// GetByMessageID returns the entry of a message or domain.ErrNotFound.
func (r *Repo) GetByMessageID(ctx context.Context, id domain.MessageID) (*domain.InboxLogEntry, error) {
	q := postgres.Builder().Select(columns...).From(table).
		Where(sq.Eq{"message_id": string(id)})
	return r.one(ctx, q, id)
}

// Latest returns the newest entry of a conversation.
func (r *Repo) Latest(ctx context.Context, conversationID string) (*domain.InboxLogEntry, error) {
	q := postgres.Builder().Select(columns...).From(table).
		Where(sq.Eq{"conversation_id": conversationID}).
		OrderBy("seq DESC").Limit(1)
	return r.one(ctx, q, "conversation "+conversationID)
}

// LatestUncorrected returns the newest entry of a conversation that no fix
// command has moved.
func (r *Repo) LatestUncorrected(ctx context.Context, conversationID string) (*domain.InboxLogEntry, error) {
	q := postgres.Builder().Select(columns...).From(table).
		Where(sq.Eq{"conversation_id": conversationID}).
		Where(sq.Or{
			sq.Eq{"fixed_to": nil},
			sq.Eq{"fixed_by": string(domain.FixedByConfirmation)},
		}).
		OrderBy("seq DESC").Limit(1)
	return r.one(ctx, q, "conversation "+conversationID)
}

// List returns entries newest first. limit <= 0 returns all.
func (r *Repo) List(ctx context.Context, limit int) ([]*domain.InboxLogEntry, error) {
	q := postgres.Builder().Select(columns...).From(table).OrderBy("seq DESC")
	if limit > 0 {
		q = q.Limit(uint64(limit))
	}

	query, args, err := q.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build inbox_log query: %w", err)
	}
	rows, err := postgres.QuerierFromCtx(ctx, r.pool).Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list inbox_log: %w", err)
	}
	defer rows.Close()

	var out []*domain.InboxLogEntry
	for rows.Next() {
		e, err := scanEntry(rows)
		if err != nil {
			return nil, fmt.Errorf("scan inbox_log: %w", err)
		}
		out = append(out, e)
	}
	return out, rows.Err()
}

func (r *Repo) one(ctx context.Context, q sq.SelectBuilder, key any) (*domain.InboxLogEntry, error) {
	query, args, err := q.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build inbox_log query: %w", err)
	}
	e, err := scanEntry(postgres.QuerierFromCtx(ctx, r.pool).QueryRow(ctx, query, args...))
	if err != nil {
		return nil, postgres.MapError(err, table, key)
	}
	return e, nil
}

// ---------------------------------------------------------------------------
// Write operations
// ---------------------------------------------------------------------------

// Create inserts an entry. A second entry for the same message id fails
// with domain.ErrAlreadyExists.
func (r *Repo) Create(ctx context.Context, e *domain.InboxLogEntry) (*domain.InboxLogEntry, error) {
	id := e.ID
	if id == uuid.Nil {
		id = uuid.New()
	}

	q := postgres.Builder().Insert(table).
		Columns("id", "message_id", "conversation_id", "title", "captured_text", "classified_as", "confidence", "captured_at").
		Values(id, string(e.MessageID), e.ConversationID, e.Title, e.CapturedText,
			categoryToPgText(e.ClassifiedAs), e.Confidence, e.Timestamp).
		Suffix("RETURNING " + strings.Join(columns, ", "))

	query, args, err := q.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build inbox_log insert: %w", err)
	}
	out, err := scanEntry(postgres.QuerierFromCtx(ctx, r.pool).QueryRow(ctx, query, args...))
	if err != nil {
		return nil, postgres.MapError(err, table, e.MessageID)
	}
	return out, nil
}

// SetFixedTo records the category a message was moved to and which
// workflow moved it. Returns domain.ErrNotFound when the message has no
// entry.
func (r *Repo) SetFixedTo(ctx context.Context, id domain.MessageID, c domain.Category, by domain.FixSource) error {
	q := postgres.Builder().Update(table).
		Set("fixed_to", string(c)).
		Set("fixed_by", string(by)).
		Where(sq.Eq{"message_id": string(id)})

	n, err := postgres.Exec(ctx, postgres.QuerierFromCtx(ctx, r.pool), q)
	if err != nil {
		return postgres.MapError(err, table, id)
	}
	if n == 0 {
		return fmt.Errorf("%s %s: %w", table, id, domain.ErrNotFound)
	}
	return nil
}

// ---------------------------------------------------------------------------
// Mapping helpers
// ---------------------------------------------------------------------------

func scanEntry(row pgx.Row) (*domain.InboxLogEntry, error) {
	var (
		e            domain.InboxLogEntry
		messageID    string
		classifiedAs pgtype.Text
		fixedTo      pgtype.Text
		fixedBy      pgtype.Text
	)
	err := row.Scan(&e.ID, &e.Seq, &messageID, &e.ConversationID, &e.Title, &e.CapturedText,
		&classifiedAs, &e.Confidence, &e.Timestamp, &fixedTo, &fixedBy)
	if err != nil {
		return nil, err
	}
	e.MessageID = domain.MessageID(messageID)
	if classifiedAs.Valid {
		e.ClassifiedAs = domain.Category(classifiedAs.String)
	}
	if fixedTo.Valid {
		c := domain.Category(fixedTo.String)
		e.FixedTo = &c
	}
	if fixedBy.Valid {
		e.FixedBy = domain.FixSource(fixedBy.String)
	}
	e.Timestamp = e.Timestamp.UTC()
	return &e, nil
}

func categoryToPgText(c domain.Category) pgtype.Text {
	if c == "" {
		return pgtype.Text{}
	}
	return pgtype.Text{String: string(c), Valid: true}
}
