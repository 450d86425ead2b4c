// Package pending implements the pending confirmation repository using
// PostgreSQL.
package pending

import (
	"context"
	"fmt"
	"strings"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/ranajunaid001/second-braind-junaid/internal/adapter/postgres"
	"github.com/ranajunaid001/second-braind-junaid/internal/domain"
)

const table = "pending_confirmations"

var columns = []string{
	"message_id", "conversation_id", "text", "suggested", "confidence", "fields", "created_at", "expires_at",
}

// Repo provides pending confirmation persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new pending confirmation repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// Save inserts or replaces the pending confirmation of a message.
func (r *Repo) Save(ctx context.Context, p *domain.PendingConfirmation) error {
	fields := p.Fields
	if fields == nil {
		fields = domain.Fields{}
	}
	suggested := pgtype.Text{String: string(p.Suggested), Valid: p.Suggested != ""}

	updates := make([]string, 0, len(columns)-1)
	for _, c := range columns[1:] {
		updates = append(updates, c+" = EXCLUDED."+c)
	}

	q := postgres.Builder().Insert(table).
		Columns(columns...).
		Values(string(p.MessageID), p.ConversationID, p.Text, suggested, p.Confidence, fields, p.CreatedAt, p.ExpiresAt).
		Suffix("ON CONFLICT (message_id) DO UPDATE SET " + strings.Join(updates, ", "))

	if _, err := postgres.Exec(ctx, postgres.QuerierFromCtx(ctx, r.pool), q); err != nil {
		return postgres.MapError(err, "pending", p.MessageID)
	}
	return nil
}

// LatestForConversation returns the newest unexpired pending confirmation
// of a conversation, or domain.ErrNotFound.
func (r *Repo) LatestForConversation(ctx context.Context, conversationID string, now time.Time) (*domain.PendingConfirmation, error) {
	query, args, err := postgres.Builder().Select(columns...).From(table).
		Where(sq.Eq{"conversation_id": conversationID}).
		Where(sq.Gt{"expires_at": now}).
		OrderBy("created_at DESC", "message_id DESC").
		Limit(1).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build pending query: %w", err)
	}

	p, err := scanPending(postgres.QuerierFromCtx(ctx, r.pool).QueryRow(ctx, query, args...))
	if err != nil {
		return nil, postgres.MapError(err, "pending for conversation", conversationID)
	}
	return p, nil
}

// Delete removes the pending confirmation of a message. Missing is not an
// error.
func (r *Repo) Delete(ctx context.Context, id domain.MessageID) error {
	q := postgres.Builder().Delete(table).Where(sq.Eq{"message_id": string(id)})
	if _, err := postgres.Exec(ctx, postgres.QuerierFromCtx(ctx, r.pool), q); err != nil {
		return postgres.MapError(err, "pending", id)
	}
	return nil
}

// DeleteExpired removes every pending confirmation expired at now.
func (r *Repo) DeleteExpired(ctx context.Context, now time.Time) (int, error) {
	q := postgres.Builder().Delete(table).Where(sq.LtOrEq{"expires_at": now})
	n, err := postgres.Exec(ctx, postgres.QuerierFromCtx(ctx, r.pool), q)
	if err != nil {
		return 0, postgres.MapError(err, "pending", "expired")
	}
	return int(n), nil
}

func scanPending(row pgx.Row) (*domain.PendingConfirmation, error) {
	var (
		p         domain.PendingConfirmation
		messageID string
		suggested pgtype.Text
	)
	err := row.Scan(&messageID, &p.ConversationID, &p.Text, &suggested, &p.Confidence,
		&p.Fields, &p.CreatedAt, &p.ExpiresAt)
	if err != nil {
		return nil, err
	}
	p.MessageID = domain.MessageID(messageID)
	if suggested.Valid {
		p.Suggested = domain.Category(suggested.String)
	}
	p.CreatedAt = p.CreatedAt.UTC()
	p.ExpiresAt = p.ExpiresAt.UTC()
	return &p, nil
}
