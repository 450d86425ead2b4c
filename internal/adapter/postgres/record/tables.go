package record

import (
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/ranajunaid001/second-braind-junaid/internal/domain"
)

var metaColumns = []string{"id", "seq", "message_id", "is_active", "created_at"}

// table maps one non-person category onto its collection table.
type table struct {
	name string
	// fields are the variant columns, in the order values and scan use.
	fields []string
	values func(rec domain.Record) []any
	scan   func(row pgx.Row) (domain.Record, error)
}

func (t table) selectColumns() []string {
	return append(append([]string(nil), metaColumns...), t.fields...)
}

func (t table) insertColumns() []string {
	return append([]string{"id", "message_id", "is_active", "created_at"}, t.fields...)
}

var tables = map[domain.Category]table{
	domain.CategoryIdea: {
		name:   "ideas",
		fields: []string{"idea", "one_liner", "notes"},
		values: func(rec domain.Record) []any {
			r := rec.(*domain.Idea)
			return []any{r.Idea, r.OneLiner, r.Notes}
		},
		scan: func(row pgx.Row) (domain.Record, error) {
			r := &domain.Idea{}
			var msg string
			err := row.Scan(&r.ID, &r.Seq, &msg, &r.IsActive, &r.CreatedAt, &r.Idea, &r.OneLiner, &r.Notes)
			return finish(r, &r.RecordMeta, msg, err)
		},
	},
	domain.CategoryInterview: {
		name:   "interviews",
		fields: []string{"company", "role", "status", "next_step", "interview_date"},
		values: func(rec domain.Record) []any {
			r := rec.(*domain.Interview)
			return []any{r.Company, r.Role, string(r.Status), r.NextStep, r.Date}
		},
		scan: func(row pgx.Row) (domain.Record, error) {
			r := &domain.Interview{}
			var msg, status string
			err := row.Scan(&r.ID, &r.Seq, &msg, &r.IsActive, &r.CreatedAt,
				&r.Company, &r.Role, &status, &r.NextStep, &r.Date)
			r.Status = domain.InterviewStatus(status)
			return finish(r, &r.RecordMeta, msg, err)
		},
	},
	domain.CategoryAdmin: {
		name:   "admin_tasks",
		fields: []string{"task", "status", "due", "next_action"},
		values: func(rec domain.Record) []any {
			r := rec.(*domain.AdminTask)
			return []any{r.Task, string(r.Status), r.Due, r.NextAction}
		},
		scan: func(row pgx.Row) (domain.Record, error) {
			r := &domain.AdminTask{}
			var msg, status string
			err := row.Scan(&r.ID, &r.Seq, &msg, &r.IsActive, &r.CreatedAt,
				&r.Task, &status, &r.Due, &r.NextAction)
			r.Status = domain.TaskStatus(status)
			return finish(r, &r.RecordMeta, msg, err)
		},
	},
	domain.CategoryLinkedIn: {
		name:   "linkedin_drafts",
		fields: []string{"idea", "notes", "status"},
		values: func(rec domain.Record) []any {
			r := rec.(*domain.LinkedInDraft)
			return []any{r.Idea, r.Notes, string(r.Status)}
		},
		scan: func(row pgx.Row) (domain.Record, error) {
			r := &domain.LinkedInDraft{}
			var msg, status string
			err := row.Scan(&r.ID, &r.Seq, &msg, &r.IsActive, &r.CreatedAt, &r.Idea, &r.Notes, &status)
			r.Status = domain.DraftStatus(status)
			return finish(r, &r.RecordMeta, msg, err)
		},
	},
}

func finish(rec domain.Record, m *domain.RecordMeta, messageID string, err error) (domain.Record, error) {
	if err != nil {
		return nil, err
	}
	m.MessageID = domain.MessageID(messageID)
	m.CreatedAt = m.CreatedAt.UTC()
	return rec, nil
}

func tableFor(c domain.Category) (table, error) {
	t, ok := tables[c]
	if !ok {
		return table{}, fmt.Errorf("%w: %q", domain.ErrUnknownCategory, c)
	}
	return t, nil
}
