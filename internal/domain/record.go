package domain

import (
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
)

// RecordMeta holds the fields every category record shares.
type RecordMeta struct {
	ID uuid.UUID
	// MessageID references the originating message; it is not an ownership link.
	MessageID MessageID
	// IsActive false means soft-deleted or superseded.
	IsActive  bool
	CreatedAt time.Time
	// Seq is the insertion order assigned by the store.
	Seq int64
}

// Meta gives generic code access to the common fields.
func (m *RecordMeta) Meta() *RecordMeta { return m }

// Record is one row of a category collection.
type Record interface {
	Meta() *RecordMeta
	Category() Category
	Title() string
	// SortTime is the recency key used by top-items ranking.
	SortTime() time.Time
	// Values renders the record in the column order of its Schema.
	Values() []string
}

// PersonNote is one observation appended to a profile.
type PersonNote struct {
	Text      string
	MessageID MessageID
	AddedAt   time.Time
}

// PersonProfile is the Person variant.
type PersonProfile struct {
	RecordMeta
	Name string
	// Context is set on creation only.
	Context string
	// Notes are in insertion order, oldest first.
	Notes       []PersonNote
	FollowUps   string
	LastTouched time.Time
}

func (p *PersonProfile) Category() Category  { return CategoryPerson }
func (p *PersonProfile) Title() string       { return p.Name }
func (p *PersonProfile) SortTime() time.Time { return p.LastTouched }

// NoteTexts returns the note bodies in insertion order.
func (p *PersonProfile) NoteTexts() []string {
	out := make([]string, len(p.Notes))
	for i, n := range p.Notes {
		out[i] = n.Text
	}
	return out
}

// HasNoteFrom reports whether msgID contributed a note to the profile.
func (p *PersonProfile) HasNoteFrom(msgID MessageID) bool {
	for _, n := range p.Notes {
		if n.MessageID == msgID {
			return true
		}
	}
	return false
}

func (p *PersonProfile) Values() []string {
	return []string{
		p.Name, p.Context, strings.Join(p.NoteTexts(), " • "), p.FollowUps,
		formatTime(p.LastTouched), string(p.MessageID), strconv.FormatBool(p.IsActive),
	}
}

// Idea is the Idea variant.
type Idea struct {
	RecordMeta
	Idea     string
	OneLiner string
	Notes    string
}

func (r *Idea) Category() Category  { return CategoryIdea }
func (r *Idea) Title() string       { return r.Idea }
func (r *Idea) SortTime() time.Time { return r.CreatedAt }
func (r *Idea) Values() []string {
	return []string{r.Idea, r.OneLiner, r.Notes, string(r.MessageID), strconv.FormatBool(r.IsActive)}
}

// Interview is the Interview variant.
type Interview struct {
	RecordMeta
	Company  string
	Role     string
	Status   InterviewStatus
	NextStep string
	Date     string
}

func (r *Interview) Category() Category { return CategoryInterview }
func (r *Interview) Title() string {
	if r.Role != "" {
		return r.Company + " (" + r.Role + ")"
	}
	return r.Company
}
func (r *Interview) SortTime() time.Time { return r.CreatedAt }
func (r *Interview) Values() []string {
	return []string{
		r.Company, r.Role, string(r.Status), r.NextStep, r.Date,
		string(r.MessageID), strconv.FormatBool(r.IsActive),
	}
}

// AdminTask is the AdminTask variant.
type AdminTask struct {
	RecordMeta
	Task       string
	Status     TaskStatus
	Due        string
	NextAction string
}

func (r *AdminTask) Category() Category  { return CategoryAdmin }
func (r *AdminTask) Title() string       { return r.Task }
func (r *AdminTask) SortTime() time.Time { return r.CreatedAt }
func (r *AdminTask) Values() []string {
	return []string{
		r.Task, string(r.Status), r.Due, r.NextAction,
		string(r.MessageID), strconv.FormatBool(r.IsActive),
	}
}

// LinkedInDraft is the LinkedInDraft variant.
type LinkedInDraft struct {
	RecordMeta
	Idea   string
	Notes  string
	Status DraftStatus
}

func (r *LinkedInDraft) Category() Category  { return CategoryLinkedIn }
func (r *LinkedInDraft) Title() string       { return r.Idea }
func (r *LinkedInDraft) SortTime() time.Time { return r.CreatedAt }
func (r *LinkedInDraft) Values() []string {
	return []string{r.Idea, r.Notes, string(r.Status), string(r.MessageID), strconv.FormatBool(r.IsActive)}
}

// BuildRecord converts a classified note into a record of a non-person
// category. Extracted fields win; the raw text fills the primary field when
// nothing was extracted. Person profiles are built by the profile merger.
func BuildRecord(c Category, fields Fields, text string, msgID MessageID, now time.Time) (Record, error) {
	text = strings.TrimSpace(text)
	meta := RecordMeta{
		ID:        uuid.New(),
		MessageID: msgID,
		IsActive:  true,
		CreatedAt: now,
	}

	switch c {
	case CategoryIdea:
		idea := fields.Get("idea", "title")
		return &Idea{
			RecordMeta: meta,
			Idea:       orText(idea, text),
			OneLiner:   fields.Get("one_liner"),
			Notes:      notesOrText(fields.Get("notes"), idea, text),
		}, nil
	case CategoryInterview:
		status := InterviewStatus(fields.Get("status"))
		if !status.IsValid() {
			status = InterviewStatusLead
		}
		return &Interview{
			RecordMeta: meta,
			Company:    orText(fields.Get("company"), text),
			Role:       fields.Get("role"),
			Status:     status,
			NextStep:   fields.Get("next_step"),
			Date:       fields.Get("date"),
		}, nil
	case CategoryAdmin:
		status := TaskStatus(fields.Get("status"))
		if !status.IsValid() {
			status = TaskStatusOpen
		}
		return &AdminTask{
			RecordMeta: meta,
			Task:       orText(fields.Get("task"), text),
			Status:     status,
			Due:        fields.Get("due"),
			NextAction: fields.Get("next_action"),
		}, nil
	case CategoryLinkedIn:
		idea := fields.Get("idea")
		status := DraftStatus(fields.Get("status"))
		if !status.IsValid() {
			status = DraftStatusDraft
		}
		return &LinkedInDraft{
			RecordMeta: meta,
			Idea:       orText(idea, Truncate(text, 50)),
			Notes:      orText(fields.Get("notes"), text),
			Status:     status,
		}, nil
	case CategoryPerson:
		return nil, NewValidationError("category", "person profiles are built by the profile merger")
	}
	return nil, ErrUnknownCategory
}

func orText(v, text string) string {
	if v != "" {
		return v
	}
	return text
}

// notesOrText keeps the raw text in Notes when the primary field was
// extracted, so nothing from the original note is lost.
func notesOrText(notes, primary, text string) string {
	if notes != "" {
		return notes
	}
	if primary != "" {
		return text
	}
	return ""
}

func formatTime(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.UTC().Format(time.RFC3339)
}
