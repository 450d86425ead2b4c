package domain

// Category is one of the five fixed classification targets. The value is the
// collection name the category's records live in.
type Category string

const (
	CategoryPerson    Category = "People"
	CategoryIdea      Category = "Ideas"
	CategoryInterview Category = "Interviews"
	CategoryAdmin     Category = "Admin"
	CategoryLinkedIn  Category = "LinkedIn"
)

func (c Category) String() string { return string(c) }

func (c Category) IsValid() bool {
	switch c {
	case CategoryPerson, CategoryIdea, CategoryInterview, CategoryAdmin, CategoryLinkedIn:
		return true
	}
	return false
}

// DigestOrder is the fixed category order of the full digest.
var DigestOrder = []Category{
	CategoryAdmin,
	CategoryPerson,
	CategoryIdea,
	CategoryInterview,
	CategoryLinkedIn,
}

// InterviewStatus tracks a job opportunity.
type InterviewStatus string

const (
	InterviewStatusLead      InterviewStatus = "Lead"
	InterviewStatusApplied   InterviewStatus = "Applied"
	InterviewStatusScheduled InterviewStatus = "Scheduled"
	InterviewStatusCompleted InterviewStatus = "Completed"
)

func (s InterviewStatus) String() string { return string(s) }

func (s InterviewStatus) IsValid() bool {
	switch s {
	case InterviewStatusLead, InterviewStatusApplied, InterviewStatusScheduled, InterviewStatusCompleted:
		return true
	}
	return false
}

// TaskStatus tracks an admin task.
type TaskStatus string

const (
	TaskStatusOpen TaskStatus = "Open"
	TaskStatusDone TaskStatus = "Done"
)

func (s TaskStatus) String() string { return string(s) }

func (s TaskStatus) IsValid() bool {
	switch s {
	case TaskStatusOpen, TaskStatusDone:
		return true
	}
	return false
}

// DraftStatus tracks a LinkedIn post.
type DraftStatus string

const (
	DraftStatusDraft  DraftStatus = "Draft"
	DraftStatusPosted DraftStatus = "Posted"
)

func (s DraftStatus) String() string { return string(s) }

func (s DraftStatus) IsValid() bool {
	switch s {
	case DraftStatusDraft, DraftStatusPosted:
		return true
	}
	return false
}

// ClassificationSource records which path produced a classification.
type ClassificationSource string

const (
	SourceRule     ClassificationSource = "rule"
	SourceModel    ClassificationSource = "model"
	SourceFallback ClassificationSource = "fallback"
	SourceUser     ClassificationSource = "user"
)

func (s ClassificationSource) String() string { return string(s) }
