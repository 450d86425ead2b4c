package domain

import (
	"fmt"
	"strings"
)

// categoryAliases maps every accepted spelling (lowercase) to its category.
// Oracle bucket names ("people", "admin", ...) are included.
var categoryAliases = map[string]Category{
	"p": CategoryPerson, "ppl": CategoryPerson, "people": CategoryPerson, "person": CategoryPerson,
	"i": CategoryIdea, "idea": CategoryIdea, "ideas": CategoryIdea,
	"int": CategoryInterview, "interview": CategoryInterview, "interviews": CategoryInterview,
	"a": CategoryAdmin, "adm": CategoryAdmin, "admin": CategoryAdmin, "admintask": CategoryAdmin,
	"l": CategoryLinkedIn, "li": CategoryLinkedIn, "ln": CategoryLinkedIn, "linkedin": CategoryLinkedIn,
	"linkedindraft": CategoryLinkedIn,
}

// ParseCategory resolves a category name or alias, case-insensitively.
func ParseCategory(s string) (Category, error) {
	key := strings.ToLower(strings.TrimSpace(s))
	if c, ok := categoryAliases[key]; ok {
		return c, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownCategory, s)
}

// OracleName is the lowercase bucket name used in model prompts.
func (c Category) OracleName() string {
	return strings.ToLower(string(c))
}

// Schema is the external column set of one category collection.
type Schema struct {
	Category Category
	Columns  []string
}

// Schema column sets. Names must match the external store headers exactly.
var (
	PersonSchema = Schema{CategoryPerson, []string{
		"Name", "Context", "Notes", "Follow-ups", "Last touched", "message_id", "is_active",
	}}
	IdeaSchema = Schema{CategoryIdea, []string{
		"Idea", "One-liner", "Notes", "message_id", "is_active",
	}}
	InterviewSchema = Schema{CategoryInterview, []string{
		"Company", "Role", "Status", "Next step", "Date", "message_id", "is_active",
	}}
	AdminSchema = Schema{CategoryAdmin, []string{
		"Task", "Status", "Due", "Next action", "message_id", "is_active",
	}}
	LinkedInSchema = Schema{CategoryLinkedIn, []string{
		"Idea", "Notes", "Status", "message_id", "is_active",
	}}
	InboxLogSchema = Schema{"", []string{
		"Title", "Captured text", "Classified as", "Confidence", "Timestamp", "message_id", "fixed_to",
	}}
)

// SchemaFor returns the column set of a category collection.
func SchemaFor(c Category) (Schema, error) {
	switch c {
	case CategoryPerson:
		return PersonSchema, nil
	case CategoryIdea:
		return IdeaSchema, nil
	case CategoryInterview:
		return InterviewSchema, nil
	case CategoryAdmin:
		return AdminSchema, nil
	case CategoryLinkedIn:
		return LinkedInSchema, nil
	}
	return Schema{}, fmt.Errorf("%w: %q", ErrUnknownCategory, c)
}

// Semantics describes each category to the model oracle.
var Semantics = map[Category]string{
	CategoryPerson:    "contacts, relationships, info about specific people: names, facts, observations, cues, anything about a person",
	CategoryIdea:      "product ideas, things to build, concepts to explore",
	CategoryInterview: "job opportunities, leads, applications, interview prep",
	CategoryAdmin:     "bills, appointments, errands, daily tasks",
	CategoryLinkedIn:  "content ideas for LinkedIn posts",
}
