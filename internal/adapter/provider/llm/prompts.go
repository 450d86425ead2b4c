package llm

import (
	"fmt"
	"strings"

	"github.com/ranajunaid001/second-braind-junaid/internal/domain"
)

// promptOrder is the bucket order the model sees.
var promptOrder = []domain.Category{
	domain.CategoryPerson,
	domain.CategoryIdea,
	domain.CategoryInterview,
	domain.CategoryAdmin,
	domain.CategoryLinkedIn,
}

var fieldSchemas = map[domain.Category]string{
	domain.CategoryPerson:    `{"name": "person's name (required)", "context": "who they are or how you know them", "follow_ups": "any action item mentioned, or empty"}`,
	domain.CategoryIdea:      `{"idea": "short title", "one_liner": "one sentence description", "notes": "any extra details"}`,
	domain.CategoryInterview: `{"company": "company name", "role": "job role if mentioned", "status": "Lead|Applied|Scheduled|Completed", "next_step": "what to do next", "date": "date if mentioned or empty"}`,
	domain.CategoryAdmin:     `{"task": "short title", "status": "Open", "due": "date if mentioned or empty", "next_action": "concrete next step"}`,
	domain.CategoryLinkedIn:  `{"idea": "post topic or hook", "notes": "the full story or details", "status": "Draft"}`,
}

func classifyPrompt(text string) string {
	var b strings.Builder
	b.WriteString("You are a classifier for a personal second brain.\n\n")
	b.WriteString("Classify the user message into exactly one bucket:\n")
	for _, c := range promptOrder {
		fmt.Fprintf(&b, "- %s (%s)\n", c.OracleName(), domain.Semantics[c])
	}

	names := make([]string, len(promptOrder))
	for i, c := range promptOrder {
		names[i] = c.OracleName()
	}
	b.WriteString("\nReturn JSON ONLY. No markdown. No extra text.\n\n")
	fmt.Fprintf(&b, "{\n  \"bucket\": \"%s\",\n  \"confidence\": 0.0-1.0,\n  \"fields\": {}\n}\n\n", strings.Join(names, "|"))

	b.WriteString("The \"fields\" object depends on the bucket:\n\n")
	for _, c := range promptOrder {
		fmt.Fprintf(&b, "For %q:\n%s\n\n", c.OracleName(), fieldSchemas[c])
	}

	b.WriteString(`Rules:
1. A person's name plus any information about them is always "people".
2. "call someone" or "follow up with someone" is "people".
3. "pay bill", "buy groceries", "schedule appointment" are "admin".
4. confidence 0.9+ = very sure, 0.7-0.89 = likely, 0.6-0.69 = weak, <0.6 = uncertain.

User message:
`)
	b.WriteString(text)
	return b.String()
}

func extractPrompt(c domain.Category, text string) string {
	schema, ok := fieldSchemas[c]
	if !ok {
		schema = "{}"
	}
	return fmt.Sprintf("Extract fields from this message for the %q category.\n\nReturn JSON ONLY:\n%s\n\nMessage: %s",
		c.OracleName(), schema, text)
}

func summaryPrompt(digest string) string {
	return `Generate a daily digest. Be extremely concise. No fluff.

Rules:
- Max 3 bullet points
- Each bullet = one specific action (verb + what)
- Include company name or person name if relevant
- No greetings, no sign-offs

Example format:
• Follow up with Stripe recruiter about PM role
• Pay electricity bill (due Friday)

Data:
` + digest
}
