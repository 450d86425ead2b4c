package assistant

import (
	"errors"
	"fmt"
	"strings"

	"github.com/ranajunaid001/second-braind-junaid/internal/domain"
)

const (
	replySaveFailed      = "❌ Error saving. Please try again."
	replyDuplicate       = "Already got this one."
	replyNoName          = "❌ Couldn't tell who this is about. Add the person's name or reply 'fix <category>'."
	replyNoPending       = "❌ Nothing is waiting for a category."
	replyNoSuggestion    = "❌ There was no guess to accept. Reply with the category instead."
	replyInvalidCategory = "❌ Invalid category. Use: fix people / fix ideas / fix interviews / fix admin / fix linkedin"
	replyNoRecent        = "❌ No recent message to fix."
	replyFixNotFound     = "❌ Could not find the entry to fix."
	replyUnknownTable    = "❌ Unknown table. Use: top people / admin / interviews / ideas / linkedin / all"
	replyDigestFailed    = "❌ Could not generate digest."
)

const categoryMenu = "Reply with the correct category:\n• people\n• ideas\n• interviews\n• admin\n• linkedin"

func replyFiled(c domain.Classification, text string) string {
	return fmt.Sprintf("✓ Filed as: %s\nTitle: %s\nConfidence: %s\nReply 'fix <category>' if wrong.",
		c.Category, c.Title(text), c.Percent())
}

func replyNeedsConfirmation(text string, c domain.Classification, fault bool) string {
	var b strings.Builder
	b.WriteString("🤔 Not sure about this one.\n\n")
	quoted := domain.Truncate(strings.TrimSpace(text), 50)
	if len([]rune(strings.TrimSpace(text))) > 50 {
		quoted += "..."
	}
	fmt.Fprintf(&b, "Message: \"%s\"\n", quoted)
	if !fault && c.Category != "" {
		fmt.Fprintf(&b, "My guess: %s (%s)\n", c.Category, c.Percent())
	}
	b.WriteString("\n" + categoryMenu)
	return b.String()
}

func replyRejected(err error) string {
	var verr *domain.ValidationError
	if errors.As(err, &verr) && len(verr.Errors) > 0 {
		fe := verr.Errors[0]
		return fmt.Sprintf("❌ Message rejected: %s %s.", fe.Field, fe.Message)
	}
	return "❌ Message rejected."
}
