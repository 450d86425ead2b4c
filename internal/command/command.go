// Package command parses inbound text into one of a closed set of commands.
package command

import (
	"strings"
	"unicode"

	"github.com/ranajunaid001/second-braind-junaid/internal/domain"
)

// Command is implemented by Capture, Fix, Top, Who and Confirm only.
type Command interface {
	isCommand()
}

// Capture files free text through the classifier.
type Capture struct {
	Text string
}

// Fix re-routes a previously captured message. Category is empty when Raw
// is missing or did not resolve to a known category.
type Fix struct {
	Category domain.Category
	Raw      string
}

// Top asks for the top items of one category, or the full digest when All.
// Category is empty and All false when Raw is missing or did not resolve.
type Top struct {
	Category domain.Category
	All      bool
	Raw      string
}

// Who looks up a person profile.
type Who struct {
	Name string
}

// Confirm resolves a pending low-confidence classification, either by
// accepting the suggestion or by naming the category. It only applies when a
// pending confirmation exists; otherwise the text is captured.
type Confirm struct {
	Category domain.Category
	Accept   bool
	Text     string
}

func (Capture) isCommand() {}
func (Fix) isCommand()     {}
func (Top) isCommand()     {}
func (Who) isCommand()     {}
func (Confirm) isCommand() {}

var acceptWords = map[string]bool{"yes": true, "y": true, "ok": true, "okay": true, "yep": true}

// Parse turns raw text into a Command. Matching is case-insensitive and
// tolerant of surrounding and repeated whitespace. Anything that does not
// match a command shape is a Capture of the trimmed text.
func Parse(text string) Command {
	trimmed := strings.TrimSpace(text)
	tokens := strings.Fields(strings.ToLower(trimmed))
	if len(tokens) == 0 {
		return Capture{Text: trimmed}
	}

	head := tokens[0]

	if arg, rest, ok := splitPrefix(head, tokens[1:], "fix", "fx"); ok && len(rest) == 0 {
		if arg == "" {
			return Fix{}
		}
		c, err := domain.ParseCategory(arg)
		if err != nil {
			return Fix{Raw: arg}
		}
		return Fix{Category: c, Raw: arg}
	}

	if arg, rest, ok := splitPrefix(head, tokens[1:], "top"); ok && len(rest) == 0 {
		if arg == "" {
			return Top{}
		}
		if arg == "all" {
			return Top{All: true, Raw: arg}
		}
		c, err := domain.ParseCategory(arg)
		if err != nil {
			return Top{Raw: arg}
		}
		return Top{Category: c, Raw: arg}
	}

	if head == "who" && len(tokens) > 1 {
		// Keep the caller's casing for the name.
		name := strings.TrimSpace(trimmed[len("who"):])
		name = strings.TrimRightFunc(name, func(r rune) bool {
			return unicode.IsPunct(r) && r != '\'' && r != '-'
		})
		name = strings.Join(strings.Fields(name), " ")
		if name != "" {
			return Who{Name: name}
		}
	}

	if len(tokens) == 1 {
		word := strings.TrimRightFunc(head, unicode.IsPunct)
		if acceptWords[word] {
			return Confirm{Accept: true, Text: trimmed}
		}
		if c, err := domain.ParseCategory(word); err == nil {
			return Confirm{Category: c, Text: trimmed}
		}
	}

	return Capture{Text: trimmed}
}

// splitPrefix recognizes "kw arg", "kw: arg" and "kw:arg" for any of kws.
// It returns the argument and the tokens after it.
func splitPrefix(head string, tail []string, kws ...string) (arg string, rest []string, ok bool) {
	for _, kw := range kws {
		switch {
		case head == kw || head == kw+":":
			if len(tail) == 0 {
				return "", nil, true
			}
			return tail[0], tail[1:], true
		case strings.HasPrefix(head, kw+":"):
			return strings.TrimPrefix(head, kw+":"), tail, true
		}
	}
	return "", nil, false
}
