package telegram

import (
	"context"
	"errors"
	"fmt"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

// maxMessageLength is the Bot API limit on one text message.
const maxMessageLength = 4096

type sender interface {
	Send(c tgbotapi.Chattable) (tgbotapi.Message, error)
}

// Notifier delivers text to one chat, splitting it at line boundaries when
// it exceeds the message limit.
type Notifier struct {
	api    sender
	chatID int64
}

// NewNotifier creates a Notifier for chatID.
func NewNotifier(api sender, chatID int64) *Notifier {
	return &Notifier{api: api, chatID: chatID}
}

// Notify sends text.
func (n *Notifier) Notify(ctx context.Context, text string) error {
	if n.chatID == 0 {
		return errors.New("telegram: no digest chat id configured")
	}
	for _, part := range split(text, maxMessageLength) {
		if err := ctx.Err(); err != nil {
			return err
		}
		if _, err := n.api.Send(tgbotapi.NewMessage(n.chatID, part)); err != nil {
			return fmt.Errorf("telegram send: %w", err)
		}
	}
	return nil
}

// split cuts text into chunks of at most limit bytes, preferring newlines.
func split(text string, limit int) []string {
	var out []string
	for len(text) > limit {
		cut := strings.LastIndex(text[:limit], "\n")
		if cut <= 0 {
			cut = limit
			// keep multi-byte runes whole
			for cut > 0 && !isRuneStart(text[cut]) {
				cut--
			}
		}
		out = append(out, text[:cut])
		text = strings.TrimPrefix(text[cut:], "\n")
	}
	if text != "" {
		out = append(out, text)
	}
	return out
}

func isRuneStart(b byte) bool { return b&0xC0 != 0x80 }
