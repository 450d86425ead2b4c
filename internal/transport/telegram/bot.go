// Package telegram connects the command interpreter to a Telegram bot over
// long polling and delivers digests to the owner's chat.
package telegram

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/ranajunaid001/second-braind-junaid/internal/config"
	"github.com/ranajunaid001/second-braind-junaid/internal/domain"
	"github.com/ranajunaid001/second-braind-junaid/pkg/ctxutil"
)

type botAPI interface {
	GetUpdatesChan(cfg tgbotapi.UpdateConfig) tgbotapi.UpdatesChannel
	StopReceivingUpdates()
	Send(c tgbotapi.Chattable) (tgbotapi.Message, error)
}

type messageHandler interface {
	Handle(ctx context.Context, msg domain.CapturedMessage) (string, error)
}

// Bot polls for updates and answers each text message in order.
type Bot struct {
	api         botAPI
	handler     messageHandler
	allowed     map[int64]bool
	pollTimeout time.Duration
	log         *slog.Logger
}

// NewAPI connects to the Bot API with the configured token.
func NewAPI(cfg config.TelegramConfig) (*tgbotapi.BotAPI, error) {
	api, err := tgbotapi.NewBotAPI(cfg.Token)
	if err != nil {
		return nil, fmt.Errorf("connect to telegram: %w", err)
	}
	api.Debug = cfg.Debug
	return api, nil
}

// NewBot creates a Bot. Messages from chats outside AllowedChatIDs (or
// ChatID when the list is empty) are ignored; with neither set every chat
// is served.
func NewBot(log *slog.Logger, api botAPI, handler messageHandler, cfg config.TelegramConfig) *Bot {
	allowed := make(map[int64]bool)
	for _, id := range cfg.AllowedChatIDs {
		allowed[id] = true
	}
	if len(allowed) == 0 && cfg.ChatID != 0 {
		allowed[cfg.ChatID] = true
	}
	return &Bot{
		api:         api,
		handler:     handler,
		allowed:     allowed,
		pollTimeout: cfg.PollTimeout,
		log:         log.With("transport", "telegram"),
	}
}

// Run polls until ctx is cancelled.
func (b *Bot) Run(ctx context.Context) error {
	u := tgbotapi.NewUpdate(0)
	u.Timeout = int(b.pollTimeout.Seconds())
	updates := b.api.GetUpdatesChan(u)
	defer b.api.StopReceivingUpdates()

	if len(b.allowed) == 0 {
		b.log.WarnContext(ctx, "no chat allow-list configured; serving every chat")
	}
	b.log.InfoContext(ctx, "telegram bot polling")

	for {
		select {
		case <-ctx.Done():
			b.log.InfoContext(ctx, "telegram bot stopped")
			return nil
		case update, ok := <-updates:
			if !ok {
				return nil
			}
			b.handleUpdate(ctx, update)
		}
	}
}

func (b *Bot) handleUpdate(ctx context.Context, update tgbotapi.Update) {
	m := update.Message
	if m == nil || m.Chat == nil || m.Text == "" {
		return
	}
	chatID := m.Chat.ID
	if len(b.allowed) > 0 && !b.allowed[chatID] {
		b.log.WarnContext(ctx, "message from unknown chat ignored", slog.Int64("chat_id", chatID))
		return
	}

	msg := domain.CapturedMessage{
		ID:             messageID(chatID, m.MessageID),
		ConversationID: strconv.FormatInt(chatID, 10),
		Text:           m.Text,
		CapturedAt:     m.Time().UTC(),
	}
	if m.ReplyToMessage != nil {
		msg.ReplyTo = messageID(chatID, m.ReplyToMessage.MessageID)
	}

	ctx = ctxutil.WithConversationID(ctx, msg.ConversationID)
	reply, err := b.handler.Handle(ctx, msg)
	if err != nil {
		b.log.ErrorContext(ctx, "handle message failed",
			slog.String("message_id", msg.ID.String()),
			slog.String("error", err.Error()),
		)
	}
	if reply == "" {
		return
	}

	out := tgbotapi.NewMessage(chatID, reply)
	out.ReplyToMessageID = m.MessageID
	if _, err := b.api.Send(out); err != nil {
		b.log.ErrorContext(ctx, "send reply failed",
			slog.String("message_id", msg.ID.String()),
			slog.String("error", err.Error()),
		)
	}
}

// messageID scopes Telegram's per-chat message ids to the chat.
func messageID(chatID int64, id int) domain.MessageID {
	return domain.MessageID(strconv.FormatInt(chatID, 10) + ":" + strconv.Itoa(id))
}
