package main

import (
	"context"
	"log/slog"
	"strconv"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"golang.org/x/time/rate"
)

// messageSender is the part of *tgbotapi.BotAPI the notifier needs.
type messageSender interface {
	Send(c tgbotapi.Chattable) (tgbotapi.Message, error)
}

// Notifier delivers texts to the one configured chat. It never retries.
type Notifier struct {
	bot     messageSender
	chatID  string
	limiter *rate.Limiter
}

func NewNotifier(bot messageSender, cfg *Config) *Notifier {
	limit := rate.Inf
	if cfg.SendInterval > 0 {
		limit = rate.Every(cfg.SendInterval)
	}
	return &Notifier{
		bot:     bot,
		chatID:  cfg.TelegramChatID,
		limiter: rate.NewLimiter(limit, 1),
	}
}

// newMessage addresses numeric ids directly and anything else as a channel username.
func newMessage(chatID string, text string) tgbotapi.MessageConfig {
	if id, err := strconv.ParseInt(chatID, 10, 64); err == nil {
		return tgbotapi.NewMessage(id, text)
	}
	return tgbotapi.NewMessageToChannel(chatID, text)
}

func (n *Notifier) Send(ctx context.Context, text string) error {
	if err := n.limiter.Wait(ctx); err != nil {
		return &SendError{Err: err}
	}
	if _, err := n.bot.Send(newMessage(n.chatID, text)); err != nil {
		return &SendError{Err: err}
	}
	slog.Debug("message sent to chat", slog.String("chat_id", n.chatID))
	return nil
}
