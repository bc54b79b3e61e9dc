package main

import (
	"log/slog"
	"net/http"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

// lazyBot creates the Telegram client on first use. NewBotAPIWithClient
// calls getMe, and an unreachable Telegram must not stop the poll loop, so
// a failed creation is retried on the next send.
type lazyBot struct {
	token    string
	endpoint string
	client   *http.Client
	bot      *tgbotapi.BotAPI
}

func newLazyBot(cfg *Config, endpoint string) *lazyBot {
	return &lazyBot{
		token:    cfg.TelegramToken,
		endpoint: endpoint,
		client:   &http.Client{Timeout: cfg.RequestTimeout},
	}
}

func (b *lazyBot) connect() (*tgbotapi.BotAPI, error) {
	if b.bot != nil {
		return b.bot, nil
	}
	bot, err := tgbotapi.NewBotAPIWithClient(b.token, b.endpoint, b.client)
	if err != nil {
		return nil, err
	}
	slog.Info("authorized on telegram", slog.String("account", bot.Self.UserName))
	b.bot = bot
	return bot, nil
}

func (b *lazyBot) Send(c tgbotapi.Chattable) (tgbotapi.Message, error) {
	bot, err := b.connect()
	if err != nil {
		return tgbotapi.Message{}, err
	}
	return bot.Send(c)
}
