package main

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	setupLogger(os.Stdout, "debug")
	loadDotEnv()

	cfg, err := LoadConfig()
	if err != nil {
		slog.Error("failed to load config", slog.String("err", err.Error()))
		os.Exit(1)
	}
	setupLogger(os.Stdout, cfg.LogLevel)

	if err := cfg.Validate(); err != nil {
		var cfgErr *ConfigError
		if errors.As(err, &cfgErr) {
			slog.Error("invalid configuration", slog.Any("missing", cfgErr.Missing), slog.Any("invalid", cfgErr.Invalid))
		}
		slog.Error(err.Error())
		os.Exit(1)
	}

	bot := newLazyBot(cfg, tgbotapi.APIEndpoint)
	if _, err := bot.connect(); err != nil {
		slog.Warn("can't reach telegram, will retry on first send", slog.String("err", err.Error()))
	}

	notifier := NewNotifier(bot, cfg)
	loop := NewPollLoop(NewHomeworkAPI(cfg), notifier, cfg)
	loop.Run(ctx)
}
