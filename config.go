package main

import (
	"errors"
	"io/fs"
	"log/slog"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const defaultEndpoint = "https://practicum.yandex.ru/api/user_api/homework_statuses/"

type Config struct {
	PracticumToken string        `mapstructure:"practicum_token"`
	TelegramToken  string        `mapstructure:"telegram_token"`
	TelegramChatID string        `mapstructure:"telegram_chat_id"`
	Endpoint       string        `mapstructure:"homework_endpoint"`
	RetryPeriod    time.Duration `mapstructure:"retry_period"`
	RequestTimeout time.Duration `mapstructure:"request_timeout"`
	SendInterval   time.Duration `mapstructure:"send_interval"`
	LogLevel       string        `mapstructure:"log_level"`
}

// requiredVars are checked in this order so the startup error is stable.
var requiredVars = []string{"PRACTICUM_TOKEN", "TELEGRAM_TOKEN", "TELEGRAM_CHAT_ID"}

// loadDotEnv reads .env from the working directory if there is one.
func loadDotEnv() {
	err := godotenv.Load()
	if err == nil {
		return
	}
	if errors.Is(err, fs.ErrNotExist) {
		slog.Debug("no .env file found, using environment variables")
		return
	}
	slog.Warn("can't read .env file", slog.String("err", err.Error()))
}

// LoadConfig reads the bot configuration from the process environment.
// Credentials are not checked here, see Config.Validate.
func LoadConfig() (*Config, error) {
	v := viper.New()
	v.SetDefault("homework_endpoint", defaultEndpoint)
	v.SetDefault("retry_period", "10m")
	v.SetDefault("request_timeout", "30s")
	v.SetDefault("send_interval", "1s")
	v.SetDefault("log_level", "debug")

	for _, key := range []string{
		"practicum_token",
		"telegram_token",
		"telegram_chat_id",
		"homework_endpoint",
		"retry_period",
		"request_timeout",
		"send_interval",
		"log_level",
	} {
		if err := v.BindEnv(key); err != nil {
			return nil, err
		}
	}
	v.AutomaticEnv()

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate reports every missing credential by its variable name.
func (c *Config) Validate() error {
	values := map[string]string{
		"PRACTICUM_TOKEN":  c.PracticumToken,
		"TELEGRAM_TOKEN":   c.TelegramToken,
		"TELEGRAM_CHAT_ID": c.TelegramChatID,
	}
	cfgErr := &ConfigError{}
	for _, name := range requiredVars {
		if values[name] == "" {
			cfgErr.Missing = append(cfgErr.Missing, name)
		}
	}
	if c.RetryPeriod <= 0 {
		cfgErr.Invalid = append(cfgErr.Invalid, "RETRY_PERIOD")
	}
	if c.RequestTimeout <= 0 {
		cfgErr.Invalid = append(cfgErr.Invalid, "REQUEST_TIMEOUT")
	}
	if c.SendInterval < 0 {
		cfgErr.Invalid = append(cfgErr.Invalid, "SEND_INTERVAL")
	}
	if len(cfgErr.Missing) > 0 || len(cfgErr.Invalid) > 0 {
		return cfgErr
	}
	return nil
}
