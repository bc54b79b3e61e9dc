package main

import (
	"io"
	"log/slog"
	"path/filepath"
	"strings"

	"github.com/lmittmann/tint"
)

func parseLogLevel(name string) (slog.Level, bool) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(strings.ToLower(strings.TrimSpace(name)))); err != nil {
		return slog.LevelDebug, false
	}
	return level, true
}

func setupLogger(w io.Writer, levelName string) *slog.Logger {
	level, ok := parseLogLevel(levelName)

	replaceAttrs := func(groups []string, a slog.Attr) slog.Attr {
		if a.Key == slog.SourceKey {
			if source, ok := a.Value.Any().(*slog.Source); ok {
				source.File = filepath.Base(source.File)
			}
		}
		return a
	}

	logger := slog.New(tint.NewHandler(w, &tint.Options{
		AddSource:   true,
		Level:       level,
		ReplaceAttr: replaceAttrs,
	}))
	slog.SetDefault(logger)
	if !ok {
		logger.Warn("unknown log level, using debug", slog.String("level", levelName))
	}
	logger.Debug("debug messages are enabled")
	return logger
}
