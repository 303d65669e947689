package logger

import (
	"log/slog"
	"os"
	"strings"
)

var Logger *slog.Logger

func InitLogger() *slog.Logger {
	return InitLoggerWithLevel("info")
}

func InitLoggerWithLevel(level string) *slog.Logger {
	config := &slog.HandlerOptions{
		Level: parseLevel(level),
	}

	Logger = slog.New(slog.NewJSONHandler(os.Stdout, config))
	slog.SetDefault(Logger)

	Logger.Info("Logger initialized", "level", level)

	return Logger
}

func parseLevel(level string) slog.Level {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// SafeInfo logs at info level, tolerating use before InitLogger has run.
func SafeInfo(msg string, args ...any) {
	if Logger == nil {
		slog.Info(msg, args...)
		return
	}
	Logger.Info(msg, args...)
}

// SafeError logs at error level, tolerating use before InitLogger has run.
func SafeError(msg string, args ...any) {
	if Logger == nil {
		slog.Error(msg, args...)
		return
	}
	Logger.Error(msg, args...)
}
