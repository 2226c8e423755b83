package logger

import (
	"log/slog"
	"os"
)

// New returns JSON logger with the given level; LOG_LEVEL wins when set.
// Logs go to stderr so captured operation output on stdout stays verbatim.
func New(level string) *slog.Logger {
	if env := os.Getenv("LOG_LEVEL"); env != "" {
		level = env
	}
	lvl := slog.LevelInfo
	if level != "" {
		var parsed slog.Level
		if err := parsed.UnmarshalText([]byte(level)); err == nil {
			lvl = parsed
		}
	}
	h := slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: lvl})
	return slog.New(h)
}
