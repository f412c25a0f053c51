package logger

import (
	"io"
	"log/slog"
)

// New returns the service logger: one JSON object per line on w, filtered by
// the LOG_LEVEL config value. Unknown level strings fall back to info, so a
// typo in the environment never silences the server.
func New(w io.Writer, level string) *slog.Logger {
	opts := &slog.HandlerOptions{Level: parseLevel(level)}
	return slog.New(slog.NewJSONHandler(w, opts))
}

func parseLevel(level string) slog.Level {
	switch level {
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
