package logging

import (
	"io"
	"log/slog"
	"os"
	"strings"
)

// New builds a text slog.Logger from the LOG_VERBOSITY setting. "quiet"
// raises the threshold to warnings so request noise disappears, "debug"
// lowers it, anything else means info.
func New(verbosity string, w io.Writer) *slog.Logger {
	if w == nil {
		w = os.Stderr
	}
	opts := &slog.HandlerOptions{Level: parseLevel(verbosity)}
	return slog.New(slog.NewTextHandler(w, opts))
}

func parseLevel(verbosity string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(verbosity)) {
	case "debug":
		return slog.LevelDebug
	case "quiet":
		return slog.LevelWarn
	default:
		return slog.LevelInfo
	}
}
