package logging

import (
	"io"
	"log/slog"
	"os"
)

// Init installs a text slog handler on stderr as the default logger, so the
// stdlib log package routes through it too. Debug mode lowers the level and
// adds file:line.
func Init(debug bool) *slog.Logger {
	return InitWriter(os.Stderr, debug)
}

func InitWriter(w io.Writer, debug bool) *slog.Logger {
	level := slog.LevelInfo
	if debug {
		level = slog.LevelDebug
	}
	h := slog.NewTextHandler(w, &slog.HandlerOptions{
		Level:     level,
		AddSource: debug,
	})
	logger := slog.New(h)
	slog.SetDefault(logger)
	return logger
}
