package telemetry

import (
	"io"
	"log/slog"
	"os"
)

// NewLogger opens a JSON slog logger on the given file. The TUI owns the
// terminal, so logs never go to stdout. An unopenable file degrades to a
// discard logger rather than failing startup.
func NewLogger(path, station string) (*slog.Logger, func()) {
	if path == "" {
		return slog.New(slog.NewTextHandler(io.Discard, nil)), func() {}
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0644)
	if err != nil {
		return slog.New(slog.NewTextHandler(io.Discard, nil)), func() {}
	}

	logger := slog.New(slog.NewJSONHandler(f, nil)).With("station", station)
	return logger, func() { f.Close() }
}
