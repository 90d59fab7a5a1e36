// Package logging configures the process-wide slog logger.
package logging

import (
	"io"
	"log/slog"
	"os"
)

type handlerType int

const (
	handlerText handlerType = iota
	handlerJSON
)

func setup(debug bool, w io.Writer, ht handlerType) *slog.Logger {
	if w == nil {
		w = os.Stderr
	}

	level := slog.LevelInfo
	if debug {
		level = slog.LevelDebug
	}
	opts := &slog.HandlerOptions{Level: level}

	var handler slog.Handler
	switch ht {
	case handlerJSON:
		handler = slog.NewJSONHandler(w, opts)
	default:
		handler = slog.NewTextHandler(w, opts)
	}

	logger := slog.New(handler)
	slog.SetDefault(logger)
	return logger
}

// Setup installs a text logger writing to w (stderr when nil).
func Setup(debug bool, w io.Writer) *slog.Logger {
	return setup(debug, w, handlerText)
}

// SetupJSON installs a JSON logger writing to w (stderr when nil).
func SetupJSON(debug bool, w io.Writer) *slog.Logger {
	return setup(debug, w, handlerJSON)
}

// Discard installs a logger that drops everything. Interactive sessions use
// it when no log file is given so records never reach the terminal.
func Discard() *slog.Logger {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	slog.SetDefault(logger)
	return logger
}

// OpenFile opens path for appending log records.
func OpenFile(path string) (*os.File, error) {
	return os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
}
