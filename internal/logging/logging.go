// Package logging builds the structured logger shared by taskpad
// components.
//
// The terminal belongs to the screen, so records go to a file or are
// discarded. Every record carries the session id of the process.
package logging

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

// SessionKey is the attribute key of the session id.
const SessionKey = "session"

// Options configures New.
type Options struct {
	// Level is one of debug, info, warn or error. Empty means info.
	Level string

	// File is the log file path, appended to. Ignored when Writer is set.
	File string

	// Writer receives records when set.
	Writer io.Writer
}

// ParseLevel parses a level name, case-insensitively.
func ParseLevel(s string) (slog.Level, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return slog.LevelDebug, nil
	case "", "info":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	}
	return slog.LevelInfo, fmt.Errorf("unknown log level %q", s)
}

// New returns a logger for opts and a closer for the log file. With
// neither File nor Writer set the logger discards everything.
func New(opts Options) (*slog.Logger, io.Closer, error) {
	level, err := ParseLevel(opts.Level)
	if err != nil {
		return nil, nil, err
	}

	w := opts.Writer
	var closer io.Closer = nopCloser{}
	if w == nil && opts.File != "" {
		if err := os.MkdirAll(filepath.Dir(opts.File), 0o755); err != nil {
			return nil, nil, fmt.Errorf("creating log directory: %w", err)
		}
		f, err := os.OpenFile(opts.File, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, nil, fmt.Errorf("opening log file: %w", err)
		}
		w, closer = f, f
	}
	if w == nil {
		return Discard(), closer, nil
	}

	h := slog.NewTextHandler(w, &slog.HandlerOptions{Level: level})
	return slog.New(h).With(SessionKey, uuid.NewString()), closer, nil
}

// Discard returns a logger that drops every record.
func Discard() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }
