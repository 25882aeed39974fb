// Package logging builds the structured loggers used across go-pushdelta.
// Diagnostics always go to a side channel (stderr in the CLI) so stdout
// carries only the result document.
package logging

import (
	"fmt"
	"io"
	"log/slog"
	"strings"
)

// Verbosity levels accepted by New.
const (
	VerbosityQuiet = "quiet"
	VerbosityInfo  = "info"
	VerbosityDebug = "debug"
)

// ParseVerbosity maps a verbosity name to a slog level.
// An empty name selects info.
func ParseVerbosity(verbosity string) (slog.Level, error) {
	switch strings.ToLower(strings.TrimSpace(verbosity)) {
	case VerbosityQuiet:
		return slog.LevelError, nil
	case "", VerbosityInfo:
		return slog.LevelInfo, nil
	case VerbosityDebug:
		return slog.LevelDebug, nil
	default:
		return 0, fmt.Errorf("unknown verbosity %q (expected quiet, info or debug)", verbosity)
	}
}

// New returns a text logger writing to w at the given verbosity.
func New(w io.Writer, verbosity string) (*slog.Logger, error) {
	level, err := ParseVerbosity(verbosity)
	if err != nil {
		return nil, err
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level})), nil
}

// Discard returns a logger that drops every record.
func Discard() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}

// OrDiscard returns l, or a discarding logger when l is nil.
func OrDiscard(l *slog.Logger) *slog.Logger {
	if l == nil {
		return Discard()
	}
	return l
}
