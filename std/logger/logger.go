// Package logger wraps slog for the example programs. Logging is off unless
// a program's config turns it on, so stdout and stderr carry only program
// output by default.
package logger

import (
	"fmt"
	"io"
	"log/slog"
	"strings"
)

// Level represents the logging level
type Level string

const (
	OffLevel   Level = "off"
	DebugLevel Level = "debug"
	InfoLevel  Level = "info"
	WarnLevel  Level = "warn"
	ErrorLevel Level = "error"
)

// ParseLevel accepts the level names above, case-insensitively. An empty
// string means off.
func ParseLevel(s string) (Level, error) {
	switch l := Level(strings.ToLower(strings.TrimSpace(s))); l {
	case "":
		return OffLevel, nil
	case OffLevel, DebugLevel, InfoLevel, WarnLevel, ErrorLevel:
		return l, nil
	}
	return "", fmt.Errorf("unknown log level %q", s)
}

func (l Level) slog() slog.Level {
	switch l {
	case DebugLevel:
		return slog.LevelDebug
	case WarnLevel:
		return slog.LevelWarn
	case ErrorLevel:
		return slog.LevelError
	}
	return slog.LevelInfo
}

// Logger wraps slog.Logger for structured logging
type Logger struct {
	*slog.Logger
}

// New returns a text logger writing to w, or a discarding one for OffLevel.
func New(w io.Writer, level Level) *Logger {
	if level == OffLevel || level == "" {
		return Discard()
	}
	h := slog.NewTextHandler(w, &slog.HandlerOptions{Level: level.slog()})
	return &Logger{Logger: slog.New(h)}
}

func Discard() *Logger {
	return &Logger{Logger: slog.New(slog.DiscardHandler)}
}

// With returns a new logger with additional attributes
func (l *Logger) With(args ...any) *Logger {
	return &Logger{Logger: l.Logger.With(args...)}
}

// ErrorWithErr logs an error message with an error object
func (l *Logger) ErrorWithErr(msg string, err error, args ...any) {
	args = append(args, slog.Any("error", err))
	l.Logger.Error(msg, args...)
}
