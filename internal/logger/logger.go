// Package logger provides a simple leveled logger for the application.
// It supports four levels: off (no output), warn (warn/error), normal
// (info/warn/error), and verbose (includes debug). Records are handled by log/slog: text to
// the console writer and, when a log file is configured, JSON to the file.
// The logger is safe for concurrent use.
package logger

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	slogmulti "github.com/samber/slog-multi"
)

// Level controls the verbosity of the logger.
type Level int

const (
	// LevelOff disables all log output.
	LevelOff Level = iota
	// LevelWarn enables warn and error output only.
	LevelWarn
	// LevelNormal enables info, warn, and error output.
	LevelNormal
	// LevelVerbose enables all output including debug.
	LevelVerbose
)

// ParseLevel maps a config string to a Level. Unknown values give LevelNormal.
func ParseLevel(s string) Level {
	switch s {
	case "off", "quiet", "none":
		return LevelOff
	case "warn", "warning":
		return LevelWarn
	case "verbose", "debug":
		return LevelVerbose
	default:
		return LevelNormal
	}
}

// slogOff sits above every level slog emits.
const slogOff = slog.Level(64)

func toSlog(level Level) slog.Level {
	switch level {
	case LevelOff:
		return slogOff
	case LevelWarn:
		return slog.LevelWarn
	case LevelVerbose:
		return slog.LevelDebug
	default:
		return slog.LevelInfo
	}
}

// Logger is a leveled logger. All methods are safe for concurrent use.
type Logger struct {
	level *slog.LevelVar
	base  *slog.Logger
}

// New creates a logger with the given level, writing text records to out.
// If out is nil, os.Stderr is used. Extra handlers receive every record too.
func New(level Level, out io.Writer, extra ...slog.Handler) *Logger {
	if out == nil {
		out = os.Stderr
	}

	lv := new(slog.LevelVar)
	lv.Set(toSlog(level))

	handlers := []slog.Handler{
		slog.NewTextHandler(out, &slog.HandlerOptions{Level: lv}),
	}
	handlers = append(handlers, extra...)

	return &Logger{
		level: lv,
		base:  slog.New(slogmulti.Fanout(handlers...)),
	}
}

// NewWithFile creates a logger that also appends JSON records to path.
// The returned cleanup closes the file. When the file cannot be opened the
// logger falls back to out only and reports the error through it.
func NewWithFile(level Level, out io.Writer, path string) (*Logger, func() error) {
	noop := func() error { return nil }
	if path == "" {
		return New(level, out), noop
	}

	if dir := filepath.Dir(path); dir != "" && dir != "." {
		_ = os.MkdirAll(dir, 0o755)
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		l := New(level, out)
		l.Warn("could not open log file %s: %v (console only)", path, err)
		return l, noop
	}

	l := New(level, out)
	fileHandler := slog.NewJSONHandler(f, &slog.HandlerOptions{Level: l.level})
	l.base = slog.New(slogmulti.Fanout(l.base.Handler(), fileHandler))
	return l, f.Close
}

// Discard returns a logger that drops everything. Handy in tests.
func Discard() *Logger {
	return New(LevelOff, io.Discard)
}

// SetLevel changes the log level at runtime.
func (l *Logger) SetLevel(level Level) {
	l.level.Set(toSlog(level))
}

// Debug logs a message at debug level (only visible in verbose mode).
func (l *Logger) Debug(format string, args ...any) {
	l.log(slog.LevelDebug, format, args...)
}

// Info logs a message at info level.
func (l *Logger) Info(format string, args ...any) {
	l.log(slog.LevelInfo, format, args...)
}

// Warn logs a message at warn level.
func (l *Logger) Warn(format string, args ...any) {
	l.log(slog.LevelWarn, format, args...)
}

// Error logs a message at error level.
func (l *Logger) Error(format string, args ...any) {
	l.log(slog.LevelError, format, args...)
}

func (l *Logger) log(level slog.Level, format string, args ...any) {
	ctx := context.Background()
	if !l.base.Enabled(ctx, level) {
		return
	}
	l.base.Log(ctx, level, fmt.Sprintf(format, args...))
}
