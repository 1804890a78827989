// Package logger provides a simple leveled logger for the application.
// It supports three levels: off (no output), normal (info/warn/error),
// and verbose (includes debug). Records go through log/slog with a tint
// handler; colour is only used when the output is a terminal. The logger is
// safe for concurrent use.
package logger

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/lmittmann/tint"
	"github.com/mattn/go-isatty"
)

// Level controls the verbosity of the logger.
type Level int

const (
	// LevelOff disables all log output.
	LevelOff Level = iota
	// LevelNormal enables info, warn, and error output.
	LevelNormal
	// LevelVerbose enables all output including debug.
	LevelVerbose
)

// slogOff is above every level slog emits.
const slogOff = slog.LevelError + 4

// String returns the config spelling of the level.
func (l Level) String() string {
	switch l {
	case LevelOff:
		return "off"
	case LevelVerbose:
		return "verbose"
	default:
		return "normal"
	}
}

// ParseLevel accepts off/quiet, normal/info and verbose/debug.
func ParseLevel(s string) (Level, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "off", "quiet", "none":
		return LevelOff, nil
	case "", "normal", "info":
		return LevelNormal, nil
	case "verbose", "debug":
		return LevelVerbose, nil
	default:
		return LevelNormal, fmt.Errorf("unknown log level %q", s)
	}
}

// Logger is a leveled logger. All methods are safe for concurrent use.
type Logger struct {
	mu    sync.RWMutex
	level Level
	lvl   *slog.LevelVar
	sl    *slog.Logger
}

// New creates a logger with the given level, writing to the given output.
// If out is nil, os.Stderr is used.
func New(level Level, out io.Writer) *Logger {
	if out == nil {
		out = os.Stderr
	}

	l := &Logger{lvl: new(slog.LevelVar)}
	l.sl = slog.New(tint.NewHandler(out, &tint.Options{
		Level:      l.lvl,
		TimeFormat: time.TimeOnly,
		NoColor:    !isTerminal(out),
	}))
	l.SetLevel(level)
	return l
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// SetLevel changes the log level at runtime.
func (l *Logger) SetLevel(level Level) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.level = level
	switch level {
	case LevelOff:
		l.lvl.Set(slogOff)
	case LevelVerbose:
		l.lvl.Set(slog.LevelDebug)
	default:
		l.lvl.Set(slog.LevelInfo)
	}
}

// GetLevel returns the current log level.
func (l *Logger) GetLevel() Level {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.level
}

// Slog exposes the underlying structured logger, e.g. for slog.SetDefault.
func (l *Logger) Slog() *slog.Logger {
	return l.sl
}

func (l *Logger) log(level slog.Level, format string, args ...any) {
	if !l.sl.Enabled(context.Background(), level) {
		return
	}
	l.sl.Log(context.Background(), level, fmt.Sprintf(format, args...))
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
