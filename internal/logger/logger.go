// Package logger provides structured logging interfaces and implementations
// for dealcloud-activity. It is built on log/slog, with tint rendering the
// human-readable text format.
package logger

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/lmittmann/tint"
	"golang.org/x/term"
)

// Output formats understood by New.
const (
	FormatText = "text"
	FormatJSON = "json"
)

// Logger defines the interface for structured logging with multiple levels,
// both in simple and formatted variants.
type Logger interface {
	// Debug logs debug-level messages (lowest priority)
	Debug(msg string, args ...any)
	Debugf(format string, args ...any)

	// Info logs informational messages
	Info(msg string, args ...any)
	Infof(format string, args ...any)

	// Warn logs warning messages
	Warn(msg string, args ...any)
	Warnf(format string, args ...any)

	// Error logs error messages (highest priority)
	Error(msg string, args ...any)
	Errorf(format string, args ...any)

	// With returns a logger that adds the given attributes to every record.
	With(args ...any) Logger
}

// NoopLogger is a logger that discards all log messages.
// It's useful for testing or when logging is completely disabled.
type NoopLogger struct{}

func (l NoopLogger) Debug(msg string, args ...any)     {}
func (l NoopLogger) Debugf(format string, args ...any) {}
func (l NoopLogger) Info(msg string, args ...any)      {}
func (l NoopLogger) Infof(format string, args ...any)  {}
func (l NoopLogger) Warn(msg string, args ...any)      {}
func (l NoopLogger) Warnf(format string, args ...any)  {}
func (l NoopLogger) Error(msg string, args ...any)     {}
func (l NoopLogger) Errorf(format string, args ...any) {}
func (l NoopLogger) With(args ...any) Logger           { return l }

// SlogLogger wraps Go's log/slog.Logger to implement our Logger interface.
type SlogLogger struct {
	logger *slog.Logger
}

// NewSlogLogger wraps an existing slog handler.
func NewSlogLogger(handler slog.Handler) *SlogLogger {
	return &SlogLogger{logger: slog.New(handler)}
}

// New creates a logger writing to w. The text format is rendered by tint,
// with colour only when w is a terminal; the json format uses slog's JSON
// handler.
func New(w io.Writer, level slog.Level, format string) (*SlogLogger, error) {
	switch format {
	case FormatText, "":
		return NewSlogLogger(tint.NewHandler(w, &tint.Options{
			Level:      level,
			TimeFormat: time.TimeOnly,
			NoColor:    !isTerminal(w),
		})), nil
	case FormatJSON:
		return NewSlogLogger(slog.NewJSONHandler(w, &slog.HandlerOptions{Level: level})), nil
	default:
		return nil, fmt.Errorf("unknown log format %q", format)
	}
}

// NewDefaultLogger creates a stderr logger with appropriate defaults based on
// debug mode. If debug is true, it logs at Debug level; otherwise, it logs at
// Info level. An unknown format falls back to text.
func NewDefaultLogger(debug bool, format string) Logger {
	level := slog.LevelInfo
	if debug {
		level = slog.LevelDebug
	}
	l, err := New(os.Stderr, level, format)
	if err != nil {
		l, _ = New(os.Stderr, level, FormatText)
	}
	return l
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

// Debug logs a debug-level message with optional structured attributes
func (l *SlogLogger) Debug(msg string, args ...any) {
	l.logger.Debug(msg, args...)
}

// Debugf logs a debug-level message with printf-style formatting
func (l *SlogLogger) Debugf(format string, args ...any) {
	l.logger.Debug(sprintf(format, args...))
}

// Info logs an info-level message with optional structured attributes
func (l *SlogLogger) Info(msg string, args ...any) {
	l.logger.Info(msg, args...)
}

// Infof logs an info-level message with printf-style formatting
func (l *SlogLogger) Infof(format string, args ...any) {
	l.logger.Info(sprintf(format, args...))
}

// Warn logs a warning-level message with optional structured attributes
func (l *SlogLogger) Warn(msg string, args ...any) {
	l.logger.Warn(msg, args...)
}

// Warnf logs a warning-level message with printf-style formatting
func (l *SlogLogger) Warnf(format string, args ...any) {
	l.logger.Warn(sprintf(format, args...))
}

// Error logs an error-level message with optional structured attributes
func (l *SlogLogger) Error(msg string, args ...any) {
	l.logger.Error(msg, args...)
}

// Errorf logs an error-level message with printf-style formatting
func (l *SlogLogger) Errorf(format string, args ...any) {
	l.logger.Error(sprintf(format, args...))
}

// With returns a child logger carrying the given attributes.
func (l *SlogLogger) With(args ...any) Logger {
	return &SlogLogger{logger: l.logger.With(args...)}
}

// sprintf is a helper function that safely formats strings using fmt.Sprintf
func sprintf(format string, args ...any) string {
	if len(args) == 0 {
		return format
	}
	return fmt.Sprintf(format, args...)
}
