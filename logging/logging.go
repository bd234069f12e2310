// Package logging provides structured logging for the shell.
//
// Logger wraps log/slog with a text handler and a no-op variant so that
// components can always log without nil checks. Interactive sessions log to
// a file or nowhere, since the terminal belongs to the shell; batch runs log
// to stderr.
package logging

import (
	"context"
	"io"
	"log/slog"
	"strings"
	"time"

	"github.com/janleigh/ms-dos-clone/errors"
)

// LogLevel represents different logging levels.
type LogLevel int

// Supported levels, lowest first.
const (
	LogLevelDebug LogLevel = iota
	LogLevelInfo
	LogLevelWarn
	LogLevelError
)

// String returns the level's configuration name.
func (l LogLevel) String() string {
	switch l {
	case LogLevelDebug:
		return "debug"
	case LogLevelWarn:
		return "warn"
	case LogLevelError:
		return "error"
	default:
		return "info"
	}
}

// Logger provides structured logging. The zero value discards everything.
type Logger struct {
	impl loggerImpl
}

// loggerImpl defines the internal interface for logger implementations.
type loggerImpl interface {
	log(ctx context.Context, level LogLevel, msg string, args ...any)
	with(args ...any) loggerImpl
}

// Debug logs debug-level messages.
func (l *Logger) Debug(ctx context.Context, msg string, args ...any) {
	l.log(ctx, LogLevelDebug, msg, args...)
}

// Info logs info-level messages.
func (l *Logger) Info(ctx context.Context, msg string, args ...any) {
	l.log(ctx, LogLevelInfo, msg, args...)
}

// Warn logs warning-level messages.
func (l *Logger) Warn(ctx context.Context, msg string, args ...any) {
	l.log(ctx, LogLevelWarn, msg, args...)
}

// Error logs error-level messages.
func (l *Logger) Error(ctx context.Context, msg string, args ...any) {
	l.log(ctx, LogLevelError, msg, args...)
}

func (l *Logger) log(ctx context.Context, level LogLevel, msg string, args ...any) {
	if l == nil || l.impl == nil {
		return
	}
	l.impl.log(ctx, level, msg, args...)
}

// With returns a logger with additional context fields.
func (l *Logger) With(args ...any) *Logger {
	if l == nil || l.impl == nil {
		return l
	}
	if _, ok := l.impl.(nopLogger); ok {
		return l
	}
	return &Logger{impl: l.impl.with(args...)}
}

// WithSession returns a logger tagged with a session id.
func (l *Logger) WithSession(id string) *Logger {
	return l.With("session", id)
}

// WithCommand returns a logger tagged with a command name.
func (l *Logger) WithCommand(name string) *Logger {
	return l.With("command", name)
}

// LogConfig holds configuration for the logger.
type LogConfig struct {
	// Level sets the minimum log level.
	Level LogLevel
	// AddSource includes file and line number in logs.
	AddSource bool
}

// DefaultLogConfig returns a default logging configuration.
func DefaultLogConfig() LogConfig {
	return LogConfig{Level: LogLevelInfo}
}

// slogLogger implements loggerImpl using slog.
type slogLogger struct {
	logger *slog.Logger
	config LogConfig
	fields []any
}

// NewLogger creates a text-format structured logger writing to w.
func NewLogger(config LogConfig, w io.Writer) *Logger {
	handler := slog.NewTextHandler(w, &slog.HandlerOptions{
		Level:     toSlogLevel(config.Level),
		AddSource: config.AddSource,
	})

	return &Logger{
		impl: &slogLogger{
			logger: slog.New(handler),
			config: config,
		},
	}
}

// NewNopLogger creates a no-op logger that discards all log messages.
func NewNopLogger() *Logger {
	return &Logger{impl: nopLogger{}}
}

func toSlogLevel(level LogLevel) slog.Level {
	switch level {
	case LogLevelDebug:
		return slog.LevelDebug
	case LogLevelWarn:
		return slog.LevelWarn
	case LogLevelError:
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

func (l *slogLogger) log(ctx context.Context, level LogLevel, msg string, args ...any) {
	if level < l.config.Level {
		return
	}
	allArgs := make([]any, len(l.fields)+len(args))
	copy(allArgs, l.fields)
	copy(allArgs[len(l.fields):], args)
	l.logger.Log(ctx, toSlogLevel(level), msg, allArgs...)
}

func (l *slogLogger) with(args ...any) loggerImpl {
	newFields := make([]any, len(l.fields)+len(args))
	copy(newFields, l.fields)
	copy(newFields[len(l.fields):], args)

	return &slogLogger{
		logger: l.logger,
		config: l.config,
		fields: newFields,
	}
}

// nopLogger discards all messages.
type nopLogger struct{}

func (nopLogger) log(context.Context, LogLevel, string, ...any) {}
func (n nopLogger) with(...any) loggerImpl                      { return n }

// LogCommand records one dispatched command with its duration and outcome.
func LogCommand(ctx context.Context, logger *Logger, name string, duration time.Duration, err error) {
	if logger == nil {
		return
	}

	fields := []any{
		"command", name,
		"duration_ms", duration.Milliseconds(),
		"success", err == nil,
	}

	if err != nil {
		fields = append(fields,
			"code", string(errors.GetCode(err)),
			"error", err.Error(),
		)
		logger.Warn(ctx, "command failed", fields...)
		return
	}
	logger.Info(ctx, "command completed", fields...)
}

// ParseLogLevel parses a string log level into a LogLevel.
func ParseLogLevel(level string) (LogLevel, error) {
	switch strings.ToLower(level) {
	case "debug":
		return LogLevelDebug, nil
	case "info", "":
		return LogLevelInfo, nil
	case "warn", "warning":
		return LogLevelWarn, nil
	case "error":
		return LogLevelError, nil
	default:
		return LogLevelInfo, errors.Newf(errors.CodeInvalidInput, "invalid log level: %s", level)
	}
}
