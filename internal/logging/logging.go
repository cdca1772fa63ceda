package logging

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
)

// Logger defines minimal logging interface used across layers.
type Logger interface {
	Debug(ctx context.Context, msg string, kv ...any)
	Debugf(ctx context.Context, format string, args ...any)
	Info(ctx context.Context, msg string, kv ...any)
	Infof(ctx context.Context, format string, args ...any)
	Warn(ctx context.Context, msg string, kv ...any)
	Warnf(ctx context.Context, format string, args ...any)
	Error(ctx context.Context, msg string, kv ...any)
	Errorf(ctx context.Context, format string, args ...any)
	With(kv ...any) Logger
}

type contextKey struct{}

// WithLogger stores a logger in context.
func WithLogger(ctx context.Context, l Logger) context.Context {
	return context.WithValue(ctx, contextKey{}, l)
}

// FromContext returns the logger stored in ctx, or a human readable stderr
// logger at INFO level.
func FromContext(ctx context.Context) Logger {
	if l, ok := ctx.Value(contextKey{}).(Logger); ok && l != nil {
		return l
	}
	return fallback
}

var fallback Logger = newHandlerLogger(humanHandler(os.Stderr, slog.LevelInfo))

// NewWithWriter constructs a Logger writing the given format to w.
// Formats: "human" (default), "text", "json".
func NewWithWriter(format string, level slog.Leveler, w io.Writer) (Logger, error) {
	opts := &slog.HandlerOptions{Level: level}
	switch strings.ToLower(format) {
	case "", "human":
		return newHandlerLogger(humanHandler(w, level)), nil
	case "text":
		return newHandlerLogger(slog.NewTextHandler(w, opts)), nil
	case "json":
		return newHandlerLogger(slog.NewJSONHandler(w, opts)), nil
	}
	return nil, fmt.Errorf("unsupported log format: %s", format)
}

// humanHandler is a text handler without timestamps, meant for terminals.
func humanHandler(w io.Writer, level slog.Leveler) slog.Handler {
	return slog.NewTextHandler(w, &slog.HandlerOptions{
		Level: level,
		ReplaceAttr: func(groups []string, a slog.Attr) slog.Attr {
			if len(groups) == 0 && a.Key == slog.TimeKey {
				return slog.Attr{}
			}
			return a
		},
	})
}

// ParseLevel converts a level name (DEBUG, INFO, WARN, ERROR) to slog.Level.
// Empty defaults to INFO.
func ParseLevel(s string) (slog.Level, error) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "", "INFO":
		return slog.LevelInfo, nil
	case "DEBUG":
		return slog.LevelDebug, nil
	case "WARN", "WARNING":
		return slog.LevelWarn, nil
	case "ERROR":
		return slog.LevelError, nil
	}
	return slog.LevelInfo, fmt.Errorf("unsupported log level: %s", s)
}

// NewFromConfig builds a Logger writing to the configured output.
// The returned Output must be closed by the caller.
func NewFromConfig(cfg *LogConfig) (Logger, *Output, error) {
	level, err := ParseLevel(cfg.Level)
	if err != nil {
		return nil, nil, err
	}
	out, err := OpenOutput(cfg)
	if err != nil {
		return nil, nil, err
	}
	l, err := NewWithWriter(cfg.Format, level, out)
	if err != nil {
		_ = out.Close()
		return nil, nil, err
	}
	return l, out, nil
}

type handlerLogger struct{ s *slog.Logger }

func newHandlerLogger(h slog.Handler) *handlerLogger {
	return &handlerLogger{s: slog.New(h)}
}

func (l *handlerLogger) Debug(ctx context.Context, msg string, kv ...any) {
	l.s.Log(ctx, slog.LevelDebug, msg, kv...)
}

func (l *handlerLogger) Debugf(ctx context.Context, format string, args ...any) {
	l.logf(ctx, slog.LevelDebug, format, args)
}

func (l *handlerLogger) Info(ctx context.Context, msg string, kv ...any) {
	l.s.Log(ctx, slog.LevelInfo, msg, kv...)
}

func (l *handlerLogger) Infof(ctx context.Context, format string, args ...any) {
	l.logf(ctx, slog.LevelInfo, format, args)
}

func (l *handlerLogger) Warn(ctx context.Context, msg string, kv ...any) {
	l.s.Log(ctx, slog.LevelWarn, msg, kv...)
}

func (l *handlerLogger) Warnf(ctx context.Context, format string, args ...any) {
	l.logf(ctx, slog.LevelWarn, format, args)
}

func (l *handlerLogger) Error(ctx context.Context, msg string, kv ...any) {
	l.s.Log(ctx, slog.LevelError, msg, kv...)
}

func (l *handlerLogger) Errorf(ctx context.Context, format string, args ...any) {
	l.logf(ctx, slog.LevelError, format, args)
}

func (l *handlerLogger) With(kv ...any) Logger { return &handlerLogger{s: l.s.With(kv...)} }

// logf skips formatting when the level is disabled.
func (l *handlerLogger) logf(ctx context.Context, level slog.Level, format string, args []any) {
	if !l.s.Enabled(ctx, level) {
		return
	}
	l.s.Log(ctx, level, fmt.Sprintf(format, args...))
}
