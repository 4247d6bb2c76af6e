package logger

import (
	"context"
	"log/slog"
	"runtime"
	"time"
)

// Interface is the structured logger handed to use cases, services and
// handlers. The *w variants take alternating key/value pairs.
type Interface interface {
	Debug(msg string, args ...any)
	Info(msg string, args ...any)
	Warn(msg string, args ...any)
	Error(msg string, args ...any)
	With(args ...any) Interface
	Named(name string) Interface

	Debugw(msg string, keysAndValues ...interface{})
	Infow(msg string, keysAndValues ...interface{})
	Warnw(msg string, keysAndValues ...interface{})
	Errorw(msg string, keysAndValues ...interface{})
}

// slogLogger keeps the attributes added through With apart from its name so
// nested Named calls produce one dotted "logger" attribute.
type slogLogger struct {
	attrs  *slog.Logger
	logger *slog.Logger
	name   string
}

func newSlogLogger(attrs *slog.Logger, name string) *slogLogger {
	l := &slogLogger{attrs: attrs, logger: attrs, name: name}
	if name != "" {
		l.logger = attrs.With("logger", name)
	}
	return l
}

func NewLogger() Interface {
	return newSlogLogger(Get(), "")
}

func NewLoggerWithSlog(slogLog *slog.Logger) Interface {
	return newSlogLogger(slogLog, "")
}

// NewNopLogger returns a logger that drops every record.
func NewNopLogger() Interface {
	return newSlogLogger(slog.New(slog.DiscardHandler), "")
}

func (l *slogLogger) With(args ...any) Interface {
	return newSlogLogger(l.attrs.With(args...), l.name)
}

// Named appends name to the logger's name: Named("http").Named("auth") logs
// as "http.auth".
func (l *slogLogger) Named(name string) Interface {
	if l.name != "" {
		name = l.name + "." + name
	}
	return newSlogLogger(l.attrs, name)
}

func (l *slogLogger) Debug(msg string, args ...any) {
	l.log(slog.LevelDebug, msg, args...)
}

func (l *slogLogger) Info(msg string, args ...any) {
	l.log(slog.LevelInfo, msg, args...)
}

func (l *slogLogger) Warn(msg string, args ...any) {
	l.log(slog.LevelWarn, msg, args...)
}

func (l *slogLogger) Error(msg string, args ...any) {
	l.log(slog.LevelError, msg, args...)
}

func (l *slogLogger) Debugw(msg string, keysAndValues ...interface{}) {
	l.log(slog.LevelDebug, msg, keysAndValues...)
}

func (l *slogLogger) Infow(msg string, keysAndValues ...interface{}) {
	l.log(slog.LevelInfo, msg, keysAndValues...)
}

func (l *slogLogger) Warnw(msg string, keysAndValues ...interface{}) {
	l.log(slog.LevelWarn, msg, keysAndValues...)
}

func (l *slogLogger) Errorw(msg string, keysAndValues ...interface{}) {
	l.log(slog.LevelError, msg, keysAndValues...)
}

// log records the caller of the exported method as the record's PC, so
// source locations point at application code rather than this wrapper.
func (l *slogLogger) log(level slog.Level, msg string, args ...any) {
	ctx := context.Background()
	if !l.logger.Enabled(ctx, level) {
		return
	}

	var pcs [1]uintptr
	runtime.Callers(3, pcs[:]) // runtime.Callers, log, exported method
	r := slog.NewRecord(time.Now(), level, msg, pcs[0])
	r.Add(args...)
	_ = l.logger.Handler().Handle(ctx, r)
}
