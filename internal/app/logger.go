package app

import (
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/lmittmann/tint"
)

// Logger interface and implementations
type Logger interface {
	Infof(component string, format string, args ...interface{})
	Errorf(component string, format string, args ...interface{})
}

type NoopLogger struct{}

func (NoopLogger) Infof(component, format string, args ...interface{})  {}
func (NoopLogger) Errorf(component, format string, args ...interface{}) {}

// SlogLogger adapts a slog.Logger, attaching the component as an attribute.
type SlogLogger struct{ L *slog.Logger }

// NewConsoleLogger logs colorized records to w.
func NewConsoleLogger(w io.Writer, level slog.Level) SlogLogger {
	return SlogLogger{L: slog.New(tint.NewHandler(w, &tint.Options{Level: level, TimeFormat: time.TimeOnly}))}
}

// NewFileLogger logs plain records with RFC3339 timestamps to w.
func NewFileLogger(w io.Writer) SlogLogger {
	return SlogLogger{L: slog.New(tint.NewHandler(w, &tint.Options{Level: slog.LevelDebug, TimeFormat: time.RFC3339, NoColor: true}))}
}

func (l SlogLogger) Infof(component string, format string, args ...interface{}) {
	l.L.Info(fmt.Sprintf(format, args...), "component", component)
}

func (l SlogLogger) Errorf(component string, format string, args ...interface{}) {
	l.L.Error(fmt.Sprintf(format, args...), "component", component)
}
