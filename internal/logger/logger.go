// Package logger wraps zerolog.Logger for the client and its transport.
//
// The library never writes log output on its own: the default is Nop, and
// callers opt in by handing a configured zerolog.Logger to the client.
package logger

import (
	"io"
	"os"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/rs/zerolog"
)

// Logger is a thin wrapper around zerolog.Logger.
// Embedding exposes the full zerolog API.
type Logger struct {
	zerolog.Logger
}

// New wraps l and tags every entry with component=nexperiment.
func New(l zerolog.Logger) *Logger {
	return &Logger{l.With().Str("component", "nexperiment").Logger()}
}

// NewConsole returns a human-readable logger writing to w at the given level.
// A nil writer falls back to os.Stderr.
func NewConsole(w io.Writer, level zerolog.Level) *Logger {
	if w == nil {
		w = os.Stderr
	}
	out := zerolog.ConsoleWriter{Out: w, TimeFormat: time.RFC3339}
	return New(zerolog.New(out).Level(level).With().Timestamp().Logger())
}

// Nop returns a *Logger that discards all log output.
func Nop() *Logger {
	return &Logger{zerolog.Nop()}
}

// Child returns a child logger carrying an extra string field.
func (l *Logger) Child(key, value string) *Logger {
	return &Logger{l.Logger.With().Str(key, value).Logger()}
}

// Resty adapts the logger to resty's Logger interface.
func (l *Logger) Resty() resty.Logger {
	return restyLogger{l: l.Logger.With().Str("source", "resty").Logger()}
}

type restyLogger struct {
	l zerolog.Logger
}

func (r restyLogger) Errorf(format string, v ...interface{}) {
	r.l.Error().Msgf(format, v...)
}

func (r restyLogger) Warnf(format string, v ...interface{}) {
	r.l.Warn().Msgf(format, v...)
}

func (r restyLogger) Debugf(format string, v ...interface{}) {
	r.l.Debug().Msgf(format, v...)
}
