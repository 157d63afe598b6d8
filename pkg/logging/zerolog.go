package logging

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
)

// Options configures the zerolog backend.
type Options struct {
	// Format is "console" for human terminals or "json" for machine
	// consumption
	Format string

	// Level is the minimum severity: debug, info, warn, error
	Level string

	// File receives the log stream when set; empty logs to stderr
	File string

	// MaxSizeMB rotates the log file above this size (0 disables)
	MaxSizeMB int

	// MaxBackups is how many rotated files to keep
	MaxBackups int
}

// zerologLogger adapts a zerolog.Logger to the Logger interface.
type zerologLogger struct {
	zl     zerolog.Logger
	closer io.Closer
}

// New builds a logger from options. With a file path set the stream
// goes through a size-rotating writer; otherwise it goes to stderr,
// prettified when the console format is selected.
func New(opts Options) (Logger, error) {
	var w io.Writer = os.Stderr
	var closer io.Closer

	if opts.File != "" {
		rw, err := newRotatingWriter(opts.File, int64(opts.MaxSizeMB)*1024*1024, opts.MaxBackups)
		if err != nil {
			return nil, fmt.Errorf("open log file: %w", err)
		}
		w = rw
		closer = rw
	}

	if opts.Format == "console" {
		w = zerolog.ConsoleWriter{Out: w, TimeFormat: time.RFC3339, NoColor: opts.File != ""}
	}

	zl := zerolog.New(w).Level(zerologLevel(ParseLevel(opts.Level))).With().Timestamp().Logger()
	return &zerologLogger{zl: zl, closer: closer}, nil
}

func zerologLevel(l Level) zerolog.Level {
	switch l {
	case DebugLevel:
		return zerolog.DebugLevel
	case WarnLevel:
		return zerolog.WarnLevel
	case ErrorLevel:
		return zerolog.ErrorLevel
	default:
		return zerolog.InfoLevel
	}
}

func (l *zerologLogger) Debug(ctx context.Context, msg string, fields Fields) {
	l.emit(l.zl.Debug(), msg, fields)
}

func (l *zerologLogger) Info(ctx context.Context, msg string, fields Fields) {
	l.emit(l.zl.Info(), msg, fields)
}

func (l *zerologLogger) Warn(ctx context.Context, msg string, fields Fields) {
	l.emit(l.zl.Warn(), msg, fields)
}

func (l *zerologLogger) Error(ctx context.Context, msg string, err error, fields Fields) {
	l.emit(l.zl.Error().Err(err), msg, fields)
}

func (l *zerologLogger) emit(ev *zerolog.Event, msg string, fields Fields) {
	for k, v := range fields {
		ev = ev.Interface(k, v)
	}
	ev.Msg(msg)
}

// WithFields returns a logger with the fields bound to every event.
func (l *zerologLogger) WithFields(fields Fields) Logger {
	c := l.zl.With()
	for k, v := range fields {
		c = c.Interface(k, v)
	}
	return &zerologLogger{zl: c.Logger(), closer: l.closer}
}

// Close closes the underlying file writer when one is open.
func (l *zerologLogger) Close() error {
	if l.closer != nil {
		return l.closer.Close()
	}
	return nil
}
