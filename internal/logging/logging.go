// Package logging builds the zerolog logger used for diagnostic output.
//
// Diagnostics go to stderr so they never mix with an SVG written to stdout.
// The logger travels in the command context; library code retrieves it with
// zerolog.Ctx and gets a disabled logger when none was attached.
package logging

import (
	"context"
	"io"
	"time"

	"github.com/rs/zerolog"
)

// New returns a logger writing to w. verbose enables debug events;
// otherwise only warnings and errors are emitted. console selects the
// human-readable console format, otherwise events are JSON lines.
func New(w io.Writer, verbose, console bool) zerolog.Logger {
	level := zerolog.WarnLevel
	if verbose {
		level = zerolog.DebugLevel
	}

	out := w
	if console {
		out = zerolog.ConsoleWriter{Out: w, TimeFormat: time.TimeOnly}
	}
	return zerolog.New(out).Level(level).With().Timestamp().Logger()
}

// WithContext attaches logger to ctx.
func WithContext(ctx context.Context, logger zerolog.Logger) context.Context {
	return logger.WithContext(ctx)
}

// From returns the logger attached to ctx.
func From(ctx context.Context) *zerolog.Logger {
	return zerolog.Ctx(ctx)
}
