// Package cli implements the lapjv command-line interface.
//
// The CLI is a thin front end over score.Match: it reads one label per
// line from two files, pairs the labels at maximal total suitability,
// and prints the pairs. Scoring knobs come from an optional TOML
// config file. Logging uses charmbracelet/log at info level, or debug
// with --verbose (-v); loggers travel through context.Context.
//
// Example:
//
//	lapjv match people.txt addresses.txt --config scoring.toml
package cli

import (
	"context"
	"io"

	"github.com/charmbracelet/log"
)

// newLogger creates a logger writing to w with "HH:MM:SS.ms"
// timestamps, filtering below level.
func newLogger(w io.Writer, level log.Level) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      "15:04:05.00",
		Level:           level,
	})
}

// ctxKey is the type for context keys used in this package. A distinct
// type prevents collisions with other packages.
type ctxKey int

// loggerKey is the context key for storing a logger.
const loggerKey ctxKey = 0

// withLogger returns a new context with the given logger attached.
func withLogger(ctx context.Context, l *log.Logger) context.Context {
	return context.WithValue(ctx, loggerKey, l)
}

// loggerFromContext retrieves the logger from ctx, falling back to
// log.Default() so commands always have a valid logger.
func loggerFromContext(ctx context.Context) *log.Logger {
	if l, ok := ctx.Value(loggerKey).(*log.Logger); ok {
		return l
	}

	return log.Default()
}
