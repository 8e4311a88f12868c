// Package cli implements the autgroup command-line interface.
//
// This package provides commands for computing automorphism groups of graphs,
// drawing graphs colored by orbit, browsing generators interactively, serving
// the HTTP API, and managing the result cache. The CLI is built using cobra
// and logs through charmbracelet/log.
//
// # Commands
//
// The main commands are:
//   - compute: Compute the automorphism group of a graph descriptor or family
//   - render: Draw a graph as SVG or DOT with vertices colored by orbit
//   - explore: Browse the generators of a group in a terminal UI
//   - serve: Run the HTTP API
//   - cache: Manage the result cache
//
// # Logging
//
// All commands support --verbose (-v) for debug-level logging. Loggers are
// passed through context.Context so long searches can report progress.
//
// # Configuration
//
// Defaults come from $XDG_CONFIG_HOME/autgroup/config.toml (or --config);
// flags override the file.
package cli

import (
	"context"
	"io"

	"github.com/charmbracelet/log"
)

// newLogger writes leveled, timestamped lines ("14:32:01.45 INFO ...") to w.
func newLogger(w io.Writer, level log.Level) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		Level:           level,
		ReportTimestamp: true,
		TimeFormat:      "15:04:05.00",
	})
}

type loggerKey struct{}

// withLogger attaches l to ctx. The root command does this once so every
// subcommand logs at the --verbose level.
func withLogger(ctx context.Context, l *log.Logger) context.Context {
	return context.WithValue(ctx, loggerKey{}, l)
}

// loggerFromContext returns the logger attached by withLogger, falling back
// to log.Default() outside a command.
func loggerFromContext(ctx context.Context) *log.Logger {
	if l, ok := ctx.Value(loggerKey{}).(*log.Logger); ok {
		return l
	}
	return log.Default()
}
