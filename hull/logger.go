// SPDX-License-Identifier: MIT

package hull

import (
	"context"
	"io"
	"log/slog"
	"os"
	"time"
)

// Logger wraps slog.Logger with hull-specific fields and events.
type Logger struct {
	*slog.Logger
}

// NewLogger creates a Logger with the given handler.
// If handler is nil, uses a text handler to stderr at Info level.
func NewLogger(handler slog.Handler) *Logger {
	if handler == nil {
		handler = slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelInfo})
	}

	return &Logger{Logger: slog.New(handler)}
}

// NewJSONLogger creates a Logger that writes JSON records to stderr.
func NewJSONLogger(level slog.Level) *Logger {
	return &Logger{Logger: slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: level}))}
}

// NewTextLogger creates a Logger that writes human-readable text to stderr.
func NewTextLogger(level slog.Level) *Logger {
	return &Logger{Logger: slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))}
}

// NoopLogger creates a Logger that discards all output.
func NoopLogger() *Logger {
	return &Logger{Logger: slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{
		Level: slog.Level(1000),
	}))}
}

// WithBuildID tags every record with a build identifier.
func (l *Logger) WithBuildID(id int) *Logger {
	return &Logger{Logger: l.Logger.With("build", id)}
}

// WithDimension adds a dimension field.
func (l *Logger) WithDimension(dim int) *Logger {
	return &Logger{Logger: l.Logger.With("dimension", dim)}
}

// LogSpanning logs the outcome of the spanning-set selection.
func (l *Logger) LogSpanning(ctx context.Context, points, dim int) {
	l.DebugContext(ctx, "spanning set selected",
		"points", points,
		"dimension", dim,
	)
}

// LogInsertion logs one point insertion.
func (l *Logger) LogInsertion(ctx context.Context, point uint32, visible, created, active int) {
	l.DebugContext(ctx, "point inserted",
		"point", point,
		"visible", visible,
		"created", created,
		"active", active,
	)
}

// LogBuild logs the build summary.
func (l *Logger) LogBuild(ctx context.Context, points, facets, dim int, complete bool, elapsed time.Duration, err error) {
	if err != nil {
		l.ErrorContext(ctx, "hull build failed",
			"points", points,
			"elapsed", elapsed,
			"error", err,
		)

		return
	}
	l.InfoContext(ctx, "hull built",
		"points", points,
		"facets", facets,
		"dimension", dim,
		"complete", complete,
		"elapsed", elapsed,
	)
}
