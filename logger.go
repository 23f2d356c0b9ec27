package beamgo

import (
	"context"
	"log/slog"
	"os"
	"time"
)

// Logger wraps slog.Logger with beamgo-specific context.
// This provides structured logging with consistent field names.
type Logger struct {
	*slog.Logger
}

// NewLogger creates a new Logger with the given handler.
// If handler is nil, uses default text handler to stderr.
func NewLogger(handler slog.Handler) *Logger {
	if handler == nil {
		handler = slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelInfo,
		})
	}
	return &Logger{
		Logger: slog.New(handler),
	}
}

// NewJSONLogger creates a Logger that outputs JSON-formatted logs.
// level sets the minimum log level (e.g., slog.LevelDebug, slog.LevelInfo).
func NewJSONLogger(level slog.Level) *Logger {
	handler := slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	})
	return &Logger{
		Logger: slog.New(handler),
	}
}

// NewTextLogger creates a Logger that outputs human-readable text logs.
func NewTextLogger(level slog.Level) *Logger {
	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	})
	return &Logger{
		Logger: slog.New(handler),
	}
}

// NoopLogger creates a Logger that discards all log output.
// Use this to disable logging entirely.
func NoopLogger() *Logger {
	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.Level(1000), // Unreachable level
	})
	return &Logger{
		Logger: slog.New(handler),
	}
}

// LogTurn logs one compute burst of the search loop.
func (l *Logger) LogTurn(ctx context.Context, turn int, active time.Duration, frontier int) {
	l.DebugContext(ctx, "turn completed",
		"turn", turn,
		"active_ms", active.Milliseconds(),
		"frontier", frontier,
	)
}

// LogBest logs the discovery of a new best solution.
func (l *Logger) LogBest(ctx context.Context, active time.Duration) {
	l.DebugContext(ctx, "new best solution",
		"active_ms", active.Milliseconds(),
	)
}

// LogTerminate logs the end of a search.
func (l *Logger) LogTerminate(ctx context.Context, reason TerminationReason, active time.Duration, stats Stats) {
	l.InfoContext(ctx, "search terminated",
		"reason", reason.String(),
		"active_ms", active.Milliseconds(),
		"turns", stats.Turns,
		"popped", stats.Popped,
		"pruned", stats.Pruned,
		"completed", stats.Completed,
	)
}
