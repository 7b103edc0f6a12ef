package latin

import (
	"context"
	"log/slog"
	"os"
)

// Logger wraps slog.Logger with latin-specific field helpers.
//
// The core never logs on its own: every domain package defaults to
// NoopLogger and only emits records when the caller injects a real logger
// via that package's WithLogger option.
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
func NoopLogger() *Logger {
	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.Level(1000), // Unreachable level
	})
	return &Logger{
		Logger: slog.New(handler),
	}
}

// WithDomain adds a domain field to the logger. The domain packages apply
// it to loggers injected through their WithLogger options.
func (l *Logger) WithDomain(domain string) *Logger {
	return &Logger{
		Logger: l.Logger.With("domain", domain),
	}
}

// LogOp logs the outcome of a composed operation.
func (l *Logger) LogOp(ctx context.Context, op string, subject string, err *OpError) {
	if err != nil {
		l.ErrorContext(ctx, op+" failed",
			"subject", subject,
			"step", err.Step,
			"error", err.Cause,
		)
	} else {
		l.DebugContext(ctx, op+" completed",
			"subject", subject,
		)
	}
}
