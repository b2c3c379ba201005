// Package logging provides structured logging utilities on top of log/slog.
package logging

import (
	"context"
	"log/slog"
	"os"

	"blog-api/internal/handler/http/requestid"
)

// NewLogger creates a structured logger with JSON output. The log level is
// controlled via the LOG_LEVEL environment variable (default: info).
func NewLogger() *slog.Logger {
	logLevel := slog.LevelInfo
	if os.Getenv("LOG_LEVEL") == "debug" {
		logLevel = slog.LevelDebug
	}

	handler := slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: logLevel,
	})
	return slog.New(handler)
}

// WithRequestID returns a logger that includes the request ID from the
// context, enabling request tracing across log entries.
func WithRequestID(ctx context.Context, logger *slog.Logger) *slog.Logger {
	reqID := requestid.FromContext(ctx)
	if reqID == "" {
		return logger
	}
	return logger.With("request_id", reqID)
}
