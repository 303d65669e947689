package logger

import (
	"context"
	"log/slog"
)

type ContextKey string

const (
	RequestIDKey ContextKey = "request_id"
	OperationKey ContextKey = "operation"
)

type ContextLogger struct {
	logger *slog.Logger
}

func NewContextLogger(logger *slog.Logger) *ContextLogger {
	return &ContextLogger{logger: logger}
}

// WithContext adds context values to log entries
func (cl *ContextLogger) WithContext(ctx context.Context) *slog.Logger {
	args := make([]any, 0)

	if requestID, ok := ctx.Value(RequestIDKey).(string); ok {
		args = append(args, "request_id", requestID)
	}

	if operation, ok := ctx.Value(OperationKey).(string); ok {
		args = append(args, "operation", operation)
	}

	if len(args) == 0 {
		return cl.logger
	}

	return cl.logger.With(args...)
}
