package logger

import (
	"context"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type contextKey string

const requestIDKey contextKey = "request_id"

func (l *ZapLogger) WithRequestID(ctx context.Context, requestID string) context.Context {
	return context.WithValue(ctx, requestIDKey, requestID)
}

func (l *ZapLogger) GetRequestID(ctx context.Context) string {
	if requestID, ok := ctx.Value(requestIDKey).(string); ok {
		return requestID
	}
	return ""
}

// NewContextLogger returns a logger tagged with the request id found in ctx.
func (l *ZapLogger) NewContextLogger(ctx context.Context) *zap.Logger {
	requestID := l.GetRequestID(ctx)
	if requestID == "" {
		return l.logger
	}
	return l.logger.With(zap.String("request_id", requestID))
}

func (l *ZapLogger) GenerateRequestID() string {
	return uuid.New().String()
}
