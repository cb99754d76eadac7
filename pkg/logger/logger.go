package logger

import (
	"context"
	"time"
)

type Level int

const (
	DebugLevel Level = iota - 4
	InfoLevel
	WarnLevel
	ErrorLevel
)

type (
	Attr struct {
		Key   string
		Value any
	}

	Logger interface {
		Debugw(msg string, keysAndValues ...any)
		Infow(msg string, keysAndValues ...any)
		Warnw(msg string, keysAndValues ...any)
		Errorw(msg string, keysAndValues ...any)

		Ctx(ctx context.Context) Logger
		With(args ...any) Logger
		WithRequestID(ctx context.Context, requestID string) context.Context

		GenerateRequestID() string
		GetRequestID(ctx context.Context) string

		LogAttrs(ctx context.Context, level Level, msg string, attrs ...Attr)
	}
)

func ParseLevel(s string) Level {
	switch s {
	case "debug":
		return DebugLevel
	case "warn":
		return WarnLevel
	case "error":
		return ErrorLevel
	default:
		return InfoLevel
	}
}

func (l Level) String() string {
	switch l {
	case DebugLevel:
		return "DEBUG"
	case InfoLevel:
		return "INFO"
	case WarnLevel:
		return "WARN"
	case ErrorLevel:
		return "ERROR"
	default:
		return "UNKNOWN"
	}
}

func String(key string, value string) Attr {
	return Attr{Key: key, Value: value}
}

func Int(key string, value int) Attr {
	return Attr{Key: key, Value: value}
}

func Duration(key string, value time.Duration) Attr {
	return Attr{Key: key, Value: value.String()}
}

func Any(key string, value any) Attr {
	return Attr{Key: key, Value: value}
}
