package logger

import (
	"context"
	"fmt"

	"github.com/Sibghat34/shippo-api/internal/config"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

const (
	_argPairs = 2
)

var _ Logger = (*Adapter)(nil)

type Adapter struct {
	zapLogger *ZapLogger
}

func NewAdapter(cfg *config.Config) (*Adapter, error) {
	logger, err := NewZapLogger(cfg)
	if err != nil {
		return nil, fmt.Errorf("logger.adapter.NewAdapter: %w", err)
	}
	return &Adapter{
		zapLogger: logger,
	}, nil
}

// NewNop returns a logger that discards everything.
func NewNop() *Adapter {
	return &Adapter{zapLogger: &ZapLogger{logger: zap.NewNop()}}
}

func (a *Adapter) Debugw(msg string, keysAndValues ...any) {
	a.zapLogger.Zap().Sugar().Debugw(msg, keysAndValues...)
}

func (a *Adapter) Infow(msg string, keysAndValues ...any) {
	a.zapLogger.Zap().Sugar().Infow(msg, keysAndValues...)
}

func (a *Adapter) Warnw(msg string, keysAndValues ...any) {
	a.zapLogger.Zap().Sugar().Warnw(msg, keysAndValues...)
}

func (a *Adapter) Errorw(msg string, keysAndValues ...any) {
	a.zapLogger.Zap().Sugar().Errorw(msg, keysAndValues...)
}

func (a *Adapter) Ctx(ctx context.Context) Logger {
	return &Adapter{
		zapLogger: &ZapLogger{
			logger: a.zapLogger.NewContextLogger(ctx),
		},
	}
}

func (a *Adapter) With(args ...any) Logger {
	return &Adapter{
		zapLogger: &ZapLogger{logger: a.zapLogger.Zap().With(toZapFields(args)...)},
	}
}

func (a *Adapter) LogAttrs(ctx context.Context, level Level, msg string, attrs ...Attr) {
	logger := a.zapLogger.NewContextLogger(ctx)
	zapLevel := toZapLevel(level)

	if !logger.Core().Enabled(zapLevel) {
		return
	}

	logger.Log(zapLevel, msg, toZapFieldsFromAttrs(attrs)...)
}

func (a *Adapter) GenerateRequestID() string {
	return a.zapLogger.GenerateRequestID()
}

func (a *Adapter) GetRequestID(ctx context.Context) string {
	return a.zapLogger.GetRequestID(ctx)
}

func (a *Adapter) WithRequestID(ctx context.Context, requestID string) context.Context {
	return a.zapLogger.WithRequestID(ctx, requestID)
}

func (a *Adapter) Sync() error {
	return a.zapLogger.Zap().Sync()
}

func toZapLevel(level Level) zapcore.Level {
	switch level {
	case DebugLevel:
		return zapcore.DebugLevel
	case InfoLevel:
		return zapcore.InfoLevel
	case WarnLevel:
		return zapcore.WarnLevel
	case ErrorLevel:
		return zapcore.ErrorLevel
	default:
		return zapcore.InfoLevel
	}
}

func toZapFields(args []any) []zap.Field {
	if len(args)%2 != 0 {
		args = append(args, "<missing>")
	}
	fields := make([]zap.Field, 0, len(args)/_argPairs)
	for i := 0; i < len(args); i += 2 {
		key, ok := args[i].(string)
		if !ok {
			key = "UNKNOWN"
		}
		fields = append(fields, zap.Any(key, args[i+1]))
	}
	return fields
}

func toZapFieldsFromAttrs(attrs []Attr) []zap.Field {
	fields := make([]zap.Field, 0, len(attrs))
	for _, a := range attrs {
		fields = append(fields, zap.Any(a.Key, a.Value))
	}
	return fields
}
