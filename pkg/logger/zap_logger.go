package logger

import (
	"errors"
	"fmt"
	"os"

	"github.com/Sibghat34/shippo-api/internal/config"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
)

type ZapLogger struct {
	logger *zap.Logger
}

func NewZapLogger(cfg *config.Config) (*ZapLogger, error) {
	if err := validateRotation(&cfg.Logger); err != nil {
		return nil, fmt.Errorf("logger.NewZapLogger: validation: %w", err)
	}

	encoderConfig := zapcore.EncoderConfig{
		TimeKey:       "ts",
		LevelKey:      "level",
		NameKey:       "logger",
		CallerKey:     "caller",
		FunctionKey:   zapcore.OmitKey,
		MessageKey:    "msg",
		StacktraceKey: "stacktrace",
		LineEnding:    zapcore.DefaultLineEnding,
		EncodeLevel:   zapcore.LowercaseLevelEncoder,
		EncodeTime:    zapcore.ISO8601TimeEncoder,
		EncodeCaller:  zapcore.ShortCallerEncoder,
	}

	syncers := []zapcore.WriteSyncer{zapcore.AddSync(os.Stdout)}
	if cfg.Logger.Filename != "" {
		syncers = append(syncers, zapcore.AddSync(&lumberjack.Logger{
			Filename:   cfg.Logger.Filename,
			MaxSize:    cfg.Logger.MaxSize,
			MaxBackups: cfg.Logger.MaxBackups,
			MaxAge:     cfg.Logger.MaxAge,
			Compress:   true,
		}))
	}

	minLevel := toZapLevel(ParseLevel(cfg.Logger.Level))
	core := zapcore.NewCore(
		zapcore.NewJSONEncoder(encoderConfig),
		zapcore.NewMultiWriteSyncer(syncers...),
		zap.LevelEnablerFunc(func(lvl zapcore.Level) bool {
			return lvl >= minLevel
		}),
	)

	return &ZapLogger{
		logger: zap.New(core,
			zap.Fields(
				zap.String("service", cfg.App.Name),
				zap.String("version", cfg.App.Version),
				zap.String("env", cfg.Env),
			),
			zap.AddCaller(),
			zap.AddStacktrace(zap.ErrorLevel),
		),
	}, nil
}

func (l *ZapLogger) Zap() *zap.Logger {
	return l.logger
}

func validateRotation(cfg *config.Logger) error {
	if cfg.Filename == "" {
		return nil
	}
	if cfg.MaxSize <= 0 {
		return errors.New("invalid maxSize: must be > 0")
	}
	if cfg.MaxBackups < 0 {
		return errors.New("invalid maxBackups: must be >= 0")
	}
	if cfg.MaxAge <= 0 {
		return errors.New("invalid maxAge: must be > 0")
	}
	return nil
}
