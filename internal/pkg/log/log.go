package log

import (
	"context"

	"github.com/uptrace/opentelemetry-go-extra/otelzap"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Logger is the context-aware logger handed to repositories and usecases.
type Logger interface {
	Debug(ctx context.Context, msg string, fields ...zap.Field)
	Info(ctx context.Context, msg string, fields ...zap.Field)
	Warn(ctx context.Context, msg string, fields ...zap.Field)
	Error(ctx context.Context, msg string, fields ...zap.Field)
}

type logger struct {
	zap *otelzap.Logger
}

var global *logger

func SetupLogger(level string) *zap.Logger {
	lvl := zapcore.InfoLevel
	if level != "" {
		if err := lvl.UnmarshalText([]byte(level)); err != nil {
			lvl = zapcore.InfoLevel
		}
	}

	encoderCfg := zap.NewProductionEncoderConfig()
	encoderCfg.TimeKey = "timestamp"
	encoderCfg.EncodeTime = zapcore.ISO8601TimeEncoder

	cfg := zap.Config{
		Level:             zap.NewAtomicLevelAt(lvl),
		Development:       false,
		DisableCaller:     false,
		DisableStacktrace: false,
		Encoding:          "json",
		EncoderConfig:     encoderCfg,
		OutputPaths:       []string{"stdout"},
		ErrorOutputPaths:  []string{"stderr"},
		InitialFields: map[string]interface{}{
			"service": "hotel-booking-service",
		},
	}

	l, err := cfg.Build(zap.AddCallerSkip(1))
	if err != nil {
		return zap.NewNop()
	}
	return l
}

// Init installs l as the process-wide logger.
func Init(l *zap.Logger) {
	otelLogger := otelzap.New(l, otelzap.WithMinLevel(zap.InfoLevel))
	otelzap.ReplaceGlobals(otelLogger)
	global = &logger{zap: otelLogger}
}

func GetLogger() Logger {
	if global == nil {
		Init(zap.NewNop())
	}
	return global
}

// GetOtelLogger returns the handler-facing logger.
func GetOtelLogger() *otelzap.Logger {
	if global == nil {
		Init(zap.NewNop())
	}
	return global.zap
}

// Setup returns a silent logger for tests.
func Setup() *otelzap.Logger {
	return otelzap.New(zap.NewNop())
}

func (l *logger) Debug(ctx context.Context, msg string, fields ...zap.Field) {
	l.zap.Ctx(ctx).Debug(msg, fields...)
}

func (l *logger) Info(ctx context.Context, msg string, fields ...zap.Field) {
	l.zap.Ctx(ctx).Info(msg, fields...)
}

func (l *logger) Warn(ctx context.Context, msg string, fields ...zap.Field) {
	l.zap.Ctx(ctx).Warn(msg, fields...)
}

func (l *logger) Error(ctx context.Context, msg string, fields ...zap.Field) {
	l.zap.Ctx(ctx).Error(msg, fields...)
}
