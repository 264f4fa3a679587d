package logger

import (
	"context"
	"strings"
	"sync/atomic"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

type ctxKey struct{}

const requestIDField = "request_id"

var global atomic.Pointer[zap.SugaredLogger]

func init() {
	global.Store(zap.NewNop().Sugar())
}

// Init builds the process logger. format is "json" or "console".
func Init(level, format string) error {
	cfg := zap.NewProductionConfig()
	if strings.EqualFold(format, "console") {
		cfg = zap.NewDevelopmentConfig()
	}
	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		lvl = zapcore.InfoLevel
	}
	cfg.Level = zap.NewAtomicLevelAt(lvl)
	cfg.DisableStacktrace = true

	l, err := cfg.Build(zap.AddCallerSkip(1))
	if err != nil {
		return err
	}
	global.Store(l.Sugar())
	return nil
}

// Set replaces the process logger; tests use it with zaptest or observer cores.
func Set(l *zap.Logger) {
	global.Store(l.WithOptions(zap.AddCallerSkip(1)).Sugar())
}

func Sync() {
	_ = global.Load().Sync()
}

// WithRequestID stores the request id so every log line of the request carries it.
func WithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, ctxKey{}, id)
}

func RequestIDFromContext(ctx context.Context) string {
	if ctx == nil {
		return ""
	}
	id, _ := ctx.Value(ctxKey{}).(string)
	return id
}

func from(ctx context.Context) *zap.SugaredLogger {
	l := global.Load()
	if id := RequestIDFromContext(ctx); id != "" {
		return l.With(requestIDField, id)
	}
	return l
}

func Debugf(ctx context.Context, format string, args ...any) {
	from(ctx).Debugf(format, args...)
}

func Infof(ctx context.Context, format string, args ...any) {
	from(ctx).Infof(format, args...)
}

func Warnf(ctx context.Context, format string, args ...any) {
	from(ctx).Warnf(format, args...)
}

func Errorf(ctx context.Context, format string, args ...any) {
	from(ctx).Errorf(format, args...)
}

func Error(ctx context.Context, args ...any) {
	from(ctx).Error(args...)
}

func Fatal(ctx context.Context, args ...any) {
	from(ctx).Fatal(args...)
}

func Fatalf(ctx context.Context, format string, args ...any) {
	from(ctx).Fatalf(format, args...)
}
