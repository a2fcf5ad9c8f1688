package core

import (
	"context"
	"os"
	"sync"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	lumberjack "gopkg.in/natefinch/lumberjack.v2"
)

type loggerKey struct{}

var (
	baseLogger *zap.SugaredLogger
	loggerOnce sync.Once
)

// Logger returns the process-wide sugared logger, building it on first use
// from the current Config.
func Logger() *zap.SugaredLogger {
	loggerOnce.Do(func() { baseLogger = buildLogger() })
	return baseLogger
}

func buildLogger() *zap.SugaredLogger {
	level := zapcore.InfoLevel
	if Config.LogLevel != "" {
		if err := level.Set(Config.LogLevel); err != nil {
			level = zapcore.InfoLevel
		}
	}

	encCfg := zap.NewProductionEncoderConfig()
	encCfg.EncodeTime = zapcore.ISO8601TimeEncoder

	sink := zapcore.AddSync(os.Stderr)
	if Config.LogFile != "" {
		sink = zapcore.AddSync(&lumberjack.Logger{
			Filename:   Config.LogFile,
			MaxSize:    Config.LogMaxSizeMB,
			MaxBackups: Config.LogMaxBackups,
			MaxAge:     Config.LogMaxAgeDays,
		})
	}

	zc := zapcore.NewCore(zapcore.NewConsoleEncoder(encCfg), sink, level)
	return zap.New(zc).Sugar()
}

// WithDefaultLogger attaches a request-scoped logger to the context.
func WithDefaultLogger(parent context.Context, reqID string) context.Context {
	return context.WithValue(parent, loggerKey{}, Logger().With("req", reqID))
}

func fromContext(ctx context.Context) *zap.SugaredLogger {
	if ctx != nil {
		if l, ok := ctx.Value(loggerKey{}).(*zap.SugaredLogger); ok {
			return l
		}
	}
	return Logger()
}

func Debugf(ctx context.Context, tpl string, args ...any) {
	fromContext(ctx).Debugf(tpl, args...)
}

func Infof(ctx context.Context, tpl string, args ...any) {
	fromContext(ctx).Infof(tpl, args...)
}

func Errorf(ctx context.Context, tpl string, args ...any) {
	fromContext(ctx).Errorf(tpl, args...)
}
