// Package logger adapts a zap core, seen through logr, to the contextual
// Logger used across colman.
package logger

import (
	"context"
	"io"

	"github.com/go-logr/logr"
	"github.com/go-logr/zapr"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

const (
	TimeStampKey = "timestamp"
	MessageKey   = "message"
)

type ctxKey struct{}

// Zapper writes json log lines with zap.
type Zapper struct {
	zap  *zap.Logger
	logr logr.Logger
}

// New creates a Zapper writing to w, at debug level when debug is set.
func New(w io.Writer, debug bool) *Zapper {

	encoderCfg := zap.NewProductionEncoderConfig()
	encoderCfg.EncodeTime = zapcore.ISO8601TimeEncoder
	encoderCfg.TimeKey = TimeStampKey
	encoderCfg.MessageKey = MessageKey

	level := zapcore.InfoLevel
	if debug {
		level = zapcore.DebugLevel
	}

	core := zapcore.NewCore(
		zapcore.NewJSONEncoder(encoderCfg),
		zapcore.Lock(zapcore.AddSync(w)),
		zap.NewAtomicLevelAt(level),
	)
	zl := zap.New(core, zap.AddStacktrace(zap.ErrorLevel))

	return &Zapper{
		zap:  zl,
		logr: zapr.NewLogger(zl),
	}
}

// WithFields returns a context carrying kv, logged with every line under it.
func (zpr *Zapper) WithFields(ctx context.Context, kv ...any) context.Context {

	fields, _ := ctx.Value(ctxKey{}).([]any)
	merged := make([]any, 0, len(fields)+len(kv))
	merged = append(merged, fields...)
	merged = append(merged, kv...)

	return context.WithValue(ctx, ctxKey{}, merged)
}

func (zpr *Zapper) Info(ctx context.Context, msg string, kv ...any) {
	zpr.from(ctx).Info(msg, kv...)
}

func (zpr *Zapper) Error(ctx context.Context, msg string, err error, kv ...any) {
	zpr.from(ctx).Error(err, msg, kv...)
}

// Debug logs at logr verbosity 1, zap's debug level.
func (zpr *Zapper) Debug(ctx context.Context, msg string, kv ...any) {
	zpr.from(ctx).V(1).Info(msg, kv...)
}

// Sync flushes buffered lines.
func (zpr *Zapper) Sync() error {
	return zpr.zap.Sync()
}

// unexported

func (zpr *Zapper) from(ctx context.Context) logr.Logger {

	if ctx == nil {
		return zpr.logr
	}
	fields, ok := ctx.Value(ctxKey{}).([]any)
	if !ok {
		return zpr.logr
	}
	return zpr.logr.WithValues(fields...)
}
