// Package zaplog implements the domain Logger on top of zap.
package zaplog

import (
	"fmt"

	"github.com/SimonMarquis/develocity-build-validation-scripts/internal/domain/interfaces"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Logger adapts a *zap.Logger to interfaces.Logger
type Logger struct {
	zl *zap.Logger
}

// New builds a production logger writing to stderr at the given level
func New(level string) (*Logger, error) {
	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		return nil, fmt.Errorf("invalid log level %q: %w", level, err)
	}

	config := zap.NewProductionConfig()
	config.Level = zap.NewAtomicLevelAt(lvl)
	config.Encoding = "console"
	config.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder

	zl, err := config.Build()
	if err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}
	return Wrap(zl), nil
}

// Wrap adapts an existing zap logger
func Wrap(zl *zap.Logger) *Logger {
	return &Logger{zl: zl}
}

// Debug logs debug-level messages
func (l *Logger) Debug(msg string, fields ...interfaces.Field) {
	l.zl.Debug(msg, toZapFields(fields)...)
}

// Info logs informational messages
func (l *Logger) Info(msg string, fields ...interfaces.Field) {
	l.zl.Info(msg, toZapFields(fields)...)
}

// Warn logs warning messages
func (l *Logger) Warn(msg string, fields ...interfaces.Field) {
	l.zl.Warn(msg, toZapFields(fields)...)
}

// Error logs error messages
func (l *Logger) Error(msg string, fields ...interfaces.Field) {
	l.zl.Error(msg, toZapFields(fields)...)
}

// With returns a logger that adds the fields to every message
func (l *Logger) With(fields ...interfaces.Field) interfaces.Logger {
	return &Logger{zl: l.zl.With(toZapFields(fields)...)}
}

// Sync flushes buffered entries
func (l *Logger) Sync() error {
	return l.zl.Sync()
}

func toZapFields(fields []interfaces.Field) []zap.Field {
	if len(fields) == 0 {
		return nil
	}
	out := make([]zap.Field, 0, len(fields))
	for _, f := range fields {
		if err, ok := f.Value.(error); ok {
			out = append(out, zap.NamedError(f.Key, err))
			continue
		}
		out = append(out, zap.Any(f.Key, f.Value))
	}
	return out
}
