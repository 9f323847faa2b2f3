package log

import (
	"fmt"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Level defines the severity level for log messages.
type Level string

const (
	// LevelInfo is used for general informational messages.
	LevelInfo Level = "info"

	// LevelWarn is used for potentially harmful situations.
	LevelWarn Level = "warn"

	// LevelError is used for error events that might still allow the application to continue running.
	LevelError Level = "error"

	// LevelDebug is used for debugging messages with detailed internal information.
	LevelDebug Level = "debug"
)

// ZapLevel maps a Level onto the zapcore level it is emitted at.
// Unknown levels map to info.
func (l Level) ZapLevel() zapcore.Level {
	switch l {
	case LevelDebug:
		return zapcore.DebugLevel
	case LevelWarn:
		return zapcore.WarnLevel
	case LevelError:
		return zapcore.ErrorLevel
	default:
		return zapcore.InfoLevel
	}
}

// Enabled reports whether logger would write an entry at level.
// Callers use it to skip building fields nobody will see.
func Enabled(logger *zap.Logger, level Level) bool {
	return logger != nil && logger.Core().Enabled(level.ZapLevel())
}

// Emit writes msg with the given structured fields at level.
// A nil logger drops the entry.
func Emit(logger *zap.Logger, level Level, msg string, fields map[string]any) {
	if logger == nil {
		return
	}

	zfields := Fields(fields)

	switch level {
	case LevelInfo:
		logger.Info(msg, zfields...)
	case LevelWarn:
		logger.Warn(msg, zfields...)
	case LevelError:
		logger.Error(msg, zfields...)
	case LevelDebug:
		logger.Debug(msg, zfields...)
	default:
		logger.Info(msg, zfields...)
	}
}

// Fields converts a loosely typed field map into zap fields.
func Fields(fields map[string]any) []zap.Field {
	zfields := make([]zap.Field, 0, len(fields))
	for k, v := range fields {
		zfields = append(zfields, zap.Any(k, v))
	}
	return zfields
}

// NewZapLogger builds a production logger writing JSON at level and above.
func NewZapLogger(level Level) (*zap.Logger, error) {
	cfg := zap.NewProductionConfig()
	cfg.Level = zap.NewAtomicLevelAt(level.ZapLevel())
	logger, err := cfg.Build()
	if err != nil {
		return nil, fmt.Errorf("failed to build zap logger: %w", err)
	}
	return logger, nil
}

// Sync flushes logger, reporting a failed flush through the logger itself.
func Sync(logger *zap.Logger) {
	if logger == nil {
		return
	}
	if err := logger.Sync(); err != nil {
		logger.Warn("failed to sync logger", zap.Error(err))
	}
}
