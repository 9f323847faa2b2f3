package log

import (
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

// NewTestLogger returns a debug-level console logger on stdout.
func NewTestLogger() *zap.Logger {
	consoleCore := zapcore.NewCore(
		zapcore.NewConsoleEncoder(zap.NewDevelopmentEncoderConfig()),
		zapcore.Lock(os.Stdout),
		zap.DebugLevel,
	)
	return zap.New(consoleCore)
}

// NewObservedLogger returns a logger that records entries at level and above
// in memory, together with the recorded logs for assertions.
func NewObservedLogger(level Level) (*zap.Logger, *observer.ObservedLogs) {
	core, logs := observer.New(level.ZapLevel())
	return zap.New(core), logs
}
