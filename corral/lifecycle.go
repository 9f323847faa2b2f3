package corral

import (
	"sync/atomic"
	"time"

	"github.com/on-the-ground/corral_go/log"
	"go.uber.org/zap"
)

var logger atomic.Pointer[zap.Logger]

func init() {
	logger.Store(zap.NewNop())
}

// SetLogger routes corral lifecycle logs to l and returns a function that
// restores the previous logger. A nil l silences logging.
//
// Lifecycle events (corralled, moved, released, cleaned up) are logged at
// debug level. Values reclaimed by the garbage collector are logged at warn
// level, since they point at a missing Reset.
func SetLogger(l *zap.Logger) (restore func()) {
	if l == nil {
		l = zap.NewNop()
	}
	prev := logger.Swap(l)
	return func() {
		logger.Store(prev)
	}
}

// Logger returns the logger corral lifecycle events are written to.
// Config implementations use it to report cleanup failures.
func Logger() *zap.Logger {
	return logger.Load()
}

// trace logs a debug lifecycle event for the value held by c.
func trace[V any, C Config[V]](c *cell[V], msg string) {
	emit[V, C](log.LevelDebug, c, msg)
}

func emit[V any, C Config[V]](level log.Level, c *cell[V], msg string) {
	l := Logger()
	if !log.Enabled(l, level) {
		return
	}
	log.Emit(l, level, msg, map[string]any{
		"kind":    kindOf[V, C](),
		"lineage": c.lineage.String(),
		"held":    time.Since(c.since),
	})
}
