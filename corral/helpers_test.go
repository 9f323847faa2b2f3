package corral_test

import (
	"testing"

	"github.com/on-the-ground/corral_go/corral"
	"github.com/on-the-ground/corral_go/log"
	"go.uber.org/zap/zaptest/observer"
)

// cleanups records every value passed to counting.Cleanup.
var cleanups []int

// counting accepts non-negative ints and records cleanups.
type counting struct{}

func (counting) Validate(v int) bool { return v >= 0 }
func (counting) Cleanup(v int)       { cleanups = append(cleanups, v) }

func (counting) DefaultErr() error { return errBadCounting{} }

type errBadCounting struct{}

func (errBadCounting) Error() string { return "bad counting corral" }

// errAlternate is a call-site selector unrelated to the config default.
type errAlternate struct{}

func (errAlternate) Error() string { return "alternate failure" }

type counted = corral.Default[int, counting]

func resetCleanups(t *testing.T) {
	t.Helper()
	cleanups = nil
	t.Cleanup(func() { cleanups = nil })
}

func withObservedLogger(t *testing.T) *observer.ObservedLogs {
	t.Helper()
	logger, logs := log.NewObservedLogger(log.LevelDebug)
	restore := corral.SetLogger(logger)
	t.Cleanup(restore)
	return logs
}
