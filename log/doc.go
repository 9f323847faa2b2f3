// Package log holds the zap plumbing shared by corral_go packages.
//
// Messages are written through Emit with a Level and a loosely typed field
// map, the same shape every package in this module logs with:
//
//	logger, _ := log.NewZapLogger(log.LevelInfo)
//	defer log.Sync(logger)
//
//	log.Emit(logger, log.LevelWarn, "descriptor close failed", map[string]any{
//	    "fd": 3,
//	})
//
// Tests use NewTestLogger for readable console output or NewObservedLogger
// to assert on what was logged.
package log
