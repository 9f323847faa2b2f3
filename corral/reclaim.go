package corral

import "github.com/on-the-ground/corral_go/log"

// reclaim runs when a corral became unreachable. A cell that still owns a
// valid value means the owner never reset it: log that and clean up so the
// resource does not leak.
//
// It runs on the runtime's cleanup goroutine, but only after the corral is
// gone, so nothing else is mutating the cell.
func reclaim[V any, C Config[V]](c *cell[V]) {
	if !c.live() {
		return
	}
	emit[V, C](log.LevelWarn, c, "corral reclaimed by garbage collector; missing Reset")

	var cfg C
	cfg.Cleanup(c.value)
	c.clear()
}
