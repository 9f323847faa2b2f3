package corral

// Take moves ownership from src into dst. The corrals may carry different
// error selectors but must share the value type and config.
//
// dst is reset first, so its own value is cleaned up before src's value is
// installed. If src is not valid, dst ends up empty; Take itself never
// fails, a later Check or Get on dst reports the problem. src is left
// without ownership either way. Taking from dst itself is a no-op, and so
// is taking into a nil dst, which leaves src untouched.
func Take[V any, C Config[V], E, F error](dst *Corral[V, C, E], src *Corral[V, C, F]) {
	if dst == nil {
		return
	}
	if dst.cell != nil && src != nil && dst.cell == src.cell {
		return
	}

	dst.Reset()
	if !src.IsValid() {
		return
	}

	lineage, since := src.cell.lineage, src.cell.since
	v, _ := src.Release()
	dst.install(v, lineage, since)
	trace[V, C](dst.cell, "value taken")
}

// Move builds a new corral with selector E from src, which is left empty
// whatever its prior state. The value is carried over only if src was valid.
// No cleanup runs.
//
// A factory returning *Corral already hands ownership to its caller; Move is
// for callers that want a different error selector at the receiving site:
//
//	c, err := file.Open("app.yaml")
//	cfg := corral.Move[errConfigMissing](c)
func Move[E error, V any, C Config[V], F error](src *Corral[V, C, F]) *Corral[V, C, E] {
	dst := &Corral[V, C, E]{}
	if src == nil || src.cell == nil {
		return dst
	}

	if src.cell.live() {
		dst.install(src.cell.value, src.cell.lineage, src.cell.since)
		trace[V, C](dst.cell, "value moved")
	}
	src.cell.clear()
	return dst
}

// Using runs fn with the value held by c and resets c when fn returns,
// whether or not fn fails. If c is not valid, fn is not called and the
// access error is returned.
func Using[V any, C Config[V], E error](c *Corral[V, C, E], fn func(V) error) error {
	defer c.Reset()

	v, err := c.Get()
	if err != nil {
		return err
	}
	return fn(v)
}
