package corral

import (
	"fmt"
	"runtime"
	"time"

	"github.com/google/uuid"
	"github.com/rickb777/date/v2/timespan"
)

// Corral owns a value of type V on behalf of config C and reports E when an
// invalid corral is accessed.
//
// The zero value is an empty corral. A corral must not be copied after first
// use; move ownership with Take or Move instead.
//
// IMPORTANT: a corral is not safe for concurrent use. It models a single
// owner; share it across goroutines only under your own synchronization.
type Corral[V any, C Config[V], E error] struct {
	noCopy noCopy
	cell   *cell[V]
}

// cell holds the ownership state. It lives apart from the Corral so the GC
// reclaim hook can reach it without keeping the Corral itself alive.
type cell[V any] struct {
	value   V
	valid   bool
	owned   bool
	lineage uuid.UUID
	since   time.Time
}

func (c *cell[V]) live() bool {
	return c != nil && c.owned && c.valid
}

// clear forgets the payload without running cleanup.
func (c *cell[V]) clear() {
	var zero V
	c.value = zero
	c.valid = false
	c.owned = false
	c.lineage = uuid.Nil
	c.since = time.Time{}
}

// Empty returns a corral that holds nothing. Accessing it fails.
func Empty[V any, C Config[V], E error]() *Corral[V, C, E] {
	return &Corral[V, C, E]{}
}

// New corrals v if the config accepts it. A rejected value does not fail
// here; the corral is merely invalid and fails on first access.
func New[V any, C Config[V], E error](v V) *Corral[V, C, E] {
	var cfg C
	return NewWith[V, C, E](v, cfg.Validate)
}

// NewWith is New with a per-call validator in place of the config's.
// Cleanup and errors still come from the config. A nil validate falls back to
// the config's validator.
func NewWith[V any, C Config[V], E error](v V, validate func(V) bool) *Corral[V, C, E] {
	if validate == nil {
		var cfg C
		validate = cfg.Validate
	}

	c := &Corral[V, C, E]{}
	if validate(v) {
		c.install(v, uuid.New(), time.Now())
		trace[V, C](c.cell, "value corralled")
	}
	return c
}

// IsValid reports whether the corral currently owns a value that passed
// validation.
func (c *Corral[V, C, E]) IsValid() bool {
	return c != nil && c.cell.live()
}

// Check returns the configured access error if the corral is not valid.
func (c *Corral[V, C, E]) Check() error {
	if !c.IsValid() {
		return fault[V, C, E]()
	}
	return nil
}

// Get returns the owned value, or the configured access error.
func (c *Corral[V, C, E]) Get() (V, error) {
	if !c.IsValid() {
		var zero V
		return zero, fault[V, C, E]()
	}
	return c.cell.value, nil
}

// Ref returns a pointer to the owned value for in-place mutation, or the
// configured access error.
//
// The pointer is only meaningful while the corral owns the value. Keep the
// corral reachable while using it: an unreachable corral may be reclaimed.
func (c *Corral[V, C, E]) Ref() (*V, error) {
	if !c.IsValid() {
		return nil, fault[V, C, E]()
	}
	return &c.cell.value, nil
}

// Lineage identifies the ownership chain of the held value. It is assigned
// when a value is first corralled and follows it through Take and Move.
// It is uuid.Nil for an invalid corral.
func (c *Corral[V, C, E]) Lineage() uuid.UUID {
	if !c.IsValid() {
		return uuid.Nil
	}
	return c.cell.lineage
}

// Tenure is the span from when the value was first corralled until now.
// It is the zero span for an invalid corral.
func (c *Corral[V, C, E]) Tenure() timespan.TimeSpan {
	if !c.IsValid() {
		var zero timespan.TimeSpan
		return zero
	}
	return timespan.BetweenTimes(c.cell.since, time.Now())
}

// Release hands the value back to the caller, who becomes responsible for
// it. The cleanup hook is not run. Releasing an invalid corral returns a
// *ReleaseError[E].
func (c *Corral[V, C, E]) Release() (V, error) {
	if !c.IsValid() {
		var zero V
		return zero, &ReleaseError[E]{Kind: kindOf[V, C]()}
	}

	trace[V, C](c.cell, "value released")

	v := c.cell.value
	var zero V
	c.cell.value = zero
	c.cell.owned = false
	return v, nil
}

// Reset runs the cleanup hook if the corral owns a valid value, then leaves
// the corral empty. It is safe to call any number of times.
func (c *Corral[V, C, E]) Reset() {
	if c == nil || c.cell == nil {
		return
	}
	if c.cell.live() {
		trace[V, C](c.cell, "value cleaned up")
		var cfg C
		cfg.Cleanup(c.cell.value)
	}
	c.cell.clear()
}

// Close resets the corral. It always returns nil and exists so a corral can
// be deferred or passed where an io.Closer is expected.
func (c *Corral[V, C, E]) Close() error {
	c.Reset()
	return nil
}

// Take disposes of whatever c holds and then takes ownership of src's value.
// See the package-level Take for the rules.
func (c *Corral[V, C, E]) Take(src *Corral[V, C, E]) {
	Take(c, src)
}

func (c *Corral[V, C, E]) String() string {
	if !c.IsValid() {
		return fmt.Sprintf("corral[%s]{invalid}", kindOf[V, C]())
	}
	return fmt.Sprintf("corral[%s]{lineage=%s}", kindOf[V, C](), c.cell.lineage)
}

// install stores an owned, valid value. The reclaim hook is attached the
// first time the corral gets a cell.
func (c *Corral[V, C, E]) install(v V, lineage uuid.UUID, since time.Time) {
	if c.cell == nil {
		c.cell = &cell[V]{}
		runtime.AddCleanup(c, reclaim[V, C], c.cell)
	}
	c.cell.value = v
	c.cell.valid = true
	c.cell.owned = true
	c.cell.lineage = lineage
	c.cell.since = since
}

func kindOf[V any, C Config[V]]() string {
	var cfg C
	return fmt.Sprintf("%T", cfg)
}
