package corral

// Config decides whether a candidate value is usable and how an owned value
// is released. Implementations are zero-size types: a corral never stores its
// config, it only calls methods on the config type's zero value.
//
// The config type doubles as the corral's nominal type. Corral[int,
// fd.Descriptor, error] is a descriptor handle that stores and validates a
// plain int.
type Config[V any] interface {
	Validate(V) bool
	Cleanup(V)
}

// Defaulter is optionally implemented by a Config to name the error reported
// by corrals instantiated with the plain error selector.
type Defaulter interface {
	DefaultErr() error
}

// Simple accepts every value and has nothing to clean up.
type Simple[V any] struct{}

func (Simple[V]) Validate(V) bool { return true }
func (Simple[V]) Cleanup(V)       {}

// Default is a corral whose access errors come from the config's Defaulter,
// or ErrBadCorral when the config names none.
type Default[V any, C Config[V]] = Corral[V, C, error]
