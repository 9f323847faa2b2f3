package corral

import (
	"errors"
	"fmt"
	"reflect"
)

// ErrBadCorral is matched by every error returned from accessing a corral
// that does not hold a valid, owned value.
var ErrBadCorral = errors.New("bad corral")

// ErrBadRelease is matched by every error returned from releasing a corral
// that does not hold a valid, owned value.
var ErrBadRelease = errors.New("bad corral release")

// ReleaseError is returned by Release on an invalid corral. It carries the
// corral's error selector in its type so callers can tell releases of
// different resources apart, but it does not unwrap to the access error.
type ReleaseError[E error] struct {
	Kind string
}

func (e *ReleaseError[E]) Error() string {
	sel, ok := selector[E]()
	if !ok {
		return fmt.Sprintf("%v: %s", ErrBadRelease, e.Kind)
	}
	return fmt.Sprintf("%v: %s (%v)", ErrBadRelease, e.Kind, sel)
}

func (e *ReleaseError[E]) Is(target error) bool {
	return target == ErrBadRelease
}

// fault builds the access error for selector E over config C.
//
// A concrete selector is reported as its zero value, or as a pointer to a
// fresh zero value for pointer selectors. The plain error selector
// falls back to the config's Defaulter. Both are joined with ErrBadCorral
// unless they already match it.
func fault[V any, C Config[V], E error]() error {
	if sel, ok := selector[E](); ok {
		return withBadCorral(sel)
	}

	var cfg C
	if d, ok := any(cfg).(Defaulter); ok {
		if err := d.DefaultErr(); err != nil {
			return withBadCorral(err)
		}
	}
	return ErrBadCorral
}

func withBadCorral(err error) error {
	if errors.Is(err, ErrBadCorral) {
		return err
	}
	return fmt.Errorf("%w: %w", err, ErrBadCorral)
}

// selector returns the error value for E, or false if E is an interface.
// A nil pointer selector is replaced by a pointer to a zero value so its
// methods can be called.
func selector[E error]() (E, bool) {
	var sel E
	if any(sel) == nil {
		return sel, false
	}
	if v := reflect.ValueOf(sel); v.Kind() == reflect.Pointer && v.IsNil() {
		sel = reflect.New(v.Type().Elem()).Interface().(E)
	}
	return sel, true
}
