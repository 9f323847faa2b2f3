// Package corral binds a value to an explicit validity state and an
// ownership state, so an invalid or unowned value can never be used by
// accident.
//
// A corral is typically wrapped around a resource handle: a file descriptor,
// an open file, a transaction. Every access goes through a validity check
// that fails with an error the caller picks, and the resource is released
// exactly once by a cleanup hook.
//
// # Configs
//
// What "valid" means and how a value is released is decided by a Config,
// a zero-size type supplied as a type parameter:
//
//	type Descriptor struct{}
//
//	func (Descriptor) Validate(fd int) bool { return fd >= 0 }
//	func (Descriptor) Cleanup(fd int)       { unix.Close(fd) }
//
// The config type is also the corral's nominal type. Corral[int, Descriptor,
// error] is a descriptor handle even though it stores a plain int.
//
// # Error selectors
//
// The third type parameter picks the error reported when an invalid corral
// is accessed. Two call sites holding the same kind of resource can report
// different failures:
//
//	type errInputMissing struct{}
//	type errOutputMissing struct{}
//
//	in := corral.New[int, Descriptor, errInputMissing](fdIn)
//	out := corral.New[int, Descriptor, errOutputMissing](fdOut)
//
// The selector's zero value is the error to report; a pointer selector is
// reported as a pointer to a zero value. Every access error also matches
// ErrBadCorral. Instantiating with the plain error interface (see Default)
// reports the config's DefaultErr.
//
// # Lifecycle
//
//	New / NewWith  validate a candidate; a rejected value makes an invalid corral, not an error
//	Check / Get    fail with the selected error unless the corral owns a valid value
//	Release        hand the raw value back to the caller; no cleanup
//	Reset / Close  clean up once if owned and valid, then empty the corral
//	Take / Move    transfer ownership, always emptying the source
//
// Go has no destructors, so scope exit is spelled with defer:
//
//	c := corral.New[int, Descriptor, error](fd)
//	defer c.Close()
//
// As a last resort, a corral that becomes unreachable while it still owns a
// valid value is cleaned up by the garbage collector and a warning is logged
// through the logger installed with SetLogger.
//
// Corrals are single-owner values and are not safe for concurrent use.
package corral
