//go:build unix

// Package fd corrals raw unix file descriptors.
//
// A Corral is nominally a Descriptor but stores the plain int returned by the
// kernel. Negative descriptors are rejected, and an owned descriptor is closed
// with close(2) exactly once.
package fd

import (
	"errors"
	"fmt"

	"github.com/on-the-ground/corral_go/corral"
	"github.com/on-the-ground/corral_go/log"
	"golang.org/x/sys/unix"
)

// ErrBadDescriptor is reported when a descriptor corral is accessed without
// holding an open descriptor.
var ErrBadDescriptor = errors.New("bad descriptor")

// Descriptor is the corral config for unix file descriptors.
type Descriptor struct{}

func (Descriptor) Validate(fd int) bool { return fd >= 0 }

func (Descriptor) Cleanup(fd int) {
	if err := unix.Close(fd); err != nil {
		log.Emit(corral.Logger(), log.LevelWarn, "descriptor close failed", map[string]any{
			"fd":    fd,
			"error": err.Error(),
		})
	}
}

func (Descriptor) DefaultErr() error { return ErrBadDescriptor }

// Corral owns one descriptor and reports ErrBadDescriptor on invalid access.
type Corral = corral.Default[int, Descriptor]

// Open opens path with open(2). The descriptor is opened close-on-exec.
// On failure the returned corral is invalid and the open error is returned
// alongside it.
func Open(path string, flags int, perm uint32) (*Corral, error) {
	fd, err := unix.Open(path, flags|unix.O_CLOEXEC, perm)
	if err != nil {
		return corral.New[int, Descriptor, error](-1), fmt.Errorf("open %s: %w", path, err)
	}
	return corral.New[int, Descriptor, error](fd), nil
}

// Pipe creates a pipe and corrals both ends.
func Pipe() (r, w *Corral, err error) {
	p := make([]int, 2)
	if err := unix.Pipe(p); err != nil {
		return corral.New[int, Descriptor, error](-1), corral.New[int, Descriptor, error](-1), fmt.Errorf("pipe: %w", err)
	}
	return corral.New[int, Descriptor, error](p[0]), corral.New[int, Descriptor, error](p[1]), nil
}
