// Package file corrals *os.File values.
//
// Open and Create return corrals instead of bare files, so the caller owns
// the file from the moment it is opened:
//
//	cfg, err := file.Open("app.yaml")
//	defer cfg.Close()
//
// A call site that wants its own failure category moves the result into a
// corral with a different error selector:
//
//	c, err := file.Open("input.csv")
//	in := corral.Move[errInputMissing](c)
package file

import (
	"errors"
	"os"

	"github.com/on-the-ground/corral_go/corral"
	"github.com/on-the-ground/corral_go/log"
)

// ErrBadFile is reported when a file corral is accessed without holding an
// open file.
var ErrBadFile = errors.New("bad file")

// File is the corral config for *os.File.
type File struct{}

func (File) Validate(f *os.File) bool { return f != nil }

func (File) Cleanup(f *os.File) {
	if err := f.Close(); err != nil && !errors.Is(err, os.ErrClosed) {
		log.Emit(corral.Logger(), log.LevelWarn, "file close failed", map[string]any{
			"name":  f.Name(),
			"error": err.Error(),
		})
	}
}

func (File) DefaultErr() error { return ErrBadFile }

// Corral owns one open file and reports ErrBadFile on invalid access.
type Corral = corral.Default[*os.File, File]

// Open opens name for reading. On failure the returned corral is invalid and
// the open error is returned alongside it.
func Open(name string) (*Corral, error) {
	return Wrap(os.Open(name))
}

// Create creates or truncates name for writing.
func Create(name string) (*Corral, error) {
	return Wrap(os.Create(name))
}

// Wrap corrals the result of any os.File constructor. A nil f gives an
// invalid corral.
func Wrap(f *os.File, err error) (*Corral, error) {
	return corral.New[*os.File, File, error](f), err
}
