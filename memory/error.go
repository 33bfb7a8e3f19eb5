package memory

import (
	"errors"
	"fmt"
)

// ErrIndexOutOfRange is returned by Bounded memories for any address past
// the end of the store.
var ErrIndexOutOfRange = errors.New("index out of range")

// AddressError is an error encountered while accessing a single cell.
type AddressError struct {
	Err  error
	Addr uint64
}

func (e *AddressError) Error() string {
	return fmt.Sprintf("github.com/chronos-tachyon/go-intcode/memory: %v: %d", e.Err, e.Addr)
}

func (e *AddressError) Unwrap() error {
	return e.Err
}
