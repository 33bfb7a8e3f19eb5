package intcodevm

import (
	"errors"
	"fmt"

	"github.com/chronos-tachyon/go-intcode/memory"
)

var (
	ErrUnknownOpcode        = errors.New("invalid instruction: unknown opcode")
	ErrUnknownParameterMode = errors.New("invalid instruction: unknown parameter mode")
	ErrImmediateDestination = errors.New("invalid instruction: immediate mode used as a destination")
	ErrNegativeAddress      = errors.New("address out of range: negative address")
	ErrInsufficientInput    = errors.New("insufficient input")
	ErrIndexOutOfRange      = memory.ErrIndexOutOfRange
)

// DecodeError is an error encountered while decoding the instruction at IP.
// Value holds the offending opcode or parameter mode, where applicable.
type DecodeError struct {
	Err   error
	IP    uint64
	Value int64
}

func (e *DecodeError) Error() string {
	if e.Err == ErrUnknownOpcode || e.Err == ErrUnknownParameterMode {
		return fmt.Sprintf("github.com/chronos-tachyon/go-intcode/intcodevm: decode error @ IP %d: %v %d", e.IP, e.Err, e.Value)
	}
	return fmt.Sprintf("github.com/chronos-tachyon/go-intcode/intcodevm: decode error @ IP %d: %v", e.IP, e.Err)
}

func (e *DecodeError) Unwrap() error {
	return e.Err
}

// RuntimeError is an error encountered while executing a successfully
// decoded instruction. This typically means that an operand resolved to an
// address the machine cannot use.
type RuntimeError struct {
	Err error
	IP  uint64
	RB  int64
	Op  *Op
}

func (e *RuntimeError) Error() string {
	prefix := fmt.Sprintf("github.com/chronos-tachyon/go-intcode/intcodevm: runtime error @ IP %d RB %d: ", e.IP, e.RB)
	if e.Op != nil {
		return prefix + e.Op.String() + ": " + e.Err.Error()
	}
	return prefix + e.Err.Error()
}

func (e *RuntimeError) Unwrap() error {
	return e.Err
}
