package intcodevm

import (
	"github.com/chronos-tachyon/go-intcode/memory"
)

// Run executes program to completion with a fixed input sequence and returns
// everything it wrote with OUT.
//
// If the program asks for more input than was supplied, Run fails with
// ErrInsufficientInput. program itself is not modified.
//
func Run(program []int64, inputs ...int64) ([]int64, error) {
	m := NewWithSeed(program, inputs...)
	return runBlocking(m)
}

// RunInPlace is like Run, but afterwards copies the machine's memory at
// addresses 0 .. len(program)-1 back into program. The copy happens even if
// the run failed, so callers can inspect partially-mutated memory.
func RunInPlace(program []int64, inputs ...int64) ([]int64, error) {
	m := NewWithSeed(program, inputs...)
	outputs, err := runBlocking(m)
	copy(program, memory.Snapshot(m.Memory(), uint64(len(program))))
	return outputs, err
}

func runBlocking(m *Machine) ([]int64, error) {
	r, err := m.Run()
	if err != nil {
		return nil, err
	}
	if r.State == PendingInputState {
		return nil, ErrInsufficientInput
	}
	return r.Outputs, nil
}
