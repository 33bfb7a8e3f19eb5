package intcodevm

import (
	"github.com/chronos-tachyon/go-intcode/memory"
)

// Machine is one Intcode machine: its memory, its registers, and its queue
// of pending input.
//
// Machines share nothing with each other. A host may drive any number of
// them from a single goroutine, in whatever order its topology requires.
// A single Machine is not safe for concurrent use.
//
type Machine struct {
	mem memory.Memory

	// ip (Instruction Pointer) is the address of the instruction to decode
	// and execute next.
	ip uint64

	// rb is the relative base, added to the operand of RelativeMode args.
	rb int64

	// in is the FIFO queue of input words not yet consumed by IN.
	in []int64

	// out collects OUT words for the Run call in progress.
	out []int64

	r   RunState
	err error
}

// New returns a Machine whose memory is a sparse copy of program.
func New(program []int64) *Machine {
	return NewWithMemory(memory.Of(program))
}

// NewWithSeed returns a Machine like New, with seed already queued as input.
func NewWithSeed(program []int64, seed ...int64) *Machine {
	m := New(program)
	m.AddInputs(seed...)
	return m
}

// NewWithMemory returns a Machine that executes directly against mem.
func NewWithMemory(mem memory.Memory) *Machine {
	return &Machine{mem: mem}
}

// IP returns the address of the next instruction.
func (m *Machine) IP() uint64 { return m.ip }

// RB returns the current relative base.
func (m *Machine) RB() int64 { return m.rb }

// Memory returns the machine's memory. It is safe to inspect between calls
// to Run.
func (m *Machine) Memory() memory.Memory { return m.mem }

// Pending returns the number of queued input words.
func (m *Machine) Pending() int { return len(m.in) }

// State returns the state in which the last call to Run left the machine.
func (m *Machine) State() RunState { return m.r }

// Err returns the error that stopped the machine, if any.
func (m *Machine) Err() error { return m.err }

// AddInputs appends values to the input queue.
func (m *Machine) AddInputs(values ...int64) {
	m.in = append(m.in, values...)
}

// Peek decodes the instruction at IP without executing it.
func (m *Machine) Peek() (Op, error) {
	var op Op
	err := op.Decode(m.mem, m.ip)
	return op, err
}

// Run executes instructions until the machine halts or needs input that
// has not been queued.
//
// - If HALT executes, the Result is in CompletedState. IP stays at the HALT,
//   so calling Run again simply completes again with no outputs.
//
// - If IN finds the queue empty, the Result is in PendingInputState and the
//   registers are exactly as they were before the IN. The next call to Run
//   retries it.
//
// Any error is fatal to the machine: memory is left as it was when the
// failing instruction was reached, and every later call to Run returns the
// same error.
//
func (m *Machine) Run() (Result, error) {
	if m.r == ErrorState {
		return Result{State: ErrorState}, m.err
	}

	m.out = nil
	m.r = RunningState
	for m.r == RunningState {
		if err := m.step(); err != nil {
			m.r = ErrorState
			m.err = err
			return Result{State: ErrorState, Outputs: m.out}, err
		}
	}
	return Result{State: m.r, Outputs: m.out}, nil
}

func (m *Machine) step() error {
	var op Op
	if err := op.Decode(m.mem, m.ip); err != nil {
		return err
	}

	jumped := false
	switch op.Code {
	case OpAdd, OpMultiply, OpLessThan, OpEquals:
		a, err := m.read(&op, 0)
		if err != nil {
			return err
		}
		b, err := m.read(&op, 1)
		if err != nil {
			return err
		}
		var v int64
		switch op.Code {
		case OpAdd:
			v = a + b
		case OpMultiply:
			v = a * b
		case OpLessThan:
			v = boolWord(a < b)
		case OpEquals:
			v = boolWord(a == b)
		}
		if err := m.write(&op, v); err != nil {
			return err
		}

	case OpInput:
		if len(m.in) == 0 {
			m.r = PendingInputState
			return nil
		}
		if err := m.write(&op, m.in[0]); err != nil {
			return err
		}
		m.in = m.in[1:]

	case OpOutput:
		v, err := m.read(&op, 0)
		if err != nil {
			return err
		}
		m.out = append(m.out, v)

	case OpJumpIfTrue, OpJumpIfFalse:
		cond, err := m.read(&op, 0)
		if err != nil {
			return err
		}
		if (cond != 0) == (op.Code == OpJumpIfTrue) {
			target, err := m.read(&op, 1)
			if err != nil {
				return err
			}
			addr, ok := toAddr(target)
			if !ok {
				return m.fault(&op, ErrNegativeAddress)
			}
			m.ip = addr
			jumped = true
		}

	case OpSetRelativeBase:
		v, err := m.read(&op, 0)
		if err != nil {
			return err
		}
		m.rb += v

	case OpHalt:
		m.r = CompletedState
		return nil

	default:
		assert(false, "decoded unhandled opcode %d", op.Code)
	}

	if !jumped {
		m.ip += uint64(op.Len)
	}
	return nil
}

// read resolves operand i of op to a value.
func (m *Machine) read(op *Op, i uint) (int64, error) {
	arg := op.Args[i]
	if arg.Mode == ImmediateMode {
		return arg.Value, nil
	}
	addr, err := m.address(op, arg)
	if err != nil {
		return 0, err
	}
	v, err := m.mem.Load(addr)
	if err != nil {
		return 0, m.fault(op, err)
	}
	return v, nil
}

// write stores v at the destination operand of op.
func (m *Machine) write(op *Op, v int64) error {
	dest, ok := op.Dest()
	assert(ok, "%s has no destination", op.Meta.Name)
	addr, err := m.address(op, dest)
	if err != nil {
		return err
	}
	if err := m.mem.Store(addr, v); err != nil {
		return m.fault(op, err)
	}
	return nil
}

// address resolves arg to the address it refers to.
func (m *Machine) address(op *Op, arg Arg) (uint64, error) {
	var v int64
	switch arg.Mode {
	case PositionMode:
		v = arg.Value
	case RelativeMode:
		v = m.rb + arg.Value
	default:
		return 0, m.fault(op, ErrImmediateDestination)
	}
	addr, ok := toAddr(v)
	if !ok {
		return 0, m.fault(op, ErrNegativeAddress)
	}
	return addr, nil
}

func (m *Machine) fault(op *Op, err error) error {
	return &RuntimeError{
		Err: err,
		IP:  m.ip,
		RB:  m.rb,
		Op:  op,
	}
}

func boolWord(b bool) int64 {
	if b {
		return 1
	}
	return 0
}
