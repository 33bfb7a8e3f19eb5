package intcodevm

import (
	"bytes"
	"sort"

	"github.com/chronos-tachyon/go-intcode/memory"
)

// OpCode selects an instruction. It is the low two decimal digits of an
// instruction word.
type OpCode uint8

const (
	OpAdd             OpCode = 1
	OpMultiply        OpCode = 2
	OpInput           OpCode = 3
	OpOutput          OpCode = 4
	OpJumpIfTrue      OpCode = 5
	OpJumpIfFalse     OpCode = 6
	OpLessThan        OpCode = 7
	OpEquals          OpCode = 8
	OpSetRelativeBase OpCode = 9
	OpHalt            OpCode = 99
)

// OpMeta records static information about one opcode.
type OpMeta struct {
	Code OpCode

	// NumArgs is the number of operand words following the opcode word.
	NumArgs uint

	// Writes is true iff the last operand is a destination.
	Writes bool

	// Illegal is true only for the placeholder returned by OpCode.Meta
	// for undefined opcodes.
	Illegal bool

	Name string
}

// Meta returns the metadata for this opcode. Undefined opcodes return a
// shared placeholder with Illegal set.
func (code OpCode) Meta() *OpMeta {
	i := sort.Search(len(opMeta), func(i int) bool {
		return opMeta[i].Code >= code
	})
	if i < len(opMeta) && opMeta[i].Code == code {
		return &opMeta[i]
	}
	return &illegalMeta
}

func (code OpCode) String() string {
	return code.Meta().Name
}

// Arity returns the number of memory cells occupied by an instruction with
// this opcode, including the opcode word itself.
func (meta *OpMeta) Arity() uint {
	return 1 + meta.NumArgs
}

// Op is a single Intcode instruction, decoded from memory.
type Op struct {
	// IP is the address of the instruction word.
	IP uint64

	// Args holds the instruction's operands. Only the first
	// Meta.NumArgs entries are meaningful.
	Args [maxArgs]Arg

	// Meta is the metadata about this instruction's opcode.
	Meta *OpMeta

	// Code is this instruction's opcode.
	Code OpCode

	// Len is the number of cells the instruction occupies. Unless the
	// instruction jumps, execution continues at IP+Len.
	Len uint
}

// String provides a programmer-friendly debugging string for the Op.
func (op *Op) String() string {
	var buf bytes.Buffer
	meta := op.Meta
	if meta == nil {
		meta = op.Code.Meta()
	}
	buf.WriteString(meta.Name)
	buf.WriteByte('<')
	for i := uint(0); i < meta.NumArgs; i++ {
		if i > 0 {
			buf.WriteByte(',')
		}
		buf.WriteString(op.Args[i].String())
	}
	buf.WriteByte('>')
	return buf.String()
}

// Dest returns the destination operand of a writing instruction.
func (op *Op) Dest() (Arg, bool) {
	if op.Meta == nil || !op.Meta.Writes {
		return Arg{}, false
	}
	return op.Args[op.Meta.NumArgs-1], true
}

// Decode attempts to decode an instruction from the provided memory at the
// provided address. Overwrites this Op's existing data. Decode only reads
// from m.
func (op *Op) Decode(m memory.Memory, ip uint64) error {
	*op = Op{IP: ip, Len: 1}

	word, err := m.Load(ip)
	if err != nil {
		return &DecodeError{Err: err, IP: ip}
	}

	code := word % opcodeModulus
	modes := word / opcodeModulus
	if code <= 0 {
		return &DecodeError{Err: ErrUnknownOpcode, IP: ip, Value: code}
	}

	meta := OpCode(code).Meta()
	if meta.Illegal {
		return &DecodeError{Err: ErrUnknownOpcode, IP: ip, Value: code}
	}

	for i := uint(0); i < meta.NumArgs; i++ {
		mode := Mode(modes % modeModulus)
		modes /= modeModulus
		if mode > RelativeMode {
			return &DecodeError{Err: ErrUnknownParameterMode, IP: ip, Value: int64(mode)}
		}

		v, err := m.Load(ip + 1 + uint64(i))
		if err != nil {
			return &DecodeError{Err: err, IP: ip}
		}
		op.Args[i] = Arg{Mode: mode, Value: v}
	}

	op.Meta = meta
	op.Code = meta.Code
	op.Len = meta.Arity()
	return nil
}
