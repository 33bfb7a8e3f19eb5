package intcodevm

import (
	"sort"
)

const (
	// maxArgs is the largest operand count of any instruction.
	maxArgs = 3

	// opcodeModulus splits an instruction word into its opcode (the
	// remainder) and its packed parameter modes (the quotient).
	opcodeModulus = 100

	// modeModulus extracts one parameter mode digit.
	modeModulus = 10
)

var opMeta = []OpMeta{
	OpMeta{
		Code:    OpAdd,
		NumArgs: 3,
		Writes:  true,
		Name:    "ADD",
	},
	OpMeta{
		Code:    OpMultiply,
		NumArgs: 3,
		Writes:  true,
		Name:    "MUL",
	},
	OpMeta{
		Code:    OpInput,
		NumArgs: 1,
		Writes:  true,
		Name:    "IN",
	},
	OpMeta{
		Code:    OpOutput,
		NumArgs: 1,
		Name:    "OUT",
	},
	OpMeta{
		Code:    OpJumpIfTrue,
		NumArgs: 2,
		Name:    "JNZ",
	},
	OpMeta{
		Code:    OpJumpIfFalse,
		NumArgs: 2,
		Name:    "JZ",
	},
	OpMeta{
		Code:    OpLessThan,
		NumArgs: 3,
		Writes:  true,
		Name:    "LT",
	},
	OpMeta{
		Code:    OpEquals,
		NumArgs: 3,
		Writes:  true,
		Name:    "EQ",
	},
	OpMeta{
		Code:    OpSetRelativeBase,
		NumArgs: 1,
		Name:    "ARB",
	},
	OpMeta{
		Code:    OpHalt,
		NumArgs: 0,
		Name:    "HALT",
	},
}

var illegalMeta = OpMeta{
	Name:    "ILLEGAL",
	Illegal: true,
}

func init() {
	assert(sort.IsSorted(byCode(opMeta)), "IsSorted(byCode(opMeta))")
	for _, meta := range opMeta {
		assert(meta.NumArgs <= maxArgs, "%s has too many operands", meta.Name)
	}
}
