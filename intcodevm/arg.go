package intcodevm

import (
	"fmt"
)

// Mode is a parameter mode, selecting how an operand word is interpreted.
type Mode uint8

const (
	PositionMode Mode = iota
	ImmediateMode
	RelativeMode
)

var modeNames = []string{
	PositionMode:  "position",
	ImmediateMode: "immediate",
	RelativeMode:  "relative",
}

func (mode Mode) String() string {
	if uint(mode) < uint(len(modeNames)) {
		return modeNames[mode]
	}
	return fmt.Sprintf("Mode(%d)", uint8(mode))
}

// Arg is a single decoded operand.
//
// - PositionMode: Value is an absolute address.
//
// - ImmediateMode: Value is the operand itself.
//
// - RelativeMode: Value is an offset from the relative base.
//
type Arg struct {
	Mode  Mode
	Value int64
}

// String renders the Arg in listing form: "*7" for position, "#7" for
// immediate, and "@+7" for relative.
func (arg Arg) String() string {
	switch arg.Mode {
	case PositionMode:
		return fmt.Sprintf("*%d", arg.Value)
	case ImmediateMode:
		return fmt.Sprintf("#%d", arg.Value)
	case RelativeMode:
		return fmt.Sprintf("@%+d", arg.Value)
	}
	return fmt.Sprintf("?%d", arg.Value)
}
