package intcodevm

import (
	"bytes"
	"fmt"
)

type RunState uint8

const (
	RunningState RunState = iota
	PendingInputState
	CompletedState
	ErrorState
)

var runStateNames = []string{
	RunningState:      "Running",
	PendingInputState: "PendingInput",
	CompletedState:    "Completed",
	ErrorState:        "Error",
}

func (r RunState) String() string {
	if uint(r) < uint(len(runStateNames)) {
		return runStateNames[r]
	}
	return fmt.Sprintf("RunState(%d)", uint8(r))
}

// Result is the outcome of one call to Machine.Run.
type Result struct {
	// State is either PendingInputState or CompletedState.
	State RunState

	// Outputs holds the words written by OUT during this call only.
	Outputs []int64
}

// Completed returns true iff the machine executed HALT.
func (r Result) Completed() bool {
	return r.State == CompletedState
}

// String provides a programmer-friendly debugging string for the Result.
func (r Result) String() string {
	var buf bytes.Buffer
	buf.WriteString(r.State.String())
	buf.WriteByte('[')
	for i, v := range r.Outputs {
		if i > 0 {
			buf.WriteByte(' ')
		}
		fmt.Fprintf(&buf, "%d", v)
	}
	buf.WriteByte(']')
	return buf.String()
}
