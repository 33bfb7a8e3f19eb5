// Package pipeline connects several Intcode machines so that each one's
// output becomes the next one's input.
//
// All machines are driven from the calling goroutine. A stage only runs
// after the previous stage's outputs have been queued as its input.
package pipeline

import (
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/chronos-tachyon/go-intcode/intcodevm"
)

var (
	ErrEmptyRing = errors.New("pipeline has no stages")
	ErrNoOutput  = errors.New("stage produced no output")
	ErrStalled   = errors.New("every stage is waiting for input")
)

// StageError is an error raised by one stage of a pipeline.
type StageError struct {
	Err   error
	Stage int
	Round int
}

func (e *StageError) Error() string {
	return fmt.Sprintf("github.com/chronos-tachyon/go-intcode/pipeline: stage %d, round %d: %v", e.Stage, e.Round, e.Err)
}

func (e *StageError) Unwrap() error {
	return e.Err
}

// Chain runs program once per phase, in order. Each stage receives its phase
// and then the previous stage's first output (signal, for the first stage),
// and must run to completion. Chain returns the last stage's first output.
func Chain(program []int64, phases []int64, signal int64) (int64, error) {
	if len(phases) == 0 {
		return 0, ErrEmptyRing
	}
	for i, phase := range phases {
		out, err := intcodevm.Run(program, phase, signal)
		if err != nil {
			return 0, &StageError{Err: err, Stage: i}
		}
		if len(out) == 0 {
			return 0, &StageError{Err: ErrNoOutput, Stage: i}
		}
		signal = out[0]
	}
	return signal, nil
}

// Ring is a feedback loop of machines running the same program: stage i's
// outputs feed stage i+1, and the last stage's outputs feed stage 0.
type Ring struct {
	// Program is the initial memory image of every stage.
	Program []int64

	// Logger receives one debug entry per stage per round. Nil disables
	// logging.
	Logger *zap.Logger
}

// Run builds one machine per phase, each seeded with its phase, then sends
// signal into stage 0 and drives the stages round-robin until the last
// stage halts. It returns the last word that stage wrote.
//
// Stages that halt early keep passing along whatever they wrote in their
// final call. If a full round passes in which no stage writes anything and
// the last stage is still waiting, Run fails with ErrStalled.
//
func (ring *Ring) Run(phases []int64, signal int64) (int64, error) {
	if len(phases) == 0 {
		return 0, ErrEmptyRing
	}

	logger := ring.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	stages := make([]*intcodevm.Machine, len(phases))
	for i, phase := range phases {
		stages[i] = intcodevm.NewWithSeed(ring.Program, phase)
	}

	last := len(stages) - 1
	carry := []int64{signal}
	for round := 0; ; round++ {
		moved := false
		for i, m := range stages {
			m.AddInputs(carry...)
			r, err := m.Run()
			if err != nil {
				return 0, &StageError{Err: err, Stage: i, Round: round}
			}
			logger.Debug("pipeline: stage ran",
				zap.Int("round", round),
				zap.Int("stage", i),
				zap.Int("in", len(carry)),
				zap.Stringer("state", r.State),
				zap.Int64s("out", r.Outputs))

			if len(r.Outputs) != 0 {
				moved = true
			}
			if i == last && r.State == intcodevm.CompletedState {
				if len(r.Outputs) == 0 {
					return 0, &StageError{Err: ErrNoOutput, Stage: i, Round: round}
				}
				return r.Outputs[len(r.Outputs)-1], nil
			}
			carry = r.Outputs
		}
		if !moved {
			return 0, &StageError{Err: ErrStalled, Stage: last, Round: round}
		}
	}
}
