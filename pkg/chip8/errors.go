package chip8

import (
	"fmt"

	"github.com/pkg/errors"
)

var (
	// ErrROMTooLarge is returned by LoadROM when the ROM does not fit
	// between EntryAddress and the end of memory.
	ErrROMTooLarge = errors.New("rom too large")

	// ErrUnknownOpcode is the cause of an ExecError in strict mode when
	// no instruction matches the fetched word.
	ErrUnknownOpcode = errors.New("unknown opcode")

	// ErrStackOverflow is the cause of an ExecError when a call is made
	// with all stack frames in use.
	ErrStackOverflow = errors.New("stack overflow")

	// ErrStackUnderflow is the cause of an ExecError when a return is made
	// with an empty stack.
	ErrStackUnderflow = errors.New("stack underflow")
)

// ExecError is returned by Step when an instruction faults. The machine is
// left as it was before the faulting instruction was fetched.
type ExecError struct {
	PC     uint16
	Opcode Instruction
	Kind   Kind
	Err    error
}

func (e *ExecError) Error() string {
	return fmt.Sprintf("executing %s (%s) at $%03X: %v", e.Opcode, e.Kind, e.PC, e.Err)
}

// Unwrap supports errors.Is and errors.As.
func (e *ExecError) Unwrap() error {
	return e.Err
}

// Cause supports errors.Cause.
func (e *ExecError) Cause() error {
	return e.Err
}
