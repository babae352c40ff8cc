package chip8

import (
	"errors"
	"fmt"
)

var (
	ErrStackOverflow  = errors.New("stack overflow")
	ErrStackUnderflow = errors.New("stack underflow")
	ErrMemoryBounds   = errors.New("memory access out of bounds")
	ErrFontDigit      = errors.New("font digit out of range")
	ErrKeyRange       = errors.New("key out of range")
	ErrClockStopped   = errors.New("clock stopped")
	ErrROMTooLarge    = errors.New("ROM too large")
)

// ExecError reports a fatal condition raised while executing the
// instruction at PC.
type ExecError struct {
	PC          uint16
	Instruction Instruction
	Err         error
}

func (e *ExecError) Error() string {
	// Kind 0 with opcode 0 is only produced when the fetch itself failed.
	if e.Instruction.Kind == 0 && e.Instruction.Opcode == 0 {
		return fmt.Sprintf("fetching instruction at 0x%03X: %v", e.PC, e.Err)
	}
	return fmt.Sprintf("executing 0x%04X (%s) at 0x%03X: %v",
		e.Instruction.Opcode, e.Instruction, e.PC, e.Err)
}

func (e *ExecError) Unwrap() error {
	return e.Err
}
