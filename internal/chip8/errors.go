package chip8

import (
	"errors"
	"fmt"
)

var (
	// ErrStackOverflow is returned when a call is executed with all stack slots in use.
	ErrStackOverflow = errors.New("stack overflow")
	// ErrStackUnderflow is returned when a return is executed with an empty stack.
	ErrStackUnderflow = errors.New("stack underflow")
	// ErrMemoryBounds is returned when an instruction accesses memory past the top of the address space.
	ErrMemoryBounds = errors.New("memory access out of bounds")
	// ErrProgramTooLarge is returned when a program image does not fit into memory.
	ErrProgramTooLarge = errors.New("program too large")
	// ErrEmptyProgram is returned when loading a program image without any bytes.
	ErrEmptyProgram = errors.New("empty program")
)

// DecodeError is returned for an instruction word that matches no known opcode.
type DecodeError struct {
	Address uint16
	Opcode  uint16
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("unknown instruction $%04X at address $%03X", e.Opcode, e.Address)
}

// StackError is returned when a call or return exceeds the stack limits.
type StackError struct {
	Address  uint16
	Opcode   uint16
	Overflow bool
}

func (e *StackError) Error() string {
	return fmt.Sprintf("instruction $%04X at address $%03X: %s", e.Opcode, e.Address, e.Unwrap())
}

// Unwrap returns ErrStackOverflow or ErrStackUnderflow.
func (e *StackError) Unwrap() error {
	if e.Overflow {
		return ErrStackOverflow
	}
	return ErrStackUnderflow
}

// MemoryBoundsError is returned when the memory range [Start, Start+Length)
// used by an instruction extends past the end of memory.
type MemoryBoundsError struct {
	Address uint16
	Opcode  uint16
	Start   int
	Length  int
}

func (e *MemoryBoundsError) Error() string {
	return fmt.Sprintf("instruction $%04X at address $%03X: range $%04X-$%04X: %s",
		e.Opcode, e.Address, e.Start, e.Start+e.Length-1, ErrMemoryBounds)
}

// Unwrap returns ErrMemoryBounds.
func (e *MemoryBoundsError) Unwrap() error {
	return ErrMemoryBounds
}
