package machine

import "errors"

var (
	// ErrOutOfRange is returned for memory, register or key indexes outside of their valid range.
	ErrOutOfRange = errors.New("index out of range")
	// ErrStackOverflow is returned when a call is made with all stack slots in use.
	ErrStackOverflow = errors.New("stack overflow")
	// ErrStackUnderflow is returned when returning from a subroutine with an empty stack.
	ErrStackUnderflow = errors.New("stack underflow")
	// ErrProgramTooLarge is returned when a program image does not fit into memory.
	ErrProgramTooLarge = errors.New("program too large")
	// ErrEmptyProgram is returned when loading a program image without any bytes.
	ErrEmptyProgram = errors.New("empty program")
)
