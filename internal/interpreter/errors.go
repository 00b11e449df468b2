package interpreter

import (
	"errors"
	"fmt"

	"github.com/retroenv/retrochip8/internal/arch/chip8"
)

var (
	// ErrFetchOutOfRange is returned when the program counter points past the end of memory.
	ErrFetchOutOfRange = errors.New("fetch out of range")
	// ErrNoProgram is returned when stepping a machine without a loaded program.
	ErrNoProgram = errors.New("no program loaded")
	// ErrUnknownOpcode is logged for words that match no opcode, it never aborts a cycle.
	ErrUnknownOpcode = chip8.ErrUnknownOpcode
)

// CycleError is a fatal error of a single cycle, carrying the location it occurred at.
type CycleError struct {
	PC     uint16
	Opcode uint16
	Err    error
}

func (e *CycleError) Error() string {
	return fmt.Sprintf("pc $%04X opcode $%04X: %s", e.PC, e.Opcode, e.Err)
}

func (e *CycleError) Unwrap() error {
	return e.Err
}
