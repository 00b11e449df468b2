package chip8

import (
	"fmt"
)

// String returns the instruction in assembly syntax, for example "ld V0, $05".
func (i Instruction) String() string {
	name := i.Name()
	if name == "" {
		return fmt.Sprintf("$%04X", i.Opcode)
	}
	if params := i.formatParams(); params != "" {
		return fmt.Sprintf("%s %s", name, params)
	}
	return name
}

// formatParams formats the instruction parameters.
func (i Instruction) formatParams() string {
	switch i.Kind {
	case ClearScreen, Return:
		return "" // No parameters
	case Sys, Jump, Call:
		return fmt.Sprintf("$%03X", i.NNN)
	case JumpOffset:
		return fmt.Sprintf("V0, $%03X", i.NNN)
	case LoadIndex:
		return fmt.Sprintf("I, $%03X", i.NNN)
	case SkipEqualImmediate, SkipNotEqualImmediate, LoadImmediate, AddImmediate, Random:
		return fmt.Sprintf("V%X, $%02X", i.X, i.NN)
	case SkipEqualRegister, SkipNotEqualRegister, LoadRegister, Or, And, Xor,
		AddRegister, Subtract, SubtractReverse:
		return fmt.Sprintf("V%X, V%X", i.X, i.Y)
	case ShiftRight, ShiftLeft, SkipKeyPressed, SkipKeyNotPressed:
		return fmt.Sprintf("V%X", i.X)
	case Draw:
		return fmt.Sprintf("V%X, V%X, $%X", i.X, i.Y, i.N)
	default:
		return i.formatTimerAndMemoryParams()
	}
}

// formatTimerAndMemoryParams formats the FX group of load instructions.
func (i Instruction) formatTimerAndMemoryParams() string {
	switch i.Kind {
	case LoadDelayTimer:
		return fmt.Sprintf("V%X, DT", i.X)
	case WaitKey:
		return fmt.Sprintf("V%X, K", i.X)
	case SetDelayTimer:
		return fmt.Sprintf("DT, V%X", i.X)
	case SetSoundTimer:
		return fmt.Sprintf("ST, V%X", i.X)
	case AddIndex:
		return fmt.Sprintf("I, V%X", i.X)
	case LoadFont:
		return fmt.Sprintf("F, V%X", i.X)
	case StoreBCD:
		return fmt.Sprintf("B, V%X", i.X)
	case StoreRegisters:
		return fmt.Sprintf("[I], V%X", i.X)
	case LoadRegisters:
		return fmt.Sprintf("V%X, [I]", i.X)
	}
	return ""
}
