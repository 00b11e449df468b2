package chip8

import (
	"errors"
	"fmt"
)

// ErrUnknownOpcode is returned for instruction words that match no opcode table entry.
var ErrUnknownOpcode = errors.New("unknown opcode")

// Word combines two instruction bytes big-endian into an instruction word.
func Word(high, low byte) uint16 {
	return uint16(high)<<8 | uint16(low)
}

// Decode classifies an instruction word and extracts its operands.
func Decode(word uint16) (Instruction, error) {
	group := (word & 0xF000) >> 12
	for _, op := range opcodes[group] {
		if word&op.Mask != op.Value {
			continue
		}
		return Instruction{
			Kind:   op.Kind,
			Opcode: word,
			X:      extractRegisterX(word),
			Y:      extractRegisterY(word),
			N:      uint8(word & 0x000F),
			NN:     uint8(word & 0x00FF),
			NNN:    word & 0x0FFF,
			ins:    op.Instruction,
		}, nil
	}
	return Instruction{}, fmt.Errorf("$%04X: %w", word, ErrUnknownOpcode)
}

// extractRegisterX extracts the X register nibble from a CHIP-8 opcode.
func extractRegisterX(opcode uint16) uint8 {
	return uint8((opcode & 0x0F00) >> 8)
}

// extractRegisterY extracts the Y register nibble from a CHIP-8 opcode.
func extractRegisterY(opcode uint16) uint8 {
	return uint8((opcode & 0x00F0) >> 4)
}
