// Package chip8 provides the CHIP-8 instruction decoder.
//
// # Instruction Set
//
// CHIP-8 has a simple instruction set with 35 opcodes:
//   - All instructions are 2 bytes (16 bits), stored big-endian
//   - The high nibble selects one of 16 groups, groups 0x0, 0x8, 0xE and 0xF
//     are further distinguished by their low byte or low nibble
//   - Operands are embedded in the opcode: X and Y register nibbles,
//     a 4-bit height N, an 8-bit literal NN and a 12-bit address NNN
//
// # Decoding
//
// Decode turns an instruction word into an Instruction value carrying its
// Kind and all extracted operands. Words that match no table entry return
// ErrUnknownOpcode. Decoding is independent from execution, which allows
// the opcode table to be tested in isolation.
//
// # Usage Example
//
//	ins, err := chip8.Decode(0xD015)
//	if err != nil {
//		return fmt.Errorf("decoding: %w", err)
//	}
//	fmt.Println(ins) // drw V0, V1, $5
//
// Mnemonics are shared with the retrogolib CHIP-8 instruction definitions.
package chip8
