// Package machine provides the CHIP-8 CPU state.
//
// # Memory Layout
//
// The machine has 4KB of memory (0x000-0xFFF):
//   - 0x000-0x04F: built-in font, 16 glyphs of 5 bytes each
//   - 0x050-0x1FF: unused interpreter area
//   - ProgramStart-0xFFF: program image and data
//
// # Registers
//
//   - V0-VF: 16 general-purpose 8-bit registers, VF doubles as the flag register
//   - I: 16-bit index register used as memory base
//   - PC: 16-bit program counter
//   - DT, ST: 8-bit delay and sound timers
//
// The stack, framebuffer and keypad are kept outside of the addressable memory.
//
// All accessors are bounds checked and return ErrOutOfRange instead of
// wrapping or truncating an index. The machine has no behavior of its own,
// it is mutated by the interpreter and written by the loader and the key
// input source between cycles.
package machine
