package chip8

import (
	"github.com/retroenv/retrogolib/arch/cpu/chip8"
)

// Kind identifies the operation of a decoded instruction.
type Kind int

// Instruction kinds, one per opcode table entry.
const (
	Invalid               Kind = iota
	Sys                        // 0NNN
	ClearScreen                // 00E0
	Return                     // 00EE
	Jump                       // 1NNN
	Call                       // 2NNN
	SkipEqualImmediate         // 3XNN
	SkipNotEqualImmediate      // 4XNN
	SkipEqualRegister          // 5XY0
	LoadImmediate              // 6XNN
	AddImmediate               // 7XNN
	LoadRegister               // 8XY0
	Or                         // 8XY1
	And                        // 8XY2
	Xor                        // 8XY3
	AddRegister                // 8XY4
	Subtract                   // 8XY5
	ShiftRight                 // 8XY6
	SubtractReverse            // 8XY7
	ShiftLeft                  // 8XYE
	SkipNotEqualRegister       // 9XY0
	LoadIndex                  // ANNN
	JumpOffset                 // BNNN
	Random                     // CXNN
	Draw                       // DXYN
	SkipKeyPressed             // EX9E
	SkipKeyNotPressed          // EXA1
	LoadDelayTimer             // FX07
	WaitKey                    // FX0A
	SetDelayTimer              // FX15
	SetSoundTimer              // FX18
	AddIndex                   // FX1E
	LoadFont                   // FX29
	StoreBCD                   // FX33
	StoreRegisters             // FX55
	LoadRegisters              // FX65

	// KindCount is the number of kinds including Invalid.
	KindCount
)

var kindNames = [KindCount]string{
	Invalid:               "invalid",
	Sys:                   "sys",
	ClearScreen:           "clear screen",
	Return:                "return",
	Jump:                  "jump",
	Call:                  "call",
	SkipEqualImmediate:    "skip if equal immediate",
	SkipNotEqualImmediate: "skip if not equal immediate",
	SkipEqualRegister:     "skip if equal register",
	LoadImmediate:         "load immediate",
	AddImmediate:          "add immediate",
	LoadRegister:          "load register",
	Or:                    "or",
	And:                   "and",
	Xor:                   "xor",
	AddRegister:           "add register",
	Subtract:              "subtract",
	ShiftRight:            "shift right",
	SubtractReverse:       "subtract reverse",
	ShiftLeft:             "shift left",
	SkipNotEqualRegister:  "skip if not equal register",
	LoadIndex:             "load index",
	JumpOffset:            "jump with offset",
	Random:                "random",
	Draw:                  "draw",
	SkipKeyPressed:        "skip if key pressed",
	SkipKeyNotPressed:     "skip if key not pressed",
	LoadDelayTimer:        "load delay timer",
	WaitKey:               "wait for key",
	SetDelayTimer:         "set delay timer",
	SetSoundTimer:         "set sound timer",
	AddIndex:              "add index",
	LoadFont:              "load font glyph",
	StoreBCD:              "store BCD",
	StoreRegisters:        "store registers",
	LoadRegisters:         "load registers",
}

// String returns a readable name of the kind.
func (k Kind) String() string {
	if k < 0 || k >= KindCount {
		return kindNames[Invalid]
	}
	return kindNames[k]
}

// Instruction is a decoded CHIP-8 instruction with all operands extracted.
// Operands that are not used by the kind are still set from their nibbles.
type Instruction struct {
	Kind   Kind
	Opcode uint16 // raw instruction word

	X   uint8  // register nibble, bits 8-11
	Y   uint8  // register nibble, bits 4-7
	N   uint8  // 4-bit literal, bits 0-3
	NN  uint8  // 8-bit literal, bits 0-7
	NNN uint16 // 12-bit address, bits 0-11

	ins *chip8.Instruction
}

// Name returns the instruction mnemonic.
func (i Instruction) Name() string {
	if i.ins == nil {
		return ""
	}
	return i.ins.Name
}

// IsJump returns true if the instruction unconditionally sets the program counter.
func (i Instruction) IsJump() bool {
	return i.Kind == Jump || i.Kind == JumpOffset
}

// IsCall returns true if the instruction is a subroutine call.
func (i Instruction) IsCall() bool {
	return i.Kind == Call
}

// IsReturn returns true if the instruction returns from a subroutine.
func (i Instruction) IsReturn() bool {
	return i.Kind == Return
}

// IsSkip returns true if the instruction conditionally skips the next instruction.
func (i Instruction) IsSkip() bool {
	switch i.Kind {
	case SkipEqualImmediate, SkipNotEqualImmediate, SkipEqualRegister, SkipNotEqualRegister,
		SkipKeyPressed, SkipKeyNotPressed:
		return true
	default:
		return false
	}
}
