package chip8

import (
	"github.com/retroenv/retrogolib/arch/cpu/chip8"
)

// OpcodeSize is the size of CHIP-8 instructions in bytes.
const OpcodeSize = 2

// sys has no retrogolib definition as it is ignored by all interpreters.
var sys = &chip8.Instruction{Name: "sys"}

// Opcode is an entry of the opcode table. A word matches the entry if the
// word masked with Mask equals Value.
type Opcode struct {
	Mask        uint16
	Value       uint16
	Kind        Kind
	Instruction *chip8.Instruction
}

// opcodes contains the opcode table indexed by the high nibble of the word.
// Within a group the first matching entry wins, so more specific entries
// are listed first.
var opcodes = [16][]Opcode{
	0x0: {
		{Mask: 0xFFFF, Value: 0x00E0, Kind: ClearScreen, Instruction: chip8.ClsInst},
		{Mask: 0xFFFF, Value: 0x00EE, Kind: Return, Instruction: chip8.RetInst},
		{Mask: 0xF000, Value: 0x0000, Kind: Sys, Instruction: sys},
	},
	0x1: {
		{Mask: 0xF000, Value: 0x1000, Kind: Jump, Instruction: chip8.JpInst},
	},
	0x2: {
		{Mask: 0xF000, Value: 0x2000, Kind: Call, Instruction: chip8.CallInst},
	},
	0x3: {
		{Mask: 0xF000, Value: 0x3000, Kind: SkipEqualImmediate, Instruction: chip8.SeInst},
	},
	0x4: {
		{Mask: 0xF000, Value: 0x4000, Kind: SkipNotEqualImmediate, Instruction: chip8.SneInst},
	},
	0x5: {
		{Mask: 0xF00F, Value: 0x5000, Kind: SkipEqualRegister, Instruction: chip8.SeInst},
	},
	0x6: {
		{Mask: 0xF000, Value: 0x6000, Kind: LoadImmediate, Instruction: chip8.LdInst},
	},
	0x7: {
		{Mask: 0xF000, Value: 0x7000, Kind: AddImmediate, Instruction: chip8.AddInst},
	},
	0x8: {
		{Mask: 0xF00F, Value: 0x8000, Kind: LoadRegister, Instruction: chip8.LdInst},
		{Mask: 0xF00F, Value: 0x8001, Kind: Or, Instruction: chip8.OrInst},
		{Mask: 0xF00F, Value: 0x8002, Kind: And, Instruction: chip8.AndInst},
		{Mask: 0xF00F, Value: 0x8003, Kind: Xor, Instruction: chip8.XorInst},
		{Mask: 0xF00F, Value: 0x8004, Kind: AddRegister, Instruction: chip8.AddInst},
		{Mask: 0xF00F, Value: 0x8005, Kind: Subtract, Instruction: chip8.SubInst},
		{Mask: 0xF00F, Value: 0x8006, Kind: ShiftRight, Instruction: chip8.ShrInst},
		{Mask: 0xF00F, Value: 0x8007, Kind: SubtractReverse, Instruction: chip8.SubnInst},
		{Mask: 0xF00F, Value: 0x800E, Kind: ShiftLeft, Instruction: chip8.ShlInst},
	},
	0x9: {
		{Mask: 0xF00F, Value: 0x9000, Kind: SkipNotEqualRegister, Instruction: chip8.SneInst},
	},
	0xA: {
		{Mask: 0xF000, Value: 0xA000, Kind: LoadIndex, Instruction: chip8.LdInst},
	},
	0xB: {
		{Mask: 0xF000, Value: 0xB000, Kind: JumpOffset, Instruction: chip8.JpInst},
	},
	0xC: {
		{Mask: 0xF000, Value: 0xC000, Kind: Random, Instruction: chip8.RndInst},
	},
	0xD: {
		{Mask: 0xF000, Value: 0xD000, Kind: Draw, Instruction: chip8.DrwInst},
	},
	0xE: {
		{Mask: 0xF0FF, Value: 0xE09E, Kind: SkipKeyPressed, Instruction: chip8.SkpInst},
		{Mask: 0xF0FF, Value: 0xE0A1, Kind: SkipKeyNotPressed, Instruction: chip8.SknpInst},
	},
	0xF: {
		{Mask: 0xF0FF, Value: 0xF007, Kind: LoadDelayTimer, Instruction: chip8.LdInst},
		{Mask: 0xF0FF, Value: 0xF00A, Kind: WaitKey, Instruction: chip8.LdInst},
		{Mask: 0xF0FF, Value: 0xF015, Kind: SetDelayTimer, Instruction: chip8.LdInst},
		{Mask: 0xF0FF, Value: 0xF018, Kind: SetSoundTimer, Instruction: chip8.LdInst},
		{Mask: 0xF0FF, Value: 0xF01E, Kind: AddIndex, Instruction: chip8.AddInst},
		{Mask: 0xF0FF, Value: 0xF029, Kind: LoadFont, Instruction: chip8.LdInst},
		{Mask: 0xF0FF, Value: 0xF033, Kind: StoreBCD, Instruction: chip8.LdInst},
		{Mask: 0xF0FF, Value: 0xF055, Kind: StoreRegisters, Instruction: chip8.LdInst},
		{Mask: 0xF0FF, Value: 0xF065, Kind: LoadRegisters, Instruction: chip8.LdInst},
	},
}

// Opcodes returns all entries of the opcode table.
func Opcodes() []Opcode {
	var all []Opcode
	for _, group := range opcodes {
		all = append(all, group...)
	}
	return all
}
