package chip8

import (
	"testing"

	chip8cpu "github.com/retroenv/retrogolib/arch/cpu/chip8"
	"github.com/retroenv/retrogolib/assert"
)

func TestInstruction_String(t *testing.T) {
	tests := []struct {
		word     uint16
		expected string
	}{
		{0x00E0, chip8cpu.ClsInst.Name},
		{0x00EE, chip8cpu.RetInst.Name},
		{0x0123, "sys $123"},
		{0x1200, chip8cpu.JpInst.Name + " $200"},
		{0xB300, chip8cpu.JpInst.Name + " V0, $300"},
		{0x2ABC, chip8cpu.CallInst.Name + " $ABC"},
		{0x3A0F, chip8cpu.SeInst.Name + " VA, $0F"},
		{0x4B10, chip8cpu.SneInst.Name + " VB, $10"},
		{0x5AB0, chip8cpu.SeInst.Name + " VA, VB"},
		{0x9AB0, chip8cpu.SneInst.Name + " VA, VB"},
		{0x6005, chip8cpu.LdInst.Name + " V0, $05"},
		{0x7112, chip8cpu.AddInst.Name + " V1, $12"},
		{0x8120, chip8cpu.LdInst.Name + " V1, V2"},
		{0x8121, chip8cpu.OrInst.Name + " V1, V2"},
		{0x8122, chip8cpu.AndInst.Name + " V1, V2"},
		{0x8123, chip8cpu.XorInst.Name + " V1, V2"},
		{0x8124, chip8cpu.AddInst.Name + " V1, V2"},
		{0x8125, chip8cpu.SubInst.Name + " V1, V2"},
		{0x8126, chip8cpu.ShrInst.Name + " V1"},
		{0x8127, chip8cpu.SubnInst.Name + " V1, V2"},
		{0x812E, chip8cpu.ShlInst.Name + " V1"},
		{0xA050, chip8cpu.LdInst.Name + " I, $050"},
		{0xC3FF, chip8cpu.RndInst.Name + " V3, $FF"},
		{0xD015, chip8cpu.DrwInst.Name + " V0, V1, $5"},
		{0xE49E, chip8cpu.SkpInst.Name + " V4"},
		{0xE4A1, chip8cpu.SknpInst.Name + " V4"},
		{0xF507, chip8cpu.LdInst.Name + " V5, DT"},
		{0xF50A, chip8cpu.LdInst.Name + " V5, K"},
		{0xF515, chip8cpu.LdInst.Name + " DT, V5"},
		{0xF518, chip8cpu.LdInst.Name + " ST, V5"},
		{0xF51E, chip8cpu.AddInst.Name + " I, V5"},
		{0xF529, chip8cpu.LdInst.Name + " F, V5"},
		{0xF533, chip8cpu.LdInst.Name + " B, V5"},
		{0xF555, chip8cpu.LdInst.Name + " [I], V5"},
		{0xF565, chip8cpu.LdInst.Name + " V5, [I]"},
	}

	for _, tt := range tests {
		t.Run(tt.expected, func(t *testing.T) {
			ins, err := Decode(tt.word)
			assert.NoError(t, err)
			assert.Equal(t, tt.expected, ins.String())
		})
	}
}
