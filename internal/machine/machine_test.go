package machine

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/retroenv/retrogolib/assert"
)

func TestNew(t *testing.T) {
	m := New()

	assert.Equal(t, uint16(ProgramStart), m.PC())
	assert.Equal(t, uint16(0), m.Index())
	assert.Equal(t, 0, m.Stack().Depth())
	assert.Equal(t, byte(0), m.DelayTimer())
	assert.Equal(t, byte(0), m.SoundTimer())
	assert.False(t, m.ProgramLoaded())
	assert.True(t, m.Display().Dirty())

	fontData, err := m.ReadMemoryRange(FontStart, len(font))
	assert.NoError(t, err)
	if diff := cmp.Diff(font[:], fontData); diff != "" {
		t.Errorf("font: (-want, +got)\n%s", diff)
	}

	rest, err := m.ReadMemoryRange(len(font), MemorySize-len(font))
	assert.NoError(t, err)
	if diff := cmp.Diff(make([]byte, MemorySize-len(font)), rest); diff != "" {
		t.Errorf("memory not zeroed: (-want, +got)\n%s", diff)
	}
}

func TestNewWithProgramBase(t *testing.T) {
	tests := []struct {
		name    string
		base    uint16
		wantErr bool
	}{
		{"default base", ProgramStart, false},
		{"ETI 660 base", 0x600, false},
		{"first byte after font", 0x50, false},
		{"inside font", 0x4F, true},
		{"past memory", MemorySize, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, err := NewWithProgramBase(tt.base)
			if tt.wantErr {
				assert.True(t, errors.Is(err, ErrOutOfRange))
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.base, m.PC())
			assert.Equal(t, tt.base, m.ProgramBase())
		})
	}
}

func TestLoadProgram(t *testing.T) {
	tests := []struct {
		name    string
		size    int
		wantErr error
	}{
		{"single instruction", 2, nil},
		{"fills memory", MemorySize - ProgramStart, nil},
		{"one byte too large", MemorySize - ProgramStart + 1, ErrProgramTooLarge},
		{"empty", 0, ErrEmptyProgram},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := New()
			program := make([]byte, tt.size)
			for i := range program {
				program[i] = byte(i + 1)
			}

			err := m.LoadProgram(program)
			if tt.wantErr != nil {
				assert.True(t, errors.Is(err, tt.wantErr))
				assert.False(t, m.ProgramLoaded())

				b, err := m.ReadMemory(ProgramStart)
				assert.NoError(t, err)
				assert.Equal(t, byte(0), b)
				return
			}

			assert.NoError(t, err)
			assert.True(t, m.ProgramLoaded())
			loaded, err := m.ReadMemoryRange(ProgramStart, tt.size)
			assert.NoError(t, err)
			if diff := cmp.Diff(program, loaded); diff != "" {
				t.Errorf("program: (-want, +got)\n%s", diff)
			}
		})
	}
}

func TestReset(t *testing.T) {
	m := New()
	assert.NoError(t, m.LoadProgram([]byte{0x12, 0x00}))
	assert.NoError(t, m.SetRegister(3, 0x42))
	assert.NoError(t, m.Stack().Push(0x202))
	assert.NoError(t, m.Keypad().SetKey(0xA, true))
	m.SetIndex(0x300)
	m.SetPC(0x400)
	m.SetDelayTimer(10)
	m.SetSoundTimer(20)
	m.RaiseBeep()
	m.Display().DrawSprite(0, 0, []byte{0xFF})

	m.Reset()

	assert.Equal(t, [RegisterCount]byte{}, m.Registers())
	assert.Equal(t, uint16(0), m.Index())
	assert.Equal(t, uint16(ProgramStart), m.PC())
	assert.Equal(t, 0, m.Stack().Depth())
	assert.Equal(t, byte(0), m.DelayTimer())
	assert.Equal(t, byte(0), m.SoundTimer())
	assert.False(t, m.ConsumeBeep())
	assert.Equal(t, Keys{}, m.Keypad().State())
	assert.Equal(t, byte(0), m.Display().Pixel(0, 0))
	assert.False(t, m.ProgramLoaded())

	b, err := m.ReadMemory(ProgramStart)
	assert.NoError(t, err)
	assert.Equal(t, byte(0), b)
}

func TestMemoryBounds(t *testing.T) {
	m := New()

	assert.NoError(t, m.WriteMemory(MemorySize-1, 0xAB))
	b, err := m.ReadMemory(MemorySize - 1)
	assert.NoError(t, err)
	assert.Equal(t, byte(0xAB), b)

	tests := []struct {
		name string
		fn   func() error
	}{
		{"read past end", func() error { _, err := m.ReadMemory(MemorySize); return err }},
		{"read negative", func() error { _, err := m.ReadMemory(-1); return err }},
		{"write past end", func() error { return m.WriteMemory(MemorySize, 1) }},
		{"range past end", func() error { _, err := m.ReadMemoryRange(MemorySize-2, 3); return err }},
		{"negative range", func() error { _, err := m.ReadMemoryRange(0, -1); return err }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.True(t, errors.Is(tt.fn(), ErrOutOfRange))
		})
	}
}

func TestRegisters(t *testing.T) {
	m := New()

	for x := range uint8(RegisterCount) {
		assert.NoError(t, m.SetRegister(x, x*2))
	}
	for x := range uint8(RegisterCount) {
		v, err := m.Register(x)
		assert.NoError(t, err)
		assert.Equal(t, x*2, v)
	}

	m.SetFlag(1)
	flag, err := m.Register(FlagRegister)
	assert.NoError(t, err)
	assert.Equal(t, byte(1), flag)

	_, err = m.Register(RegisterCount)
	assert.True(t, errors.Is(err, ErrOutOfRange))
	assert.True(t, errors.Is(m.SetRegister(RegisterCount, 1), ErrOutOfRange))
}

func TestConsumeBeep(t *testing.T) {
	m := New()
	assert.False(t, m.ConsumeBeep())

	m.RaiseBeep()
	assert.True(t, m.ConsumeBeep())
	assert.False(t, m.ConsumeBeep())
}

func TestGlyphAddress(t *testing.T) {
	assert.Equal(t, uint16(0), GlyphAddress(0))
	assert.Equal(t, uint16(0x0A*GlyphSize), GlyphAddress(0x0A))
	assert.Equal(t, uint16(0x0F*GlyphSize), GlyphAddress(0x0F))
	assert.Equal(t, uint16(0x03*GlyphSize), GlyphAddress(0x13))
}

func TestSessionsAreIndependent(t *testing.T) {
	first := New()
	second := New()

	assert.NoError(t, first.SetRegister(0, 0x11))
	assert.NoError(t, first.WriteMemory(0x300, 0x22))

	v, err := second.Register(0)
	assert.NoError(t, err)
	assert.Equal(t, byte(0), v)
	b, err := second.ReadMemory(0x300)
	assert.NoError(t, err)
	assert.Equal(t, byte(0), b)
}
