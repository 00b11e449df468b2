package machine

import (
	"fmt"
)

const (
	// MemorySize is the number of addressable bytes.
	MemorySize = 4096

	// ProgramStart is the default memory address where programs are loaded and execution begins.
	ProgramStart = 0x200

	// RegisterCount is the number of general-purpose registers V0-VF.
	RegisterCount = 16

	// FlagRegister is the index of VF, written by arithmetic, shift and draw instructions.
	FlagRegister = 0xF
)

// Machine is the complete CPU state of one emulation session.
// Every session owns its own instance, nothing is shared between machines.
type Machine struct {
	memory    [MemorySize]byte
	registers [RegisterCount]byte
	index     uint16
	pc        uint16

	stack      Stack
	delayTimer byte
	soundTimer byte
	beep       bool

	display Framebuffer
	keypad  Keypad

	programBase   uint16
	programLoaded bool
}

// New returns a machine that loads programs at ProgramStart.
func New() *Machine {
	m := &Machine{
		programBase: ProgramStart,
	}
	m.Reset()
	return m
}

// NewWithProgramBase returns a machine that loads programs at the given address.
// The base must be outside of the font area and inside memory.
func NewWithProgramBase(base uint16) (*Machine, error) {
	if int(base) < len(font) || int(base) >= MemorySize {
		return nil, fmt.Errorf("program base $%04X: %w", base, ErrOutOfRange)
	}
	m := &Machine{
		programBase: base,
	}
	m.Reset()
	return m, nil
}

// Reset re-initializes the machine: memory and all counters are zeroed,
// the font is loaded and the program counter points to the program base.
// A previously loaded program is discarded.
func (m *Machine) Reset() {
	m.memory = [MemorySize]byte{}
	copy(m.memory[FontStart:], font[:])
	m.registers = [RegisterCount]byte{}
	m.index = 0
	m.pc = m.programBase
	m.stack.reset()
	m.delayTimer = 0
	m.soundTimer = 0
	m.beep = false
	m.display.Clear()
	m.keypad.Set(Keys{})
	m.programLoaded = false
}

// LoadProgram copies a program image verbatim into memory starting at the program base.
// Nothing is written if the image does not fit.
func (m *Machine) LoadProgram(program []byte) error {
	if len(program) == 0 {
		return ErrEmptyProgram
	}
	available := MemorySize - int(m.programBase)
	if len(program) > available {
		return fmt.Errorf("program has %d bytes, %d bytes available at $%04X: %w",
			len(program), available, m.programBase, ErrProgramTooLarge)
	}
	copy(m.memory[m.programBase:], program)
	m.programLoaded = true
	return nil
}

// ProgramLoaded returns whether a program image has been loaded since the last reset.
func (m *Machine) ProgramLoaded() bool {
	return m.programLoaded
}

// ProgramBase returns the address programs are loaded at.
func (m *Machine) ProgramBase() uint16 {
	return m.programBase
}

// ReadMemory returns the byte at the given address.
func (m *Machine) ReadMemory(address int) (byte, error) {
	if address < 0 || address >= MemorySize {
		return 0, fmt.Errorf("reading memory at $%04X: %w", address, ErrOutOfRange)
	}
	return m.memory[address], nil
}

// WriteMemory sets the byte at the given address.
func (m *Machine) WriteMemory(address int, value byte) error {
	if address < 0 || address >= MemorySize {
		return fmt.Errorf("writing memory at $%04X: %w", address, ErrOutOfRange)
	}
	m.memory[address] = value
	return nil
}

// ReadMemoryRange returns a copy of length bytes starting at the given address.
func (m *Machine) ReadMemoryRange(address, length int) ([]byte, error) {
	if address < 0 || length < 0 || address+length > MemorySize {
		return nil, fmt.Errorf("reading %d bytes of memory at $%04X: %w", length, address, ErrOutOfRange)
	}
	data := make([]byte, length)
	copy(data, m.memory[address:address+length])
	return data, nil
}

// Register returns the value of register VX.
func (m *Machine) Register(x uint8) (byte, error) {
	if int(x) >= RegisterCount {
		return 0, fmt.Errorf("reading register V%d: %w", x, ErrOutOfRange)
	}
	return m.registers[x], nil
}

// SetRegister sets the value of register VX.
func (m *Machine) SetRegister(x uint8, value byte) error {
	if int(x) >= RegisterCount {
		return fmt.Errorf("writing register V%d: %w", x, ErrOutOfRange)
	}
	m.registers[x] = value
	return nil
}

// Registers returns a snapshot of all general-purpose registers.
func (m *Machine) Registers() [RegisterCount]byte {
	return m.registers
}

// SetFlag sets the flag register VF.
func (m *Machine) SetFlag(value byte) {
	m.registers[FlagRegister] = value
}

// Index returns the index register I.
func (m *Machine) Index() uint16 {
	return m.index
}

// SetIndex sets the index register I.
func (m *Machine) SetIndex(value uint16) {
	m.index = value
}

// PC returns the program counter.
func (m *Machine) PC() uint16 {
	return m.pc
}

// SetPC sets the program counter.
func (m *Machine) SetPC(address uint16) {
	m.pc = address
}

// Stack returns the call stack.
func (m *Machine) Stack() *Stack {
	return &m.stack
}

// DelayTimer returns the delay timer value.
func (m *Machine) DelayTimer() byte {
	return m.delayTimer
}

// SetDelayTimer sets the delay timer value.
func (m *Machine) SetDelayTimer(value byte) {
	m.delayTimer = value
}

// SoundTimer returns the sound timer value.
func (m *Machine) SoundTimer() byte {
	return m.soundTimer
}

// SetSoundTimer sets the sound timer value.
func (m *Machine) SetSoundTimer(value byte) {
	m.soundTimer = value
}

// RaiseBeep records a pending beep event for the presentation layer.
func (m *Machine) RaiseBeep() {
	m.beep = true
}

// ConsumeBeep returns whether a beep event is pending and clears it.
func (m *Machine) ConsumeBeep() bool {
	beep := m.beep
	m.beep = false
	return beep
}

// Display returns the framebuffer.
func (m *Machine) Display() *Framebuffer {
	return &m.display
}

// Keypad returns the keypad.
func (m *Machine) Keypad() *Keypad {
	return &m.keypad
}
