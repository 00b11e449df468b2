// Package options contains the program options.
package options

import (
	"time"

	"github.com/retroenv/retrogolib/arch"
)

// Default clock rates.
const (
	DefaultClockHz = 500
	DefaultTimerHz = 60
)

// Parameters contains file path options.
type Parameters struct {
	Input  string `flag:"i" usage:"input ROM file"`
	System string `flag:"s" usage:"target system: chip8 (default: auto-detect)"`
}

// Flags contains behavior options.
type Flags struct {
	ClockHz       int    `flag:"clock" usage:"instructions executed per second" default:"500"`
	TimerHz       int    `flag:"timer" usage:"delay and sound timer rate in Hz" default:"60"`
	CoupledTimers bool   `flag:"coupled-timers" usage:"tick timers once per instruction instead of at the timer rate"`
	MaxCycles     uint64 `flag:"cycles" usage:"stop after this many cycles (0: unlimited)"`
	Seed          uint64 `flag:"seed" usage:"random number seed (0: time based)"`
	Headless      bool   `flag:"headless" usage:"run unthrottled without terminal input and output, print the final frame"`
	Trace         bool   `flag:"trace" usage:"log every executed instruction, requires -debug"`
	Disassemble   bool   `flag:"disasm" usage:"print an assembly listing of the ROM instead of running it"`
	NoOffsets     bool   `flag:"nooffsets" usage:"omit addresses and opcode bytes in listing comments"`
	ZeroBytes     bool   `flag:"z" usage:"include the trailing zero bytes in the listing"`
	Debug         bool   `flag:"debug" usage:"enable debug logging"`
	Quiet         bool   `flag:"q" usage:"quiet mode"`
}

// Program options of the emulator.
type Program struct {
	Parameters
	Flags
}

// Emulator defines options to control an emulation session.
type Emulator struct {
	System arch.System

	CyclesPerFrame int           // instructions executed between two timer ticks
	FrameInterval  time.Duration // real time per frame, 0 runs unthrottled
	CoupledTimers  bool          // tick timers once per instruction instead of once per frame
	MaxCycles      uint64        // 0: unlimited
	Seed           uint64        // 0: time based
	Trace          bool
}

// NewEmulator returns emulator options derived from the program options.
// The timer rate defines the frame rate, the clock rate is spread evenly over the frames.
func NewEmulator(opts Program) Emulator {
	e := Emulator{
		System:         arch.System(opts.System),
		CyclesPerFrame: 1,
		CoupledTimers:  opts.CoupledTimers,
		MaxCycles:      opts.MaxCycles,
		Seed:           opts.Seed,
		Trace:          opts.Trace,
	}
	if opts.TimerHz > 0 {
		e.CyclesPerFrame = max(1, opts.ClockHz/opts.TimerHz)
		if !opts.Headless {
			e.FrameInterval = time.Second / time.Duration(opts.TimerHz)
		}
	}
	return e
}
