// Package pipeline orchestrates the emulation session stages.
package pipeline

import (
	"context"
	"fmt"
	"io"
	"math/rand/v2"
	"time"

	"github.com/retroenv/retrochip8/internal/detector"
	"github.com/retroenv/retrochip8/internal/interpreter"
	"github.com/retroenv/retrochip8/internal/listing"
	"github.com/retroenv/retrochip8/internal/loader"
	"github.com/retroenv/retrochip8/internal/machine"
	"github.com/retroenv/retrochip8/internal/options"
	"github.com/retroenv/retrogolib/arch"
	"github.com/retroenv/retrogolib/log"
)

// KeySource provides the host keypad state.
type KeySource interface {
	Keys() machine.Keys
	QuitRequested() bool
}

// Sink presents frames and beeps to the user.
type Sink interface {
	Present(fb *machine.Framebuffer) error
	Beep() error
}

// Result contains the state of a finished emulation session.
type Result struct {
	Cycles         uint64
	Frames         uint64
	UnknownOpcodes uint64
	Machine        *machine.Machine
}

// Pipeline orchestrates the complete emulation workflow.
type Pipeline struct {
	logger   *log.Logger
	detector *detector.Detector
	loader   *loader.Loader
}

// New creates a new emulation pipeline.
func New(logger *log.Logger) *Pipeline {
	return &Pipeline{
		logger:   logger,
		detector: detector.New(logger),
		loader:   loader.New(),
	}
}

// Execute runs the complete emulation pipeline for the input file of the options.
func (p *Pipeline) Execute(ctx context.Context, opts options.Program, keys KeySource, sink Sink) (*Result, error) {
	system, err := p.detector.Detect(opts)
	if err != nil {
		return nil, fmt.Errorf("detecting system: %w", err)
	}

	m := machine.New()
	size, err := p.loader.LoadInto(m, opts.Input)
	if err != nil {
		return nil, fmt.Errorf("loading program: %w", err)
	}

	p.printInfo(opts, system, size, m.ProgramBase())

	emu := options.NewEmulator(opts)
	emu.System = system
	return p.Run(ctx, m, emu, keys, sink)
}

// Disassemble writes an assembly listing of the input file of the options.
func (p *Pipeline) Disassemble(opts options.Program, writer io.Writer) error {
	system, err := p.detector.Detect(opts)
	if err != nil {
		return fmt.Errorf("detecting system: %w", err)
	}

	program, err := p.loader.Load(opts.Input)
	if err != nil {
		return fmt.Errorf("loading program: %w", err)
	}
	if len(program) > machine.MemorySize-machine.ProgramStart {
		return fmt.Errorf("program of %d bytes: %w", len(program), machine.ErrProgramTooLarge)
	}

	p.printInfo(opts, system, len(program), machine.ProgramStart)

	w := listing.New(writer, listing.Options{
		OffsetComments: !opts.NoOffsets,
		ZeroBytes:      opts.ZeroBytes,
	})
	if err := w.Write(machine.ProgramStart, program); err != nil {
		return fmt.Errorf("writing listing: %w", err)
	}
	return nil
}

// Run drives the interpreter of a machine with a loaded program until the
// cycle limit is reached, a quit is requested, the context is cancelled or a
// fatal error occurs. The result is returned in all cases.
func (p *Pipeline) Run(ctx context.Context, m *machine.Machine, emu options.Emulator,
	keys KeySource, sink Sink) (*Result, error) {

	it := interpreter.New(p.logger, m, interpreterOptions(emu)...)
	result := &Result{Machine: m}
	defer func() {
		result.Cycles = it.Cycles()
		result.UnknownOpcodes = it.UnknownOpcodes()
	}()

	var frameClock <-chan time.Time
	if emu.FrameInterval > 0 {
		ticker := time.NewTicker(emu.FrameInterval)
		defer ticker.Stop()
		frameClock = ticker.C
	}

	for {
		if err := ctx.Err(); err != nil {
			return result, err
		}
		if keys.QuitRequested() {
			p.logger.Debug("Quit requested", log.Int("cycles", int(it.Cycles())))
			return result, nil
		}

		done, err := runFrame(it, emu, keys)
		if err != nil {
			return result, fmt.Errorf("executing cycle: %w", err)
		}
		if !emu.CoupledTimers {
			it.TickTimers()
		}
		result.Frames++

		if err := present(m, sink); err != nil {
			return result, fmt.Errorf("presenting frame: %w", err)
		}
		if done {
			p.logger.Debug("Cycle limit reached", log.Int("cycles", int(it.Cycles())))
			return result, nil
		}

		if frameClock != nil {
			select {
			case <-ctx.Done():
				return result, ctx.Err()
			case <-frameClock:
			}
		}
	}
}

// runFrame executes the instructions of one frame. It returns early when the
// program waits for a key press or the cycle limit is reached.
func runFrame(it *interpreter.Interpreter, emu options.Emulator, keys KeySource) (bool, error) {
	m := it.Machine()
	for range max(1, emu.CyclesPerFrame) {
		if limitReached(it, emu) {
			return true, nil
		}

		m.Keypad().Set(keys.Keys())
		status, err := it.Step()
		if err != nil {
			return false, err //nolint:wrapcheck // wrapped by caller
		}
		if status == interpreter.StatusAwaitingInput {
			break
		}
	}
	return limitReached(it, emu), nil
}

func limitReached(it *interpreter.Interpreter, emu options.Emulator) bool {
	return emu.MaxCycles > 0 && it.Cycles() >= emu.MaxCycles
}

// present hands a changed framebuffer and a pending beep to the sink.
func present(m *machine.Machine, sink Sink) error {
	fb := m.Display()
	if fb.Dirty() {
		if err := sink.Present(fb); err != nil {
			return fmt.Errorf("drawing framebuffer: %w", err)
		}
		fb.ClearDirty()
	}
	if m.ConsumeBeep() {
		if err := sink.Beep(); err != nil {
			return fmt.Errorf("beeping: %w", err)
		}
	}
	return nil
}

// interpreterOptions converts the emulator options to interpreter options.
func interpreterOptions(emu options.Emulator) []interpreter.Option {
	var opts []interpreter.Option
	if !emu.CoupledTimers {
		opts = append(opts, interpreter.WithDecoupledTimers())
	}
	if emu.Seed != 0 {
		opts = append(opts, interpreter.WithRandom(rand.New(rand.NewPCG(emu.Seed, emu.Seed))))
	}
	if emu.Trace {
		opts = append(opts, interpreter.WithTrace())
	}
	return opts
}

// printInfo prints information about the ROM being processed.
func (p *Pipeline) printInfo(opts options.Program, system arch.System, size int, base uint16) {
	if opts.Quiet {
		return
	}

	p.logger.Info("Processing Chip-8 ROM",
		log.String("file", opts.Input),
		log.Stringer("system", system),
		log.Int("size", size),
		log.Hex("base", base),
	)
}
