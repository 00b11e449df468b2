// Package interpreter implements the CHIP-8 fetch-decode-execute cycle.
package interpreter

import (
	"fmt"
	"math/rand/v2"

	"github.com/retroenv/retrochip8/internal/arch/chip8"
	"github.com/retroenv/retrochip8/internal/machine"
	"github.com/retroenv/retrogolib/log"
)

// Status describes the outcome of a successful cycle.
type Status int

const (
	// StatusRunning indicates that the instruction completed and the next one can be fetched.
	StatusRunning Status = iota
	// StatusAwaitingInput indicates that a key wait instruction found no pressed key.
	// The program counter was not advanced, the caller should refresh the keypad
	// and step again.
	StatusAwaitingInput
)

func (s Status) String() string {
	switch s {
	case StatusRunning:
		return "running"
	case StatusAwaitingInput:
		return "awaiting input"
	default:
		return fmt.Sprintf("status(%d)", int(s))
	}
}

// Option configures an interpreter.
type Option func(*Interpreter)

// WithRandom sets the random source used by the random instruction.
func WithRandom(rng *rand.Rand) Option {
	return func(it *Interpreter) {
		it.rng = rng
	}
}

// WithDecoupledTimers disables ticking the timers once per executed instruction.
// The caller is then responsible for calling TickTimers at a fixed rate.
func WithDecoupledTimers() Option {
	return func(it *Interpreter) {
		it.tickPerInstruction = false
	}
}

// WithTrace enables debug logging of every executed instruction.
func WithTrace() Option {
	return func(it *Interpreter) {
		it.trace = true
	}
}

// Interpreter executes instructions against a machine it exclusively owns.
type Interpreter struct {
	logger  *log.Logger
	machine *machine.Machine
	rng     *rand.Rand

	tickPerInstruction bool
	trace              bool

	// state of the instruction currently executing
	next   uint16
	status Status

	cycles        uint64
	unknownOpcode uint64
}

// New returns an interpreter for the given machine. By default timers are
// ticked once per executed instruction and random numbers use a time seeded source.
func New(logger *log.Logger, m *machine.Machine, opts ...Option) *Interpreter {
	it := &Interpreter{
		logger:             logger,
		machine:            m,
		tickPerInstruction: true,
	}
	for _, opt := range opts {
		opt(it)
	}
	if it.rng == nil {
		it.rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	return it
}

// Machine returns the machine the interpreter executes on.
func (it *Interpreter) Machine() *machine.Machine {
	return it.machine
}

// Cycles returns the number of completed cycles.
func (it *Interpreter) Cycles() uint64 {
	return it.cycles
}

// UnknownOpcodes returns the number of skipped unknown opcodes.
func (it *Interpreter) UnknownOpcodes() uint64 {
	return it.unknownOpcode
}

// Step fetches, decodes and executes a single instruction.
// Unknown opcodes are logged and skipped. All returned errors are fatal for
// the session and are of type *CycleError unless no program is loaded.
func (it *Interpreter) Step() (Status, error) {
	m := it.machine
	if !m.ProgramLoaded() {
		return StatusRunning, ErrNoProgram
	}

	pc := m.PC()
	word, err := it.fetch(pc)
	if err != nil {
		return StatusRunning, &CycleError{PC: pc, Err: err}
	}

	it.next = pc + chip8.OpcodeSize
	it.status = StatusRunning

	ins, err := chip8.Decode(word)
	if err != nil {
		it.unknownOpcode++
		it.logger.Warn("Skipping unknown opcode",
			log.Hex("pc", pc),
			log.Hex("opcode", word))
	} else {
		if it.trace {
			it.logger.Debug("Executing",
				log.Hex("pc", pc),
				log.Hex("opcode", word),
				log.String("instruction", ins.String()))
		}
		if err := handlers[ins.Kind](it, ins); err != nil {
			return StatusRunning, &CycleError{PC: pc, Opcode: word, Err: fmt.Errorf("%s: %w", ins.Kind, err)}
		}
	}

	m.SetPC(it.next)
	it.cycles++

	// a pending key wait ends the cycle before the timers are ticked
	if it.status == StatusAwaitingInput {
		return it.status, nil
	}
	if it.tickPerInstruction {
		it.TickTimers()
	}
	return it.status, nil
}

// fetch reads the big-endian instruction word at the given address.
func (it *Interpreter) fetch(pc uint16) (uint16, error) {
	if int(pc)+1 >= machine.MemorySize {
		return 0, fmt.Errorf("reading instruction at $%04X: %w", pc, ErrFetchOutOfRange)
	}
	data, err := it.machine.ReadMemoryRange(int(pc), chip8.OpcodeSize)
	if err != nil {
		return 0, fmt.Errorf("reading instruction at $%04X: %w", pc, ErrFetchOutOfRange)
	}
	return chip8.Word(data[0], data[1]), nil
}
