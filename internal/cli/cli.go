// Package cli handles command line interface logic
package cli

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/retroenv/retrochip8/internal/options"
)

// ParseFlags parses command line flags and returns the program options.
func ParseFlags() (options.Program, error) {
	return parseArgs(os.Args)
}

func parseArgs(osArgs []string) (options.Program, error) {
	flags := flag.NewFlagSet(osArgs[0], flag.ContinueOnError)
	var opts options.Program
	readOptionFlags(flags, &opts)

	err := flags.Parse(osArgs[1:])
	args := flags.Args()
	if err != nil || (len(args) == 0 && opts.Input == "") {
		return opts, &UsageError{flags: flags}
	}

	if err := validateArgs(args); err != nil {
		return opts, err
	}

	if len(args) > 0 {
		opts.Input = args[0]
	}
	opts.System = strings.ToLower(opts.System)

	return opts, nil
}

// UsageError represents an error that should show usage information
type UsageError struct {
	flags *flag.FlagSet
	msg   string
}

func (e *UsageError) Error() string {
	return e.msg
}

func (e *UsageError) ShowUsage() {
	fmt.Printf("usage: retrochip8 [options] <ROM file to run>\n\n")
	if e.flags != nil {
		e.flags.PrintDefaults()
	}
	fmt.Println()
}

// validateArgs checks if arguments are in correct order
func validateArgs(args []string) error {
	for i, arg := range args {
		if i > 0 && arg[0] == '-' {
			return &UsageError{
				msg: fmt.Sprintf("Potential argument %s found after ROM file, please pass the ROM file as last argument", arg),
			}
		}
	}
	return nil
}

func readOptionFlags(flags *flag.FlagSet, opts *options.Program) {
	flags.StringVar(&opts.Input, "i", "", "name of the input ROM file")
	flags.StringVar(&opts.System, "s", "", "system of the ROM (chip8) - if not auto-detected from file extension")
	flags.IntVar(&opts.ClockHz, "clock", options.DefaultClockHz, "instructions executed per second")
	flags.IntVar(&opts.TimerHz, "timer", options.DefaultTimerHz, "delay and sound timer rate and frame rate in Hz")
	flags.BoolVar(&opts.CoupledTimers, "coupled-timers", false, "tick timers once per executed instruction instead of at the timer rate")
	flags.Uint64Var(&opts.MaxCycles, "cycles", 0, "stop after this many cycles (0: unlimited)")
	flags.Uint64Var(&opts.Seed, "seed", 0, "seed of the random number generator (0: time based)")
	flags.BoolVar(&opts.Headless, "headless", false, "run unthrottled without terminal input and output, print the final frame")
	flags.BoolVar(&opts.Trace, "trace", false, "log every executed instruction, requires -debug")
	flags.BoolVar(&opts.Disassemble, "disasm", false, "print an assembly listing of the ROM instead of running it")
	flags.BoolVar(&opts.NoOffsets, "nooffsets", false, "do not output addresses and opcode bytes in listing comments")
	flags.BoolVar(&opts.ZeroBytes, "z", false, "output the trailing zero bytes of the ROM in the listing")
	flags.BoolVar(&opts.Debug, "debug", false, "enable debugging options for extended logging")
	flags.BoolVar(&opts.Quiet, "q", false, "perform operations quietly")
}
