// Package config handles application configuration and setup
package config

import (
	"errors"
	"fmt"

	"github.com/retroenv/retrochip8/internal/options"
	"github.com/retroenv/retrogolib/log"
)

// ErrInvalidOption is returned for option values that can not be used for an emulation session.
var ErrInvalidOption = errors.New("invalid option")

// CreateLogger creates a logger with appropriate settings
func CreateLogger(debug, quiet bool) *log.Logger {
	cfg := log.DefaultConfig()
	if debug {
		cfg.Level = log.DebugLevel
	} else if quiet {
		cfg.Level = log.ErrorLevel
	}
	return log.NewWithConfig(cfg)
}

// Validate checks the option combinations of the program options.
func Validate(opts options.Program) error {
	switch {
	case opts.ClockHz <= 0:
		return fmt.Errorf("clock rate %d Hz: %w", opts.ClockHz, ErrInvalidOption)
	case opts.TimerHz <= 0:
		return fmt.Errorf("timer rate %d Hz: %w", opts.TimerHz, ErrInvalidOption)
	case opts.TimerHz > opts.ClockHz:
		return fmt.Errorf("timer rate %d Hz exceeds clock rate %d Hz: %w", opts.TimerHz, opts.ClockHz, ErrInvalidOption)
	case opts.Headless && !opts.Disassemble && opts.MaxCycles == 0:
		return fmt.Errorf("headless mode requires a cycle limit: %w", ErrInvalidOption)
	case opts.Trace && !opts.Debug:
		return fmt.Errorf("instruction trace requires debug logging: %w", ErrInvalidOption)
	}
	return nil
}
