// Package app provides the main application helpers for the emulator.
package app

import (
	"github.com/retroenv/retrochip8/internal/options"
	"github.com/retroenv/retrochip8/internal/pipeline"
	"github.com/retroenv/retrogolib/buildinfo"
	"github.com/retroenv/retrogolib/log"
)

// Name of the application.
const Name = "retrochip8"

// PrintBanner prints the application version information.
func PrintBanner(logger *log.Logger, opts options.Program, version, commit, date string) {
	if opts.Quiet {
		return
	}

	logger.Info(Name+" - Chip-8 emulator",
		log.String("version", buildinfo.Version(version, commit, date)))
}

// PrintResult prints the statistics of a finished emulation session.
func PrintResult(logger *log.Logger, opts options.Program, result *pipeline.Result) {
	if opts.Quiet || result == nil {
		return
	}

	logger.Info("Emulation finished",
		log.Int("cycles", int(result.Cycles)),
		log.Int("frames", int(result.Frames)),
		log.Hex("pc", result.Machine.PC()),
	)
	if result.UnknownOpcodes > 0 {
		logger.Warn("Unknown opcodes were skipped", log.Int("count", int(result.UnknownOpcodes)))
	}
}
