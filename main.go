// Package main implements the main entry point for a Chip-8 emulator running in a text terminal
package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/retroenv/retrochip8/internal/app"
	"github.com/retroenv/retrochip8/internal/cli"
	"github.com/retroenv/retrochip8/internal/config"
	"github.com/retroenv/retrochip8/internal/options"
	"github.com/retroenv/retrochip8/internal/pipeline"
	"github.com/retroenv/retrochip8/internal/terminal"
	retroapp "github.com/retroenv/retrogolib/app"
	"github.com/retroenv/retrogolib/log"
)

var (
	version = "dev"
	commit  = ""
	date    = ""
)

func main() {
	ctx := retroapp.Context()

	opts, err := cli.ParseFlags()
	if err != nil {
		logger := config.CreateLogger(opts.Debug, opts.Quiet)
		var usageErr *cli.UsageError
		if errors.As(err, &usageErr) {
			app.PrintBanner(logger, opts, version, commit, date)
			usageErr.ShowUsage()
		} else {
			logger.Fatal(err.Error())
		}
		os.Exit(1)
	}

	logger := config.CreateLogger(opts.Debug, opts.Quiet)
	app.PrintBanner(logger, opts, version, commit, date)

	if err := config.Validate(opts); err != nil {
		logger.Fatal(err.Error())
	}

	if opts.Disassemble {
		if err := pipeline.New(logger).Disassemble(opts, os.Stdout); err != nil {
			logger.Error("Disassembling failed", log.Err(err))
			os.Exit(1)
		}
		return
	}

	result, err := run(ctx, logger, opts)
	app.PrintResult(logger, opts, result)
	if err != nil {
		// Handle context cancellation (Ctrl+C) gracefully
		if errors.Is(err, context.Canceled) {
			logger.Info("Emulation cancelled")
			return
		}
		logger.Error("Emulation failed", log.Err(err))
		os.Exit(1)
	}
}

// run executes the emulation session either on the terminal or headless.
func run(ctx context.Context, logger *log.Logger, opts options.Program) (*pipeline.Result, error) {
	p := pipeline.New(logger)

	if opts.Headless {
		result, err := p.Execute(ctx, opts, terminal.NoInput{}, terminal.Discard{})
		if result != nil {
			fmt.Print(terminal.Render(result.Machine.Display()))
		}
		return result, err //nolint:wrapcheck // pipeline errors are wrapped
	}

	raw, err := terminal.EnterRawMode(int(os.Stdin.Fd()))
	if err != nil {
		return nil, fmt.Errorf("preparing terminal: %w", err)
	}
	defer func() {
		if err := raw.Restore(); err != nil {
			logger.Error("Restoring terminal failed", log.Err(err))
		}
	}()

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	keyboard := terminal.NewKeyboard(os.Stdin, terminal.DefaultHoldTime)
	keyboard.Start(ctx)

	result, err := p.Execute(ctx, opts, keyboard, terminal.NewDisplay(os.Stdout))
	return result, err //nolint:wrapcheck // pipeline errors are wrapped
}
