// Package main implements a CHIP-8 emulator
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/koushik255/chip8go/internal/config"
	"github.com/koushik255/chip8go/internal/frontend"
	"github.com/koushik255/chip8go/internal/frontend/pixelui"
	"github.com/koushik255/chip8go/internal/frontend/sdlui"
	"github.com/koushik255/chip8go/internal/frontend/termui"
	"github.com/koushik255/chip8go/internal/runner"
	"github.com/koushik255/chip8go/pkg/chip8"
	"github.com/koushik255/chip8go/pkg/debugger"
	"github.com/pkg/errors"
	"github.com/retroenv/retrogolib/app"
	"github.com/retroenv/retrogolib/buildinfo"
	"github.com/retroenv/retrogolib/log"
)

const title = "CHIP-8 Emulator"

var (
	version = "dev"
	commit  = ""
	date    = ""
)

func main() {
	ctx := app.Context()

	opts, err := config.ParseFlags(os.Args)
	if err != nil {
		logger := config.CreateLogger(opts.Debug, opts.Quiet)
		var usageErr *config.UsageError
		if errors.As(err, &usageErr) {
			printBanner(opts)
			usageErr.ShowUsage()
		} else {
			logger.Error("Invalid options", log.Err(err))
		}
		os.Exit(1)
	}

	if opts.Version {
		fmt.Printf("version: %s\n", buildinfo.Version(version, commit, date))
		return
	}

	logger := config.CreateLogger(opts.Debug, opts.Quiet)

	if opts.Disasm {
		if err := listROM(opts.ROM); err != nil {
			logger.Error("Disassembling failed", log.Err(err))
			os.Exit(1)
		}
		return
	}

	printBanner(opts)

	// pixelgl needs the main thread for the whole lifetime of the window
	if opts.Frontend == config.FrontendPixel {
		pixelui.Run(func() {
			err = emulate(ctx, logger, opts)
		})
	} else {
		err = emulate(ctx, logger, opts)
	}

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

func printBanner(opts config.Options) {
	if opts.Quiet {
		return
	}
	fmt.Println("[------------------------]")
	fmt.Println("[ chip8 - CHIP-8 emulator ]")
	fmt.Printf("[------------------------]\n\n")
	fmt.Printf("version: %s\n\n", buildinfo.Version(version, commit, date))
}

func listROM(path string) error {
	rom, err := os.ReadFile(path)
	if err != nil {
		return errors.Wrap(err, "reading rom")
	}
	if len(rom) > chip8.MaxROMSize {
		return errors.Wrapf(chip8.ErrROMTooLarge, "%d bytes (max: %d)", len(rom), chip8.MaxROMSize)
	}
	return chip8.Listing(os.Stdout, rom)
}

func emulate(ctx context.Context, logger *log.Logger, opts config.Options) error {
	machine := chip8.New(logger, chip8.Options{
		Strict: opts.Strict,
		Seed:   opts.Seed,
	})
	if err := machine.LoadFile(opts.ROM); err != nil {
		return err
	}

	r := &runner.Runner{
		Machine:        machine,
		Logger:         logger,
		CyclesPerFrame: opts.CyclesPerFrame,
		FrameRate:      opts.FrameRate,
	}

	if opts.UsesDebugger() {
		dbg := debugger.New(logger)
		dbg.Trace = opts.Trace
		for _, addr := range opts.Breakpoints {
			dbg.AddBreakpoint(addr)
		}
		for _, w := range opts.Watchpoints {
			dbg.AddWatchpoint(w.Addr, w.Type)
		}
		r.Debugger = dbg
	}

	fe, err := newFrontend(opts)
	if err != nil {
		return err
	}
	r.Frontend = fe

	logger.Info("Starting",
		log.String("rom", opts.ROM),
		log.String("frontend", opts.Frontend),
		log.Int("cycles", opts.CyclesPerFrame),
		log.Int("fps", opts.FrameRate))

	err = r.Run(ctx)
	if closeErr := fe.Close(); closeErr != nil && err == nil {
		err = errors.Wrap(closeErr, "closing frontend")
	}
	return err
}

func newFrontend(opts config.Options) (frontend.Frontend, error) {
	switch opts.Frontend {
	case config.FrontendSDL:
		return sdlui.New(title, opts.Scale)
	case config.FrontendTerm:
		return termui.New(os.Stdin, os.Stdout, opts.HoldFrames)
	default:
		return pixelui.New(title, opts.Scale)
	}
}
