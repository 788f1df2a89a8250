// Package config handles command line options and application setup.
package config

import (
	"github.com/koushik255/chip8go/pkg/debugger"
	"github.com/retroenv/retrogolib/log"
)

// Supported frontends.
const (
	FrontendPixel = "pixel"
	FrontendSDL   = "sdl"
	FrontendTerm  = "term"
)

// Defaults for the emulation speed and window size.
const (
	DefaultScale          = 10
	DefaultCyclesPerFrame = 10
	DefaultFrameRate      = 60
	DefaultHoldFrames     = 6
)

// Watch is a watchpoint given on the command line.
type Watch struct {
	Addr uint16
	Type debugger.WatchType
}

// Options contains all program options.
type Options struct {
	ROM string

	Frontend       string
	Scale          int
	CyclesPerFrame int
	FrameRate      int
	HoldFrames     int // terminal frontend only
	Seed           int64

	Strict  bool
	Debug   bool
	Quiet   bool
	Trace   bool
	Disasm  bool
	Version bool

	Breakpoints []uint16
	Watchpoints []Watch
}

// UsesDebugger reports whether the options need a debugger attached.
func (o Options) UsesDebugger() bool {
	return o.Trace || len(o.Breakpoints) > 0 || len(o.Watchpoints) > 0
}

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
