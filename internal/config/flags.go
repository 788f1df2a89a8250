package config

import (
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/koushik255/chip8go/pkg/chip8"
	"github.com/koushik255/chip8go/pkg/debugger"
	"github.com/pkg/errors"
)

// ParseFlags parses the command line in args, args[0] being the program
// name, and returns the validated options.
func ParseFlags(args []string) (Options, error) {
	flags := flag.NewFlagSet(args[0], flag.ContinueOnError)
	flags.SetOutput(io.Discard)

	var opts Options
	var breaks, watches string
	readOptionFlags(flags, &opts, &breaks, &watches)

	if err := flags.Parse(args[1:]); err != nil {
		msg := ""
		if !errors.Is(err, flag.ErrHelp) {
			msg = err.Error()
		}
		return opts, &UsageError{flags: flags, msg: msg}
	}

	rest := flags.Args()
	if opts.Version {
		return opts, nil
	}
	if len(rest) != 1 {
		return opts, &UsageError{flags: flags, msg: "expected exactly one ROM file"}
	}
	opts.ROM = rest[0]

	var err error
	if opts.Breakpoints, err = parseAddresses(breaks); err != nil {
		return opts, errors.WithMessage(err, "invalid -break")
	}
	if opts.Watchpoints, err = parseWatches(watches); err != nil {
		return opts, errors.WithMessage(err, "invalid -watch")
	}

	if err := validate(&opts); err != nil {
		return opts, err
	}
	return opts, nil
}

// UsageError represents an error that should show usage information
type UsageError struct {
	flags *flag.FlagSet
	msg   string
}

func (e *UsageError) Error() string {
	if e.msg == "" {
		return "usage requested"
	}
	return e.msg
}

// ShowUsage prints the reason, the usage line and all flag defaults to
// stderr.
func (e *UsageError) ShowUsage() {
	if e.msg != "" {
		fmt.Fprintf(os.Stderr, "%s\n\n", e.msg)
	}
	fmt.Fprintf(os.Stderr, "usage: chip8 [options] <rom file>\n\n")
	e.flags.SetOutput(os.Stderr)
	e.flags.PrintDefaults()
	fmt.Fprintln(os.Stderr)
}

func readOptionFlags(flags *flag.FlagSet, opts *Options, breaks, watches *string) {
	flags.StringVar(&opts.Frontend, "frontend", FrontendPixel, "display frontend (pixel/sdl/term)")
	flags.IntVar(&opts.Scale, "scale", DefaultScale, "window pixels per CHIP-8 pixel")
	flags.IntVar(&opts.CyclesPerFrame, "cycles", DefaultCyclesPerFrame, "instructions executed per frame")
	flags.IntVar(&opts.FrameRate, "fps", DefaultFrameRate, "frames per second, also the timer rate")
	flags.IntVar(&opts.HoldFrames, "hold", DefaultHoldFrames, "frames a key stays pressed after a keystroke in the terminal frontend")
	flags.Int64Var(&opts.Seed, "seed", 0, "seed for the random number instruction, 0 seeds from the clock")
	flags.BoolVar(&opts.Strict, "strict", false, "stop on unknown opcodes instead of skipping them")
	flags.BoolVar(&opts.Debug, "debug", false, "enable debugging options for extended logging")
	flags.BoolVar(&opts.Quiet, "q", false, "perform operations quietly")
	flags.BoolVar(&opts.Trace, "trace", false, "log every executed instruction, implies -debug")
	flags.StringVar(breaks, "break", "", "comma separated breakpoint addresses, for example 200,2a4")
	flags.StringVar(watches, "watch", "", "comma separated watchpoints as addr[:r|w|rw], for example 300:w")
	flags.BoolVar(&opts.Disasm, "disasm", false, "print a disassembly listing of the ROM and exit")
	flags.BoolVar(&opts.Version, "version", false, "print the version and exit")
}

func validate(opts *Options) error {
	opts.Frontend = strings.ToLower(opts.Frontend)
	switch opts.Frontend {
	case FrontendPixel, FrontendSDL, FrontendTerm:
	default:
		return errors.Errorf("unsupported frontend: %s. Valid options: %s",
			opts.Frontend, strings.Join([]string{FrontendPixel, FrontendSDL, FrontendTerm}, ", "))
	}

	if opts.Scale < 1 {
		return errors.Errorf("-scale must be at least 1, got %d", opts.Scale)
	}
	if opts.CyclesPerFrame < 1 {
		return errors.Errorf("-cycles must be at least 1, got %d", opts.CyclesPerFrame)
	}
	if opts.FrameRate < 1 || opts.FrameRate > 1000 {
		return errors.Errorf("-fps must be between 1 and 1000, got %d", opts.FrameRate)
	}
	if opts.HoldFrames < 1 {
		return errors.Errorf("-hold must be at least 1, got %d", opts.HoldFrames)
	}

	if opts.Trace {
		opts.Debug = true
	}
	if opts.Debug && opts.Quiet {
		return errors.New("-debug and -q can not be combined")
	}
	return nil
}

// parseAddress reads a hexadecimal address with an optional $ or 0x prefix.
func parseAddress(s string) (uint16, error) {
	s = strings.TrimSpace(s)
	s = strings.TrimPrefix(s, "$")
	s = strings.TrimPrefix(strings.ToLower(s), "0x")

	addr, err := strconv.ParseUint(s, 16, 16)
	if err != nil {
		return 0, errors.Wrapf(err, "parsing address '%s'", s)
	}
	if addr > chip8.AddressMask {
		return 0, errors.Errorf("address $%X outside of memory", addr)
	}
	return uint16(addr), nil
}

func parseAddresses(list string) ([]uint16, error) {
	if list == "" {
		return nil, nil
	}

	var addrs []uint16
	for _, s := range strings.Split(list, ",") {
		addr, err := parseAddress(s)
		if err != nil {
			return nil, err
		}
		addrs = append(addrs, addr)
	}
	return addrs, nil
}

func parseWatches(list string) ([]Watch, error) {
	if list == "" {
		return nil, nil
	}

	var watches []Watch
	for _, s := range strings.Split(list, ",") {
		addrPart, typePart, _ := strings.Cut(s, ":")

		addr, err := parseAddress(addrPart)
		if err != nil {
			return nil, err
		}

		w := Watch{Addr: addr}
		switch strings.ToLower(strings.TrimSpace(typePart)) {
		case "r", "read":
			w.Type = debugger.ReadWatch
		case "w", "write":
			w.Type = debugger.WriteWatch
		case "", "rw", "readwrite":
			w.Type = debugger.ReadWriteWatch
		default:
			return nil, errors.Errorf("unknown watch type '%s'", typePart)
		}
		watches = append(watches, w)
	}
	return watches, nil
}
