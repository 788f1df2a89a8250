// Package chip8 implements the CHIP-8 virtual machine: register and memory
// state, the two-level opcode table, the instruction semantics and the
// fetch-decode-execute cycle.
//
// The machine is driven from outside: a caller writes the keypad state,
// calls Step once per emulated tick and reads the framebuffer and timers
// afterwards. Nothing in this package paces execution against a clock.
package chip8

import (
	"math/rand"
	"time"

	"github.com/retroenv/retrogolib/log"
)

const (
	// MemorySize is the size of the addressable memory in bytes.
	MemorySize = 4096

	// AddressMask reduces any address into the 4 KiB address space.
	AddressMask = MemorySize - 1

	// EntryAddress is where ROMs are loaded and where execution starts.
	EntryAddress = 0x200

	// MaxROMSize is the largest ROM that fits between EntryAddress and 0xFFF
	// inclusive.
	MaxROMSize = MemorySize - EntryAddress

	// FontBase is the address of the first font glyph.
	FontBase = 0x050

	// GlyphSize is the number of bytes of one font glyph.
	GlyphSize = 5

	// Width and Height are the framebuffer dimensions in pixels.
	Width  = 64
	Height = 32

	// StackDepth is the number of nested subroutine calls.
	StackDepth = 16

	// NumKeys is the number of keys on the hex keypad.
	NumKeys = 16

	// FlagRegister is the register overwritten by arithmetic, shift and draw
	// instructions.
	FlagRegister = 0xF
)

// Options changes the behaviour of the machine at the edges the classic
// instruction set leaves undefined.
type Options struct {
	// Strict makes unrecognised opcodes fail the cycle instead of being
	// skipped.
	Strict bool

	// Seed for the random source used by Cxkk. Zero seeds from the clock.
	Seed int64
}

// Debugger is notified by the machine as it executes. Step is called before
// every fetch; returning an error aborts the cycle before anything changes.
// Read and Write are called for every memory access made by an instruction.
type Debugger interface {
	Step(c *Chip8) error
	Read(addr uint16, c *Chip8)
	Write(addr uint16, c *Chip8)
}

// Chip8 is the complete state of one CHIP-8 machine.
type Chip8 struct {
	// V0-VF. VF doubles as the flag register.
	V [16]byte

	Memory [MemorySize]byte

	I  uint16
	PC uint16

	Stack [StackDepth]uint16
	SP    byte // number of active frames on Stack

	DelayTimer byte
	SoundTimer byte

	// Keys is the keypad snapshot, written by the input collaborator
	// before each Step.
	Keys [NumKeys]bool

	// Display is row-major, true is a set pixel.
	Display [Width * Height]bool

	// Opcode is the instruction fetched by the last Step.
	Opcode Instruction

	// Cycles counts the instructions executed since the last reset.
	Cycles uint64

	// Unknown counts unrecognised opcodes skipped since the last reset.
	Unknown uint64

	// Redraw is set whenever Display changes. Renderers clear it.
	Redraw bool

	Debugger Debugger

	logger *log.Logger
	opts   Options
	rng    *rand.Rand
}

// New creates a machine with zeroed state, the font loaded and the program
// counter at EntryAddress.
func New(logger *log.Logger, opts Options) *Chip8 {
	seed := opts.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	c := &Chip8{
		logger: logger,
		opts:   opts,
		rng:    rand.New(rand.NewSource(seed)),
	}
	c.Reset()
	return c
}

// Reset returns the machine to its power-on state. The random source, the
// options and any attached debugger are kept.
func (c *Chip8) Reset() {
	c.V = [16]byte{}
	c.Memory = [MemorySize]byte{}
	c.I = 0
	c.PC = EntryAddress
	c.Stack = [StackDepth]uint16{}
	c.SP = 0
	c.DelayTimer = 0
	c.SoundTimer = 0
	c.Keys = [NumKeys]bool{}
	c.Display = [Width * Height]bool{}
	c.Opcode = 0
	c.Cycles = 0
	c.Unknown = 0
	c.Redraw = true

	copy(c.Memory[FontBase:], fontset[:])
}

// Options returns the options the machine was created with.
func (c *Chip8) Options() Options {
	return c.opts
}

// Pixel reports whether the pixel at x, y is set. Coordinates wrap.
func (c *Chip8) Pixel(x, y int) bool {
	x = ((x % Width) + Width) % Width
	y = ((y % Height) + Height) % Height
	return c.Display[y*Width+x]
}

// SetKey records the state of keypad key k (0x0-0xF).
func (c *Chip8) SetKey(k int, down bool) {
	c.Keys[k&0xF] = down
}

// ClearKeys releases every key.
func (c *Chip8) ClearKeys() {
	c.Keys = [NumKeys]bool{}
}

func (c *Chip8) read(addr uint16) byte {
	addr &= AddressMask
	if c.Debugger != nil {
		c.Debugger.Read(addr, c)
	}
	return c.Memory[addr]
}

func (c *Chip8) write(addr uint16, value byte) {
	addr &= AddressMask
	c.Memory[addr] = value
	if c.Debugger != nil {
		c.Debugger.Write(addr, c)
	}
}
