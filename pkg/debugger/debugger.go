// Package debugger provides breakpoints, memory watchpoints and tracing for
// a chip8.Chip8.
package debugger

import (
	"fmt"
	"strings"

	"github.com/koushik255/chip8go/pkg/chip8"
	"github.com/retroenv/retrogolib/log"
	"github.com/retroenv/retrogolib/set"
)

// New returns a debugger without any breakpoints or watchpoints.
func New(logger *log.Logger) *Debugger {
	return &Debugger{
		breakpoints: set.New[uint16](),
		reads:       set.New[uint16](),
		writes:      set.New[uint16](),
		logger:      logger,
	}
}

// AddBreakpoint stops execution before the instruction at addr.
func (dbg *Debugger) AddBreakpoint(addr uint16) {
	dbg.breakpoints.Add(addr & chip8.AddressMask)
}

// HasBreakpoint reports whether a breakpoint is set at addr.
func (dbg *Debugger) HasBreakpoint(addr uint16) bool {
	return dbg.breakpoints.Contains(addr & chip8.AddressMask)
}

// AddWatchpoint records accesses of the given type to addr.
func (dbg *Debugger) AddWatchpoint(addr uint16, typ WatchType) {
	addr &= chip8.AddressMask
	if typ&ReadWatch != 0 {
		dbg.reads.Add(addr)
	}
	if typ&WriteWatch != 0 {
		dbg.writes.Add(addr)
	}
}

// Step is called by the machine before every fetch. It returns a
// *BreakError when the machine should stop. Calling Step again at the
// address it stopped at lets the instruction run.
func (dbg *Debugger) Step(c *chip8.Chip8) error {
	pc := c.PC & chip8.AddressMask

	if dbg.resuming {
		dbg.resuming = false
		if dbg.resume == pc && !dbg.Break {
			dbg.trace(c, pc)
			return nil
		}
	}

	if dbg.Break {
		dbg.Break = false
		return dbg.stop(pc, true)
	}
	if dbg.breakpoints.Contains(pc) {
		return dbg.stop(pc, false)
	}

	dbg.trace(c, pc)
	return nil
}

func (dbg *Debugger) stop(pc uint16, forced bool) error {
	dbg.resume = pc
	dbg.resuming = true
	return &BreakError{Addr: pc, Forced: forced}
}

func (dbg *Debugger) trace(c *chip8.Chip8, pc uint16) {
	if !dbg.Trace || dbg.logger == nil {
		return
	}

	in := chip8.Fetch(&c.Memory, pc)
	dbg.logger.Debug("Trace",
		log.Hex("pc", pc),
		log.Stringer("opcode", in),
		log.String("ins", chip8.Disassemble(in)))
}

// Read is called by the machine for every memory read made by an
// instruction.
func (dbg *Debugger) Read(addr uint16, c *chip8.Chip8) {
	if dbg.reads.Contains(addr) {
		dbg.hit(addr, ReadWatch, c)
	}
}

// Write is called by the machine after every memory write made by an
// instruction.
func (dbg *Debugger) Write(addr uint16, c *chip8.Chip8) {
	if dbg.writes.Contains(addr) {
		dbg.hit(addr, WriteWatch, c)
	}
}

func (dbg *Debugger) hit(addr uint16, typ WatchType, c *chip8.Chip8) {
	h := Hit{
		Addr:   addr,
		PC:     (c.PC - 2) & chip8.AddressMask,
		Opcode: c.Opcode,
		Value:  c.Memory[addr],
		Type:   typ,
	}
	dbg.Hits = append(dbg.Hits, h)

	if dbg.logger != nil {
		dbg.logger.Info("Watchpoint hit",
			log.Hex("addr", addr),
			log.Stringer("type", typ),
			log.Hex("pc", h.PC),
			log.Stringer("opcode", h.Opcode),
			log.Hex("value", h.Value))
	}
}

// Dump formats the registers, timers and stack of c for display.
func Dump(c *chip8.Chip8) string {
	var b strings.Builder

	in := chip8.Fetch(&c.Memory, c.PC)
	fmt.Fprintf(&b, "PC=$%03X  %s  %s\n", c.PC, in, chip8.Disassemble(in))

	for i, v := range c.V {
		fmt.Fprintf(&b, "V%X=%02X", i, v)
		if i%8 == 7 {
			b.WriteByte('\n')
		} else {
			b.WriteByte(' ')
		}
	}

	fmt.Fprintf(&b, "I=$%03X  SP=%d  DT=%02X  ST=%02X  cycles=%d\n",
		c.I, c.SP, c.DelayTimer, c.SoundTimer, c.Cycles)

	b.WriteString("stack:")
	if c.SP == 0 {
		b.WriteString(" empty")
	}
	for i := 0; i < int(c.SP); i++ {
		fmt.Fprintf(&b, " $%03X", c.Stack[i])
	}
	b.WriteByte('\n')

	return b.String()
}
