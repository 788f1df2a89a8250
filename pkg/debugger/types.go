package debugger

import (
	"fmt"

	"github.com/koushik255/chip8go/pkg/chip8"
	"github.com/retroenv/retrogolib/log"
	"github.com/retroenv/retrogolib/set"
)

// WatchType selects which memory accesses trigger a watchpoint.
type WatchType uint8

const (
	ReadWatch WatchType = 1 << iota
	WriteWatch

	ReadWriteWatch = ReadWatch | WriteWatch
)

func (w WatchType) String() string {
	switch w {
	case ReadWatch:
		return "R"
	case WriteWatch:
		return "W"
	case ReadWriteWatch:
		return "RW"
	}
	return "?"
}

// Hit is one triggered watchpoint.
type Hit struct {
	Addr   uint16 // accessed address
	PC     uint16 // address of the accessing instruction
	Opcode chip8.Instruction
	Value  byte // memory content after the access
	Type   WatchType
}

// BreakError is returned by Step when execution stops before the
// instruction at Addr.
type BreakError struct {
	Addr uint16

	// Forced is set when the stop was requested through the Break flag
	// instead of a breakpoint.
	Forced bool
}

func (e *BreakError) Error() string {
	if e.Forced {
		return fmt.Sprintf("break at $%03X", e.Addr)
	}
	return fmt.Sprintf("breakpoint at $%03X", e.Addr)
}

// Debugger implements chip8.Debugger with breakpoints, watchpoints and
// instruction tracing.
type Debugger struct {
	// Break stops the machine before the next instruction. It is cleared
	// when the stop is reported.
	Break bool

	// Trace logs every executed instruction at debug level.
	Trace bool

	// Hits records every triggered watchpoint in order.
	Hits []Hit

	breakpoints set.Set[uint16]
	reads       set.Set[uint16]
	writes      set.Set[uint16]

	// set after a stop so that resuming executes the instruction the
	// machine stopped at
	resume   uint16
	resuming bool

	logger *log.Logger
}
