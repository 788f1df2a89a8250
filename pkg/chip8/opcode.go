package chip8

import (
	chip8cpu "github.com/retroenv/retrogolib/arch/cpu/chip8"
)

// Kind identifies one instruction of the classic CHIP-8 set. KindNone is
// the result of looking up a word that no instruction claims.
type Kind uint8

const (
	KindNone Kind = iota
	KindCls       // 00E0
	KindRet       // 00EE
	KindJp        // 1nnn
	KindCall      // 2nnn
	KindSeVxByte  // 3xkk
	KindSneVxByte // 4xkk
	KindSeVxVy    // 5xy0
	KindLdVxByte  // 6xkk
	KindAddVxByte // 7xkk
	KindLdVxVy    // 8xy0
	KindOr        // 8xy1
	KindAnd       // 8xy2
	KindXor       // 8xy3
	KindAddVxVy   // 8xy4
	KindSub       // 8xy5
	KindShr       // 8xy6
	KindSubn      // 8xy7
	KindShl       // 8xyE
	KindSneVxVy   // 9xy0
	KindLdI       // Annn
	KindJpV0      // Bnnn
	KindRnd       // Cxkk
	KindDrw       // Dxyn
	KindSkp       // Ex9E
	KindSknp      // ExA1
	KindLdVxDT    // Fx07
	KindLdVxK     // Fx0A
	KindLdDTVx    // Fx15
	KindLdSTVx    // Fx18
	KindAddIVx    // Fx1E
	KindLdFVx     // Fx29
	KindLdBVx     // Fx33
	KindLdIVx     // Fx55
	KindLdVxI     // Fx65

	kindCount
)

type kindInfo struct {
	pattern string
	ins     *chip8cpu.Instruction
}

var kinds = [kindCount]kindInfo{
	KindNone:      {"????", nil},
	KindCls:       {"00E0", chip8cpu.ClsInst},
	KindRet:       {"00EE", chip8cpu.RetInst},
	KindJp:        {"1nnn", chip8cpu.JpInst},
	KindCall:      {"2nnn", chip8cpu.CallInst},
	KindSeVxByte:  {"3xkk", chip8cpu.SeInst},
	KindSneVxByte: {"4xkk", chip8cpu.SneInst},
	KindSeVxVy:    {"5xy0", chip8cpu.SeInst},
	KindLdVxByte:  {"6xkk", chip8cpu.LdInst},
	KindAddVxByte: {"7xkk", chip8cpu.AddInst},
	KindLdVxVy:    {"8xy0", chip8cpu.LdInst},
	KindOr:        {"8xy1", chip8cpu.OrInst},
	KindAnd:       {"8xy2", chip8cpu.AndInst},
	KindXor:       {"8xy3", chip8cpu.XorInst},
	KindAddVxVy:   {"8xy4", chip8cpu.AddInst},
	KindSub:       {"8xy5", chip8cpu.SubInst},
	KindShr:       {"8xy6", chip8cpu.ShrInst},
	KindSubn:      {"8xy7", chip8cpu.SubnInst},
	KindShl:       {"8xyE", chip8cpu.ShlInst},
	KindSneVxVy:   {"9xy0", chip8cpu.SneInst},
	KindLdI:       {"Annn", chip8cpu.LdInst},
	KindJpV0:      {"Bnnn", chip8cpu.JpInst},
	KindRnd:       {"Cxkk", chip8cpu.RndInst},
	KindDrw:       {"Dxyn", chip8cpu.DrwInst},
	KindSkp:       {"Ex9E", chip8cpu.SkpInst},
	KindSknp:      {"ExA1", chip8cpu.SknpInst},
	KindLdVxDT:    {"Fx07", chip8cpu.LdInst},
	KindLdVxK:     {"Fx0A", chip8cpu.LdInst},
	KindLdDTVx:    {"Fx15", chip8cpu.LdInst},
	KindLdSTVx:    {"Fx18", chip8cpu.LdInst},
	KindAddIVx:    {"Fx1E", chip8cpu.AddInst},
	KindLdFVx:     {"Fx29", chip8cpu.LdInst},
	KindLdBVx:     {"Fx33", chip8cpu.LdInst},
	KindLdIVx:     {"Fx55", chip8cpu.LdInst},
	KindLdVxI:     {"Fx65", chip8cpu.LdInst},
}

// String returns the opcode pattern of the kind, for example "8xy4".
func (k Kind) String() string {
	if k >= kindCount {
		return kinds[KindNone].pattern
	}
	return kinds[k].pattern
}

// Mnemonic returns the instruction the kind belongs to, nil for KindNone.
func (k Kind) Mnemonic() *chip8cpu.Instruction {
	if k >= kindCount {
		return nil
	}
	return kinds[k].ins
}

// selector says how a top-level slot resolves to a Kind.
type selector uint8

const (
	direct      selector = iota // the slot is the kind
	byLowNibble                 // second lookup by N()
	byLowByte                   // second lookup by KK()
)

type slot struct {
	sel  selector
	kind Kind
	sub  []Kind
}

type opcodeTable struct {
	top [16]slot

	table0 [16]Kind
	table8 [16]Kind
	tableE [16]Kind
	tableF [256]Kind
}

// opcodes is built once and only read afterwards.
var opcodes = newOpcodeTable()

func newOpcodeTable() *opcodeTable {
	t := &opcodeTable{}

	// prefix 0 resolves by the low nibble alone, so any 0nn0 runs CLS
	// (zeroed memory included) and any 0nnE runs RET
	t.table0[0x0] = KindCls
	t.table0[0xE] = KindRet

	t.table8[0x0] = KindLdVxVy
	t.table8[0x1] = KindOr
	t.table8[0x2] = KindAnd
	t.table8[0x3] = KindXor
	t.table8[0x4] = KindAddVxVy
	t.table8[0x5] = KindSub
	t.table8[0x6] = KindShr
	t.table8[0x7] = KindSubn
	t.table8[0xE] = KindShl

	// Ex9E and ExA1 differ in their low nibble.
	t.tableE[0xE] = KindSkp
	t.tableE[0x1] = KindSknp

	t.tableF[0x07] = KindLdVxDT
	t.tableF[0x0A] = KindLdVxK
	t.tableF[0x15] = KindLdDTVx
	t.tableF[0x18] = KindLdSTVx
	t.tableF[0x1E] = KindAddIVx
	t.tableF[0x29] = KindLdFVx
	t.tableF[0x33] = KindLdBVx
	t.tableF[0x55] = KindLdIVx
	t.tableF[0x65] = KindLdVxI

	t.top = [16]slot{
		0x0: {sel: byLowNibble, sub: t.table0[:]},
		0x1: {kind: KindJp},
		0x2: {kind: KindCall},
		0x3: {kind: KindSeVxByte},
		0x4: {kind: KindSneVxByte},
		0x5: {kind: KindSeVxVy},
		0x6: {kind: KindLdVxByte},
		0x7: {kind: KindAddVxByte},
		0x8: {sel: byLowNibble, sub: t.table8[:]},
		0x9: {kind: KindSneVxVy},
		0xA: {kind: KindLdI},
		0xB: {kind: KindJpV0},
		0xC: {kind: KindRnd},
		0xD: {kind: KindDrw},
		0xE: {sel: byLowNibble, sub: t.tableE[:]},
		0xF: {sel: byLowByte, sub: t.tableF[:]},
	}

	return t
}

// Lookup resolves an instruction word to its kind through the two-level
// table: the high nibble selects a slot, prefix slots 0, 8 and E look up the
// low nibble and prefix F the low byte.
func Lookup(in Instruction) Kind {
	s := opcodes.top[in.Group()]
	switch s.sel {
	case byLowNibble:
		return s.sub[in.N()]
	case byLowByte:
		return s.sub[in.KK()]
	default:
		return s.kind
	}
}
