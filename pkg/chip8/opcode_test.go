package chip8_test

import (
	"testing"

	"github.com/koushik255/chip8go/pkg/chip8"
	chip8cpu "github.com/retroenv/retrogolib/arch/cpu/chip8"
	"github.com/retroenv/retrogolib/assert"
)

func TestLookup(t *testing.T) {
	tests := []struct {
		in   chip8.Instruction
		kind chip8.Kind
	}{
		{0x00E0, chip8.KindCls},
		{0x00EE, chip8.KindRet},
		{0x1234, chip8.KindJp},
		{0x2345, chip8.KindCall},
		{0x3A12, chip8.KindSeVxByte},
		{0x4A12, chip8.KindSneVxByte},
		{0x5AB0, chip8.KindSeVxVy},
		{0x6A12, chip8.KindLdVxByte},
		{0x7A12, chip8.KindAddVxByte},
		{0x8AB0, chip8.KindLdVxVy},
		{0x8AB1, chip8.KindOr},
		{0x8AB2, chip8.KindAnd},
		{0x8AB3, chip8.KindXor},
		{0x8AB4, chip8.KindAddVxVy},
		{0x8AB5, chip8.KindSub},
		{0x8AB6, chip8.KindShr},
		{0x8AB7, chip8.KindSubn},
		{0x8ABE, chip8.KindShl},
		{0x9AB0, chip8.KindSneVxVy},
		{0xA123, chip8.KindLdI},
		{0xB123, chip8.KindJpV0},
		{0xCA12, chip8.KindRnd},
		{0xDAB5, chip8.KindDrw},
		{0xEA9E, chip8.KindSkp},
		{0xEAA1, chip8.KindSknp},
		{0xFA07, chip8.KindLdVxDT},
		{0xFA0A, chip8.KindLdVxK},
		{0xFA15, chip8.KindLdDTVx},
		{0xFA18, chip8.KindLdSTVx},
		{0xFA1E, chip8.KindAddIVx},
		{0xFA29, chip8.KindLdFVx},
		{0xFA33, chip8.KindLdBVx},
		{0xFA55, chip8.KindLdIVx},
		{0xFA65, chip8.KindLdVxI},
	}

	for _, tt := range tests {
		t.Run(tt.kind.String(), func(t *testing.T) {
			assert.Equal(t, tt.kind, chip8.Lookup(tt.in))
			assert.NotNil(t, tt.kind.Mnemonic())
		})
	}
}

func TestLookupUnpopulated(t *testing.T) {
	tests := []struct {
		name string
		in   chip8.Instruction
	}{
		{"sys call", 0x0123},
		{"prefix 8 gap", 0x8AB8},
		{"prefix 8 high", 0x8ABF},
		{"prefix E gap", 0xEA00},
		{"prefix F gap", 0xFA00},
		{"prefix F high", 0xFAFF},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			kind := chip8.Lookup(tt.in)
			assert.Equal(t, chip8.KindNone, kind)
			assert.True(t, kind.Mnemonic() == nil)
		})
	}
}

// Groups without a prefix table ignore the low nibble entirely.
func TestLookupDirectGroups(t *testing.T) {
	assert.Equal(t, chip8.KindSeVxVy, chip8.Lookup(0x5AB7))
	assert.Equal(t, chip8.KindSneVxVy, chip8.Lookup(0x9AB3))
}

func TestKindMnemonic(t *testing.T) {
	tests := []struct {
		kind chip8.Kind
		ins  *chip8cpu.Instruction
		name string
	}{
		{chip8.KindCls, chip8cpu.ClsInst, "cls"},
		{chip8.KindRet, chip8cpu.RetInst, "ret"},
		{chip8.KindJpV0, chip8cpu.JpInst, "jp"},
		{chip8.KindCall, chip8cpu.CallInst, "call"},
		{chip8.KindSneVxVy, chip8cpu.SneInst, "sne"},
		{chip8.KindLdBVx, chip8cpu.LdInst, "ld"},
		{chip8.KindSubn, chip8cpu.SubnInst, "subn"},
		{chip8.KindDrw, chip8cpu.DrwInst, "drw"},
		{chip8.KindSknp, chip8cpu.SknpInst, "sknp"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.ins, tt.kind.Mnemonic())
			assert.Equal(t, tt.name, tt.kind.Mnemonic().Name)
		})
	}
	assert.Nil(t, chip8.KindNone.Mnemonic())
}

func TestKindString(t *testing.T) {
	assert.Equal(t, "8xy4", chip8.KindAddVxVy.String())
	assert.Equal(t, "Fx0A", chip8.KindLdVxK.String())
	assert.Equal(t, "????", chip8.KindNone.String())
}
