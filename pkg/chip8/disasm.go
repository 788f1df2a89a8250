package chip8

import (
	"fmt"
	"io"
	"strings"

	"github.com/pkg/errors"
)

// Disassemble renders an instruction word as CHIP-8 assembly, for example
// "LD V1, $05" or "DRW V0, V1, $5". Words that no instruction claims are
// rendered as a data word.
func Disassemble(in Instruction) string {
	kind := Lookup(in)
	ins := kind.Mnemonic()
	if ins == nil {
		return fmt.Sprintf(".word $%04X", uint16(in))
	}

	name := strings.ToUpper(ins.Name)
	if params := operands(kind, in); params != "" {
		return name + " " + params
	}
	return name
}

func operands(kind Kind, in Instruction) string {
	x, y := in.X(), in.Y()

	switch kind {
	case KindJp, KindCall:
		return fmt.Sprintf("$%03X", in.NNN())
	case KindJpV0:
		return fmt.Sprintf("V0, $%03X", in.NNN())
	case KindSeVxByte, KindSneVxByte, KindLdVxByte, KindAddVxByte, KindRnd:
		return fmt.Sprintf("V%X, $%02X", x, in.KK())
	case KindSeVxVy, KindSneVxVy, KindLdVxVy, KindOr, KindAnd, KindXor,
		KindAddVxVy, KindSub, KindSubn:
		return fmt.Sprintf("V%X, V%X", x, y)
	case KindShr, KindShl, KindSkp, KindSknp:
		return fmt.Sprintf("V%X", x)
	case KindLdI:
		return fmt.Sprintf("I, $%03X", in.NNN())
	case KindDrw:
		return fmt.Sprintf("V%X, V%X, $%X", x, y, in.N())
	case KindLdVxDT:
		return fmt.Sprintf("V%X, DT", x)
	case KindLdVxK:
		return fmt.Sprintf("V%X, K", x)
	case KindLdDTVx:
		return fmt.Sprintf("DT, V%X", x)
	case KindLdSTVx:
		return fmt.Sprintf("ST, V%X", x)
	case KindAddIVx:
		return fmt.Sprintf("I, V%X", x)
	case KindLdFVx:
		return fmt.Sprintf("F, V%X", x)
	case KindLdBVx:
		return fmt.Sprintf("B, V%X", x)
	case KindLdIVx:
		return fmt.Sprintf("[I], V%X", x)
	case KindLdVxI:
		return fmt.Sprintf("V%X, [I]", x)
	}
	return ""
}

// Listing writes one line per instruction word of rom, addressed as if the
// ROM was loaded at EntryAddress. A trailing odd byte is written as data.
func Listing(w io.Writer, rom []byte) error {
	addr := EntryAddress
	for i := 0; i+1 < len(rom); i += 2 {
		in := Instruction(uint16(rom[i])<<8 | uint16(rom[i+1]))
		if _, err := fmt.Fprintf(w, "$%04X  %s  %s\n", addr+i, in, Disassemble(in)); err != nil {
			return errors.Wrapf(err, "writing listing at $%04X", addr+i)
		}
	}

	if len(rom)%2 == 1 {
		last := len(rom) - 1
		if _, err := fmt.Fprintf(w, "$%04X  %02X    .byte $%02X\n", addr+last, rom[last], rom[last]); err != nil {
			return errors.Wrapf(err, "writing listing at $%04X", addr+last)
		}
	}
	return nil
}
