package arch

import "errors"

// ErrUnknownOpcode is returned when InstructionLength encounters an
// opcode byte the table classifies as Invalid, whether as a primary
// opcode or as the second byte of a two-byte escape sequence.
var ErrUnknownOpcode = errors.New("arch: unknown or invalid opcode")

const (
	legacyOperandSizePrefix = 0x66
	legacyAddressSizePrefix = 0x67
	legacyLockPrefix        = 0xF0
	legacyRepnePrefix       = 0xF2
	legacyRepPrefix         = 0xF3
)

func isLegacyPrefix(b byte) bool {
	switch b {
	case legacyOperandSizePrefix, legacyAddressSizePrefix, legacyLockPrefix, legacyRepnePrefix, legacyRepPrefix:
		return true
	}
	return false
}

func isREXPrefix(b byte) bool {
	return b >= 0x40 && b <= 0x4F
}

// decoder walks a single instruction's bytes, accumulating size.
type decoder struct {
	code   []byte
	mode64 bool
	rexW   bool
}

func (d *decoder) byteAt(offset int) (byte, bool) {
	if offset < 0 || offset >= len(d.code) {
		return 0, false
	}
	return d.code[offset], true
}

// InstructionLength returns the byte length of the instruction starting
// at code[0]. mode64 selects 64-bit decoding: REX prefixes are
// recognized in the prefix loop and Imm64 immediates keep their full
// width; on a 32-bit build (mode64 false) Imm64 degrades to 4 bytes and
// no byte is ever treated as a REX prefix.
//
// This mirrors the simplified decoding scheme it was grounded on: the
// 0x0F two-byte escape reuses this same primary table for its second
// byte rather than a dedicated secondary table, and REX.W is otherwise
// unconsulted except for the B8-BF MOV r64, imm64 range.
func InstructionLength(code []byte, mode64 bool) (int, error) {
	d := &decoder{code: code, mode64: mode64}
	return d.run()
}

func (d *decoder) run() (int, error) {
	size := 0

	for {
		b, ok := d.byteAt(size)
		if !ok {
			break
		}
		if isLegacyPrefix(b) {
			size++
			continue
		}
		if d.mode64 && isREXPrefix(b) {
			d.rexW = b&0x08 != 0
			size++
			continue
		}
		break
	}

	opcodeByte, ok := d.byteAt(size)
	if !ok {
		return 0, ErrUnknownOpcode
	}
	info := OpcodeTable[opcodeByte]
	if info.Type == Invalid {
		return 0, ErrUnknownOpcode
	}
	size++

	if info.Type == TwoByteEscape {
		escByte, ok := d.byteAt(size)
		if !ok {
			return 0, ErrUnknownOpcode
		}
		info = OpcodeTable[escByte]
		if info.Type == Invalid {
			return 0, ErrUnknownOpcode
		}
		size++
	}

	if info.HasModRM {
		modrm, ok := d.byteAt(size)
		if !ok {
			return 0, ErrUnknownOpcode
		}
		size++

		mod := modrm >> 6
		rm := modrm & 0x07

		if mod != 3 && rm == 4 {
			size++ // SIB byte present
		}

		switch mod {
		case 0:
			if rm == 5 {
				size += 4 // RIP-relative (64-bit) / absolute (32-bit) disp32
			}
		case 1:
			size++
		case 2:
			size += 4
		}
	}

	size += d.resolveImmSize(opcodeByte, info.ImmSize)

	return size, nil
}

// resolveImmSize applies the two documented deviations from a plain
// ImmSize.Bytes() lookup: the 0xB8-0xBF MOV r64, imm64 range consults
// REX.W in 64-bit mode, and Imm64 degrades to 4 bytes on a 32-bit
// build. Every other opcode, including the 0xA0-0xA3 moffs forms, keeps
// its table-declared size regardless of address mode - an intentional
// simplification, not an oversight.
func (d *decoder) resolveImmSize(opcodeByte byte, size ImmSize) int {
	if opcodeByte >= 0xB8 && opcodeByte <= 0xBF && d.mode64 && d.rexW {
		return 8
	}
	if size == Imm64 && !d.mode64 {
		return 4
	}
	return size.Bytes()
}
