// Package arch classifies x86/x86-64 primary opcode bytes and measures
// instruction length from raw machine code. It understands only as much
// of the instruction encoding as a length disassembler needs: it never
// decodes operands or assigns meaning to an instruction.
package arch

// InstrType is the coarse instruction category recorded per opcode byte.
// Only Invalid and TwoByteEscape influence decoding; the rest exist for
// documentation and future extension.
type InstrType uint8

const (
	Invalid InstrType = iota
	Simple
	Control
	Arithmetic
	DataMov
	Stack
	TwoByteEscape
	System
)

// ImmSize is the size, in bytes, of an instruction's immediate operand.
type ImmSize uint8

const (
	ImmNone ImmSize = iota
	Imm8
	Imm16
	Imm32
	Imm64
	Imm16_8 // ENTER imm16, imm8 - three immediate bytes total
)

// Bytes returns the immediate's encoded length, independent of mode.
// mode64 and rexW widen the Imm32 case for opcodes in the 0xB8-0xBF range,
// and a 32-bit build narrows Imm64 to 4 bytes; callers that need those
// distinctions apply them themselves (see resolveImmSize).
func (s ImmSize) Bytes() int {
	switch s {
	case ImmNone:
		return 0
	case Imm8:
		return 1
	case Imm16:
		return 2
	case Imm32:
		return 4
	case Imm64:
		return 8
	case Imm16_8:
		return 3
	default:
		return 0
	}
}

// OpcodeInfo is the per-opcode classification tuple.
type OpcodeInfo struct {
	Type     InstrType
	HasModRM bool
	ImmSize  ImmSize
}

func simple(t InstrType) OpcodeInfo          { return OpcodeInfo{Type: t} }
func withModRM(t InstrType) OpcodeInfo        { return OpcodeInfo{Type: t, HasModRM: true} }
func withImm8(t InstrType) OpcodeInfo         { return OpcodeInfo{Type: t, ImmSize: Imm8} }
func withImm16(t InstrType) OpcodeInfo        { return OpcodeInfo{Type: t, ImmSize: Imm16} }
func withImm32(t InstrType) OpcodeInfo        { return OpcodeInfo{Type: t, ImmSize: Imm32} }
func withImm16Imm8(t InstrType) OpcodeInfo    { return OpcodeInfo{Type: t, ImmSize: Imm16_8} }
func withModRMImm8(t InstrType) OpcodeInfo    { return OpcodeInfo{Type: t, HasModRM: true, ImmSize: Imm8} }
func withModRMImm32(t InstrType) OpcodeInfo   { return OpcodeInfo{Type: t, HasModRM: true, ImmSize: Imm32} }

var invalid = OpcodeInfo{Type: Invalid}

// OpcodeTable is the 256-entry primary opcode classification. The two-byte
// (0x0F) escape at index 0x0F is handled specially by the decoder: the
// byte following it is looked up in this same table rather than a
// dedicated secondary table, a deliberate simplification carried forward
// from the original implementation this package reimplements - see
// decode.go.
var OpcodeTable = [256]OpcodeInfo{
	// 0x00-0x0F
	withModRM(Arithmetic), withModRM(Arithmetic), withModRM(Arithmetic), withModRM(Arithmetic),
	withImm8(Arithmetic), withImm32(Arithmetic), invalid, invalid,
	withModRM(Arithmetic), withModRM(Arithmetic), withModRM(Arithmetic), withModRM(Arithmetic),
	withImm8(Arithmetic), withImm32(Arithmetic), invalid, {Type: TwoByteEscape},

	// 0x10-0x1F
	withModRM(Arithmetic), withModRM(Arithmetic), withModRM(Arithmetic), withModRM(Arithmetic),
	withImm8(Arithmetic), withImm32(Arithmetic), invalid, invalid,
	withModRM(Arithmetic), withModRM(Arithmetic), withModRM(Arithmetic), withModRM(Arithmetic),
	withImm8(Arithmetic), withImm32(Arithmetic), invalid, invalid,

	// 0x20-0x2F
	withModRM(Arithmetic), withModRM(Arithmetic), withModRM(Arithmetic), withModRM(Arithmetic),
	withImm8(Arithmetic), withImm32(Arithmetic), invalid, invalid,
	withModRM(Arithmetic), withModRM(Arithmetic), withModRM(Arithmetic), withModRM(Arithmetic),
	withImm8(Arithmetic), withImm32(Arithmetic), invalid, invalid,

	// 0x30-0x3F
	withModRM(Arithmetic), withModRM(Arithmetic), withModRM(Arithmetic), withModRM(Arithmetic),
	withImm8(Arithmetic), withImm32(Arithmetic), invalid, invalid,
	withModRM(Arithmetic), withModRM(Arithmetic), withModRM(Arithmetic), withModRM(Arithmetic),
	withImm8(Arithmetic), withImm32(Arithmetic), invalid, invalid,

	// 0x40-0x4F: REX prefixes in 64-bit mode, INC/DEC in 32-bit mode.
	// Plain one-byte entries (no ModRM, no immediate), not Invalid - the decoder's prefix loop
	// recognizes 0x40-0x4F by value on 64-bit builds regardless of
	// this table entry.
	simple(Arithmetic), simple(Arithmetic), simple(Arithmetic), simple(Arithmetic),
	simple(Arithmetic), simple(Arithmetic), simple(Arithmetic), simple(Arithmetic),
	simple(Arithmetic), simple(Arithmetic), simple(Arithmetic), simple(Arithmetic),
	simple(Arithmetic), simple(Arithmetic), simple(Arithmetic), simple(Arithmetic),

	// 0x50-0x5F: PUSH/POP r32/r64
	simple(Stack), simple(Stack), simple(Stack), simple(Stack),
	simple(Stack), simple(Stack), simple(Stack), simple(Stack),
	simple(Stack), simple(Stack), simple(Stack), simple(Stack),
	simple(Stack), simple(Stack), simple(Stack), simple(Stack),

	// 0x60-0x6F
	invalid, invalid, invalid, invalid,
	invalid, invalid, invalid, invalid,
	withImm32(Arithmetic), withModRMImm32(Arithmetic), withImm8(Arithmetic), withModRMImm8(Arithmetic),
	simple(Simple), simple(Simple), simple(Simple), simple(Simple),

	// 0x70-0x7F: short conditional jumps
	withImm8(Control), withImm8(Control), withImm8(Control), withImm8(Control),
	withImm8(Control), withImm8(Control), withImm8(Control), withImm8(Control),
	withImm8(Control), withImm8(Control), withImm8(Control), withImm8(Control),
	withImm8(Control), withImm8(Control), withImm8(Control), withImm8(Control),

	// 0x80-0x8F
	withModRMImm8(Arithmetic), withModRMImm32(Arithmetic), withModRMImm8(Arithmetic), withModRMImm8(Arithmetic),
	withModRM(Arithmetic), withModRM(Arithmetic), withModRM(DataMov), withModRM(DataMov),
	withModRM(DataMov), withModRM(DataMov), withModRM(DataMov), withModRM(DataMov),
	withModRM(DataMov), withModRM(DataMov), withModRM(DataMov), withModRM(DataMov),

	// 0x90-0x9F
	simple(DataMov), simple(DataMov), simple(DataMov), simple(DataMov),
	simple(DataMov), simple(DataMov), simple(DataMov), simple(DataMov),
	simple(DataMov), simple(DataMov), withImm32(Control), simple(System),
	simple(Stack), simple(Stack), simple(DataMov), simple(DataMov),

	// 0xA0-0xAF
	withImm32(DataMov), withImm32(DataMov), withImm32(DataMov), withImm32(DataMov),
	simple(DataMov), simple(DataMov), simple(DataMov), simple(DataMov),
	withImm8(DataMov), withImm32(DataMov), simple(DataMov), simple(DataMov),
	simple(DataMov), simple(DataMov), simple(DataMov), simple(DataMov),

	// 0xB0-0xBF: MOV r8/r32, imm - the B8-BF range is REX.W-sensitive,
	// resolved in decode.go rather than here (see resolveImmSize).
	withImm8(DataMov), withImm8(DataMov), withImm8(DataMov), withImm8(DataMov),
	withImm8(DataMov), withImm8(DataMov), withImm8(DataMov), withImm8(DataMov),
	withImm32(DataMov), withImm32(DataMov), withImm32(DataMov), withImm32(DataMov),
	withImm32(DataMov), withImm32(DataMov), withImm32(DataMov), withImm32(DataMov),

	// 0xC0-0xCF
	withModRMImm8(Arithmetic), withModRMImm8(Arithmetic), withImm16(Control), simple(Control),
	withModRM(DataMov), withModRM(DataMov), withModRMImm8(DataMov), withModRMImm32(DataMov),
	withImm16Imm8(Control), simple(Control), withImm16(Control), simple(Control),
	simple(System), withImm8(System), simple(System), simple(Control),

	// 0xD0-0xDF
	withModRM(Arithmetic), withModRM(Arithmetic), withModRM(Arithmetic), withModRM(Arithmetic),
	invalid, invalid, invalid, simple(DataMov),
	withModRM(Arithmetic), withModRM(Arithmetic), withModRM(Arithmetic), withModRM(Arithmetic),
	withModRM(Arithmetic), withModRM(Arithmetic), withModRM(Arithmetic), withModRM(Arithmetic),

	// 0xE0-0xEF
	withImm8(Control), withImm8(Control), withImm8(Control), withImm8(Control),
	withImm8(Simple), withImm8(Simple), withImm8(Simple), withImm8(Simple),
	withImm32(Control), withImm32(Control), withImm32(Control), withImm8(Control),
	simple(Simple), simple(Simple), simple(Simple), simple(Simple),

	// 0xF0-0xFF
	invalid, simple(System), invalid, invalid,
	simple(System), simple(System), withModRM(Arithmetic), withModRM(Arithmetic),
	simple(System), simple(System), simple(System), simple(System),
	simple(System), simple(System), withModRM(Arithmetic), withModRM(Arithmetic),
}
