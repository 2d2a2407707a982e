package arch

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSingleByteInstructions(t *testing.T) {
	tests := []struct {
		name     string
		code     []byte
		expected int
	}{
		{"NOP", []byte{0x90}, 1},
		{"PUSH EAX", []byte{0x50}, 1},
		{"PUSH EDI", []byte{0x57}, 1},
		{"POP EAX", []byte{0x58}, 1},
		{"RET", []byte{0xC3}, 1},
		{"INT3", []byte{0xCC}, 1},
		{"CLC", []byte{0xF8}, 1},
		{"LEAVE", []byte{0xC9}, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			length, err := InstructionLength(tt.code, true)
			require.NoError(t, err)
			require.Equal(t, tt.expected, length)
		})
	}
}

func TestModRMInstructions(t *testing.T) {
	tests := []struct {
		name     string
		code     []byte
		expected int
	}{
		{"MOV EAX, EBX", []byte{0x89, 0xD8}, 2},
		{"ADD EAX, EBX", []byte{0x01, 0xD8}, 2},
		{"XOR ECX, ECX", []byte{0x31, 0xC9}, 2},
		{"LEA EAX, [ECX+0x10]", []byte{0x8D, 0x41, 0x10}, 3},
		{"MOV EAX, [disp32]", []byte{0x8B, 0x05, 0x78, 0x56, 0x34, 0x12}, 6},
		{"MOV EAX, [EBP+disp8]", []byte{0x8B, 0x45, 0xF8}, 3},
		{"MOV EAX, [EBP+disp32]", []byte{0x8B, 0x85, 0x78, 0x56, 0x34, 0x12}, 6},
		{"MOV EAX, [EAX+EBX*1]", []byte{0x8B, 0x04, 0x18}, 3}, // SIB, mod=0 rm=4
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			length, err := InstructionLength(tt.code, true)
			require.NoError(t, err)
			require.Equal(t, tt.expected, length)
		})
	}
}

func TestImmediateInstructions(t *testing.T) {
	tests := []struct {
		name     string
		code     []byte
		expected int
	}{
		{"ADD AL, imm8", []byte{0x04, 0x12}, 2},
		{"ADD EAX, imm32", []byte{0x05, 0x78, 0x56, 0x34, 0x12}, 5},
		{"PUSH imm8", []byte{0x6A, 0x42}, 2},
		{"PUSH imm32", []byte{0x68, 0x78, 0x56, 0x34, 0x12}, 5},
		{"MOV AL, imm8", []byte{0xB0, 0xFF}, 2},
		{"RET imm16", []byte{0xC2, 0x10, 0x00}, 3},
		{"ENTER imm16, imm8", []byte{0xC8, 0x10, 0x00, 0x00}, 4},
		{"INT imm8", []byte{0xCD, 0x80}, 2},
		{"JMP rel8", []byte{0xEB, 0x05}, 2},
		{"JMP rel32", []byte{0xE9, 0x00, 0x00, 0x00, 0x00}, 5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			length, err := InstructionLength(tt.code, true)
			require.NoError(t, err)
			require.Equal(t, tt.expected, length)
		})
	}
}

func TestPrefixIdempotence(t *testing.T) {
	base := []byte{0x89, 0xD8} // MOV EAX, EBX - 2 bytes
	baseLen, err := InstructionLength(base, true)
	require.NoError(t, err)

	legacyPrefixes := []byte{0x66, 0x67, 0xF0, 0xF2, 0xF3}
	for _, p := range legacyPrefixes {
		code := append([]byte{p}, base...)
		length, err := InstructionLength(code, true)
		require.NoError(t, err)
		require.Equal(t, baseLen+1, length)
	}

	for rex := byte(0x40); rex <= 0x4F; rex++ {
		code := append([]byte{rex}, base...)
		length, err := InstructionLength(code, true)
		require.NoError(t, err)
		require.Equal(t, baseLen+1, length, "REX prefix 0x%02X", rex)
	}
}

func TestUnknownOpcodeFails(t *testing.T) {
	_, err := InstructionLength([]byte{0x06}, true) // PUSH ES, invalid in long mode
	require.ErrorIs(t, err, ErrUnknownOpcode)
}

func TestTwoByteEscapeReusesPrimaryTable(t *testing.T) {
	// 0F 90: since the decoder reuses the primary table for the second
	// byte, 0x90 (DataMov, no ModRM) decides sizing here, not the real
	// SETcc ModRM+imm8 encoding an accurate x86 decoder would apply.
	length, err := InstructionLength([]byte{0x0F, 0x90}, true)
	require.NoError(t, err)
	require.Equal(t, 2, length)
}

func TestMovR64Imm64ConsultsRexW(t *testing.T) {
	// MOV RAX, imm64 with REX.W set sizes the immediate at 8 bytes.
	code := []byte{0x48, 0xB8, 0x01, 0x02, 0x03, 0x04, 0x05, 0x06, 0x07, 0x08}
	length, err := InstructionLength(code, true)
	require.NoError(t, err)
	require.Equal(t, 10, length)

	// Without REX.W, the same opcode byte keeps the table's Imm32.
	code32 := []byte{0xB8, 0x01, 0x02, 0x03, 0x04}
	length, err = InstructionLength(code32, true)
	require.NoError(t, err)
	require.Equal(t, 5, length)

	// On a 32-bit build, REX bytes aren't prefixes at all; 0x48 is
	// itself opcode DEC EAX (simple, 1 byte), so the buffer decodes
	// differently than in 64-bit mode.
	length, err = InstructionLength(code, false)
	require.NoError(t, err)
	require.Equal(t, 1, length)
}

func TestImm64DegradesOn32BitBuild(t *testing.T) {
	// No opcode in the real table carries Imm64, so the degradation isn't
	// reachable through InstructionLength's public surface; this calls
	// resolveImmSize directly instead.
	d := &decoder{mode64: false}
	require.Equal(t, 4, d.resolveImmSize(0x00, Imm64))

	d64 := &decoder{mode64: true}
	require.Equal(t, 8, d64.resolveImmSize(0x00, Imm64))
}

func TestInstructionLengthBoundedByFifteen(t *testing.T) {
	// Length decoder invariant: for inputs of length >= 15, the result
	// is either 0 (via error) or within [1, 15].
	code := make([]byte, 20)
	for i := range code {
		code[i] = 0x90 // NOP stream
	}
	length, err := InstructionLength(code, true)
	require.NoError(t, err)
	require.GreaterOrEqual(t, length, 1)
	require.LessOrEqual(t, length, 15)
}
