package hook

import "encoding/binary"

// platformMinimumHookSize is the byte length of a 64-bit detour jump:
// MOV RAX, imm64 (10 bytes) + JMP RAX (2 bytes).
const platformMinimumHookSize = 12

// mode64 selects the length decoder's 64-bit prefix handling.
const mode64 = true

// buildJumpStub returns the 12-byte absolute jump sequence
// "MOV RAX, imm64; JMP RAX" that transfers control to dest. from is
// unused on amd64 - the jump is absolute, not relative - but kept in
// the signature so the Engine can call it identically on every arch.
func buildJumpStub(from, dest uintptr) []byte {
	buf := make([]byte, platformMinimumHookSize)
	buf[0] = 0x48
	buf[1] = 0xB8
	binary.LittleEndian.PutUint64(buf[2:10], uint64(dest))
	buf[10] = 0xFF
	buf[11] = 0xE0
	return buf
}
