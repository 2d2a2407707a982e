package hook

import "encoding/binary"

// platformMinimumHookSize is the byte length of a 32-bit detour jump:
// E9 rel32.
const platformMinimumHookSize = 5

// mode64 selects the length decoder's 64-bit prefix handling.
const mode64 = false

// buildJumpStub returns the 5-byte "JMP rel32" sequence that transfers
// control from the instruction at from to dest. The displacement is
// relative to the byte immediately after the jump instruction, matching
// the x86 encoding and preserving the jump-back arithmetic precisely:
// displacement = dest - (from + platformMinimumHookSize).
func buildJumpStub(from, dest uintptr) []byte {
	buf := make([]byte, platformMinimumHookSize)
	buf[0] = 0xE9
	disp := int32(int64(dest) - int64(from) - int64(platformMinimumHookSize))
	binary.LittleEndian.PutUint32(buf[1:5], uint32(disp))
	return buf
}
