package vmem

import (
	"fmt"
	"unsafe"

	"golang.org/x/sys/windows"
)

// Alloc reserves and commits a read/write/execute region of the given
// size. The hook engine always requests PAGE_EXECUTE_READWRITE directly
// since both the trampoline and the patched target window must be
// executable.
func Alloc(size int) (Region, error) {
	addr, err := windows.VirtualAlloc(0, uintptr(size), windows.MEM_COMMIT|windows.MEM_RESERVE, windows.PAGE_EXECUTE_READWRITE)
	if err != nil {
		return Region{}, fmt.Errorf("vmem: VirtualAlloc failed: %w", err)
	}
	return Region{Addr: addr, Size: size}, nil
}

// Free releases a region previously returned by Alloc.
func Free(r Region) error {
	return windows.VirtualFree(r.Addr, 0, windows.MEM_RELEASE)
}

// rawProt marks a Protection that carries a PAGE_* value outside the
// ProtExecuteReadWrite/ProtReadWrite vocabulary verbatim, so a value
// returned by Protect can be passed back to it unchanged.
const rawProt Protection = 1 << 31

func toWinProt(p Protection) uint32 {
	if p&rawProt != 0 {
		return uint32(p &^ rawProt)
	}
	switch p {
	case ProtExecuteReadWrite:
		return windows.PAGE_EXECUTE_READWRITE
	case ProtReadWrite:
		return windows.PAGE_READWRITE
	default:
		return windows.PAGE_EXECUTE_READWRITE
	}
}

func fromWinProt(p uint32) Protection {
	switch p {
	case windows.PAGE_EXECUTE_READWRITE:
		return ProtExecuteReadWrite
	case windows.PAGE_READWRITE:
		return ProtReadWrite
	}
	return Protection(p) | rawProt
}

// Protect changes the protection of [addr, addr+size) to prot, returning
// the protection that was in effect beforehand so the caller can restore
// it.
func Protect(addr uintptr, size int, prot Protection) (Protection, error) {
	var old uint32
	err := windows.VirtualProtect(addr, uintptr(size), toWinProt(prot), &old)
	if err != nil {
		return 0, fmt.Errorf("vmem: VirtualProtect failed: %w", err)
	}
	return fromWinProt(old), nil
}

// Read copies size bytes starting at addr into a new slice.
func Read(addr uintptr, size int) []byte {
	out := make([]byte, size)
	src := unsafe.Slice((*byte)(unsafe.Pointer(addr)), size)
	copy(out, src)
	return out
}

// Write copies data into the process memory starting at addr. The
// caller is responsible for ensuring the destination window is
// currently writable.
func Write(addr uintptr, data []byte) {
	dst := unsafe.Slice((*byte)(unsafe.Pointer(addr)), len(data))
	copy(dst, data)
}
