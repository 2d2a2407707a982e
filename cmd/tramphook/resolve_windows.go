package main

import (
	"fmt"

	"golang.org/x/sys/windows"
)

// resolveProc returns the address of proc exported by dll, loading the
// DLL into the current process if it isn't already mapped.
func resolveProc(dll, proc string) (uintptr, error) {
	mod := windows.NewLazySystemDLL(dll)
	p := mod.NewProc(proc)
	if err := p.Find(); err != nil {
		return 0, fmt.Errorf("resolving %s!%s: %w", dll, proc, err)
	}
	return p.Addr(), nil
}
