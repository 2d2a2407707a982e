//go:build !windows

package main

import "errors"

// resolveProc is unsupported outside Windows - there is no loader
// analogous to LoadLibrary/GetProcAddress to resolve against.
func resolveProc(dll, proc string) (uintptr, error) {
	return 0, errors.New("tramphook: resolving DLL exports is only supported on windows")
}
