// Command tramphook is a demonstration CLI around the hook package: it
// resolves a target export by DLL and procedure name, installs a hook
// redirecting it to a caller-supplied detour address, and can list or
// tear down hooks installed in the running process.
package main

import (
	"fmt"
	"os"

	"github.com/fatih/color"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		color.Red("error: %s", err)
		fmt.Fprintln(os.Stderr)
		os.Exit(1)
	}
}
