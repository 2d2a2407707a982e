package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var (
	installDLL    string
	installProc   string
	installDetour string
)

var installCmd = &cobra.Command{
	Use:   "install",
	Short: "Install a hook on a DLL export",
	RunE:  runInstall,
}

func init() {
	installCmd.Flags().StringVar(&installDLL, "dll", "", "DLL name the target export lives in (required)")
	installCmd.Flags().StringVar(&installProc, "proc", "", "exported procedure name to hook (required)")
	installCmd.Flags().StringVar(&installDetour, "detour", "", "detour address, as a hex literal like 0x7ffabc123000 (required)")
	installCmd.MarkFlagRequired("dll")
	installCmd.MarkFlagRequired("proc")
	installCmd.MarkFlagRequired("detour")
}

func runInstall(cmd *cobra.Command, args []string) error {
	target, err := resolveProc(installDLL, installProc)
	if err != nil {
		return err
	}

	detour, err := parseHexAddress(installDetour)
	if err != nil {
		return fmt.Errorf("invalid --detour: %w", err)
	}

	trampoline, err := engine().Install(target, detour)
	if err != nil {
		return fmt.Errorf("install %s!%s: %w", installDLL, installProc, err)
	}

	color.Green("hooked %s!%s", installDLL, installProc)
	fmt.Printf("  target:     0x%x\n", target)
	fmt.Printf("  detour:     0x%x\n", detour)
	fmt.Printf("  trampoline: 0x%x\n", trampoline)
	return nil
}

func parseHexAddress(s string) (uintptr, error) {
	s = strings.TrimPrefix(strings.TrimPrefix(s, "0x"), "0X")
	v, err := strconv.ParseUint(s, 16, 64)
	if err != nil {
		return 0, err
	}
	return uintptr(v), nil
}
