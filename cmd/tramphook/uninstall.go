package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var (
	uninstallDLL  string
	uninstallProc string
	uninstallAll  bool
)

var uninstallCmd = &cobra.Command{
	Use:   "uninstall",
	Short: "Remove a hook, or every hook, from the current process",
	RunE:  runUninstall,
}

func init() {
	uninstallCmd.Flags().StringVar(&uninstallDLL, "dll", "", "DLL name the hooked export lives in")
	uninstallCmd.Flags().StringVar(&uninstallProc, "proc", "", "hooked procedure name")
	uninstallCmd.Flags().BoolVar(&uninstallAll, "all", false, "remove every installed hook")
}

func runUninstall(cmd *cobra.Command, args []string) error {
	if uninstallAll {
		engine().UninstallAll()
		color.Green("all hooks removed")
		return nil
	}

	if uninstallDLL == "" || uninstallProc == "" {
		return fmt.Errorf("either --all, or both --dll and --proc, are required")
	}

	target, err := resolveProc(uninstallDLL, uninstallProc)
	if err != nil {
		return err
	}

	if err := engine().Uninstall(target); err != nil {
		return err
	}

	color.Green("unhooked %s!%s", uninstallDLL, uninstallProc)
	return nil
}
