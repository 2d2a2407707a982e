package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "Show how many hooks are currently installed",
	Run: func(cmd *cobra.Command, args []string) {
		count := engine().Count()
		if count == 0 {
			color.Yellow("no hooks installed")
			return
		}
		fmt.Printf("%d hook(s) installed\n", count)
	},
}
