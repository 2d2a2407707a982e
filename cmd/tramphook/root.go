package main

import (
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/haxo-games/TrampHook/hook"
)

var logLevel string

var rootCmd = &cobra.Command{
	Use:   "tramphook",
	Short: "Install and inspect inline function hooks",
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		if lvl, err := logrus.ParseLevel(logLevel); err == nil {
			logrus.SetLevel(lvl)
		}
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "info", "log level: trace, debug, info, warn, error")
	rootCmd.AddCommand(installCmd)
	rootCmd.AddCommand(uninstallCmd)
	rootCmd.AddCommand(listCmd)
}

func engine() *hook.Engine {
	return hook.Default()
}
