package cmd

import (
	"github.com/spf13/cobra"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage edcourse configuration",
	Long: `Commands for managing edcourse configuration.

Keys:
  clipboard          auto, system or osc52
  status_timeout_ms  how long TUI status messages stay visible
  log_level          debug, info, warn or error

Available Commands:
  show      Show the current configuration
  set       Change one key
  reset     Restore the defaults
  edit      Edit the configuration interactively`,
	Run: func(cmd *cobra.Command, args []string) {
		_ = cmd.Help()
	},
}

func init() {
	rootCmd.AddCommand(configCmd)
}
