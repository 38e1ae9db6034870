package cmd

import (
	"github.com/spf13/cobra"
)

var entryCmd = &cobra.Command{
	Use:     "entry",
	Aliases: []string{"entries"},
	Short:   "Log ED course entries",
	Long: `Log timestamped course entries for the selected patient.

Entries cannot be edited or deleted once added.

Available Commands:
  add      Append an entry stamped with the current time`,
	Run: func(cmd *cobra.Command, args []string) {
		_ = cmd.Help()
	},
}

func init() {
	rootCmd.AddCommand(entryCmd)
}
