package cmd

import (
	"fmt"

	"github.com/inovacc/edcourse/internal/model"
	"github.com/spf13/cobra"
)

var configResetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Restore the default configuration",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := model.DefaultConfig()

		if err := app.db.SaveConfig(&cfg); err != nil {
			return fmt.Errorf("failed to save config: %w", err)
		}

		_, _ = fmt.Fprintln(cmd.OutOrStdout(), "Configuration reset to defaults.")

		return printConfig(cmd.OutOrStdout(), &cfg, false)
	},
}

func init() {
	configCmd.AddCommand(configResetCmd)
}
