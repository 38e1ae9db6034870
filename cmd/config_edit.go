package cmd

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/inovacc/edcourse/internal/cli"
	"github.com/spf13/cobra"
)

var configEditCmd = &cobra.Command{
	Use:     "edit",
	Aliases: []string{"configure"},
	Short:   "Edit the configuration interactively",
	Args:    cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		m, err := cli.NewConfigureModel(app.db)
		if err != nil {
			return err
		}

		p := tea.NewProgram(&m)

		finalModel, err := p.Run()
		if err != nil {
			return err
		}

		configModel, ok := finalModel.(*cli.ConfigureModel)
		if !ok {
			return fmt.Errorf("unexpected model type %T", finalModel)
		}

		if configModel.Err != nil {
			return configModel.Err
		}

		return nil
	},
}

func init() {
	configCmd.AddCommand(configEditCmd)
}
