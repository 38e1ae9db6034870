package cmd

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/inovacc/edcourse/internal/cli"
	"github.com/spf13/cobra"
)

var tuiCmd = &cobra.Command{
	Use:   "tui",
	Short: "Open the interactive course tracker",
	Long: `Open the full-screen tracker: patients on the left, the selected patient's
course on the right.

Keys:
  a        add a patient
  enter    select the highlighted patient
  tab      write an entry (ctrl+s adds it, esc goes back)
  r / d    rename / remove the selected patient
  c        copy the course to the clipboard
  t        toggle 12/24-hour time
  q        quit`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runTUI()
	},
}

func init() {
	rootCmd.AddCommand(tuiCmd)
}

func runTUI() error {
	m := cli.NewApp(app.tracker, app.cfg)

	p := tea.NewProgram(m, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return err
	}

	return nil
}
