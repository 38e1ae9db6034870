package cmd

import (
	"fmt"
	"io"

	"github.com/inovacc/edcourse/internal/core"
	"github.com/spf13/cobra"
)

var showTimeFormat timeFormat

var showCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the patient board and the selected course",
	Long: `Print the patient list, the selected patient's entries (oldest at top) and
the counters as plain text.

Examples:
  edcourse show
  edcourse show --time-format 12h`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		var override *timeFormat
		if cmd.Flags().Changed("time-format") {
			override = &showTimeFormat
		}

		return runShow(cmd.OutOrStdout(), app.tracker, override)
	},
}

func init() {
	rootCmd.AddCommand(showCmd)

	showCmd.Flags().Var(&showTimeFormat, "time-format", "Display timestamps as 12h or 24h for this run only")
}

// runShow prints the rendered board. A non-nil format overrides the stored
// preference without saving it.
func runShow(out io.Writer, t *core.Tracker, format *timeFormat) error {
	view := t.View()
	if format != nil {
		view = t.ViewWith(format.use24Hour())
	}

	_, err := fmt.Fprint(out, view.Text())

	return err
}
