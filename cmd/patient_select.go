package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var patientSelectCmd = &cobra.Command{
	Use:   "select <ref>",
	Short: "Select the patient new entries go to",
	Long: `Select a patient by id, 1-based position or label.

Examples:
  edcourse patient select 2
  edcourse patient select "B12 – 81M SBO"`,
	Aliases: []string{"use"},
	Args:    cobra.ExactArgs(1),
	RunE:    runPatientSelect,
}

func init() {
	patientCmd.AddCommand(patientSelectCmd)
}

func runPatientSelect(cmd *cobra.Command, args []string) error {
	p, err := app.tracker.ResolvePatient(args[0])
	if err != nil {
		return describeError(err)
	}

	if err := app.tracker.SelectPatient(p.ID); err != nil {
		return describeError(err)
	}

	_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Selected patient %q.\n", p.Label)

	return nil
}
