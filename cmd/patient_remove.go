package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var patientRemoveYes bool

var patientRemoveCmd = &cobra.Command{
	Use:     "remove [ref]",
	Aliases: []string{"rm", "delete"},
	Short:   "Remove a patient and all their entries",
	Long: `Remove a patient (the selected one by default) together with all of their
course entries. If the selected patient is removed, the first remaining
patient becomes selected.

Examples:
  edcourse patient remove
  edcourse patient remove "B12 – 81M SBO" -y`,
	Args: cobra.MaximumNArgs(1),
	RunE: runPatientRemove,
}

func init() {
	patientCmd.AddCommand(patientRemoveCmd)

	patientRemoveCmd.Flags().BoolVarP(&patientRemoveYes, "yes", "y", false, "Skip confirmation")
}

func runPatientRemove(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()

	p, err := resolvePatient(app.tracker, args)
	if err != nil {
		return describeError(err)
	}

	if !patientRemoveYes {
		prompt := fmt.Sprintf("Remove patient %q and all their entries? [y/N]: ", p.Label)
		if !promptConfirm(cmd.InOrStdin(), out, prompt) {
			_, _ = fmt.Fprintln(out, "Cancelled.")

			return nil
		}
	}

	if err := app.tracker.DeletePatient(p.ID); err != nil {
		return describeError(err)
	}

	_, _ = fmt.Fprintf(out, "Removed patient %q.\n", p.Label)

	return nil
}
