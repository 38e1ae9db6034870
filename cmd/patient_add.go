package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

var patientAddRoom string

var patientAddCmd = &cobra.Command{
	Use:   "add <label>",
	Short: "Add a patient and select it",
	Long: `Add a patient to the end of the board and make it the selected patient.

Examples:
  edcourse patient add "B12 – 81M SBO" --room 12
  edcourse patient add Fast-track 3`,
	Args: cobra.MinimumNArgs(1),
	RunE: runPatientAdd,
}

func init() {
	patientCmd.AddCommand(patientAddCmd)

	patientAddCmd.Flags().StringVarP(&patientAddRoom, "room", "r", "", "Room or bed")
}

func runPatientAdd(cmd *cobra.Command, args []string) error {
	p, err := app.tracker.AddPatient(strings.Join(args, " "), patientAddRoom)
	if err != nil {
		return describeError(err)
	}

	_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Added patient %q (%s).\n", p.Label, p.ID)

	return nil
}
