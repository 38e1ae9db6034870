package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var (
	patientRenameLabel string
	patientRenameRoom  string
)

var patientRenameCmd = &cobra.Command{
	Use:   "rename [ref]",
	Short: "Change a patient's label or room/bed",
	Long: `Change the label and/or room of a patient (the selected one by default).

An empty --label keeps the current label. --room replaces the room; pass an
empty value to clear it. Omitting --room leaves the room unchanged.

Examples:
  edcourse patient rename --label "B12 – 81M SBO, surg consulted"
  edcourse patient rename 2 --room ""`,
	Args: cobra.MaximumNArgs(1),
	RunE: runPatientRename,
}

func init() {
	patientCmd.AddCommand(patientRenameCmd)

	patientRenameCmd.Flags().StringVarP(&patientRenameLabel, "label", "l", "", "New label (empty keeps the current one)")
	patientRenameCmd.Flags().StringVarP(&patientRenameRoom, "room", "r", "", "New room or bed (empty clears it)")
}

func runPatientRename(cmd *cobra.Command, args []string) error {
	p, err := resolvePatient(app.tracker, args)
	if err != nil {
		return describeError(err)
	}

	room := p.Room
	if cmd.Flags().Changed("room") {
		room = patientRenameRoom
	}

	if err := app.tracker.RenamePatient(p.ID, patientRenameLabel, room); err != nil {
		return describeError(err)
	}

	p, err = app.tracker.ResolvePatient(p.ID)
	if err != nil {
		return err
	}

	_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Patient is now %q", p.Label)
	if p.Room != "" {
		_, _ = fmt.Fprintf(cmd.OutOrStdout(), " in %s", p.Room)
	}

	_, _ = fmt.Fprintln(cmd.OutOrStdout(), ".")

	return nil
}
