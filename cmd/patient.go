package cmd

import (
	"github.com/spf13/cobra"
)

var patientCmd = &cobra.Command{
	Use:     "patient",
	Aliases: []string{"patients", "pt"},
	Short:   "Manage the patient board",
	Long: `Add, rename, remove, list and select patients.

Patients are referenced by id, by their 1-based position in the list, or by
label (exact first, then case-insensitive). Commands that take an optional
reference act on the selected patient when it is omitted.

Available Commands:
  add      Add a patient and select it
  rename   Change a patient's label or room/bed
  remove   Remove a patient and all their entries
  list     List patients
  select   Select the patient new entries go to`,
	Run: func(cmd *cobra.Command, args []string) {
		_ = cmd.Help()
	},
}

func init() {
	rootCmd.AddCommand(patientCmd)
}
