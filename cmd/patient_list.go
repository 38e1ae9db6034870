package cmd

import (
	"fmt"
	"text/tabwriter"
	"time"

	"github.com/inovacc/edcourse/internal/encoding"
	"github.com/spf13/cobra"
)

var patientListJSON bool

var patientListCmd = &cobra.Command{
	Use:   "list",
	Short: "List patients",
	Long: `List patients in board order. The selected patient is marked with an
asterisk (*).

Examples:
  edcourse patient list
  edcourse patient list --json`,
	Aliases: []string{"ls"},
	Args:    cobra.NoArgs,
	RunE:    runPatientList,
}

func init() {
	patientCmd.AddCommand(patientListCmd)

	patientListCmd.Flags().BoolVar(&patientListJSON, "json", false, "Output as JSON")
}

// PatientListItem represents a patient in JSON output
type PatientListItem struct {
	Position  int       `json:"position"`
	ID        string    `json:"id"`
	Label     string    `json:"label"`
	Room      string    `json:"room,omitempty"`
	Entries   int       `json:"entries"`
	Selected  bool      `json:"selected"`
	CreatedAt time.Time `json:"created_at"`
}

func runPatientList(cmd *cobra.Command, _ []string) error {
	out := cmd.OutOrStdout()
	st := app.tracker.State()

	if patientListJSON {
		items := make([]PatientListItem, 0, len(st.Patients))
		for i, p := range st.Patients {
			items = append(items, PatientListItem{
				Position:  i + 1,
				ID:        p.ID,
				Label:     p.Label,
				Room:      p.Room,
				Entries:   len(p.Entries),
				Selected:  p.ID == st.SelectedPatientID,
				CreatedAt: time.UnixMilli(p.CreatedAt).UTC(),
			})
		}

		data, err := encoding.ToJSONIndent(items)
		if err != nil {
			return err
		}

		_, _ = fmt.Fprintln(out, string(data))

		return nil
	}

	view := app.tracker.View()
	if view.PatientsEmpty != "" {
		_, _ = fmt.Fprintln(out, view.PatientsEmpty)
		_, _ = fmt.Fprintln(out, "Add one with: edcourse patient add <label> [--room <room>]")

		return nil
	}

	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	_, _ = fmt.Fprintln(w, "\t#\tLABEL\tROOM\tENTRIES\tADDED")

	for i, row := range view.Patients {
		marker := ""
		if row.Selected {
			marker = "*"
		}

		_, _ = fmt.Fprintf(w, "%s\t%d\t%s\t%s\t%d\t%s\n",
			marker, i+1, truncateString(row.Label, 40), row.Room, len(st.Patients[i].Entries), row.Age)
	}

	return w.Flush()
}
