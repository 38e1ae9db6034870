package cmd

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/inovacc/edcourse/internal/core"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

var entryAddPatient string

var errNoEntryText = errors.New("no entry text given; pass it as arguments or pipe it on stdin")

// stdinIsTerminal reports whether in is an interactive terminal. Tests
// replace it.
var stdinIsTerminal = func(in io.Reader) bool {
	f, ok := in.(*os.File)

	return ok && term.IsTerminal(int(f.Fd()))
}

var entryAddCmd = &cobra.Command{
	Use:   "add [text...]",
	Short: "Append an entry stamped with the current time",
	Long: `Append an entry to the selected patient's course (or the one given with
--patient). The text is taken from the arguments, or read from stdin when
there are none.

Examples:
  edcourse entry add "Pt re-eval, VS stable, pain improved"
  echo "Surgery at bedside" | edcourse entry add
  edcourse entry add --patient 2 "CT read back"`,
	RunE: runEntryAdd,
}

func init() {
	entryCmd.AddCommand(entryAddCmd)

	entryAddCmd.Flags().StringVarP(&entryAddPatient, "patient", "p", "", "Patient id, position or label (default: selected)")
}

func runEntryAdd(cmd *cobra.Command, args []string) error {
	text := strings.Join(args, " ")
	if len(args) == 0 {
		if stdinIsTerminal(cmd.InOrStdin()) {
			return errNoEntryText
		}

		data, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return fmt.Errorf("failed to read entry from stdin: %w", err)
		}

		text = string(data)
	}

	id := app.tracker.SelectedID()
	if entryAddPatient != "" {
		p, err := app.tracker.ResolvePatient(entryAddPatient)
		if err != nil {
			return describeError(err)
		}

		id = p.ID
	}

	e, err := app.tracker.AddEntry(id, text)
	if err != nil {
		return describeError(err)
	}

	ts := core.FormatTimestamp(e.Time().Local(), app.tracker.State().Use24Hour)
	_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n", core.MsgEntryAdded, ts)

	return nil
}
