package cmd

import (
	"fmt"

	"github.com/inovacc/edcourse/internal/core"
	"github.com/spf13/cobra"
)

var copyPrint bool

var copyCmd = &cobra.Command{
	Use:   "copy [ref]",
	Short: "Copy a patient's ED course to the clipboard",
	Long: `Copy the course of the selected patient (or the one given) to the clipboard
as plain text: the label on the first line, then one "<time> - <text>" line
per entry, oldest first.

The clipboard backend comes from the "clipboard" config key (auto, system or
osc52). Use --print to write the text to stdout instead.

Examples:
  edcourse copy
  edcourse copy --print > course.txt`,
	Args: cobra.MaximumNArgs(1),
	RunE: runCopy,
}

func init() {
	rootCmd.AddCommand(copyCmd)

	copyCmd.Flags().BoolVar(&copyPrint, "print", false, "Print the course to stdout instead of copying it")
}

func runCopy(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()

	p, err := resolvePatient(app.tracker, args)
	if err != nil {
		return describeError(err)
	}

	if copyPrint {
		text, err := app.tracker.Course(p.ID)
		if err != nil {
			return describeError(err)
		}

		_, _ = fmt.Fprintln(out, text)

		return nil
	}

	if _, err := app.tracker.ExportCourse(p.ID); err != nil {
		return describeError(err)
	}

	_, _ = fmt.Fprintln(out, core.MsgCopied)

	return nil
}
