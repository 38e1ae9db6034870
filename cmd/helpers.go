package cmd

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/inovacc/edcourse/internal/core"
	"github.com/inovacc/edcourse/internal/model"
)

// promptConfirm asks the user for confirmation and returns true if they confirm
// prompt should include the question (e.g., "Remove patient? [y/N]: ")
func promptConfirm(in io.Reader, out io.Writer, prompt string) bool {
	_, _ = fmt.Fprint(out, prompt)

	var response string

	_, _ = fmt.Fscanln(in, &response)

	return response == "y" || response == "Y"
}

// resolvePatient finds the patient named by the first argument, or the
// selected patient when no argument is given.
func resolvePatient(t *core.Tracker, args []string) (model.Patient, error) {
	if len(args) > 0 && strings.TrimSpace(args[0]) != "" {
		return t.ResolvePatient(args[0])
	}

	p, ok := t.Selected()
	if !ok {
		return model.Patient{}, errors.New("no patient selected; pass a patient id, number or label")
	}

	return p, nil
}

// describeError turns an operation error into the message printed for it.
func describeError(err error) error {
	switch {
	case errors.Is(err, core.ErrNoPatientSelected):
		return fmt.Errorf("%w; run 'edcourse patient select <ref>' first", err)
	case errors.Is(err, core.ErrClipboard):
		return fmt.Errorf("%w; run 'edcourse copy --print' and copy manually", err)
	}

	return err
}

// centerString centers a string in a field of given width
func centerString(s string, width int) string {
	if len(s) >= width {
		return s
	}

	padding := (width - len(s)) / 2

	return fmt.Sprintf("%*s%s%*s", padding, "", s, width-len(s)-padding, "")
}

// truncateString truncates a string to the specified number of runes with ellipsis
func truncateString(s string, maxLen int) string {
	r := []rune(s)
	if len(r) <= maxLen {
		return s
	}

	if maxLen <= 3 {
		return string(r[:maxLen])
	}

	return string(r[:maxLen-3]) + "..."
}

// boxWidth is the standard width for info boxes
const boxWidth = 64

// printBoxHeader prints the top border of an info box with a title
func printBoxHeader(out io.Writer, title string) {
	_, _ = fmt.Fprintln(out, "╔══════════════════════════════════════════════════════════════╗")
	_, _ = fmt.Fprintf(out, "║%s║\n", centerString(title, boxWidth-2))
	_, _ = fmt.Fprintln(out, "╠══════════════════════════════════════════════════════════════╣")
}

// printBoxLine prints a line inside an info box with label and value
func printBoxLine(out io.Writer, label, value string) {
	content := truncateString(fmt.Sprintf("  %s: %s", label, value), boxWidth-2)

	padding := max(boxWidth-2-len([]rune(content)), 0)

	_, _ = fmt.Fprintf(out, "║%s%*s║\n", content, padding, "")
}

// printBoxFooter prints the bottom border of an info box
func printBoxFooter(out io.Writer) {
	_, _ = fmt.Fprintln(out, "╚══════════════════════════════════════════════════════════════╝")
}

// printInfoBox prints a complete info box with title and key-value pairs
func printInfoBox(out io.Writer, title string, items map[string]string, order []string) {
	printBoxHeader(out, title)

	for _, key := range order {
		if val, ok := items[key]; ok {
			printBoxLine(out, key, val)
		}
	}

	printBoxFooter(out)
}
