package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// timeFormat is the 12h/24h display preference accepted by flags and args.
type timeFormat string

const (
	format12h timeFormat = "12h"
	format24h timeFormat = "24h"
)

var _ pflag.Value = (*timeFormat)(nil)

func (f *timeFormat) String() string { return string(*f) }

func (f *timeFormat) Set(v string) error {
	switch strings.ToLower(strings.TrimSpace(v)) {
	case "12h", "12":
		*f = format12h
	case "24h", "24":
		*f = format24h
	default:
		return fmt.Errorf("invalid time format %q (want 12h or 24h)", v)
	}

	return nil
}

func (f *timeFormat) Type() string { return "12h|24h" }

func (f timeFormat) use24Hour() bool { return f == format24h }

func formatOf(use24Hour bool) timeFormat {
	if use24Hour {
		return format24h
	}

	return format12h
}

var timeFormatCmd = &cobra.Command{
	Use:   "time-format [12h|24h]",
	Short: "Show or change how timestamps are displayed",
	Long: `Show or change the timestamp display preference. Stored timestamps are
never modified; only how they are shown and exported changes.

Examples:
  edcourse time-format
  edcourse time-format 12h`,
	Args:      cobra.MaximumNArgs(1),
	ValidArgs: []string{string(format12h), string(format24h)},
	RunE: func(cmd *cobra.Command, args []string) error {
		out := cmd.OutOrStdout()

		if len(args) == 0 {
			current := formatOf(app.tracker.State().Use24Hour)
			_, _ = fmt.Fprintln(out, current.String())

			return nil
		}

		var f timeFormat
		if err := f.Set(args[0]); err != nil {
			return err
		}

		app.tracker.SetUse24Hour(f.use24Hour())
		_, _ = fmt.Fprintf(out, "Timestamps now shown in %s time.\n", f.String())

		return nil
	},
}

func init() {
	rootCmd.AddCommand(timeFormatCmd)
}
