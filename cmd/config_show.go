package cmd

import (
	"fmt"
	"io"
	"strconv"

	"github.com/inovacc/edcourse/internal/encoding"
	"github.com/inovacc/edcourse/internal/model"
	"github.com/inovacc/edcourse/internal/params"
	"github.com/spf13/cobra"
)

var configShowJSON bool

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show the current configuration",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := app.db.GetConfig()
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}

		return printConfig(cmd.OutOrStdout(), cfg, configShowJSON)
	},
}

func init() {
	configCmd.AddCommand(configShowCmd)

	configShowCmd.Flags().BoolVar(&configShowJSON, "json", false, "Output as JSON")
}

func printConfig(out io.Writer, cfg *model.Config, asJSON bool) error {
	if asJSON {
		data, err := encoding.ToJSONIndent(cfg)
		if err != nil {
			return err
		}

		_, _ = fmt.Fprintln(out, string(data))

		return nil
	}

	items := map[string]string{
		configKeyClipboard:     string(cfg.Clipboard),
		configKeyStatusTimeout: strconv.Itoa(cfg.StatusTimeoutMs),
		configKeyLogLevel:      cfg.LogLevel,
	}
	order := []string{configKeyClipboard, configKeyStatusTimeout, configKeyLogLevel}

	if !ephemeral {
		if dir, err := params.AppdataDir(); err == nil {
			items["data_dir"] = dir
			order = append(order, "data_dir")
		}
	}

	printInfoBox(out, "ED Course Helper Configuration", items, order)

	return nil
}
