package cmd

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/inovacc/edcourse/internal/model"
	"github.com/spf13/cobra"
)

const (
	configKeyClipboard     = "clipboard"
	configKeyStatusTimeout = "status_timeout_ms"
	configKeyLogLevel      = "log_level"
)

var configSetCmd = &cobra.Command{
	Use:   "set <key> <value>",
	Short: "Change one configuration key",
	Long: `Change one configuration key.

Examples:
  edcourse config set clipboard osc52
  edcourse config set status_timeout_ms 3000
  edcourse config set log_level debug`,
	Args:      cobra.ExactArgs(2),
	ValidArgs: []string{configKeyClipboard, configKeyStatusTimeout, configKeyLogLevel},
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := app.db.GetConfig()
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}

		if err := applyConfigValue(cfg, args[0], args[1]); err != nil {
			return err
		}

		if err := app.db.SaveConfig(cfg); err != nil {
			return fmt.Errorf("failed to save config: %w", err)
		}

		_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Set %s = %s\n", args[0], strings.TrimSpace(args[1]))

		return nil
	},
}

func init() {
	configCmd.AddCommand(configSetCmd)
}

func applyConfigValue(cfg *model.Config, key, value string) error {
	value = strings.TrimSpace(value)

	switch key {
	case configKeyClipboard:
		mode, err := model.ParseClipboardMode(value)
		if err != nil {
			return err
		}

		cfg.Clipboard = mode

	case configKeyStatusTimeout:
		ms, err := strconv.Atoi(value)
		if err != nil || ms <= 0 {
			return fmt.Errorf("invalid %s %q (want a positive number of milliseconds)", key, value)
		}

		cfg.StatusTimeoutMs = ms

	case configKeyLogLevel:
		level := strings.ToLower(value)
		switch level {
		case "debug", "info", "warn", "error":
		default:
			return fmt.Errorf("invalid %s %q (want debug, info, warn or error)", key, value)
		}

		cfg.LogLevel = level

	default:
		return fmt.Errorf("unknown config key %q (want %s, %s or %s)",
			key, configKeyClipboard, configKeyStatusTimeout, configKeyLogLevel)
	}

	return nil
}
