package model

import "fmt"

// ClipboardMode selects how exported text reaches the clipboard.
type ClipboardMode string

const (
	// ClipboardAuto tries the system clipboard and falls back to OSC 52
	ClipboardAuto ClipboardMode = "auto"

	// ClipboardSystem uses the operating system clipboard only
	ClipboardSystem ClipboardMode = "system"

	// ClipboardOSC52 writes an OSC 52 escape sequence to the terminal
	ClipboardOSC52 ClipboardMode = "osc52"
)

// ParseClipboardMode validates a clipboard mode string.
func ParseClipboardMode(s string) (ClipboardMode, error) {
	switch m := ClipboardMode(s); m {
	case ClipboardAuto, ClipboardSystem, ClipboardOSC52:
		return m, nil
	default:
		return "", fmt.Errorf("invalid clipboard mode %q (want auto, system or osc52)", s)
	}
}

// Config holds the application configuration
type Config struct {
	// Clipboard is the clipboard backend used by the course export
	Clipboard ClipboardMode `json:"clipboard"`

	// StatusTimeoutMs is how long a status message stays visible in the TUI
	StatusTimeoutMs int `json:"status_timeout_ms"`

	// LogLevel is the default slog level (debug, info, warn, error)
	LogLevel string `json:"log_level"`
}

// DefaultConfig returns a Config with sensible defaults
func DefaultConfig() Config {
	return Config{
		Clipboard:       ClipboardAuto,
		StatusTimeoutMs: 2000,
		LogLevel:        "info",
	}
}

// Normalize replaces zero or invalid fields with their defaults.
func (c *Config) Normalize() {
	def := DefaultConfig()

	if _, err := ParseClipboardMode(string(c.Clipboard)); err != nil {
		c.Clipboard = def.Clipboard
	}

	if c.StatusTimeoutMs <= 0 {
		c.StatusTimeoutMs = def.StatusTimeoutMs
	}

	switch c.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		c.LogLevel = def.LogLevel
	}
}
