package cmd

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/inovacc/edcourse/internal/application"
	"github.com/inovacc/edcourse/internal/clipboard"
	"github.com/inovacc/edcourse/internal/core"
	"github.com/inovacc/edcourse/internal/model"
	"github.com/inovacc/edcourse/internal/params"
	"github.com/inovacc/edcourse/internal/store"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

const logFileName = application.AppName + ".log"

var (
	logLevel  string
	logJSON   bool
	ephemeral bool
)

// session is the state shared by every command of one invocation.
type session struct {
	db      store.Store
	cfg     *model.Config
	tracker *core.Tracker
	logger  *slog.Logger
	closers []io.Closer
}

var app *session

// openStore returns the persistence backend for this run. Tests replace it.
var openStore = func() (store.Store, error) {
	if ephemeral {
		return store.NewMemory(), nil
	}

	return store.GetDB()
}

// newClipboard builds the clipboard used by copy. Tests replace it.
var newClipboard = func(mode model.ClipboardMode) core.Clipboard {
	return clipboard.New(mode, os.Stdout)
}

var rootCmd = &cobra.Command{
	Use:   application.AppName,
	Short: "Track timestamped ED course notes per patient",
	Long: `ED Course Helper keeps a running, timestamped course log for each patient
on your board and copies a clean plain-text summary to the clipboard for
pasting into the chart.

Run without a command to open the interactive tracker. When stdout is not a
terminal the current board is printed instead.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		s, err := newSession(cmd)
		if err != nil {
			return err
		}

		app = s

		return nil
	},
	PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
		return app.close()
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		if term.IsTerminal(int(os.Stdout.Fd())) {
			return runTUI()
		}

		return runShow(cmd.OutOrStdout(), app.tracker, nil)
	},
}

func Execute() {
	err := rootCmd.Execute()

	// PersistentPostRunE is skipped when a command fails.
	_ = app.close()

	if err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// GetRootCmd returns the root command for introspection purposes.
func GetRootCmd() *cobra.Command {
	return rootCmd
}

func init() {
	rootCmd.SilenceErrors = true
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "Log level: debug, info, warn, error (default from config)")
	rootCmd.PersistentFlags().BoolVar(&logJSON, "log-json", false, "Write logs as JSON")
	rootCmd.PersistentFlags().BoolVar(&ephemeral, "ephemeral", false, "Keep state in memory only; nothing is read from or written to disk")
}

func newSession(cmd *cobra.Command) (*session, error) {
	db, err := openStore()
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	cfg, err := db.GetConfig()
	if err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	s := &session{db: db, cfg: cfg, closers: []io.Closer{db}}

	level := cfg.LogLevel
	if cmd.Flags().Changed("log-level") {
		level = logLevel
	}

	out, closer, err := logOutput()
	if err != nil {
		_ = s.close()
		return nil, err
	}

	if closer != nil {
		s.closers = append(s.closers, closer)
	}

	s.logger = setupLogger(level, logJSON, out)
	slog.SetDefault(s.logger)

	s.tracker = core.NewTracker(core.Options{
		Store:     db,
		Clipboard: newClipboard(cfg.Clipboard),
		Location:  time.Local,
		Logger:    s.logger,
	})

	s.logger.Debug("session started",
		slog.String("command", cmd.CommandPath()),
		slog.Bool("ephemeral", ephemeral),
		slog.String("clipboard", string(cfg.Clipboard)),
	)

	return s, nil
}

func (s *session) close() error {
	if s == nil {
		return nil
	}

	var first error

	for i := len(s.closers) - 1; i >= 0; i-- {
		if err := s.closers[i].Close(); err != nil && first == nil {
			first = err
		}
	}

	s.closers = nil

	return first
}

// logOutput returns where logs go. The TUI owns the terminal, so logs are
// appended to a file in the data directory; ephemeral runs log to stderr.
func logOutput() (io.Writer, io.Closer, error) {
	if ephemeral {
		return os.Stderr, nil, nil
	}

	path, err := params.AppdataPath(logFileName)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to resolve log file: %w", err)
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o600)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open log file: %w", err)
	}

	return f, f, nil
}

func setupLogger(levelStr string, jsonOutput bool, w io.Writer) *slog.Logger {
	var level slog.Level
	switch levelStr {
	case "debug":
		level = slog.LevelDebug
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		level = slog.LevelInfo
	}

	opts := &slog.HandlerOptions{Level: level}

	var handler slog.Handler
	if jsonOutput {
		handler = slog.NewJSONHandler(w, opts)
	} else {
		handler = slog.NewTextHandler(w, opts)
	}

	return slog.New(handler)
}
