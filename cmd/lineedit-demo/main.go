// Command lineedit-demo runs a prompt field above a history of submitted
// lines.
package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/iw2rmb/lineedit"
	"github.com/iw2rmb/lineedit/internal/config"
	"github.com/iw2rmb/lineedit/internal/logger"
)

type options struct {
	configPath      string
	logFile         string
	logLevel        string
	width           int
	systemClipboard bool
}

func newRootCmd() *cobra.Command {
	var opts options

	cmd := &cobra.Command{
		Use:           "lineedit-demo",
		Short:         "Interactive single-line text field",
		Version:       lineedit.Version(),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return run(cmd, opts)
		},
	}

	f := cmd.Flags()
	f.StringVarP(&opts.configPath, "config", "c", "", "TOML config file")
	f.StringVar(&opts.logFile, "log-file", "", "write logs to this file")
	f.StringVar(&opts.logLevel, "log-level", "", "log level: debug, info, warn, error")
	f.IntVarP(&opts.width, "width", "w", 0, "field width in cells (0 follows the terminal)")
	f.BoolVar(&opts.systemClipboard, "system-clipboard", true, "use the system clipboard")
	return cmd
}

func run(cmd *cobra.Command, opts options) error {
	cfg, err := config.Load(opts.configPath)
	if err != nil {
		return err
	}
	applyFlags(cmd, opts, &cfg)

	log, closeLog, err := logger.Open(cfg.Logger)
	if err != nil {
		return err
	}
	defer func() { _ = closeLog() }()

	if len(cfg.Undecoded) > 0 {
		log.Warn("unrecognized config keys", "path", opts.configPath, "keys", cfg.Undecoded)
	}
	log.Info("starting", "version", lineedit.Version(), "width", cfg.Field.Width)

	// Query the background color before the program owns stdin.
	_ = lipgloss.HasDarkBackground()

	p := tea.NewProgram(
		newDemo(cfg, log),
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
		tea.WithReportFocus(),
	)
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("running program: %w", err)
	}
	return nil
}

// applyFlags overrides file values with flags set on the command line.
func applyFlags(cmd *cobra.Command, opts options, cfg *config.Config) {
	f := cmd.Flags()
	if f.Changed("log-file") {
		cfg.Logger.File = opts.logFile
	}
	if f.Changed("log-level") {
		cfg.Logger.Level = opts.logLevel
	}
	if f.Changed("width") && opts.width >= 0 {
		cfg.Field.Width = opts.width
	}
	if f.Changed("system-clipboard") {
		cfg.Field.SystemClipboard = opts.systemClipboard
	}
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "lineedit-demo:", err)
		os.Exit(1)
	}
}
