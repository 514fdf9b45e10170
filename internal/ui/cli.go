// Package ui implements the timewheel command line interface.
package ui

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/javiermolinar/timewheel/internal/config"
	"github.com/javiermolinar/timewheel/internal/timeunit"
	"github.com/javiermolinar/timewheel/internal/tui"
)

var (
	// Version is set at build time
	Version = "dev"
	// Commit is set at build time
	Commit = "none"
)

// PickFunc runs the one-shot picker and returns the confirmed selection.
type PickFunc func(cfg *config.Config, initial timeunit.Selection) (timeunit.Selection, error)

// App holds the CLI application state.
type App struct {
	config *config.Config
	root   *cobra.Command
	debug  bool // Enable debug logging
	pick   PickFunc
	copy   func(string) error

	requireTTY bool // pick refuses to run without a terminal on stderr
}

// NewApp creates a new CLI application with the given config.
func NewApp(cfg *config.Config) *App {
	a := &App{
		config: cfg,
		pick:   tui.RunPicker,
		copy:   writeClipboard,

		requireTTY: true,
	}

	a.root = &cobra.Command{
		Use:   "timewheel",
		Short: "A terminal time picker",
		Long: `Timewheel is a terminal time picker with hour, minute and second wheels.

It opens a modal sheet over the terminal, labels each wheel in your
language and hands the chosen value back to the shell.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(_ *cobra.Command, _ []string) error {
			return tui.RunWithDebug(a.config, a.debug)
		},
	}

	// Add global flags
	a.root.PersistentFlags().BoolVar(&a.debug, "debug", false, "Enable debug logging (writes "+tui.DebugLogPath+")")

	a.root.AddCommand(a.versionCmd())
	a.root.AddCommand(a.configCmd())
	a.root.AddCommand(a.pickCmd())
	a.root.AddCommand(a.labelCmd())
	a.root.AddCommand(a.unitsCmd())

	return a
}

func (a *App) versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version number",
		Run: func(cmd *cobra.Command, _ []string) {
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "timewheel %s (commit: %s)\n", Version, Commit)
		},
	}
}

// Execute runs the CLI application.
func (a *App) Execute() error {
	return a.root.Execute()
}
