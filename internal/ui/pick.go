package ui

import (
	"errors"
	"fmt"
	"os"

	"github.com/atotto/clipboard"
	"github.com/spf13/cobra"

	"github.com/javiermolinar/timewheel/internal/timeunit"
	"github.com/javiermolinar/timewheel/internal/tui"
)

// ErrCanceled is returned when the picker closes without a confirmed value.
var ErrCanceled = errors.New("canceled")

func (a *App) pickCmd() *cobra.Command {
	var (
		initial string
		format  string
		copyOut bool
	)

	cmd := &cobra.Command{
		Use:   "pick",
		Short: "Pick a time and print it",
		Long: `Open the time picker sheet and print the confirmed value.

The sheet draws on stderr so the result can be captured from stdout.
Dismissing the sheet exits with status 1.

Example:
  timewheel pick --initial 00:25:00
  timewheel pick --format seconds
  sleep $(timewheel pick --format seconds)`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if a.requireTTY && !isTerminal(os.Stderr) {
				return errors.New("pick needs a terminal on stderr")
			}

			f, err := parseOutputFormat(format)
			if err != nil {
				return err
			}

			start := a.config.InitialSelection()
			if initial != "" {
				start, err = timeunit.ParseSelection(initial)
				if err != nil {
					return fmt.Errorf("invalid --initial: %w", err)
				}
			}

			sel, err := a.pick(a.config, start)
			if errors.Is(err, tui.ErrCanceled) {
				return ErrCanceled
			}
			if err != nil {
				return err
			}

			out := formatOutput(sel, f, a.config.LocaleTag(), a.config.LabelStyle())
			if copyOut {
				if err := a.copy(sel.String()); err != nil {
					return fmt.Errorf("copying to clipboard: %w", err)
				}
			}
			_, _ = fmt.Fprintln(cmd.OutOrStdout(), out)
			return nil
		},
	}

	cmd.Flags().StringVar(&initial, "initial", "", "Initial value (HH:MM:SS, MM:SS or SS)")
	cmd.Flags().StringVarP(&format, "format", "f", string(formatHMS), "Output format: hms, seconds, duration, text")
	cmd.Flags().BoolVar(&copyOut, "copy", false, "Also copy HH:MM:SS to the clipboard")

	return cmd
}

func writeClipboard(text string) error {
	return clipboard.WriteAll(text)
}
