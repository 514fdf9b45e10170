package ui

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
	"golang.org/x/text/language"

	"github.com/javiermolinar/timewheel/internal/timeunit"
)

func (a *App) labelCmd() *cobra.Command {
	var (
		locale string
		style  string
		bare   bool
	)

	cmd := &cobra.Command{
		Use:   "label <unit> <value>",
		Short: "Print the localized label for a unit and count",
		Long: `Print the label a wheel shows for a value.

Units: hours, minutes, seconds (or h, m, s).
Styles: default, long, short, narrow.

Example:
  timewheel label minutes 5
  timewheel label hours 3 --locale ru
  timewheel label s 1 --style long --bare`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			unit, err := timeunit.ParseUnit(args[0])
			if err != nil {
				return err
			}
			value, err := strconv.Atoi(args[1])
			if err != nil {
				return fmt.Errorf("invalid value %q: %w", args[1], err)
			}

			tag, err := a.resolveLocale(locale)
			if err != nil {
				return err
			}
			st := a.config.LabelStyle()
			if style != "" {
				st, err = timeunit.ParseStyle(style)
				if err != nil {
					return err
				}
			}

			out := timeunit.FormatCount(unit, value, tag, st)
			if bare {
				out = timeunit.LabelStyle(unit, value, tag, st)
			}
			_, _ = fmt.Fprintln(cmd.OutOrStdout(), out)
			return nil
		},
	}

	cmd.Flags().StringVarP(&locale, "locale", "l", "", "BCP 47 locale (defaults to config and environment)")
	cmd.Flags().StringVarP(&style, "style", "s", "", "Label style: default, long, short, narrow")
	cmd.Flags().BoolVar(&bare, "bare", false, "Print only the label without the count")

	return cmd
}

// resolveLocale parses an explicit locale flag or falls back to the config.
func (a *App) resolveLocale(flag string) (language.Tag, error) {
	if flag == "" {
		return a.config.LocaleTag(), nil
	}
	tag, err := language.Parse(flag)
	if err != nil {
		return language.Und, fmt.Errorf("invalid locale %q: %w", flag, err)
	}
	return tag, nil
}
