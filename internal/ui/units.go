package ui

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/x/ansi"
	"github.com/spf13/cobra"
	"golang.org/x/text/language"

	"github.com/javiermolinar/timewheel/internal/timeunit"
)

// sampleCounts are the values shown for each unit. They cover the
// one, few, many and other plural categories of the bundled locales.
var sampleCounts = []int{0, 1, 2, 5, 21}

const (
	unitColWidth  = 9
	rangeColWidth = 7
)

func (a *App) unitsCmd() *cobra.Command {
	var locale string

	cmd := &cobra.Command{
		Use:   "units",
		Short: "List the wheel units with their ranges and labels",
		Long: `Print every wheel unit with its range and sample labels for a locale.

Example:
  timewheel units
  timewheel units --locale pl`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			tag, err := a.resolveLocale(locale)
			if err != nil {
				return err
			}
			printUnits(cmd.OutOrStdout(), tag, a.config.LabelStyle(), termWidth())
			return nil
		},
	}

	cmd.Flags().StringVarP(&locale, "locale", "l", "", "BCP 47 locale (defaults to config and environment)")
	return cmd
}

// printUnits writes the unit table. Sample columns that do not fit in width
// are dropped.
func printUnits(w io.Writer, tag language.Tag, style timeunit.Style, width int) {
	_, _ = fmt.Fprintf(w, "%s %s\n\n", formatHeader("Units"), formatMuted("("+tag.String()+")"))

	for _, u := range timeunit.All() {
		r := u.Range()
		rangeText := fmt.Sprintf("%d-%d", r.Min, r.Max)

		used := 2 + unitColWidth + 2 + rangeColWidth
		samples := make([]string, 0, len(sampleCounts))
		for _, n := range sampleCounts {
			s := timeunit.FormatCount(u, n, tag, style)
			cost := 2 + ansi.StringWidth(s)
			if used+cost > width {
				break
			}
			used += cost
			samples = append(samples, formatLabel(s))
		}

		_, _ = fmt.Fprintf(w, "  %s  %s  %s\n",
			formatUnit(padRight(u.String(), unitColWidth)),
			formatMuted(padRight(rangeText, rangeColWidth)),
			strings.Join(samples, "  "))
	}
}
