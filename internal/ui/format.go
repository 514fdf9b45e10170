package ui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/x/ansi"
	"golang.org/x/text/language"

	"github.com/javiermolinar/timewheel/internal/timeunit"
)

// outputFormat selects how a picked selection is printed.
type outputFormat string

const (
	formatHMS      outputFormat = "hms"      // 01:05:00
	formatSeconds  outputFormat = "seconds"  // 3900
	formatDuration outputFormat = "duration" // 1h5m0s
	formatText     outputFormat = "text"     // 1 hour 5 mins
)

var outputFormats = []outputFormat{formatHMS, formatSeconds, formatDuration, formatText}

func parseOutputFormat(s string) (outputFormat, error) {
	f := outputFormat(strings.ToLower(strings.TrimSpace(s)))
	if f == "" {
		return formatHMS, nil
	}
	for _, known := range outputFormats {
		if f == known {
			return f, nil
		}
	}
	names := make([]string, len(outputFormats))
	for i, known := range outputFormats {
		names[i] = string(known)
	}
	return "", fmt.Errorf("invalid format %q (use %s)", s, strings.Join(names, ", "))
}

// formatOutput renders sel in the requested format.
func formatOutput(sel timeunit.Selection, f outputFormat, tag language.Tag, style timeunit.Style) string {
	switch f {
	case formatSeconds:
		return strconv.Itoa(sel.TotalSeconds())
	case formatDuration:
		return sel.Duration().String()
	case formatText:
		return timeunit.FormatSelection(sel, tag, style)
	default:
		return sel.String()
	}
}

// padRight pads s with spaces to width terminal cells.
func padRight(s string, width int) string {
	n := ansi.StringWidth(s)
	if n >= width {
		return s
	}
	return s + strings.Repeat(" ", width-n)
}
