package picker

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/lipgloss"

	"github.com/javiermolinar/timewheel/internal/tui/theme"
)

// Styles holds the lipgloss styles used to draw the wheels.
// Backgrounds are left unset on everything except the selected band so the
// picker Background shows through.
type Styles struct {
	Row             lipgloss.Style // Values above and below the selection
	Selected        lipgloss.Style // Selected value on a blurred wheel
	SelectedFocused lipgloss.Style // Selected value on the focused wheel
	Label           lipgloss.Style
	LabelFocused    lipgloss.Style
	Separator       lipgloss.Style
	Help            help.Styles
}

// DefaultStyles derives picker styles from a palette.
func DefaultStyles(p *theme.Palette) Styles {
	if p == nil {
		p = theme.NewPalette(nil)
	}

	band := lipgloss.NewStyle().
		Background(p.BgSelection).
		Foreground(p.Fg).
		Padding(0, 1)

	h := help.New().Styles
	h.ShortKey = lipgloss.NewStyle().Foreground(p.Accent)
	h.ShortDesc = lipgloss.NewStyle().Foreground(p.FgMuted)
	h.ShortSeparator = lipgloss.NewStyle().Foreground(p.FgMuted)
	h.FullKey = h.ShortKey
	h.FullDesc = h.ShortDesc
	h.FullSeparator = h.ShortSeparator

	return Styles{
		Row:             lipgloss.NewStyle().Foreground(p.FgMuted).Padding(0, 1),
		Selected:        band,
		SelectedFocused: band.Foreground(p.Accent).Bold(true),
		Label:           lipgloss.NewStyle().Foreground(p.Fg),
		LabelFocused:    lipgloss.NewStyle().Foreground(p.Accent),
		Separator:       lipgloss.NewStyle().Foreground(p.FgMuted),
		Help:            h,
	}
}
