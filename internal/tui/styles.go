// Package tui provides the terminal user interface for timewheel.
package tui

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/lipgloss"

	"github.com/javiermolinar/timewheel/internal/tui/theme"
)

// Styles holds the lipgloss styles for the host screen, derived from a theme.
type Styles struct {
	// Theme colors as lipgloss colors
	colorBg      lipgloss.Color
	colorFg      lipgloss.Color
	colorFgMuted lipgloss.Color
	colorAccent  lipgloss.Color
	colorWarning lipgloss.Color

	AppStyle     lipgloss.Style
	TitleStyle   lipgloss.Style
	ClockStyle   lipgloss.Style
	CaptionStyle lipgloss.Style
	StatusStyle  lipgloss.Style
	ErrorStyle   lipgloss.Style

	Help help.Styles
}

// NewStyles creates styles from a palette.
func NewStyles(p *theme.Palette) *Styles {
	if p == nil {
		p = theme.NewPalette(nil)
	}

	s := &Styles{
		colorBg:      p.Bg,
		colorFg:      p.Fg,
		colorFgMuted: p.FgMuted,
		colorAccent:  p.Accent,
		colorWarning: p.Warning,
	}

	s.AppStyle = lipgloss.NewStyle().
		Foreground(s.colorFg).
		Background(s.colorBg)

	s.TitleStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(s.colorAccent).
		Background(s.colorBg)

	s.ClockStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(p.TextOnAccent).
		Background(s.colorAccent).
		Padding(0, 2)

	s.CaptionStyle = lipgloss.NewStyle().
		Foreground(s.colorFgMuted).
		Background(s.colorBg)

	s.StatusStyle = lipgloss.NewStyle().
		Foreground(s.colorFg).
		Background(s.colorBg)

	s.ErrorStyle = lipgloss.NewStyle().
		Foreground(s.colorWarning).
		Background(s.colorBg)

	h := help.New().Styles
	h.ShortKey = lipgloss.NewStyle().Foreground(s.colorAccent).Background(s.colorBg)
	h.ShortDesc = lipgloss.NewStyle().Foreground(s.colorFgMuted).Background(s.colorBg)
	h.ShortSeparator = lipgloss.NewStyle().Foreground(s.colorFgMuted).Background(s.colorBg)
	h.FullKey = h.ShortKey
	h.FullDesc = h.ShortDesc
	h.FullSeparator = h.ShortSeparator
	s.Help = h

	return s
}
