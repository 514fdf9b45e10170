// Package view provides rendering helpers for the TUI.
package view

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/javiermolinar/timewheel/internal/tui/theme"
)

// ModalStyles groups the styles needed to render modal frames and buttons.
type ModalStyles struct {
	ModalHeaderStyle       lipgloss.Style
	ModalTitleStyle        lipgloss.Style
	ModalFooterStyle       lipgloss.Style
	ModalStyle             lipgloss.Style
	ModalButtonStyle       lipgloss.Style
	ModalButtonActiveStyle lipgloss.Style
	ModalBodyStyle         lipgloss.Style
	ModalHintStyle         lipgloss.Style
}

// NewModalStyles builds modal styles from the palette's modal colors.
func NewModalStyles(p *theme.Palette) ModalStyles {
	if p == nil {
		p = theme.NewPalette(nil)
	}
	modal := p.Modal

	var s ModalStyles
	s.ModalStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(modal.Border).
		BorderBackground(modal.Bg).
		Background(modal.Bg).
		Foreground(modal.Text).
		Padding(1, 2).
		Align(lipgloss.Center)

	s.ModalHeaderStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(modal.Text).
		Background(modal.Bg).
		Padding(0, 1).
		Align(lipgloss.Center)

	s.ModalFooterStyle = lipgloss.NewStyle().
		Padding(0, 1).
		Background(modal.Bg)

	s.ModalTitleStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(modal.Text).
		Background(modal.Bg)

	s.ModalBodyStyle = lipgloss.NewStyle().
		Foreground(modal.Text).
		Background(modal.Bg)

	s.ModalButtonStyle = lipgloss.NewStyle().
		Background(p.BgHighlight).
		Foreground(modal.Text).
		Padding(0, 3)

	s.ModalButtonActiveStyle = lipgloss.NewStyle().
		Background(modal.Highlight).
		Foreground(p.TextOnAccent).
		Padding(0, 3).
		Underline(true)

	s.ModalHintStyle = lipgloss.NewStyle().
		Foreground(modal.Muted).
		Background(modal.Bg)

	return s
}

// RenderModalFrame renders a modal with the provided title, body, and footer.
func RenderModalFrame(title, body, footer string, styles ModalStyles) string {
	var b strings.Builder

	if title != "" {
		b.WriteString(styles.ModalHeaderStyle.Render(styles.ModalTitleStyle.Render(title)))
	}
	if body != "" {
		if b.Len() > 0 {
			b.WriteString("\n\n")
		}
		b.WriteString(body)
	}
	if footer != "" {
		if b.Len() > 0 {
			b.WriteString("\n\n")
		}
		b.WriteString(styles.ModalFooterStyle.Render(footer))
	}

	return styles.ModalStyle.Render(b.String())
}

// RenderModalButtons renders a row of modal buttons with the first one active.
func RenderModalButtons(styles ModalStyles, labels ...string) string {
	parts := make([]string, 0, len(labels))
	for i, label := range labels {
		style := styles.ModalButtonStyle
		if i == 0 {
			style = styles.ModalButtonActiveStyle
		}
		parts = append(parts, style.Render(label))
	}
	sep := styles.ModalBodyStyle.Render(" ")
	return strings.Join(parts, sep)
}
