package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/javiermolinar/timewheel/internal/timeunit"
	"github.com/javiermolinar/timewheel/internal/tui/view"
)

// View renders the host screen with the sheet composited on top.
func (m Model) View() string {
	if m.width <= 0 || m.height <= 0 {
		return "Loading..."
	}
	return m.sheet.Render(m.renderAppContent(), m.width, m.height)
}

func (m Model) renderAppContent() string {
	sel := m.selection()

	status := ""
	if m.statusMsg != "" {
		status = m.styles.StatusStyle.Render(m.statusMsg)
		if m.statusErr {
			status = m.styles.ErrorStyle.Render(m.statusMsg)
		}
	}

	content := lipgloss.JoinVertical(lipgloss.Center,
		m.styles.TitleStyle.Render("timewheel"),
		"",
		m.styles.ClockStyle.Render(sel.String()),
		"",
		m.styles.CaptionStyle.Render(timeunit.FormatSelection(sel, m.locale, m.style)),
		"",
		status,
		"",
		m.help.View(m.keys),
	)

	return m.placeBox(m.width, m.height, content)
}

// placeBox centers content in a w x h box filled with the theme background.
func (m Model) placeBox(w, h int, content string) string {
	return view.PlaceBox(w, h, lipgloss.Center, lipgloss.Center, content, m.styles.colorBg)
}
