package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/javiermolinar/timewheel/internal/i18n"
	"github.com/javiermolinar/timewheel/internal/tui/commands"
	"github.com/javiermolinar/timewheel/internal/tui/picker"
	"github.com/javiermolinar/timewheel/internal/tui/sheet"
)

// Update handles messages and updates the model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKeyMsg(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil

	case sheet.ConfirmedMsg:
		m.committed = msg.Selection
		LogSheetChange(true, false, "confirm")
		LogSelection(msg.Selection, "confirm")
		cmd := m.setStatus(i18n.T(m.locale, i18n.Selected, msg.Selection.String()), false)
		return m, cmd

	case sheet.DismissedMsg:
		m.setSelection(m.committed)
		LogSheetChange(true, false, "dismiss")
		cmd := m.setStatus(i18n.T(m.locale, i18n.NoChange), false)
		return m, cmd

	case picker.ChangedMsg:
		LogWheelChange(msg.Unit, msg.Value)
		return m, nil

	case commands.CopiedMsg:
		cmd := m.setStatus(i18n.T(m.locale, i18n.Copied, msg.Text), false)
		return m, cmd

	case commands.ErrMsg:
		m.err = msg.Err
		LogError("clipboard", msg.Err)
		cmd := m.setStatus(i18n.T(m.locale, i18n.CopyFailed, msg.Err), true)
		return m, cmd

	case commands.StatusMsg:
		cmd := m.setStatus(msg.Msg, false)
		return m, cmd

	case commands.ClearStatusMsg:
		if !time.Now().Before(m.statusTime) {
			m.statusMsg = ""
			m.statusErr = false
		}
		return m, nil
	}

	return m.updateSheet(msg)
}

// updateSheet forwards msg to the sheet. The sheet ignores input while
// hidden.
func (m Model) updateSheet(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	m.sheet, cmd = m.sheet.Update(msg)
	return m, cmd
}

// setStatus shows text on the status line and schedules its removal.
func (m *Model) setStatus(text string, isErr bool) tea.Cmd {
	m.statusMsg = text
	m.statusErr = isErr
	m.statusTime = time.Now().Add(m.statusTTL)
	return commands.ClearStatusAfter(m.statusTTL)
}
