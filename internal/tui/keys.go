package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"golang.org/x/text/language"

	"github.com/javiermolinar/timewheel/internal/i18n"
	"github.com/javiermolinar/timewheel/internal/tui/commands"
)

// KeyMap defines the host screen bindings.
type KeyMap struct {
	Open  key.Binding
	Reset key.Binding
	Copy  key.Binding
	Quit  key.Binding
}

// NewKeyMap returns the host bindings with help text in the given language.
func NewKeyMap(tag language.Tag) KeyMap {
	return KeyMap{
		Open: key.NewBinding(
			key.WithKeys("t", "enter"),
			key.WithHelp("t", i18n.T(tag, i18n.PickTime)),
		),
		Reset: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", i18n.T(tag, i18n.Reset)),
		),
		Copy: key.NewBinding(
			key.WithKeys("y"),
			key.WithHelp("y", i18n.T(tag, i18n.Copy)),
		),
		Quit: key.NewBinding(
			key.WithKeys("q"),
			key.WithHelp("q", i18n.T(tag, i18n.Quit)),
		),
	}
}

// ShortHelp implements help.KeyMap.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Open, k.Reset, k.Copy, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}

// handleKeyMsg handles keyboard input.
func (m Model) handleKeyMsg(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// Log keystroke
	LogKeyPress(msg)

	// Global keys (work in all modes)
	if msg.String() == "ctrl+c" {
		return m, tea.Quit
	}

	if m.sheet.Visible() {
		return m.updateSheet(msg)
	}
	return m.handleNormalKeys(msg)
}

// handleNormalKeys handles keys while the sheet is hidden.
func (m Model) handleNormalKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Open):
		m.committed = m.selection()
		cmd := m.sheet.Show()
		LogSheetChange(false, true, "open")
		return m, cmd

	case key.Matches(msg, m.keys.Reset):
		m.setSelection(m.initial)
		m.committed = m.initial
		LogSelection(m.initial, "reset")
		cmd := m.setStatus(i18n.T(m.locale, i18n.ResetTo, m.initial.String()), false)
		return m, cmd

	case key.Matches(msg, m.keys.Copy):
		return m, commands.CopyToClipboard(m.selection().String())
	}

	return m, nil
}
