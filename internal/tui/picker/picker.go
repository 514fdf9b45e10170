// Package picker implements the hour, minute and second wheel selector.
package picker

import (
	"strings"
	"sync/atomic"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/javiermolinar/timewheel/internal/timeunit"
)

var lastID int64

func nextID() int {
	return int(atomic.AddInt64(&lastID, 1))
}

// separatorCleanupMsg hides the default wheel separators once the picker
// has been drawn.
type separatorCleanupMsg struct {
	id int
}

// Model composes three independent wheels horizontally.
type Model struct {
	id     int
	wheels [3]Wheel
	focus  timeunit.Unit
	set    settings
	help   help.Model

	separatorsHidden bool
	cleanupRuns      int
}

// New creates a picker bound to caller-owned hour, minute and second values.
func New(hours, minutes, seconds Binding[int], opts ...Option) Model {
	s := newSettings(opts)
	m := Model{
		id:  nextID(),
		set: s,
		wheels: [3]Wheel{
			NewWheel(timeunit.Hours, hours, opts...),
			NewWheel(timeunit.Minutes, minutes, opts...),
			NewWheel(timeunit.Seconds, seconds, opts...),
		},
		focus: timeunit.Hours,
		help:  help.New(),
	}
	m.help.Styles = s.styles.Help
	m.wheels[m.focus].Focus()
	return m
}

// Init schedules the separator cleanup. Bubble Tea delivers the message
// after the first frame has been drawn.
func (m Model) Init() tea.Cmd {
	id := m.id
	return func() tea.Msg {
		return separatorCleanupMsg{id: id}
	}
}

// Update routes input to the focused wheel and handles focus movement.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case separatorCleanupMsg:
		if msg.id == m.id && !m.separatorsHidden {
			m.separatorsHidden = true
			m.cleanupRuns++
		}
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.set.keys.Next):
			m.moveFocus(1)
			return m, nil
		case key.Matches(msg, m.set.keys.Prev):
			m.moveFocus(-1)
			return m, nil
		}
	}

	var cmds []tea.Cmd
	for i := range m.wheels {
		var cmd tea.Cmd
		m.wheels[i], cmd = m.wheels[i].Update(msg)
		cmds = append(cmds, cmd)
	}
	return m, tea.Batch(cmds...)
}

func (m *Model) moveFocus(delta int) {
	next := (int(m.focus) + delta + len(m.wheels)) % len(m.wheels)
	m.Focus(timeunit.Unit(next))
}

// Focus moves key input to the wheel for u.
func (m *Model) Focus(u timeunit.Unit) {
	if !u.Valid() {
		return
	}
	m.wheels[m.focus].Blur()
	m.focus = u
	m.wheels[m.focus].Focus()
}

// Focused returns the unit of the focused wheel.
func (m Model) Focused() timeunit.Unit {
	return m.focus
}

// Wheel returns the wheel for u.
func (m Model) Wheel(u timeunit.Unit) Wheel {
	if !u.Valid() {
		return Wheel{}
	}
	return m.wheels[u]
}

// Selection returns the current clamped values.
func (m Model) Selection() timeunit.Selection {
	return timeunit.Selection{
		Hours:   m.wheels[timeunit.Hours].Value(),
		Minutes: m.wheels[timeunit.Minutes].Value(),
		Seconds: m.wheels[timeunit.Seconds].Value(),
	}
}

// SeparatorsHidden reports whether the one-time cleanup has run.
func (m Model) SeparatorsHidden() bool {
	return m.separatorsHidden
}

// KeyMap returns the picker key bindings.
func (m Model) KeyMap() KeyMap {
	return m.set.keys
}

// HelpView renders the short key help.
func (m Model) HelpView() string {
	return m.help.View(m.set.keys)
}

// View renders the wheels side by side on the configured background.
func (m Model) View() string {
	sep := m.separatorColumn()
	parts := make([]string, 0, len(m.wheels)*2-1)
	for i, w := range m.wheels {
		if i > 0 {
			parts = append(parts, sep)
		}
		parts = append(parts, w.View())
	}

	block := lipgloss.JoinHorizontal(lipgloss.Top, parts...)
	block = m.set.background.Paint(block)
	if m.set.showHelp {
		block = lipgloss.JoinVertical(lipgloss.Left, block, "", m.HelpView())
	}
	return block
}

// separatorColumn draws the divider between wheels. Before cleanup it is the
// default rule; afterwards a blank column keeps the layout stable.
func (m Model) separatorColumn() string {
	cell := m.set.styles.Separator.Render("│")
	if m.separatorsHidden {
		cell = " "
	}
	rows := make([]string, m.set.rows)
	for i := range rows {
		rows[i] = " " + cell + " "
	}
	return strings.Join(rows, "\n")
}
