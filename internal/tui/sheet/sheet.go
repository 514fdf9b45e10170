// Package sheet presents the time picker in a modal overlay with a single
// confirm action.
package sheet

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/javiermolinar/timewheel/internal/timeunit"
	"github.com/javiermolinar/timewheel/internal/tui/picker"
	"github.com/javiermolinar/timewheel/internal/tui/theme"
	"github.com/javiermolinar/timewheel/internal/tui/view"
)

// ConfirmedMsg is emitted when the confirm action closes the sheet.
type ConfirmedMsg struct {
	Selection timeunit.Selection
}

// DismissedMsg is emitted when the user closes the sheet without confirming.
type DismissedMsg struct{}

// KeyMap defines the sheet bindings.
type KeyMap struct {
	Confirm key.Binding
	Dismiss key.Binding
}

// DefaultKeyMap returns the default sheet bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Confirm: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "confirm"),
		),
		Dismiss: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "close"),
		),
	}
}

// helpKeys merges the sheet and picker bindings for the hint line.
type helpKeys struct {
	sheet  KeyMap
	picker picker.KeyMap
}

func (k helpKeys) ShortHelp() []key.Binding {
	return []key.Binding{k.sheet.Confirm, k.sheet.Dismiss, k.picker.Up, k.picker.Down, k.picker.Next}
}

func (k helpKeys) FullHelp() [][]key.Binding {
	return append([][]key.Binding{{k.sheet.Confirm, k.sheet.Dismiss}}, k.picker.FullHelp()...)
}

type config struct {
	title      string
	styles     *view.ModalStyles
	keys       KeyMap
	pickerOpts []picker.Option
	palette    *theme.Palette
}

// Option configures a sheet.
type Option func(*config)

// WithTitle sets the header line. An empty title draws no header.
func WithTitle(title string) Option {
	return func(c *config) {
		c.title = title
	}
}

// WithPalette derives the modal, picker and backdrop colors from p.
func WithPalette(p *theme.Palette) Option {
	return func(c *config) {
		c.palette = p
	}
}

// WithStyles replaces the modal frame styles.
func WithStyles(s view.ModalStyles) Option {
	return func(c *config) {
		c.styles = &s
	}
}

// WithKeyMap replaces the default sheet bindings.
func WithKeyMap(k KeyMap) Option {
	return func(c *config) {
		c.keys = k
	}
}

// WithPickerOptions forwards options to the embedded picker.
func WithPickerOptions(opts ...picker.Option) Option {
	return func(c *config) {
		c.pickerOpts = append(c.pickerOpts, opts...)
	}
}

// Model is the sheet component. Visibility lives in the caller's binding;
// the sheet only flips it to false on confirm or dismiss.
type Model struct {
	confirmLabel string
	title        string
	visible      picker.Binding[bool]
	picker       picker.Model
	styles       view.ModalStyles
	keys         KeyMap
	help         help.Model
	overlay      overlay

	cleanupScheduled bool
}

// New creates a sheet over a picker bound to the caller's values. bg is the
// background descriptor painted behind the wheels.
func New(confirmLabel string, visible picker.Binding[bool], bg theme.Background, hours, minutes, seconds picker.Binding[int], opts ...Option) Model {
	var c config
	c.keys = DefaultKeyMap()
	for _, opt := range opts {
		opt(&c)
	}

	p := c.palette
	if p == nil {
		p = theme.NewPalette(nil)
	}
	styles := view.NewModalStyles(p)
	if c.styles != nil {
		styles = *c.styles
	}

	pickerStyles := picker.DefaultStyles(p)
	pickerOpts := append([]picker.Option{
		picker.WithStyles(pickerStyles),
		picker.WithBackground(bg),
	}, c.pickerOpts...)

	h := help.New()
	h.Styles = pickerStyles.Help

	return Model{
		confirmLabel: confirmLabel,
		title:        c.title,
		visible:      visible,
		picker:       picker.New(hours, minutes, seconds, pickerOpts...),
		styles:       styles,
		keys:         c.keys,
		help:         h,
		overlay:      overlay{backdrop: p.Modal.Backdrop},
	}
}

// Init schedules the picker's first-display work when the sheet starts
// visible.
func (m Model) Init() tea.Cmd {
	if !m.Visible() {
		return nil
	}
	return m.picker.Init()
}

// Visible reports the bound visibility.
func (m Model) Visible() bool {
	return m.visible.Get()
}

// Show sets the visibility binding to true and returns the picker's
// first-display command, if it has not been scheduled yet.
func (m *Model) Show() tea.Cmd {
	m.visible.Set(true)
	return m.scheduleCleanup()
}

func (m *Model) scheduleCleanup() tea.Cmd {
	if m.cleanupScheduled {
		return nil
	}
	m.cleanupScheduled = true
	return m.picker.Init()
}

// Hide sets the visibility binding to false without emitting a message.
func (m *Model) Hide() {
	m.visible.Set(false)
}

// Picker returns the embedded picker.
func (m Model) Picker() picker.Model {
	return m.picker
}

// Selection returns the picker's current values.
func (m Model) Selection() timeunit.Selection {
	return m.picker.Selection()
}

// KeyMap returns the sheet bindings.
func (m Model) KeyMap() KeyMap {
	return m.keys
}

// Update handles confirm and dismiss, forwarding everything else to the
// picker. Input is ignored while hidden.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	if !m.Visible() {
		switch msg.(type) {
		case tea.KeyMsg, tea.MouseMsg:
			return m, nil
		}
		var cmd tea.Cmd
		m.picker, cmd = m.picker.Update(msg)
		return m, cmd
	}

	cleanup := m.scheduleCleanup()

	if msg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(msg, m.keys.Confirm):
			m.visible.Set(false)
			confirmed := ConfirmedMsg{Selection: m.picker.Selection()}
			return m, tea.Batch(cleanup, func() tea.Msg { return confirmed })
		case key.Matches(msg, m.keys.Dismiss):
			m.visible.Set(false)
			return m, tea.Batch(cleanup, func() tea.Msg { return DismissedMsg{} })
		}
	}

	var cmd tea.Cmd
	m.picker, cmd = m.picker.Update(msg)
	return m, tea.Batch(cleanup, cmd)
}

// View renders the modal frame.
func (m Model) View() string {
	body := m.picker.View()
	buttons := view.RenderModalButtons(m.styles, m.confirmLabel)
	hint := m.help.View(helpKeys{sheet: m.keys, picker: m.picker.KeyMap()})
	footer := lipgloss.JoinVertical(lipgloss.Center, buttons, "", hint)
	return view.RenderModalFrame(m.title, body, footer, m.styles)
}

// Render composites the sheet over base. A hidden sheet returns base
// unchanged.
func (m Model) Render(base string, width, height int) string {
	if !m.Visible() {
		return base
	}
	return m.overlay.render(base, width, height, m.View())
}
