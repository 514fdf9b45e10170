package tui

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/javiermolinar/timewheel/internal/config"
	"github.com/javiermolinar/timewheel/internal/timeunit"
	"github.com/javiermolinar/timewheel/internal/tui/sheet"
	"github.com/javiermolinar/timewheel/internal/tui/theme"
	"github.com/javiermolinar/timewheel/internal/tui/view"
)

// pickModel shows only the sheet and quits once it closes.
type pickModel struct {
	sheet  sheet.Model
	state  *selectionState
	styles *Styles

	width  int
	height int

	result    timeunit.Selection
	confirmed bool
}

func newPickModel(cfg *config.Config, initial timeunit.Selection) (pickModel, error) {
	t, err := theme.Load(cfg.UI.Theme)
	if err != nil {
		t, _ = theme.Load("mocha")
	}
	palette := theme.NewPalette(t)

	initial = initial.Clamp()
	state := &selectionState{
		hours:   initial.Hours,
		minutes: initial.Minutes,
		seconds: initial.Seconds,
		visible: true,
	}
	sh, err := newSheet(cfg, palette, cfg.LocaleTag(), state)
	if err != nil {
		return pickModel{}, err
	}
	return pickModel{
		sheet:  sh,
		state:  state,
		styles: NewStyles(palette),
		result: initial,
	}, nil
}

func (m pickModel) Init() tea.Cmd {
	return m.sheet.Init()
}

func (m pickModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		LogKeyPress(msg)
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}

	case sheet.ConfirmedMsg:
		m.result = msg.Selection
		m.confirmed = true
		LogSelection(msg.Selection, "confirm")
		return m, tea.Quit

	case sheet.DismissedMsg:
		LogSheetChange(true, false, "dismiss")
		return m, tea.Quit
	}

	var cmd tea.Cmd
	m.sheet, cmd = m.sheet.Update(msg)
	return m, cmd
}

func (m pickModel) View() string {
	if !m.sheet.Visible() {
		return ""
	}
	if m.width <= 0 || m.height <= 0 {
		return m.sheet.View()
	}
	base := view.PlaceBox(m.width, m.height, lipgloss.Center, lipgloss.Center, "", m.styles.colorBg)
	return m.sheet.Render(base, m.width, m.height)
}
