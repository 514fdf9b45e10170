package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/ansi"

	"github.com/javiermolinar/timewheel/internal/config"
	"github.com/javiermolinar/timewheel/internal/timeunit"
)

func newTestPickModel(t *testing.T, initial timeunit.Selection) pickModel {
	t.Helper()
	cfg := config.Default()
	cfg.UI.Locale = "en"
	m, err := newPickModel(cfg, initial)
	if err != nil {
		t.Fatalf("newPickModel() error: %v", err)
	}
	return m
}

// drive feeds msg through the pick model and reports whether it asked to quit.
func drive(m pickModel, msg tea.Msg) (pickModel, bool) {
	updated, cmd := m.Update(msg)
	m = updated.(pickModel)
	quit := false
	for _, out := range collect(cmd) {
		if _, ok := out.(tea.QuitMsg); ok {
			quit = true
			continue
		}
		var q bool
		m, q = drive(m, out)
		quit = quit || q
	}
	return m, quit
}

func TestPickModelConfirm(t *testing.T) {
	m := newTestPickModel(t, timeunit.Selection{Minutes: 10})
	if cmd := m.Init(); cmd == nil {
		t.Fatalf("visible sheet should schedule the separator cleanup")
	}

	m, _ = drive(m, tea.KeyMsg{Type: tea.KeyTab})
	m, _ = drive(m, tea.KeyMsg{Type: tea.KeyDown})
	m, quit := drive(m, tea.KeyMsg{Type: tea.KeyEnter})
	if !quit {
		t.Fatalf("confirm should quit the program")
	}
	if !m.confirmed {
		t.Fatalf("confirm should mark the result")
	}
	if want := (timeunit.Selection{Minutes: 11}); m.result != want {
		t.Fatalf("result = %v, want %v", m.result, want)
	}
}

func TestPickModelDismiss(t *testing.T) {
	m := newTestPickModel(t, timeunit.Selection{Seconds: 30})
	m, quit := drive(m, tea.KeyMsg{Type: tea.KeyEsc})
	if !quit {
		t.Fatalf("dismiss should quit the program")
	}
	if m.confirmed {
		t.Fatalf("dismiss must not confirm")
	}
}

func TestPickModelView(t *testing.T) {
	m := newTestPickModel(t, timeunit.Selection{Hours: 1})
	if view := ansi.Strip(m.View()); !strings.Contains(view, "Done") {
		t.Fatalf("unsized view should draw the sheet:\n%s", view)
	}

	m, _ = drive(m, tea.WindowSizeMsg{Width: 90, Height: 24})
	view := ansi.Strip(m.View())
	if lines := strings.Split(view, "\n"); len(lines) != 24 {
		t.Fatalf("view rows = %d, want 24", len(lines))
	}
	if !strings.Contains(view, "hour") {
		t.Fatalf("view missing the hours label:\n%s", view)
	}

	m, _ = drive(m, tea.KeyMsg{Type: tea.KeyEsc})
	if m.View() != "" {
		t.Fatalf("closed picker should draw nothing")
	}
}
