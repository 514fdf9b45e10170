package picker

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/muesli/termenv"

	"github.com/javiermolinar/timewheel/internal/timeunit"
	"github.com/javiermolinar/timewheel/internal/tui/theme"
)

type values struct {
	h, m, s int
}

func newTestPicker(v *values, opts ...Option) Model {
	return New(Bind(&v.h), Bind(&v.m), Bind(&v.s), opts...)
}

func TestPickerWheelsAreIndependent(t *testing.T) {
	v := &values{h: 1, m: 59, s: 59}
	m := newTestPicker(v)

	m.Focus(timeunit.Seconds)
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyDown})
	if v.s != 59 || v.m != 59 || v.h != 1 {
		t.Fatalf("seconds past the end must not roll over: %+v", *v)
	}
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyUp})
	if v.s != 58 || v.m != 59 || v.h != 1 {
		t.Fatalf("seconds change leaked: %+v", *v)
	}

	m.Focus(timeunit.Minutes)
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyHome})
	if v.m != 0 || v.s != 58 || v.h != 1 {
		t.Fatalf("minutes change leaked: %+v", *v)
	}

	m.Focus(timeunit.Hours)
	_, _ = m.Update(tea.KeyMsg{Type: tea.KeyEnd})
	if v.h != 23 || v.m != 0 || v.s != 58 {
		t.Fatalf("hours change leaked: %+v", *v)
	}
}

func TestPickerFocusCycles(t *testing.T) {
	v := &values{}
	m := newTestPicker(v)
	if m.Focused() != timeunit.Hours {
		t.Fatalf("initial focus = %s, want hours", m.Focused())
	}

	want := []timeunit.Unit{timeunit.Minutes, timeunit.Seconds, timeunit.Hours}
	for _, u := range want {
		m, _ = m.Update(tea.KeyMsg{Type: tea.KeyTab})
		if m.Focused() != u {
			t.Fatalf("focus = %s, want %s", m.Focused(), u)
		}
	}

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyLeft})
	if m.Focused() != timeunit.Seconds {
		t.Fatalf("left from hours = %s, want seconds", m.Focused())
	}
	for _, u := range timeunit.All() {
		if m.Wheel(u).Focused() != (u == timeunit.Seconds) {
			t.Fatalf("wheel %s focused = %t", u, m.Wheel(u).Focused())
		}
	}

	m.Focus(timeunit.Unit(12))
	if m.Focused() != timeunit.Seconds {
		t.Fatalf("invalid focus should be ignored")
	}
}

func TestPickerSelectionClamped(t *testing.T) {
	v := &values{h: 40, m: -3, s: 61}
	m := newTestPicker(v)
	got := m.Selection()
	want := timeunit.Selection{Hours: 23, Minutes: 0, Seconds: 59}
	if got != want {
		t.Fatalf("Selection() = %+v, want %+v", got, want)
	}
}

func TestPickerSeparatorCleanupRunsOnce(t *testing.T) {
	v := &values{}
	m := newTestPicker(v)

	before := ansi.Strip(m.View())
	if !strings.Contains(before, "│") {
		t.Fatalf("expected default separators before cleanup:\n%s", before)
	}

	cmd := m.Init()
	if cmd == nil {
		t.Fatalf("Init() should schedule the cleanup")
	}
	msg := cmd()

	for i := 0; i < 3; i++ {
		m, _ = m.Update(msg)
		_ = m.View()
	}
	m, _ = m.Update(m.Init()())
	if !m.SeparatorsHidden() {
		t.Fatalf("separators should be hidden after cleanup")
	}
	if m.cleanupRuns != 1 {
		t.Fatalf("cleanup ran %d times, want 1", m.cleanupRuns)
	}

	after := ansi.Strip(m.View())
	if strings.Contains(after, "│") {
		t.Fatalf("separators still drawn after cleanup:\n%s", after)
	}
	if lipgloss.Width(before) != lipgloss.Width(after) {
		t.Fatalf("cleanup changed layout width: %d -> %d", lipgloss.Width(before), lipgloss.Width(after))
	}
}

func TestPickerCleanupIgnoresOtherInstances(t *testing.T) {
	a := newTestPicker(&values{})
	b := newTestPicker(&values{})

	b, _ = b.Update(a.Init()())
	if b.SeparatorsHidden() {
		t.Fatalf("cleanup for one picker must not affect another")
	}
}

func TestPickerCleanupDoesNotChangeSelection(t *testing.T) {
	v := &values{h: 2, m: 3, s: 4}
	m := newTestPicker(v)
	m, _ = m.Update(m.Init()())
	if m.Selection() != (timeunit.Selection{Hours: 2, Minutes: 3, Seconds: 4}) {
		t.Fatalf("cleanup changed selection: %+v", m.Selection())
	}
}

func TestPickerViewShowsLabels(t *testing.T) {
	v := &values{h: 1, m: 2, s: 1}
	m := newTestPicker(v, WithRows(3))
	view := ansi.Strip(m.View())
	lines := strings.Split(view, "\n")
	if len(lines) != 3 {
		t.Fatalf("expected 3 rows, got %d:\n%s", len(lines), view)
	}
	for _, want := range []string{"01", "hour", "02", "mins", "sec"} {
		if !strings.Contains(lines[1], want) {
			t.Errorf("center row %q missing %q", lines[1], want)
		}
	}
}

func TestPickerViewPaintsBackground(t *testing.T) {
	prev := lipgloss.ColorProfile()
	lipgloss.SetColorProfile(termenv.TrueColor)
	t.Cleanup(func() {
		lipgloss.SetColorProfile(prev)
	})

	v := &values{}
	m := newTestPicker(v, WithBackground(theme.Solid{Color: "#123456"}), WithRows(3))
	seq := ansi.Style{}.BackgroundColor(ansi.HexColor("#123456")).String()
	for i, line := range strings.Split(m.View(), "\n") {
		if !strings.HasPrefix(line, seq) {
			t.Fatalf("row %d not painted: %q", i, line)
		}
	}
}

func TestPickerHelp(t *testing.T) {
	m := newTestPicker(&values{}, WithHelp(true), WithRows(1))
	view := ansi.Strip(m.View())
	if !strings.Contains(view, "next wheel") {
		t.Fatalf("expected help line in view:\n%s", view)
	}
	if len(m.KeyMap().FullHelp()) != 2 {
		t.Fatalf("FullHelp() groups = %d, want 2", len(m.KeyMap().FullHelp()))
	}
}

func TestPickerChangedMsgFromFocusedWheel(t *testing.T) {
	v := &values{}
	m := newTestPicker(v)
	m.Focus(timeunit.Minutes)
	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyDown})
	if cmd == nil {
		t.Fatalf("expected change command")
	}
	var found bool
	for _, msg := range collect(cmd) {
		if c, ok := msg.(ChangedMsg); ok && c.Unit == timeunit.Minutes && c.Value == 1 {
			found = true
		}
	}
	if !found {
		t.Fatalf("ChangedMsg for minutes not emitted")
	}
}

// collect runs cmd and flattens batches.
func collect(cmd tea.Cmd) []tea.Msg {
	if cmd == nil {
		return nil
	}
	msg := cmd()
	if batch, ok := msg.(tea.BatchMsg); ok {
		var out []tea.Msg
		for _, c := range batch {
			out = append(out, collect(c)...)
		}
		return out
	}
	return []tea.Msg{msg}
}
