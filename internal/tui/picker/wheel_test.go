package picker

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/ansi"
	"golang.org/x/text/language"

	"github.com/javiermolinar/timewheel/internal/timeunit"
)

func runeKey(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func focusedWheel(unit timeunit.Unit, v *int, opts ...Option) Wheel {
	w := NewWheel(unit, Bind(v), opts...)
	w.Focus()
	return w
}

func TestWheelKeysStayInRange(t *testing.T) {
	for _, u := range timeunit.All() {
		v := 0
		w := focusedWheel(u, &v)
		r := u.Range()

		keys := []tea.KeyMsg{
			{Type: tea.KeyUp},
			{Type: tea.KeyPgUp},
			{Type: tea.KeyHome},
		}
		for _, k := range keys {
			w, _ = w.Update(k)
			if v != r.Min {
				t.Fatalf("%s: after %s value = %d, want %d", u, k, v, r.Min)
			}
		}

		for i := 0; i < r.Max-r.Min+11; i++ {
			w, _ = w.Update(tea.KeyMsg{Type: tea.KeyDown})
			if !r.Contains(v) {
				t.Fatalf("%s: value %d escaped range", u, v)
			}
		}
		if v != r.Max {
			t.Fatalf("%s: value = %d after scrolling past the end, want %d", u, v, r.Max)
		}
		w, _ = w.Update(tea.KeyMsg{Type: tea.KeyPgDown})
		if v != r.Max {
			t.Fatalf("%s: page down past end = %d, want %d", u, v, r.Max)
		}
	}
}

func TestWheelMovement(t *testing.T) {
	v := 10
	w := focusedWheel(timeunit.Minutes, &v, WithPageStep(15))

	w, _ = w.Update(runeKey('j'))
	if v != 11 {
		t.Fatalf("j: value = %d, want 11", v)
	}
	w, _ = w.Update(runeKey('k'))
	if v != 10 {
		t.Fatalf("k: value = %d, want 10", v)
	}
	w, _ = w.Update(tea.KeyMsg{Type: tea.KeyPgDown})
	if v != 25 {
		t.Fatalf("pgdown: value = %d, want 25", v)
	}
	w, _ = w.Update(tea.KeyMsg{Type: tea.KeyEnd})
	if v != 59 {
		t.Fatalf("end: value = %d, want 59", v)
	}
	_, _ = w.Update(tea.KeyMsg{Type: tea.KeyHome})
	if v != 0 {
		t.Fatalf("home: value = %d, want 0", v)
	}
}

func TestWheelMouseWheel(t *testing.T) {
	v := 5
	w := focusedWheel(timeunit.Seconds, &v)

	w, _ = w.Update(tea.MouseMsg{Action: tea.MouseActionPress, Button: tea.MouseButtonWheelDown})
	if v != 6 {
		t.Fatalf("wheel down: value = %d, want 6", v)
	}
	w, _ = w.Update(tea.MouseMsg{Action: tea.MouseActionPress, Button: tea.MouseButtonWheelUp})
	if v != 5 {
		t.Fatalf("wheel up: value = %d, want 5", v)
	}
	_, _ = w.Update(tea.MouseMsg{Action: tea.MouseActionRelease, Button: tea.MouseButtonWheelUp})
	if v != 5 {
		t.Fatalf("release should be ignored, value = %d", v)
	}
}

func TestWheelDigitEntry(t *testing.T) {
	tests := []struct {
		name   string
		unit   timeunit.Unit
		digits string
		want   int
	}{
		{"single digit", timeunit.Minutes, "7", 7},
		{"two digits", timeunit.Minutes, "45", 45},
		{"two digits out of range restart", timeunit.Hours, "25", 5},
		{"three digits", timeunit.Minutes, "123", 3},
		{"hours in range", timeunit.Hours, "23", 23},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := 0
			w := focusedWheel(tt.unit, &v)
			for _, r := range tt.digits {
				w, _ = w.Update(runeKey(r))
			}
			if v != tt.want {
				t.Fatalf("typed %q: value = %d, want %d", tt.digits, v, tt.want)
			}
		})
	}
}

func TestWheelDigitEntryResetByOtherKey(t *testing.T) {
	v := 0
	w := focusedWheel(timeunit.Minutes, &v)
	w, _ = w.Update(runeKey('4'))
	w, _ = w.Update(runeKey('j'))
	_, _ = w.Update(runeKey('2'))
	if v != 2 {
		t.Fatalf("value = %d, want 2 after interrupted entry", v)
	}
}

func TestWheelIgnoresInputWhenBlurred(t *testing.T) {
	v := 3
	w := NewWheel(timeunit.Minutes, Bind(&v))
	w, cmd := w.Update(tea.KeyMsg{Type: tea.KeyDown})
	if v != 3 || cmd != nil {
		t.Fatalf("blurred wheel changed value to %d", v)
	}
	if w.Focused() {
		t.Fatalf("wheel should start blurred")
	}
}

func TestWheelEmitsChangedMsg(t *testing.T) {
	v := 1
	w := focusedWheel(timeunit.Hours, &v)
	_, cmd := w.Update(tea.KeyMsg{Type: tea.KeyDown})
	if cmd == nil {
		t.Fatalf("expected a command after a change")
	}
	msg, ok := cmd().(ChangedMsg)
	if !ok {
		t.Fatalf("cmd() = %T, want ChangedMsg", cmd())
	}
	if msg.Unit != timeunit.Hours || msg.Value != 2 {
		t.Fatalf("ChangedMsg = %+v, want hours=2", msg)
	}

	v = 0
	w = focusedWheel(timeunit.Hours, &v)
	if _, cmd := w.Update(tea.KeyMsg{Type: tea.KeyUp}); cmd != nil {
		t.Fatalf("no command expected when already at the lower bound")
	}
}

func TestWheelClampsExternalValue(t *testing.T) {
	v := 99
	w := NewWheel(timeunit.Minutes, Bind(&v))
	if got := w.Value(); got != 59 {
		t.Fatalf("Value() = %d, want 59", got)
	}
	view := ansi.Strip(w.View())
	if strings.Contains(view, "99") || strings.Contains(view, "60") {
		t.Fatalf("view presents an out-of-range value:\n%s", view)
	}

	v = -4
	if got := w.Value(); got != 0 {
		t.Fatalf("Value() = %d, want 0", got)
	}
}

func TestWheelWritesOnlyOnInput(t *testing.T) {
	tests := []struct {
		name string
		msg  tea.Msg
	}{
		{"resize", tea.WindowSizeMsg{Width: 80, Height: 24}},
		{"unbound key", runeKey('x')},
		{"mouse click", tea.MouseMsg{Action: tea.MouseActionPress, Button: tea.MouseButtonLeft}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := 99
			w := focusedWheel(timeunit.Minutes, &v)
			_, cmd := w.Update(tt.msg)
			if v != 99 {
				t.Fatalf("binding = %d, want it left at 99", v)
			}
			if cmd != nil {
				t.Fatalf("unexpected command emitting %T", cmd())
			}
		})
	}

	v := 99
	w := focusedWheel(timeunit.Minutes, &v)
	if _, cmd := w.Update(tea.KeyMsg{Type: tea.KeyUp}); cmd == nil || v != 58 {
		t.Fatalf("up from a clamped 59: binding = %d, cmd nil = %t", v, cmd == nil)
	}
}

func TestWheelLabelFollowsBinding(t *testing.T) {
	v := 1
	w := NewWheel(timeunit.Minutes, Bind(&v))
	if got := w.Label(); got != "min" {
		t.Fatalf("Label() = %q, want %q", got, "min")
	}
	runs := w.labelRuns

	// Renders without a value change reuse the cached label.
	for i := 0; i < 5; i++ {
		w, _ = w.Update(nil)
	}
	if w.labelRuns != runs {
		t.Fatalf("label recomputed %d times without a value change", w.labelRuns-runs)
	}

	v = 2
	if got := w.Label(); got != "mins" {
		t.Fatalf("Label() after external change = %q, want %q", got, "mins")
	}
	w, _ = w.Update(nil)
	if w.labelRuns != runs+1 {
		t.Fatalf("labelRuns = %d, want %d", w.labelRuns, runs+1)
	}
}

func TestWheelViewCentersSelection(t *testing.T) {
	v := 0
	w := NewWheel(timeunit.Hours, Bind(&v), WithRows(5))
	lines := strings.Split(ansi.Strip(w.View()), "\n")
	if len(lines) != 5 {
		t.Fatalf("expected 5 rows, got %d", len(lines))
	}
	if !strings.Contains(lines[2], "00") || !strings.Contains(lines[2], "hours") {
		t.Fatalf("center row = %q, want value 00 with label", lines[2])
	}
	if strings.TrimSpace(lines[0]) != "" || strings.TrimSpace(lines[1]) != "" {
		t.Fatalf("rows above the minimum should be blank: %q %q", lines[0], lines[1])
	}
	if !strings.Contains(lines[3], "01") || !strings.Contains(lines[4], "02") {
		t.Fatalf("rows below = %q %q, want 01 and 02", lines[3], lines[4])
	}

	width := len([]rune(lines[0]))
	for i, line := range lines {
		if n := len([]rune(line)); n != width {
			t.Fatalf("row %d width %d, want %d", i, n, width)
		}
	}
}

func TestWheelViewLocalized(t *testing.T) {
	v := 2
	w := NewWheel(timeunit.Hours, Bind(&v), WithLocale(language.Russian), WithRows(1))
	if got := strings.TrimSpace(ansi.Strip(w.View())); got != "02 часа" {
		t.Fatalf("View() = %q, want %q", got, "02 часа")
	}
}

func TestNormalizeRows(t *testing.T) {
	tests := map[int]int{-1: 1, 0: 1, 1: 1, 4: 5, 5: 5, 12: 9}
	for in, want := range tests {
		if got := normalizeRows(in); got != want {
			t.Errorf("normalizeRows(%d) = %d, want %d", in, got, want)
		}
	}
}

func TestBinding(t *testing.T) {
	var empty Binding[int]
	empty.Set(4)
	if empty.Get() != 0 {
		t.Fatalf("empty binding Get() = %d, want 0", empty.Get())
	}

	c := Constant(7)
	c.Set(1)
	if c.Get() != 7 {
		t.Fatalf("constant binding changed to %d", c.Get())
	}

	store := map[string]int{}
	b := NewBinding(func() int { return store["x"] }, func(v int) { store["x"] = v })
	b.Set(9)
	if store["x"] != 9 || b.Get() != 9 {
		t.Fatalf("custom binding did not round trip")
	}
}
