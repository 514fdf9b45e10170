package picker

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/javiermolinar/timewheel/internal/timeunit"
)

// ChangedMsg is emitted when a wheel writes a new value to its binding.
type ChangedMsg struct {
	Unit  timeunit.Unit
	Value int
}

// Wheel is a single bounded selector for one unit. It never carries into
// or borrows from other wheels.
type Wheel struct {
	unit    timeunit.Unit
	value   Binding[int]
	set     settings
	focused bool

	// label cache, keyed on the value it was computed for
	label      string
	labelValue int
	labelSet   bool
	labelRuns  int

	valueWidth int
	labelWidth int

	// first digit of a two-digit entry, -1 when none
	pendingDigit int
}

// NewWheel creates a wheel for unit bound to value.
func NewWheel(unit timeunit.Unit, value Binding[int], opts ...Option) Wheel {
	w := Wheel{
		unit:         unit,
		value:        value,
		set:          newSettings(opts),
		pendingDigit: -1,
	}
	w.measure()
	w.syncLabel()
	return w
}

// measure fixes the column widths so the wheel does not jitter as it turns.
func (w *Wheel) measure() {
	r := w.unit.Range()
	for v := r.Min; v <= r.Max; v++ {
		if n := lipgloss.Width(timeunit.FormatValue(v, w.set.locale)); n > w.valueWidth {
			w.valueWidth = n
		}
		if n := lipgloss.Width(w.labelFor(v)); n > w.labelWidth {
			w.labelWidth = n
		}
	}
}

func (w Wheel) labelFor(v int) string {
	return timeunit.LabelStyle(w.unit, v, w.set.locale, w.set.style)
}

// syncLabel recomputes the label when the bound value has moved.
func (w *Wheel) syncLabel() {
	v := w.Value()
	if w.labelSet && v == w.labelValue {
		return
	}
	w.label = w.labelFor(v)
	w.labelValue = v
	w.labelSet = true
	w.labelRuns++
}

// Unit returns the wheel's unit.
func (w Wheel) Unit() timeunit.Unit {
	return w.unit
}

// Value returns the bound value clamped to the unit range.
func (w Wheel) Value() int {
	return w.unit.Clamp(w.value.Get())
}

// Label returns the label for the current value.
func (w Wheel) Label() string {
	if w.labelSet && w.labelValue == w.Value() {
		return w.label
	}
	return w.labelFor(w.Value())
}

// SetValue clamps v and writes it to the binding. It reports whether the
// bound value changed.
func (w *Wheel) SetValue(v int) bool {
	next := w.unit.Clamp(v)
	raw := w.value.Get()
	if raw == next {
		return false
	}
	w.value.Set(next)
	w.syncLabel()
	return true
}

// Focused reports whether the wheel receives key input.
func (w Wheel) Focused() bool {
	return w.focused
}

// Focus gives the wheel key input.
func (w *Wheel) Focus() {
	w.focused = true
}

// Blur removes key input and drops any half-typed value.
func (w *Wheel) Blur() {
	w.focused = false
	w.pendingDigit = -1
}

// Update handles key and mouse input for a focused wheel.
func (w Wheel) Update(msg tea.Msg) (Wheel, tea.Cmd) {
	w.syncLabel()
	if !w.focused {
		return w, nil
	}

	r := w.unit.Range()
	current := w.Value()
	next := current

	switch msg := msg.(type) {
	case tea.KeyMsg:
		if d, ok := digitKey(msg); ok {
			next = w.typeDigit(d)
			break
		}
		w.pendingDigit = -1
		keys := w.set.keys
		switch {
		case key.Matches(msg, keys.Up):
			next = current - 1
		case key.Matches(msg, keys.Down):
			next = current + 1
		case key.Matches(msg, keys.PageUp):
			next = current - w.set.step
		case key.Matches(msg, keys.PageDown):
			next = current + w.set.step
		case key.Matches(msg, keys.First):
			next = r.Min
		case key.Matches(msg, keys.Last):
			next = r.Max
		default:
			return w, nil
		}

	case tea.MouseMsg:
		if msg.Action != tea.MouseActionPress {
			return w, nil
		}
		switch msg.Button {
		case tea.MouseButtonWheelUp:
			next = current - 1
		case tea.MouseButtonWheelDown:
			next = current + 1
		default:
			return w, nil
		}

	default:
		// Only direct input writes to the binding.
		return w, nil
	}

	if !w.SetValue(next) {
		return w, nil
	}
	changed := ChangedMsg{Unit: w.unit, Value: w.Value()}
	return w, func() tea.Msg { return changed }
}

// typeDigit turns two quick digits into one value when it fits the range.
func (w *Wheel) typeDigit(d int) int {
	if w.pendingDigit >= 0 {
		combined := w.pendingDigit*10 + d
		if w.unit.Range().Contains(combined) {
			w.pendingDigit = -1
			return combined
		}
	}
	w.pendingDigit = d
	return d
}

func digitKey(msg tea.KeyMsg) (int, bool) {
	if msg.Type != tea.KeyRunes || len(msg.Runes) != 1 {
		return 0, false
	}
	r := msg.Runes[0]
	if r < '0' || r > '9' {
		return 0, false
	}
	return int(r - '0'), true
}

// View renders the visible rows with the selection centered.
func (w Wheel) View() string {
	st := w.set.styles
	value := w.Value()
	label := w.Label()
	center := w.set.rows / 2
	r := w.unit.Range()

	selected, labelStyle := st.Selected, st.Label
	if w.focused {
		selected, labelStyle = st.SelectedFocused, st.LabelFocused
	}

	lines := make([]string, 0, w.set.rows)
	for i := 0; i < w.set.rows; i++ {
		v := value + i - center
		if i == center {
			lines = append(lines, selected.Render(padLeft(timeunit.FormatValue(v, w.set.locale), w.valueWidth))+
				" "+labelStyle.Render(padRight(label, w.labelWidth)))
			continue
		}
		text := ""
		if r.Contains(v) {
			text = timeunit.FormatValue(v, w.set.locale)
		}
		lines = append(lines, st.Row.Render(padLeft(text, w.valueWidth))+" "+strings.Repeat(" ", w.labelWidth))
	}
	return strings.Join(lines, "\n")
}

// padLeft right-aligns s in a column of width cells.
func padLeft(s string, width int) string {
	if n := lipgloss.Width(s); n < width {
		return strings.Repeat(" ", width-n) + s
	}
	return s
}

func padRight(s string, width int) string {
	if n := lipgloss.Width(s); n < width {
		return s + strings.Repeat(" ", width-n)
	}
	return s
}
