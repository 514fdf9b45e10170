package picker

import (
	"golang.org/x/text/language"

	"github.com/javiermolinar/timewheel/internal/timeunit"
	"github.com/javiermolinar/timewheel/internal/tui/theme"
)

const (
	defaultRows = 5
	maxRows     = 9
	defaultStep = 5
)

type settings struct {
	locale     language.Tag
	style      timeunit.Style
	rows       int
	step       int
	keys       KeyMap
	styles     Styles
	background theme.Background
	showHelp   bool
}

func defaultSettings() settings {
	return settings{
		locale:     language.English,
		style:      timeunit.StyleDefault,
		rows:       defaultRows,
		step:       defaultStep,
		keys:       DefaultKeyMap(),
		styles:     DefaultStyles(nil),
		background: theme.Clear{},
	}
}

func newSettings(opts []Option) settings {
	s := defaultSettings()
	for _, opt := range opts {
		opt(&s)
	}
	s.rows = normalizeRows(s.rows)
	if s.step < 1 {
		s.step = 1
	}
	if s.background == nil {
		s.background = theme.Clear{}
	}
	return s
}

// normalizeRows keeps the visible row count odd so the selection is centered.
func normalizeRows(rows int) int {
	if rows < 1 {
		return 1
	}
	if rows > maxRows {
		rows = maxRows
	}
	if rows%2 == 0 {
		rows++
	}
	return rows
}

// Option configures a picker or a single wheel.
type Option func(*settings)

// WithLocale sets the locale used for labels and digits.
func WithLocale(tag language.Tag) Option {
	return func(s *settings) {
		s.locale = tag
	}
}

// WithLabelStyle overrides the per-unit default label style.
func WithLabelStyle(style timeunit.Style) Option {
	return func(s *settings) {
		s.style = style
	}
}

// WithRows sets the number of visible rows per wheel. Even values are
// rounded up to the next odd number.
func WithRows(rows int) Option {
	return func(s *settings) {
		s.rows = rows
	}
}

// WithPageStep sets how far page up/down moves a wheel.
func WithPageStep(step int) Option {
	return func(s *settings) {
		s.step = step
	}
}

// WithKeyMap replaces the default key bindings.
func WithKeyMap(k KeyMap) Option {
	return func(s *settings) {
		s.keys = k
	}
}

// WithStyles replaces the default styles.
func WithStyles(st Styles) Option {
	return func(s *settings) {
		s.styles = st
	}
}

// WithBackground sets the background descriptor painted behind the wheels.
func WithBackground(bg theme.Background) Option {
	return func(s *settings) {
		s.background = bg
	}
}

// WithHelp shows the key help line under the wheels.
func WithHelp(show bool) Option {
	return func(s *settings) {
		s.showHelp = show
	}
}
