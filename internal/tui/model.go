package tui

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"golang.org/x/text/language"

	"github.com/javiermolinar/timewheel/internal/config"
	"github.com/javiermolinar/timewheel/internal/i18n"
	"github.com/javiermolinar/timewheel/internal/timeunit"
	"github.com/javiermolinar/timewheel/internal/tui/commands"
	"github.com/javiermolinar/timewheel/internal/tui/picker"
	"github.com/javiermolinar/timewheel/internal/tui/sheet"
	"github.com/javiermolinar/timewheel/internal/tui/theme"
)

// ErrCanceled is returned by RunPicker when the sheet is closed without
// confirming.
var ErrCanceled = errors.New("picker canceled")

// selectionState is the storage behind the picker bindings. It lives on the
// heap so copies of the model share it.
type selectionState struct {
	hours, minutes, seconds int
	visible                 bool
}

func (s *selectionState) bindings() (hours, minutes, seconds picker.Binding[int]) {
	return picker.Bind(&s.hours), picker.Bind(&s.minutes), picker.Bind(&s.seconds)
}

// Model is the main TUI model.
type Model struct {
	// Dependencies
	config *config.Config
	locale language.Tag
	style  timeunit.Style

	// Theme and styles
	theme   *theme.Theme
	palette *theme.Palette
	styles  *Styles

	// State
	state     *selectionState
	initial   timeunit.Selection
	committed timeunit.Selection // last confirmed value, restored on dismiss

	// Components
	sheet sheet.Model
	keys  KeyMap
	help  help.Model

	// Terminal dimensions
	width  int
	height int

	// Messages
	statusMsg  string    // Temporary status/error message
	statusErr  bool      // Status line is an error
	statusTime time.Time // When to clear message
	statusTTL  time.Duration
	err        error
}

type modelOptions struct {
	initial *timeunit.Selection
	locale  *language.Tag
}

// ModelOption configures optional model behavior.
type ModelOption func(*modelOptions)

// WithInitial overrides the configured initial selection.
func WithInitial(sel timeunit.Selection) ModelOption {
	return func(o *modelOptions) {
		sel = sel.Clamp()
		o.initial = &sel
	}
}

// WithLocale overrides the configured locale.
func WithLocale(tag language.Tag) ModelOption {
	return func(o *modelOptions) {
		o.locale = &tag
	}
}

// New creates a new TUI model.
func New(cfg *config.Config, opts ...ModelOption) (Model, error) {
	var o modelOptions
	for _, opt := range opts {
		opt(&o)
	}

	// Load theme from config
	t, err := theme.Load(cfg.UI.Theme)
	if err != nil {
		// Fallback to mocha on error
		t, _ = theme.Load("mocha")
	}
	palette := theme.NewPalette(t)
	styles := NewStyles(palette)

	locale := cfg.LocaleTag()
	if o.locale != nil {
		locale = *o.locale
	}
	initial := cfg.InitialSelection()
	if o.initial != nil {
		initial = *o.initial
	}

	state := &selectionState{}
	sh, err := newSheet(cfg, palette, locale, state)
	if err != nil {
		return Model{}, err
	}

	h := help.New()
	h.Styles = styles.Help

	m := Model{
		config:    cfg,
		locale:    locale,
		style:     cfg.LabelStyle(),
		theme:     t,
		palette:   palette,
		styles:    styles,
		state:     state,
		initial:   initial,
		committed: initial,
		sheet:     sh,
		keys:      NewKeyMap(locale),
		help:      h,
		statusTTL: commands.StatusTimeout,
	}
	m.setSelection(initial)
	return m, nil
}

// newSheet builds the picker sheet from config, bound to state.
func newSheet(cfg *config.Config, palette *theme.Palette, locale language.Tag, state *selectionState) (sheet.Model, error) {
	bg, err := cfg.Background(palette)
	if err != nil {
		return sheet.Model{}, fmt.Errorf("building picker background: %w", err)
	}

	title := cfg.Picker.Title
	if title == "" {
		title = i18n.T(locale, i18n.SetTime)
	}
	confirm := cfg.Picker.ConfirmLabel
	if confirm == "" {
		confirm = i18n.T(locale, i18n.Done)
	}

	hours, minutes, seconds := state.bindings()
	return sheet.New(confirm, picker.Bind(&state.visible), bg, hours, minutes, seconds,
		sheet.WithTitle(title),
		sheet.WithPalette(palette),
		sheet.WithPickerOptions(
			picker.WithLocale(locale),
			picker.WithLabelStyle(cfg.LabelStyle()),
			picker.WithRows(cfg.Picker.VisibleRows),
			picker.WithPageStep(cfg.Picker.PageStep),
		),
	), nil
}

// Init initializes the model.
func (m Model) Init() tea.Cmd {
	return m.sheet.Init()
}

func (m Model) selection() timeunit.Selection {
	return timeunit.Selection{
		Hours:   m.state.hours,
		Minutes: m.state.minutes,
		Seconds: m.state.seconds,
	}.Clamp()
}

func (m Model) setSelection(sel timeunit.Selection) {
	sel = sel.Clamp()
	m.state.hours = sel.Hours
	m.state.minutes = sel.Minutes
	m.state.seconds = sel.Seconds
}

// Selection returns the current selection.
func (m Model) Selection() timeunit.Selection {
	return m.selection()
}

// Run starts the TUI.
func Run(cfg *config.Config) error {
	return RunWithDebug(cfg, false)
}

// RunWithDebug starts the TUI with optional debug logging.
func RunWithDebug(cfg *config.Config, debug bool) error {
	if err := InitDebugLogger(debug); err != nil {
		return err
	}
	defer CloseDebugLogger()

	model, err := New(cfg)
	if err != nil {
		return err
	}
	p := tea.NewProgram(model, tea.WithAltScreen(), tea.WithMouseCellMotion())
	_, err = p.Run()
	return err
}

// RunPicker shows only the picker sheet and returns the confirmed selection.
// The program draws on stderr so stdout stays free for the result.
func RunPicker(cfg *config.Config, initial timeunit.Selection) (timeunit.Selection, error) {
	model, err := newPickModel(cfg, initial)
	if err != nil {
		return timeunit.Selection{}, err
	}

	p := tea.NewProgram(model, tea.WithAltScreen(), tea.WithMouseCellMotion(), tea.WithOutput(os.Stderr))
	final, err := p.Run()
	if err != nil {
		return timeunit.Selection{}, err
	}
	result, ok := final.(pickModel)
	if !ok || !result.confirmed {
		return timeunit.Selection{}, ErrCanceled
	}
	return result.result, nil
}
