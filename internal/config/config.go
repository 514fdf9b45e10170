// Package config handles configuration loading from files, defaults, and environment variables.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"golang.org/x/text/language"

	"github.com/javiermolinar/timewheel/internal/timeunit"
	"github.com/javiermolinar/timewheel/internal/tui/theme"
)

// Config holds the application configuration.
type Config struct {
	UI     UIConfig     `toml:"ui"`
	Picker PickerConfig `toml:"picker"`
}

// UIConfig holds TUI settings.
type UIConfig struct {
	Theme  string `toml:"theme"`  // "mocha", "macchiato", "frappe", "latte", "light"
	Locale string `toml:"locale"` // BCP 47 tag, empty means from the environment
}

// PickerConfig holds time picker settings.
type PickerConfig struct {
	Title           string `toml:"title"`            // empty means the localized "Set time"
	ConfirmLabel    string `toml:"confirm_label"`    // empty means the localized "Done"
	Background      string `toml:"background"`       // "solid", "gradient", "material", "clear"
	BackgroundColor string `toml:"background_color"` // "#rrggbb", empty means theme modal background
	GradientTo      string `toml:"gradient_to"`      // "#rrggbb" (gradient only)
	LabelStyle      string `toml:"label_style"`      // "default", "long", "short", "narrow"
	VisibleRows     int    `toml:"visible_rows"`     // odd, 1..9
	PageStep        int    `toml:"page_step"`
	Initial         string `toml:"initial"` // HH:MM:SS
}

// Default returns the default configuration.
func Default() *Config {
	return &Config{
		UI: UIConfig{
			Theme: "frappe",
		},
		Picker: PickerConfig{
			Background:  "solid",
			LabelStyle:  "default",
			VisibleRows: 5,
			PageStep:    5,
			Initial:     "00:05:00",
		},
	}
}

// DefaultConfigPath returns the default config file path.
func DefaultConfigPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "config.toml"
	}
	return filepath.Join(home, ".config", "timewheel", "config.toml")
}

// Load loads configuration from the default path, merging with defaults and env vars.
func Load() (*Config, error) {
	return LoadFrom(DefaultConfigPath())
}

// LoadFrom loads configuration from the specified path.
// It starts with defaults, overlays file config if it exists, then applies env overrides.
func LoadFrom(path string) (*Config, error) {
	cfg := Default()

	// Try to load from file (not an error if it doesn't exist)
	if err := loadFromFile(expandPath(path), cfg); err != nil {
		return nil, err
	}

	// Apply environment variable overrides
	applyEnvOverrides(cfg)

	// Validate
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return cfg, nil
}

// loadFromFile loads config from a file if it exists.
func loadFromFile(path string, cfg *Config) error {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil // File doesn't exist, use defaults
		}
		return fmt.Errorf("reading config file: %w", err)
	}

	if err := toml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("parsing config file: %w", err)
	}

	return nil
}

// applyEnvOverrides applies environment variable overrides to the config.
// Environment variables take precedence over file config.
func applyEnvOverrides(cfg *Config) {
	// UI overrides
	if v := os.Getenv("TIMEWHEEL_THEME"); v != "" {
		cfg.UI.Theme = v
	}
	if v := os.Getenv("TIMEWHEEL_LOCALE"); v != "" {
		cfg.UI.Locale = v
	}

	// Picker overrides
	if v := os.Getenv("TIMEWHEEL_BACKGROUND"); v != "" {
		cfg.Picker.Background = v
	}
	if v := os.Getenv("TIMEWHEEL_LABEL_STYLE"); v != "" {
		cfg.Picker.LabelStyle = v
	}
	if v := os.Getenv("TIMEWHEEL_INITIAL"); v != "" {
		cfg.Picker.Initial = v
	}
	if v := os.Getenv("TIMEWHEEL_CONFIRM_LABEL"); v != "" {
		cfg.Picker.ConfirmLabel = v
	}
}

// expandPath expands ~ to the user's home directory.
func expandPath(path string) string {
	if strings.HasPrefix(path, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return path
		}
		return filepath.Join(home, path[2:])
	}
	return path
}

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	if !theme.IsAvailable(c.UI.Theme) {
		return fmt.Errorf("unknown theme: %s", c.UI.Theme)
	}
	if c.UI.Locale != "" {
		if _, err := language.Parse(c.UI.Locale); err != nil {
			return fmt.Errorf("invalid locale %q: %w", c.UI.Locale, err)
		}
	}

	p := c.Picker
	if !theme.IsBackgroundKind(p.Background) {
		return fmt.Errorf("invalid background: %s", p.Background)
	}
	if err := validateHex(p.BackgroundColor, "background_color"); err != nil {
		return err
	}
	if err := validateHex(p.GradientTo, "gradient_to"); err != nil {
		return err
	}
	if _, err := timeunit.ParseStyle(p.LabelStyle); err != nil {
		return fmt.Errorf("invalid label_style: %w", err)
	}
	if p.VisibleRows < 1 || p.VisibleRows > 9 || p.VisibleRows%2 == 0 {
		return fmt.Errorf("visible_rows must be odd and between 1 and 9, got %d", p.VisibleRows)
	}
	if p.PageStep < 1 {
		return errors.New("page_step must be at least 1")
	}
	if _, err := timeunit.ParseSelection(p.Initial); err != nil {
		return fmt.Errorf("invalid initial: %w", err)
	}
	return nil
}

// validateHex checks that an optional color is in #rrggbb format.
func validateHex(v, field string) error {
	if v == "" || theme.ValidHex(v) {
		return nil
	}
	return fmt.Errorf("%s must be in #rrggbb format, got %q", field, v)
}

// LocaleTag resolves the effective locale: the configured tag, then
// LC_ALL, LC_MESSAGES and LANG, then English.
func (c *Config) LocaleTag() language.Tag {
	if c.UI.Locale != "" {
		if tag, err := language.Parse(c.UI.Locale); err == nil {
			return tag
		}
	}
	for _, env := range []string{"LC_ALL", "LC_MESSAGES", "LANG"} {
		if tag, ok := parsePOSIXLocale(os.Getenv(env)); ok {
			return tag
		}
	}
	return language.English
}

// parsePOSIXLocale parses values like "de_DE.UTF-8" or "pt_BR@euro".
func parsePOSIXLocale(v string) (language.Tag, bool) {
	if i := strings.IndexAny(v, ".@"); i >= 0 {
		v = v[:i]
	}
	if v == "" || v == "C" || v == "POSIX" {
		return language.Und, false
	}
	tag, err := language.Parse(strings.ReplaceAll(v, "_", "-"))
	if err != nil {
		return language.Und, false
	}
	return tag, true
}

// InitialSelection returns the parsed initial value. It falls back to zero
// on an invalid value, which Validate already rejects.
func (c *Config) InitialSelection() timeunit.Selection {
	sel, err := timeunit.ParseSelection(c.Picker.Initial)
	if err != nil {
		return timeunit.Selection{}
	}
	return sel
}

// LabelStyle returns the parsed label style.
func (c *Config) LabelStyle() timeunit.Style {
	style, err := timeunit.ParseStyle(c.Picker.LabelStyle)
	if err != nil {
		return timeunit.StyleDefault
	}
	return style
}

// Background builds the picker background descriptor against palette p.
func (c *Config) Background(p *theme.Palette) (theme.Background, error) {
	return theme.NewBackground(c.Picker.Background, c.Picker.BackgroundColor, c.Picker.GradientTo, p)
}

// Save writes the configuration to the default path.
func (c *Config) Save() error {
	return c.SaveTo(DefaultConfigPath())
}

// SaveTo writes the configuration to the specified path.
func (c *Config) SaveTo(path string) error {
	// Ensure directory exists
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}

	data, err := toml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}

	return nil
}
