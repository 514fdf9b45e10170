package ui

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/javiermolinar/timewheel/internal/config"
	"github.com/javiermolinar/timewheel/internal/timeunit"
	"github.com/javiermolinar/timewheel/internal/tui/theme"
)

func (a *App) configCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "config",
		Short: "View or edit configuration",
		Long: `Interactive configuration management.

If no config file exists, creates one with default values.
Otherwise, displays current config and allows editing.

Example:
  timewheel config`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runConfigInteractive(config.DefaultConfigPath(), cmd.InOrStdin(), cmd.OutOrStdout())
		},
	}
}

func runConfigInteractive(configPath string, in io.Reader, out io.Writer) error {
	_, _ = fmt.Fprintf(out, "Config file: %s\n\n", configPath)

	// Load existing config or create defaults
	cfg, err := config.LoadFrom(configPath)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	// Check if file exists
	_, fileErr := os.Stat(configPath)
	isNew := os.IsNotExist(fileErr)

	if isNew {
		_, _ = fmt.Fprintln(out, "No config file found. Creating with default values...")
		if err := cfg.SaveTo(configPath); err != nil {
			return fmt.Errorf("saving config: %w", err)
		}
		_, _ = fmt.Fprintf(out, "Created %s\n\n", configPath)
	}

	// Display current config
	printConfig(out, cfg)

	p := &prompter{reader: bufio.NewReader(in), out: out}

	// Ask if user wants to edit
	if !p.yesNo("\nWould you like to edit the configuration?") {
		return nil
	}

	cfg.UI.Theme = p.choice("UI theme", cfg.UI.Theme, theme.Available())
	cfg.UI.Locale = p.value("Locale (BCP 47, empty for environment)", cfg.UI.Locale)
	cfg.Picker.Title = p.value("Sheet title (empty for localized default)", cfg.Picker.Title)
	cfg.Picker.ConfirmLabel = p.value("Confirm label (empty for localized default)", cfg.Picker.ConfirmLabel)
	cfg.Picker.Background = p.choice("Background", cfg.Picker.Background, theme.BackgroundKinds())
	cfg.Picker.BackgroundColor = p.value("Background color (#rrggbb, empty for theme)", cfg.Picker.BackgroundColor)
	if strings.EqualFold(cfg.Picker.Background, "gradient") {
		cfg.Picker.GradientTo = p.value("Gradient end color (#rrggbb)", cfg.Picker.GradientTo)
	}
	cfg.Picker.LabelStyle = p.choice("Label style", cfg.Picker.LabelStyle, labelStyleNames())
	cfg.Picker.VisibleRows = p.number("Visible rows (odd, 1-9)", cfg.Picker.VisibleRows)
	cfg.Picker.PageStep = p.number("Page step", cfg.Picker.PageStep)
	cfg.Picker.Initial = p.value("Initial value (HH:MM:SS)", cfg.Picker.Initial)

	// Validate before saving
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}

	// Save
	if err := cfg.SaveTo(configPath); err != nil {
		return fmt.Errorf("saving config: %w", err)
	}

	_, _ = fmt.Fprintln(out, "\nConfiguration saved!")
	return nil
}

func printConfig(out io.Writer, cfg *config.Config) {
	_, _ = fmt.Fprintln(out, "Current configuration:")
	_, _ = fmt.Fprintln(out, "──────────────────────")
	_, _ = fmt.Fprintln(out, "[ui]")
	_, _ = fmt.Fprintf(out, "  theme            = %s\n", cfg.UI.Theme)
	_, _ = fmt.Fprintf(out, "  locale           = %s\n", orDefault(cfg.UI.Locale, cfg.LocaleTag().String()))
	_, _ = fmt.Fprintln(out, "\n[picker]")
	_, _ = fmt.Fprintf(out, "  title            = %s\n", orDefault(cfg.Picker.Title, "localized"))
	_, _ = fmt.Fprintf(out, "  confirm_label    = %s\n", orDefault(cfg.Picker.ConfirmLabel, "localized"))
	_, _ = fmt.Fprintf(out, "  background       = %s\n", cfg.Picker.Background)
	if cfg.Picker.BackgroundColor != "" {
		_, _ = fmt.Fprintf(out, "  background_color = %s\n", cfg.Picker.BackgroundColor)
	}
	if cfg.Picker.GradientTo != "" {
		_, _ = fmt.Fprintf(out, "  gradient_to      = %s\n", cfg.Picker.GradientTo)
	}
	_, _ = fmt.Fprintf(out, "  label_style      = %s\n", cfg.Picker.LabelStyle)
	_, _ = fmt.Fprintf(out, "  visible_rows     = %d\n", cfg.Picker.VisibleRows)
	_, _ = fmt.Fprintf(out, "  page_step        = %d\n", cfg.Picker.PageStep)
	_, _ = fmt.Fprintf(out, "  initial          = %s\n", cfg.Picker.Initial)
}

// orDefault shows fallback in parentheses when v is empty.
func orDefault(v, fallback string) string {
	if v == "" {
		return "(" + fallback + ")"
	}
	return v
}

func labelStyleNames() []string {
	styles := []timeunit.Style{timeunit.StyleDefault, timeunit.StyleLong, timeunit.StyleShort, timeunit.StyleNarrow}
	names := make([]string, len(styles))
	for i, s := range styles {
		names[i] = s.String()
	}
	return names
}

// prompter reads answers line by line from a single reader.
type prompter struct {
	reader *bufio.Reader
	out    io.Writer
}

func (p *prompter) readLine() (string, bool) {
	input, err := p.reader.ReadString('\n')
	if err != nil && input == "" {
		return "", false
	}
	return strings.TrimSpace(input), true
}

func (p *prompter) yesNo(question string) bool {
	_, _ = fmt.Fprintf(p.out, "%s [y/N]: ", question)
	input, _ := p.readLine()
	input = strings.ToLower(input)
	return input == "y" || input == "yes"
}

func (p *prompter) value(label, current string) string {
	if current == "" {
		_, _ = fmt.Fprintf(p.out, "  %s: ", label)
	} else {
		_, _ = fmt.Fprintf(p.out, "  %s [%s]: ", label, current)
	}
	input, _ := p.readLine()
	if input == "" {
		return current
	}
	return input
}

// choice keeps asking until the answer is one of options. EOF keeps current.
func (p *prompter) choice(label, current string, options []string) string {
	joined := strings.Join(options, ", ")
	prompt := fmt.Sprintf("%s (%s)", label, joined)
	for {
		_, _ = fmt.Fprintf(p.out, "  %s [%s]: ", prompt, current)
		input, ok := p.readLine()
		if !ok || input == "" {
			return current
		}
		value := strings.ToLower(input)
		for _, o := range options {
			if value == o {
				return value
			}
		}
		_, _ = fmt.Fprintf(p.out, "  Invalid value %q. Available: %s\n", value, joined)
	}
}

func (p *prompter) number(label string, current int) int {
	for {
		_, _ = fmt.Fprintf(p.out, "  %s [%d]: ", label, current)
		input, ok := p.readLine()
		if !ok || input == "" {
			return current
		}
		n, err := strconv.Atoi(input)
		if err == nil {
			return n
		}
		_, _ = fmt.Fprintf(p.out, "  Invalid number %q\n", input)
	}
}
