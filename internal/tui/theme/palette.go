package theme

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/lucasb-eyer/go-colorful"
)

// Palette holds precomputed colors derived from a Theme.
type Palette struct {
	Bg          lipgloss.Color
	BgHighlight lipgloss.Color
	BgSelection lipgloss.Color
	Fg          lipgloss.Color
	FgMuted     lipgloss.Color
	Accent      lipgloss.Color
	Warning     lipgloss.Color

	TextOnAccent  lipgloss.Color
	TextOnWarning lipgloss.Color

	Modal ModalColors
}

// ModalColors holds sheet-specific colors derived from a Theme.
type ModalColors struct {
	Bg        lipgloss.Color
	Border    lipgloss.Color
	Text      lipgloss.Color
	Muted     lipgloss.Color
	Highlight lipgloss.Color
	Backdrop  lipgloss.Color
}

// NewPalette derives a Palette from the provided Theme.
func NewPalette(t *Theme) *Palette {
	if t == nil {
		t, _ = Load("mocha")
	}

	m := t.Modal()
	backdrop := blendColors(t.Bg, "#000000", 0.35)
	if IsLight(t.Bg) {
		backdrop = blendColors(t.Bg, "#000000", 0.15)
	}

	return &Palette{
		Bg:          lipgloss.Color(t.Bg),
		BgHighlight: lipgloss.Color(t.BgHighlight),
		BgSelection: lipgloss.Color(t.BgSelection),
		Fg:          lipgloss.Color(t.Fg),
		FgMuted:     lipgloss.Color(t.FgMuted),
		Accent:      lipgloss.Color(t.Accent),
		Warning:     lipgloss.Color(t.Warning),

		TextOnAccent:  lipgloss.Color(chooseTextColor(t.Accent, t.Bg, t.Fg)),
		TextOnWarning: lipgloss.Color(chooseTextColor(t.Warning, t.Bg, t.Fg)),

		Modal: ModalColors{
			Bg:        lipgloss.Color(m.BaseBg),
			Border:    lipgloss.Color(m.ModalBorder),
			Text:      lipgloss.Color(m.TextPrimary),
			Muted:     lipgloss.Color(m.TextMuted),
			Highlight: lipgloss.Color(m.Highlight),
			Backdrop:  lipgloss.Color(backdrop),
		},
	}
}

// IsLight reports whether a background hex color reads as a light theme.
func IsLight(bg string) bool {
	return relativeLuminance(bg) > 0.55
}

// ValidHex reports whether s is a "#rrggbb" color.
func ValidHex(s string) bool {
	if len(s) != 7 || s[0] != '#' {
		return false
	}
	_, err := colorful.Hex(s)
	return err == nil
}

func chooseTextColor(bg, lightText, darkText string) string {
	lightContrast := contrastRatio(bg, lightText)
	darkContrast := contrastRatio(bg, darkText)
	if lightContrast >= darkContrast {
		return lightText
	}
	return darkText
}

func contrastRatio(a, b string) float64 {
	l1 := relativeLuminance(a)
	l2 := relativeLuminance(b)
	if l1 < l2 {
		l1, l2 = l2, l1
	}
	return (l1 + 0.05) / (l2 + 0.05)
}

func relativeLuminance(hex string) float64 {
	c, err := colorful.Hex(hex)
	if err != nil {
		return 0
	}
	r, g, b := c.LinearRgb()
	return 0.2126*r + 0.7152*g + 0.0722*b
}

// blendColors mixes a towards b by ratio in RGB space.
// Invalid input returns a unchanged.
func blendColors(a, b string, ratio float64) string {
	ca, err := colorful.Hex(a)
	if err != nil {
		return a
	}
	cb, err := colorful.Hex(b)
	if err != nil {
		return a
	}
	if ratio < 0 {
		ratio = 0
	}
	if ratio > 1 {
		ratio = 1
	}
	return ca.BlendRgb(cb, ratio).Clamped().Hex()
}
