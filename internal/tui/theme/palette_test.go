package theme

import (
	"testing"

	"github.com/charmbracelet/lipgloss"
)

func testTheme() *Theme {
	return &Theme{
		Bg:          "#101010",
		BgHighlight: "#202020",
		BgSelection: "#303030",
		Fg:          "#ffffff",
		FgMuted:     "#aaaaaa",
		Accent:      "#ff0000",
		Warning:     "#ff00ff",
	}
}

func TestNewPalette_ModalFallbacks(t *testing.T) {
	base := testTheme()

	palette := NewPalette(base)
	if palette.Modal.Bg != lipgloss.Color(base.BgHighlight) {
		t.Fatalf("Modal.Bg = %q, want %q", palette.Modal.Bg, base.BgHighlight)
	}
	if palette.Modal.Border != lipgloss.Color(base.Accent) {
		t.Fatalf("Modal.Border = %q, want %q", palette.Modal.Border, base.Accent)
	}
	if palette.Modal.Highlight != lipgloss.Color(base.BgSelection) {
		t.Fatalf("Modal.Highlight = %q, want %q", palette.Modal.Highlight, base.BgSelection)
	}
	if relativeLuminance(string(palette.Modal.Backdrop)) >= relativeLuminance(base.Bg) {
		t.Fatalf("Modal.Backdrop = %q, want darker than %q", palette.Modal.Backdrop, base.Bg)
	}
}

func TestNewPalette_NilUsesMocha(t *testing.T) {
	palette := NewPalette(nil)
	if palette.Bg != lipgloss.Color("#1e1e2e") {
		t.Fatalf("Bg = %q, want mocha base", palette.Bg)
	}
}

func TestChooseTextColorPrefersContrast(t *testing.T) {
	bg := "#f0f0f0"
	lightText := "#ffffff"
	darkText := "#111111"

	if got := chooseTextColor(bg, lightText, darkText); got != darkText {
		t.Fatalf("chooseTextColor(%q, %q, %q) = %q, want %q", bg, lightText, darkText, got, darkText)
	}
}

func TestBlendColors(t *testing.T) {
	tests := []struct {
		name  string
		a, b  string
		ratio float64
		want  string
	}{
		{"zero ratio keeps a", "#000000", "#ffffff", 0, "#000000"},
		{"full ratio is b", "#000000", "#ffffff", 1, "#ffffff"},
		{"ratio clamps high", "#000000", "#ffffff", 3, "#ffffff"},
		{"invalid input returns a", "nope", "#ffffff", 0.5, "nope"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := blendColors(tt.a, tt.b, tt.ratio); got != tt.want {
				t.Errorf("blendColors(%q, %q, %v) = %q, want %q", tt.a, tt.b, tt.ratio, got, tt.want)
			}
		})
	}
}

func TestValidHex(t *testing.T) {
	tests := map[string]bool{
		"#a0b1c2": true,
		"#A0B1C2": true,
		"a0b1c2":  false,
		"#abc":    false,
		"#zzzzzz": false,
		"":        false,
	}
	for in, want := range tests {
		if got := ValidHex(in); got != want {
			t.Errorf("ValidHex(%q) = %t, want %t", in, got, want)
		}
	}
}

func TestIsLight(t *testing.T) {
	if !IsLight("#eff1f5") {
		t.Errorf("IsLight(latte) = false, want true")
	}
	if IsLight("#1e1e2e") {
		t.Errorf("IsLight(mocha) = true, want false")
	}
}
