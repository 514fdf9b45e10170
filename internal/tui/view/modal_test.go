package view

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

func TestRenderModalButtons_UsesModalBodySeparator(t *testing.T) {
	styles := ModalStyles{
		ModalBodyStyle:         lipgloss.NewStyle().Foreground(lipgloss.Color("5")),
		ModalButtonStyle:       lipgloss.NewStyle(),
		ModalButtonActiveStyle: lipgloss.NewStyle(),
	}

	view := RenderModalButtons(styles, "Done", "Cancel")
	sep := styles.ModalBodyStyle.Render(" ")
	if !strings.Contains(view, sep) {
		t.Fatalf("expected modal button separator to use modal body style")
	}
}

func TestRenderModalFrame_Layout(t *testing.T) {
	styles := NewModalStyles(nil)

	view := ansi.Strip(RenderModalFrame("Set time", "body", "Done", styles))
	lines := strings.Split(view, "\n")
	if !strings.HasPrefix(lines[0], "╭") {
		t.Fatalf("expected rounded border, got %q", lines[0])
	}

	title := strings.Index(view, "Set time")
	body := strings.Index(view, "body")
	footer := strings.Index(view, "Done")
	if title < 0 || body < 0 || footer < 0 {
		t.Fatalf("missing frame parts:\n%s", view)
	}
	if !(title < body && body < footer) {
		t.Fatalf("frame parts out of order:\n%s", view)
	}
}

func TestRenderModalFrame_SkipsEmptyTitle(t *testing.T) {
	styles := ModalStyles{}
	view := RenderModalFrame("", "body", "", styles)
	if view != "body" {
		t.Fatalf("RenderModalFrame() = %q, want %q", view, "body")
	}
}
