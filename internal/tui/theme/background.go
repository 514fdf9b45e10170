package theme

import (
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/lucasb-eyer/go-colorful"
)

// ErrUnknownBackground is returned for an unrecognized background kind.
var ErrUnknownBackground = errors.New("unknown background")

// Background paints the block behind the picker wheels. Implementations are
// opaque style descriptors: the picker only hands them its rendered block.
type Background interface {
	Paint(block string) string
}

// Solid fills every row with one color.
type Solid struct {
	Color string
}

// Paint implements Background.
func (s Solid) Paint(block string) string {
	return paintRows(block, func(int, int) string { return s.Color })
}

// Gradient blends vertically from From at the top row to To at the bottom.
type Gradient struct {
	From string
	To   string
}

// Paint implements Background.
func (g Gradient) Paint(block string) string {
	from, errFrom := colorful.Hex(g.From)
	to, errTo := colorful.Hex(g.To)
	if errFrom != nil || errTo != nil {
		return Solid{Color: g.From}.Paint(block)
	}
	return paintRows(block, func(row, rows int) string {
		switch {
		case rows <= 1 || row == 0:
			return g.From
		case row == rows-1:
			return g.To
		}
		t := float64(row) / float64(rows-1)
		return from.BlendLuv(to, t).Clamped().Hex()
	})
}

// Material imitates a translucent panel: Tint laid over Base at Opacity.
type Material struct {
	Base    string
	Tint    string
	Opacity float64
}

// Paint implements Background.
func (m Material) Paint(block string) string {
	return Solid{Color: blendColors(m.Base, m.Tint, m.Opacity)}.Paint(block)
}

// Clear leaves the block as rendered.
type Clear struct{}

// Paint implements Background.
func (Clear) Paint(block string) string {
	return block
}

// BackgroundKinds lists the names accepted by NewBackground.
func BackgroundKinds() []string {
	return []string{"solid", "gradient", "material", "clear"}
}

// IsBackgroundKind reports whether kind is accepted by NewBackground.
func IsBackgroundKind(kind string) bool {
	kind = strings.ToLower(kind)
	for _, k := range BackgroundKinds() {
		if k == kind {
			return true
		}
	}
	return false
}

// NewBackground builds a background descriptor by name. Empty colors fall
// back to the palette: color defaults to the modal background and to
// defaults to a blend of the modal background and the accent.
func NewBackground(kind, color, to string, p *Palette) (Background, error) {
	if p == nil {
		p = NewPalette(nil)
	}
	base := coalesce(color, string(p.Modal.Bg))
	switch strings.ToLower(kind) {
	case "", "solid":
		return Solid{Color: base}, nil
	case "gradient":
		end := coalesce(to, blendColors(base, string(p.Accent), 0.35))
		return Gradient{From: base, To: end}, nil
	case "material":
		return Material{Base: string(p.Bg), Tint: coalesce(color, string(p.Modal.Highlight)), Opacity: 0.4}, nil
	case "clear":
		return Clear{}, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownBackground, kind)
	}
}

// paintRows pads block to a rectangle and sets each row's background to
// colorAt(row, rows). Inner resets are re-armed so styled segments keep
// the row color.
func paintRows(block string, colorAt func(row, rows int) string) string {
	if block == "" {
		return block
	}
	lines := strings.Split(block, "\n")
	width := 0
	for _, line := range lines {
		if w := lipgloss.Width(line); w > width {
			width = w
		}
	}

	for i, line := range lines {
		hex := colorAt(i, len(lines))
		if hex == "" {
			continue
		}
		if w := lipgloss.Width(line); w < width {
			line += strings.Repeat(" ", width-w)
		}
		bgSeq := ansi.Style{}.BackgroundColor(ansi.HexColor(hex)).String()
		lines[i] = bgSeq + rearmBackground(line, bgSeq) + ansi.ResetStyle
	}
	return strings.Join(lines, "\n")
}

func rearmBackground(line, bgSeq string) string {
	if bgSeq == "" || line == "" {
		return line
	}
	line = strings.ReplaceAll(line, ansi.ResetStyle, ansi.ResetStyle+bgSeq)
	line = strings.ReplaceAll(line, "\x1b[0m", "\x1b[0m"+bgSeq)
	line = strings.ReplaceAll(line, "\x1b[49m", "\x1b[49m"+bgSeq)
	return line
}
