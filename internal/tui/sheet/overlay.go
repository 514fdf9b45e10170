package sheet

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

const (
	overlayMarginX = 2
	overlayMarginY = 1
)

// overlay composites an opaque box over base content. The box is the
// content plus a margin filled with the backdrop color.
type overlay struct {
	backdrop lipgloss.Color
}

// render draws content centered on base, which is normalized to
// width x height first.
func (o overlay) render(base string, width, height int, content string) string {
	if width <= 0 || height <= 0 {
		return base
	}

	contentLines := o.contentLines(content)
	if len(contentLines) == 0 {
		return base
	}
	boxW, boxH := o.boxSize(contentLines, width, height)
	if boxW <= 0 || boxH <= 0 {
		return base
	}

	top := (height - boxH) / 2
	left := (width - boxW) / 2
	if top < 0 {
		top = 0
	}
	if left < 0 {
		left = 0
	}

	baseLines := o.normalizeBase(base, width, height)
	boxLines := o.applyContent(o.fillLines(boxW, boxH), contentLines, boxW, boxH)

	lines := make([]string, 0, height)
	for row := 0; row < height; row++ {
		if row < top || row >= top+boxH {
			lines = append(lines, baseLines[row])
			continue
		}
		baseLine := baseLines[row]
		leftSlice := ansi.Cut(baseLine, 0, left)
		rightSlice := ansi.Cut(baseLine, left+boxW, width)
		lines = append(lines, leftSlice+boxLines[row-top]+rightSlice)
	}

	return strings.Join(lines, "\n")
}

func (o overlay) boxSize(content []string, width, height int) (int, int) {
	contentW, contentH := o.contentSize(content)
	boxW := contentW + 2*overlayMarginX
	boxH := contentH + 2*overlayMarginY
	if boxW > width {
		boxW = width
	}
	if boxH > height {
		boxH = height
	}
	return boxW, boxH
}

func (o overlay) bgSeq() string {
	if o.backdrop == "" {
		return ""
	}
	return ansi.Style{}.BackgroundColor(ansi.HexColor(string(o.backdrop))).String()
}

func (o overlay) fillLines(width, height int) []string {
	line := o.bgSeq() + strings.Repeat(" ", width) + ansi.ResetStyle
	lines := make([]string, height)
	for i := range lines {
		lines[i] = line
	}
	return lines
}

func (o overlay) applyContent(lines []string, content []string, width, height int) []string {
	contentW, contentH := o.contentSize(content)
	if contentW > width {
		contentW = width
	}
	if contentH > height {
		contentH = height
	}

	top := (height - contentH) / 2
	left := (width - contentW) / 2
	bgSeq := o.bgSeq()

	for i := 0; i < contentH; i++ {
		idx := top + i
		if idx >= len(lines) {
			break
		}
		line := content[i]
		lineWidth := lipgloss.Width(line)
		if lineWidth > contentW {
			line = ansi.Cut(line, 0, contentW)
			lineWidth = contentW
		}
		if lineWidth < contentW {
			line += bgSeq + strings.Repeat(" ", contentW-lineWidth)
		}

		rightPad := width - left - contentW
		if rightPad < 0 {
			rightPad = 0
		}
		lines[idx] = bgSeq + strings.Repeat(" ", left) + line + ansi.ResetStyle +
			bgSeq + strings.Repeat(" ", rightPad) + ansi.ResetStyle
	}

	return lines
}

func (o overlay) contentLines(content string) []string {
	if content == "" {
		return nil
	}
	lines := strings.Split(content, "\n")
	for len(lines) > 0 && lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	return lines
}

func (o overlay) contentSize(lines []string) (int, int) {
	maxWidth := 0
	for _, line := range lines {
		if w := lipgloss.Width(line); w > maxWidth {
			maxWidth = w
		}
	}
	return maxWidth, len(lines)
}

func (o overlay) normalizeBase(base string, width, height int) []string {
	lines := strings.Split(base, "\n")
	for len(lines) < height {
		lines = append(lines, "")
	}
	if len(lines) > height {
		lines = lines[:height]
	}

	for i, line := range lines {
		lineWidth := lipgloss.Width(line)
		if lineWidth > width {
			lines[i] = ansi.Cut(line, 0, width)
			continue
		}
		if lineWidth < width {
			lines[i] = line + strings.Repeat(" ", width-lineWidth)
		}
	}

	return lines
}
