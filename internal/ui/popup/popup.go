// Package popup renders modal popups over the page.
package popup

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/llehouerou/folio/internal/ui/styles"
)

// SizeConfig defines how a popup should be sized.
type SizeConfig struct {
	WidthPct  int // Percentage of screen width (0 = auto-fit)
	HeightPct int // Percentage of screen height (0 = auto-fit)
	MaxWidth  int // Maximum width in columns (0 = no limit)
}

// Common size configurations.
var (
	SizeAuto = SizeConfig{}             // Help
	SizeMenu = SizeConfig{MaxWidth: 32} // Nav menu
)

// Center centers pre-rendered content in the terminal.
func Center(content string, termWidth, termHeight int) string {
	lines := strings.Split(content, "\n")
	boxWidth := maxLineWidth(content)

	padTop := max((termHeight-len(lines))/2, 0)
	padLeft := strings.Repeat(" ", max((termWidth-boxWidth)/2, 0))

	var result strings.Builder
	for range padTop {
		result.WriteString(strings.Repeat(" ", termWidth) + "\n")
	}
	for _, line := range lines {
		result.WriteString(padLeft)
		result.WriteString(line)
		result.WriteString("\n")
	}
	return result.String()
}

// RenderBordered wraps content in a rounded border and centers it.
func RenderBordered(content string, screenW, screenH int, size SizeConfig) string {
	width, height := calculateDimensions(content, screenW, screenH, size)

	box := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(styles.T().BorderFocus).
		Width(width-2). // Account for border
		Height(height-2).
		Padding(1, 2).
		Render(content)

	return Center(box, screenW, screenH)
}

func calculateDimensions(content string, screenW, screenH int, size SizeConfig) (width, height int) {
	if size.WidthPct > 0 {
		return screenW * size.WidthPct / 100, screenH * size.HeightPct / 100
	}

	width = maxLineWidth(content) + 6 // padding + border
	if size.MaxWidth > 0 {
		width = min(width, size.MaxWidth)
	}
	width = min(width, screenW-4)

	height = strings.Count(content, "\n") + 1 + 4 // padding + border
	height = min(height, screenH-4)
	return width, height
}

func maxLineWidth(s string) int {
	maxW := 0
	for line := range strings.SplitSeq(s, "\n") {
		maxW = max(maxW, lipgloss.Width(line))
	}
	return maxW
}

// Compose overlays popupView on top of base. Only the visible span of each
// overlay line replaces the base; leading and trailing blanks let the page
// show through. ANSI styling on both sides is kept.
func Compose(base, popupView string, width, _ int) string {
	baseLines := strings.Split(base, "\n")
	for i, line := range strings.Split(popupView, "\n") {
		if i >= len(baseLines) {
			break
		}
		baseLines[i] = overlayLine(baseLines[i], line, width)
	}
	return strings.Join(baseLines, "\n")
}

func overlayLine(base, over string, width int) string {
	plain := ansi.Strip(over)
	trimmed := strings.TrimRight(plain, " ")
	start := len(trimmed) - len(strings.TrimLeft(trimmed, " "))
	if start == len(trimmed) {
		return base
	}
	end := ansi.StringWidth(trimmed)

	if w := ansi.StringWidth(base); w < width {
		base += strings.Repeat(" ", width-w)
	}

	// ansi.Cut may drop or keep a wide rune split by the boundary, so both
	// sides are padded back to their expected widths.
	prefix := ansi.Cut(base, 0, start)
	if w := ansi.StringWidth(prefix); w < start {
		prefix += strings.Repeat(" ", start-w)
	}

	result := prefix + ansi.Cut(over, start, end)
	if end >= width {
		return result
	}

	want := width - end
	suffix := ansi.Cut(base, end, width)
	switch w := ansi.StringWidth(suffix); {
	case w > want:
		suffix = " " + ansi.Cut(suffix, w-want+1, w)
	case w < want:
		result += strings.Repeat(" ", want-w)
	}
	return result + suffix
}
