package page

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/llehouerou/folio/internal/ui"
	"github.com/llehouerou/folio/internal/ui/layout"
	"github.com/llehouerou/folio/internal/ui/render"
)

// Section is a page block. Its rendered height may depend on the width but
// not on any other state, so the layout only changes on resize.
type Section interface {
	SetSize(width, height int)
	View() string
}

// Block is a section placed on the page.
type Block struct {
	Anchor  string
	Section Section
	Top     int
	Height  int
}

// Layout stacks the blocks vertically in the centered content column.
type Layout struct {
	blocks []Block
	width  int
	margin int
	total  int
}

func newLayout(blocks []Block) *Layout {
	return &Layout{blocks: blocks}
}

// Resize lays every block out for the window width.
func (l *Layout) Resize(windowWidth int) {
	l.width = layout.ContentWidth(windowWidth)
	l.margin = layout.ContentMargin(windowWidth)

	top := 0
	for i := range l.blocks {
		b := &l.blocks[i]
		b.Section.SetSize(l.width, 0)
		b.Top = top
		b.Height = 0
		if view := b.Section.View(); view != "" {
			b.Height = lipgloss.Height(view)
		}
		top += b.Height + ui.SectionGap
	}
	l.total = max(top-ui.SectionGap, 0)
}

// Total returns the page height in lines.
func (l *Layout) Total() int { return l.total }

// Width returns the content column width.
func (l *Layout) Width() int { return l.width }

// Blocks returns the placed blocks.
func (l *Layout) Blocks() []Block { return l.blocks }

// Block returns the block with the given anchor.
func (l *Layout) Block(anchor string) (Block, bool) {
	for _, b := range l.blocks {
		if b.Anchor == anchor {
			return b, true
		}
	}
	return Block{}, false
}

// Anchors maps every anchor to its first page line.
func (l *Layout) Anchors() map[string]int {
	anchors := make(map[string]int, len(l.blocks))
	for _, b := range l.blocks {
		anchors[b.Anchor] = b.Top
	}
	return anchors
}

// SectionAt returns the anchor of the block covering line, or of the
// block just above when line falls in a gap.
func (l *Layout) SectionAt(line int) string {
	anchor := ""
	for _, b := range l.blocks {
		if b.Top > line {
			break
		}
		anchor = b.Anchor
	}
	return anchor
}

// Lines renders the whole page, indented by the content margin.
func (l *Layout) Lines() []string {
	lines := make([]string, 0, l.total)
	for i, b := range l.blocks {
		if i > 0 {
			for range ui.SectionGap {
				lines = append(lines, "")
			}
		}
		view := b.Section.View()
		blockLines := strings.Split(render.Indent(view, l.margin), "\n")
		// Keep the measured height so anchors stay valid even if a
		// section's view changed size since the last resize.
		for len(blockLines) < b.Height {
			blockLines = append(blockLines, "")
		}
		lines = append(lines, blockLines[:b.Height]...)
	}
	return lines
}
