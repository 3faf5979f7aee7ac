// Package markup renders the markdown used in portfolio text (summaries,
// descriptions) for the terminal and for HTML.
package markup

import (
	"bytes"
	"html/template"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"
)

var md = goldmark.New()

// HTML converts markdown to HTML. Raw HTML in the source is omitted by
// goldmark's default renderer.
func HTML(src string) (template.HTML, error) {
	var buf bytes.Buffer
	if err := md.Convert([]byte(src), &buf); err != nil {
		return "", err
	}
	return template.HTML(buf.String()), nil //nolint:gosec // produced by goldmark with unsafe HTML disabled
}

// Terminal renders markdown as styled terminal text. Strong spans use
// strong and emphasis uses em; paragraphs are separated by a blank line.
// Link destinations are dropped, keeping their text.
func Terminal(src string, strong, em lipgloss.Style) string {
	source := []byte(src)
	doc := md.Parser().Parse(text.NewReader(source))

	var b strings.Builder
	var levels []int
	paragraphs := 0

	_ = ast.Walk(doc, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		switch node := n.(type) {
		case *ast.Paragraph, *ast.TextBlock, *ast.Heading:
			if entering && paragraphs > 0 {
				b.WriteString("\n\n")
			}
			if !entering {
				paragraphs++
			}
		case *ast.Emphasis:
			if entering {
				levels = append(levels, node.Level)
			} else {
				levels = levels[:len(levels)-1]
			}
		case *ast.Text:
			if !entering {
				break
			}
			b.WriteString(styled(string(node.Segment.Value(source)), levels, strong, em))
			if node.SoftLineBreak() || node.HardLineBreak() {
				b.WriteString(" ")
			}
		case *ast.AutoLink:
			if entering {
				b.WriteString(styled(string(node.URL(source)), levels, strong, em))
			}
		}
		return ast.WalkContinue, nil
	})

	return strings.TrimSpace(b.String())
}

// Plain strips markdown, returning only the text.
func Plain(src string) string {
	return Terminal(src, lipgloss.NewStyle(), lipgloss.NewStyle())
}

func styled(s string, levels []int, strong, em lipgloss.Style) string {
	if len(levels) == 0 {
		return s
	}
	style := em
	for _, l := range levels {
		if l >= 2 {
			style = strong
			break
		}
	}
	return style.Render(s)
}
