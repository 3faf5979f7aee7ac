package markup

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPlain(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"plain text", "Calicut, India", "Calicut, India"},
		{"strong", "working at **TNEI Group (IPSA)**.", "working at TNEI Group (IPSA)."},
		{"emphasis", "an *Electrical* engineer", "an Electrical engineer"},
		{"link keeps text", "see [my repo](https://github.com/nabeelvkd)", "see my repo"},
		{"soft break", "line one\nline two", "line one line two"},
		{"paragraphs", "one\n\ntwo", "one\n\ntwo"},
		{"empty", "", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Plain(tt.in))
		})
	}
}

func TestTerminal_StrongUsesStyle(t *testing.T) {
	marker := lipgloss.NewStyle().SetString("<") // prefix makes the style observable without a color profile
	out := Terminal("a **b** c", marker, lipgloss.NewStyle())

	assert.Contains(t, out, "< b")
	assert.True(t, strings.HasPrefix(out, "a "))
}

func TestHTML(t *testing.T) {
	html, err := HTML("I'm at **TNEI**.")
	require.NoError(t, err)
	assert.Contains(t, string(html), "<strong>TNEI</strong>")
}

func TestHTML_RawHTMLOmitted(t *testing.T) {
	html, err := HTML("<script>alert(1)</script>")
	require.NoError(t, err)
	assert.NotContains(t, string(html), "<script>")
}
