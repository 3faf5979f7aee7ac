package styles

import "github.com/charmbracelet/lipgloss"

// Theme defines the color palette and pre-built styles for the application.
type Theme struct {
	// Brand/accent colors
	Primary   lipgloss.Color // Blue - active items, links
	Secondary lipgloss.Color // Purple - gradient end, secondary accent
	Gold      lipgloss.Color // Golden achievements

	// Text hierarchy (most to least prominent)
	FgBase   lipgloss.Color // Primary text (bright)
	FgMuted  lipgloss.Color // Secondary text (dimmed)
	FgSubtle lipgloss.Color // Tertiary text (very dim)

	// Backgrounds
	BgBase lipgloss.Color // Page background
	BgTag  lipgloss.Color // Skill and tech tags

	// Borders
	Border      lipgloss.Color // Inactive cards
	BorderFocus lipgloss.Color // Active card, focused row

	// Status colors
	Error lipgloss.Color

	styles *Styles
}

// Styles contains pre-built lipgloss styles for common UI patterns.
type Styles struct {
	Base    lipgloss.Style // Default text
	Muted   lipgloss.Style // Dimmed text
	Subtle  lipgloss.Style // Very dim text
	Title   lipgloss.Style // Bold, bright
	Heading lipgloss.Style // Section heading
	Active  lipgloss.Style // The tracker's current item
	Link    lipgloss.Style // URLs and navbar links
	Golden  lipgloss.Style // Golden achievements
	Tag     lipgloss.Style // Skill and tech tags
	Error   lipgloss.Style
}

var defaultTheme = Theme{
	Primary:   lipgloss.Color("#60a5fa"),
	Secondary: lipgloss.Color("#a78bfa"),
	Gold:      lipgloss.Color("#fbbf24"),

	// Text hierarchy (grayscale)
	FgBase:   lipgloss.Color("#e5e7eb"),
	FgMuted:  lipgloss.Color("#9ca3af"),
	FgSubtle: lipgloss.Color("#4b5563"),

	BgBase: lipgloss.Color("#0b1120"),
	BgTag:  lipgloss.Color("#1f2937"),

	Border:      lipgloss.Color("#374151"),
	BorderFocus: lipgloss.Color("#60a5fa"),

	Error: lipgloss.Color("#f87171"),
}

// T returns the default theme.
func T() *Theme {
	return &defaultTheme
}

// S returns the pre-built styles for this theme.
func (t *Theme) S() *Styles {
	if t.styles == nil {
		t.styles = t.buildStyles()
	}
	return t.styles
}

func (t *Theme) buildStyles() *Styles {
	base := lipgloss.NewStyle().Foreground(t.FgBase)

	return &Styles{
		Base:    base,
		Muted:   lipgloss.NewStyle().Foreground(t.FgMuted),
		Subtle:  lipgloss.NewStyle().Foreground(t.FgSubtle),
		Title:   base.Bold(true),
		Heading: lipgloss.NewStyle().Foreground(t.Primary).Bold(true),
		Active: lipgloss.NewStyle().
			Foreground(t.Primary).
			Bold(true),
		Link:   lipgloss.NewStyle().Foreground(t.Primary).Underline(true),
		Golden: lipgloss.NewStyle().Foreground(t.Gold).Bold(true),
		Tag: lipgloss.NewStyle().
			Foreground(t.FgBase).
			Background(t.BgTag).
			Padding(0, 1),
		Error: lipgloss.NewStyle().Foreground(t.Error),
	}
}
