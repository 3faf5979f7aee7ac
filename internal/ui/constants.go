// Package ui provides shared UI constants and utilities.
package ui

// Layout constants for consistent sizing across sections.
const (
	// SectionGap is the number of blank lines between stacked sections.
	SectionGap = 1

	// BorderHeight is the vertical space consumed by a card border.
	BorderHeight = 2

	// ScrolledThreshold is the page offset, in lines, past which the header
	// bar is drawn as scrolled.
	ScrolledThreshold = 1

	// MinProgressBarWidth is the minimum width for a usable progress bar.
	MinProgressBarWidth = 5
)
