// Package layout provides pure functions for page dimension calculations.
package layout

// NarrowThreshold is the terminal width below which the layout switches to
// narrow mode: navbar links collapse into a menu and the timeline drops its
// side rail.
const NarrowThreshold = 80

// MaxContentWidth caps the width of the text column on wide terminals.
const MaxContentWidth = 110

// PageMargin is the horizontal margin on each side of the content column.
const PageMargin = 2

// NotificationHeight is the height of the error line under the page when
// a notification is shown.
const NotificationHeight = 1

// IsNarrowMode returns true if the terminal width is below the narrow threshold.
func IsNarrowMode(width int) bool {
	return width < NarrowThreshold
}

// ContentWidth returns the width of the centered content column.
func ContentWidth(windowWidth int) int {
	return max(min(windowWidth-2*PageMargin, MaxContentWidth), 0)
}

// ContentMargin returns the left margin that centers the content column.
func ContentMargin(windowWidth int) int {
	return max((windowWidth-ContentWidth(windowWidth))/2, 0)
}

// ViewportHeight returns the number of page lines visible under the header
// bar, minus the notification line when one is shown.
func ViewportHeight(windowHeight, headerHeight int, notification bool) int {
	h := windowHeight - headerHeight
	if notification {
		h -= NotificationHeight
	}
	return max(h, 0)
}

// MaxOffset returns the largest scroll offset that still fills the viewport.
func MaxOffset(contentSize, viewSize int) int {
	return max(contentSize-viewSize, 0)
}

// ClampOffset clamps offset to [0, MaxOffset].
func ClampOffset(offset, contentSize, viewSize int) int {
	return min(max(offset, 0), MaxOffset(contentSize, viewSize))
}

// Strip describes a horizontal row of equal-width cards with side padding
// so that the first and last cards can be scrolled to the center.
type Strip struct {
	ViewWidth int
	CardWidth int
	Gap       int
	Count     int
}

// CardWidthFor picks a card width for a row of the given view width:
// 80% of the view on narrow terminals, otherwise preferred, never wider
// than the view.
func CardWidthFor(viewWidth, preferred int) int {
	if IsNarrowMode(viewWidth) {
		return max(viewWidth*4/5, 1)
	}
	return max(min(preferred, viewWidth), 1)
}

// SidePadding returns the blank space before the first card.
func (s Strip) SidePadding() int {
	return max((s.ViewWidth-s.CardWidth)/2, 0)
}

// CardLeft returns the left edge of card i in strip coordinates.
func (s Strip) CardLeft(i int) int {
	return s.SidePadding() + i*(s.CardWidth+s.Gap)
}

// CardCenter returns the center of card i in strip coordinates.
func (s Strip) CardCenter(i int) float64 {
	return float64(s.CardLeft(i)) + float64(s.CardWidth)/2
}

// Width returns the total width of the strip including padding.
func (s Strip) Width() int {
	if s.Count == 0 {
		return s.ViewWidth
	}
	return 2*s.SidePadding() + s.Count*s.CardWidth + (s.Count-1)*s.Gap
}

// MaxScroll returns the largest horizontal scroll offset.
func (s Strip) MaxScroll() int {
	return MaxOffset(s.Width(), s.ViewWidth)
}

// ScrollToCenter returns the scroll offset that centers card i.
func (s Strip) ScrollToCenter(i int) int {
	off := int(s.CardCenter(i) - float64(s.ViewWidth)/2)
	return ClampOffset(off, s.Width(), s.ViewWidth)
}
