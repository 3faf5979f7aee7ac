// Package scroll tracks a clamped scroll offset over content whose size and
// viewport can change between calls.
package scroll

// Offset is a scroll position along one axis. Content and view sizes are
// passed to methods rather than stored, since they change on resize.
type Offset struct {
	pos int
}

// Pos returns the current offset.
func (o Offset) Pos() int {
	return o.pos
}

// Max returns the largest valid offset.
func Max(content, view int) int {
	return max(content-view, 0)
}

// By moves the offset by delta and clamps it. It returns true if the offset
// changed.
func (o *Offset) By(delta, content, view int) bool {
	return o.To(o.pos+delta, content, view)
}

// To moves the offset to pos and clamps it. It returns true if the offset
// changed.
func (o *Offset) To(pos, content, view int) bool {
	old := o.pos
	o.pos = clamp(pos, Max(content, view))
	return o.pos != old
}

// Clamp re-clamps the offset after a resize. It returns true if the offset
// changed.
func (o *Offset) Clamp(content, view int) bool {
	return o.To(o.pos, content, view)
}

// Reveal moves the least distance needed to show [start, end).
func (o *Offset) Reveal(start, end, content, view int) bool {
	switch {
	case start < o.pos:
		return o.To(start, content, view)
	case end > o.pos+view:
		return o.To(end-view, content, view)
	}
	return false
}

// Visible returns the visible range [start, end) of the content.
func (o Offset) Visible(content, view int) (start, end int) {
	if content <= 0 || view <= 0 {
		return 0, 0
	}
	return o.pos, min(o.pos+view, content)
}

// SetPos sets the offset without clamping. Used when restoring persisted
// state before the content has been measured; call Clamp afterwards.
func (o *Offset) SetPos(pos int) {
	o.pos = pos
}

// HandleKey applies the common page scrolling keys and returns true if the
// key was one of them. Keys: j/down, k/up, ctrl+d, ctrl+u, pgdown, pgup,
// g/home, G/end.
func (o *Offset) HandleKey(key string, content, view int) bool {
	switch key {
	case "j", "down":
		o.By(1, content, view)
	case "k", "up":
		o.By(-1, content, view)
	case "ctrl+d":
		o.By(max(view/2, 1), content, view)
	case "ctrl+u":
		o.By(-max(view/2, 1), content, view)
	case "pgdown", " ":
		o.By(max(view-1, 1), content, view)
	case "pgup":
		o.By(-max(view-1, 1), content, view)
	case "g", "home":
		o.To(0, content, view)
	case "G", "end":
		o.To(Max(content, view), content, view)
	default:
		return false
	}
	return true
}

func clamp(v, maxVal int) int {
	if v < 0 {
		return 0
	}
	if v > maxVal {
		return maxVal
	}
	return v
}
