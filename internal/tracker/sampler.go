package tracker

import "math"

// DefaultThreshold is the visible fraction an item needs to qualify.
const DefaultThreshold = 0.5

// Sample is the measurement of one laid-out item.
type Sample struct {
	Index    int
	ID       string
	Distance float64
	Ratio    float64
}

// Distance returns how far the item's center is from the container's center
// along the axis.
func Distance(container, item Rect, axis Axis) float64 {
	return math.Abs(container.Center(axis) - item.Center(axis))
}

// VisibleRatio returns the fraction of the item's height inside the viewport.
// Items with no height are never visible.
func VisibleRatio(viewport, item Rect) float64 {
	if item.H <= 0 {
		return 0
	}
	top := math.Max(viewport.Top(), item.Top())
	bottom := math.Min(viewport.Bottom(), item.Bottom())
	if bottom <= top {
		return 0
	}
	return (bottom - top) / item.H
}

// SampleAll measures every item that has bounds. Items without bounds are
// omitted; a missing container yields no samples.
func SampleAll(geo Geometry, reg *Registry, axis Axis) []Sample {
	if geo == nil {
		return nil
	}
	container, ok := geo.Container()
	if !ok {
		return nil
	}
	samples := make([]Sample, 0, reg.Len())
	for _, it := range reg.Items() {
		bounds, ok := geo.BoundsOf(it.ID)
		if !ok {
			continue
		}
		samples = append(samples, Sample{
			Index:    it.Index,
			ID:       it.ID,
			Distance: Distance(container, bounds, axis),
			Ratio:    VisibleRatio(container, bounds),
		})
	}
	return samples
}

// Nearest returns the index of the sample with the smallest distance.
// Equal distances resolve to the lowest index. Any non-empty input
// yields a selection, even when no distance is finite.
func Nearest(samples []Sample) (int, bool) {
	if len(samples) == 0 {
		return -1, false
	}
	best := samples[0]
	for _, s := range samples[1:] {
		switch {
		case math.IsNaN(s.Distance):
		case math.IsNaN(best.Distance), s.Distance < best.Distance:
			best = s
		case s.Distance == best.Distance && s.Index < best.Index:
			best = s
		}
	}
	return best.Index, true
}

// Progress maps the current index onto [0, 1] for progress indicators.
// A sequence of one item (or none) has no progress.
func Progress(current, n int) float64 {
	if n <= 1 {
		return 0
	}
	current = max(0, min(current, n-1))
	return float64(current) / float64(n-1)
}
