package tracker

import "sync"

// Axis selects the scroll direction measurements are taken along.
type Axis int

const (
	Horizontal Axis = iota
	Vertical
)

func (a Axis) String() string {
	if a == Vertical {
		return "vertical"
	}
	return "horizontal"
}

// Rect is a rectangle in layout space.
type Rect struct {
	X, Y, W, H float64
}

func (r Rect) Left() float64   { return r.X }
func (r Rect) Right() float64  { return r.X + r.W }
func (r Rect) Top() float64    { return r.Y }
func (r Rect) Bottom() float64 { return r.Y + r.H }

// Span returns the extent of r along the axis.
func (r Rect) Span(a Axis) float64 {
	if a == Vertical {
		return r.H
	}
	return r.W
}

// Center returns the midpoint of r along the axis.
func (r Rect) Center(a Axis) float64 {
	if a == Vertical {
		return r.Y + r.H/2
	}
	return r.X + r.W/2
}

// Geometry reports layout rectangles. The boolean results report whether the
// container is mounted and whether an item has been laid out yet.
type Geometry interface {
	Container() (Rect, bool)
	BoundsOf(id string) (Rect, bool)
}

// StaticGeometry is an in-memory Geometry. It is safe for concurrent use.
type StaticGeometry struct {
	mu        sync.RWMutex
	container *Rect
	bounds    map[string]Rect
}

// NewStaticGeometry creates an empty provider with no container.
func NewStaticGeometry() *StaticGeometry {
	return &StaticGeometry{bounds: make(map[string]Rect)}
}

// SetContainer mounts the container at r.
func (g *StaticGeometry) SetContainer(r Rect) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.container = &r
}

// ClearContainer unmounts the container.
func (g *StaticGeometry) ClearContainer() {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.container = nil
}

// Set records the bounds of an item.
func (g *StaticGeometry) Set(id string, r Rect) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.bounds[id] = r
}

// Remove forgets an item's bounds.
func (g *StaticGeometry) Remove(id string) {
	g.mu.Lock()
	defer g.mu.Unlock()
	delete(g.bounds, id)
}

// Container implements Geometry.
func (g *StaticGeometry) Container() (Rect, bool) {
	g.mu.RLock()
	defer g.mu.RUnlock()
	if g.container == nil {
		return Rect{}, false
	}
	return *g.container, true
}

// BoundsOf implements Geometry.
func (g *StaticGeometry) BoundsOf(id string) (Rect, bool) {
	g.mu.RLock()
	defer g.mu.RUnlock()
	r, ok := g.bounds[id]
	return r, ok
}
