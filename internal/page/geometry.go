package page

import (
	"github.com/llehouerou/folio/internal/tracker"
	"github.com/llehouerou/folio/internal/ui/timeline"
)

// Geometry reports the page viewport and the timeline entries in page
// lines. The container is the visible slice of the page under the navbar.
type Geometry struct {
	*tracker.StaticGeometry
}

// NewGeometry creates a geometry with no viewport yet.
func NewGeometry() *Geometry {
	return &Geometry{StaticGeometry: tracker.NewStaticGeometry()}
}

// SetViewport mounts the viewport at offset with the given height. A zero
// height unmounts it.
func (g *Geometry) SetViewport(offset, height int) {
	if height <= 0 {
		g.ClearContainer()
		return
	}
	g.SetContainer(tracker.Rect{Y: float64(offset), H: float64(height)})
}

// PlaceSpans records the entries of a block starting at page line top.
func (g *Geometry) PlaceSpans(top int, spans []timeline.Span) {
	for _, s := range spans {
		g.Set(s.ID, tracker.Rect{Y: float64(top + s.Top), H: float64(s.Height)})
	}
}
