package editor

import (
	"math"

	"github.com/milk9111/isoroom/iso"
	"github.com/milk9111/isoroom/render"
	"github.com/milk9111/isoroom/room"
)

// DefaultEdgeThreshold is the wall pick distance in pixels at zoom 1.
const DefaultEdgeThreshold = 15

// EdgeThreshold returns the pick distance for the current zoom.
func EdgeThreshold(base, zoom float64, scaled bool) float64 {
	if scaled {
		return base * zoom
	}
	return base
}

// EdgeAt returns the wall slot of cell c nearest to p, if one lies within
// threshold pixels. Only edges the tile's shape exposes are considered, and a
// cardinal edge facing another tile only when a wall already sits on it.
func EdgeAt(r *room.Room, c iso.Cell, p iso.Point, v render.View, threshold float64) (room.Edge, bool) {
	shape := r.Tile(c)
	if shape == room.ShapeNone {
		return 0, false
	}
	corners := iso.CellCorners(c, v.Offset, v.Zoom)
	best := math.Inf(1)
	var found room.Edge
	ok := false
	for _, e := range shape.Edges() {
		if !r.CanPlaceWall(c, e) && !r.HasWall(c, e) {
			continue
		}
		a, b := e.Segment(corners)
		if d := iso.SegmentDistance(p, a, b); d <= threshold && d < best {
			best, found, ok = d, e, true
		}
	}
	return found, ok
}
