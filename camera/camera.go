// Package camera tracks the editor view transform: a pixel offset and a zoom
// level snapped to a fixed ladder.
package camera

import (
	"math"

	"github.com/milk9111/isoroom/iso"
)

// DefaultZoomLevels is the zoom ladder used when none is configured.
var DefaultZoomLevels = []float64{0.25, 0.5, 0.75, 1, 1.5, 2, 3, 4}

type Camera struct {
	Offset   iso.Point
	Viewport iso.Rect

	levels []float64
	index  int

	panning bool
	lastPan iso.Point
}

// New returns a camera on the ladder entry closest to 1.
func New(levels []float64, viewport iso.Rect) *Camera {
	if len(levels) == 0 {
		levels = DefaultZoomLevels
	}
	c := &Camera{
		Viewport: viewport,
		levels:   append([]float64(nil), levels...),
	}
	best := math.Inf(1)
	for i, z := range c.levels {
		if d := math.Abs(z - 1); d < best {
			best = d
			c.index = i
		}
	}
	return c
}

func (c *Camera) Zoom() float64 {
	return c.levels[c.index]
}

// ZoomLevel returns the current index into the ladder.
func (c *Camera) ZoomLevel() int {
	return c.index
}

func (c *Camera) Levels() []float64 {
	return c.levels
}

func (c *Camera) SetViewport(r iso.Rect) {
	c.Viewport = r
}

func (c *Camera) Panning() bool {
	return c.panning
}

// BeginPan starts a drag if p is inside the viewport.
func (c *Camera) BeginPan(p iso.Point) bool {
	if !c.Viewport.Contains(p) {
		return false
	}
	c.panning = true
	c.lastPan = p
	return true
}

// DragTo moves the offset by the pointer delta while panning.
func (c *Camera) DragTo(p iso.Point) {
	if !c.panning {
		return
	}
	c.Offset = c.Offset.Add(p.Sub(c.lastPan))
	c.lastPan = p
}

func (c *Camera) EndPan() {
	c.panning = false
}

// ZoomStep moves one rung up (dir > 0) or down (dir < 0) the ladder, keeping
// the world point under cursor fixed on screen. It reports whether the zoom
// changed.
func (c *Camera) ZoomStep(dir int, cursor iso.Point) bool {
	next := c.index
	switch {
	case dir > 0:
		next++
	case dir < 0:
		next--
	}
	if next < 0 {
		next = 0
	}
	if next >= len(c.levels) {
		next = len(c.levels) - 1
	}
	if next == c.index {
		return false
	}
	old := c.Zoom()
	c.index = next
	ratio := c.Zoom() / old
	c.Offset = cursor.Add(c.Offset.Sub(cursor).Scale(ratio))
	return true
}

// CenterOn positions the offset so world (at zoom 1) lands on the viewport
// centre.
func (c *Camera) CenterOn(world iso.Point) {
	c.Offset = c.Viewport.Center().Sub(world.Scale(c.Zoom()))
}

// ToWorld converts a canvas pixel to world space at zoom 1.
func (c *Camera) ToWorld(p iso.Point) iso.Point {
	return p.Sub(c.Offset).Scale(1 / c.Zoom())
}

// ToScreen converts a world point at zoom 1 to a canvas pixel.
func (c *Camera) ToScreen(world iso.Point) iso.Point {
	return world.Scale(c.Zoom()).Add(c.Offset)
}

// Cell returns the grid cell under canvas pixel p.
func (c *Camera) Cell(p iso.Point) iso.Cell {
	return iso.ScreenToGrid(p, c.Offset, c.Zoom())
}
