package editor

import (
	"errors"

	"github.com/milk9111/isoroom/iso"
	"github.com/milk9111/isoroom/room"
)

// StructureTool edits tiles, walls, walkability and layers.
type StructureTool struct {
	Shape room.Shape
	Layer room.Layer

	EdgeThreshold      float64
	ScaleEdgeThreshold bool

	drag     Button
	lastCell iso.Cell

	hoverEdge    room.Edge
	hasHoverEdge bool
}

func NewStructureTool() *StructureTool {
	return &StructureTool{
		Shape:              room.ShapeFull,
		Layer:              room.LayerMain,
		EdgeThreshold:      DefaultEdgeThreshold,
		ScaleEdgeThreshold: true,
	}
}

// HoverEdge is the wall slot under the pointer in Walls mode.
func (t *StructureTool) HoverEdge() (room.Edge, bool) {
	return t.hoverEdge, t.hasHoverEdge
}

func (t *StructureTool) pointer(s *Session, ev PointerEvent) {
	c := s.Camera.Cell(ev.Pos)
	switch ev.Kind {
	case PointerMove:
		if s.Mode == ModeWalls {
			t.updateHoverEdge(s, c, ev.Pos)
		}
		if t.drag != ButtonNone && c != t.lastCell {
			t.lastCell = c
			t.stroke(s, c, t.drag)
		}
	case PointerDown:
		t.press(s, c, ev)
	case PointerUp:
		if ev.Button == t.drag {
			t.drag = ButtonNone
		}
	}
}

func (t *StructureTool) press(s *Session, c iso.Cell, ev PointerEvent) {
	switch s.Mode {
	case ModeTiles:
		if ev.Button == ButtonLeft && ev.Mods.Has(ModShift) {
			s.Room.SetRenderAnchor(s.Camera.ToWorld(ev.Pos))
			s.touch()
			return
		}
		if ev.Button == ButtonLeft && ev.Mods.Has(ModAlt) {
			// A void cell counts as Full, so the first cycle lands on the next shape.
			shape := s.Room.Tile(c)
			if shape == room.ShapeNone {
				shape = room.ShapeFull
			}
			if err := s.Room.SetTile(c, shape.Next()); err == nil {
				s.structureChanged()
			}
			return
		}
		if ev.Button == ButtonLeft || ev.Button == ButtonRight {
			t.drag, t.lastCell = ev.Button, c
			t.stroke(s, c, ev.Button)
		}
	case ModeWalls:
		if ev.Button != ButtonLeft {
			return
		}
		t.updateHoverEdge(s, c, ev.Pos)
		if e, ok := t.HoverEdge(); ok {
			s.Room.ToggleWall(c, e)
			s.structureChanged()
		}
	case ModeWalkable:
		if ev.Button == ButtonLeft && s.Room.HasTile(c) {
			s.Room.ToggleWalkable(c)
			s.touch()
		}
	case ModeLayers:
		if ev.Button == ButtonLeft {
			t.drag, t.lastCell = ev.Button, c
			t.stroke(s, c, ev.Button)
		}
	}
}

// stroke applies one step of a drag to cell c.
func (t *StructureTool) stroke(s *Session, c iso.Cell, b Button) {
	switch s.Mode {
	case ModeTiles:
		if b == ButtonRight {
			if s.Room.RemoveTile(c) {
				s.structureChanged()
			}
			return
		}
		if s.Room.Tile(c) != t.Shape {
			if err := s.Room.SetTile(c, t.Shape); err == nil {
				s.structureChanged()
			}
		}
	case ModeLayers:
		if l, ok := s.Room.LayerAt(c); ok && l == t.Layer {
			return
		}
		switch err := s.Room.PaintLayer(c, t.Layer); {
		case err == nil:
			s.touch()
		case errors.Is(err, room.ErrNoTile):
			s.SetStatus(s.Hints.Get("status.no_tile", c.X, c.Y))
		case errors.Is(err, room.ErrLayerNotPaintable):
			s.SetStatus(s.Hints.Get("status.not_paintable", t.Layer.String()))
		}
	}
}

func (t *StructureTool) updateHoverEdge(s *Session, c iso.Cell, p iso.Point) {
	threshold := EdgeThreshold(t.EdgeThreshold, s.Camera.Zoom(), t.ScaleEdgeThreshold)
	t.hoverEdge, t.hasHoverEdge = EdgeAt(s.Room, c, p, s.View(), threshold)
}

func (t *StructureTool) reset() {
	t.drag = ButtonNone
	t.hasHoverEdge = false
}
