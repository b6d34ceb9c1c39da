package editor

import (
	"github.com/milk9111/isoroom/iso"
	"github.com/milk9111/isoroom/render"
	"github.com/milk9111/isoroom/room"
)

// DecorationTool places, selects, rotates and removes decorations. While it
// holds a ghost, clicks place; otherwise clicks select.
type DecorationTool struct {
	// Layer is the band new decorations go to and right-click removes from.
	Layer room.Layer

	ghost   render.Ghost
	holding bool

	selected    room.DecorationID
	hasSelected bool
}

func NewDecorationTool() *DecorationTool {
	return &DecorationTool{Layer: room.LayerMain}
}

// Hold picks up an item for placement, starting on its first rotation with
// art. Holding the item already held drops it.
func (t *DecorationTool) Hold(s *Session, baseID, variantID string) {
	if t.holding && t.ghost.BaseID == baseID && t.ghost.VariantID == variantID {
		t.Drop()
		return
	}
	t.ghost = render.Ghost{
		BaseID:    baseID,
		VariantID: variantID,
		Cell:      t.ghost.Cell,
		Layer:     t.Layer,
	}
	if !s.Renderer.HasArt(baseID, variantID, 0) {
		t.ghost.Rotation = NextRotation(0, func(rot int) bool {
			return s.Renderer.HasArt(baseID, variantID, rot)
		})
	}
	t.holding = true
	t.hasSelected = false
}

// SetLayer changes the active layer for the ghost and for right-click
// removal.
func (t *DecorationTool) SetLayer(l room.Layer) {
	t.Layer = l
	t.ghost.Layer = l
}

func (t *DecorationTool) Drop() {
	t.holding = false
}

// Ghost returns the held decoration, if any.
func (t *DecorationTool) Ghost() (render.Ghost, bool) {
	return t.ghost, t.holding
}

func (t *DecorationTool) Selected() (room.DecorationID, bool) {
	return t.selected, t.hasSelected
}

// NextRotation returns the first rotation after current for which hasArt
// holds, trying all four. It returns current when none has art.
func NextRotation(current int, hasArt func(int) bool) int {
	for i := 1; i <= 4; i++ {
		rot := room.NormalizeRotation(current + i)
		if hasArt(rot) {
			return rot
		}
	}
	return room.NormalizeRotation(current)
}

func (t *DecorationTool) pointer(s *Session, ev PointerEvent) {
	c := s.Camera.Cell(ev.Pos)
	switch ev.Kind {
	case PointerMove:
		t.ghost.Cell = c
	case PointerDown:
		t.ghost.Cell = c
		switch ev.Button {
		case ButtonLeft:
			if t.holding {
				t.place(s, c)
				return
			}
			t.selected, t.hasSelected = s.Renderer.PickDecorationAt(s.Room, ev.Pos, s.View())
		case ButtonRight:
			if s.Room.RemoveDecorationAt(c, t.Layer) {
				t.dropStaleSelection(s)
				s.touch()
			}
		}
	}
}

func (t *DecorationTool) place(s *Session, c iso.Cell) {
	if _, ok := s.Room.AddDecoration(t.ghost.BaseID, t.ghost.VariantID, c, t.ghost.Rotation, t.ghost.Layer); !ok {
		s.SetStatus(s.Hints.Get("status.occupied", t.ghost.Layer.String(), cellLabel(c)))
		return
	}
	s.touch()
}

// Occupied reports whether the ghost's target is taken.
func (t *DecorationTool) Occupied(r *room.Room) bool {
	return t.holding && r.IsOccupied(t.ghost.Cell, t.ghost.Layer)
}

func (t *DecorationTool) key(s *Session, ev KeyEvent) bool {
	switch ev.Key {
	case KeyDelete:
		if t.hasSelected && s.Room.RemoveDecoration(t.selected) {
			t.hasSelected = false
			s.touch()
		}
	case KeyRotate:
		t.rotate(s)
	case KeyLayer:
		t.SetLayer(t.Layer.NextDecorationLayer())
	case KeyEscape:
		t.Drop()
		t.hasSelected = false
	default:
		return false
	}
	return true
}

func (t *DecorationTool) rotate(s *Session) {
	if t.holding {
		g := t.ghost
		t.ghost.Rotation = NextRotation(g.Rotation, func(rot int) bool {
			return s.Renderer.HasArt(g.BaseID, g.VariantID, rot)
		})
		return
	}
	if !t.hasSelected {
		return
	}
	d, ok := s.Room.Decoration(t.selected)
	if !ok {
		t.hasSelected = false
		return
	}
	next := NextRotation(d.Rotation, func(rot int) bool {
		return s.Renderer.HasArt(d.BaseID, d.VariantID, rot)
	})
	if next != d.Rotation {
		s.Room.SetDecorationRotation(d.ID, next)
		s.touch()
	}
}

func (t *DecorationTool) dropStaleSelection(s *Session) {
	if t.hasSelected {
		if _, ok := s.Room.Decoration(t.selected); !ok {
			t.hasSelected = false
		}
	}
}

func (t *DecorationTool) reset() {
	t.Drop()
	t.hasSelected = false
}
