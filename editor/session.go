// Package editor turns pointer and key input into room and camera changes.
package editor

import (
	"fmt"
	"log"

	"github.com/milk9111/isoroom/camera"
	"github.com/milk9111/isoroom/iso"
	"github.com/milk9111/isoroom/render"
	"github.com/milk9111/isoroom/room"
)

// Settings are the editor behaviours read from configuration.
type Settings struct {
	EdgeThreshold      float64
	ScaleEdgeThreshold bool
	ShowGrid           bool
}

// Session is one open room with its camera and tools.
type Session struct {
	Room     *room.Room
	Camera   *camera.Camera
	Renderer *render.Renderer
	Hints    *Hints

	Mode        Mode
	Structure   *StructureTool
	Decorations *DecorationTool

	ShowGrid  bool
	Preview   bool
	ShowLayer room.Layer
	// FilterLayer limits the layer overlay to ShowLayer.
	FilterLayer bool

	hover    iso.Cell
	hasHover bool

	status string
	dirty  bool
}

func NewSession(r *room.Room, cam *camera.Camera, rd *render.Renderer, hints *Hints, cfg Settings) *Session {
	st := NewStructureTool()
	if cfg.EdgeThreshold > 0 {
		st.EdgeThreshold = cfg.EdgeThreshold
	}
	st.ScaleEdgeThreshold = cfg.ScaleEdgeThreshold
	s := &Session{
		Room:        r,
		Camera:      cam,
		Renderer:    rd,
		Hints:       hints,
		Mode:        ModeTiles,
		Structure:   st,
		Decorations: NewDecorationTool(),
		ShowGrid:    cfg.ShowGrid,
		ShowLayer:   room.LayerMain,
	}
	s.CenterCamera()
	return s
}

// SetRoom swaps in another room, dropping tool state that referred to the
// old one.
func (s *Session) SetRoom(r *room.Room) {
	s.Room = r
	s.Structure.reset()
	s.Decorations.reset()
	s.dirty = false
	s.CenterCamera()
}

func (s *Session) SetMode(m Mode) {
	if m == s.Mode {
		return
	}
	s.Structure.reset()
	if m != ModeDecorations {
		s.Decorations.reset()
	}
	s.Mode = m
	log.Printf("editor: mode %s", m)
}

// View is the camera state handed to the renderer.
func (s *Session) View() render.View {
	return render.View{Offset: s.Camera.Offset, Zoom: s.Camera.Zoom(), Viewport: s.Camera.Viewport}
}

// CenterCamera puts the middle of the room in the middle of the viewport.
func (s *Session) CenterCamera() {
	s.Camera.CenterOn(s.Room.CenterWorldCoords())
}

// Hover returns the cell under the pointer while it is over the canvas.
func (s *Session) Hover() (iso.Cell, bool) {
	return s.hover, s.hasHover
}

func (s *Session) Status() string {
	return s.status
}

func (s *Session) SetStatus(msg string) {
	s.status = msg
	log.Printf("editor: %s", msg)
}

// Dirty reports unsaved changes.
func (s *Session) Dirty() bool {
	return s.dirty
}

func (s *Session) MarkSaved() {
	s.dirty = false
}

// StructureChanged re-derives the Wall layer after the floor plan changed
// outside the tools.
func (s *Session) StructureChanged() {
	s.structureChanged()
}

func (s *Session) structureChanged() {
	s.Room.RecomputeWallLayer()
	s.touch()
}

func (s *Session) touch() {
	s.dirty = true
}

// HandlePointer routes a pointer event to the camera or the active tool.
func (s *Session) HandlePointer(ev PointerEvent) {
	s.hasHover = s.Camera.Viewport.Contains(ev.Pos)
	if s.hasHover {
		s.hover = s.Camera.Cell(ev.Pos)
	}

	switch ev.Kind {
	case PointerWheel:
		if ev.Mods.Has(ModCtrl) && s.hasHover && ev.WheelY != 0 {
			dir := 1
			if ev.WheelY < 0 {
				dir = -1
			}
			s.Camera.ZoomStep(dir, ev.Pos)
		}
		return
	case PointerDown:
		if ev.Button == ButtonMiddle {
			s.Camera.BeginPan(ev.Pos)
			return
		}
		if !s.hasHover || s.Preview {
			return
		}
	case PointerUp:
		if ev.Button == ButtonMiddle {
			s.Camera.EndPan()
			return
		}
	case PointerMove:
		if s.Camera.Panning() {
			s.Camera.DragTo(ev.Pos)
			return
		}
	}

	if s.Mode == ModeDecorations {
		s.Decorations.pointer(s, ev)
		return
	}
	s.Structure.pointer(s, ev)
}

// HandleKey applies a key press. It reports whether the key was used.
func (s *Session) HandleKey(ev KeyEvent) bool {
	if m, ok := modeForKey(ev.Key); ok {
		s.SetMode(m)
		return true
	}
	switch ev.Key {
	case KeyGrid:
		s.ShowGrid = !s.ShowGrid
		return true
	case KeyPreview:
		s.Preview = !s.Preview
		return true
	case KeyCenterAnchor:
		s.Room.CenterAnchor()
		s.touch()
		return true
	case KeyCenterCamera:
		s.CenterCamera()
		return true
	}
	if s.Mode == ModeDecorations {
		return s.Decorations.key(s, ev)
	}
	if ev.Key == KeyLayer && s.Mode == ModeLayers {
		s.Structure.Layer = nextPaintableLayer(s.Structure.Layer)
		return true
	}
	if ev.Key == KeyEscape {
		s.Structure.reset()
		return true
	}
	return false
}

func nextPaintableLayer(l room.Layer) room.Layer {
	for i, p := range room.PaintableLayers {
		if p == l {
			return room.PaintableLayers[(i+1)%len(room.PaintableLayers)]
		}
	}
	return room.PaintableLayers[0]
}

// Options are the renderer passes for the current mode.
func (s *Session) Options() render.Options {
	opts := render.Options{
		Preview:    s.Preview,
		ShowGrid:   s.ShowGrid,
		ShowAnchor: s.Mode == ModeTiles,
	}
	switch s.Mode {
	case ModeWalkable:
		opts.Overlay = render.OverlayWalkable
	case ModeLayers:
		opts.Overlay = render.OverlayLayers
		opts.LayerFilter, opts.HasLayerFilter = s.ShowLayer, s.FilterLayer
	}
	return opts
}

// Draw renders the room with the active tool's markers on top.
func (s *Session) Draw(cv render.Canvas) {
	v := s.View()
	opts := s.Options()
	s.Renderer.Draw(cv, s.Room, v, opts)
	if opts.Preview {
		return
	}

	if id, ok := s.Decorations.Selected(); ok && s.Mode == ModeDecorations {
		if d, ok := s.Room.Decoration(id); ok {
			s.Renderer.DrawSelection(cv, d, v)
		}
	}
	if !s.hasHover {
		return
	}
	switch s.Mode {
	case ModeDecorations:
		if g, ok := s.Decorations.Ghost(); ok {
			s.Renderer.DrawGhost(cv, g, v, s.Decorations.Occupied(s.Room))
		}
	case ModeWalls:
		if e, ok := s.Structure.HoverEdge(); ok {
			s.Renderer.DrawHoverEdge(cv, s.hover, e, v)
			return
		}
		s.Renderer.DrawHoverCell(cv, s.hover, v)
	default:
		s.Renderer.DrawHoverCell(cv, s.hover, v)
	}
}

// Hint is the help line for the current mode.
func (s *Session) Hint() string {
	switch s.Mode {
	case ModeLayers:
		return s.Hints.Get("hint.layers", s.Structure.Layer.String())
	default:
		return s.Hints.Get("hint." + s.Mode.String())
	}
}

// CameraHint describes the camera controls and current zoom.
func (s *Session) CameraHint() string {
	return s.Hints.Get("hint.camera", s.Camera.Zoom())
}

func cellLabel(c iso.Cell) string {
	return fmt.Sprintf("%d,%d", c.X, c.Y)
}

// HoldItem switches to decoration mode with an item picked up for placement.
func (s *Session) HoldItem(baseID, variantID string) {
	s.SetMode(ModeDecorations)
	s.Decorations.Hold(s, baseID, variantID)
}
