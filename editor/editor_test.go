package editor

import (
	"fmt"
	"image"
	"image/color"
	"math"
	"testing"

	"github.com/milk9111/isoroom/camera"
	"github.com/milk9111/isoroom/iso"
	"github.com/milk9111/isoroom/render"
	"github.com/milk9111/isoroom/room"
)

// poseResolver has art for the listed "base/variant/rotation" poses.
type poseResolver map[string]*render.Sprite

func (p poseResolver) Sprite(baseID, variantID string, rotation int) (*render.Sprite, bool) {
	s, ok := p[fmt.Sprintf("%s/%s/%d", baseID, variantID, rotation)]
	return s, ok
}

func solidSprite() *render.Sprite {
	img := image.NewNRGBA(image.Rect(0, 0, 64, 64))
	for y := 0; y < 64; y++ {
		for x := 0; x < 64; x++ {
			img.Set(x, y, color.NRGBA{180, 120, 60, 255})
		}
	}
	return render.NewSprite(img, iso.Point{X: 32, Y: 48})
}

func newTestSession(t *testing.T, poses ...string) *Session {
	t.Helper()
	res := poseResolver{}
	for _, p := range poses {
		res[p] = solidSprite()
	}
	hints, err := LoadHints("en")
	if err != nil {
		t.Fatalf("LoadHints: %v", err)
	}
	cam := camera.New(nil, iso.Rect{W: 800, H: 600})
	s := NewSession(room.New("test", "test"), cam, render.NewRenderer(res), hints, Settings{
		EdgeThreshold:      DefaultEdgeThreshold,
		ScaleEdgeThreshold: true,
	})
	s.Camera.Offset = iso.Point{X: 200, Y: 100}
	return s
}

func centerOf(s *Session, c iso.Cell) iso.Point {
	return iso.TileCenter(c, s.Camera.Offset, s.Camera.Zoom())
}

// nearEdge is a point inside cell c, a fraction t of the way from the middle
// of edge e towards the tile centre.
func nearEdge(c iso.Cell, e room.Edge, offset iso.Point, zoom, t float64) iso.Point {
	a, b := e.Segment(iso.CellCorners(c, offset, zoom))
	mid := a.Add(b).Scale(0.5)
	return mid.Add(iso.TileCenter(c, offset, zoom).Sub(mid).Scale(t))
}

func click(s *Session, b Button, p iso.Point, mods Mods) {
	s.HandlePointer(PointerEvent{Kind: PointerDown, Button: b, Pos: p, Mods: mods})
	s.HandlePointer(PointerEvent{Kind: PointerUp, Button: b, Pos: p, Mods: mods})
}

func TestEdgeAtThresholdAtZoomExtremes(t *testing.T) {
	cases := []struct {
		name   string
		zoom   float64
		scaled bool
		t      float64
		want   bool
	}{
		{name: "max zoom scaled", zoom: 4, scaled: true, t: 0.5, want: true},
		{name: "max zoom fixed", zoom: 4, scaled: false, t: 0.5, want: false},
		{name: "min zoom scaled", zoom: 0.25, scaled: true, t: 0.1, want: true},
		{name: "min zoom fixed", zoom: 0.25, scaled: false, t: 0.1, want: true},
	}
	r := room.New("t", "t")
	r.SetTile(iso.Cell{}, room.ShapeFull)
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			v := render.View{Zoom: tc.zoom}
			p := nearEdge(iso.Cell{}, room.EdgeNE, v.Offset, tc.zoom, tc.t)
			threshold := EdgeThreshold(DefaultEdgeThreshold, tc.zoom, tc.scaled)
			e, ok := EdgeAt(r, iso.Cell{}, p, v, threshold)
			if ok != tc.want {
				t.Fatalf("EdgeAt(...) ok = %v, want %v", ok, tc.want)
			}
			if ok && e != room.EdgeNE {
				t.Fatalf("EdgeAt(...) = %s, want ne", e)
			}
		})
	}
}

func TestEdgeAtSkipsUnavailableEdges(t *testing.T) {
	v := render.View{Zoom: 1}

	r := room.New("t", "t")
	r.SetTile(iso.Cell{}, room.ShapeFull)
	r.SetTile(iso.Cell{X: 0, Y: -1}, room.ShapeFull)
	p := nearEdge(iso.Cell{}, room.EdgeNE, v.Offset, 1, 0.05)
	if e, ok := EdgeAt(r, iso.Cell{}, p, v, 5); ok && e == room.EdgeNE {
		t.Fatalf("EdgeAt picked ne although a tile sits behind it")
	}

	notch := room.New("t", "t")
	notch.SetTile(iso.Cell{}, room.ShapeNotchTopLeft)
	p = nearEdge(iso.Cell{}, room.EdgeNW, v.Offset, 1, 0.05)
	if e, ok := EdgeAt(notch, iso.Cell{}, p, v, DefaultEdgeThreshold); ok && e == room.EdgeNW {
		t.Fatalf("EdgeAt picked nw on a shape without that edge")
	}

	if _, ok := EdgeAt(notch, iso.Cell{X: 3, Y: 3}, p, v, DefaultEdgeThreshold); ok {
		t.Fatalf("EdgeAt found an edge on an empty cell")
	}
}

func TestNextRotation(t *testing.T) {
	cases := []struct {
		art     []int
		current int
		want    int
	}{
		{art: []int{0, 2}, current: 0, want: 2},
		{art: []int{0, 2}, current: 2, want: 0},
		{art: []int{0, 1, 2, 3}, current: 3, want: 0},
		{art: []int{3}, current: 3, want: 3},
		{art: nil, current: 1, want: 1},
	}
	for _, tc := range cases {
		has := func(rot int) bool {
			for _, a := range tc.art {
				if a == rot {
					return true
				}
			}
			return false
		}
		if got := NextRotation(tc.current, has); got != tc.want {
			t.Errorf("NextRotation(%d) with art %v = %d, want %d", tc.current, tc.art, got, tc.want)
		}
	}
}

func TestTilesPaintAndErase(t *testing.T) {
	s := newTestSession(t)

	s.HandlePointer(PointerEvent{Kind: PointerDown, Button: ButtonLeft, Pos: centerOf(s, iso.Cell{})})
	s.HandlePointer(PointerEvent{Kind: PointerMove, Pos: centerOf(s, iso.Cell{X: 1})})
	s.HandlePointer(PointerEvent{Kind: PointerMove, Pos: centerOf(s, iso.Cell{X: 2})})
	s.HandlePointer(PointerEvent{Kind: PointerUp, Button: ButtonLeft, Pos: centerOf(s, iso.Cell{X: 2})})
	if got := s.Room.TileCount(); got != 3 {
		t.Fatalf("TileCount() = %d after drag paint, want 3", got)
	}
	if !s.Dirty() {
		t.Fatalf("session not dirty after painting")
	}

	// Moving after release must not paint.
	s.HandlePointer(PointerEvent{Kind: PointerMove, Pos: centerOf(s, iso.Cell{X: 3})})
	if s.Room.HasTile(iso.Cell{X: 3}) {
		t.Fatalf("tile painted without a held button")
	}

	s.HandlePointer(PointerEvent{Kind: PointerDown, Button: ButtonRight, Pos: centerOf(s, iso.Cell{X: 1})})
	s.HandlePointer(PointerEvent{Kind: PointerMove, Pos: centerOf(s, iso.Cell{X: 2})})
	s.HandlePointer(PointerEvent{Kind: PointerUp, Button: ButtonRight, Pos: centerOf(s, iso.Cell{X: 2})})
	if got := s.Room.TileCount(); got != 1 || !s.Room.HasTile(iso.Cell{}) {
		t.Fatalf("TileCount() = %d after drag erase, want only (0,0)", got)
	}
}

func TestTilesAltCyclesShapeAndShiftSetsAnchor(t *testing.T) {
	s := newTestSession(t)
	s.Room.SetTile(iso.Cell{}, room.ShapeFull)

	click(s, ButtonLeft, centerOf(s, iso.Cell{}), ModAlt)
	if got := s.Room.Tile(iso.Cell{}); got != room.ShapeFull.Next() {
		t.Fatalf("Tile after Alt+click = %s, want %s", got, room.ShapeFull.Next())
	}
	click(s, ButtonLeft, centerOf(s, iso.Cell{X: 5}), ModAlt)
	if got := s.Room.Tile(iso.Cell{X: 5}); got != room.ShapeFull.Next() {
		t.Fatalf("Alt+click on void = %s, want %s", got, room.ShapeFull.Next())
	}
	s.Room.RemoveTile(iso.Cell{X: 5})

	p := iso.Point{X: 260, Y: 140}
	click(s, ButtonLeft, p, ModShift)
	want := s.Camera.ToWorld(p)
	if got := s.Room.RenderAnchor(); got != want {
		t.Fatalf("RenderAnchor() = %v, want %v", got, want)
	}
	if s.Room.TileCount() != 1 {
		t.Fatalf("Shift+click painted a tile")
	}
}

func TestAltCycleDropsWallsOffTheNewShape(t *testing.T) {
	s := newTestSession(t)
	c := iso.Cell{}
	s.Room.SetTile(c, room.ShapeFull)
	s.Room.ToggleWall(c, room.EdgeNW)
	s.Room.ToggleWall(c, room.EdgeNE)
	s.StructureChanged()

	click(s, ButtonLeft, centerOf(s, c), ModAlt)
	if got := s.Room.Tile(c); got != room.ShapeNotchTopLeft {
		t.Fatalf("Tile after Alt+click = %s, want %s", got, room.ShapeNotchTopLeft)
	}
	if s.Room.HasWall(c, room.EdgeNW) {
		t.Fatalf("NW wall kept on a shape without that edge")
	}
	if !s.Room.HasWall(c, room.EdgeNE) {
		t.Fatalf("NE wall dropped although the shape still has it")
	}
	if _, ok := s.Room.LayerAt(iso.Cell{X: -1}); ok {
		t.Fatalf("Wall layer marker behind the dropped NW wall survived")
	}
}

func TestWallsModeTogglesAndDerivesWallLayer(t *testing.T) {
	s := newTestSession(t)
	s.Room.SetTile(iso.Cell{}, room.ShapeFull)
	s.Room.SetTile(iso.Cell{X: 1}, room.ShapeFull)
	s.HandleKey(KeyEvent{Key: KeyModeWalls})

	p := nearEdge(iso.Cell{}, room.EdgeNW, s.Camera.Offset, s.Camera.Zoom(), 0.1)
	s.HandlePointer(PointerEvent{Kind: PointerMove, Pos: p})
	if e, ok := s.Structure.HoverEdge(); !ok || e != room.EdgeNW {
		t.Fatalf("HoverEdge() = %v, %v; want nw", e, ok)
	}
	click(s, ButtonLeft, p, 0)
	if !s.Room.HasWall(iso.Cell{}, room.EdgeNW) {
		t.Fatalf("click near nw edge did not add a wall")
	}
	if l, ok := s.Room.LayerAt(iso.Cell{X: -1}); !ok || l != room.LayerWall {
		t.Fatalf("LayerAt(-1,0) = %v, %v; want Wall", l, ok)
	}

	click(s, ButtonLeft, p, 0)
	if s.Room.HasWall(iso.Cell{}, room.EdgeNW) {
		t.Fatalf("second click did not remove the wall")
	}
	if _, ok := s.Room.LayerAt(iso.Cell{X: -1}); ok {
		t.Fatalf("Wall layer left behind after removing the wall")
	}
}

func TestWalkableAndLayersModes(t *testing.T) {
	s := newTestSession(t)
	s.Room.SetTile(iso.Cell{}, room.ShapeFull)

	s.SetMode(ModeWalkable)
	click(s, ButtonLeft, centerOf(s, iso.Cell{}), 0)
	if !s.Room.Walkable(iso.Cell{}) {
		t.Fatalf("click did not make the tile walkable")
	}
	click(s, ButtonLeft, centerOf(s, iso.Cell{X: 4}), 0)
	if s.Room.Walkable(iso.Cell{X: 4}) {
		t.Fatalf("void cell became walkable")
	}

	s.SetMode(ModeLayers)
	s.HandleKey(KeyEvent{Key: KeyLayer})
	if s.Structure.Layer != room.LayerForeground {
		t.Fatalf("layer after cycling = %s, want Foreground", s.Structure.Layer)
	}
	click(s, ButtonLeft, centerOf(s, iso.Cell{}), 0)
	if l, _ := s.Room.LayerAt(iso.Cell{}); l != room.LayerForeground {
		t.Fatalf("LayerAt(0,0) = %s, want Foreground", l)
	}

	click(s, ButtonLeft, centerOf(s, iso.Cell{X: 4}), 0)
	if want := s.Hints.Get("status.no_tile", 4, 0); s.Status() != want {
		t.Fatalf("Status() = %q, want %q", s.Status(), want)
	}

	s.Structure.Layer = room.LayerFloor
	click(s, ButtonLeft, centerOf(s, iso.Cell{}), 0)
	if want := s.Hints.Get("status.not_paintable", "Floor"); s.Status() != want {
		t.Fatalf("Status() = %q, want %q", s.Status(), want)
	}
}

func TestDecorationPlacementAndSelection(t *testing.T) {
	s := newTestSession(t, "chair/0/1", "chair/0/3")
	s.Room.SetTile(iso.Cell{}, room.ShapeFull)
	at := centerOf(s, iso.Cell{})

	s.HoldItem("chair", "0")
	if s.Mode != ModeDecorations {
		t.Fatalf("Mode = %s, want decorations", s.Mode)
	}
	g, ok := s.Decorations.Ghost()
	if !ok || g.Rotation != 1 {
		t.Fatalf("Ghost() = %+v, %v; want rotation 1", g, ok)
	}

	click(s, ButtonLeft, at, 0)
	if s.Room.DecorationCount() != 1 {
		t.Fatalf("DecorationCount() = %d, want 1", s.Room.DecorationCount())
	}
	click(s, ButtonLeft, at, 0)
	if s.Room.DecorationCount() != 1 {
		t.Fatalf("occupied placement was accepted")
	}
	if want := s.Hints.Get("status.occupied", "Main", "0,0"); s.Status() != want {
		t.Fatalf("Status() = %q, want %q", s.Status(), want)
	}
	if !s.Decorations.Occupied(s.Room) {
		t.Fatalf("ghost over an occupied cell not reported")
	}

	s.HandleKey(KeyEvent{Key: KeyLayer})
	s.HandleKey(KeyEvent{Key: KeyRotate})
	click(s, ButtonLeft, at, 0)
	front, ok := s.Room.DecorationAt(iso.Cell{}, room.LayerForeground)
	if !ok || front.Rotation != 3 {
		t.Fatalf("DecorationAt(Foreground) = %+v, %v; want rotation 3", front, ok)
	}

	s.HandleKey(KeyEvent{Key: KeyEscape})
	if _, ok := s.Decorations.Ghost(); ok {
		t.Fatalf("Escape kept the ghost")
	}
	click(s, ButtonLeft, at, 0)
	id, ok := s.Decorations.Selected()
	if !ok || id != front.ID {
		t.Fatalf("Selected() = %d, %v; want front-most %d", id, ok, front.ID)
	}

	s.HandleKey(KeyEvent{Key: KeyRotate})
	if d, _ := s.Room.Decoration(id); d.Rotation != 1 {
		t.Fatalf("rotation after R = %d, want 1", d.Rotation)
	}

	s.HandleKey(KeyEvent{Key: KeyDelete})
	if s.Room.DecorationCount() != 1 {
		t.Fatalf("Delete left %d decorations, want 1", s.Room.DecorationCount())
	}
	if _, ok := s.Decorations.Selected(); ok {
		t.Fatalf("selection survived Delete")
	}
}

func TestDecorationRightClickRemovesActiveLayer(t *testing.T) {
	s := newTestSession(t, "rug/0/0")
	s.SetMode(ModeDecorations)
	s.Room.AddDecoration("rug", "0", iso.Cell{}, 0, room.LayerMain)
	s.Room.AddDecoration("rug", "0", iso.Cell{}, 0, room.LayerForeground)

	click(s, ButtonRight, centerOf(s, iso.Cell{}), 0)
	if s.Room.IsOccupied(iso.Cell{}, room.LayerMain) {
		t.Fatalf("right click did not remove the Main decoration")
	}
	if !s.Room.IsOccupied(iso.Cell{}, room.LayerForeground) {
		t.Fatalf("right click removed a decoration on another layer")
	}
}

func TestHoldSameItemDropsGhost(t *testing.T) {
	s := newTestSession(t, "lamp/a/0")
	s.HoldItem("lamp", "a")
	s.HoldItem("lamp", "a")
	if _, ok := s.Decorations.Ghost(); ok {
		t.Fatalf("holding the same item twice kept the ghost")
	}
}

func TestCameraInput(t *testing.T) {
	s := newTestSession(t)
	cursor := iso.Point{X: 100, Y: 50}
	before := s.Camera.ToWorld(cursor)

	s.HandlePointer(PointerEvent{Kind: PointerWheel, Pos: cursor, WheelY: 1})
	if s.Camera.Zoom() != 1 {
		t.Fatalf("wheel without modifier zoomed to %v", s.Camera.Zoom())
	}
	s.HandlePointer(PointerEvent{Kind: PointerWheel, Pos: cursor, WheelY: 1, Mods: ModCtrl})
	if s.Camera.Zoom() != 1.5 {
		t.Fatalf("Zoom() = %v, want 1.5", s.Camera.Zoom())
	}
	after := s.Camera.ToScreen(before)
	if math.Abs(after.X-cursor.X) > 1e-9 || math.Abs(after.Y-cursor.Y) > 1e-9 {
		t.Fatalf("world point moved to %v, want %v", after, cursor)
	}

	s.HandlePointer(PointerEvent{Kind: PointerWheel, Pos: iso.Point{X: 900, Y: 50}, WheelY: 1, Mods: ModCtrl})
	if s.Camera.Zoom() != 1.5 {
		t.Fatalf("wheel outside the viewport zoomed to %v", s.Camera.Zoom())
	}

	start := s.Camera.Offset
	s.HandlePointer(PointerEvent{Kind: PointerDown, Button: ButtonMiddle, Pos: iso.Point{X: 10, Y: 10}})
	s.HandlePointer(PointerEvent{Kind: PointerMove, Pos: iso.Point{X: 40, Y: 30}})
	s.HandlePointer(PointerEvent{Kind: PointerUp, Button: ButtonMiddle, Pos: iso.Point{X: 40, Y: 30}})
	if got, want := s.Camera.Offset, start.Add(iso.Point{X: 30, Y: 20}); got != want {
		t.Fatalf("Offset after pan = %v, want %v", got, want)
	}
	if s.Room.TileCount() != 0 {
		t.Fatalf("panning painted tiles")
	}
}

func TestPreviewIgnoresEdits(t *testing.T) {
	s := newTestSession(t)
	s.HandleKey(KeyEvent{Key: KeyPreview})
	click(s, ButtonLeft, centerOf(s, iso.Cell{}), 0)
	if s.Room.TileCount() != 0 {
		t.Fatalf("click in preview painted a tile")
	}
	if !s.Options().Preview {
		t.Fatalf("Options().Preview = false")
	}
}

func TestDrawShowsHoverEdge(t *testing.T) {
	s := newTestSession(t)
	s.Room.SetTile(iso.Cell{}, room.ShapeFull)
	s.SetMode(ModeWalls)
	s.HandlePointer(PointerEvent{Kind: PointerMove, Pos: nearEdge(iso.Cell{}, room.EdgeSE, s.Camera.Offset, 1, 0.1)})

	rec := &render.Recorder{W: 800, H: 600}
	s.Draw(rec)
	if got := rec.Count("line", s.Renderer.Palette.Hover); got != 1 {
		t.Fatalf("hover edge lines = %d, want 1", got)
	}
	if got := rec.Count("stroke_polygon", s.Renderer.Palette.Hover); got != 0 {
		t.Fatalf("hover cell outlines = %d, want 0 while an edge is hovered", got)
	}
}

func TestHints(t *testing.T) {
	h, err := LoadHints("es")
	if err != nil {
		t.Fatalf("LoadHints(es): %v", err)
	}
	if h.Language != "es" {
		t.Fatalf("Language = %s, want es", h.Language)
	}
	fallback, err := LoadHints("xx")
	if err != nil {
		t.Fatalf("LoadHints(xx): %v", err)
	}
	if fallback.Language != "en" {
		t.Fatalf("fallback Language = %s, want en", fallback.Language)
	}
	if got := fallback.ModeName(ModeWalls); got != "Walls" {
		t.Fatalf("ModeName(walls) = %q, want Walls", got)
	}
	var none *Hints
	if got := none.Get("mode.tiles"); got != "mode.tiles" {
		t.Fatalf("nil Hints Get = %q", got)
	}
}
