package room

import (
	"encoding/json"
	"reflect"
	"testing"

	"github.com/milk9111/isoroom/iso"
)

func TestBasicRoomSerialization(t *testing.T) {
	r := New("basic", "basic")
	r.SetTile(iso.Cell{X: 0, Y: 0}, ShapeFull)
	r.SetTile(iso.Cell{X: 1, Y: 0}, ShapeFull)
	r.ToggleWall(iso.Cell{X: 0, Y: 0}, EdgeNW)

	s := r.Structure()
	if !reflect.DeepEqual(s.Tiles, []string{"11"}) {
		t.Fatalf("tiles = %q, want [\"11\"]", s.Tiles)
	}
	if len(s.Walls) != 1 {
		t.Fatalf("walls = %+v, want one entry", s.Walls)
	}

	data, err := json.Marshal(s.Walls[0])
	if err != nil {
		t.Fatalf("marshal wall: %v", err)
	}
	if got := string(data); got != `{"grid_pos":[0,0],"edge":"nw"}` {
		t.Fatalf("wall json = %s", got)
	}
}

func TestStructureIncludesWallMarkersInBounds(t *testing.T) {
	r := New("basic", "basic")
	r.SetTile(iso.Cell{X: 0, Y: 0}, ShapeFull)
	r.SetTile(iso.Cell{X: 1, Y: 0}, ShapeFull)
	r.ToggleWall(iso.Cell{X: 0, Y: 0}, EdgeNW)
	r.RecomputeWallLayer()

	s := r.Structure()
	want := Structure{
		Name:       "basic",
		ID:         "basic",
		Dimensions: Dimensions{Width: 3, Depth: 1, OriginX: -1, OriginY: 0},
		Tiles:      []string{"011"},
		Walkable:   []string{"x00"},
		Layers:     []string{"xmm"},
		Walls:      []WallRecord{{GridPos: [2]int{0, 0}, Edge: EdgeNW}},
	}
	if !reflect.DeepEqual(s, want) {
		t.Fatalf("Structure() = %+v, want %+v", s, want)
	}
}

func TestSerializationRoundTrip(t *testing.T) {
	r := New("round", "round")
	r.SetTile(iso.Cell{X: 0, Y: 0}, ShapeFull)
	r.SetTile(iso.Cell{X: 1, Y: 0}, ShapeNotchTopLeft)
	r.SetTile(iso.Cell{X: 0, Y: 1}, ShapeNotchBottomRight)
	r.SetTile(iso.Cell{X: -2, Y: 3}, ShapeNotchBottomLeft)
	r.ToggleWalkable(iso.Cell{X: 0, Y: 0})
	r.ToggleWalkable(iso.Cell{X: -2, Y: 3})
	r.ToggleWall(iso.Cell{X: 1, Y: 0}, EdgeDiagSWNE)
	r.ToggleWall(iso.Cell{X: 0, Y: 0}, EdgeNW)
	r.ToggleWall(iso.Cell{X: 0, Y: 0}, EdgeNE)
	r.RecomputeWallLayer()
	r.PaintLayer(iso.Cell{X: 0, Y: 1}, LayerBackground)
	r.PaintLayer(iso.Cell{X: -2, Y: 3}, LayerForeground)
	r.SetRenderAnchor(iso.Point{X: 12.5, Y: -3})
	r.DecorationSetName = "round set"
	r.StructureID = "round"
	for i, l := range DecorationLayers {
		r.AddDecoration("item", "0", iso.Cell{X: 0, Y: 0}, i, l)
	}

	sdata, err := json.Marshal(r.Structure())
	if err != nil {
		t.Fatalf("marshal structure: %v", err)
	}
	ddata, err := json.Marshal(r.DecorationSet())
	if err != nil {
		t.Fatalf("marshal decoration set: %v", err)
	}

	var s Structure
	var ds DecorationSet
	if err := json.Unmarshal(sdata, &s); err != nil {
		t.Fatalf("unmarshal structure: %v", err)
	}
	if err := json.Unmarshal(ddata, &ds); err != nil {
		t.Fatalf("unmarshal decoration set: %v", err)
	}
	loaded, skipped, err := FromDocuments(s, ds)
	if err != nil {
		t.Fatalf("FromDocuments: %v", err)
	}
	if skipped != 0 {
		t.Fatalf("skipped %d decorations", skipped)
	}

	if !reflect.DeepEqual(loaded.tiles, r.tiles) {
		t.Fatalf("tiles = %v, want %v", loaded.tiles, r.tiles)
	}
	if !reflect.DeepEqual(loaded.walkable, r.walkable) {
		t.Fatalf("walkable = %v, want %v", loaded.walkable, r.walkable)
	}
	if !reflect.DeepEqual(loaded.layers, r.layers) {
		t.Fatalf("layers = %v, want %v", loaded.layers, r.layers)
	}
	if !reflect.DeepEqual(loaded.Walls(), r.Walls()) {
		t.Fatalf("walls = %v, want %v", loaded.Walls(), r.Walls())
	}
	if !reflect.DeepEqual(loaded.Decorations(), r.Decorations()) {
		t.Fatalf("decorations = %+v, want %+v", loaded.Decorations(), r.Decorations())
	}
	if loaded.RenderAnchor() != r.RenderAnchor() {
		t.Fatalf("anchor = %v, want %v", loaded.RenderAnchor(), r.RenderAnchor())
	}
	if loaded.DecorationSetName != "round set" || loaded.StructureID != "round" {
		t.Fatalf("decoration set identity lost: %q %q", loaded.DecorationSetName, loaded.StructureID)
	}
}

func TestFromDocumentsIgnoresUnpaintableLayerChars(t *testing.T) {
	s := Structure{
		Dimensions: Dimensions{Width: 3, Depth: 1, OriginX: 5, OriginY: 2},
		Tiles:      []string{"110"},
		Walkable:   []string{"1xx"},
		Layers:     []string{"wfb"},
	}
	r, _, err := FromDocuments(s, DecorationSet{})
	if err != nil {
		t.Fatalf("FromDocuments: %v", err)
	}
	if l, _ := r.LayerAt(iso.Cell{X: 5, Y: 2}); l != LayerMain {
		t.Fatalf("'w' should be ignored, got %v", l)
	}
	if l, _ := r.LayerAt(iso.Cell{X: 6, Y: 2}); l != LayerForeground {
		t.Fatalf("'f' should load as Foreground, got %v", l)
	}
	if _, ok := r.LayerAt(iso.Cell{X: 7, Y: 2}); ok {
		t.Fatalf("layer on a void cell should be ignored")
	}
	if !r.Walkable(iso.Cell{X: 5, Y: 2}) || r.Walkable(iso.Cell{X: 6, Y: 2}) {
		t.Fatalf("walkable flags not loaded from origin-shifted rows")
	}
}

func TestFromDocumentsSkipsCollidingDecorations(t *testing.T) {
	main := LayerMain
	ds := DecorationSet{Decorations: []DecorationRecord{
		{BaseID: "chair", VariantID: "0", GridPos: [2]int{0, 0}, Layer: &main},
		{BaseID: "lamp", VariantID: "0", GridPos: [2]int{0, 0}},
	}}
	r, skipped, err := FromDocuments(NewStructure("n", "n"), ds)
	if err != nil {
		t.Fatalf("FromDocuments: %v", err)
	}
	if skipped != 1 || r.DecorationCount() != 1 {
		t.Fatalf("skipped = %d, count = %d; want 1, 1", skipped, r.DecorationCount())
	}
}

func TestFromDocumentsRejectsBadTile(t *testing.T) {
	s := Structure{Tiles: []string{"19"}}
	if _, _, err := FromDocuments(s, DecorationSet{}); err == nil {
		t.Fatalf("expected error for shape code 9")
	}
}

func TestEmptyStructure(t *testing.T) {
	s := New("empty", "empty").Structure()
	if s.Dimensions.Width != 0 || s.Dimensions.Depth != 0 {
		t.Fatalf("dimensions = %+v, want zero", s.Dimensions)
	}
	if len(s.Tiles) != 0 || s.Walls == nil {
		t.Fatalf("empty structure rows = %q walls = %v", s.Tiles, s.Walls)
	}
}
