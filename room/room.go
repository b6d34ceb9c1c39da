// Package room holds the editable state of one isometric room: floor tiles,
// walls, walkability, render layers and placed decorations.
package room

import (
	"errors"
	"sort"

	"github.com/milk9111/isoroom/iso"
	"github.com/zyedidia/generic/mapset"
)

var (
	ErrNoTile            = errors.New("room: no tile at cell")
	ErrLayerNotPaintable = errors.New("room: layer cannot be painted")
	ErrInvalidShape      = errors.New("room: invalid shape")
)

// Wall is a wall segment on one edge of a cell.
type Wall struct {
	Cell iso.Cell
	Edge Edge
}

// Room is the grid store. All mutators keep the tile, wall, walkable and
// layer maps consistent with each other.
type Room struct {
	Name string
	ID   string

	// DecorationSetName and StructureID identify the decoration document.
	DecorationSetName string
	StructureID       string

	tiles    map[iso.Cell]Shape
	walls    mapset.Set[Wall]
	walkable map[iso.Cell]bool
	layers   map[iso.Cell]Layer

	decorations []Decoration
	occupied    map[iso.Cell]mapset.Set[Layer]
	nextID      DecorationID

	renderAnchor iso.Point
}

// New returns an empty room.
func New(name, id string) *Room {
	return &Room{
		Name:     name,
		ID:       id,
		tiles:    make(map[iso.Cell]Shape),
		walls:    mapset.New[Wall](),
		walkable: make(map[iso.Cell]bool),
		layers:   make(map[iso.Cell]Layer),
		occupied: make(map[iso.Cell]mapset.Set[Layer]),
		nextID:   1,
	}
}

// Tile returns the shape at c, or ShapeNone.
func (r *Room) Tile(c iso.Cell) Shape {
	return r.tiles[c]
}

func (r *Room) HasTile(c iso.Cell) bool {
	_, ok := r.tiles[c]
	return ok
}

func (r *Room) TileCount() int {
	return len(r.tiles)
}

// Tiles returns every tiled cell in back-to-front order.
func (r *Room) Tiles() []iso.Cell {
	cells := make([]iso.Cell, 0, len(r.tiles))
	for c := range r.tiles {
		cells = append(cells, c)
	}
	sortCellsByDepth(cells)
	return cells
}

// SetTile places or reshapes a tile. A new tile starts non-walkable on the
// default layer. Reshaping drops walls on edges the new shape does not have;
// the Wall layer is left for RecomputeWallLayer.
func (r *Room) SetTile(c iso.Cell, s Shape) error {
	if !s.Valid() {
		return ErrInvalidShape
	}
	r.tiles[c] = s
	for _, e := range Edges {
		if !s.HasEdge(e) {
			r.walls.Remove(Wall{Cell: c, Edge: e})
		}
	}
	if _, ok := r.walkable[c]; !ok {
		r.walkable[c] = false
	}
	if _, ok := r.layers[c]; !ok {
		r.layers[c] = DefaultLayer
	}
	return nil
}

// RemoveTile clears the tile and everything attached to the cell. Like
// ToggleWall it leaves the Wall layer for RecomputeWallLayer.
func (r *Room) RemoveTile(c iso.Cell) bool {
	if _, ok := r.tiles[c]; !ok {
		return false
	}
	delete(r.tiles, c)
	for _, e := range Edges {
		r.walls.Remove(Wall{Cell: c, Edge: e})
	}
	delete(r.walkable, c)
	delete(r.layers, c)
	return true
}

// CanPlaceWall reports whether a wall may exist on edge e of cell c: the
// shape must expose the edge and a cardinal edge must not face another tile.
func (r *Room) CanPlaceWall(c iso.Cell, e Edge) bool {
	s, ok := r.tiles[c]
	if !ok || !s.HasEdge(e) {
		return false
	}
	if n, ok := e.Neighbor(c); ok && r.HasTile(n) {
		return false
	}
	return true
}

func (r *Room) HasWall(c iso.Cell, e Edge) bool {
	return r.walls.Has(Wall{Cell: c, Edge: e})
}

// ToggleWall adds or removes a wall and returns whether it is now present.
// Adding a wall the cell cannot hold is refused. The Wall layer is stale
// until RecomputeWallLayer runs.
func (r *Room) ToggleWall(c iso.Cell, e Edge) bool {
	w := Wall{Cell: c, Edge: e}
	if r.walls.Has(w) {
		r.walls.Remove(w)
		return false
	}
	if !r.CanPlaceWall(c, e) {
		return false
	}
	r.walls.Put(w)
	return true
}

// Walls returns every wall sorted by cell then edge name.
func (r *Room) Walls() []Wall {
	walls := make([]Wall, 0, r.walls.Size())
	r.walls.Each(func(w Wall) {
		walls = append(walls, w)
	})
	sort.Slice(walls, func(i, j int) bool {
		a, b := walls[i], walls[j]
		if a.Cell.X != b.Cell.X {
			return a.Cell.X < b.Cell.X
		}
		if a.Cell.Y != b.Cell.Y {
			return a.Cell.Y < b.Cell.Y
		}
		return a.Edge.String() < b.Edge.String()
	})
	return walls
}

func (r *Room) Walkable(c iso.Cell) bool {
	return r.walkable[c]
}

// ToggleWalkable flips walkability for a tiled cell and returns the new
// value. Cells without a tile are left alone.
func (r *Room) ToggleWalkable(c iso.Cell) bool {
	if !r.HasTile(c) {
		return false
	}
	r.walkable[c] = !r.walkable[c]
	return r.walkable[c]
}

// SetWalkable sets walkability for a tiled cell.
func (r *Room) SetWalkable(c iso.Cell, v bool) bool {
	if !r.HasTile(c) {
		return false
	}
	r.walkable[c] = v
	return true
}

// LayerAt returns the layer assigned to c, if any.
func (r *Room) LayerAt(c iso.Cell) (Layer, bool) {
	l, ok := r.layers[c]
	return l, ok
}

// LayerCells returns every cell with a layer entry in back-to-front order.
// Wall entries may sit on cells without a tile.
func (r *Room) LayerCells() []iso.Cell {
	cells := make([]iso.Cell, 0, len(r.layers))
	for c := range r.layers {
		cells = append(cells, c)
	}
	sortCellsByDepth(cells)
	return cells
}

// PaintLayer assigns a layer to c. Wall may be painted anywhere, Floor never,
// and the other layers only on tiles.
func (r *Room) PaintLayer(c iso.Cell, l Layer) error {
	switch {
	case l == LayerWall:
		r.layers[c] = l
		return nil
	case !l.Paintable():
		return ErrLayerNotPaintable
	case !r.HasTile(c):
		return ErrNoTile
	}
	r.layers[c] = l
	return nil
}

// RecomputeWallLayer re-derives the Wall layer from NE and NW walls. The cell
// behind each such wall becomes Wall, overriding any painted layer. Stale Wall
// entries from earlier derivations fall back to the default layer, or are
// dropped on cells without a tile.
func (r *Room) RecomputeWallLayer() {
	for c, l := range r.layers {
		if l != LayerWall {
			continue
		}
		if r.HasTile(c) {
			r.layers[c] = DefaultLayer
		} else {
			delete(r.layers, c)
		}
	}
	r.walls.Each(func(w Wall) {
		switch w.Edge {
		case EdgeNE:
			r.layers[w.Cell.Add(0, -1)] = LayerWall
		case EdgeNW:
			r.layers[w.Cell.Add(-1, 0)] = LayerWall
		}
	})
}

// Bounds returns the inclusive bounding box over tiles and off-tile Wall
// cells. ok is false for an empty room.
func (r *Room) Bounds() (lo, hi iso.Cell, ok bool) {
	first := true
	grow := func(c iso.Cell) {
		if first {
			lo, hi, first = c, c, false
			return
		}
		if c.X < lo.X {
			lo.X = c.X
		}
		if c.Y < lo.Y {
			lo.Y = c.Y
		}
		if c.X > hi.X {
			hi.X = c.X
		}
		if c.Y > hi.Y {
			hi.Y = c.Y
		}
	}
	for c := range r.tiles {
		grow(c)
	}
	for c, l := range r.layers {
		if l == LayerWall {
			grow(c)
		}
	}
	return lo, hi, !first
}

// CenterWorldCoords is the world position of the middle of the tiled area at
// zoom 1 with no offset.
func (r *Room) CenterWorldCoords() iso.Point {
	half := iso.Point{X: iso.HalfTileWidth, Y: iso.HalfTileHeight}
	if len(r.tiles) == 0 {
		return half
	}
	first := true
	var minX, minY, maxX, maxY int
	for c := range r.tiles {
		if first {
			minX, maxX, minY, maxY = c.X, c.X, c.Y, c.Y
			first = false
			continue
		}
		minX, maxX = min(minX, c.X), max(maxX, c.X)
		minY, maxY = min(minY, c.Y), max(maxY, c.Y)
	}
	gx := float64(minX+maxX) / 2
	gy := float64(minY+maxY) / 2
	p := iso.Point{
		X: (gx - gy) * iso.HalfTileWidth,
		Y: (gx + gy) * iso.HalfTileHeight,
	}
	return p.Add(half)
}

// RenderAnchor is the world position the game aligns the room on.
func (r *Room) RenderAnchor() iso.Point {
	return r.renderAnchor
}

func (r *Room) SetRenderAnchor(p iso.Point) {
	r.renderAnchor = p
}

// AnchorOffset is the render anchor relative to the room centre.
func (r *Room) AnchorOffset() iso.Point {
	return r.renderAnchor.Sub(r.CenterWorldCoords())
}

func (r *Room) SetAnchorOffset(off iso.Point) {
	r.renderAnchor = r.CenterWorldCoords().Add(off)
}

// CenterAnchor moves the render anchor to the room centre.
func (r *Room) CenterAnchor() {
	r.renderAnchor = r.CenterWorldCoords()
}

func sortCellsByDepth(cells []iso.Cell) {
	sort.Slice(cells, func(i, j int) bool {
		return cellLess(cells[i], cells[j])
	})
}

func cellLess(a, b iso.Cell) bool {
	if a.Depth() != b.Depth() {
		return a.Depth() < b.Depth()
	}
	return a.X-a.Y < b.X-b.Y
}
