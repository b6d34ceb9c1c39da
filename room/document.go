package room

import (
	"fmt"
	"strings"

	"github.com/milk9111/isoroom/iso"
)

// Structure is the on-disk form of a room's floor plan.
type Structure struct {
	Name         string       `json:"name"`
	ID           string       `json:"id"`
	Dimensions   Dimensions   `json:"dimensions"`
	RenderAnchor Anchor       `json:"renderAnchor"`
	Tiles        []string     `json:"tiles"`
	Walkable     []string     `json:"walkable"`
	Layers       []string     `json:"layers"`
	Walls        []WallRecord `json:"walls"`
}

type Dimensions struct {
	Width   int `json:"width"`
	Depth   int `json:"depth"`
	OriginX int `json:"origin_x"`
	OriginY int `json:"origin_y"`
}

type Anchor struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

type WallRecord struct {
	GridPos [2]int `json:"grid_pos"`
	Edge    Edge   `json:"edge"`
}

// DecorationSet is the on-disk list of decorations placed on a structure.
type DecorationSet struct {
	Name        string             `json:"decoration_set_name"`
	StructureID string             `json:"structure_id"`
	Decorations []DecorationRecord `json:"decorations"`
}

type DecorationRecord struct {
	BaseID    string `json:"base_id"`
	VariantID string `json:"variant_id"`
	GridPos   [2]int `json:"grid_pos"`
	Rotation  int    `json:"rotation"`
	Layer     *Layer `json:"layer,omitempty"`
}

// NewStructure returns the template for an empty structure.
func NewStructure(name, id string) Structure {
	return Structure{
		Name:     name,
		ID:       id,
		Tiles:    []string{},
		Walkable: []string{},
		Layers:   []string{},
		Walls:    []WallRecord{},
	}
}

// NewDecorationSet returns an empty decoration set bound to a structure.
func NewDecorationSet(s Structure) DecorationSet {
	return DecorationSet{
		Name:        fmt.Sprintf("%s Decoration Set", s.Name),
		StructureID: s.ID,
		Decorations: []DecorationRecord{},
	}
}

// FromDocuments builds a room from a structure and its decoration set.
// Walls the structure cannot hold are kept as written. Decorations that
// collide on a (cell, layer) pair after the first are dropped and counted in
// the returned skipped value.
func FromDocuments(s Structure, ds DecorationSet) (r *Room, skipped int, err error) {
	r = New(s.Name, s.ID)
	r.DecorationSetName = ds.Name
	r.StructureID = ds.StructureID
	r.renderAnchor = iso.Point{X: s.RenderAnchor.X, Y: s.RenderAnchor.Y}

	ox, oy := s.Dimensions.OriginX, s.Dimensions.OriginY
	for y, row := range s.Tiles {
		for x := 0; x < len(row); x++ {
			if row[x] == '0' {
				continue
			}
			shape := ShapeFromCode(row[x])
			if shape == ShapeNone {
				return nil, 0, fmt.Errorf("room: tile %q at row %d col %d", row[x], y, x)
			}
			r.tiles[iso.Cell{X: x + ox, Y: y + oy}] = shape
		}
	}

	for y, row := range s.Walkable {
		for x := 0; x < len(row); x++ {
			c := iso.Cell{X: x + ox, Y: y + oy}
			if !r.HasTile(c) {
				continue
			}
			switch row[x] {
			case '1':
				r.walkable[c] = true
			case '0':
				r.walkable[c] = false
			}
		}
	}

	for y, row := range s.Layers {
		for x := 0; x < len(row); x++ {
			c := iso.Cell{X: x + ox, Y: y + oy}
			if l, ok := LayerFromChar(row[x]); ok && r.HasTile(c) {
				r.layers[c] = l
			}
		}
	}

	for c := range r.tiles {
		if _, ok := r.walkable[c]; !ok {
			r.walkable[c] = false
		}
		if _, ok := r.layers[c]; !ok {
			r.layers[c] = DefaultLayer
		}
	}

	for _, w := range s.Walls {
		r.walls.Put(Wall{Cell: iso.Cell{X: w.GridPos[0], Y: w.GridPos[1]}, Edge: w.Edge})
	}
	r.RecomputeWallLayer()

	for _, d := range ds.Decorations {
		l := DefaultLayer
		if d.Layer != nil {
			l = *d.Layer
		}
		if !l.Valid() {
			return nil, 0, fmt.Errorf("room: decoration %s has layer %d", d.BaseID, int(l))
		}
		c := iso.Cell{X: d.GridPos[0], Y: d.GridPos[1]}
		if _, ok := r.AddDecoration(d.BaseID, d.VariantID, c, d.Rotation, l); !ok {
			skipped++
		}
	}

	return r, skipped, nil
}

// Structure serialises the floor plan. The bounding box spans tiles and
// derived Wall cells; Wall and Floor layers are never written.
func (r *Room) Structure() Structure {
	s := NewStructure(r.Name, r.ID)
	s.RenderAnchor = Anchor{X: r.renderAnchor.X, Y: r.renderAnchor.Y}

	lo, hi, ok := r.Bounds()
	if !ok {
		lo, hi = iso.Cell{}, iso.Cell{X: -1, Y: -1}
	}
	w := hi.X - lo.X + 1
	d := hi.Y - lo.Y + 1
	s.Dimensions = Dimensions{Width: w, Depth: d, OriginX: lo.X, OriginY: lo.Y}

	tiles := makeGrid(w, d, '0')
	walkable := makeGrid(w, d, 'x')
	layers := makeGrid(w, d, 'x')

	for c, shape := range r.tiles {
		row, col := c.Y-lo.Y, c.X-lo.X
		tiles[row][col] = shape.Code()
		walkable[row][col] = '0'
		if r.walkable[c] {
			walkable[row][col] = '1'
		}
	}
	for c, l := range r.layers {
		if c.X < lo.X || c.X > hi.X || c.Y < lo.Y || c.Y > hi.Y {
			continue
		}
		layers[c.Y-lo.Y][c.X-lo.X] = l.Char()
	}

	s.Tiles = joinGrid(tiles)
	s.Walkable = joinGrid(walkable)
	s.Layers = joinGrid(layers)

	for _, wall := range r.Walls() {
		s.Walls = append(s.Walls, WallRecord{GridPos: [2]int{wall.Cell.X, wall.Cell.Y}, Edge: wall.Edge})
	}
	return s
}

// DecorationSet serialises the placed decorations in insertion order.
func (r *Room) DecorationSet() DecorationSet {
	ds := DecorationSet{
		Name:        r.DecorationSetName,
		StructureID: r.StructureID,
		Decorations: make([]DecorationRecord, 0, len(r.decorations)),
	}
	for _, d := range r.decorations {
		l := d.Layer
		ds.Decorations = append(ds.Decorations, DecorationRecord{
			BaseID:    d.BaseID,
			VariantID: d.VariantID,
			GridPos:   [2]int{d.Cell.X, d.Cell.Y},
			Rotation:  d.Rotation,
			Layer:     &l,
		})
	}
	return ds
}

func makeGrid(w, d int, fill byte) [][]byte {
	grid := make([][]byte, d)
	for i := range grid {
		grid[i] = []byte(strings.Repeat(string(fill), w))
	}
	return grid
}

func joinGrid(grid [][]byte) []string {
	rows := make([]string, len(grid))
	for i, row := range grid {
		rows[i] = string(row)
	}
	return rows
}
