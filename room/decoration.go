package room

import (
	"sort"

	"github.com/milk9111/isoroom/iso"
	"github.com/zyedidia/generic/mapset"
)

// DecorationID identifies a placed decoration for the lifetime of the room.
type DecorationID uint64

// Decoration is a furni placed on the grid.
type Decoration struct {
	ID        DecorationID
	BaseID    string
	VariantID string
	Cell      iso.Cell
	Rotation  int
	Layer     Layer
}

// rotationDirections maps a quarter-turn rotation to the sprite direction.
var rotationDirections = [4]int{2, 4, 6, 0}

// Direction returns the sprite direction for a rotation in 0..3.
func Direction(rotation int) int {
	return rotationDirections[NormalizeRotation(rotation)]
}

func NormalizeRotation(rotation int) int {
	return ((rotation % 4) + 4) % 4
}

// IsOccupied reports whether a decoration already sits on (c, l).
func (r *Room) IsOccupied(c iso.Cell, l Layer) bool {
	layers, ok := r.occupied[c]
	return ok && layers.Has(l)
}

// AddDecoration places a decoration unless (c, l) is already occupied.
func (r *Room) AddDecoration(baseID, variantID string, c iso.Cell, rotation int, l Layer) (DecorationID, bool) {
	if r.IsOccupied(c, l) {
		return 0, false
	}
	id := r.nextID
	r.nextID++
	r.decorations = append(r.decorations, Decoration{
		ID:        id,
		BaseID:    baseID,
		VariantID: variantID,
		Cell:      c,
		Rotation:  NormalizeRotation(rotation),
		Layer:     l,
	})
	layers, ok := r.occupied[c]
	if !ok {
		layers = mapset.New[Layer]()
		r.occupied[c] = layers
	}
	layers.Put(l)
	return id, true
}

// RemoveDecorationAt removes the decoration on (c, l).
func (r *Room) RemoveDecorationAt(c iso.Cell, l Layer) bool {
	for i, d := range r.decorations {
		if d.Cell == c && d.Layer == l {
			r.removeAt(i)
			return true
		}
	}
	return false
}

// RemoveDecoration removes the decoration with the given id.
func (r *Room) RemoveDecoration(id DecorationID) bool {
	for i, d := range r.decorations {
		if d.ID == id {
			r.removeAt(i)
			return true
		}
	}
	return false
}

func (r *Room) removeAt(i int) {
	d := r.decorations[i]
	r.decorations = append(r.decorations[:i], r.decorations[i+1:]...)
	if layers, ok := r.occupied[d.Cell]; ok {
		layers.Remove(d.Layer)
		if layers.Size() == 0 {
			delete(r.occupied, d.Cell)
		}
	}
}

// Decoration returns a copy of the decoration with the given id.
func (r *Room) Decoration(id DecorationID) (Decoration, bool) {
	for _, d := range r.decorations {
		if d.ID == id {
			return d, true
		}
	}
	return Decoration{}, false
}

// DecorationAt returns the decoration on (c, l).
func (r *Room) DecorationAt(c iso.Cell, l Layer) (Decoration, bool) {
	if !r.IsOccupied(c, l) {
		return Decoration{}, false
	}
	for _, d := range r.decorations {
		if d.Cell == c && d.Layer == l {
			return d, true
		}
	}
	return Decoration{}, false
}

// SetDecorationRotation changes the rotation of a placed decoration.
func (r *Room) SetDecorationRotation(id DecorationID, rotation int) bool {
	for i := range r.decorations {
		if r.decorations[i].ID == id {
			r.decorations[i].Rotation = NormalizeRotation(rotation)
			return true
		}
	}
	return false
}

// Decorations returns the decorations in insertion order.
func (r *Room) Decorations() []Decoration {
	out := make([]Decoration, len(r.decorations))
	copy(out, r.decorations)
	return out
}

func (r *Room) DecorationCount() int {
	return len(r.decorations)
}

// DecorationsSortedForRender orders decorations by layer, then back to front,
// then by insertion.
func (r *Room) DecorationsSortedForRender() []Decoration {
	out := r.Decorations()
	sort.SliceStable(out, func(i, j int) bool {
		a, b := out[i], out[j]
		if a.Layer != b.Layer {
			return a.Layer < b.Layer
		}
		if a.Cell != b.Cell {
			return cellLess(a.Cell, b.Cell)
		}
		return a.ID < b.ID
	})
	return out
}
