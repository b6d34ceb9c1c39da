package room

import (
	"fmt"

	"github.com/milk9111/isoroom/iso"
)

// Edge is a side or diagonal of a tile that can hold a wall.
type Edge int

const (
	EdgeNE Edge = iota
	EdgeSE
	EdgeSW
	EdgeNW
	EdgeDiagSWNE
	EdgeDiagNWSE
)

var Edges = []Edge{EdgeNE, EdgeSE, EdgeSW, EdgeNW, EdgeDiagSWNE, EdgeDiagNWSE}

var edgeNames = map[Edge]string{
	EdgeNE:       "ne",
	EdgeSE:       "se",
	EdgeSW:       "sw",
	EdgeNW:       "nw",
	EdgeDiagSWNE: "diag_sw_ne",
	EdgeDiagNWSE: "diag_nw_se",
}

// edgeNeighbors is the grid step toward the cell across a cardinal edge.
var edgeNeighbors = map[Edge][2]int{
	EdgeNE: {0, -1},
	EdgeSE: {1, 0},
	EdgeSW: {0, 1},
	EdgeNW: {-1, 0},
}

func (e Edge) String() string {
	if name, ok := edgeNames[e]; ok {
		return name
	}
	return fmt.Sprintf("Edge(%d)", int(e))
}

// ParseEdge converts the serialized edge name.
func ParseEdge(s string) (Edge, error) {
	for e, name := range edgeNames {
		if name == s {
			return e, nil
		}
	}
	return 0, fmt.Errorf("room: unknown edge %q", s)
}

func (e Edge) Cardinal() bool {
	_, ok := edgeNeighbors[e]
	return ok
}

// Neighbor returns the cell on the far side of a cardinal edge. Diagonals
// have no neighbour.
func (e Edge) Neighbor(c iso.Cell) (iso.Cell, bool) {
	d, ok := edgeNeighbors[e]
	if !ok {
		return c, false
	}
	return c.Add(d[0], d[1]), true
}

// Segment returns the two endpoints of the edge on a diamond.
func (e Edge) Segment(c iso.Corners) (iso.Point, iso.Point) {
	switch e {
	case EdgeNE:
		return c.Top, c.Right
	case EdgeSE:
		return c.Right, c.Bottom
	case EdgeSW:
		return c.Bottom, c.Left
	case EdgeNW:
		return c.Left, c.Top
	case EdgeDiagSWNE:
		return c.Bottom, c.Top
	default:
		return c.Left, c.Right
	}
}

func (e Edge) MarshalText() ([]byte, error) {
	if _, ok := edgeNames[e]; !ok {
		return nil, fmt.Errorf("room: unknown edge %d", int(e))
	}
	return []byte(e.String()), nil
}

func (e *Edge) UnmarshalText(b []byte) error {
	parsed, err := ParseEdge(string(b))
	if err != nil {
		return err
	}
	*e = parsed
	return nil
}
