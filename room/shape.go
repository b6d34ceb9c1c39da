package room

import (
	"fmt"

	"github.com/milk9111/isoroom/iso"
)

// Shape is the outline of a floor tile. The zero value means no tile.
type Shape int

const (
	ShapeNone Shape = iota
	ShapeFull
	ShapeNotchTopLeft
	ShapeNotchTopRight
	ShapeNotchBottomRight
	ShapeNotchBottomLeft
)

// Shapes lists every placeable shape in cycle order.
var Shapes = []Shape{ShapeFull, ShapeNotchTopLeft, ShapeNotchTopRight, ShapeNotchBottomRight, ShapeNotchBottomLeft}

var shapeNames = map[Shape]string{
	ShapeNone:             "none",
	ShapeFull:             "full",
	ShapeNotchTopLeft:     "notch_top_left",
	ShapeNotchTopRight:    "notch_top_right",
	ShapeNotchBottomRight: "notch_bottom_right",
	ShapeNotchBottomLeft:  "notch_bottom_left",
}

// shapeEdges is the set of edges each shape exposes to walls.
var shapeEdges = map[Shape][]Edge{
	ShapeFull:             {EdgeNE, EdgeSE, EdgeSW, EdgeNW},
	ShapeNotchTopLeft:     {EdgeNE, EdgeSE, EdgeDiagSWNE},
	ShapeNotchTopRight:    {EdgeNW, EdgeSW, EdgeDiagSWNE},
	ShapeNotchBottomRight: {EdgeNW, EdgeNE, EdgeDiagNWSE},
	ShapeNotchBottomLeft:  {EdgeSE, EdgeSW, EdgeDiagNWSE},
}

func (s Shape) Valid() bool {
	return s >= ShapeFull && s <= ShapeNotchBottomLeft
}

func (s Shape) String() string {
	if name, ok := shapeNames[s]; ok {
		return name
	}
	return fmt.Sprintf("Shape(%d)", int(s))
}

// Next returns the following shape in the Alt+click cycle.
func (s Shape) Next() Shape {
	if !s.Valid() || s == ShapeNotchBottomLeft {
		return ShapeFull
	}
	return s + 1
}

// Edges returns the edges a wall may occupy on this shape.
func (s Shape) Edges() []Edge {
	return shapeEdges[s]
}

// HasEdge reports whether e is one of the shape's edges.
func (s Shape) HasEdge(e Edge) bool {
	for _, se := range shapeEdges[s] {
		if se == e {
			return true
		}
	}
	return false
}

// Polygon returns the outline of the shape for the given diamond corners.
func (s Shape) Polygon(c iso.Corners) []iso.Point {
	switch s {
	case ShapeFull:
		return []iso.Point{c.Top, c.Right, c.Bottom, c.Left}
	case ShapeNotchTopLeft:
		return []iso.Point{c.Top, c.Right, c.Bottom}
	case ShapeNotchTopRight:
		return []iso.Point{c.Top, c.Bottom, c.Left}
	case ShapeNotchBottomRight:
		return []iso.Point{c.Top, c.Right, c.Left}
	case ShapeNotchBottomLeft:
		return []iso.Point{c.Right, c.Bottom, c.Left}
	default:
		return nil
	}
}

// Code is the digit used for the shape in structure rows.
func (s Shape) Code() byte {
	if !s.Valid() {
		return '0'
	}
	return byte('0' + int(s))
}

// ShapeFromCode parses a structure row digit. '0' and unknown digits are no
// tile.
func ShapeFromCode(b byte) Shape {
	s := Shape(int(b) - '0')
	if !s.Valid() {
		return ShapeNone
	}
	return s
}
