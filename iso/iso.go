// Package iso converts between grid cells and screen pixels for a 2:1
// diamond projection.
package iso

import "math"

const (
	TileWidth      = 64
	TileHeight     = 32
	HalfTileWidth  = TileWidth / 2
	HalfTileHeight = TileHeight / 2
	WallHeight     = 96

	PreviewWidth  = 240
	PreviewHeight = 240
)

// Cell is a grid coordinate. The grid is unbounded in both directions.
type Cell struct {
	X int
	Y int
}

func (c Cell) Add(dx, dy int) Cell { return Cell{X: c.X + dx, Y: c.Y + dy} }

// Depth is the draw order key along the view axis.
func (c Cell) Depth() int { return c.X + c.Y }

// GridToScreen returns the top-left corner of the cell's bounding box.
func GridToScreen(c Cell, offset Point, zoom float64) Point {
	return Point{
		X: float64(c.X-c.Y)*HalfTileWidth*zoom + offset.X,
		Y: float64(c.X+c.Y)*HalfTileHeight*zoom + offset.Y,
	}
}

// TileCenter returns the centre of the cell's diamond.
func TileCenter(c Cell, offset Point, zoom float64) Point {
	p := GridToScreen(c, offset, zoom)
	return Point{X: p.X + HalfTileWidth*zoom, Y: p.Y + HalfTileHeight*zoom}
}

// ScreenToGrid returns the cell whose diamond contains p. A zero zoom yields
// the origin cell.
func ScreenToGrid(p Point, offset Point, zoom float64) Cell {
	if zoom == 0 {
		return Cell{}
	}
	hw := HalfTileWidth * zoom
	hh := HalfTileHeight * zoom
	wx := p.X - offset.X - hw
	wy := p.Y - offset.Y - hh

	gx := (wx/hw + wy/hh) / 2
	gy := (wy/hh - wx/hw) / 2
	return Cell{X: roundHalfUp(gx), Y: roundHalfUp(gy)}
}

func roundHalfUp(v float64) int {
	return int(math.Floor(v + 0.5))
}

// Corners are the four points of a tile diamond.
type Corners struct {
	Top    Point
	Right  Point
	Bottom Point
	Left   Point
}

// TileCorners returns the diamond corners for a tile whose bounding box
// starts at anchor.
func TileCorners(anchor Point, zoom float64) Corners {
	hw := HalfTileWidth * zoom
	hh := HalfTileHeight * zoom
	return Corners{
		Top:    Point{X: anchor.X + hw, Y: anchor.Y},
		Right:  Point{X: anchor.X + 2*hw, Y: anchor.Y + hh},
		Bottom: Point{X: anchor.X + hw, Y: anchor.Y + 2*hh},
		Left:   Point{X: anchor.X, Y: anchor.Y + hh},
	}
}

// CellCorners is TileCorners for a cell under the given view.
func CellCorners(c Cell, offset Point, zoom float64) Corners {
	return TileCorners(GridToScreen(c, offset, zoom), zoom)
}
