// Package render draws a room through a Canvas and answers pixel picking
// queries against placed decorations.
package render

import (
	"github.com/milk9111/isoroom/iso"
	"github.com/milk9111/isoroom/room"
)

// Resolver finds the sprite for a decoration pose.
type Resolver interface {
	Sprite(baseID, variantID string, rotation int) (*Sprite, bool)
}

// View is the camera state for one frame.
type View struct {
	Offset   iso.Point
	Zoom     float64
	Viewport iso.Rect
}

type Overlay int

const (
	OverlayNone Overlay = iota
	OverlayWalkable
	OverlayLayers
)

// Options selects the optional passes of Draw.
type Options struct {
	// Preview draws a bare room on the preview background with no editor
	// markers.
	Preview bool

	ShowGrid   bool
	Overlay    Overlay
	ShowAnchor bool

	// LayerFilter limits the layer overlay to a single layer when set.
	LayerFilter    room.Layer
	HasLayerFilter bool
}

// Ghost is a decoration being held for placement.
type Ghost struct {
	BaseID    string
	VariantID string
	Cell      iso.Cell
	Rotation  int
	Layer     room.Layer
}

const (
	ghostAlpha    = 150.0 / 255
	occupiedAlpha = 100.0 / 255
	missingRadius = 4
	originArm     = 10
	anchorArm     = 8
	anchorRadius  = 5
	tileBorder    = 2
	wallBorder    = 2
)

var occupiedTint = [3]float64{1, 0.45, 0.45}

type Renderer struct {
	Resolver Resolver
	Palette  Palette
}

func NewRenderer(resolver Resolver) *Renderer {
	return &Renderer{Resolver: resolver, Palette: DefaultPalette()}
}

// Draw renders one frame of r.
func (rd *Renderer) Draw(cv Canvas, r *room.Room, v View, opts Options) {
	if opts.Preview {
		cv.Fill(rd.Palette.PreviewBackground)
	} else {
		cv.Fill(rd.Palette.EditorBackground)
		if opts.ShowGrid {
			rd.drawGrid(cv, v)
		}
	}
	if r == nil {
		return
	}
	if !opts.Preview {
		rd.drawOrigin(cv, v)
	}

	tiles := r.Tiles()
	for _, c := range tiles {
		pts := r.Tile(c).Polygon(iso.CellCorners(c, v.Offset, v.Zoom))
		cv.FillPolygon(pts, rd.Palette.Tile)
		cv.StrokePolygon(pts, tileBorder, rd.Palette.TileBorder)
	}

	if !opts.Preview {
		switch opts.Overlay {
		case OverlayWalkable:
			rd.drawWalkable(cv, r, tiles, v)
		case OverlayLayers:
			rd.drawLayers(cv, r, v, opts)
		}
	}

	for _, c := range tiles {
		for _, e := range r.Tile(c).Edges() {
			if r.HasWall(c, e) {
				rd.drawWall(cv, c, e, v)
			}
		}
	}

	for _, d := range r.DecorationsSortedForRender() {
		rd.drawDecoration(cv, d.BaseID, d.VariantID, d.Cell, d.Rotation, v, Opaque)
	}

	if !opts.Preview && opts.ShowAnchor {
		rd.drawAnchor(cv, r.RenderAnchor(), v)
	}
}

// drawGrid covers only the cells visible in the viewport plus a one cell
// margin.
func (rd *Renderer) drawGrid(cv Canvas, v View) {
	vp := v.Viewport
	if vp.W <= 0 || vp.H <= 0 || v.Zoom <= 0 {
		return
	}
	corners := []iso.Cell{
		iso.ScreenToGrid(iso.Point{X: vp.X, Y: vp.Y}, v.Offset, v.Zoom),
		iso.ScreenToGrid(iso.Point{X: vp.X + vp.W, Y: vp.Y}, v.Offset, v.Zoom),
		iso.ScreenToGrid(iso.Point{X: vp.X + vp.W, Y: vp.Y + vp.H}, v.Offset, v.Zoom),
		iso.ScreenToGrid(iso.Point{X: vp.X, Y: vp.Y + vp.H}, v.Offset, v.Zoom),
	}
	lo, hi := corners[0], corners[0]
	for _, c := range corners[1:] {
		lo.X, lo.Y = min(lo.X, c.X), min(lo.Y, c.Y)
		hi.X, hi.Y = max(hi.X, c.X), max(hi.Y, c.Y)
	}
	for gy := lo.Y - 1; gy <= hi.Y+1; gy++ {
		for gx := lo.X - 1; gx <= hi.X+1; gx++ {
			cv.StrokePolygon(diamond(iso.Cell{X: gx, Y: gy}, v), 1, rd.Palette.Grid)
		}
	}
}

func (rd *Renderer) drawOrigin(cv Canvas, v View) {
	o := iso.GridToScreen(iso.Cell{}, v.Offset, v.Zoom)
	cv.StrokeLine(iso.Pt(o.X-originArm, o.Y), iso.Pt(o.X+originArm, o.Y), 1, rd.Palette.Origin)
	cv.StrokeLine(iso.Pt(o.X, o.Y-originArm), iso.Pt(o.X, o.Y+originArm), 1, rd.Palette.Origin)
}

func (rd *Renderer) drawWalkable(cv Canvas, r *room.Room, tiles []iso.Cell, v View) {
	for _, c := range tiles {
		clr := rd.Palette.NotWalkable
		if r.Walkable(c) {
			clr = rd.Palette.Walkable
		}
		cv.FillPolygon(r.Tile(c).Polygon(iso.CellCorners(c, v.Offset, v.Zoom)), clr)
	}
}

// drawLayers tints every cell with a layer entry. Wall cells off the floor
// are drawn as full diamonds.
func (rd *Renderer) drawLayers(cv Canvas, r *room.Room, v View, opts Options) {
	for _, c := range r.LayerCells() {
		l, _ := r.LayerAt(c)
		if opts.HasLayerFilter && l != opts.LayerFilter {
			continue
		}
		shape := r.Tile(c)
		if shape == room.ShapeNone {
			shape = room.ShapeFull
		}
		cv.FillPolygon(shape.Polygon(iso.CellCorners(c, v.Offset, v.Zoom)), l.Color())
	}
}

// WallQuad is the extruded outline of a wall on edge e of cell c.
func WallQuad(c iso.Cell, e room.Edge, v View) []iso.Point {
	a, b := e.Segment(iso.CellCorners(c, v.Offset, v.Zoom))
	h := iso.WallHeight * v.Zoom
	return []iso.Point{a, b, iso.Pt(b.X, b.Y-h), iso.Pt(a.X, a.Y-h)}
}

func (rd *Renderer) drawWall(cv Canvas, c iso.Cell, e room.Edge, v View) {
	quad := WallQuad(c, e, v)
	cv.FillPolygon(quad, rd.Palette.Wall)
	cv.StrokePolygon(quad, wallBorder, rd.Palette.WallBorder)
}

func (rd *Renderer) sprite(baseID, variantID string, rotation int) (*Sprite, bool) {
	if rd.Resolver == nil {
		return nil, false
	}
	return rd.Resolver.Sprite(baseID, variantID, rotation)
}

// HasArt reports whether a sprite exists for the pose.
func (rd *Renderer) HasArt(baseID, variantID string, rotation int) bool {
	_, ok := rd.sprite(baseID, variantID, rotation)
	return ok
}

func (rd *Renderer) drawDecoration(cv Canvas, baseID, variantID string, c iso.Cell, rotation int, v View, style SpriteStyle) {
	s, ok := rd.sprite(baseID, variantID, rotation)
	if !ok {
		cv.FillCircle(iso.TileCenter(c, v.Offset, v.Zoom), missingRadius, rd.Palette.MissingArt)
		return
	}
	cv.DrawSprite(s, s.Placement(c, v), v.Zoom, style)
}

// DrawGhost draws a held decoration, faded, and tinted red when its target
// is occupied.
func (rd *Renderer) DrawGhost(cv Canvas, g Ghost, v View, occupied bool) {
	style := SpriteStyle{Alpha: ghostAlpha, Tint: [3]float64{1, 1, 1}}
	if occupied {
		style = SpriteStyle{Alpha: occupiedAlpha, Tint: occupiedTint}
	}
	rd.drawDecoration(cv, g.BaseID, g.VariantID, g.Cell, g.Rotation, v, style)
}

// DrawSelection outlines a selected decoration's sprite box.
func (rd *Renderer) DrawSelection(cv Canvas, d room.Decoration, v View) {
	s, ok := rd.sprite(d.BaseID, d.VariantID, d.Rotation)
	if !ok {
		cv.StrokePolygon(diamond(d.Cell, v), 2, rd.Palette.Selection)
		return
	}
	bb := s.Bounds(s.Placement(d.Cell, v), v.Zoom)
	cv.StrokeRect(iso.Rect{X: bb.L, Y: bb.B, W: bb.R - bb.L, H: bb.T - bb.B}, 1, rd.Palette.Selection)
}

// DrawHoverCell outlines the cell under the pointer.
func (rd *Renderer) DrawHoverCell(cv Canvas, c iso.Cell, v View) {
	cv.StrokePolygon(diamond(c, v), 2, rd.Palette.Hover)
}

// DrawHoverEdge highlights the wall slot under the pointer.
func (rd *Renderer) DrawHoverEdge(cv Canvas, c iso.Cell, e room.Edge, v View) {
	a, b := e.Segment(iso.CellCorners(c, v.Offset, v.Zoom))
	cv.StrokeLine(a, b, 3, rd.Palette.Hover)
}

func (rd *Renderer) drawAnchor(cv Canvas, anchor iso.Point, v View) {
	p := anchor.Scale(v.Zoom).Add(v.Offset)
	clr := rd.Palette.Anchor
	cv.FillCircle(p, anchorRadius, clr)
	cv.StrokeLine(iso.Pt(p.X-anchorArm, p.Y), iso.Pt(p.X+anchorArm, p.Y), 1, clr)
	cv.StrokeLine(iso.Pt(p.X, p.Y-anchorArm), iso.Pt(p.X, p.Y+anchorArm), 1, clr)

	w := iso.PreviewWidth * v.Zoom
	h := iso.PreviewHeight * v.Zoom
	cv.StrokeRect(iso.Rect{X: p.X - w/2, Y: p.Y - h/2, W: w, H: h}, 1, rd.Palette.PreviewOutline)
}

// PickDecorationAt returns the topmost decoration with an opaque pixel under
// p. Decorations without art cannot be picked.
func (rd *Renderer) PickDecorationAt(r *room.Room, p iso.Point, v View) (room.DecorationID, bool) {
	decos := r.DecorationsSortedForRender()
	for i := len(decos) - 1; i >= 0; i-- {
		d := decos[i]
		s, ok := rd.sprite(d.BaseID, d.VariantID, d.Rotation)
		if !ok {
			continue
		}
		if s.HitAt(p, s.Placement(d.Cell, v), v.Zoom) {
			return d.ID, true
		}
	}
	return 0, false
}

func diamond(c iso.Cell, v View) []iso.Point {
	cn := iso.CellCorners(c, v.Offset, v.Zoom)
	return []iso.Point{cn.Top, cn.Right, cn.Bottom, cn.Left}
}
