package render

import (
	"image/color"

	"github.com/milk9111/isoroom/iso"
)

// Op is one recorded Canvas call.
type Op struct {
	Kind   string
	Points []iso.Point
	Color  color.Color
	Sprite *Sprite
	Zoom   float64
	Style  SpriteStyle
}

// Recorder is a Canvas that keeps every call in order.
type Recorder struct {
	W, H int
	Ops  []Op
}

func (r *Recorder) Size() (int, int) { return r.W, r.H }

func (r *Recorder) Fill(c color.Color) {
	r.Ops = append(r.Ops, Op{Kind: "fill", Color: c})
}

func (r *Recorder) FillPolygon(pts []iso.Point, c color.Color) {
	r.Ops = append(r.Ops, Op{Kind: "fill_polygon", Points: pts, Color: c})
}

func (r *Recorder) StrokePolygon(pts []iso.Point, _ float64, c color.Color) {
	r.Ops = append(r.Ops, Op{Kind: "stroke_polygon", Points: pts, Color: c})
}

func (r *Recorder) StrokeLine(a, b iso.Point, _ float64, c color.Color) {
	r.Ops = append(r.Ops, Op{Kind: "line", Points: []iso.Point{a, b}, Color: c})
}

func (r *Recorder) FillCircle(center iso.Point, _ float64, c color.Color) {
	r.Ops = append(r.Ops, Op{Kind: "circle", Points: []iso.Point{center}, Color: c})
}

func (r *Recorder) StrokeRect(rect iso.Rect, _ float64, c color.Color) {
	r.Ops = append(r.Ops, Op{Kind: "rect", Points: []iso.Point{{X: rect.X, Y: rect.Y}, {X: rect.X + rect.W, Y: rect.Y + rect.H}}, Color: c})
}

func (r *Recorder) DrawSprite(s *Sprite, at iso.Point, zoom float64, style SpriteStyle) {
	r.Ops = append(r.Ops, Op{Kind: "sprite", Points: []iso.Point{at}, Sprite: s, Zoom: zoom, Style: style.normalized()})
}

// Count returns how many recorded calls have the given kind and colour. A
// nil colour matches any.
func (r *Recorder) Count(kind string, c color.Color) int {
	n := 0
	for _, op := range r.Ops {
		if op.Kind != kind {
			continue
		}
		if c != nil && !sameColor(op.Color, c) {
			continue
		}
		n++
	}
	return n
}

func (r *Recorder) Reset() {
	r.Ops = r.Ops[:0]
}

func sameColor(a, b color.Color) bool {
	if a == nil || b == nil {
		return a == b
	}
	ar, ag, ab, aa := a.RGBA()
	br, bg, bb, ba := b.RGBA()
	return ar == br && ag == bg && ab == bb && aa == ba
}
