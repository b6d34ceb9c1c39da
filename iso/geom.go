package iso

import "github.com/jakecoffman/cp"

// Point is a screen or world position in pixels.
type Point struct {
	X float64
	Y float64
}

func (p Point) Add(o Point) Point { return Point{X: p.X + o.X, Y: p.Y + o.Y} }
func (p Point) Sub(o Point) Point { return Point{X: p.X - o.X, Y: p.Y - o.Y} }
func (p Point) Scale(s float64) Point { return Point{X: p.X * s, Y: p.Y * s} }
func (p Point) Vector() cp.Vector { return cp.Vector{X: p.X, Y: p.Y} }
func FromVector(v cp.Vector) Point { return Point{X: v.X, Y: v.Y} }
func Pt(x, y float64) Point { return Point{X: x, Y: y} }
func (p Point) Distance(o Point) float64 { return p.Vector().Distance(o.Vector()) }

// Rect is an axis-aligned rectangle in screen space.
type Rect struct {
	X, Y, W, H float64
}

func (r Rect) Contains(p Point) bool {
	return p.X >= r.X && p.X < r.X+r.W && p.Y >= r.Y && p.Y < r.Y+r.H
}

func (r Rect) Center() Point {
	return Point{X: r.X + r.W/2, Y: r.Y + r.H/2}
}

// SegmentDistance returns the distance from p to the segment ab. A zero
// length segment measures to a.
func SegmentDistance(p, a, b Point) float64 {
	pv, av, bv := p.Vector(), a.Vector(), b.Vector()
	ab := bv.Sub(av)
	lenSq := ab.LengthSq()
	if lenSq == 0 {
		return pv.Distance(av)
	}
	t := cp.Clamp01(pv.Sub(av).Dot(ab) / lenSq)
	return pv.Distance(av.Add(ab.Mult(t)))
}
