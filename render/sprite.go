package render

import (
	"image"
	"math"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/isoroom/iso"
)

// Sprite is a decoration image with the offset from its anchor pixel to its
// top-left corner, plus an alpha mask for hit testing.
type Sprite struct {
	Image  image.Image
	Offset iso.Point

	w, h int
	mask []bool
}

// NewSprite builds the alpha mask for img once.
func NewSprite(img image.Image, offset iso.Point) *Sprite {
	b := img.Bounds()
	s := &Sprite{
		Image:  img,
		Offset: offset,
		w:      b.Dx(),
		h:      b.Dy(),
		mask:   make([]bool, b.Dx()*b.Dy()),
	}
	for y := 0; y < s.h; y++ {
		for x := 0; x < s.w; x++ {
			_, _, _, a := img.At(b.Min.X+x, b.Min.Y+y).RGBA()
			s.mask[y*s.w+x] = a > 0
		}
	}
	return s
}

func (s *Sprite) Size() (w, h int) {
	return s.w, s.h
}

// Opaque reports whether the pixel at (x, y) in image space has any alpha.
func (s *Sprite) Opaque(x, y int) bool {
	if x < 0 || y < 0 || x >= s.w || y >= s.h {
		return false
	}
	return s.mask[y*s.w+x]
}

// Placement returns the top-left draw position for a sprite anchored at the
// centre of cell c.
func (s *Sprite) Placement(c iso.Cell, v View) iso.Point {
	anchor := iso.TileCenter(c, v.Offset, v.Zoom)
	return anchor.Sub(s.Offset.Scale(v.Zoom))
}

// Bounds is the on-screen box the sprite covers when drawn at pos.
func (s *Sprite) Bounds(pos iso.Point, zoom float64) cp.BB {
	return cp.BB{
		L: pos.X,
		B: pos.Y,
		R: pos.X + float64(s.w)*zoom,
		T: pos.Y + float64(s.h)*zoom,
	}
}

// HitAt reports whether screen point p lands on an opaque pixel of the
// sprite drawn at pos.
func (s *Sprite) HitAt(p, pos iso.Point, zoom float64) bool {
	if zoom <= 0 || !s.Bounds(pos, zoom).ContainsVect(p.Vector()) {
		return false
	}
	local := p.Sub(pos).Scale(1 / zoom)
	return s.Opaque(int(math.Floor(local.X)), int(math.Floor(local.Y)))
}
