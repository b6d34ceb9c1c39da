package render

import (
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/milk9111/isoroom/iso"
)

var whiteSubImage *ebiten.Image

func solidSource() *ebiten.Image {
	if whiteSubImage == nil {
		img := ebiten.NewImage(3, 3)
		img.Fill(color.White)
		whiteSubImage = img.SubImage(image.Rect(1, 1, 2, 2)).(*ebiten.Image)
	}
	return whiteSubImage
}

// EbitenCanvas draws onto an ebiten image. Sprite images are uploaded once
// and reused across frames.
type EbitenCanvas struct {
	dst    *ebiten.Image
	images map[*Sprite]*ebiten.Image
}

func NewEbitenCanvas() *EbitenCanvas {
	return &EbitenCanvas{images: make(map[*Sprite]*ebiten.Image)}
}

// Target sets the image drawn to by subsequent calls.
func (c *EbitenCanvas) Target(dst *ebiten.Image) {
	c.dst = dst
}

// Forget drops uploaded images, used after catalog reloads.
func (c *EbitenCanvas) Forget() {
	for _, img := range c.images {
		img.Deallocate()
	}
	c.images = make(map[*Sprite]*ebiten.Image)
}

func (c *EbitenCanvas) Size() (int, int) {
	b := c.dst.Bounds()
	return b.Dx(), b.Dy()
}

func (c *EbitenCanvas) Fill(clr color.Color) {
	c.dst.Fill(clr)
}

func (c *EbitenCanvas) FillPolygon(pts []iso.Point, clr color.Color) {
	if len(pts) < 3 {
		return
	}
	vs, is := polygonPath(pts).AppendVerticesAndIndicesForFilling(nil, nil)
	c.drawTriangles(vs, is, clr)
}

func (c *EbitenCanvas) StrokePolygon(pts []iso.Point, width float64, clr color.Color) {
	if len(pts) < 2 {
		return
	}
	vs, is := polygonPath(pts).AppendVerticesAndIndicesForStroke(nil, nil, &vector.StrokeOptions{
		Width:    float32(width),
		LineJoin: vector.LineJoinMiter,
	})
	c.drawTriangles(vs, is, clr)
}

func (c *EbitenCanvas) StrokeLine(a, b iso.Point, width float64, clr color.Color) {
	vector.StrokeLine(c.dst, float32(a.X), float32(a.Y), float32(b.X), float32(b.Y), float32(width), clr, true)
}

func (c *EbitenCanvas) FillCircle(center iso.Point, radius float64, clr color.Color) {
	vector.DrawFilledCircle(c.dst, float32(center.X), float32(center.Y), float32(radius), clr, true)
}

func (c *EbitenCanvas) StrokeRect(r iso.Rect, width float64, clr color.Color) {
	vector.StrokeRect(c.dst, float32(r.X), float32(r.Y), float32(r.W), float32(r.H), float32(width), clr, false)
}

func (c *EbitenCanvas) DrawSprite(s *Sprite, at iso.Point, zoom float64, style SpriteStyle) {
	img, ok := c.images[s]
	if !ok {
		img = ebiten.NewImageFromImage(s.Image)
		c.images[s] = img
	}
	style = style.normalized()

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(zoom, zoom)
	op.GeoM.Translate(at.X, at.Y)
	op.ColorScale.Scale(float32(style.Tint[0]), float32(style.Tint[1]), float32(style.Tint[2]), 1)
	op.ColorScale.ScaleAlpha(float32(style.Alpha))
	if zoom < 1 {
		op.Filter = ebiten.FilterLinear
	} else {
		op.Filter = ebiten.FilterNearest
	}
	c.dst.DrawImage(img, op)
}

func (c *EbitenCanvas) drawTriangles(vs []ebiten.Vertex, is []uint16, clr color.Color) {
	n := color.NRGBAModel.Convert(clr).(color.NRGBA)
	for i := range vs {
		vs[i].SrcX = 1
		vs[i].SrcY = 1
		vs[i].ColorR = float32(n.R) / 255
		vs[i].ColorG = float32(n.G) / 255
		vs[i].ColorB = float32(n.B) / 255
		vs[i].ColorA = float32(n.A) / 255
	}
	op := &ebiten.DrawTrianglesOptions{AntiAlias: true}
	c.dst.DrawTriangles(vs, is, solidSource(), op)
}

func polygonPath(pts []iso.Point) *vector.Path {
	var path vector.Path
	path.MoveTo(float32(pts[0].X), float32(pts[0].Y))
	for _, p := range pts[1:] {
		path.LineTo(float32(p.X), float32(p.Y))
	}
	path.Close()
	return &path
}
