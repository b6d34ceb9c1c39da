package render

import (
	"image/color"

	"github.com/milk9111/isoroom/iso"
)

// Canvas is the drawing surface the renderer targets. EbitenCanvas draws to
// the screen; Recorder captures calls for tests and tools.
type Canvas interface {
	Size() (w, h int)
	Fill(c color.Color)
	FillPolygon(pts []iso.Point, c color.Color)
	StrokePolygon(pts []iso.Point, width float64, c color.Color)
	StrokeLine(a, b iso.Point, width float64, c color.Color)
	FillCircle(center iso.Point, radius float64, c color.Color)
	StrokeRect(r iso.Rect, width float64, c color.Color)
	DrawSprite(s *Sprite, at iso.Point, zoom float64, style SpriteStyle)
}

// SpriteStyle tints and fades a sprite. The zero value draws it unchanged.
type SpriteStyle struct {
	Alpha float64
	Tint  [3]float64
}

// Opaque is the style for a normally placed sprite.
var Opaque = SpriteStyle{Alpha: 1, Tint: [3]float64{1, 1, 1}}

func (s SpriteStyle) normalized() SpriteStyle {
	if s == (SpriteStyle{}) {
		return Opaque
	}
	return s
}
