package render

import (
	"image/color"

	"golang.org/x/image/colornames"
)

// Palette holds the colours used for every element the renderer draws.
type Palette struct {
	EditorBackground  color.Color
	PreviewBackground color.Color
	Grid              color.Color
	Origin            color.Color
	Tile              color.Color
	TileBorder        color.Color
	Wall              color.Color
	WallBorder        color.Color
	Walkable          color.Color
	NotWalkable       color.Color
	Hover             color.Color
	Selection         color.Color
	Anchor            color.Color
	PreviewOutline    color.Color
	MissingArt        color.Color
}

func DefaultPalette() Palette {
	return Palette{
		EditorBackground:  color.RGBA{45, 55, 65, 255},
		PreviewBackground: color.Black,
		Grid:              color.RGBA{60, 70, 80, 255},
		Origin:            color.RGBA{100, 120, 140, 255},
		Tile:              color.RGBA{180, 140, 100, 255},
		TileBorder:        color.RGBA{100, 100, 100, 255},
		Wall:              color.RGBA{200, 120, 50, 255},
		WallBorder:        color.RGBA{140, 80, 30, 255},
		Walkable:          color.NRGBA{50, 200, 50, 128},
		NotWalkable:       color.NRGBA{200, 50, 50, 128},
		Hover:             colornames.Yellow,
		Selection:         colornames.Deepskyblue,
		Anchor:            color.RGBA{255, 100, 100, 255},
		PreviewOutline:    color.RGBA{220, 220, 220, 255},
		MissingArt:        colornames.Magenta,
	}
}
