package main

import (
	"fmt"
	"io"

	"github.com/gookit/color"
	"github.com/milk9111/isoroom/iso"
	"github.com/milk9111/isoroom/room"
)

var (
	colorVoid    = color.Style{color.FgGray}
	colorHeading = color.Style{color.FgCyan, color.OpBold}
	colorWall    = color.Style{color.FgMagenta, color.OpBold}
	colorDecor   = color.Style{color.FgGreen}
	layerStyles  = map[room.Layer]color.Style{
		room.LayerWall:       {color.FgMagenta},
		room.LayerBackground: {color.FgBlue},
		room.LayerMain:       {color.FgGreen},
		room.LayerForeground: {color.FgYellow},
	}
)

// dumpRoom prints the room's grid, walls and decorations. Tiles show their
// shape code coloured by layer; walkable tiles are bold. Wall-layer cells
// without a tile show as 'w'.
func dumpRoom(w io.Writer, r *room.Room) {
	fmt.Fprintln(w, colorHeading.Sprintf("%s (%s)", r.Name, r.ID))
	if r.DecorationSetName != "" {
		fmt.Fprintln(w, colorHeading.Sprintf("decorations: %s", r.DecorationSetName))
	}

	lo, hi, ok := r.Bounds()
	if !ok {
		fmt.Fprintln(w, colorVoid.Sprint("(empty)"))
	} else {
		fmt.Fprintf(w, "origin %d,%d  size %dx%d\n", lo.X, lo.Y, hi.X-lo.X+1, hi.Y-lo.Y+1)
		for y := lo.Y; y <= hi.Y; y++ {
			for x := lo.X; x <= hi.X; x++ {
				fmt.Fprint(w, cellGlyph(r, iso.Cell{X: x, Y: y}))
			}
			fmt.Fprintln(w)
		}
	}

	walls := r.Walls()
	fmt.Fprintln(w, colorHeading.Sprintf("walls: %d", len(walls)))
	for _, wall := range walls {
		fmt.Fprintln(w, colorWall.Sprintf("  %d,%d %s", wall.Cell.X, wall.Cell.Y, wall.Edge))
	}

	decos := r.DecorationsSortedForRender()
	fmt.Fprintln(w, colorHeading.Sprintf("decorations: %d", len(decos)))
	for _, d := range decos {
		fmt.Fprintln(w, colorDecor.Sprintf("  %s/%s at %d,%d rot %d on %s", d.BaseID, d.VariantID, d.Cell.X, d.Cell.Y, d.Rotation, d.Layer))
	}
}

func cellGlyph(r *room.Room, c iso.Cell) string {
	l, hasLayer := r.LayerAt(c)
	shape := r.Tile(c)
	if shape == room.ShapeNone {
		if hasLayer && l == room.LayerWall {
			return layerStyles[room.LayerWall].Sprint("w")
		}
		return colorVoid.Sprint(".")
	}
	style := append(color.Style{}, layerStyles[l]...)
	if r.Walkable(c) {
		style = append(style, color.OpBold)
	}
	return style.Sprint(string(shape.Code()))
}
