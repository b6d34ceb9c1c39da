package room

import (
	"fmt"
	"image/color"
)

// Layer is a render band. Lower layers draw first.
type Layer int

const (
	LayerWall Layer = iota
	LayerFloor
	LayerBackground
	LayerMain
	LayerForeground
)

const DefaultLayer = LayerMain

var Layers = []Layer{LayerWall, LayerFloor, LayerBackground, LayerMain, LayerForeground}

// PaintableLayers are the layers a tile can be painted with by hand.
var PaintableLayers = []Layer{LayerBackground, LayerMain, LayerForeground}

// DecorationLayers are the layers a decoration can be assigned to.
var DecorationLayers = []Layer{LayerFloor, LayerBackground, LayerMain, LayerForeground}

type layerInfo struct {
	name  string
	char  byte
	color color.NRGBA
}

var layerTable = map[Layer]layerInfo{
	LayerWall:       {name: "Wall", char: 'w', color: color.NRGBA{150, 100, 255, 77}},
	LayerFloor:      {name: "Floor", char: 0, color: color.NRGBA{255, 255, 100, 128}},
	LayerBackground: {name: "Background", char: 'b', color: color.NRGBA{100, 150, 255, 128}},
	LayerMain:       {name: "Main", char: 'm', color: color.NRGBA{100, 255, 150, 128}},
	LayerForeground: {name: "Foreground", char: 'f', color: color.NRGBA{255, 150, 100, 128}},
}

func (l Layer) Valid() bool {
	_, ok := layerTable[l]
	return ok
}

func (l Layer) String() string {
	if info, ok := layerTable[l]; ok {
		return info.name
	}
	return fmt.Sprintf("Layer(%d)", int(l))
}

// Color is the overlay tint for the layer.
func (l Layer) Color() color.NRGBA {
	return layerTable[l].color
}

// Paintable reports whether tiles may be painted with this layer by hand.
func (l Layer) Paintable() bool {
	return l == LayerBackground || l == LayerMain || l == LayerForeground
}

// Char is the structure row character for the layer. Wall and Floor are
// never saved and encode as unset.
func (l Layer) Char() byte {
	if !l.Paintable() {
		return 'x'
	}
	return layerTable[l].char
}

// LayerFromChar parses a structure row character. Only paintable layers are
// accepted; everything else reports false.
func LayerFromChar(b byte) (Layer, bool) {
	switch b {
	case 'b':
		return LayerBackground, true
	case 'm':
		return LayerMain, true
	case 'f':
		return LayerForeground, true
	default:
		return 0, false
	}
}

// NextDecorationLayer cycles through the decoration layers.
func (l Layer) NextDecorationLayer() Layer {
	for i, dl := range DecorationLayers {
		if dl == l {
			return DecorationLayers[(i+1)%len(DecorationLayers)]
		}
	}
	return DefaultLayer
}
