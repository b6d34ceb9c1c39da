package main

import (
	"github.com/ebitenui/ebitenui/widget"
	"github.com/milk9111/isoroom/room"
)

var (
	paintLayers      = room.PaintableLayers
	decorationLayers = room.DecorationLayers
)

// panelCallbacks are the actions wired to the left panel's widgets.
type panelCallbacks struct {
	onShape           func(idx int)
	onPaintLayer      func(idx int)
	onDecorationLayer func(idx int)
	onToggleGrid      func()
	onTogglePreview   func()
	onCenterAnchor    func()
	onCenterCamera    func()
	onSave            func()
	onRunScript       func()
}

// panelState is the initial selection of each radio group.
type panelState struct {
	Shape           int
	PaintLayer      int
	DecorationLayer int
}

// LeftPanelUI is the composed left-panel widget and its radio groups.
type LeftPanelUI struct {
	Container       *widget.Container
	Shapes          *choiceGroup
	PaintLayer      *choiceGroup
	DecorationLayer *choiceGroup
}

func shapeLabels() []string {
	labels := make([]string, 0, len(room.Shapes))
	for _, s := range room.Shapes {
		labels = append(labels, s.String())
	}
	return labels
}

func layerLabels(layers []room.Layer) []string {
	labels := make([]string, 0, len(layers))
	for _, l := range layers {
		labels = append(labels, l.String())
	}
	return labels
}

func indexOfShape(s room.Shape) int {
	for i, v := range room.Shapes {
		if v == s {
			return i
		}
	}
	return 0
}

func indexOfLayer(layers []room.Layer, l room.Layer) int {
	for i, v := range layers {
		if v == l {
			return i
		}
	}
	return 0
}
