package main

import (
	"bytes"

	"github.com/ebitenui/ebitenui"
	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/milk9111/isoroom/catalog"
	"github.com/milk9111/isoroom/editor"
	"golang.org/x/image/font/gofont/goregular"
)

// EditorUI bundles the ebitenui tree with the widgets the game keeps in sync.
type EditorUI struct {
	UI      *ebitenui.UI
	Face    text.Face
	ModeBar *ModeBar
	Left    *LeftPanelUI
	Catalog *CatalogPanelUI
}

func newFontFace(size float64) (text.Face, error) {
	s, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		return nil, err
	}
	return &text.GoTextFace{Source: s, Size: size}, nil
}

func BuildEditorUI(
	hints *editor.Hints,
	items []catalog.Item,
	onModeSelected func(m editor.Mode),
	onItemSelected func(item catalog.Item),
	cb panelCallbacks,
	initial panelState,
	initialMode editor.Mode,
) *EditorUI {
	ui := &ebitenui.UI{}

	fontFace, err := newFontFace(14)
	if err != nil {
		panic("Failed to load font: " + err.Error())
	}
	ui.PrimaryTheme = newEditorTheme(&fontFace)

	modeBarContainer, modeBar := buildModeBar(ui.PrimaryTheme, &fontFace, hints, onModeSelected, initialMode)
	leftPanel := buildLeftPanelUI(ui.PrimaryTheme, &fontFace, cb, initial)
	catalogPanel := buildCatalogPanelUI(ui.PrimaryTheme, &fontFace, items, onItemSelected)

	root := widget.NewContainer(widget.ContainerOpts.Layout(widget.NewAnchorLayout()))
	leftPanel.Container.GetWidget().LayoutData = widget.AnchorLayoutData{
		HorizontalPosition: widget.AnchorLayoutPositionStart,
		VerticalPosition:   widget.AnchorLayoutPositionCenter,
		StretchVertical:    true,
	}
	catalogPanel.Container.GetWidget().LayoutData = widget.AnchorLayoutData{
		HorizontalPosition: widget.AnchorLayoutPositionEnd,
		VerticalPosition:   widget.AnchorLayoutPositionCenter,
		StretchVertical:    true,
	}
	modeBarContainer.GetWidget().LayoutData = widget.AnchorLayoutData{
		HorizontalPosition: widget.AnchorLayoutPositionCenter,
		VerticalPosition:   widget.AnchorLayoutPositionStart,
	}
	root.AddChild(leftPanel.Container)
	root.AddChild(catalogPanel.Container)
	root.AddChild(modeBarContainer)
	ui.Container = root

	return &EditorUI{
		UI:      ui,
		Face:    fontFace,
		ModeBar: modeBar,
		Left:    leftPanel,
		Catalog: catalogPanel,
	}
}
