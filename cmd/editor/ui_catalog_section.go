package main

import (
	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/milk9111/isoroom/catalog"
)

// CatalogPanelUI lists placeable items from catalog.json.
type CatalogPanelUI struct {
	Container *widget.Container
	list      *widget.List
}

func (c *CatalogPanelUI) SetItems(items []catalog.Item) {
	if c == nil || c.list == nil {
		return
	}
	c.list.SetEntries(itemEntries(items))
}

func itemEntries(items []catalog.Item) []any {
	entries := make([]any, 0, len(items))
	for _, it := range items {
		entries = append(entries, it)
	}
	return entries
}

func buildCatalogPanelUI(theme *widget.Theme, fontFace *text.Face, items []catalog.Item, onItemSelected func(item catalog.Item)) *CatalogPanelUI {
	panel := widget.NewContainer(
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.MinSize(rightPanelWidth, 400),
		),
		widget.ContainerOpts.BackgroundImage(solidNineSlice(panelBackground)),
		widget.ContainerOpts.Layout(
			widget.NewRowLayout(
				widget.RowLayoutOpts.Direction(widget.DirectionVertical),
				widget.RowLayoutOpts.Spacing(8),
				widget.RowLayoutOpts.Padding(&widget.Insets{Top: 56, Left: 10, Right: 10, Bottom: 10}),
			),
		),
	)
	panel.AddChild(newLabel("Catalog", fontFace))

	list := widget.NewList(
		widget.ListOpts.Entries(itemEntries(items)),
		widget.ListOpts.EntryLabelFunc(func(e any) string {
			if it, ok := e.(catalog.Item); ok {
				return it.Label()
			}
			return ""
		}),
		widget.ListOpts.EntrySelectedHandler(func(args *widget.ListEntrySelectedEventArgs) {
			if onItemSelected == nil {
				return
			}
			if it, ok := args.Entry.(catalog.Item); ok {
				onItemSelected(it)
			}
		}),
	)
	list.GetWidget().MinWidth = rightPanelWidth - 20
	list.GetWidget().MinHeight = 600
	panel.AddChild(list)

	return &CatalogPanelUI{Container: panel, list: list}
}
