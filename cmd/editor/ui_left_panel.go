package main

import (
	"image/color"

	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
)

const (
	leftPanelWidth  = 210
	rightPanelWidth = 240
)

// choiceGroup is a vertical radio group whose selection can also be driven
// from hotkeys.
type choiceGroup struct {
	group   *widget.RadioGroup
	buttons []*widget.Button
	active  int
}

func (c *choiceGroup) Set(idx int) {
	if c == nil || idx < 0 || idx >= len(c.buttons) || idx == c.active {
		return
	}
	c.active = idx
	c.group.SetActive(c.buttons[idx])
}

func addChoiceSection(parent *widget.Container, theme *widget.Theme, fontFace *text.Face, title string, labels []string, initial int, onSelect func(idx int)) *choiceGroup {
	parent.AddChild(newLabel(title, fontFace))

	c := &choiceGroup{active: -1}
	elements := make([]widget.RadioGroupElement, 0, len(labels))
	for _, l := range labels {
		btn := widget.NewButton(
			widget.ButtonOpts.Image(theme.ButtonTheme.Image),
			widget.ButtonOpts.Text(l, fontFace, buttonTextColor),
			widget.ButtonOpts.ToggleMode(),
			widget.ButtonOpts.WidgetOpts(
				widget.WidgetOpts.MinSize(leftPanelWidth-20, 26),
			),
		)
		c.buttons = append(c.buttons, btn)
		elements = append(elements, btn)
		parent.AddChild(btn)
	}
	c.group = widget.NewRadioGroup(
		widget.RadioGroupOpts.Elements(elements...),
		widget.RadioGroupOpts.ChangedHandler(func(args *widget.RadioGroupChangedEventArgs) {
			for idx, b := range c.buttons {
				if args.Active == b {
					c.active = idx
					if onSelect != nil {
						onSelect(idx)
					}
					return
				}
			}
		}),
	)
	c.Set(initial)
	return c
}

func addActionButton(parent *widget.Container, theme *widget.Theme, fontFace *text.Face, label string, onClick func()) *widget.Button {
	btn := widget.NewButton(
		widget.ButtonOpts.Image(theme.ButtonTheme.Image),
		widget.ButtonOpts.Text(label, fontFace, buttonTextColor),
		widget.ButtonOpts.WidgetOpts(
			widget.WidgetOpts.MinSize(leftPanelWidth-20, 26),
		),
		widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) {
			if onClick != nil {
				onClick()
			}
		}),
	)
	parent.AddChild(btn)
	return btn
}

func buildLeftPanelUI(theme *widget.Theme, fontFace *text.Face, cb panelCallbacks, initial panelState) *LeftPanelUI {
	panel := widget.NewContainer(
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.MinSize(leftPanelWidth, 400),
		),
		widget.ContainerOpts.BackgroundImage(solidNineSlice(color.RGBA{40, 40, 40, 255})),
		widget.ContainerOpts.Layout(
			widget.NewRowLayout(
				widget.RowLayoutOpts.Direction(widget.DirectionVertical),
				widget.RowLayoutOpts.Spacing(6),
				widget.RowLayoutOpts.Padding(&widget.Insets{Top: 56, Left: 10, Right: 10, Bottom: 10}),
			),
		),
	)

	shapes := addChoiceSection(panel, theme, fontFace, "Shape", shapeLabels(), initial.Shape, cb.onShape)
	paint := addChoiceSection(panel, theme, fontFace, "Paint layer", layerLabels(paintLayers), initial.PaintLayer, cb.onPaintLayer)
	deco := addChoiceSection(panel, theme, fontFace, "Decoration layer", layerLabels(decorationLayers), initial.DecorationLayer, cb.onDecorationLayer)

	panel.AddChild(newLabel("View", fontFace))
	addActionButton(panel, theme, fontFace, "Toggle grid", cb.onToggleGrid)
	addActionButton(panel, theme, fontFace, "Toggle preview", cb.onTogglePreview)
	addActionButton(panel, theme, fontFace, "Centre anchor", cb.onCenterAnchor)
	addActionButton(panel, theme, fontFace, "Centre camera", cb.onCenterCamera)

	panel.AddChild(newLabel("File", fontFace))
	addActionButton(panel, theme, fontFace, "Save", cb.onSave)
	addActionButton(panel, theme, fontFace, "Run script", cb.onRunScript)

	return &LeftPanelUI{
		Container:       panel,
		Shapes:          shapes,
		PaintLayer:      paint,
		DecorationLayer: deco,
	}
}
