package main

import (
	"image/color"

	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/milk9111/isoroom/editor"
)

// ModeBar is the radio group of editing modes along the top of the canvas.
type ModeBar struct {
	group   *widget.RadioGroup
	buttons []*widget.Button
	active  int
}

func (mb *ModeBar) SetMode(m editor.Mode) {
	idx := int(m)
	if mb == nil || mb.group == nil || idx < 0 || idx >= len(mb.buttons) {
		return
	}
	if idx == mb.active {
		return
	}
	mb.active = idx
	mb.group.SetActive(mb.buttons[idx])
}

func buildModeBar(theme *widget.Theme, fontFace *text.Face, hints *editor.Hints, onModeSelected func(m editor.Mode), initial editor.Mode) (*widget.Container, *ModeBar) {
	bar := widget.NewContainer(
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.MinSize(480, 44),
		),
		widget.ContainerOpts.Layout(
			widget.NewRowLayout(
				widget.RowLayoutOpts.Direction(widget.DirectionHorizontal),
				widget.RowLayoutOpts.Spacing(6),
				widget.RowLayoutOpts.Padding(&widget.Insets{Top: 4, Bottom: 4, Left: 4, Right: 4}),
			),
		),
		widget.ContainerOpts.BackgroundImage(solidNineSlice(color.RGBA{220, 220, 240, 255})),
	)

	var buttons []*widget.Button
	for _, m := range editor.Modes {
		btn := widget.NewButton(
			widget.ButtonOpts.Image(theme.ButtonTheme.Image),
			widget.ButtonOpts.Text(hints.ModeName(m), fontFace, buttonTextColor),
			widget.ButtonOpts.ToggleMode(),
			widget.ButtonOpts.WidgetOpts(
				widget.WidgetOpts.MinSize(88, 36),
			),
		)
		buttons = append(buttons, btn)
		bar.AddChild(btn)
	}

	elements := make([]widget.RadioGroupElement, 0, len(buttons))
	for _, b := range buttons {
		elements = append(elements, b)
	}

	mb := &ModeBar{buttons: buttons, active: -1}
	mb.group = widget.NewRadioGroup(
		widget.RadioGroupOpts.Elements(elements...),
		widget.RadioGroupOpts.ChangedHandler(func(args *widget.RadioGroupChangedEventArgs) {
			if onModeSelected == nil {
				return
			}
			for idx, b := range buttons {
				if args.Active == b {
					mb.active = idx
					onModeSelected(editor.Modes[idx])
					return
				}
			}
		}),
	)

	mb.SetMode(initial)
	return bar, mb
}
