package main

import (
	ebuiinput "github.com/ebitenui/ebitenui/input"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/milk9111/isoroom/editor"
	"github.com/milk9111/isoroom/iso"
)

var mouseButtons = []struct {
	ebiten ebiten.MouseButton
	editor editor.Button
}{
	{ebiten.MouseButtonLeft, editor.ButtonLeft},
	{ebiten.MouseButtonRight, editor.ButtonRight},
	{ebiten.MouseButtonMiddle, editor.ButtonMiddle},
}

var keyBindings = map[ebiten.Key]editor.Key{
	ebiten.KeyDelete:    editor.KeyDelete,
	ebiten.KeyBackspace: editor.KeyDelete,
	ebiten.KeyEscape:    editor.KeyEscape,
	ebiten.KeyR:         editor.KeyRotate,
	ebiten.KeyL:         editor.KeyLayer,
	ebiten.KeyG:         editor.KeyGrid,
	ebiten.KeyP:         editor.KeyPreview,
	ebiten.KeyA:         editor.KeyCenterAnchor,
	ebiten.KeyHome:      editor.KeyCenterCamera,
	ebiten.Key1:         editor.KeyModeTiles,
	ebiten.Key2:         editor.KeyModeWalls,
	ebiten.Key3:         editor.KeyModeWalkable,
	ebiten.Key4:         editor.KeyModeLayers,
	ebiten.Key5:         editor.KeyModeDecorations,
}

func currentMods() editor.Mods {
	var m editor.Mods
	if ebiten.IsKeyPressed(ebiten.KeyShift) {
		m |= editor.ModShift
	}
	if ebiten.IsKeyPressed(ebiten.KeyControl) || ebiten.IsKeyPressed(ebiten.KeyMeta) {
		m |= editor.ModCtrl
	}
	if ebiten.IsKeyPressed(ebiten.KeyAlt) {
		m |= editor.ModAlt
	}
	return m
}

// pointerEvents translates this frame's mouse state. Presses over the UI
// panels are left to ebitenui; releases and motion always reach the session
// so drags that leave the canvas still end.
func pointerEvents(last iso.Point) ([]editor.PointerEvent, iso.Point) {
	x, y := ebiten.CursorPosition()
	pos := iso.Pt(float64(x), float64(y))
	mods := currentMods()
	overUI := ebuiinput.UIHovered

	var events []editor.PointerEvent
	if pos != last {
		events = append(events, editor.PointerEvent{Kind: editor.PointerMove, Pos: pos, Mods: mods})
	}
	for _, b := range mouseButtons {
		if inpututil.IsMouseButtonJustPressed(b.ebiten) && !overUI {
			events = append(events, editor.PointerEvent{Kind: editor.PointerDown, Button: b.editor, Pos: pos, Mods: mods})
		}
		if inpututil.IsMouseButtonJustReleased(b.ebiten) {
			events = append(events, editor.PointerEvent{Kind: editor.PointerUp, Button: b.editor, Pos: pos, Mods: mods})
		}
	}
	if _, wy := ebiten.Wheel(); wy != 0 && !overUI {
		events = append(events, editor.PointerEvent{Kind: editor.PointerWheel, Pos: pos, WheelY: wy, Mods: mods})
	}
	return events, pos
}

// keyEvents returns editor keys pressed this frame. Ctrl chords are handled
// by the game itself.
func keyEvents() []editor.KeyEvent {
	mods := currentMods()
	if mods.Has(editor.ModCtrl) {
		return nil
	}
	var events []editor.KeyEvent
	for _, k := range inpututil.AppendJustPressedKeys(nil) {
		if ek, ok := keyBindings[k]; ok {
			events = append(events, editor.KeyEvent{Key: ek, Mods: mods})
		}
	}
	return events
}
