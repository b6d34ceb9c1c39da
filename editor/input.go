package editor

import "github.com/milk9111/isoroom/iso"

type Button int

const (
	ButtonNone Button = iota
	ButtonLeft
	ButtonRight
	ButtonMiddle
)

// Mods is a set of held modifier keys.
type Mods uint8

const (
	ModShift Mods = 1 << iota
	ModCtrl
	ModAlt
)

func (m Mods) Has(o Mods) bool { return m&o == o }

type PointerKind int

const (
	PointerDown PointerKind = iota
	PointerUp
	PointerMove
	PointerWheel
)

// PointerEvent is one mouse action in canvas pixels.
type PointerEvent struct {
	Kind   PointerKind
	Button Button
	Pos    iso.Point
	WheelY float64
	Mods   Mods
}

type Key int

const (
	KeyNone Key = iota
	KeyDelete
	KeyEscape
	KeyRotate
	KeyLayer
	KeyGrid
	KeyPreview
	KeyCenterAnchor
	KeyCenterCamera
	KeyModeTiles
	KeyModeWalls
	KeyModeWalkable
	KeyModeLayers
	KeyModeDecorations
)

type KeyEvent struct {
	Key  Key
	Mods Mods
}
