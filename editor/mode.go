package editor

// Mode selects which tool receives canvas input.
type Mode int

const (
	ModeTiles Mode = iota
	ModeWalls
	ModeWalkable
	ModeLayers
	ModeDecorations
)

var Modes = []Mode{ModeTiles, ModeWalls, ModeWalkable, ModeLayers, ModeDecorations}

func (m Mode) String() string {
	switch m {
	case ModeTiles:
		return "tiles"
	case ModeWalls:
		return "walls"
	case ModeWalkable:
		return "walkable"
	case ModeLayers:
		return "layers"
	case ModeDecorations:
		return "decorations"
	default:
		return "unknown"
	}
}

// Structural reports whether the mode edits the floor plan rather than
// decorations.
func (m Mode) Structural() bool {
	return m != ModeDecorations
}

func modeForKey(k Key) (Mode, bool) {
	switch k {
	case KeyModeTiles:
		return ModeTiles, true
	case KeyModeWalls:
		return ModeWalls, true
	case KeyModeWalkable:
		return ModeWalkable, true
	case KeyModeLayers:
		return ModeLayers, true
	case KeyModeDecorations:
		return ModeDecorations, true
	}
	return 0, false
}
