// Package rooms reads and writes structure and decoration set documents on
// disk.
package rooms

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/milk9111/isoroom/room"
)

// MissingStructureError reports a decoration set whose structure could not
// be found. The room is still usable against an empty structure.
type MissingStructureError struct {
	StructureID string
	Tried       []string
}

func (e *MissingStructureError) Error() string {
	return fmt.Sprintf("rooms: structure %q not found (tried %s)", e.StructureID, strings.Join(e.Tried, ", "))
}

// Document is a room opened from disk together with where it saves to.
type Document struct {
	Room           *room.Room
	StructurePath  string
	DecorationPath string

	// Warning is set when the room opened in a degraded state.
	Warning error
}

// LoadStructure reads a structure document.
func LoadStructure(path string) (room.Structure, error) {
	var s room.Structure
	if err := readJSON(path, &s); err != nil {
		return room.Structure{}, err
	}
	return s, nil
}

// LoadDecorationSet reads a decoration set document.
func LoadDecorationSet(path string) (room.DecorationSet, error) {
	var ds room.DecorationSet
	if err := readJSON(path, &ds); err != nil {
		return room.DecorationSet{}, err
	}
	return ds, nil
}

const (
	StructuresDir     = "structures"
	DecorationSetsDir = "decoration_sets"
)

// StructurePath is where a structure with the given id is saved.
func StructurePath(roomsDir, structureID string) string {
	return filepath.Join(roomsDir, StructuresDir, structureID+".json")
}

// DecorationSetPath is where the decoration set of a structure is saved.
func DecorationSetPath(roomsDir, structureID string) string {
	return filepath.Join(roomsDir, DecorationSetsDir, structureID+"_decoration_set.json")
}

// StructureCandidates lists where the structure for a decoration set at
// setPath may live, in lookup order and without repeats.
func StructureCandidates(roomsDir, setPath, structureID string) []string {
	candidates := []string{
		StructurePath(roomsDir, structureID),
		filepath.Join(filepath.Dir(setPath), structureID+".json"),
	}
	out := candidates[:0]
	seen := make(map[string]bool, len(candidates))
	for _, c := range candidates {
		key := filepath.Clean(c)
		if abs, err := filepath.Abs(c); err == nil {
			key = abs
		}
		if seen[key] {
			continue
		}
		seen[key] = true
		out = append(out, c)
	}
	return out
}

// Open loads either kind of document. A decoration set pulls in its
// structure; a bare structure picks up its saved decoration set from
// roomsDir, or starts a fresh one there.
func Open(path, roomsDir string) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("rooms: read %s: %w", path, err)
	}
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(data, &fields); err != nil {
		return nil, fmt.Errorf("rooms: unmarshal %s: %w", path, err)
	}
	_, hasSetName := fields["decoration_set_name"]
	_, hasStructureID := fields["structure_id"]
	if hasSetName || hasStructureID {
		return openDecorationSet(path, roomsDir, data)
	}

	var s room.Structure
	if err := json.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("rooms: unmarshal %s: %w", path, err)
	}
	return openWithDecorationSet(s, path, roomsDir)
}

// openWithDecorationSet binds s to the decoration set saved for it, so a
// later Save never replaces decorations it did not load. The structure takes
// its id from structurePath, as SaveStructure will.
func openWithDecorationSet(s room.Structure, structurePath, roomsDir string) (*Document, error) {
	s.ID = idFromPath(structurePath)
	setPath := DecorationSetPath(roomsDir, s.ID)
	ds, err := LoadDecorationSet(setPath)
	switch {
	case err == nil:
		ds.StructureID = s.ID
	case errors.Is(err, fs.ErrNotExist):
		ds = room.NewDecorationSet(s)
	default:
		return nil, err
	}

	r, skipped, err := room.FromDocuments(s, ds)
	if err != nil {
		return nil, fmt.Errorf("rooms: %s: %w", structurePath, err)
	}
	logSkipped(setPath, skipped)
	return &Document{Room: r, StructurePath: structurePath, DecorationPath: setPath}, nil
}

func openDecorationSet(path, roomsDir string, data []byte) (*Document, error) {
	var ds room.DecorationSet
	if err := json.Unmarshal(data, &ds); err != nil {
		return nil, fmt.Errorf("rooms: unmarshal %s: %w", path, err)
	}

	candidates := StructureCandidates(roomsDir, path, ds.StructureID)
	var warning error
	var s room.Structure
	structurePath := ""
	for _, c := range candidates {
		loaded, err := LoadStructure(c)
		if err == nil {
			s, structurePath = loaded, c
			break
		}
		if !errors.Is(err, fs.ErrNotExist) {
			return nil, err
		}
	}
	if structurePath == "" {
		warning = &MissingStructureError{StructureID: ds.StructureID, Tried: candidates}
		s = room.NewStructure(ds.StructureID, ds.StructureID)
		structurePath = candidates[0]
	}

	r, skipped, err := room.FromDocuments(s, ds)
	if err != nil {
		return nil, fmt.Errorf("rooms: %s: %w", path, err)
	}
	logSkipped(path, skipped)
	return &Document{Room: r, StructurePath: structurePath, DecorationPath: path, Warning: warning}, nil
}

// SaveStructure writes the room's structure, stamping its id from the file
// name. The decoration set is rebound to that id.
func SaveStructure(path string, r *room.Room) error {
	r.ID = idFromPath(path)
	r.StructureID = r.ID
	return writeJSON(path, r.Structure())
}

// SaveDecorationSet writes the room's decoration set.
func SaveDecorationSet(path string, r *room.Room) error {
	return writeJSON(path, r.DecorationSet())
}

// Save writes both documents of doc.
func (d *Document) Save() error {
	if err := SaveStructure(d.StructurePath, d.Room); err != nil {
		return err
	}
	return SaveDecorationSet(d.DecorationPath, d.Room)
}

func idFromPath(path string) string {
	return strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
}

func logSkipped(path string, skipped int) {
	if skipped > 0 {
		log.Printf("rooms: %s: dropped %d decorations on occupied cells", path, skipped)
	}
}

func readJSON(path string, v any) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("rooms: read %s: %w", path, err)
	}
	if err := json.Unmarshal(data, v); err != nil {
		return fmt.Errorf("rooms: unmarshal %s: %w", path, err)
	}
	return nil
}

func writeJSON(path string, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("rooms: marshal %s: %w", path, err)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("rooms: mkdir %s: %w", filepath.Dir(path), err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("rooms: write %s: %w", path, err)
	}
	return nil
}

// FromTemplate starts a new document from a bundled structure. It saves
// under roomsDir, keeping any decoration set already saved for it there.
func FromTemplate(name, roomsDir string) (*Document, error) {
	s, err := LoadTemplate(name)
	if err != nil {
		return nil, fmt.Errorf("rooms: template %s: %w", name, err)
	}
	doc, err := openWithDecorationSet(s, StructurePath(roomsDir, s.ID), roomsDir)
	if err != nil {
		return nil, fmt.Errorf("rooms: template %s: %w", name, err)
	}
	return doc, nil
}
