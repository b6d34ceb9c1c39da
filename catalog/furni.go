// Package catalog loads furni records, their rendered sprites and the item
// index from an assets directory.
package catalog

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// Furni is the data record stored at furnis/<id>/furni.json.
type Furni struct {
	ID       string             `json:"id"`
	Name     string             `json:"name,omitempty"`
	Variants map[string]Variant `json:"variants"`
}

type Variant struct {
	Renders map[string]Render `json:"renders"`
}

// Render points at one pre-rendered direction of a variant.
type Render struct {
	Path   string `json:"path"`
	Offset Offset `json:"offset"`
}

type Offset struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Render returns the render entry for a variant and sprite direction.
func (f *Furni) Render(variantID string, direction int) (Render, bool) {
	v, ok := f.Variants[variantID]
	if !ok {
		return Render{}, false
	}
	r, ok := v.Renders[fmt.Sprint(direction)]
	return r, ok
}

// FurniPath is the record location for a base id under root.
func FurniPath(root, baseID string) string {
	return filepath.Join(root, "furnis", baseID, "furni.json")
}

// LoadFurni reads and decodes one furni record.
func LoadFurni(root, baseID string) (*Furni, error) {
	path := FurniPath(root, baseID)
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("catalog: read %s: %w", path, err)
	}
	var f Furni
	if err := json.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("catalog: unmarshal %s: %w", path, err)
	}
	if f.ID == "" {
		f.ID = baseID
	}
	return &f, nil
}
