package catalog

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// Index is the browsable list of placeable items in catalog.json.
type Index struct {
	Categories []Category `json:"categories"`
}

type Category struct {
	Name          string        `json:"name"`
	Subcategories []Subcategory `json:"subcategories"`
}

type Subcategory struct {
	Name  string `json:"name"`
	Items []Item `json:"items"`
}

// Item is one placeable entry: a furni base id and a variant.
type Item struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	BaseID    string `json:"base_id"`
	VariantID string `json:"variant_id"`
	IconPath  string `json:"icon_path,omitempty"`
}

func (it Item) Label() string {
	if it.Name != "" {
		return it.Name
	}
	return fmt.Sprintf("%s (%s)", it.BaseID, it.VariantID)
}

// Items flattens every category into one list in file order.
func (idx *Index) Items() []Item {
	var items []Item
	for _, c := range idx.Categories {
		for _, s := range c.Subcategories {
			items = append(items, s.Items...)
		}
	}
	return items
}

func IndexPath(root string) string {
	return filepath.Join(root, "catalog.json")
}

// LoadIndex reads catalog.json from root.
func LoadIndex(root string) (*Index, error) {
	path := IndexPath(root)
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("catalog: read %s: %w", path, err)
	}
	var idx Index
	if err := json.Unmarshal(data, &idx); err != nil {
		return nil, fmt.Errorf("catalog: unmarshal %s: %w", path, err)
	}
	return &idx, nil
}
