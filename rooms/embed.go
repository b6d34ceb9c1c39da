package rooms

import (
	"embed"
	"encoding/json"
	"fmt"
	"io/fs"

	"github.com/milk9111/isoroom/room"
)

//go:embed templates/*.json
var TemplatesFS embed.FS

// LoadTemplate reads a structure shipped with the editor.
func LoadTemplate(name string) (room.Structure, error) {
	data, err := fs.ReadFile(TemplatesFS, "templates/"+name+".json")
	if err != nil {
		return room.Structure{}, fmt.Errorf("read template: %w", err)
	}
	var s room.Structure
	if err := json.Unmarshal(data, &s); err != nil {
		return room.Structure{}, fmt.Errorf("unmarshal template: %w", err)
	}
	return s, nil
}
