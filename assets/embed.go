// Package assets embeds the editor's default configuration and message
// catalogues.
package assets

import (
	"embed"
	"os"
	"path/filepath"
	"strings"
)

//go:embed editor.yaml locales/*.po
var assetsFS embed.FS

// LoadFile reads an assets-relative file, preferring a copy on disk under
// assets/ so defaults can be edited without rebuilding.
func LoadFile(path string) ([]byte, error) {
	clean := cleanAssetPath(path)
	if data, err := os.ReadFile(filepath.Join("assets", filepath.FromSlash(clean))); err == nil {
		return data, nil
	}
	return assetsFS.ReadFile(clean)
}

// LoadEmbedded reads the compiled-in copy only.
func LoadEmbedded(path string) ([]byte, error) {
	return assetsFS.ReadFile(cleanAssetPath(path))
}

func cleanAssetPath(path string) string {
	if path == "" {
		return ""
	}
	if filepath.IsAbs(path) {
		s := filepath.ToSlash(path)
		if idx := strings.LastIndex(s, "/assets/"); idx >= 0 {
			return s[idx+len("/assets/"):]
		}
		return filepath.Base(path)
	}
	s := filepath.ToSlash(path)
	if after, ok := strings.CutPrefix(s, "assets/"); ok {
		return after
	}
	return s
}
