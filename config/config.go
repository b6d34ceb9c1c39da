// Package config loads editor settings from YAML.
package config

import (
	"fmt"
	"image/color"
	"os"
	"strconv"
	"strings"

	"github.com/milk9111/isoroom/assets"
	"github.com/milk9111/isoroom/render"
	"gopkg.in/yaml.v3"
)

const DefaultFile = "editor.yaml"

type Config struct {
	Window             WindowConfig  `yaml:"window"`
	AssetsRoot         string        `yaml:"assets_root"`
	RoomsDir           string        `yaml:"rooms_dir"`
	ZoomLevels         []float64     `yaml:"zoom_levels"`
	EdgeThreshold      float64       `yaml:"edge_threshold"`
	ScaleEdgeThreshold bool          `yaml:"scale_edge_threshold"`
	ShowGrid           bool          `yaml:"show_grid"`
	HotReload          bool          `yaml:"hot_reload"`
	Language           string        `yaml:"language"`
	Palette            PaletteConfig `yaml:"palette"`
}

type WindowConfig struct {
	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`
	Title  string `yaml:"title"`
}

// PaletteConfig overrides individual renderer colours.
type PaletteConfig struct {
	EditorBackground *YAMLColor `yaml:"editor_background"`
	Grid             *YAMLColor `yaml:"grid"`
	Tile             *YAMLColor `yaml:"tile"`
	TileBorder       *YAMLColor `yaml:"tile_border"`
	Wall             *YAMLColor `yaml:"wall"`
	WallBorder       *YAMLColor `yaml:"wall_border"`
	Hover            *YAMLColor `yaml:"hover"`
	Selection        *YAMLColor `yaml:"selection"`
	Anchor           *YAMLColor `yaml:"anchor"`
}

// Apply returns base with every configured colour replaced.
func (p PaletteConfig) Apply(base render.Palette) render.Palette {
	set := func(dst *color.Color, c *YAMLColor) {
		if c != nil && c.Color != nil {
			*dst = c.Color
		}
	}
	set(&base.EditorBackground, p.EditorBackground)
	set(&base.Grid, p.Grid)
	set(&base.Tile, p.Tile)
	set(&base.TileBorder, p.TileBorder)
	set(&base.Wall, p.Wall)
	set(&base.WallBorder, p.WallBorder)
	set(&base.Hover, p.Hover)
	set(&base.Selection, p.Selection)
	set(&base.Anchor, p.Anchor)
	return base
}

// LoadSpec decodes a YAML file over spec, so keys missing from the file keep
// the values already in spec. A path that does not exist on disk is looked up
// among the embedded assets.
func LoadSpec[T any](filename string, spec T) (T, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		data, err = assets.LoadFile(filename)
		if err != nil {
			return spec, fmt.Errorf("config: load %s: %w", filename, err)
		}
	}

	if err := yaml.Unmarshal(data, &spec); err != nil {
		return spec, fmt.Errorf("config: unmarshal %s: %w", filename, err)
	}

	return spec, nil
}

// Default returns the compiled-in configuration.
func Default() (Config, error) {
	data, err := assets.LoadEmbedded(DefaultFile)
	if err != nil {
		return Config{}, fmt.Errorf("config: embedded %s: %w", DefaultFile, err)
	}
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("config: unmarshal embedded %s: %w", DefaultFile, err)
	}
	return cfg, nil
}

// Load reads the file at path over the defaults. An empty path returns the
// defaults.
func Load(path string) (Config, error) {
	defaults, err := Default()
	if err != nil {
		return Config{}, err
	}
	if path == "" {
		return defaults, defaults.Validate()
	}
	cfg, err := LoadSpec(path, defaults)
	if err != nil {
		return defaults, err
	}
	return cfg, cfg.Validate()
}

// Validate checks the zoom ladder is ascending and positive.
func (c Config) Validate() error {
	for i, z := range c.ZoomLevels {
		if z <= 0 {
			return fmt.Errorf("config: zoom level %v must be positive", z)
		}
		if i > 0 && z <= c.ZoomLevels[i-1] {
			return fmt.Errorf("config: zoom levels must ascend, got %v after %v", z, c.ZoomLevels[i-1])
		}
	}
	if c.EdgeThreshold < 0 {
		return fmt.Errorf("config: edge threshold %v is negative", c.EdgeThreshold)
	}
	return nil
}

type YAMLColor struct {
	color.Color
}

func (c *YAMLColor) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind != yaml.ScalarNode {
		return fmt.Errorf("color must be a string")
	}

	s := strings.TrimPrefix(value.Value, "#")

	if len(s) != 6 && len(s) != 8 {
		return fmt.Errorf("invalid color format: %s", value.Value)
	}

	parse := func(start int) (uint8, error) {
		v, err := strconv.ParseUint(s[start:start+2], 16, 8)
		return uint8(v), err
	}

	r, err := parse(0)
	if err != nil {
		return err
	}
	g, err := parse(2)
	if err != nil {
		return err
	}
	b, err := parse(4)
	if err != nil {
		return err
	}

	a := uint8(255)
	if len(s) == 8 {
		a, err = parse(6)
		if err != nil {
			return err
		}
	}

	c.Color = color.NRGBA{R: r, G: g, B: b, A: a}
	return nil
}
