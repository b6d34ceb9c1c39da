package config

import (
	"image/color"
	"os"
	"path/filepath"
	"testing"

	"github.com/milk9111/isoroom/render"
)

func TestDefault(t *testing.T) {
	cfg, err := Default()
	if err != nil {
		t.Fatalf("Default: %v", err)
	}
	if len(cfg.ZoomLevels) != 8 || cfg.ZoomLevels[3] != 1 {
		t.Fatalf("zoom levels = %v", cfg.ZoomLevels)
	}
	if cfg.EdgeThreshold != 15 || !cfg.ScaleEdgeThreshold {
		t.Fatalf("edge threshold = %v scaled %v", cfg.EdgeThreshold, cfg.ScaleEdgeThreshold)
	}
	if err := cfg.Validate(); err != nil {
		t.Fatalf("default config invalid: %v", err)
	}
}

func TestLoadOverridesOnlyGivenKeys(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "custom.yaml")
	data := "edge_threshold: 20\nscale_edge_threshold: false\npalette:\n  tile: \"#102030\"\n"
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.EdgeThreshold != 20 || cfg.ScaleEdgeThreshold {
		t.Fatalf("override not applied: %+v", cfg)
	}
	if !cfg.ShowGrid || cfg.Window.Width != 1440 {
		t.Fatalf("defaults lost: %+v", cfg)
	}

	p := cfg.Palette.Apply(render.DefaultPalette())
	r, g, b, _ := p.Tile.RGBA()
	if r>>8 != 0x10 || g>>8 != 0x20 || b>>8 != 0x30 {
		t.Fatalf("tile colour = %v", p.Tile)
	}
	if p.Wall == nil {
		t.Fatalf("wall colour missing")
	}
}

func TestLoadEmptyPathUsesDefaults(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load(\"\"): %v", err)
	}
	want, err := Default()
	if err != nil {
		t.Fatalf("Default: %v", err)
	}
	if cfg.RoomsDir != want.RoomsDir || cfg.EdgeThreshold != want.EdgeThreshold {
		t.Fatalf("Load(\"\") = %+v, want defaults %+v", cfg, want)
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Fatalf("expected error for a missing file")
	}
}

func TestValidate(t *testing.T) {
	cases := []struct {
		name    string
		levels  []float64
		wantErr bool
	}{
		{name: "ascending", levels: []float64{0.5, 1, 2}},
		{name: "descending", levels: []float64{2, 1}, wantErr: true},
		{name: "zero", levels: []float64{0, 1}, wantErr: true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := Config{ZoomLevels: tc.levels}.Validate()
			if (err != nil) != tc.wantErr {
				t.Fatalf("Validate(%v) = %v, wantErr %v", tc.levels, err, tc.wantErr)
			}
		})
	}
}

func TestYAMLColor(t *testing.T) {
	cases := []struct {
		in      string
		want    color.NRGBA
		wantErr bool
	}{
		{in: "palette:\n  hover: \"#ff8000\"\n", want: color.NRGBA{255, 128, 0, 255}},
		{in: "palette:\n  hover: \"00ff0080\"\n", want: color.NRGBA{0, 255, 0, 128}},
		{in: "palette:\n  hover: \"#fff\"\n", wantErr: true},
	}
	for _, tc := range cases {
		path := filepath.Join(t.TempDir(), "c.yaml")
		if err := os.WriteFile(path, []byte(tc.in), 0o644); err != nil {
			t.Fatalf("write: %v", err)
		}
		cfg, err := LoadSpec(path, Config{})
		if tc.wantErr {
			if err == nil {
				t.Fatalf("LoadSpec(%q) expected error", tc.in)
			}
			continue
		}
		if err != nil {
			t.Fatalf("LoadSpec(%q): %v", tc.in, err)
		}
		if got := cfg.Palette.Hover.Color; got != tc.want {
			t.Fatalf("hover = %v, want %v", got, tc.want)
		}
	}
}
