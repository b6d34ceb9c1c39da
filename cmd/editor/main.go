package main

import (
	"flag"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/isoroom/camera"
	"github.com/milk9111/isoroom/catalog"
	"github.com/milk9111/isoroom/config"
	"github.com/milk9111/isoroom/editor"
	"github.com/milk9111/isoroom/iso"
	"github.com/milk9111/isoroom/render"
	"github.com/milk9111/isoroom/rooms"
	"golang.design/x/clipboard"
)

func main() {
	configPath := flag.String("config", "", "editor settings YAML (defaults to the built-in editor.yaml)")
	roomPath := flag.String("room", "", "structure or decoration set JSON to open")
	templateName := flag.String("template", "starter", "bundled structure to start from when -room is empty")
	assetsRoot := flag.String("assets", "", "furni asset root, overrides assets_root")
	roomsDir := flag.String("rooms", "", "rooms directory, overrides rooms_dir")
	scriptPath := flag.String("script", "", "tengo script applied with Ctrl+R")
	baseMonitor := flag.Bool("m", false, "use base monitor instead of primary (for multi-monitor setups)")
	flag.Parse()

	log.Println("editor starting")

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	if *assetsRoot != "" {
		cfg.AssetsRoot = *assetsRoot
	}
	if *roomsDir != "" {
		cfg.RoomsDir = *roomsDir
	}

	hints, err := editor.LoadHints(cfg.Language)
	if err != nil {
		log.Fatalf("Failed to load messages: %v", err)
	}

	var doc *rooms.Document
	if *roomPath != "" {
		doc, err = rooms.Open(*roomPath, cfg.RoomsDir)
	} else {
		doc, err = rooms.FromTemplate(*templateName, cfg.RoomsDir)
	}
	if err != nil {
		log.Fatalf("Failed to open room: %v", err)
	}
	if doc.Warning != nil {
		log.Printf("editor: %v", doc.Warning)
	}

	store := catalog.NewStore(cfg.AssetsRoot)
	var watcher *catalog.Watcher
	if cfg.HotReload {
		watcher, err = catalog.NewWatcher(cfg.AssetsRoot)
		if err != nil {
			log.Printf("editor: watch %s: %v", cfg.AssetsRoot, err)
			watcher = nil
		} else {
			defer watcher.Close()
		}
	}

	clipboardOK := true
	if err := clipboard.Init(); err != nil {
		log.Printf("editor: clipboard: %v", err)
		clipboardOK = false
	}

	rd := render.NewRenderer(store)
	rd.Palette = cfg.Palette.Apply(rd.Palette)
	cam := camera.New(cfg.ZoomLevels, iso.Rect{
		X: leftPanelWidth,
		W: float64(cfg.Window.Width - leftPanelWidth - rightPanelWidth),
		H: float64(cfg.Window.Height),
	})
	session := editor.NewSession(doc.Room, cam, rd, hints, editor.Settings{
		EdgeThreshold:      cfg.EdgeThreshold,
		ScaleEdgeThreshold: cfg.ScaleEdgeThreshold,
		ShowGrid:           cfg.ShowGrid,
	})

	if *baseMonitor {
		ebiten.SetMonitor(ebiten.AppendMonitors(nil)[0])
	}
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetWindowSize(cfg.Window.Width, cfg.Window.Height)
	ebiten.SetWindowTitle(cfg.Window.Title)

	game := NewGame(cfg, doc, session, store, watcher, *scriptPath, clipboardOK)
	if err := ebiten.RunGame(game); err != nil {
		log.Fatal(err)
	}
}
