package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"image/color"
	"log"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/milk9111/isoroom/catalog"
	"github.com/milk9111/isoroom/config"
	"github.com/milk9111/isoroom/editor"
	"github.com/milk9111/isoroom/iso"
	"github.com/milk9111/isoroom/render"
	"github.com/milk9111/isoroom/room"
	"github.com/milk9111/isoroom/rooms"
	"github.com/milk9111/isoroom/script"
	"golang.design/x/clipboard"
)

const hudLineHeight = 18

// Game is the ebiten application around one editor session.
type Game struct {
	cfg     config.Config
	doc     *rooms.Document
	session *editor.Session
	hints   *editor.Hints

	store   *catalog.Store
	watcher *catalog.Watcher
	canvas  *render.EbitenCanvas
	ui      *EditorUI

	scriptPath string
	clipboard  bool

	lastCursor iso.Point
	title      string
}

func NewGame(cfg config.Config, doc *rooms.Document, session *editor.Session, store *catalog.Store, watcher *catalog.Watcher, scriptPath string, clipboardOK bool) *Game {
	g := &Game{
		cfg:        cfg,
		doc:        doc,
		session:    session,
		hints:      session.Hints,
		store:      store,
		watcher:    watcher,
		canvas:     render.NewEbitenCanvas(),
		scriptPath: scriptPath,
		clipboard:  clipboardOK,
	}

	s := session
	g.ui = BuildEditorUI(
		g.hints,
		g.catalogItems(),
		s.SetMode,
		func(item catalog.Item) { s.HoldItem(item.BaseID, item.VariantID) },
		panelCallbacks{
			onShape:           func(idx int) { s.Structure.Shape = room.Shapes[idx] },
			onPaintLayer:      func(idx int) { s.Structure.Layer = paintLayers[idx] },
			onDecorationLayer: func(idx int) { s.Decorations.SetLayer(decorationLayers[idx]) },
			onToggleGrid:      func() { s.HandleKey(editor.KeyEvent{Key: editor.KeyGrid}) },
			onTogglePreview:   func() { s.HandleKey(editor.KeyEvent{Key: editor.KeyPreview}) },
			onCenterAnchor:    func() { s.HandleKey(editor.KeyEvent{Key: editor.KeyCenterAnchor}) },
			onCenterCamera:    func() { s.HandleKey(editor.KeyEvent{Key: editor.KeyCenterCamera}) },
			onSave:            g.save,
			onRunScript:       g.runScript,
		},
		panelState{
			Shape:           indexOfShape(s.Structure.Shape),
			PaintLayer:      indexOfLayer(paintLayers, s.Structure.Layer),
			DecorationLayer: indexOfLayer(decorationLayers, s.Decorations.Layer),
		},
		s.Mode,
	)

	var missing *rooms.MissingStructureError
	if errors.As(doc.Warning, &missing) {
		s.SetStatus(g.hints.Get("status.missing_structure", missing.StructureID))
	}
	return g
}

func (g *Game) catalogItems() []catalog.Item {
	idx, err := g.store.Index()
	if err != nil {
		log.Printf("editor: load catalog: %v", err)
		return nil
	}
	return idx.Items()
}

func (g *Game) Update() error {
	if g.watcher != nil {
		if n := g.watcher.Drain(g.store); n > 0 {
			g.canvas.Forget()
			g.ui.Catalog.SetItems(g.catalogItems())
			g.session.SetStatus(g.hints.Get("status.reloaded", n))
		}
	}

	g.ui.UI.Update()
	g.handleShortcuts()

	events, pos := pointerEvents(g.lastCursor)
	g.lastCursor = pos
	for _, ev := range events {
		g.session.HandlePointer(ev)
	}
	for _, ev := range keyEvents() {
		g.session.HandleKey(ev)
	}

	g.syncUI()
	g.updateTitle()
	return nil
}

func (g *Game) handleShortcuts() {
	mods := currentMods()
	if !mods.Has(editor.ModCtrl) {
		return
	}
	switch {
	case inpututil.IsKeyJustPressed(ebiten.KeyS):
		g.save()
	case inpututil.IsKeyJustPressed(ebiten.KeyC):
		if mods.Has(editor.ModShift) {
			g.copyJSON("decoration set", g.session.Room.DecorationSet())
		} else {
			g.copyJSON("structure", g.session.Room.Structure())
		}
	case inpututil.IsKeyJustPressed(ebiten.KeyR):
		g.runScript()
	}
}

func (g *Game) save() {
	if err := g.doc.Save(); err != nil {
		g.session.SetStatus(g.hints.Get("status.save_failed", err.Error()))
		return
	}
	g.session.MarkSaved()
	g.session.SetStatus(g.hints.Get("status.saved", g.doc.StructurePath))
}

func (g *Game) copyJSON(what string, v any) {
	if !g.clipboard {
		log.Printf("editor: clipboard unavailable, not copying %s", what)
		return
	}
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		log.Printf("editor: marshal %s: %v", what, err)
		return
	}
	clipboard.Write(clipboard.FmtText, data)
	g.session.SetStatus(g.hints.Get("status.copied", what))
}

func (g *Game) runScript() {
	if g.scriptPath == "" {
		g.session.SetStatus(g.hints.Get("status.script_failed", "no -script given"))
		return
	}
	err := script.RunFile(g.session.Room, g.scriptPath)
	g.session.StructureChanged()
	if err != nil {
		g.session.SetStatus(g.hints.Get("status.script_failed", err.Error()))
		return
	}
	g.session.SetStatus(g.hints.Get("status.script_ok", g.scriptPath))
}

func (g *Game) syncUI() {
	s := g.session
	g.ui.ModeBar.SetMode(s.Mode)
	g.ui.Left.Shapes.Set(indexOfShape(s.Structure.Shape))
	g.ui.Left.PaintLayer.Set(indexOfLayer(paintLayers, s.Structure.Layer))
	g.ui.Left.DecorationLayer.Set(indexOfLayer(decorationLayers, s.Decorations.Layer))
}

func (g *Game) updateTitle() {
	title := fmt.Sprintf("%s - %s", g.cfg.Window.Title, g.session.Room.Name)
	if g.session.Dirty() {
		title += " *"
	}
	if title != g.title {
		g.title = title
		ebiten.SetWindowTitle(title)
	}
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.canvas.Target(screen)
	g.session.Draw(g.canvas)
	g.ui.UI.Draw(screen)
	g.drawHUD(screen)
}

func (g *Game) drawHUD(screen *ebiten.Image) {
	s := g.session
	lines := []string{s.Hint(), s.CameraHint()}
	if hover, ok := s.Hover(); ok {
		lines = append(lines, fmt.Sprintf("%d,%d  %s", hover.X, hover.Y, s.Room.Tile(hover)))
	}
	if status := s.Status(); status != "" {
		lines = append(lines, status)
	}

	vp := s.Camera.Viewport
	op := &text.DrawOptions{}
	op.LineSpacing = hudLineHeight
	op.GeoM.Translate(vp.X+10, vp.Y+vp.H-float64(len(lines)*hudLineHeight)-10)
	op.ColorScale.ScaleWithColor(color.White)
	text.Draw(screen, strings.Join(lines, "\n"), g.ui.Face, op)
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	w := outsideWidth - leftPanelWidth - rightPanelWidth
	if w < 1 {
		w = 1
	}
	g.session.Camera.SetViewport(iso.Rect{X: leftPanelWidth, Y: 0, W: float64(w), H: float64(outsideHeight)})
	return outsideWidth, outsideHeight
}
