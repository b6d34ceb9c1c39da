package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/gookit/color"
	"github.com/milk9111/isoroom/iso"
	"github.com/milk9111/isoroom/room"
)

func TestDumpRoom(t *testing.T) {
	color.Disable()

	r := room.New("Den", "den")
	r.SetTile(iso.Cell{X: 0, Y: 0}, room.ShapeFull)
	r.SetTile(iso.Cell{X: 1, Y: 0}, room.ShapeNotchTopLeft)
	r.ToggleWall(iso.Cell{X: 0, Y: 0}, room.EdgeNW)
	r.RecomputeWallLayer()
	r.AddDecoration("sofa", "2", iso.Cell{X: 1, Y: 0}, 1, room.LayerMain)

	var buf bytes.Buffer
	dumpRoom(&buf, r)
	out := buf.String()

	for _, want := range []string{
		"Den (den)",
		"origin -1,0  size 3x1",
		"w12",
		"walls: 1",
		"  0,0 nw",
		"decorations: 1",
		"  sofa/2 at 1,0 rot 1 on Main",
	} {
		if !strings.Contains(out, want) {
			t.Fatalf("dump missing %q:\n%s", want, out)
		}
	}
}

func TestDumpEmptyRoom(t *testing.T) {
	color.Disable()
	var buf bytes.Buffer
	dumpRoom(&buf, room.New("Void", "void"))
	if !strings.Contains(buf.String(), "(empty)") {
		t.Fatalf("dump of empty room = %q", buf.String())
	}
}
