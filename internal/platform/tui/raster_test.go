package tui

import (
	"strings"
	"testing"

	"github.com/vovakirdan/shmup/internal/assets"
	"github.com/vovakirdan/shmup/internal/core"
	"github.com/vovakirdan/shmup/internal/hw"
)

func shipAt(t *testing.T, x, y int) *hw.ObjectController {
	t.Helper()
	c := hw.NewObjectController()
	id, err := c.Object(assets.MustTag(assets.TagSpaceShip).Sprite(0))
	if err != nil {
		t.Fatalf("Object() error = %v", err)
	}
	c.SetPosition(id, core.Vec2{X: x, Y: y}).Show(id)
	c.Commit()
	return c
}

func TestRasterizerDrawsShip(t *testing.T) {
	r := NewRasterizer()
	s := core.NewScreen(GridW, GridH)
	r.Draw(s, shipAt(t, 0, 0).Visible(), 0, 0)

	if got := s.GetCell(2, 0); got != (core.Cell{Rune: '█', Color: core.ColorCyan}) {
		t.Errorf("cell (2,0) = %+v, expected solid cyan", got)
	}
	if got := s.GetCell(1, 0); got != (core.Cell{Rune: '▒', Color: core.ColorWhite}) {
		t.Errorf("cell (1,0) = %+v, expected light white", got)
	}
	if got := s.Get(0, 0); got != ' ' {
		t.Errorf("cell (0,0) = %q, expected blank", got)
	}

	// 16 px wide and tall: columns 0-5 and rows 0-1 only.
	for y := 0; y < GridH; y++ {
		for x := 0; x < GridW; x++ {
			if (x >= 6 || y >= 2) && s.Get(x, y) != ' ' {
				t.Fatalf("cell (%d,%d) = %q outside the sprite", x, y, s.Get(x, y))
			}
		}
	}
}

func TestRasterizerCachesMasks(t *testing.T) {
	r := NewRasterizer()
	s := core.NewScreen(GridW, GridH)
	objects := shipAt(t, 30, 60).Visible()

	r.Draw(s, objects, 0, 0)
	r.Draw(s, objects, 0, 0)

	if r.Cached() != 1 {
		t.Errorf("Cached() = %d, expected 1", r.Cached())
	}
}

func TestRasterizerClipsAndOffsets(t *testing.T) {
	r := NewRasterizer()
	s := core.NewScreen(GridW, GridH+1)

	// Partly off the right edge.
	r.Draw(s, shipAt(t, hw.Width-4, 0).Visible(), 0, 1)

	if s.Row(0) != strings.Repeat(" ", GridW) {
		t.Errorf("row 0 = %q, expected untouched", s.Row(0))
	}
	if s.Get(GridW-1, 1) == ' ' {
		t.Error("last column empty, expected the visible part of the ship")
	}
}

func TestRasterizerUnknownSprite(t *testing.T) {
	r := NewRasterizer()
	s := core.NewScreen(GridW, GridH)
	r.Draw(s, []hw.Object{{ID: 0, Attributes: hw.Attributes{Sprite: 999, Visible: true}}}, 0, 0)

	for y := 0; y < GridH; y++ {
		if s.Row(y) != strings.Repeat(" ", GridW) {
			t.Fatalf("row %d = %q, expected blank", y, s.Row(y))
		}
	}
}
